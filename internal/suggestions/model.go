package suggestions

import "time"

// Suggestion is a peer-submitted resource idea.
type Suggestion struct {
	ID           string
	Subject      string
	Grade        string
	ResourceType string
	Description  string
	CreatedAt    time.Time
}

// SuggestionResponse is the API shape of a suggestion.
type SuggestionResponse struct {
	ID           string    `json:"id"`
	Subject      string    `json:"subject"`
	Grade        string    `json:"grade,omitempty"`
	ResourceType string    `json:"resourceType,omitempty"`
	Description  string    `json:"description"`
	CreatedAt    time.Time `json:"createdAt"`
}

func toSuggestionResponse(s Suggestion) SuggestionResponse {
	return SuggestionResponse{
		ID:           s.ID,
		Subject:      s.Subject,
		Grade:        s.Grade,
		ResourceType: s.ResourceType,
		Description:  s.Description,
		CreatedAt:    s.CreatedAt,
	}
}

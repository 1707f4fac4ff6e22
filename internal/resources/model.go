package resources

import (
	"time"

	"eduassist-backend/internal/classify"
)

// Resource is a generated educational artifact and its pipeline metadata.
type Resource struct {
	ID            string
	Query         string
	Subject       string
	TargetLang    string
	FormatLabel   classify.FormatLabel
	FormatScore   float64
	FileName      string
	StorageKey    string
	SizeBytes     int64
	Provider      string
	Model         string
	PromptVersion string
	CreatedAt     time.Time
}

// ResourceResponse is the API shape of a resource.
type ResourceResponse struct {
	ID            string    `json:"id"`
	Query         string    `json:"query"`
	Subject       string    `json:"subject,omitempty"`
	TargetLang    string    `json:"targetLang,omitempty"`
	FormatLabel   string    `json:"formatLabel"`
	FormatScore   float64   `json:"formatScore"`
	FileName      string    `json:"fileName"`
	SizeBytes     int64     `json:"sizeBytes"`
	Provider      string    `json:"provider"`
	Model         string    `json:"model"`
	PromptVersion string    `json:"promptVersion"`
	CreatedAt     time.Time `json:"createdAt"`
}

func toResourceResponse(r Resource) ResourceResponse {
	return ResourceResponse{
		ID:            r.ID,
		Query:         r.Query,
		Subject:       r.Subject,
		TargetLang:    r.TargetLang,
		FormatLabel:   string(r.FormatLabel),
		FormatScore:   r.FormatScore,
		FileName:      r.FileName,
		SizeBytes:     r.SizeBytes,
		Provider:      r.Provider,
		Model:         r.Model,
		PromptVersion: r.PromptVersion,
		CreatedAt:     r.CreatedAt,
	}
}

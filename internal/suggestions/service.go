package suggestions

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

const maxDescriptionLen = 2000

// Service manages peer suggestions.
type Service struct {
	Repo Repo
}

// CreateInput carries a new suggestion submission.
type CreateInput struct {
	Subject      string
	Grade        string
	ResourceType string
	Description  string
}

// Create validates and stores a suggestion.
func (s *Service) Create(ctx context.Context, in CreateInput) (Suggestion, error) {
	in.Subject = strings.TrimSpace(in.Subject)
	in.Grade = strings.TrimSpace(in.Grade)
	in.ResourceType = strings.TrimSpace(in.ResourceType)
	in.Description = strings.TrimSpace(in.Description)

	if in.Subject == "" || in.Description == "" {
		return Suggestion{}, ErrInvalidInput
	}
	if len(in.Description) > maxDescriptionLen {
		return Suggestion{}, ErrInvalidInput
	}

	suggestion := Suggestion{
		ID:           uuid.NewString(),
		Subject:      in.Subject,
		Grade:        in.Grade,
		ResourceType: in.ResourceType,
		Description:  in.Description,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, suggestion); err != nil {
		return Suggestion{}, err
	}
	return suggestion, nil
}

// List returns stored suggestions newest-first.
func (s *Service) List(ctx context.Context, limit, offset int) ([]Suggestion, error) {
	return s.Repo.List(ctx, limit, offset)
}

package generate

import (
	"context"
	"errors"

	"eduassist-backend/internal/classify"
)

// Input captures everything the generation backend needs for one resource.
type Input struct {
	Query         string
	Subject       string
	Format        classify.FormatLabel
	PromptVersion string
}

// ErrUnavailable indicates the generation backend failed or returned an empty
// response. The adapter never reports empty content as success.
var ErrUnavailable = errors.New("generation unavailable")

// Generator abstracts the hosted generative-text backend.
type Generator interface {
	Generate(ctx context.Context, input Input) (string, error)
}

package suggestions

import (
	"context"
	"errors"
)

var ErrInvalidInput = errors.New("invalid suggestion")

// Repo persists suggestions.
type Repo interface {
	Create(ctx context.Context, suggestion Suggestion) error
	List(ctx context.Context, limit, offset int) ([]Suggestion, error)
}

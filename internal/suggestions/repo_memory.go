package suggestions

import (
	"context"
	"sync"
)

// MemoryRepo is an in-memory Repo for dev and tests.
type MemoryRepo struct {
	mu    sync.RWMutex
	items []Suggestion
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

func (r *MemoryRepo) Create(_ context.Context, suggestion Suggestion) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, suggestion)
	return nil
}

// List returns suggestions newest-first.
func (r *MemoryRepo) List(_ context.Context, limit, offset int) ([]Suggestion, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	var out []Suggestion
	for i := len(r.items) - 1 - offset; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.items[i])
	}
	return out, nil
}

var _ Repo = (*MemoryRepo)(nil)

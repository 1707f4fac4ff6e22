package resources

import (
	"context"
	"sync"
)

// MemoryRepo is an in-memory Repo for dev and tests.
type MemoryRepo struct {
	mu    sync.RWMutex
	items map[string]Resource
	order []string
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{items: make(map[string]Resource)}
}

func (r *MemoryRepo) Create(_ context.Context, resource Resource) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.items[resource.ID]; !exists {
		r.order = append(r.order, resource.ID)
	}
	r.items[resource.ID] = resource
	return nil
}

func (r *MemoryRepo) GetByID(_ context.Context, id string) (Resource, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	resource, ok := r.items[id]
	if !ok {
		return Resource{}, ErrNotFound
	}
	return resource, nil
}

// List returns resources newest-first.
func (r *MemoryRepo) List(_ context.Context, limit, offset int) ([]Resource, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	var out []Resource
	for i := len(r.order) - 1 - offset; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.items[r.order[i]])
	}
	return out, nil
}

var _ Repo = (*MemoryRepo)(nil)

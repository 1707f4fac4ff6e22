package resources

import "context"

// Repo persists resource metadata.
type Repo interface {
	Create(ctx context.Context, resource Resource) error
	GetByID(ctx context.Context, id string) (Resource, error)
	List(ctx context.Context, limit, offset int) ([]Resource, error)
}

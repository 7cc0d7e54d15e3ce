package state

import "context"

// Repository describes state snapshot reads needed by the query services.
type Repository interface {
	List(ctx context.Context) ([]Record, error)
	// FindByName matches case-insensitively.
	FindByName(ctx context.Context, name string) (Record, bool, error)
}

package player

import "context"

// Repository describes player snapshot reads needed by the query services.
type Repository interface {
	List(ctx context.Context) ([]Record, error)
	Find(ctx context.Context, idOrName string) (Record, bool, error)
}

package rivalry

import "context"

// Repository describes rivalry snapshot reads needed by the query services.
type Repository interface {
	List(ctx context.Context) ([]Record, error)
	// FindPair matches regardless of argument order.
	FindPair(ctx context.Context, x, y string) (Record, bool, error)
}

package team

import "context"

// Repository describes team snapshot reads needed by the query services.
type Repository interface {
	List(ctx context.Context) ([]Record, error)
	// Find matches by exact id first, then by case-insensitive abbreviation.
	// First match wins.
	Find(ctx context.Context, idOrAbbrev string) (Record, bool, error)
	ListByState(ctx context.Context, state string) ([]Record, error)
}

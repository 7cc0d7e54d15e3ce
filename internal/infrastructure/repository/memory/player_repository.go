package memory

import (
	"context"
	"strings"

	"github.com/courtsidehq/courtside/internal/domain/player"
)

// PlayerRepository serves the player summary snapshot.
type PlayerRepository struct {
	records []player.Record
	byID    map[string]int
}

func NewPlayerRepository(records []player.Record) *PlayerRepository {
	byID := make(map[string]int, len(records))
	for idx, item := range records {
		if _, exists := byID[item.ID]; !exists {
			byID[item.ID] = idx
		}
	}
	return &PlayerRepository{records: records, byID: byID}
}

func (r *PlayerRepository) List(_ context.Context) ([]player.Record, error) {
	out := make([]player.Record, 0, len(r.records))
	out = append(out, r.records...)
	return out, nil
}

// Find resolves an identifier first as an exact player ID, then as a
// case-insensitive full name, returning the first match in snapshot order.
func (r *PlayerRepository) Find(_ context.Context, idOrName string) (player.Record, bool, error) {
	if idx, ok := r.byID[idOrName]; ok {
		return r.records[idx], true, nil
	}
	for _, item := range r.records {
		if strings.EqualFold(item.Name, idOrName) {
			return item, true, nil
		}
	}
	return player.Record{}, false, nil
}

package memory

import (
	"context"

	"github.com/courtsidehq/courtside/internal/domain/rivalry"
)

// RivalryRepository serves the rivalry summary snapshot, indexed by the
// canonical ordered pair.
type RivalryRepository struct {
	records []rivalry.Record
	byPair  map[[2]string]int
}

func NewRivalryRepository(records []rivalry.Record) *RivalryRepository {
	byPair := make(map[[2]string]int, len(records))
	for idx, item := range records {
		key := [2]string{item.TeamA, item.TeamB}
		if _, exists := byPair[key]; !exists {
			byPair[key] = idx
		}
	}
	return &RivalryRepository{records: records, byPair: byPair}
}

func (r *RivalryRepository) List(_ context.Context) ([]rivalry.Record, error) {
	out := make([]rivalry.Record, 0, len(r.records))
	out = append(out, r.records...)
	return out, nil
}

func (r *RivalryRepository) FindPair(_ context.Context, x, y string) (rivalry.Record, bool, error) {
	a, b := rivalry.PairOf(x, y)
	if idx, ok := r.byPair[[2]string{a, b}]; ok {
		return r.records[idx], true, nil
	}
	return rivalry.Record{}, false, nil
}

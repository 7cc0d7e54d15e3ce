package memory

import (
	"context"
	"strings"

	"github.com/courtsidehq/courtside/internal/domain/team"
)

// TeamRepository serves the team summary snapshot. The snapshot is immutable
// after construction, so reads need no locking.
type TeamRepository struct {
	records []team.Record
	byID    map[string]int
}

func NewTeamRepository(records []team.Record) *TeamRepository {
	byID := make(map[string]int, len(records))
	for idx, item := range records {
		if _, exists := byID[item.ID]; !exists {
			byID[item.ID] = idx
		}
	}
	return &TeamRepository{records: records, byID: byID}
}

func (r *TeamRepository) List(_ context.Context) ([]team.Record, error) {
	out := make([]team.Record, 0, len(r.records))
	out = append(out, r.records...)
	return out, nil
}

// Find resolves an identifier first as an exact team ID, then as a
// case-insensitive abbreviation, returning the first match in snapshot order.
func (r *TeamRepository) Find(_ context.Context, idOrAbbrev string) (team.Record, bool, error) {
	if idx, ok := r.byID[idOrAbbrev]; ok {
		return r.records[idx], true, nil
	}
	for _, item := range r.records {
		if strings.EqualFold(item.Abbreviation, idOrAbbrev) {
			return item, true, nil
		}
	}
	return team.Record{}, false, nil
}

func (r *TeamRepository) ListByState(_ context.Context, stateName string) ([]team.Record, error) {
	out := make([]team.Record, 0)
	for _, item := range r.records {
		if strings.EqualFold(item.State, stateName) {
			out = append(out, item)
		}
	}
	return out, nil
}

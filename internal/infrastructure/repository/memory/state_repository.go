package memory

import (
	"context"
	"strings"

	"github.com/courtsidehq/courtside/internal/domain/state"
)

// StateRepository serves the state summary snapshot.
type StateRepository struct {
	records []state.Record
}

func NewStateRepository(records []state.Record) *StateRepository {
	return &StateRepository{records: records}
}

func (r *StateRepository) List(_ context.Context) ([]state.Record, error) {
	out := make([]state.Record, 0, len(r.records))
	out = append(out, r.records...)
	return out, nil
}

func (r *StateRepository) FindByName(_ context.Context, name string) (state.Record, bool, error) {
	for _, item := range r.records {
		if strings.EqualFold(item.Name, name) {
			return item, true, nil
		}
	}
	return state.Record{}, false, nil
}

package usecase

import (
	"github.com/courtsidehq/courtside/internal/domain/state"
	"github.com/courtsidehq/courtside/internal/domain/team"
)

// RollupStates groups finished team records by their exact state string and
// sums the counting fields. Teams with an empty state are left out; spelling
// variants of the same state form separate groups.
func RollupStates(teams []team.Record) []state.Record {
	byName := make(map[string]*state.Record, 32)
	order := make([]string, 0, 32)

	for _, t := range teams {
		if t.State == "" {
			continue
		}
		rec, ok := byName[t.State]
		if !ok {
			rec = &state.Record{Name: t.State}
			byName[t.State] = rec
			order = append(order, t.State)
		}
		rec.TotalTeams++
		rec.AggregateWins += t.TotalWins
		rec.AggregateLosses += t.TotalLosses
		rec.AggregateChampionships += t.Championships
	}

	out := make([]state.Record, 0, len(order))
	for _, name := range order {
		out = append(out, *byName[name])
	}
	return out
}

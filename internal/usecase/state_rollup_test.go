package usecase

import (
	"testing"

	"github.com/courtsidehq/courtside/internal/domain/team"
)

func TestRollupStates(t *testing.T) {
	t.Parallel()

	teams := []team.Record{
		{Abbreviation: "LAL", State: "California", TotalWins: 60, TotalLosses: 22, Championships: 17},
		{Abbreviation: "GSW", State: "California", TotalWins: 50, TotalLosses: 32, Championships: 7},
		{Abbreviation: "BOS", State: "Massachusetts", TotalWins: 55, TotalLosses: 27, Championships: 18},
		{Abbreviation: "???", State: ""},
	}

	states := RollupStates(teams)
	if len(states) != 2 {
		t.Fatalf("empty states must be skipped, got %d groups", len(states))
	}

	california := states[0]
	if california.Name != "California" {
		t.Fatalf("groups must keep first-seen order: %+v", california)
	}
	if california.TotalTeams != 2 || california.AggregateWins != 110 || california.AggregateLosses != 54 || california.AggregateChampionships != 24 {
		t.Fatalf("unexpected rollup: %+v", california)
	}

	// Rollup totals must equal the sum over exactly the matching teams.
	var wins int
	for _, tr := range teams {
		if tr.State == "California" {
			wins += tr.TotalWins
		}
	}
	if wins != california.AggregateWins {
		t.Fatalf("rollup wins %d != summed wins %d", california.AggregateWins, wins)
	}
}

func TestRollupStatesExactStringGrouping(t *testing.T) {
	t.Parallel()

	teams := []team.Record{
		{Abbreviation: "A", State: "California", TotalWins: 1},
		{Abbreviation: "B", State: "california", TotalWins: 2},
	}

	states := RollupStates(teams)
	if len(states) != 2 {
		t.Fatalf("spelling variants form separate groups, got %d", len(states))
	}
}

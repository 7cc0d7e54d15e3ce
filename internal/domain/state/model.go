package state

import "github.com/courtsidehq/courtside/internal/domain/team"

// Record sums team counting fields per state. Grouping is by the exact state
// string on the team record; spelling variants land in separate groups.
type Record struct {
	Name                   string `json:"state_name"`
	TotalTeams             int    `json:"total_teams"`
	AggregateWins          int    `json:"aggregate_wins"`
	AggregateLosses        int    `json:"aggregate_losses"`
	AggregateChampionships int    `json:"aggregate_championships"`
}

// Detail is the state lookup response shape: the rollup plus the team
// records whose state matched.
type Detail struct {
	Record
	Teams []team.Record `json:"teams"`
}

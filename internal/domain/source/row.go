package source

import (
	"strconv"
	"strings"
)

// Table names as exposed by the dataset provider. The first three are
// required for a useful run; the rest are optional and degrade to warnings
// when absent.
const (
	TableTeams         = "teams"
	TablePlayers       = "players"
	TableGames         = "games"
	TablePlayerTotals  = "player_totals"
	TableTeamPerGame   = "team_stats_per_game"
	TableTeamSummaries = "team_summaries"
	TableAdvanced      = "advanced"
	TableAllStar       = "all_star_selections"
	TableAwards        = "awards_voting_results"
	TableChampionships = "championships"
)

// OptionalTables lists the sources whose absence is tolerated.
var OptionalTables = map[string]bool{
	TablePlayerTotals:  true,
	TableTeamPerGame:   true,
	TableTeamSummaries: true,
	TableAdvanced:      true,
	TableAllStar:       true,
	TableAwards:        true,
	TableChampionships: true,
}

// Row is one raw record from a tabular source. Column presence varies by
// source, so every getter reports whether the field was usable instead of
// failing.
type Row map[string]string

// Text returns the trimmed value. Empty and absent cells both report false.
func (r Row) Text(key string) (string, bool) {
	v, ok := r[key]
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	return v, v != ""
}

func (r Row) Float(key string) (float64, bool) {
	v, ok := r.Text(key)
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func (r Row) Int(key string) (int, bool) {
	f, ok := r.Float(key)
	if !ok {
		return 0, false
	}
	return int(f), true
}

// Table is a fully materialized raw source.
type Table struct {
	Name string
	Rows []Row
}

func (t Table) Empty() bool {
	return len(t.Rows) == 0
}

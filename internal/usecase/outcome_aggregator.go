package usecase

import (
	"sort"

	"github.com/courtsidehq/courtside/internal/domain/game"
	"github.com/courtsidehq/courtside/internal/domain/rivalry"
)

// TeamTally is the running win/loss count for one canonical code.
type TeamTally struct {
	Wins   int
	Losses int
}

// Outcomes is the result of folding every game row once: per-team tallies
// plus pairwise rivalry records sorted by their canonical pair key.
type Outcomes struct {
	Tallies   map[string]TeamTally
	Rivalries []rivalry.Record
}

// AggregateOutcomes consumes the full game list in a single pass. The score
// comparison has no tie branch: a tied game books a loss on both sides and
// credits the rivalry win to whichever side sits in the second pair slot.
// That quirk is intentional and keeps team_a_wins+team_b_wins equal to
// total_meetings for every record.
func AggregateOutcomes(rows []game.Row) Outcomes {
	tallies := make(map[string]TeamTally, 64)
	pairs := make(map[[2]string]*rivalry.Record, 512)

	for _, row := range rows {
		home := tallies[row.HomeCode]
		away := tallies[row.AwayCode]
		if row.HomePoints > row.AwayPoints {
			home.Wins++
		} else {
			home.Losses++
		}
		if row.AwayPoints > row.HomePoints {
			away.Wins++
		} else {
			away.Losses++
		}
		tallies[row.HomeCode] = home
		tallies[row.AwayCode] = away

		a, b := rivalry.PairOf(row.HomeCode, row.AwayCode)
		key := [2]string{a, b}
		rec, ok := pairs[key]
		if !ok {
			rec = &rivalry.Record{TeamA: a, TeamB: b}
			pairs[key] = rec
		}
		rec.TotalMeetings++

		if row.HomeCode == a {
			if row.HomePoints > row.AwayPoints {
				rec.TeamAWins++
			} else {
				rec.TeamBWins++
			}
		} else {
			if row.AwayPoints > row.HomePoints {
				rec.TeamAWins++
			} else {
				rec.TeamBWins++
			}
		}
	}

	rivalries := make([]rivalry.Record, 0, len(pairs))
	for _, rec := range pairs {
		rivalries = append(rivalries, *rec)
	}
	sort.Slice(rivalries, func(i, j int) bool {
		if rivalries[i].TeamA != rivalries[j].TeamA {
			return rivalries[i].TeamA < rivalries[j].TeamA
		}
		return rivalries[i].TeamB < rivalries[j].TeamB
	})

	return Outcomes{Tallies: tallies, Rivalries: rivalries}
}

package usecase

import (
	"strings"

	"github.com/courtsidehq/courtside/internal/domain/player"
	"github.com/courtsidehq/courtside/internal/domain/source"
	"github.com/courtsidehq/courtside/internal/identity"
)

type careerAccumulator struct {
	id    string
	name  string
	teams player.TeamSet

	games           int
	points          float64
	rebounds        float64
	assists         float64
	steals          float64
	blocks          float64
	fgMade          float64
	fgAttempted     float64
	threePMade      float64
	threePAttempted float64
	ftMade          float64
	ftAttempted     float64

	perSum          float64
	bpmSum          float64
	vorpSum         float64
	wsSum           float64
	usgSum          float64
	tsSum           float64
	efgSum          float64
	advancedSeasons int
}

// CareerAggregator folds player season rows into career accumulators.
// Identity resolution is two-phase: season rows join the roster by reported
// id first, then by case-insensitive name as an explicit weaker fallback,
// and finally synthesize a new player for ids absent from the roster.
type CareerAggregator struct {
	byID  map[string]*careerAccumulator
	order []string
}

func NewCareerAggregator(roster []source.PlayerInfo) *CareerAggregator {
	agg := &CareerAggregator{
		byID:  make(map[string]*careerAccumulator, len(roster)),
		order: make([]string, 0, len(roster)),
	}
	for _, info := range roster {
		if info.ID == "" {
			continue
		}
		if _, exists := agg.byID[info.ID]; exists {
			continue
		}
		agg.byID[info.ID] = &careerAccumulator{
			id:    info.ID,
			name:  info.Name,
			teams: player.NewTeamSet(),
		}
		agg.order = append(agg.order, info.ID)
	}
	return agg
}

func (a *CareerAggregator) resolveByID(id string) (*careerAccumulator, bool) {
	acc, ok := a.byID[id]
	return acc, ok
}

// resolveByName scans seeded players in insertion order and returns the
// first case-insensitive name match. Two players sharing a name resolve to
// whichever was seeded first; there is no tie-break beyond that.
func (a *CareerAggregator) resolveByName(name string) (*careerAccumulator, bool) {
	if name == "" {
		return nil, false
	}
	for _, id := range a.order {
		if strings.EqualFold(a.byID[id].name, name) {
			return a.byID[id], true
		}
	}
	return nil, false
}

func (a *CareerAggregator) synthesize(id, name string) *careerAccumulator {
	acc := &careerAccumulator{
		id:    id,
		name:  name,
		teams: player.NewTeamSet(),
	}
	a.byID[id] = acc
	a.order = append(a.order, id)
	return acc
}

// AddSeasonRows groups season rows by their reported player id and folds
// each group into the resolved accumulator. Groups whose id is unknown and
// that carry no player name are dropped, since there is nothing to key a
// synthesized entry on.
func (a *CareerAggregator) AddSeasonRows(rows []source.PlayerSeasonRow) {
	groups := make(map[string][]source.PlayerSeasonRow, len(rows))
	groupOrder := make([]string, 0, len(rows))
	for _, row := range rows {
		if _, seen := groups[row.PlayerID]; !seen {
			groupOrder = append(groupOrder, row.PlayerID)
		}
		groups[row.PlayerID] = append(groups[row.PlayerID], row)
	}

	for _, id := range groupOrder {
		group := groups[id]
		groupName := group[0].PlayerName

		acc, ok := a.resolveByID(id)
		if !ok {
			acc, ok = a.resolveByName(groupName)
		}
		if !ok {
			if groupName == "" {
				continue
			}
			acc = a.synthesize(id, groupName)
		}

		for _, row := range group {
			acc.games += row.Games
			acc.points += row.Points
			acc.rebounds += row.Rebounds
			acc.assists += row.Assists
			acc.steals += row.Steals
			acc.blocks += row.Blocks
			acc.fgMade += row.FGMade
			acc.fgAttempted += row.FGAttempted
			acc.threePMade += row.ThreePMade
			acc.threePAttempted += row.ThreePAttempted
			acc.ftMade += row.FTMade
			acc.ftAttempted += row.FTAttempted
			if row.Team != "" {
				acc.teams.Add(identity.CanonicalCode(row.Team))
			}
		}
	}
}

// AddAdvanced folds advanced season rows into the accumulators. The join is
// by id only; ids absent from the aggregator are ignored.
func (a *CareerAggregator) AddAdvanced(rows []source.AdvancedRow) {
	for _, row := range rows {
		acc, ok := a.byID[row.PlayerID]
		if !ok {
			continue
		}
		acc.perSum += row.PER
		acc.bpmSum += row.BPM
		acc.vorpSum += row.VORP
		acc.wsSum += row.WS
		acc.usgSum += row.UsgPct
		acc.tsSum += row.TSPct
		acc.efgSum += row.EFGPct
		acc.advancedSeasons++
	}
}

// Emit computes every derived metric from the final totals and attaches
// award counts. Awards and all-star selections join by trimmed display name,
// a deliberately weak cross-source key kept as-is.
func (a *CareerAggregator) Emit(allStarNames []string, awards []source.AwardRow) []player.Record {
	allStarCounts := make(map[string]int, len(allStarNames))
	for _, name := range allStarNames {
		allStarCounts[name]++
	}

	mvpCounts := make(map[string]int)
	allNBACounts := make(map[string]int)
	for _, row := range awards {
		award := strings.ToUpper(row.Award)
		if strings.Contains(award, "MVP") {
			mvpCounts[row.Player]++
		}
		if strings.Contains(award, "ALL-NBA") || strings.Contains(award, "ALL NBA") {
			allNBACounts[row.Player]++
		}
	}

	out := make([]player.Record, 0, len(a.order))
	for _, id := range a.order {
		acc := a.byID[id]
		games := float64(acc.games)
		seasons := float64(acc.advancedSeasons)

		out = append(out, player.Record{
			ID:    acc.id,
			Name:  acc.name,
			Teams: acc.teams.Sorted(),

			TotalGames:       acc.games,
			TotalPoints:      acc.points,
			TotalRebounds:    acc.rebounds,
			TotalAssists:     acc.assists,
			TotalSteals:      acc.steals,
			TotalBlocks:      acc.blocks,
			TotalFGMade:      acc.fgMade,
			TotalFGAttempted: acc.fgAttempted,
			Total3PMade:      acc.threePMade,
			Total3PAttempted: acc.threePAttempted,
			TotalFTMade:      acc.ftMade,
			TotalFTAttempted: acc.ftAttempted,

			CareerPPG:    roundTo(safeDiv(acc.points, games), 1),
			CareerRPG:    roundTo(safeDiv(acc.rebounds, games), 1),
			CareerAPG:    roundTo(safeDiv(acc.assists, games), 1),
			CareerSPG:    roundTo(safeDiv(acc.steals, games), 1),
			CareerBPG:    roundTo(safeDiv(acc.blocks, games), 1),
			CareerFGPct:  roundTo(safeDiv(acc.fgMade, acc.fgAttempted), 4),
			Career3PPct:  roundTo(safeDiv(acc.threePMade, acc.threePAttempted), 4),
			CareerFTPct:  roundTo(safeDiv(acc.ftMade, acc.ftAttempted), 4),
			CareerTSPct:  roundTo(safeDiv(acc.tsSum, seasons), 4),
			CareerEFGPct: roundTo(safeDiv(acc.efgSum, seasons), 4),
			CareerPER:    roundTo(safeDiv(acc.perSum, seasons), 1),
			CareerBPM:    roundTo(safeDiv(acc.bpmSum, seasons), 1),
			CareerVORP:   roundTo(acc.vorpSum, 1),
			CareerWS:     roundTo(acc.wsSum, 1),
			CareerUsgPct: roundTo(safeDiv(acc.usgSum, seasons), 4),

			AllStarAppearances: allStarCounts[acc.name],
			MVPCount:           mvpCounts[acc.name],
			AllNBACount:        allNBACounts[acc.name],
		})
	}
	return out
}

package usecase

import (
	"sort"
	"strings"

	"github.com/courtsidehq/courtside/internal/domain/source"
	"github.com/courtsidehq/courtside/internal/domain/team"
	"github.com/courtsidehq/courtside/internal/identity"
)

// TeamBuilderInput carries everything the summary builder merges: roster
// identity, the finished outcome tallies, and the optional supplementary
// sources. Nil slices mean the source was unavailable and the dependent
// fields stay unset.
type TeamBuilderInput struct {
	Teams         []source.TeamInfo
	Outcomes      Outcomes
	Championships []source.ChampionshipRow
	PerGame       []source.TeamPerGameRow
	Advanced      []source.TeamAdvancedRow
}

// ChampionshipTally counts titles per canonical code. Years keep one entry
// per qualifying row; dedupe happens at record emission.
type ChampionshipTally struct {
	Count int
	Years []int
}

// TallyChampionships resolves free-text finals winners to canonical codes.
// Every row with an unmapped name is silently dropped.
func TallyChampionships(rows []source.ChampionshipRow) map[string]ChampionshipTally {
	out := make(map[string]ChampionshipTally, 32)
	for _, row := range rows {
		if row.Status != "Champion" {
			continue
		}
		code, ok := identity.CodeForFranchiseName(row.Team)
		if !ok {
			continue
		}
		tally := out[code]
		tally.Count++
		tally.Years = append(tally.Years, row.Year)
		out[code] = tally
	}
	return out
}

// BuildTeamSummaries produces one record per canonical code from the roster
// source. Geography prefers the curated location table and falls back to the
// roster's own city/state with zero coordinates.
func BuildTeamSummaries(in TeamBuilderInput) []team.Record {
	champs := TallyChampionships(in.Championships)

	type seed struct{ info source.TeamInfo }
	byCode := make(map[string]*seed, len(in.Teams))
	order := make([]string, 0, len(in.Teams))
	for _, info := range in.Teams {
		if info.Abbreviation == "" {
			continue
		}
		if existing, ok := byCode[info.Abbreviation]; ok {
			existing.info = info
			continue
		}
		byCode[info.Abbreviation] = &seed{info: info}
		order = append(order, info.Abbreviation)
	}

	out := make([]team.Record, 0, len(order))
	for _, code := range order {
		info := byCode[code].info
		tally := in.Outcomes.Tallies[code]
		champ := champs[code]

		rec := team.Record{
			ID:                info.ID,
			Name:              info.Name,
			City:              info.City,
			State:             info.State,
			Abbreviation:      code,
			TotalWins:         tally.Wins,
			TotalLosses:       tally.Losses,
			WinPct:            roundTo(safeDiv(float64(tally.Wins), float64(tally.Wins+tally.Losses)), 3),
			Championships:     champ.Count,
			ChampionshipYears: dedupeSortYears(champ.Years),
		}

		if loc, ok := identity.LocationForCode(code); ok {
			rec.City = loc.City
			rec.State = loc.State
			rec.Lat = loc.Lat
			rec.Lng = loc.Lng
		}

		applyPerGameAverages(&rec, code, in.PerGame)
		applyAdvancedAverages(&rec, code, in.Advanced)
		out = append(out, rec)
	}
	return out
}

// applyPerGameAverages sets career-average fields when the per-game source
// has rows for the code (case-insensitive match). Each field is the mean of
// its parsable cells; a metric with no usable cells becomes 0 rather than
// staying unset, since the team demonstrably appears in the source.
func applyPerGameAverages(rec *team.Record, code string, rows []source.TeamPerGameRow) {
	var matched []source.TeamPerGameRow
	for _, row := range rows {
		if strings.EqualFold(row.Abbreviation, code) {
			matched = append(matched, row)
		}
	}
	if len(matched) == 0 {
		return
	}

	rec.PointsPerGame = avgOf(matched, 2, func(r source.TeamPerGameRow) *float64 { return r.PPG })
	rec.ReboundsPerGame = avgOf(matched, 2, func(r source.TeamPerGameRow) *float64 { return r.RPG })
	rec.AssistsPerGame = avgOf(matched, 2, func(r source.TeamPerGameRow) *float64 { return r.APG })
	rec.StealsPerGame = avgOf(matched, 2, func(r source.TeamPerGameRow) *float64 { return r.SPG })
	rec.BlocksPerGame = avgOf(matched, 2, func(r source.TeamPerGameRow) *float64 { return r.BPG })
	rec.FieldGoalPct = avgOf(matched, 4, func(r source.TeamPerGameRow) *float64 { return r.FGPct })
	rec.ThreePointPct = avgOf(matched, 4, func(r source.TeamPerGameRow) *float64 { return r.ThreePPct })
	rec.FreeThrowPct = avgOf(matched, 4, func(r source.TeamPerGameRow) *float64 { return r.FTPct })
}

func applyAdvancedAverages(rec *team.Record, code string, rows []source.TeamAdvancedRow) {
	var matched []source.TeamAdvancedRow
	for _, row := range rows {
		if strings.EqualFold(row.Abbreviation, code) {
			matched = append(matched, row)
		}
	}
	if len(matched) == 0 {
		return
	}

	rec.OffensiveRating = avgOf(matched, 2, func(r source.TeamAdvancedRow) *float64 { return r.OffRtg })
	rec.DefensiveRating = avgOf(matched, 2, func(r source.TeamAdvancedRow) *float64 { return r.DefRtg })
	rec.NetRating = avgOf(matched, 2, func(r source.TeamAdvancedRow) *float64 { return r.NetRtg })
	rec.Pace = avgOf(matched, 2, func(r source.TeamAdvancedRow) *float64 { return r.Pace })
	rec.TrueShootingPct = avgOf(matched, 4, func(r source.TeamAdvancedRow) *float64 { return r.TSPct })
	rec.EffectiveFGPct = avgOf(matched, 4, func(r source.TeamAdvancedRow) *float64 { return r.EFGPct })
}

func avgOf[T any](rows []T, places int, pick func(T) *float64) *float64 {
	var sum float64
	var n int
	for _, row := range rows {
		if v := pick(row); v != nil {
			sum += *v
			n++
		}
	}
	avg := roundTo(safeDiv(sum, float64(n)), places)
	return &avg
}

func dedupeSortYears(years []int) []int {
	seen := make(map[int]struct{}, len(years))
	out := make([]int, 0, len(years))
	for _, y := range years {
		if _, dup := seen[y]; dup {
			continue
		}
		seen[y] = struct{}{}
		out = append(out, y)
	}
	sort.Ints(out)
	return out
}

package source

import (
	"time"

	"github.com/courtsidehq/courtside/internal/domain/game"
	"github.com/courtsidehq/courtside/internal/identity"
)

// Each adapter below declares, in its field reads, exactly which columns the
// pipeline depends on for that source. Rows missing a required field are
// dropped here so downstream aggregators only see fully typed input; rows
// missing optional fields pass through with the field unset.

// TeamInfo is a roster entry from the teams source.
// Columns: id/team_id, abbreviation (required), full_name/name, city, state.
type TeamInfo struct {
	ID           string
	Name         string
	City         string
	State        string
	Abbreviation string
}

func AdaptTeams(t Table) []TeamInfo {
	out := make([]TeamInfo, 0, len(t.Rows))
	for _, row := range t.Rows {
		abbrev, ok := row.Text("abbreviation")
		if !ok {
			continue
		}
		info := TeamInfo{Abbreviation: identity.CanonicalCode(abbrev)}
		if id, ok := row.Text("id"); ok {
			info.ID = id
		} else if id, ok := row.Text("team_id"); ok {
			info.ID = id
		}
		if name, ok := row.Text("full_name"); ok {
			info.Name = name
		} else if name, ok := row.Text("name"); ok {
			info.Name = name
		}
		info.City, _ = row.Text("city")
		info.State, _ = row.Text("state")
		out = append(out, info)
	}
	return out
}

// PlayerInfo is a roster entry from the players source.
// Columns: id/player_id (required), full_name or first_name+last_name.
type PlayerInfo struct {
	ID   string
	Name string
}

func AdaptPlayers(t Table) []PlayerInfo {
	out := make([]PlayerInfo, 0, len(t.Rows))
	for _, row := range t.Rows {
		info := PlayerInfo{}
		if id, ok := row.Text("player_id"); ok {
			info.ID = id
		} else if id, ok := row.Text("id"); ok {
			info.ID = id
		} else {
			continue
		}
		if name, ok := row.Text("full_name"); ok {
			info.Name = name
		} else if first, ok := row.Text("first_name"); ok {
			if last, ok := row.Text("last_name"); ok {
				info.Name = first + " " + last
			} else {
				info.Name = first
			}
		}
		out = append(out, info)
	}
	return out
}

// AdaptGames parses the games source into typed rows with canonical codes.
// Columns: team_abbreviation_home/away, pts_home/away, game_date (all
// required). Rows missing or failing to parse any of them are dropped and
// excluded from every aggregate.
func AdaptGames(t Table) []game.Row {
	out := make([]game.Row, 0, len(t.Rows))
	for _, row := range t.Rows {
		home, okHome := row.Text("team_abbreviation_home")
		away, okAway := row.Text("team_abbreviation_away")
		homePts, okHomePts := row.Float("pts_home")
		awayPts, okAwayPts := row.Float("pts_away")
		rawDate, okDate := row.Text("game_date")
		if !okHome || !okAway || !okHomePts || !okAwayPts || !okDate {
			continue
		}

		date, ok := parseGameDate(rawDate)
		if !ok {
			continue
		}

		out = append(out, game.Row{
			HomeCode:   identity.CanonicalCode(home),
			AwayCode:   identity.CanonicalCode(away),
			HomePoints: homePts,
			AwayPoints: awayPts,
			Date:       date.Format("2006-01-02"),
			Decade:     game.DecadeOf(date.Year()),
		})
	}
	return out
}

var gameDateLayouts = []string{"2006-01-02", "2006-01-02 15:04:05", time.RFC3339}

func parseGameDate(raw string) (time.Time, bool) {
	for _, layout := range gameDateLayouts {
		if d, err := time.Parse(layout, raw); err == nil {
			return d, true
		}
	}
	return time.Time{}, false
}

// PlayerSeasonRow is one season of counting stats from the player totals
// source. Columns: player_id (required), player, tm, g, pts, trb, ast, stl,
// blk, fg, fga, x3p, x3pa, ft, fta. Missing counting columns contribute 0;
// a missing games column counts the row as one game.
type PlayerSeasonRow struct {
	PlayerID   string
	PlayerName string
	Team       string

	Games           int
	Points          float64
	Rebounds        float64
	Assists         float64
	Steals          float64
	Blocks          float64
	FGMade          float64
	FGAttempted     float64
	ThreePMade      float64
	ThreePAttempted float64
	FTMade          float64
	FTAttempted     float64
}

func AdaptPlayerSeasons(t Table) []PlayerSeasonRow {
	out := make([]PlayerSeasonRow, 0, len(t.Rows))
	for _, row := range t.Rows {
		id, ok := row.Text("player_id")
		if !ok {
			continue
		}

		season := PlayerSeasonRow{PlayerID: id, Games: 1}
		season.PlayerName, _ = row.Text("player")
		season.Team, _ = row.Text("tm")
		if g, ok := row.Int("g"); ok {
			season.Games = g
		}
		season.Points, _ = row.Float("pts")
		season.Rebounds, _ = row.Float("trb")
		season.Assists, _ = row.Float("ast")
		season.Steals, _ = row.Float("stl")
		season.Blocks, _ = row.Float("blk")
		season.FGMade, _ = row.Float("fg")
		season.FGAttempted, _ = row.Float("fga")
		season.ThreePMade, _ = row.Float("x3p")
		season.ThreePAttempted, _ = row.Float("x3pa")
		season.FTMade, _ = row.Float("ft")
		season.FTAttempted, _ = row.Float("fta")
		out = append(out, season)
	}
	return out
}

// TeamPerGameRow is one season of per-game averages for a team. Columns:
// abbreviation (required); pts/trb/ast/stl/blk_per_game, fg/x3p/ft_percent.
// Unparsable cells stay nil so they drop out of the career average.
type TeamPerGameRow struct {
	Abbreviation string

	PPG       *float64
	RPG       *float64
	APG       *float64
	SPG       *float64
	BPG       *float64
	FGPct     *float64
	ThreePPct *float64
	FTPct     *float64
}

func AdaptTeamPerGame(t Table) []TeamPerGameRow {
	out := make([]TeamPerGameRow, 0, len(t.Rows))
	for _, row := range t.Rows {
		abbrev, ok := row.Text("abbreviation")
		if !ok {
			continue
		}
		out = append(out, TeamPerGameRow{
			Abbreviation: abbrev,
			PPG:          optFloat(row, "pts_per_game"),
			RPG:          optFloat(row, "trb_per_game"),
			APG:          optFloat(row, "ast_per_game"),
			SPG:          optFloat(row, "stl_per_game"),
			BPG:          optFloat(row, "blk_per_game"),
			FGPct:        optFloat(row, "fg_percent"),
			ThreePPct:    optFloat(row, "x3p_percent"),
			FTPct:        optFloat(row, "ft_percent"),
		})
	}
	return out
}

// TeamAdvancedRow is one season of advanced team ratings. Columns:
// abbreviation (required); o_rtg, d_rtg, n_rtg, pace, ts_percent,
// e_fg_percent.
type TeamAdvancedRow struct {
	Abbreviation string

	OffRtg *float64
	DefRtg *float64
	NetRtg *float64
	Pace   *float64
	TSPct  *float64
	EFGPct *float64
}

func AdaptTeamAdvanced(t Table) []TeamAdvancedRow {
	out := make([]TeamAdvancedRow, 0, len(t.Rows))
	for _, row := range t.Rows {
		abbrev, ok := row.Text("abbreviation")
		if !ok {
			continue
		}
		out = append(out, TeamAdvancedRow{
			Abbreviation: abbrev,
			OffRtg:       optFloat(row, "o_rtg"),
			DefRtg:       optFloat(row, "d_rtg"),
			NetRtg:       optFloat(row, "n_rtg"),
			Pace:         optFloat(row, "pace"),
			TSPct:        optFloat(row, "ts_percent"),
			EFGPct:       optFloat(row, "e_fg_percent"),
		})
	}
	return out
}

// AdvancedRow is one season of advanced player metrics. Columns: player_id
// (required); per, bpm, vorp, ws, usg_percent, ts_percent, e_fg_percent.
// Missing metrics contribute 0 to the season sums.
type AdvancedRow struct {
	PlayerID string

	PER    float64
	BPM    float64
	VORP   float64
	WS     float64
	UsgPct float64
	TSPct  float64
	EFGPct float64
}

func AdaptAdvanced(t Table) []AdvancedRow {
	out := make([]AdvancedRow, 0, len(t.Rows))
	for _, row := range t.Rows {
		id, ok := row.Text("player_id")
		if !ok {
			continue
		}
		adv := AdvancedRow{PlayerID: id}
		adv.PER, _ = row.Float("per")
		adv.BPM, _ = row.Float("bpm")
		adv.VORP, _ = row.Float("vorp")
		adv.WS, _ = row.Float("ws")
		adv.UsgPct, _ = row.Float("usg_percent")
		adv.TSPct, _ = row.Float("ts_percent")
		adv.EFGPct, _ = row.Float("e_fg_percent")
		out = append(out, adv)
	}
	return out
}

// AdaptAllStarNames returns the trimmed player names from the all-star
// selections source, one entry per selection. Columns: player.
func AdaptAllStarNames(t Table) []string {
	out := make([]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		if name, ok := row.Text("player"); ok {
			out = append(out, name)
		}
	}
	return out
}

// AwardRow is one award voting result. Columns: player (required), award.
type AwardRow struct {
	Player string
	Award  string
}

func AdaptAwards(t Table) []AwardRow {
	out := make([]AwardRow, 0, len(t.Rows))
	for _, row := range t.Rows {
		player, ok := row.Text("player")
		if !ok {
			continue
		}
		award, _ := row.Text("award")
		out = append(out, AwardRow{Player: player, Award: award})
	}
	return out
}

// ChampionshipRow is one finals series entry. Columns: Team (free-text
// name), Year, Status.
type ChampionshipRow struct {
	Team   string
	Year   int
	Status string
}

func AdaptChampionships(t Table) []ChampionshipRow {
	out := make([]ChampionshipRow, 0, len(t.Rows))
	for _, row := range t.Rows {
		team, ok := row.Text("Team")
		if !ok {
			continue
		}
		entry := ChampionshipRow{Team: team}
		entry.Status, _ = row.Text("Status")
		entry.Year, _ = row.Int("Year")
		out = append(out, entry)
	}
	return out
}

func optFloat(row Row, key string) *float64 {
	f, ok := row.Float(key)
	if !ok {
		return nil
	}
	return &f
}

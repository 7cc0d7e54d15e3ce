package player

import "sort"

// Record is a player's career summary. Counting totals are summed across all
// season rows attributed to the player; per-game and percentage fields are
// derived from the totals at emission time, never accumulated directly.
type Record struct {
	ID    string   `json:"player_id"`
	Name  string   `json:"name"`
	Teams []string `json:"teams"`

	TotalGames       int     `json:"total_games"`
	TotalPoints      float64 `json:"total_points"`
	TotalRebounds    float64 `json:"total_rebounds"`
	TotalAssists     float64 `json:"total_assists"`
	TotalSteals      float64 `json:"total_steals"`
	TotalBlocks      float64 `json:"total_blocks"`
	TotalFGMade      float64 `json:"total_fg_made"`
	TotalFGAttempted float64 `json:"total_fg_attempted"`
	Total3PMade      float64 `json:"total_3p_made"`
	Total3PAttempted float64 `json:"total_3p_attempted"`
	TotalFTMade      float64 `json:"total_ft_made"`
	TotalFTAttempted float64 `json:"total_ft_attempted"`

	CareerPPG    float64 `json:"career_ppg"`
	CareerRPG    float64 `json:"career_rpg"`
	CareerAPG    float64 `json:"career_apg"`
	CareerSPG    float64 `json:"career_spg"`
	CareerBPG    float64 `json:"career_bpg"`
	CareerFGPct  float64 `json:"career_fg_pct"`
	Career3PPct  float64 `json:"career_3p_pct"`
	CareerFTPct  float64 `json:"career_ft_pct"`
	CareerTSPct  float64 `json:"career_ts_pct"`
	CareerEFGPct float64 `json:"career_efg_pct"`
	CareerPER    float64 `json:"career_per"`
	CareerBPM    float64 `json:"career_bpm"`
	CareerVORP   float64 `json:"career_vorp"`
	CareerWS     float64 `json:"career_ws"`
	CareerUsgPct float64 `json:"career_usg_pct"`

	AllStarAppearances int `json:"all_star_appearances"`
	MVPCount           int `json:"mvp_count"`
	AllNBACount        int `json:"all_nba_count"`
}

// TeamSet tracks the canonical codes a player has played for. Membership is
// order-irrelevant during accumulation; Sorted materializes the set once at
// emission.
type TeamSet map[string]struct{}

func NewTeamSet() TeamSet {
	return make(TeamSet)
}

func (s TeamSet) Add(code string) {
	if code == "" {
		return
	}
	s[code] = struct{}{}
}

// Sorted returns the members as an ascending slice. Never nil, so the
// serialized field is [] rather than null for players with no season rows.
func (s TeamSet) Sorted() []string {
	codes := make([]string, 0, len(s))
	for code := range s {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

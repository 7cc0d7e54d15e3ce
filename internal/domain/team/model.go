package team

// Record is the aggregated franchise summary emitted by the pipeline and
// served read-only by the API. Per-game and advanced averages are pointers:
// nil means the supplementary source had no rows for this team, which is
// different from a real 0.
type Record struct {
	ID                string  `json:"team_id"`
	Name              string  `json:"name"`
	City              string  `json:"city"`
	State             string  `json:"state"`
	Abbreviation      string  `json:"abbreviation"`
	TotalWins         int     `json:"total_wins"`
	TotalLosses       int     `json:"total_losses"`
	WinPct            float64 `json:"win_pct"`
	Championships     int     `json:"championships"`
	ChampionshipYears []int   `json:"championship_years"`
	Lat               float64 `json:"lat"`
	Lng               float64 `json:"lng"`

	PointsPerGame   *float64 `json:"ppg,omitempty"`
	ReboundsPerGame *float64 `json:"rpg,omitempty"`
	AssistsPerGame  *float64 `json:"apg,omitempty"`
	StealsPerGame   *float64 `json:"spg,omitempty"`
	BlocksPerGame   *float64 `json:"bpg,omitempty"`
	FieldGoalPct    *float64 `json:"fg_pct,omitempty"`
	ThreePointPct   *float64 `json:"3p_pct,omitempty"`
	FreeThrowPct    *float64 `json:"ft_pct,omitempty"`

	OffensiveRating *float64 `json:"offensive_rating,omitempty"`
	DefensiveRating *float64 `json:"defensive_rating,omitempty"`
	NetRating       *float64 `json:"net_rating,omitempty"`
	Pace            *float64 `json:"pace,omitempty"`
	TrueShootingPct *float64 `json:"ts_pct,omitempty"`
	EffectiveFGPct  *float64 `json:"efg_pct,omitempty"`
}

// GamesPlayed is wins plus losses over the whole recorded history.
func (r Record) GamesPlayed() int {
	return r.TotalWins + r.TotalLosses
}

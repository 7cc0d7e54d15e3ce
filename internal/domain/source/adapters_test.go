package source

import "testing"

func TestAdaptGames(t *testing.T) {
	table := Table{Name: TableGames, Rows: []Row{
		{
			"team_abbreviation_home": "SEA",
			"team_abbreviation_away": "LAL",
			"pts_home":               "100",
			"pts_away":               "95",
			"game_date":              "1987-11-01",
		},
		// missing away score, must be dropped entirely
		{
			"team_abbreviation_home": "BOS",
			"team_abbreviation_away": "NYK",
			"pts_home":               "88",
			"game_date":              "1990-01-05",
		},
		// unparsable date, must be dropped
		{
			"team_abbreviation_home": "BOS",
			"team_abbreviation_away": "NYK",
			"pts_home":               "88",
			"pts_away":               "80",
			"game_date":              "not-a-date",
		},
		{
			"team_abbreviation_home": "CHI",
			"team_abbreviation_away": "DET",
			"pts_home":               "101",
			"pts_away":               "99",
			"game_date":              "1991-06-02 00:00:00",
		},
	}}

	rows := AdaptGames(table)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}

	first := rows[0]
	if first.HomeCode != "OKC" {
		t.Errorf("historical home code not canonicalized: %q", first.HomeCode)
	}
	if first.Decade != "1980s" {
		t.Errorf("unexpected decade: %q", first.Decade)
	}
	if first.Date != "1987-11-01" {
		t.Errorf("unexpected date: %q", first.Date)
	}

	if rows[1].Date != "1991-06-02" {
		t.Errorf("timestamped date not normalized: %q", rows[1].Date)
	}
}

func TestAdaptTeamsCanonicalizesAbbreviation(t *testing.T) {
	table := Table{Name: TableTeams, Rows: []Row{
		{"id": "10", "abbreviation": "VAN", "full_name": "Vancouver Grizzlies", "city": "Vancouver", "state": "British Columbia"},
		{"team_id": "11", "abbreviation": "BOS", "name": "Boston Celtics"},
		{"full_name": "No Abbreviation FC"},
	}}

	teams := AdaptTeams(table)
	if len(teams) != 2 {
		t.Fatalf("expected 2 teams, got %d", len(teams))
	}
	if teams[0].Abbreviation != "MEM" {
		t.Errorf("VAN not mapped to MEM: %q", teams[0].Abbreviation)
	}
	if teams[1].ID != "11" || teams[1].Name != "Boston Celtics" {
		t.Errorf("alternate columns not honored: %+v", teams[1])
	}
}

func TestAdaptPlayers(t *testing.T) {
	table := Table{Name: TablePlayers, Rows: []Row{
		{"player_id": "1", "full_name": " Larry Bird "},
		{"id": "2", "first_name": "Magic", "last_name": "Johnson"},
		{"full_name": "No ID"},
	}}

	players := AdaptPlayers(table)
	if len(players) != 2 {
		t.Fatalf("expected 2 players, got %d", len(players))
	}
	if players[0].Name != "Larry Bird" {
		t.Errorf("name not trimmed: %q", players[0].Name)
	}
	if players[1].Name != "Magic Johnson" {
		t.Errorf("split name not joined: %q", players[1].Name)
	}
}

func TestAdaptPlayerSeasonsDefaults(t *testing.T) {
	table := Table{Name: TablePlayerTotals, Rows: []Row{
		{"player_id": "7", "player": "Test Player", "tm": "SEA", "pts": "1200", "trb": "300"},
		{"pts": "500"},
	}}

	rows := AdaptPlayerSeasons(table)
	if len(rows) != 1 {
		t.Fatalf("row without player_id must be dropped, got %d rows", len(rows))
	}
	row := rows[0]
	if row.Games != 1 {
		t.Errorf("missing games column must count the row once, got %d", row.Games)
	}
	if row.Assists != 0 {
		t.Errorf("missing counting column must contribute 0, got %v", row.Assists)
	}
	if row.Team != "SEA" {
		t.Errorf("team field must stay raw at this stage: %q", row.Team)
	}
}

func TestAdaptTeamPerGameKeepsUnparsableCellsNil(t *testing.T) {
	table := Table{Name: TableTeamPerGame, Rows: []Row{
		{"abbreviation": "BOS", "pts_per_game": "110.5", "trb_per_game": "NA"},
	}}

	rows := AdaptTeamPerGame(table)
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].PPG == nil || *rows[0].PPG != 110.5 {
		t.Errorf("ppg not parsed: %v", rows[0].PPG)
	}
	if rows[0].RPG != nil {
		t.Errorf("unparsable cell must stay nil, got %v", *rows[0].RPG)
	}
	if rows[0].FGPct != nil {
		t.Errorf("absent column must stay nil")
	}
}

func TestAdaptChampionships(t *testing.T) {
	table := Table{Name: TableChampionships, Rows: []Row{
		{"Team": "Lakers", "Year": "1987", "Status": "Champion"},
		{"Team": "Celtics", "Year": "1987", "Status": "Runner Up"},
		{"Year": "1990", "Status": "Champion"},
	}}

	rows := AdaptChampionships(table)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Team != "Lakers" || rows[0].Year != 1987 || rows[0].Status != "Champion" {
		t.Errorf("unexpected row: %+v", rows[0])
	}
}

package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/courtsidehq/courtside/internal/domain/player"
	"github.com/courtsidehq/courtside/internal/domain/rivalry"
	"github.com/courtsidehq/courtside/internal/domain/state"
	"github.com/courtsidehq/courtside/internal/domain/team"
)

type stubTeamRepository struct {
	items []team.Record
}

func (r *stubTeamRepository) List(ctx context.Context) ([]team.Record, error) {
	return r.items, nil
}

func (r *stubTeamRepository) Find(ctx context.Context, idOrAbbrev string) (team.Record, bool, error) {
	for _, item := range r.items {
		if item.ID == idOrAbbrev || strings.EqualFold(item.Abbreviation, idOrAbbrev) {
			return item, true, nil
		}
	}
	return team.Record{}, false, nil
}

func (r *stubTeamRepository) ListByState(ctx context.Context, stateName string) ([]team.Record, error) {
	var out []team.Record
	for _, item := range r.items {
		if strings.EqualFold(item.State, stateName) {
			out = append(out, item)
		}
	}
	return out, nil
}

type stubRivalryRepository struct {
	items []rivalry.Record
}

func (r *stubRivalryRepository) List(ctx context.Context) ([]rivalry.Record, error) {
	return r.items, nil
}

func (r *stubRivalryRepository) FindPair(ctx context.Context, x, y string) (rivalry.Record, bool, error) {
	a, b := rivalry.PairOf(x, y)
	for _, item := range r.items {
		if item.TeamA == a && item.TeamB == b {
			return item, true, nil
		}
	}
	return rivalry.Record{}, false, nil
}

type stubPlayerRepository struct {
	items []player.Record
}

func (r *stubPlayerRepository) List(ctx context.Context) ([]player.Record, error) {
	return r.items, nil
}

func (r *stubPlayerRepository) Find(ctx context.Context, idOrName string) (player.Record, bool, error) {
	for _, item := range r.items {
		if item.ID == idOrName || strings.EqualFold(item.Name, idOrName) {
			return item, true, nil
		}
	}
	return player.Record{}, false, nil
}

type stubStateRepository struct {
	items []state.Record
}

func (r *stubStateRepository) List(ctx context.Context) ([]state.Record, error) {
	return r.items, nil
}

func (r *stubStateRepository) FindByName(ctx context.Context, name string) (state.Record, bool, error) {
	for _, item := range r.items {
		if strings.EqualFold(item.Name, name) {
			return item, true, nil
		}
	}
	return state.Record{}, false, nil
}

func queryFixtures() (*stubTeamRepository, *stubRivalryRepository) {
	teams := &stubTeamRepository{items: []team.Record{
		{ID: "1", Abbreviation: "BOS", Name: "Boston Celtics", State: "Massachusetts"},
		{ID: "2", Abbreviation: "LAL", Name: "Los Angeles Lakers", State: "California"},
		{ID: "3", Abbreviation: "MIA", Name: "Miami Heat", State: "Florida"},
	}}
	rivalries := &stubRivalryRepository{items: []rivalry.Record{
		{TeamA: "BOS", TeamB: "LAL", TotalMeetings: 18, TeamAWins: 10, TeamBWins: 8},
	}}
	return teams, rivalries
}

func TestTeamQueryServiceGetByLowercaseAbbrev(t *testing.T) {
	t.Parallel()

	teams, rivalries := queryFixtures()
	service := NewTeamQueryService(teams, rivalries)

	upper, err := service.Get(context.Background(), "BOS")
	if err != nil {
		t.Fatalf("Get(BOS) error: %v", err)
	}
	lower, err := service.Get(context.Background(), "bos")
	if err != nil {
		t.Fatalf("Get(bos) error: %v", err)
	}
	if upper.ID != lower.ID {
		t.Fatal("lookup must be case-insensitive on abbreviation")
	}

	byID, err := service.Get(context.Background(), "2")
	if err != nil || byID.Abbreviation != "LAL" {
		t.Fatalf("Get by id: %+v err=%v", byID, err)
	}

	_, err = service.Get(context.Background(), "ZZZ")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestTeamQueryServiceCompareReorients(t *testing.T) {
	t.Parallel()

	teams, rivalries := queryFixtures()
	service := NewTeamQueryService(teams, rivalries)

	got, err := service.Compare(context.Background(), "LAL", "BOS", "")
	if err != nil {
		t.Fatalf("Compare error: %v", err)
	}

	if got.Rivalry.TeamA != "LAL" || got.Rivalry.TeamB != "BOS" {
		t.Fatalf("rivalry not reoriented to query order: %+v", got.Rivalry)
	}
	if got.Rivalry.TeamAWins != 8 || got.Rivalry.TeamBWins != 10 {
		t.Fatalf("win counts must swap with the labels: %+v", got.Rivalry)
	}
	if got.Team1.Abbreviation != "LAL" || got.Team2.Abbreviation != "BOS" {
		t.Fatalf("team records out of order: %+v", got)
	}
}

func TestTeamQueryServiceCompareSyntheticRivalry(t *testing.T) {
	t.Parallel()

	teams, rivalries := queryFixtures()
	service := NewTeamQueryService(teams, rivalries)

	got, err := service.Compare(context.Background(), "MIA", "BOS", "1990s")
	if err != nil {
		t.Fatalf("Compare error: %v", err)
	}

	riv := got.Rivalry
	if riv.TeamA != "MIA" || riv.TeamB != "BOS" {
		t.Fatalf("synthetic rivalry keeps query order: %+v", riv)
	}
	if riv.TotalMeetings != 0 || riv.TeamAWins != 0 || riv.TeamBWins != 0 {
		t.Fatalf("synthetic rivalry must be all zero: %+v", riv)
	}
	if got.Decade != "1990s" {
		t.Fatalf("decade must be echoed back: %q", got.Decade)
	}
}

func TestPlayerQueryServiceListLimit(t *testing.T) {
	t.Parallel()

	repo := &stubPlayerRepository{items: []player.Record{
		{ID: "1", Name: "A"}, {ID: "2", Name: "B"}, {ID: "3", Name: "C"},
	}}
	service := NewPlayerQueryService(repo)

	all, err := service.List(context.Background(), 0)
	if err != nil || len(all) != 3 {
		t.Fatalf("List(0): %d err=%v", len(all), err)
	}

	two, err := service.List(context.Background(), 2)
	if err != nil || len(two) != 2 {
		t.Fatalf("List(2): %d err=%v", len(two), err)
	}

	oversized, err := service.List(context.Background(), 10)
	if err != nil || len(oversized) != 3 {
		t.Fatalf("List(10): %d err=%v", len(oversized), err)
	}
}

func TestStateQueryServiceGetAttachesTeams(t *testing.T) {
	t.Parallel()

	teams, _ := queryFixtures()
	states := &stubStateRepository{items: []state.Record{
		{Name: "California", TotalTeams: 1, AggregateWins: 50},
	}}
	service := NewStateQueryService(states, teams)

	got, err := service.Get(context.Background(), "california")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if got.Name != "California" {
		t.Fatalf("unexpected state: %+v", got.Record)
	}
	if len(got.Teams) != 1 || got.Teams[0].Abbreviation != "LAL" {
		t.Fatalf("teams not attached: %+v", got.Teams)
	}

	_, err = service.Get(context.Background(), "Atlantis")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

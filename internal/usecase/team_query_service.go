package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/courtsidehq/courtside/internal/domain/rivalry"
	"github.com/courtsidehq/courtside/internal/domain/team"
)

// Comparison is the head-to-head view of two teams. The rivalry is always
// oriented so its first side matches the first queried team; Decade echoes
// the caller's optional filter back without applying it.
type Comparison struct {
	Team1   team.Record    `json:"team1"`
	Team2   team.Record    `json:"team2"`
	Rivalry rivalry.Record `json:"rivalry"`
	Decade  string         `json:"decade,omitempty"`
}

// TeamQueryService answers team lookups and comparisons over the loaded
// snapshots. It performs no aggregation of its own.
type TeamQueryService struct {
	teamRepo    team.Repository
	rivalryRepo rivalry.Repository
}

func NewTeamQueryService(teamRepo team.Repository, rivalryRepo rivalry.Repository) *TeamQueryService {
	return &TeamQueryService{teamRepo: teamRepo, rivalryRepo: rivalryRepo}
}

func (s *TeamQueryService) List(ctx context.Context) ([]team.Record, error) {
	ctx, span := startUsecaseSpan(ctx, "TeamQueryService.List")
	defer span.End()

	items, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	return items, nil
}

func (s *TeamQueryService) Get(ctx context.Context, idOrAbbrev string) (team.Record, error) {
	ctx, span := startUsecaseSpan(ctx, "TeamQueryService.Get")
	defer span.End()

	idOrAbbrev = strings.TrimSpace(idOrAbbrev)
	if idOrAbbrev == "" {
		return team.Record{}, fmt.Errorf("%w: team identifier is required", ErrInvalidInput)
	}

	item, exists, err := s.teamRepo.Find(ctx, idOrAbbrev)
	if err != nil {
		return team.Record{}, fmt.Errorf("find team: %w", err)
	}
	if !exists {
		return team.Record{}, fmt.Errorf("%w: team=%s", ErrNotFound, idOrAbbrev)
	}
	return item, nil
}

// Compare looks up both teams, fetches their rivalry (synthesizing an
// all-zero record when they never met), and reorients it to the query order.
func (s *TeamQueryService) Compare(ctx context.Context, team1, team2, decade string) (Comparison, error) {
	ctx, span := startUsecaseSpan(ctx, "TeamQueryService.Compare")
	defer span.End()

	first, err := s.Get(ctx, team1)
	if err != nil {
		return Comparison{}, err
	}
	second, err := s.Get(ctx, team2)
	if err != nil {
		return Comparison{}, err
	}

	head2head, exists, err := s.rivalryRepo.FindPair(ctx, first.Abbreviation, second.Abbreviation)
	if err != nil {
		return Comparison{}, fmt.Errorf("find rivalry: %w", err)
	}
	if !exists {
		head2head = rivalry.Zero(first.Abbreviation, second.Abbreviation)
	}

	return Comparison{
		Team1:   first,
		Team2:   second,
		Rivalry: head2head.OrientedFor(first.Abbreviation),
		Decade:  strings.TrimSpace(decade),
	}, nil
}

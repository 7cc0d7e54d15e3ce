package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/courtsidehq/courtside/internal/domain/state"
	"github.com/courtsidehq/courtside/internal/domain/team"
)

// StateQueryService answers state rollup lookups, attaching the team records
// whose state matches.
type StateQueryService struct {
	stateRepo state.Repository
	teamRepo  team.Repository
}

func NewStateQueryService(stateRepo state.Repository, teamRepo team.Repository) *StateQueryService {
	return &StateQueryService{stateRepo: stateRepo, teamRepo: teamRepo}
}

func (s *StateQueryService) List(ctx context.Context) ([]state.Record, error) {
	ctx, span := startUsecaseSpan(ctx, "StateQueryService.List")
	defer span.End()

	items, err := s.stateRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list states: %w", err)
	}
	return items, nil
}

// Get matches the state name case-insensitively and includes the teams
// located there.
func (s *StateQueryService) Get(ctx context.Context, name string) (state.Detail, error) {
	ctx, span := startUsecaseSpan(ctx, "StateQueryService.Get")
	defer span.End()

	name = strings.TrimSpace(name)
	if name == "" {
		return state.Detail{}, fmt.Errorf("%w: state name is required", ErrInvalidInput)
	}

	rec, exists, err := s.stateRepo.FindByName(ctx, name)
	if err != nil {
		return state.Detail{}, fmt.Errorf("find state: %w", err)
	}
	if !exists {
		return state.Detail{}, fmt.Errorf("%w: state=%s", ErrNotFound, name)
	}

	teams, err := s.teamRepo.ListByState(ctx, rec.Name)
	if err != nil {
		return state.Detail{}, fmt.Errorf("list teams by state: %w", err)
	}
	if teams == nil {
		teams = []team.Record{}
	}
	return state.Detail{Record: rec, Teams: teams}, nil
}

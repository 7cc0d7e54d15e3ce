package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/courtsidehq/courtside/internal/domain/player"
)

// PlayerQueryService answers player lookups over the loaded snapshots.
type PlayerQueryService struct {
	playerRepo player.Repository
}

func NewPlayerQueryService(playerRepo player.Repository) *PlayerQueryService {
	return &PlayerQueryService{playerRepo: playerRepo}
}

// List returns players in snapshot order, truncated to limit when positive.
func (s *PlayerQueryService) List(ctx context.Context, limit int) ([]player.Record, error) {
	ctx, span := startUsecaseSpan(ctx, "PlayerQueryService.List")
	defer span.End()

	items, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items, nil
}

func (s *PlayerQueryService) Get(ctx context.Context, idOrName string) (player.Record, error) {
	ctx, span := startUsecaseSpan(ctx, "PlayerQueryService.Get")
	defer span.End()

	idOrName = strings.TrimSpace(idOrName)
	if idOrName == "" {
		return player.Record{}, fmt.Errorf("%w: player identifier is required", ErrInvalidInput)
	}

	item, exists, err := s.playerRepo.Find(ctx, idOrName)
	if err != nil {
		return player.Record{}, fmt.Errorf("find player: %w", err)
	}
	if !exists {
		return player.Record{}, fmt.Errorf("%w: player=%s", ErrNotFound, idOrName)
	}
	return item, nil
}

package usecase

import (
	"context"
	"fmt"

	"github.com/bytedance/sonic"

	"github.com/courtsidehq/courtside/internal/domain/player"
	"github.com/courtsidehq/courtside/internal/domain/rivalry"
	"github.com/courtsidehq/courtside/internal/domain/snapshot"
	"github.com/courtsidehq/courtside/internal/domain/state"
	"github.com/courtsidehq/courtside/internal/domain/team"
	"github.com/courtsidehq/courtside/internal/platform/logging"
)

// SnapshotService serializes bundles to the configured key->blob store and
// loads them back. Collections always encode as JSON arrays, so an empty
// pipeline run still writes [] instead of null.
type SnapshotService struct {
	store  snapshot.Store
	logger *logging.Logger
}

func NewSnapshotService(store snapshot.Store, logger *logging.Logger) *SnapshotService {
	if logger == nil {
		logger = logging.Default()
	}
	return &SnapshotService{store: store, logger: logger}
}

func (s *SnapshotService) Save(ctx context.Context, bundle snapshot.Bundle) error {
	ctx, span := startUsecaseSpan(ctx, "SnapshotService.Save")
	defer span.End()

	payloads := map[string]any{
		snapshot.KeyTeamSummary:    nonNil(bundle.Teams),
		snapshot.KeyPlayerSummary:  nonNil(bundle.Players),
		snapshot.KeyRivalrySummary: nonNil(bundle.Rivalries),
		snapshot.KeyStateSummary:   nonNil(bundle.States),
	}

	for _, key := range snapshot.Keys {
		raw, err := sonic.Marshal(payloads[key])
		if err != nil {
			return fmt.Errorf("encode snapshot %s: %w", key, err)
		}
		if err := s.store.Save(ctx, key, raw); err != nil {
			return fmt.Errorf("save snapshot %s: %w", key, err)
		}
		s.logger.InfoContext(ctx, "snapshot saved", "key", key, "bytes", len(raw))
	}
	return nil
}

// Load reads all four snapshots. Missing keys are returned by name and the
// matching collection stays empty; the caller decides whether that is fatal.
func (s *SnapshotService) Load(ctx context.Context) (snapshot.Bundle, []string, error) {
	ctx, span := startUsecaseSpan(ctx, "SnapshotService.Load")
	defer span.End()

	var bundle snapshot.Bundle
	var missing []string

	for _, key := range snapshot.Keys {
		raw, ok, err := s.store.Load(ctx, key)
		if err != nil {
			return snapshot.Bundle{}, nil, fmt.Errorf("load snapshot %s: %w", key, err)
		}
		if !ok {
			missing = append(missing, key)
			continue
		}

		switch key {
		case snapshot.KeyTeamSummary:
			var items []team.Record
			if err := sonic.Unmarshal(raw, &items); err != nil {
				return snapshot.Bundle{}, nil, fmt.Errorf("decode snapshot %s: %w", key, err)
			}
			bundle.Teams = items
		case snapshot.KeyPlayerSummary:
			var items []player.Record
			if err := sonic.Unmarshal(raw, &items); err != nil {
				return snapshot.Bundle{}, nil, fmt.Errorf("decode snapshot %s: %w", key, err)
			}
			bundle.Players = items
		case snapshot.KeyRivalrySummary:
			var items []rivalry.Record
			if err := sonic.Unmarshal(raw, &items); err != nil {
				return snapshot.Bundle{}, nil, fmt.Errorf("decode snapshot %s: %w", key, err)
			}
			bundle.Rivalries = items
		case snapshot.KeyStateSummary:
			var items []state.Record
			if err := sonic.Unmarshal(raw, &items); err != nil {
				return snapshot.Bundle{}, nil, fmt.Errorf("decode snapshot %s: %w", key, err)
			}
			bundle.States = items
		}
	}
	return bundle, missing, nil
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

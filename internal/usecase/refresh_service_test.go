package usecase

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sync"
	"testing"

	"github.com/bytedance/sonic"

	"github.com/courtsidehq/courtside/internal/domain/source"
	"github.com/courtsidehq/courtside/internal/platform/logging"
)

type stubFetcher struct {
	tables  map[string]source.Table
	missing map[string]bool
	failing map[string]bool
}

func (f *stubFetcher) FetchTable(ctx context.Context, name string) (source.Table, error) {
	if f.failing[name] {
		return source.Table{}, fmt.Errorf("%w: provider down", ErrDependencyUnavailable)
	}
	if f.missing[name] {
		return source.Table{}, fmt.Errorf("%w: table %s", ErrNotFound, name)
	}
	return f.tables[name], nil
}

type memorySnapshotStore struct {
	mu    sync.Mutex
	blobs map[string][]byte
}

func newMemorySnapshotStore() *memorySnapshotStore {
	return &memorySnapshotStore{blobs: make(map[string][]byte)}
}

func (s *memorySnapshotStore) Save(ctx context.Context, key string, payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blobs[key] = append([]byte(nil), payload...)
	return nil
}

func (s *memorySnapshotStore) Load(ctx context.Context, key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	raw, ok := s.blobs[key]
	return raw, ok, nil
}

func fullDatasetFetcher() *stubFetcher {
	return &stubFetcher{
		tables: map[string]source.Table{
			source.TableTeams: {Name: source.TableTeams, Rows: []source.Row{
				{"id": "1", "abbreviation": "BOS", "full_name": "Boston Celtics"},
				{"id": "2", "abbreviation": "LAL", "full_name": "Los Angeles Lakers"},
			}},
			source.TablePlayers: {Name: source.TablePlayers, Rows: []source.Row{
				{"player_id": "10", "full_name": "Larry Bird"},
			}},
			source.TableGames: {Name: source.TableGames, Rows: []source.Row{
				{
					"team_abbreviation_home": "BOS",
					"team_abbreviation_away": "LAL",
					"pts_home":               "100",
					"pts_away":               "95",
					"game_date":              "1986-01-01",
				},
			}},
			source.TablePlayerTotals: {Name: source.TablePlayerTotals, Rows: []source.Row{
				{"player_id": "10", "player": "Larry Bird", "tm": "BOS", "g": "82", "pts": "2000"},
			}},
			source.TableChampionships: {Name: source.TableChampionships, Rows: []source.Row{
				{"Team": "Celtics", "Year": "1986", "Status": "Champion"},
			}},
		},
		missing: map[string]bool{
			source.TableTeamPerGame:   true,
			source.TableTeamSummaries: true,
			source.TableAdvanced:      true,
			source.TableAllStar:       true,
			source.TableAwards:        true,
		},
	}
}

func TestRefreshServiceRun(t *testing.T) {
	t.Parallel()

	store := newMemorySnapshotStore()
	service := NewRefreshService(fullDatasetFetcher(), NewSnapshotService(store, logging.NewNop()), logging.NewNop(), 4)

	bundle, err := service.Run(context.Background())
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}

	if len(bundle.Teams) != 2 || len(bundle.Players) != 1 || len(bundle.Rivalries) != 1 || len(bundle.States) != 2 {
		t.Fatalf("unexpected bundle sizes: teams=%d players=%d rivalries=%d states=%d",
			len(bundle.Teams), len(bundle.Players), len(bundle.Rivalries), len(bundle.States))
	}

	bos := bundle.Teams[0]
	if bos.TotalWins != 1 || bos.Championships != 1 || bos.WinPct != 1.0 {
		t.Fatalf("unexpected BOS record: %+v", bos)
	}
	if bos.PointsPerGame != nil {
		t.Fatalf("missing optional source must leave per-game fields unset: %+v", bos)
	}

	bird := bundle.Players[0]
	if bird.TotalGames != 82 || bird.CareerPPG != 24.4 {
		t.Fatalf("unexpected player record: %+v", bird)
	}

	if len(store.blobs) != 4 {
		t.Fatalf("expected 4 persisted snapshots, got %d", len(store.blobs))
	}
}

func TestRefreshServiceRequiredTableFailureAborts(t *testing.T) {
	t.Parallel()

	fetcher := fullDatasetFetcher()
	fetcher.failing = map[string]bool{source.TableGames: true}

	store := newMemorySnapshotStore()
	service := NewRefreshService(fetcher, NewSnapshotService(store, logging.NewNop()), logging.NewNop(), 4)

	_, err := service.Run(context.Background())
	if !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected dependency error, got %v", err)
	}
	if len(store.blobs) != 0 {
		t.Fatal("no snapshot may be written on an aborted run")
	}
}

func TestRefreshServiceEmptyInputsProduceEmptySnapshots(t *testing.T) {
	t.Parallel()

	fetcher := &stubFetcher{
		tables: map[string]source.Table{
			source.TableTeams:   {Name: source.TableTeams},
			source.TablePlayers: {Name: source.TablePlayers},
			source.TableGames:   {Name: source.TableGames},
		},
		missing: map[string]bool{
			source.TablePlayerTotals:  true,
			source.TableTeamPerGame:   true,
			source.TableTeamSummaries: true,
			source.TableAdvanced:      true,
			source.TableAllStar:       true,
			source.TableAwards:        true,
			source.TableChampionships: true,
		},
	}

	store := newMemorySnapshotStore()
	service := NewRefreshService(fetcher, NewSnapshotService(store, logging.NewNop()), logging.NewNop(), 2)

	bundle, err := service.Run(context.Background())
	if err != nil {
		t.Fatalf("empty inputs must not fail: %v", err)
	}
	if len(bundle.Teams) != 0 || len(bundle.Players) != 0 {
		t.Fatalf("expected empty bundle: %+v", bundle)
	}

	for key, raw := range store.blobs {
		if string(raw) != "[]" {
			t.Errorf("snapshot %s must encode as an empty array, got %s", key, raw)
		}
	}
}

func TestRefreshServiceRunIsIdempotent(t *testing.T) {
	t.Parallel()

	store := newMemorySnapshotStore()
	service := NewRefreshService(fullDatasetFetcher(), NewSnapshotService(store, logging.NewNop()), logging.NewNop(), 4)

	first, err := service.Run(context.Background())
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	firstRaw, err := sonic.Marshal(first)
	if err != nil {
		t.Fatalf("marshal first bundle: %v", err)
	}

	second, err := service.Run(context.Background())
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	secondRaw, err := sonic.Marshal(second)
	if err != nil {
		t.Fatalf("marshal second bundle: %v", err)
	}

	if !reflect.DeepEqual(firstRaw, secondRaw) {
		t.Fatal("identical inputs must produce identical snapshots")
	}
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/courtsidehq/courtside/internal/domain/snapshot"
	"github.com/courtsidehq/courtside/internal/domain/source"
	"github.com/courtsidehq/courtside/internal/platform/logging"
)

// TableFetcher is the opaque raw-data acquisition boundary.
type TableFetcher interface {
	FetchTable(ctx context.Context, name string) (source.Table, error)
}

// RefreshService runs one full normalization-and-aggregation pass: fetch the
// raw tables, fold them through the aggregators in dependency order, and
// persist the four snapshots. Fetching is the only concurrent part; the
// aggregation itself is a single sequential pass per stage, so re-running on
// identical input always yields identical snapshots.
type RefreshService struct {
	fetcher   TableFetcher
	snapshots *SnapshotService
	logger    *logging.Logger
	workers   int
}

func NewRefreshService(fetcher TableFetcher, snapshots *SnapshotService, logger *logging.Logger, workers int) *RefreshService {
	if logger == nil {
		logger = logging.Default()
	}
	if workers <= 0 {
		workers = 4
	}
	return &RefreshService{
		fetcher:   fetcher,
		snapshots: snapshots,
		logger:    logger,
		workers:   workers,
	}
}

var allTables = []string{
	source.TableTeams,
	source.TablePlayers,
	source.TableGames,
	source.TablePlayerTotals,
	source.TableTeamPerGame,
	source.TableTeamSummaries,
	source.TableAdvanced,
	source.TableAllStar,
	source.TableAwards,
	source.TableChampionships,
}

// Run executes the pipeline and returns the bundle it persisted. Missing
// optional sources degrade to warnings and empty tables; a required source
// that cannot be fetched aborts the run.
func (s *RefreshService) Run(ctx context.Context) (snapshot.Bundle, error) {
	ctx, span := startUsecaseSpan(ctx, "RefreshService.Run")
	defer span.End()

	tables, err := s.fetchAll(ctx)
	if err != nil {
		return snapshot.Bundle{}, err
	}

	teams := source.AdaptTeams(tables[source.TableTeams])
	roster := source.AdaptPlayers(tables[source.TablePlayers])
	games := source.AdaptGames(tables[source.TableGames])
	seasons := source.AdaptPlayerSeasons(tables[source.TablePlayerTotals])
	perGame := source.AdaptTeamPerGame(tables[source.TableTeamPerGame])
	teamAdvanced := source.AdaptTeamAdvanced(tables[source.TableTeamSummaries])
	advanced := source.AdaptAdvanced(tables[source.TableAdvanced])
	allStars := source.AdaptAllStarNames(tables[source.TableAllStar])
	awards := source.AdaptAwards(tables[source.TableAwards])
	champRows := source.AdaptChampionships(tables[source.TableChampionships])

	s.logger.InfoContext(ctx, "sources adapted",
		"teams", len(teams),
		"players", len(roster),
		"games", len(games),
		"player_seasons", len(seasons),
		"team_per_game", len(perGame),
		"team_advanced", len(teamAdvanced),
		"player_advanced", len(advanced),
		"all_star_selections", len(allStars),
		"award_rows", len(awards),
		"championship_rows", len(champRows),
	)
	s.logChampionships(ctx, champRows)

	outcomes := AggregateOutcomes(games)

	careers := NewCareerAggregator(roster)
	careers.AddSeasonRows(seasons)
	careers.AddAdvanced(advanced)
	players := careers.Emit(allStars, awards)

	teamRecords := BuildTeamSummaries(TeamBuilderInput{
		Teams:         teams,
		Outcomes:      outcomes,
		Championships: champRows,
		PerGame:       perGame,
		Advanced:      teamAdvanced,
	})

	bundle := snapshot.Bundle{
		Teams:     teamRecords,
		Players:   players,
		Rivalries: outcomes.Rivalries,
		States:    RollupStates(teamRecords),
	}

	if err := s.snapshots.Save(ctx, bundle); err != nil {
		return snapshot.Bundle{}, err
	}

	s.logger.InfoContext(ctx, "refresh complete",
		"teams", len(bundle.Teams),
		"players", len(bundle.Players),
		"rivalries", len(bundle.Rivalries),
		"states", len(bundle.States),
	)
	return bundle, nil
}

// fetchAll downloads every table through a bounded worker pool. The pool
// only spans the I/O boundary; results are collected before any aggregation
// starts.
func (s *RefreshService) fetchAll(ctx context.Context) (map[string]source.Table, error) {
	pool, err := ants.NewPool(s.workers)
	if err != nil {
		return nil, fmt.Errorf("create fetch pool: %w", err)
	}
	defer pool.Release()

	var mu sync.Mutex
	tables := make(map[string]source.Table, len(allTables))
	fetchErrs := make(map[string]error, len(allTables))

	var workers sync.WaitGroup
	for _, name := range allTables {
		name := name
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			table, err := s.fetcher.FetchTable(ctx, name)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				fetchErrs[name] = err
				return
			}
			tables[name] = table
		}); err != nil {
			workers.Done()
			return nil, fmt.Errorf("submit fetch task: %w", err)
		}
	}
	workers.Wait()

	for _, name := range allTables {
		err, failed := fetchErrs[name]
		if !failed {
			continue
		}
		if !source.OptionalTables[name] {
			return nil, fmt.Errorf("fetch required table %s: %w", name, err)
		}
		if errors.Is(err, ErrNotFound) {
			s.logger.WarnContext(ctx, "optional source missing, dependent fields will be unset", "table", name)
		} else {
			s.logger.WarnContext(ctx, "optional source fetch failed, continuing without it", "table", name, "error", err)
		}
		tables[name] = source.Table{Name: name}
	}
	return tables, nil
}

// logChampionships mirrors the per-team title breakdown at load time so a
// run's championship attribution is auditable from the logs.
func (s *RefreshService) logChampionships(ctx context.Context, rows []source.ChampionshipRow) {
	tallies := TallyChampionships(rows)
	if len(tallies) == 0 {
		return
	}

	codes := make([]string, 0, len(tallies))
	for code := range tallies {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool {
		if tallies[codes[i]].Count != tallies[codes[j]].Count {
			return tallies[codes[i]].Count > tallies[codes[j]].Count
		}
		return codes[i] < codes[j]
	})

	for _, code := range codes {
		s.logger.InfoContext(ctx, "championship tally", "team", code, "count", tallies[code].Count, "years", dedupeSortYears(tallies[code].Years))
	}
}

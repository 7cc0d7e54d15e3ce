package kaggle

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"

	"github.com/courtsidehq/courtside/internal/domain/source"
	"github.com/courtsidehq/courtside/internal/platform/logging"
	"github.com/courtsidehq/courtside/internal/platform/resilience"
	"github.com/courtsidehq/courtside/internal/usecase"
)

const (
	defaultBaseURL = "https://courtside-datasets.s3.amazonaws.com"
	maxBodyBytes   = 256 << 20
)

var errKaggleTransient = crerr.New("dataset provider transient failure")

// tableFiles maps logical table names to candidate dataset paths. Some
// mirrors publish files under display-cased names, so every table carries a
// fallback list tried in order.
var tableFiles = map[string][]string{
	source.TableTeams:         {"csv/team.csv"},
	source.TablePlayers:       {"csv/player.csv"},
	source.TableGames:         {"csv/game.csv"},
	source.TablePlayerTotals:  {"player_totals.csv", "Player Totals.csv"},
	source.TableTeamPerGame:   {"team_stats_per_game.csv", "Team Stats Per Game.csv"},
	source.TableTeamSummaries: {"team_summaries.csv", "Team Summaries.csv"},
	source.TableAdvanced:      {"advanced.csv", "Advanced.csv"},
	source.TableAllStar:       {"all_star_selections.csv", "All Star Selections.csv"},
	source.TableAwards:        {"awards_voting_results.csv", "Awards Voting Results.csv"},
	source.TableChampionships: {"champs_and_runner_ups_series_averages.csv"},
}

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	Timeout        time.Duration
	MaxRetries     int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client fetches raw dataset tables over HTTP and parses them into tabular
// rows. It is the only I/O boundary the pipeline crosses.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	maxRetries     int
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 60 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	maxRetries := cfg.MaxRetries
	if maxRetries < 0 {
		maxRetries = 0
	}

	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		maxRetries:     maxRetries,
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
	}
}

// FetchTable downloads and parses one logical table. Every candidate path is
// tried in order; a 404 moves on to the next candidate, so mirrors with
// display-cased file names still resolve. ErrNotFound comes back when no
// candidate exists, which callers treat as a missing optional source.
func (c *Client) FetchTable(ctx context.Context, name string) (source.Table, error) {
	paths, ok := tableFiles[name]
	if !ok {
		return source.Table{}, fmt.Errorf("%w: unknown table %q", usecase.ErrInvalidInput, name)
	}

	var lastErr error
	for _, path := range paths {
		raw, err := c.fetchCSV(ctx, path)
		if err != nil {
			if crerr.Is(err, errTableMissing) {
				lastErr = err
				continue
			}
			return source.Table{}, fmt.Errorf("fetch table %s: %w", name, err)
		}

		rows, err := parseCSV(raw)
		if err != nil {
			return source.Table{}, fmt.Errorf("parse table %s: %w", name, err)
		}
		return source.Table{Name: name, Rows: rows}, nil
	}

	if lastErr != nil {
		return source.Table{}, fmt.Errorf("%w: table %s: %v", usecase.ErrNotFound, name, lastErr)
	}
	return source.Table{}, fmt.Errorf("%w: table %s has no dataset paths", usecase.ErrNotFound, name)
}

var errTableMissing = crerr.New("dataset file missing")

func (c *Client) fetchCSV(ctx context.Context, path string) ([]byte, error) {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "dataset circuit breaker rejected request", "state", c.breaker.State())
			return nil, fmt.Errorf("%w: dataset provider is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	}

	raw, err := c.executeRequest(ctx, c.baseURL+"/"+strings.ReplaceAll(path, " ", "%20"))
	if c.circuitEnabled {
		if err != nil && crerr.Is(err, errKaggleTransient) {
			c.breaker.RecordFailure()
		} else {
			c.breaker.RecordSuccess()
		}
	}
	return raw, err
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("accept", "text/csv")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("%w: send request: %v", errKaggleTransient, err)
		} else {
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
			_ = resp.Body.Close()
			switch {
			case readErr != nil:
				lastErr = fmt.Errorf("%w: read response body: %v", errKaggleTransient, readErr)
			case resp.StatusCode >= 200 && resp.StatusCode < 300:
				return raw, nil
			case resp.StatusCode == http.StatusNotFound:
				return nil, fmt.Errorf("%w: status=404 url=%s", errTableMissing, fullURL)
			case isRetryableStatus(resp.StatusCode):
				lastErr = fmt.Errorf("%w: provider status=%d", errKaggleTransient, resp.StatusCode)
			default:
				return nil, fmt.Errorf("provider status=%d url=%s", resp.StatusCode, fullURL)
			}
		}

		if attempt == c.maxRetries {
			break
		}
		backoff := time.Duration(attempt+1) * time.Second
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("provider request failed")
	}
	c.logger.WarnContext(ctx, "dataset request failed", "url", fullURL, "error", lastErr)
	return nil, lastErr
}

func isRetryableStatus(status int) bool {
	return status == http.StatusTooManyRequests || status >= 500
}

// parseCSV turns a CSV document into rows keyed by the header line. Header
// names are trimmed; ragged lines are tolerated and short cells simply stay
// absent from the row.
func parseCSV(raw []byte) ([]source.Row, error) {
	reader := csv.NewReader(strings.NewReader(string(raw)))
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	rows := make([]source.Row, 0, 1024)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read record: %w", err)
		}

		row := make(source.Row, len(header))
		for i, cell := range record {
			if i >= len(header) || header[i] == "" {
				continue
			}
			row[header[i]] = cell
		}
		rows = append(rows, row)
	}
	return rows, nil
}

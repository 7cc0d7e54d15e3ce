package snapshot

import (
	"context"

	"github.com/courtsidehq/courtside/internal/domain/player"
	"github.com/courtsidehq/courtside/internal/domain/rivalry"
	"github.com/courtsidehq/courtside/internal/domain/state"
	"github.com/courtsidehq/courtside/internal/domain/team"
)

// Keys of the four persisted aggregate collections.
const (
	KeyTeamSummary    = "team_summary"
	KeyPlayerSummary  = "player_summary"
	KeyRivalrySummary = "rivalry_summary"
	KeyStateSummary   = "state_summary"
)

// Keys lists every snapshot key in emission order.
var Keys = []string{KeyTeamSummary, KeyPlayerSummary, KeyRivalrySummary, KeyStateSummary}

// Bundle holds the four aggregate collections. A bundle is built once by the
// pipeline (or loaded once at API startup) and never mutated afterwards, so
// it is safe to share across concurrent readers without locking.
type Bundle struct {
	Teams     []team.Record
	Players   []player.Record
	Rivalries []rivalry.Record
	States    []state.Record
}

// Store is the opaque key to blob persistence boundary for snapshots.
// Load returns ok=false when the key has never been written.
type Store interface {
	Save(ctx context.Context, key string, payload []byte) error
	Load(ctx context.Context, key string) ([]byte, bool, error)
}

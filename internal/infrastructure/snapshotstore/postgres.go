package snapshotstore

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	qb "github.com/courtsidehq/courtside/internal/platform/querybuilder"
)

// PostgresStore persists snapshots in a single keyed table, one row per
// snapshot key, overwritten in place on every refresh.
type PostgresStore struct {
	db *sqlx.DB
}

func NewPostgresStore(db *sqlx.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

type snapshotInsertModel struct {
	Key       string    `db:"snapshot_key"`
	Payload   []byte    `db:"payload"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (s *PostgresStore) Save(ctx context.Context, key string, payload []byte) error {
	model := snapshotInsertModel{
		Key:       key,
		Payload:   payload,
		UpdatedAt: time.Now().UTC(),
	}

	query, args, err := qb.InsertModel("snapshots", model, `ON CONFLICT (snapshot_key)
DO UPDATE SET
    payload = EXCLUDED.payload,
    updated_at = EXCLUDED.updated_at`)
	if err != nil {
		return fmt.Errorf("build upsert snapshot query: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert snapshot %s: %w", key, err)
	}
	return nil
}

func (s *PostgresStore) Load(ctx context.Context, key string) ([]byte, bool, error) {
	query, args, err := qb.Select("payload").From("snapshots").
		Where(qb.Eq("snapshot_key", key)).
		ToSQL()
	if err != nil {
		return nil, false, fmt.Errorf("build select snapshot query: %w", err)
	}

	var payload []byte
	if err := s.db.GetContext(ctx, &payload, query, args...); err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("select snapshot %s: %w", key, err)
	}
	return payload, true, nil
}

package kv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// SQL keeps values in the kv_store table, see the schema package
type SQL struct {
	db      *sql.DB
	timeout time.Duration
}

var _ Store = (*SQL)(nil)

func NewSQL(db *sql.DB, timeout time.Duration) *SQL {
	return &SQL{db: db, timeout: timeout}
}

func (s *SQL) Get(ctx context.Context, key string) ([]byte, bool, error) {
	dbCtx, dbCancel := withTimeout(ctx, s.timeout)
	defer dbCancel()

	stmt, err := s.db.PrepareContext(dbCtx, "SELECT payload FROM kv_store WHERE storage_key = ?")
	if err != nil {
		return nil, false, fmt.Errorf("failed to prepare get stmt: %w", err)
	}
	defer stmt.Close()

	var payload string
	err = stmt.QueryRowContext(dbCtx, key).Scan(&payload)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, false, nil
	case err != nil:
		return nil, false, fmt.Errorf("failed to query get stmt: %w", err)
	default:
		return []byte(payload), true, nil
	}
}

// Set replaces the row for key inside a single transaction
func (s *SQL) Set(ctx context.Context, key string, value []byte) error {
	dbCtx, dbCancel := withTimeout(ctx, s.timeout)
	defer dbCancel()

	tx, err := s.db.BeginTx(dbCtx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin set tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(dbCtx, "DELETE FROM kv_store WHERE storage_key = ?", key); err != nil {
		return fmt.Errorf("failed to exec delete stmt: %w", err)
	}
	if _, err := tx.ExecContext(dbCtx, "INSERT INTO kv_store (storage_key, payload) VALUES (?, ?)", key, string(value)); err != nil {
		return fmt.Errorf("failed to exec insert stmt: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit set tx: %w", err)
	}
	return nil
}

package store

import (
	"database/sql"
	"fmt"
	"time"
)

// The ledger is a single versioned record: the full stats snapshot is
// rewritten under one key on every mutation, never deltas.
const (
	ledgerKey = "training"

	// ledgerVersion tags the snapshot format. Bump when the payload
	// shape changes; Decode keeps reading older shapes.
	ledgerVersion = 9
)

// sqlLedger implements stats.Ledger on the SQLite store.
type sqlLedger struct {
	db *sql.DB
}

// Ledger returns the stats ledger backed by this store.
func (s *Store) Ledger() *sqlLedger {
	return &sqlLedger{db: s.db}
}

// Load reads the persisted ledger bytes, or (nil, nil) when none exist.
func (l *sqlLedger) Load() ([]byte, error) {
	var data []byte
	err := l.db.QueryRow(
		"SELECT data FROM ledger WHERE key = ?", ledgerKey,
	).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load ledger: %w", err)
	}
	return data, nil
}

// Save writes the full snapshot, replacing the previous record.
func (l *sqlLedger) Save(data []byte) error {
	_, err := l.db.Exec(`
		INSERT INTO ledger (key, version, data, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			version = excluded.version,
			data = excluded.data,
			updated_at = excluded.updated_at`,
		ledgerKey, ledgerVersion, data, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("save ledger: %w", err)
	}
	return nil
}

// Reset deletes the ledger record and the answer history.
func (s *Store) Reset() error {
	if _, err := s.db.Exec("DELETE FROM ledger WHERE key = ?", ledgerKey); err != nil {
		return fmt.Errorf("reset ledger: %w", err)
	}
	if _, err := s.db.Exec("DELETE FROM answer_events"); err != nil {
		return fmt.Errorf("reset answer events: %w", err)
	}
	return nil
}

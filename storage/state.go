package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNotFound indicates a requested row does not exist.
var ErrNotFound = errors.New("storage: record not found")

// PutState upserts one key→JSON-blob entry.
func (s *Store) PutState(key string, value any) error {
	if key == "" {
		return errors.New("state_key is required")
	}

	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal state %q: %w", key, err)
	}

	_, err = s.db.Exec(
		`INSERT INTO local_state (state_key, payload, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(state_key) DO UPDATE SET
			payload = excluded.payload,
			updated_at = excluded.updated_at`,
		key,
		string(payload),
		nowUnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("upsert state %q: %w", key, err)
	}

	return nil
}

// GetState reads one key→JSON-blob entry into out.
func (s *Store) GetState(key string, out any) error {
	if key == "" {
		return errors.New("state_key is required")
	}

	var payload string
	err := s.db.QueryRow(
		`SELECT payload FROM local_state WHERE state_key = ?`,
		key,
	).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("get state %q: %w", key, err)
	}

	if err := json.Unmarshal([]byte(payload), out); err != nil {
		return fmt.Errorf("parse state %q: %w", key, err)
	}

	return nil
}

// DeleteState removes one entry; missing keys are not an error.
func (s *Store) DeleteState(key string) error {
	if key == "" {
		return errors.New("state_key is required")
	}

	if _, err := s.db.Exec(`DELETE FROM local_state WHERE state_key = ?`, key); err != nil {
		return fmt.Errorf("delete state %q: %w", key, err)
	}

	return nil
}

package store

import (
	"context"
	"database/sql"
	"fmt"
)

// Slot keys. Each collection lives under one key as a serialized array;
// scalar settings each get their own key.
const (
	slotEntries     = "entries"
	slotUsers       = "app_users"
	slotNotes       = "notes"
	slotContacts    = "phonebook"
	slotSettings    = "app_settings"
	slotTheme       = "theme"
	slotCurrentUser = "current_user_id"
	slotLastSync    = "last_cloud_sync"
)

// getSlot reads the raw value stored under key. The second return value
// reports whether the slot exists.
func getSlot(ctx context.Context, db *sql.DB, key string) (string, bool, error) {
	var value string
	err := db.QueryRowContext(ctx,
		`SELECT value FROM slots WHERE key = ?`, key,
	).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading slot %q: %w", key, err)
	}
	return value, true, nil
}

// setSlot overwrites the value stored under key (last writer wins).
func setSlot(ctx context.Context, db *sql.DB, key, value string) error {
	_, err := db.ExecContext(ctx,
		`INSERT INTO slots (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("writing slot %q: %w", key, err)
	}
	return nil
}

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/bwmarrin/snowflake"
	"github.com/spf13/cast"

	"github.com/rahulhaldarin-lang/OFFICE-LENS/internal/model"
)

// Notifier is called after every successful persist with the slot key that
// changed. It is the extension seam for a future sync layer; implementations
// must not block and must not affect store state.
type Notifier interface {
	Notify(slot string)
}

// Store owns the canonical in-memory collections and is the only writer to
// durable storage. Every accepted mutation rewrites the affected slot in
// full; if the write fails, the failure is logged and the in-memory state
// stays ahead of the durable state until the next successful write.
type Store struct {
	mu   sync.Mutex
	db   *sql.DB
	node *snowflake.Node

	entries  []model.Entry
	users    []model.User
	notes    []model.Note
	contacts []model.Contact

	settings      model.Settings
	theme         string
	currentUserID string
	lastSyncedAt  int64

	notifier Notifier
}

// Open loads all collections from the slot table. A slot that cannot be
// read or parsed degrades to an empty collection so startup never fails on
// bad data. If no users exist, the default user is seeded.
func Open(ctx context.Context, database *sql.DB) (*Store, error) {
	node, err := snowflake.NewNode(1)
	if err != nil {
		return nil, fmt.Errorf("creating id node: %w", err)
	}

	s := &Store{
		db:       database,
		node:     node,
		settings: model.DefaultSettings(),
		theme:    model.ThemeLight,
	}

	s.entries = loadSlice[model.Entry](ctx, database, slotEntries)
	s.users = loadSlice[model.User](ctx, database, slotUsers)
	s.notes = loadSlice[model.Note](ctx, database, slotNotes)
	s.contacts = loadSlice[model.Contact](ctx, database, slotContacts)

	if raw, ok := loadScalar(ctx, database, slotSettings); ok {
		var settings model.Settings
		if err := json.Unmarshal([]byte(raw), &settings); err != nil {
			slog.Warn("ignoring malformed settings slot", "error", err)
		} else {
			s.settings = settings
		}
	}

	if raw, ok := loadScalar(ctx, database, slotTheme); ok && model.ValidTheme(raw) {
		s.theme = raw
	}
	if raw, ok := loadScalar(ctx, database, slotCurrentUser); ok {
		s.currentUserID = raw
	}
	if raw, ok := loadScalar(ctx, database, slotLastSync); ok {
		s.lastSyncedAt = cast.ToInt64(raw)
	}

	if len(s.users) == 0 {
		s.users = []model.User{{ID: model.DefaultUserID, Name: model.DefaultUserName}}
		s.persistSlot(ctx, slotUsers, s.users)
	}
	if s.currentUserID == "" || s.userIndex(s.currentUserID) < 0 {
		s.currentUserID = s.users[0].ID
		s.persistSlot(ctx, slotCurrentUser, s.currentUserID)
	}

	return s, nil
}

// SetNotifier registers the post-persist notifier. Pass nil to disable.
func (s *Store) SetNotifier(n Notifier) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifier = n
}

// newID returns a fresh opaque unique identifier.
func (s *Store) newID() string {
	return s.node.Generate().String()
}

// persistSlot serializes v and rewrites its slot. Failures are logged, not
// returned: the mutation has already been accepted in memory and the store
// makes no attempt to roll it back or retry.
func (s *Store) persistSlot(ctx context.Context, key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		slog.Error("failed to serialize slot", "slot", key, "error", err)
		return
	}
	if err := setSlot(ctx, s.db, key, string(data)); err != nil {
		slog.Error("failed to persist slot, in-memory state is ahead of durable state",
			"slot", key, "error", err)
		return
	}
	if s.notifier != nil {
		s.notifier.Notify(key)
	}
}

// persistScalar rewrites a scalar slot without JSON encoding.
func (s *Store) persistScalar(ctx context.Context, key, value string) {
	if err := setSlot(ctx, s.db, key, value); err != nil {
		slog.Error("failed to persist slot, in-memory state is ahead of durable state",
			"slot", key, "error", err)
		return
	}
	if s.notifier != nil {
		s.notifier.Notify(key)
	}
}

// loadSlice reads and decodes an array slot, degrading to empty on any failure.
func loadSlice[T any](ctx context.Context, db *sql.DB, key string) []T {
	raw, ok, err := getSlot(ctx, db, key)
	if err != nil {
		slog.Warn("failed to read slot, starting empty", "slot", key, "error", err)
		return nil
	}
	if !ok {
		return nil
	}

	var out []T
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		slog.Warn("ignoring malformed slot, starting empty", "slot", key, "error", err)
		return nil
	}
	return out
}

// loadScalar reads a scalar slot, degrading to absent on read failure.
func loadScalar(ctx context.Context, db *sql.DB, key string) (string, bool) {
	raw, ok, err := getSlot(ctx, db, key)
	if err != nil {
		slog.Warn("failed to read slot", "slot", key, "error", err)
		return "", false
	}
	return raw, ok
}

package store

import (
	"context"
	"errors"
	"strconv"

	"github.com/rahulhaldarin-lang/OFFICE-LENS/internal/model"
)

// ErrUnknownTheme is returned when an unrecognized theme name is set.
var ErrUnknownTheme = errors.New("unknown theme")

// Settings returns the current app branding.
func (s *Store) Settings() model.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// SetSettings replaces the app branding. Empty titles fall back to the
// defaults so the header and bill never render blank.
func (s *Store) SetSettings(ctx context.Context, settings model.Settings) {
	defaults := model.DefaultSettings()
	if settings.PrimaryTitle == "" {
		settings.PrimaryTitle = defaults.PrimaryTitle
	}
	if settings.SecondaryTitle == "" {
		settings.SecondaryTitle = defaults.SecondaryTitle
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = settings
	s.persistSlot(ctx, slotSettings, s.settings)
}

// Theme returns the current theme name.
func (s *Store) Theme() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.theme
}

// SetTheme switches between light and dark.
func (s *Store) SetTheme(ctx context.Context, theme string) error {
	if !model.ValidTheme(theme) {
		return ErrUnknownTheme
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.theme = theme
	s.persistScalar(ctx, slotTheme, theme)
	return nil
}

// LastSyncedAt returns the epoch-millisecond timestamp of the last
// simulated cloud sync, or 0 if none has run.
func (s *Store) LastSyncedAt() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSyncedAt
}

// SetLastSyncedAt records when the sync stub last ran.
func (s *Store) SetLastSyncedAt(ctx context.Context, ts int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSyncedAt = ts
	s.persistScalar(ctx, slotLastSync, strconv.FormatInt(ts, 10))
}

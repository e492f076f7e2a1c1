// Package cloudsync is a deliberate stub. It stands where a multi-device
// sync layer would go, but performs no network I/O: it only logs, simulates
// latency, and records when it last "ran". Nothing in the store depends on
// it for correctness.
package cloudsync

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/rahulhaldarin-lang/OFFICE-LENS/internal/store"
)

// DefaultDelay is the simulated round-trip latency.
const DefaultDelay = 1500 * time.Millisecond

// Status is a snapshot of the stub's state for display.
type Status struct {
	LastSyncedAt int64 `json:"last_synced_at"` // epoch ms, 0 = never
	Syncing      bool  `json:"syncing"`
	Connected    bool  `json:"connected"` // always false: no backend is configured
	Records      int   `json:"records"`
}

// Service is the log-only sync collaborator. It implements store.Notifier
// so the store can signal changed slots; a real implementation would queue
// those for upload.
type Service struct {
	store *store.Store
	delay time.Duration

	mu      sync.Mutex
	syncing bool
	dirty   map[string]bool
}

// New creates the stub bound to the given store.
func New(st *store.Store) *Service {
	return &Service{
		store: st,
		delay: DefaultDelay,
		dirty: make(map[string]bool),
	}
}

// Notify records that a slot changed since the last sync. Called by the
// store after every successful persist; must not block.
func (s *Service) Notify(slot string) {
	s.mu.Lock()
	s.dirty[slot] = true
	s.mu.Unlock()
}

// Sync simulates one sync round trip: it logs what would be uploaded,
// waits the artificial delay, and stamps the last-synced time. Concurrent
// calls collapse into one; the second caller returns immediately.
func (s *Service) Sync(ctx context.Context) Status {
	s.mu.Lock()
	if s.syncing {
		s.mu.Unlock()
		return s.Status()
	}
	s.syncing = true
	pending := len(s.dirty)
	s.mu.Unlock()

	records := len(s.store.Entries())
	slog.Info("cloud sync skipped: no backend configured, simulating only",
		"records", records, "changed_slots", pending)

	select {
	case <-time.After(s.delay):
	case <-ctx.Done():
	}

	s.store.SetLastSyncedAt(ctx, time.Now().UnixMilli())

	s.mu.Lock()
	s.dirty = make(map[string]bool)
	s.syncing = false
	s.mu.Unlock()

	return s.Status()
}

// Status returns the current stub state.
func (s *Service) Status() Status {
	s.mu.Lock()
	syncing := s.syncing
	s.mu.Unlock()

	return Status{
		LastSyncedAt: s.store.LastSyncedAt(),
		Syncing:      syncing,
		Connected:    false,
		Records:      len(s.store.Entries()),
	}
}

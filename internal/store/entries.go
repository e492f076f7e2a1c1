package store

import (
	"context"
	"time"

	"github.com/rahulhaldarin-lang/OFFICE-LENS/internal/model"
)

// DateLayout is the calendar date format entries carry.
const DateLayout = "02/01/2006"

// CreateEntry validates and normalizes a draft, assigns it a fresh id and
// creation timestamp, and prepends it to the entry list (newest first).
// The draft's id, created-at and status fields are ignored.
func (s *Store) CreateEntry(ctx context.Context, draft model.Entry) (model.Entry, error) {
	if draft.Date == "" {
		draft.Date = time.Now().Format(DateLayout)
	}

	model.NormalizeEntry(&draft)
	if err := model.ValidateEntry(&draft); err != nil {
		return model.Entry{}, err
	}

	draft.ID = s.newID()
	draft.CreatedAt = time.Now().UnixMilli()
	draft.Status = model.EntryActive

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append([]model.Entry{draft}, s.entries...)
	s.persistSlot(ctx, slotEntries, s.entries)
	return draft, nil
}

// UpdateEntry replaces the stored entry matching entry.ID. The id, owner,
// creation timestamp and lifecycle status of the stored entry are kept;
// an update never resurrects or trashes an entry. Returns false if no
// entry has that id.
func (s *Store) UpdateEntry(ctx context.Context, entry model.Entry) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.entryIndex(entry.ID)
	if i < 0 {
		return false, nil
	}

	stored := s.entries[i]
	entry.ID = stored.ID
	entry.UserID = stored.UserID
	entry.CreatedAt = stored.CreatedAt
	entry.Status = stored.Status
	if entry.Photo == "" {
		entry.Photo = stored.Photo
	}

	model.NormalizeEntry(&entry)
	if err := model.ValidateEntry(&entry); err != nil {
		return false, err
	}

	s.entries[i] = entry
	s.persistSlot(ctx, slotEntries, s.entries)
	return true, nil
}

// SoftDeleteEntry moves an active entry to the trash. No-op if the id is
// absent or the entry is already trashed.
func (s *Store) SoftDeleteEntry(ctx context.Context, id string) bool {
	return s.transitionEntry(ctx, id, model.EntryTrashed)
}

// RestoreEntry moves a trashed entry back to the active list. No-op if the
// id is absent or the entry is already active.
func (s *Store) RestoreEntry(ctx context.Context, id string) bool {
	return s.transitionEntry(ctx, id, model.EntryActive)
}

func (s *Store) transitionEntry(ctx context.Context, id string, to model.EntryStatus) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.entryIndex(id)
	if i < 0 || !s.entries[i].Status.CanTransition(to) {
		return false
	}

	s.entries[i].Status = to
	s.persistSlot(ctx, slotEntries, s.entries)
	return true
}

// PurgeEntry removes an entry from the collection entirely. Irreversible.
// No-op if the id is absent.
func (s *Store) PurgeEntry(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.entryIndex(id)
	if i < 0 {
		return false
	}

	s.entries = append(s.entries[:i], s.entries[i+1:]...)
	s.persistSlot(ctx, slotEntries, s.entries)
	return true
}

// EmptyTrash purges every trashed entry belonging to the given user and
// returns how many were removed.
func (s *Store) EmptyTrash(ctx context.Context, userID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.entries[:0]
	removed := 0
	for _, e := range s.entries {
		if e.UserID == userID && e.Status == model.EntryTrashed {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	if removed == 0 {
		return 0
	}

	s.entries = kept
	s.persistSlot(ctx, slotEntries, s.entries)
	return removed
}

// SetEntryPhoto attaches a processed proof photo (as a data URI) to an
// entry. No-op if the id is absent.
func (s *Store) SetEntryPhoto(ctx context.Context, id, photo string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.entryIndex(id)
	if i < 0 {
		return false
	}

	s.entries[i].Photo = photo
	s.persistSlot(ctx, slotEntries, s.entries)
	return true
}

// Entries returns a copy of the full entry list, newest first.
func (s *Store) Entries() []model.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Entry returns the entry with the given id, or nil if absent.
func (s *Store) Entry(id string) *model.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.entryIndex(id)
	if i < 0 {
		return nil
	}
	e := s.entries[i]
	return &e
}

// entryIndex returns the position of the entry with the given id, or -1.
// Callers must hold the lock.
func (s *Store) entryIndex(id string) int {
	for i := range s.entries {
		if s.entries[i].ID == id {
			return i
		}
	}
	return -1
}

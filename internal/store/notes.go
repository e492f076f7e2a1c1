package store

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rahulhaldarin-lang/OFFICE-LENS/internal/model"
)

// ErrTitleRequired is returned when a note is created without a title.
var ErrTitleRequired = errors.New("title is required")

// CreateNote adds a new page to the notes ledger, newest first.
func (s *Store) CreateNote(ctx context.Context, title, content, category string) (model.Note, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return model.Note{}, ErrTitleRequired
	}
	if category == "" {
		category = model.DefaultNoteCategory
	}

	note := model.Note{
		ID:        s.newID(),
		Title:     title,
		Content:   content,
		Category:  category,
		CreatedAt: time.Now().UnixMilli(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.notes = append([]model.Note{note}, s.notes...)
	s.persistSlot(ctx, slotNotes, s.notes)
	return note, nil
}

// UpdateNote replaces the stored note matching note.ID, keeping its id and
// creation timestamp. Returns false if absent.
func (s *Store) UpdateNote(ctx context.Context, note model.Note) (bool, error) {
	if strings.TrimSpace(note.Title) == "" {
		return false, ErrTitleRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.notes {
		if s.notes[i].ID == note.ID {
			note.CreatedAt = s.notes[i].CreatedAt
			s.notes[i] = note
			s.persistSlot(ctx, slotNotes, s.notes)
			return true, nil
		}
	}
	return false, nil
}

// DeleteNote removes a note from the ledger. Notes have no trash: deletion
// is immediate and final. No-op if the id is absent.
func (s *Store) DeleteNote(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.notes {
		if s.notes[i].ID == id {
			s.notes = append(s.notes[:i], s.notes[i+1:]...)
			s.persistSlot(ctx, slotNotes, s.notes)
			return true
		}
	}
	return false
}

// Notes returns a copy of the notes ledger, newest first.
func (s *Store) Notes() []model.Note {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Note, len(s.notes))
	copy(out, s.notes)
	return out
}

package store

import (
	"context"
	"errors"
	"strings"

	"github.com/rahulhaldarin-lang/OFFICE-LENS/internal/model"
)

// ErrPhoneRequired is returned when a contact is created without a number.
var ErrPhoneRequired = errors.New("phone number is required")

// AddContact adds a phonebook entry, newest first.
func (s *Store) AddContact(ctx context.Context, name, phone string) (model.Contact, error) {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)
	if name == "" {
		return model.Contact{}, ErrNameRequired
	}
	if phone == "" {
		return model.Contact{}, ErrPhoneRequired
	}

	contact := model.Contact{
		ID:     s.newID(),
		Name:   name,
		Phone:  phone,
		Status: model.EntryActive,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.contacts = append([]model.Contact{contact}, s.contacts...)
	s.persistSlot(ctx, slotContacts, s.contacts)
	return contact, nil
}

// UpdateContact replaces the stored contact matching contact.ID, keeping
// its id and lifecycle status. Returns false if absent.
func (s *Store) UpdateContact(ctx context.Context, contact model.Contact) (bool, error) {
	if strings.TrimSpace(contact.Name) == "" {
		return false, ErrNameRequired
	}
	if strings.TrimSpace(contact.Phone) == "" {
		return false, ErrPhoneRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.contactIndex(contact.ID)
	if i < 0 {
		return false, nil
	}

	contact.Status = s.contacts[i].Status
	s.contacts[i] = contact
	s.persistSlot(ctx, slotContacts, s.contacts)
	return true, nil
}

// SoftDeleteContact moves a contact to the trash. No-op if absent or
// already trashed.
func (s *Store) SoftDeleteContact(ctx context.Context, id string) bool {
	return s.transitionContact(ctx, id, model.EntryTrashed)
}

// RestoreContact moves a trashed contact back to the phonebook. No-op if
// absent or already active.
func (s *Store) RestoreContact(ctx context.Context, id string) bool {
	return s.transitionContact(ctx, id, model.EntryActive)
}

func (s *Store) transitionContact(ctx context.Context, id string, to model.EntryStatus) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.contactIndex(id)
	if i < 0 || !s.contacts[i].Status.CanTransition(to) {
		return false
	}

	s.contacts[i].Status = to
	s.persistSlot(ctx, slotContacts, s.contacts)
	return true
}

// PurgeContact removes a contact entirely. Irreversible. No-op if absent.
func (s *Store) PurgeContact(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.contactIndex(id)
	if i < 0 {
		return false
	}

	s.contacts = append(s.contacts[:i], s.contacts[i+1:]...)
	s.persistSlot(ctx, slotContacts, s.contacts)
	return true
}

// Contacts returns a copy of the phonebook, newest first.
func (s *Store) Contacts() []model.Contact {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Contact, len(s.contacts))
	copy(out, s.contacts)
	return out
}

// contactIndex returns the position of the contact with the given id, or -1.
// Callers must hold the lock.
func (s *Store) contactIndex(id string) int {
	for i := range s.contacts {
		if s.contacts[i].ID == id {
			return i
		}
	}
	return -1
}

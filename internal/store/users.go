package store

import (
	"context"
	"errors"
	"strings"

	"github.com/rahulhaldarin-lang/OFFICE-LENS/internal/model"
)

// ErrNameRequired is returned when a user or contact is created without a name.
var ErrNameRequired = errors.New("name is required")

// AddUser creates a new personnel profile with the given display name and
// appends it to the user list. Existing users are never removed or merged;
// the caller usually adopts the new user as current.
func (s *Store) AddUser(ctx context.Context, name string) (model.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.User{}, ErrNameRequired
	}

	user := model.User{ID: s.newID(), Name: name}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = append(s.users, user)
	s.persistSlot(ctx, slotUsers, s.users)
	return user, nil
}

// UpdateUser replaces the stored user matching user.ID. The id is kept and
// an empty avatar does not clear an existing one. Returns false if absent.
func (s *Store) UpdateUser(ctx context.Context, user model.User) (bool, error) {
	if strings.TrimSpace(user.Name) == "" {
		return false, ErrNameRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.userIndex(user.ID)
	if i < 0 {
		return false, nil
	}

	if user.Avatar == "" {
		user.Avatar = s.users[i].Avatar
	}
	s.users[i] = user
	s.persistSlot(ctx, slotUsers, s.users)
	return true, nil
}

// SetUserAvatar stores a processed profile picture (as a data URI) for the
// given user. No-op if the id is absent.
func (s *Store) SetUserAvatar(ctx context.Context, id, avatar string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.userIndex(id)
	if i < 0 {
		return false
	}

	s.users[i].Avatar = avatar
	s.persistSlot(ctx, slotUsers, s.users)
	return true
}

// Users returns a copy of the user list in creation order.
func (s *Store) Users() []model.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.User, len(s.users))
	copy(out, s.users)
	return out
}

// User returns the user with the given id, or nil if absent.
func (s *Store) User(id string) *model.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.userIndex(id)
	if i < 0 {
		return nil
	}
	u := s.users[i]
	return &u
}

// CurrentUserID returns the id of the currently selected user.
func (s *Store) CurrentUserID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentUserID
}

// CurrentUser returns the currently selected user.
func (s *Store) CurrentUser() model.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.userIndex(s.currentUserID); i >= 0 {
		return s.users[i]
	}
	return s.users[0]
}

// SetCurrentUser selects the user entries are recorded against. No-op if
// the id does not resolve to a known user.
func (s *Store) SetCurrentUser(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.userIndex(id) < 0 {
		return false
	}

	s.currentUserID = id
	s.persistScalar(ctx, slotCurrentUser, id)
	return true
}

// userIndex returns the position of the user with the given id, or -1.
// Callers must hold the lock.
func (s *Store) userIndex(id string) int {
	for i := range s.users {
		if s.users[i].ID == id {
			return i
		}
	}
	return -1
}

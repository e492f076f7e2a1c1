package store

import (
	"context"
	"testing"

	"github.com/rahulhaldarin-lang/OFFICE-LENS/internal/model"
)

func TestAddUser(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	user, err := s.AddUser(ctx, "Rahul")
	if err != nil {
		t.Fatalf("AddUser: %v", err)
	}
	if user.ID == "" || user.Name != "Rahul" {
		t.Errorf("user = %+v", user)
	}

	if _, err := s.AddUser(ctx, "   "); err != ErrNameRequired {
		t.Errorf("expected ErrNameRequired, got %v", err)
	}

	// The seeded user is never removed by adding more.
	if len(s.Users()) != 2 {
		t.Errorf("expected 2 users, got %d", len(s.Users()))
	}
}

func TestUpdateUser(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	s.SetUserAvatar(ctx, model.DefaultUserID, "data:image/jpeg;base64,abc")

	edit := model.User{ID: model.DefaultUserID, Name: "Renamed", Mobile: "+91 12345"}
	ok, err := s.UpdateUser(ctx, edit)
	if err != nil || !ok {
		t.Fatalf("UpdateUser: ok=%v err=%v", ok, err)
	}

	got := s.User(model.DefaultUserID)
	if got.Name != "Renamed" || got.Mobile != "+91 12345" {
		t.Errorf("user = %+v", got)
	}
	if got.Avatar == "" {
		t.Error("empty avatar in edit must not clear the stored one")
	}

	if ok, _ := s.UpdateUser(ctx, model.User{ID: "missing", Name: "x"}); ok {
		t.Error("expected no-op for missing id")
	}
}

func TestSetCurrentUser(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	user, _ := s.AddUser(ctx, "Second")
	if !s.SetCurrentUser(ctx, user.ID) {
		t.Fatal("SetCurrentUser failed")
	}
	if s.CurrentUser().ID != user.ID {
		t.Errorf("current user = %q, want %q", s.CurrentUser().ID, user.ID)
	}

	if s.SetCurrentUser(ctx, "no-such-user") {
		t.Error("unknown user must not become current")
	}
	if s.CurrentUserID() != user.ID {
		t.Error("current user changed by rejected switch")
	}
}

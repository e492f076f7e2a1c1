package store

import (
	"context"
	"testing"

	"github.com/rahulhaldarin-lang/OFFICE-LENS/internal/model"
)

func TestContactLifecycle(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	contact, err := s.AddContact(ctx, "Dipen", "+91 74056 36042")
	if err != nil {
		t.Fatalf("AddContact: %v", err)
	}
	if contact.Status != model.EntryActive {
		t.Errorf("status = %q, want active", contact.Status)
	}

	if !s.SoftDeleteContact(ctx, contact.ID) {
		t.Fatal("soft delete failed")
	}
	if !s.RestoreContact(ctx, contact.ID) {
		t.Fatal("restore failed")
	}
	if !s.SoftDeleteContact(ctx, contact.ID) {
		t.Fatal("second soft delete failed")
	}
	if !s.PurgeContact(ctx, contact.ID) {
		t.Fatal("purge failed")
	}
	if len(s.Contacts()) != 0 {
		t.Error("purged contact still present")
	}
}

func TestAddContactValidation(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if _, err := s.AddContact(ctx, "", "+91 123"); err != ErrNameRequired {
		t.Errorf("expected ErrNameRequired, got %v", err)
	}
	if _, err := s.AddContact(ctx, "Name", " "); err != ErrPhoneRequired {
		t.Errorf("expected ErrPhoneRequired, got %v", err)
	}
	if len(s.Contacts()) != 0 {
		t.Error("rejected contacts must not be stored")
	}
}

func TestUpdateContactKeepsStatus(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	contact, _ := s.AddContact(ctx, "Hetal", "+91 97238 91734")
	s.SoftDeleteContact(ctx, contact.ID)

	edit := contact
	edit.Name = "Hetal Madam"
	edit.Status = model.EntryActive
	if ok, err := s.UpdateContact(ctx, edit); err != nil || !ok {
		t.Fatalf("UpdateContact: ok=%v err=%v", ok, err)
	}

	got := s.Contacts()[0]
	if got.Name != "Hetal Madam" {
		t.Errorf("name = %q", got.Name)
	}
	if got.Status != model.EntryTrashed {
		t.Error("update must not resurrect a trashed contact")
	}
}

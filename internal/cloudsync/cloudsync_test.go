package cloudsync

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rahulhaldarin-lang/OFFICE-LENS/internal/db"
	"github.com/rahulhaldarin-lang/OFFICE-LENS/internal/model"
	"github.com/rahulhaldarin-lang/OFFICE-LENS/internal/store"
)

func TestSyncStampsTimeWithoutTouchingEntries(t *testing.T) {
	ctx := context.Background()
	st, err := store.Open(ctx, db.NewTestDB(t))
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}

	entry, err := st.CreateEntry(ctx, model.Entry{
		UserID:        model.DefaultUserID,
		ItemType:      model.CategoryRing,
		InvoiceNumber: "R-1",
		Quantity:      1,
		Weight:        decimal.NewFromFloat(5.5),
	})
	if err != nil {
		t.Fatalf("CreateEntry: %v", err)
	}

	svc := New(st)
	svc.delay = time.Millisecond
	st.SetNotifier(svc)

	status := svc.Sync(ctx)
	if status.LastSyncedAt == 0 {
		t.Error("expected last-synced timestamp")
	}
	if status.Connected {
		t.Error("stub must never report connected")
	}
	if status.Records != 1 {
		t.Errorf("records = %d, want 1", status.Records)
	}

	// Entries are untouched by a sync.
	if got := st.Entry(entry.ID); got == nil || !got.Weight.Equal(entry.Weight) {
		t.Error("sync stub mutated store state")
	}
}

func TestNotifyMarksDirtySlots(t *testing.T) {
	st, err := store.Open(context.Background(), db.NewTestDB(t))
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}

	svc := New(st)
	svc.Notify("entries")
	svc.Notify("entries")
	svc.Notify("app_users")

	svc.mu.Lock()
	defer svc.mu.Unlock()
	if len(svc.dirty) != 2 {
		t.Errorf("dirty slots = %d, want 2", len(svc.dirty))
	}
}

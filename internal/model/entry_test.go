package model

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestNormalizeEntry(t *testing.T) {
	tests := []struct {
		name         string
		entry        Entry
		wantInvoice  string
		wantQuantity int
		wantPairs    int
	}{
		{
			name:         "invoice uppercased and trimmed",
			entry:        Entry{InvoiceNumber: "  pc-9 ", ItemType: CategoryRing, Quantity: 2},
			wantInvoice:  "PC-9",
			wantQuantity: 2,
		},
		{
			name:        "earring zeroes quantity",
			entry:       Entry{InvoiceNumber: "E-1", ItemType: CategoryEarring, Quantity: 5, Pairs: 3},
			wantInvoice: "E-1",
			wantPairs:   3,
		},
		{
			name:         "bracelet zeroes pairs",
			entry:        Entry{InvoiceNumber: "B-1", ItemType: CategoryBracelet, Quantity: 4, Pairs: 2},
			wantInvoice:  "B-1",
			wantQuantity: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			NormalizeEntry(&tt.entry)
			if tt.entry.InvoiceNumber != tt.wantInvoice {
				t.Errorf("invoice = %q, want %q", tt.entry.InvoiceNumber, tt.wantInvoice)
			}
			if tt.entry.Quantity != tt.wantQuantity {
				t.Errorf("quantity = %d, want %d", tt.entry.Quantity, tt.wantQuantity)
			}
			if tt.entry.Pairs != tt.wantPairs {
				t.Errorf("pairs = %d, want %d", tt.entry.Pairs, tt.wantPairs)
			}
		})
	}
}

func TestValidateEntry(t *testing.T) {
	valid := Entry{
		InvoiceNumber: "R-1",
		ItemType:      CategoryRing,
		Weight:        decimal.NewFromFloat(5.5),
		Quantity:      1,
	}

	tests := []struct {
		name    string
		mutate  func(*Entry)
		wantErr error
	}{
		{"valid entry", func(e *Entry) {}, nil},
		{"empty invoice", func(e *Entry) { e.InvoiceNumber = "" }, ErrInvoiceRequired},
		{"whitespace invoice", func(e *Entry) { e.InvoiceNumber = "   " }, ErrInvoiceRequired},
		{"zero weight", func(e *Entry) { e.Weight = decimal.Zero }, ErrWeightNotPositive},
		{"negative weight", func(e *Entry) { e.Weight = decimal.NewFromFloat(-1) }, ErrWeightNotPositive},
		{"unknown category", func(e *Entry) { e.ItemType = "Crown" }, ErrUnknownCategory},
		{"negative quantity", func(e *Entry) { e.Quantity = -1 }, ErrNegativeCount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := valid
			tt.mutate(&e)
			if err := ValidateEntry(&e); err != tt.wantErr {
				t.Errorf("ValidateEntry() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestStatusTransitions(t *testing.T) {
	tests := []struct {
		from, to EntryStatus
		want     bool
	}{
		{EntryActive, EntryTrashed, true},
		{EntryTrashed, EntryActive, true},
		{EntryActive, EntryActive, false},
		{EntryTrashed, EntryTrashed, false},
	}

	for _, tt := range tests {
		if got := tt.from.CanTransition(tt.to); got != tt.want {
			t.Errorf("CanTransition(%s -> %s) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestEntryCount(t *testing.T) {
	earring := Entry{ItemType: CategoryEarring, Pairs: 3}
	if earring.Count() != 3 || earring.CountUnit() != "pairs" {
		t.Errorf("earring count = %d %s, want 3 pairs", earring.Count(), earring.CountUnit())
	}

	ring := Entry{ItemType: CategoryRing, Quantity: 2}
	if ring.Count() != 2 || ring.CountUnit() != "pcs" {
		t.Errorf("ring count = %d %s, want 2 pcs", ring.Count(), ring.CountUnit())
	}
}

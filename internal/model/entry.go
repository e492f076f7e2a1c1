package model

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// Entry represents one recorded weighing event, attributed to a single user.
type Entry struct {
	ID            string          `json:"id"`
	UserID        string          `json:"user_id"`
	Date          string          `json:"date"` // DD/MM/YYYY
	ItemType      ItemCategory    `json:"item_type"`
	Quantity      int             `json:"quantity"`
	Pairs         int             `json:"pairs"`
	InvoiceNumber string          `json:"invoice_number"`
	Weight        decimal.Decimal `json:"weight"` // grams
	Photo         string          `json:"photo,omitempty"`
	CreatedAt     int64           `json:"created_at"` // epoch milliseconds
	Status        EntryStatus     `json:"status"`
}

// ItemCategory classifies what kind of piece was weighed.
type ItemCategory string

// Item categories.
const (
	CategoryBracelet ItemCategory = "Bracelet"
	CategoryEarring  ItemCategory = "Earring"
	CategoryPendant  ItemCategory = "Pendant"
	CategoryNecklace ItemCategory = "Necklace"
	CategoryRing     ItemCategory = "Ring"
	CategoryOther    ItemCategory = "Other"
)

// Categories lists all item categories in display order.
var Categories = []ItemCategory{
	CategoryBracelet,
	CategoryEarring,
	CategoryPendant,
	CategoryNecklace,
	CategoryRing,
	CategoryOther,
}

// Valid reports whether c is a known category.
func (c ItemCategory) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// CountsInPairs reports whether the category is counted in pairs rather
// than single units. Only earrings count in pairs.
func (c ItemCategory) CountsInPairs() bool {
	return c == CategoryEarring
}

// EntryStatus is the lifecycle state of an entry. Purged entries have no
// status: they are removed from the collection entirely.
type EntryStatus string

// Entry statuses.
const (
	EntryActive  EntryStatus = "active"
	EntryTrashed EntryStatus = "trashed"
)

// CanTransition reports whether an entry may move from its current status
// to the given one. Active and trashed entries can swap freely; anything
// else is illegal.
func (s EntryStatus) CanTransition(to EntryStatus) bool {
	switch {
	case s == EntryActive && to == EntryTrashed:
		return true
	case s == EntryTrashed && to == EntryActive:
		return true
	default:
		return false
	}
}

// Validation errors for entry drafts.
var (
	ErrInvoiceRequired   = errors.New("invoice number is required")
	ErrWeightNotPositive = errors.New("weight must be greater than zero")
	ErrUnknownCategory   = errors.New("unknown item category")
	ErrNegativeCount     = errors.New("quantity and pairs must not be negative")
)

// NormalizeEntry applies the invariants every stored entry must satisfy:
// the invoice number is uppercased and trimmed, and only the count field
// relevant to the category survives (earrings count in pairs, everything
// else in units). All normalization lives here so call sites cannot drift.
func NormalizeEntry(e *Entry) {
	e.InvoiceNumber = strings.ToUpper(strings.TrimSpace(e.InvoiceNumber))
	if e.ItemType.CountsInPairs() {
		e.Quantity = 0
	} else {
		e.Pairs = 0
	}
}

// ValidateEntry checks an entry draft before it is accepted into the store.
// Already-persisted entries are not re-validated.
func ValidateEntry(e *Entry) error {
	if strings.TrimSpace(e.InvoiceNumber) == "" {
		return ErrInvoiceRequired
	}
	if !e.Weight.IsPositive() {
		return ErrWeightNotPositive
	}
	if !e.ItemType.Valid() {
		return ErrUnknownCategory
	}
	if e.Quantity < 0 || e.Pairs < 0 {
		return ErrNegativeCount
	}
	return nil
}

// Count returns the authoritative piece count for the entry's category.
func (e *Entry) Count() int {
	if e.ItemType.CountsInPairs() {
		return e.Pairs
	}
	return e.Quantity
}

// CountUnit returns the display unit for the entry's count.
func (e *Entry) CountUnit() string {
	if e.ItemType.CountsInPairs() {
		return "pairs"
	}
	return "pcs"
}

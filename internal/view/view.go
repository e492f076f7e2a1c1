// Package view derives read-only projections from the store's entry list.
// Every function here is pure: it never mutates its input and recomputes
// from scratch on each call, which is fine at the hundreds-of-entries
// scale this tool operates at.
package view

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/rahulhaldarin-lang/OFFICE-LENS/internal/model"
)

// ActiveEntries returns the given user's active entries, naturally sorted
// by invoice number.
func ActiveEntries(entries []model.Entry, userID string) []model.Entry {
	return project(entries, func(e *model.Entry) bool {
		return e.UserID == userID && e.Status == model.EntryActive
	})
}

// TrashedEntries returns the given user's trashed entries, naturally
// sorted by invoice number.
func TrashedEntries(entries []model.Entry, userID string) []model.Entry {
	return project(entries, func(e *model.Entry) bool {
		return e.UserID == userID && e.Status == model.EntryTrashed
	})
}

// AllActiveEntries returns active entries across every user, naturally
// sorted by invoice number. Used for the full-archive export.
func AllActiveEntries(entries []model.Entry) []model.Entry {
	return project(entries, func(e *model.Entry) bool {
		return e.Status == model.EntryActive
	})
}

// TotalWeight returns the summed weight of the given entries in grams,
// zero for an empty list.
func TotalWeight(entries []model.Entry) decimal.Decimal {
	total := decimal.Zero
	for i := range entries {
		total = total.Add(entries[i].Weight)
	}
	return total
}

// project filters into a fresh slice and sorts it. The sort is stable, so
// equal invoice numbers keep the list's newest-first insertion order.
func project(entries []model.Entry, keep func(*model.Entry) bool) []model.Entry {
	out := make([]model.Entry, 0, len(entries))
	for i := range entries {
		if keep(&entries[i]) {
			out = append(out, entries[i])
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return CompareInvoices(out[i].InvoiceNumber, out[j].InvoiceNumber) < 0
	})
	return out
}

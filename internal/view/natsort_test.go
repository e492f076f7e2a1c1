package view

import (
	"sort"
	"testing"
)

func TestCompareInvoices(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"PC-9", "PC-10", -1},
		{"PC-10", "PC-9", 1},
		{"PC-2", "PC-2", 0},
		{"pc-2", "PC-2", 0}, // case-insensitive
		{"A-1", "B-1", -1},
		{"R-1", "R-1A", -1}, // prefix sorts first
		{"10", "9", 1},
		{"007", "7", 0}, // leading zeros ignored
		{"", "A", -1},
		{"", "", 0},
		{"99999999999999999999", "100000000000000000000", -1}, // no overflow
	}

	for _, tt := range tests {
		got := CompareInvoices(tt.a, tt.b)
		if sign(got) != tt.want {
			t.Errorf("CompareInvoices(%q, %q) = %d, want sign %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestNaturalSortOrder(t *testing.T) {
	invoices := []string{"PC-10", "PC-2", "PC-1"}
	sort.SliceStable(invoices, func(i, j int) bool {
		return CompareInvoices(invoices[i], invoices[j]) < 0
	})

	want := []string{"PC-1", "PC-2", "PC-10"}
	for i := range want {
		if invoices[i] != want[i] {
			t.Fatalf("sorted = %v, want %v", invoices, want)
		}
	}
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}

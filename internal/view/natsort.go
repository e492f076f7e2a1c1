package view

import "strings"

// CompareInvoices performs a natural, case-insensitive comparison of two
// invoice numbers. The strings are split into alternating digit and
// non-digit runs; digit runs compare by numeric value, text runs compare
// case-insensitively, so "PC-9" sorts before "PC-10". Equal invoices
// compare as 0 and rely on the caller's stable sort for tie order.
func CompareInvoices(a, b string) int {
	for a != "" && b != "" {
		runA, digitsA := takeRun(a)
		runB, digitsB := takeRun(b)

		var c int
		if digitsA && digitsB {
			c = compareDigits(runA, runB)
		} else {
			c = strings.Compare(strings.ToLower(runA), strings.ToLower(runB))
		}
		if c != 0 {
			return c
		}

		a = a[len(runA):]
		b = b[len(runB):]
	}

	switch {
	case a == "" && b == "":
		return 0
	case a == "":
		return -1
	default:
		return 1
	}
}

// takeRun returns the leading run of s consisting entirely of digits or
// entirely of non-digits, and whether it is a digit run.
func takeRun(s string) (string, bool) {
	digits := isDigit(s[0])
	for i := 1; i < len(s); i++ {
		if isDigit(s[i]) != digits {
			return s[:i], digits
		}
	}
	return s, digits
}

// compareDigits compares two digit runs by numeric value without parsing,
// so arbitrarily long runs cannot overflow. Leading zeros are ignored.
func compareDigits(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")

	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rahulhaldarin-lang/OFFICE-LENS/internal/model"
)

func TestWriteCSV(t *testing.T) {
	entries := []model.Entry{
		{
			ID:            "id-10",
			UserID:        "default",
			Date:          "02/01/2025",
			ItemType:      model.CategoryRing,
			Quantity:      2,
			InvoiceNumber: "PC-10",
			Weight:        decimal.NewFromFloat(5.5),
			CreatedAt:     time.Date(2025, 1, 2, 10, 30, 0, 0, time.UTC).UnixMilli(),
		},
		{
			ID:            "id-2",
			UserID:        "default",
			Date:          "01/01/2025",
			ItemType:      model.CategoryEarring,
			Pairs:         3,
			InvoiceNumber: "PC-2",
			Weight:        decimal.NewFromFloat(1.2),
			CreatedAt:     time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC).UnixMilli(),
		},
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, entries); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %d lines", len(lines))
	}

	wantHeader := "Date,Category,Invoice No,Quantity (Units),Pairs,Weight (gm),User ID,Unique Entry ID,Timestamp"
	if strings.TrimSpace(lines[0]) != wantHeader {
		t.Errorf("header = %q, want %q", lines[0], wantHeader)
	}

	// Rows come out naturally sorted: PC-2 before PC-10.
	if !strings.HasPrefix(lines[1], "01/01/2025,Earring,PC-2,0,3,1.200,") {
		t.Errorf("first row = %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], "02/01/2025,Ring,PC-10,2,0,5.500,") {
		t.Errorf("second row = %q", lines[2])
	}
}

func TestWriteCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, nil); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Errorf("expected header only, got %d lines", len(lines))
	}
}

func TestFilename(t *testing.T) {
	now := time.Date(2025, 3, 9, 15, 0, 0, 0, time.UTC)
	if got := Filename("precision_export", now); got != "precision_export_2025-03-09.csv" {
		t.Errorf("Filename = %q", got)
	}
}

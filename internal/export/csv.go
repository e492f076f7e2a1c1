// Package export renders entry lists as downloadable CSV documents.
package export

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/gocarina/gocsv"

	"github.com/rahulhaldarin-lang/OFFICE-LENS/internal/model"
	"github.com/rahulhaldarin-lang/OFFICE-LENS/internal/view"
)

// csvRow fixes the column order of the export. Weight always carries three
// decimal places; the timestamp is the human-readable creation time.
type csvRow struct {
	Date      string `csv:"Date"`
	Category  string `csv:"Category"`
	Invoice   string `csv:"Invoice No"`
	Quantity  int    `csv:"Quantity (Units)"`
	Pairs     int    `csv:"Pairs"`
	Weight    string `csv:"Weight (gm)"`
	UserID    string `csv:"User ID"`
	EntryID   string `csv:"Unique Entry ID"`
	Timestamp string `csv:"Timestamp"`
}

// timestampLayout formats the created-at instant for the Timestamp column.
const timestampLayout = "02/01/2006, 15:04:05"

// WriteCSV writes one row per entry, sorted by the natural invoice-number
// comparator, to w as UTF-8 comma-separated values with a header row.
func WriteCSV(w io.Writer, entries []model.Entry) error {
	sorted := make([]model.Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return view.CompareInvoices(sorted[i].InvoiceNumber, sorted[j].InvoiceNumber) < 0
	})

	rows := make([]csvRow, 0, len(sorted))
	for _, e := range sorted {
		rows = append(rows, csvRow{
			Date:      e.Date,
			Category:  string(e.ItemType),
			Invoice:   e.InvoiceNumber,
			Quantity:  e.Quantity,
			Pairs:     e.Pairs,
			Weight:    e.Weight.StringFixed(3),
			UserID:    e.UserID,
			EntryID:   e.ID,
			Timestamp: time.UnixMilli(e.CreatedAt).Format(timestampLayout),
		})
	}

	if err := gocsv.Marshal(&rows, w); err != nil {
		return fmt.Errorf("writing csv: %w", err)
	}
	return nil
}

// Filename builds the download name for an export: <label>_<ISO-date>.csv.
func Filename(label string, now time.Time) string {
	return fmt.Sprintf("%s_%s.csv", label, now.Format("2006-01-02"))
}

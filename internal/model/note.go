package model

// Note is one page of the free-form notes ledger.
type Note struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Category  string `json:"category"`
	CreatedAt int64  `json:"created_at"` // epoch milliseconds
}

// DefaultNoteCategory is assigned to notes created without a category.
const DefaultNoteCategory = "General"

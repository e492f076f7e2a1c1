package model

// Contact is one phonebook entry. Contacts share the entries' soft-delete
// lifecycle: trashed contacts can be restored or purged.
type Contact struct {
	ID     string      `json:"id"`
	Name   string      `json:"name"`
	Phone  string      `json:"phone"`
	Status EntryStatus `json:"status"`
}

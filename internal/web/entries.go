package web

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/rahulhaldarin-lang/OFFICE-LENS/internal/model"
	"github.com/rahulhaldarin-lang/OFFICE-LENS/internal/view"
)

// HomePage handles GET /: the entry form plus the current user's active
// entries.
func (s *Server) HomePage(w http.ResponseWriter, r *http.Request) {
	entries := view.ActiveEntries(s.Store.Entries(), s.Store.CurrentUserID())

	s.Templates.Render(w, "home.html", &struct {
		PageData
		Entries     []model.Entry
		TotalWeight decimal.Decimal
		Categories  []model.ItemCategory
	}{
		PageData:    s.pageData("Entries"),
		Entries:     entries,
		TotalWeight: view.TotalWeight(entries),
		Categories:  model.Categories,
	})
}

// ArchivePage handles GET /archive: active entries across every user.
func (s *Server) ArchivePage(w http.ResponseWriter, r *http.Request) {
	entries := view.AllActiveEntries(s.Store.Entries())

	s.Templates.Render(w, "archive.html", &struct {
		PageData
		Entries     []model.Entry
		TotalWeight decimal.Decimal
	}{
		PageData:    s.pageData("Archive"),
		Entries:     entries,
		TotalWeight: view.TotalWeight(entries),
	})
}

// TrashPage handles GET /trash: the current user's trashed entries.
func (s *Server) TrashPage(w http.ResponseWriter, r *http.Request) {
	entries := view.TrashedEntries(s.Store.Entries(), s.Store.CurrentUserID())

	s.Templates.Render(w, "trash.html", &struct {
		PageData
		Entries []model.Entry
	}{
		PageData: s.pageData("Trash"),
		Entries:  entries,
	})
}

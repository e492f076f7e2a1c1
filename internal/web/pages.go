package web

import (
	"net/http"

	"github.com/rahulhaldarin-lang/OFFICE-LENS/internal/model"
)

// PhonebookPage handles GET /phonebook.
func (s *Server) PhonebookPage(w http.ResponseWriter, r *http.Request) {
	var active, trashed []model.Contact
	for _, c := range s.Store.Contacts() {
		if c.Status == model.EntryTrashed {
			trashed = append(trashed, c)
		} else {
			active = append(active, c)
		}
	}

	s.Templates.Render(w, "phonebook.html", &struct {
		PageData
		Contacts []model.Contact
		Trashed  []model.Contact
	}{
		PageData: s.pageData("Phonebook"),
		Contacts: active,
		Trashed:  trashed,
	})
}

// NotebookPage handles GET /notebook.
func (s *Server) NotebookPage(w http.ResponseWriter, r *http.Request) {
	s.Templates.Render(w, "notebook.html", &struct {
		PageData
		Notes []model.Note
	}{
		PageData: s.pageData("Notebook"),
		Notes:    s.Store.Notes(),
	})
}

// SettingsPage handles GET /settings.
func (s *Server) SettingsPage(w http.ResponseWriter, r *http.Request) {
	s.Templates.Render(w, "settings.html", &struct {
		PageData
		Themes []string
	}{
		PageData: s.pageData("Settings"),
		Themes:   []string{model.ThemeLight, model.ThemeDark},
	})
}

// CalculatorPage handles GET /calculator.
func (s *Server) CalculatorPage(w http.ResponseWriter, r *http.Request) {
	s.Templates.Render(w, "calculator.html", &struct {
		PageData
	}{
		PageData: s.pageData("Calculator"),
	})
}

// HelpPage handles GET /help.
func (s *Server) HelpPage(w http.ResponseWriter, r *http.Request) {
	s.Templates.Render(w, "help.html", &struct {
		PageData
	}{
		PageData: s.pageData("Help"),
	})
}

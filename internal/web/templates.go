package web

import (
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rahulhaldarin-lang/OFFICE-LENS/internal/model"
	"github.com/rahulhaldarin-lang/OFFICE-LENS/internal/store"
	webembed "github.com/rahulhaldarin-lang/OFFICE-LENS/web"
)

// Templates holds parsed HTML templates.
type Templates struct {
	templates map[string]*template.Template
}

// FuncMap returns the template function map.
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"weight": func(d decimal.Decimal) string {
			return d.StringFixed(3)
		},
		"count": func(e model.Entry) string {
			return fmt.Sprintf("%d %s", e.Count(), e.CountUnit())
		},
		"timestamp": func(epochMillis int64) string {
			if epochMillis == 0 {
				return "-"
			}
			return time.UnixMilli(epochMillis).Format("02/01/2006, 15:04:05")
		},
	}
}

// LoadTemplates parses all page templates with the layout.
func LoadTemplates() (*Templates, error) {
	tfs := webembed.TemplatesFS()

	layoutBytes, err := fs.ReadFile(tfs, "layout.html")
	if err != nil {
		return nil, fmt.Errorf("reading layout template: %w", err)
	}

	pages := []string{
		"home.html",
		"archive.html",
		"trash.html",
		"billing.html",
		"phonebook.html",
		"notebook.html",
		"settings.html",
		"calculator.html",
		"help.html",
	}

	ts := &Templates{templates: make(map[string]*template.Template)}

	for _, page := range pages {
		pageBytes, err := fs.ReadFile(tfs, page)
		if err != nil {
			return nil, fmt.Errorf("reading template %s: %w", page, err)
		}

		tmpl := template.New(page).Funcs(FuncMap())
		tmpl, err = tmpl.Parse(string(layoutBytes))
		if err != nil {
			return nil, fmt.Errorf("parsing layout for %s: %w", page, err)
		}
		tmpl, err = tmpl.Parse(string(pageBytes))
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", page, err)
		}

		ts.templates[page] = tmpl
	}

	return ts, nil
}

// Render renders a template with the given data.
func (ts *Templates) Render(w http.ResponseWriter, name string, data any) {
	tmpl, ok := ts.templates[name]
	if !ok {
		http.Error(w, "template not found", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.ExecuteTemplate(w, "layout", data); err != nil {
		slog.Error("failed to render template", "template", name, "error", err)
	}
}

// PageData is the base data passed to all templates.
type PageData struct {
	Title       string
	Settings    model.Settings
	Theme       string
	CurrentUser model.User
	Users       []model.User
}

// Server holds all dependencies for page handlers.
type Server struct {
	Store     *store.Store
	Templates *Templates
}

func (s *Server) pageData(title string) PageData {
	return PageData{
		Title:       title,
		Settings:    s.Store.Settings(),
		Theme:       s.Store.Theme(),
		CurrentUser: s.Store.CurrentUser(),
		Users:       s.Store.Users(),
	}
}

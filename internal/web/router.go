package web

import (
	"net/http"

	"github.com/rahulhaldarin-lang/OFFICE-LENS/internal/store"
	webembed "github.com/rahulhaldarin-lang/OFFICE-LENS/web"
)

// NewRouter creates the web page router with all page routes registered.
func NewRouter(st *store.Store) (http.Handler, error) {
	templates, err := LoadTemplates()
	if err != nil {
		return nil, err
	}

	s := &Server{
		Store:     st,
		Templates: templates,
	}

	mux := http.NewServeMux()

	// Static assets.
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(webembed.StaticFS()))))

	mux.HandleFunc("GET /{$}", s.HomePage)
	mux.HandleFunc("GET /archive", s.ArchivePage)
	mux.HandleFunc("GET /trash", s.TrashPage)
	mux.HandleFunc("GET /billing", s.BillingPage)
	mux.HandleFunc("GET /phonebook", s.PhonebookPage)
	mux.HandleFunc("GET /notebook", s.NotebookPage)
	mux.HandleFunc("GET /settings", s.SettingsPage)
	mux.HandleFunc("GET /calculator", s.CalculatorPage)
	mux.HandleFunc("GET /help", s.HelpPage)

	return mux, nil
}

package api

import (
	"net/http"

	"github.com/rahulhaldarin-lang/OFFICE-LENS/internal/cloudsync"
	"github.com/rahulhaldarin-lang/OFFICE-LENS/internal/store"
)

// NewRouter creates the API router with all endpoints registered.
func NewRouter(st *store.Store, syncSvc *cloudsync.Service) http.Handler {
	mux := http.NewServeMux()

	entries := &EntriesHandler{Store: st}
	users := &UsersHandler{Store: st}
	notes := &NotesHandler{Store: st}
	contacts := &ContactsHandler{Store: st}
	settings := &SettingsHandler{Store: st}
	exports := &ExportHandler{Store: st}
	syncs := &SyncHandler{Service: syncSvc}

	// Entries.
	mux.HandleFunc("GET /api/entries", entries.List)
	mux.HandleFunc("POST /api/entries", entries.Create)
	mux.HandleFunc("GET /api/entries/{id}", entries.Get)
	mux.HandleFunc("PUT /api/entries/{id}", entries.Update)
	mux.HandleFunc("DELETE /api/entries/{id}", entries.SoftDelete)
	mux.HandleFunc("POST /api/entries/{id}/restore", entries.Restore)
	mux.HandleFunc("DELETE /api/entries/{id}/purge", entries.Purge)
	mux.HandleFunc("PUT /api/entries/{id}/photo", entries.UploadPhoto)
	mux.HandleFunc("DELETE /api/trash", entries.EmptyTrash)

	// Users (personnel profiles, not auth principals).
	mux.HandleFunc("GET /api/users", users.List)
	mux.HandleFunc("POST /api/users", users.Create)
	mux.HandleFunc("GET /api/users/current", users.GetCurrent)
	mux.HandleFunc("PUT /api/users/current", users.SetCurrent)
	mux.HandleFunc("GET /api/users/{id}", users.Get)
	mux.HandleFunc("PUT /api/users/{id}", users.Update)
	mux.HandleFunc("PUT /api/users/{id}/avatar", users.UploadAvatar)

	// Notes ledger.
	mux.HandleFunc("GET /api/notes", notes.List)
	mux.HandleFunc("POST /api/notes", notes.Create)
	mux.HandleFunc("PUT /api/notes/{id}", notes.Update)
	mux.HandleFunc("DELETE /api/notes/{id}", notes.Delete)

	// Phonebook.
	mux.HandleFunc("GET /api/contacts", contacts.List)
	mux.HandleFunc("POST /api/contacts", contacts.Create)
	mux.HandleFunc("PUT /api/contacts/{id}", contacts.Update)
	mux.HandleFunc("DELETE /api/contacts/{id}", contacts.SoftDelete)
	mux.HandleFunc("POST /api/contacts/{id}/restore", contacts.Restore)
	mux.HandleFunc("DELETE /api/contacts/{id}/purge", contacts.Purge)

	// Settings and theme.
	mux.HandleFunc("GET /api/settings", settings.Get)
	mux.HandleFunc("PUT /api/settings", settings.Update)

	// Exports.
	mux.HandleFunc("GET /api/export/csv", exports.CSV)

	// Cloud sync stub.
	mux.HandleFunc("GET /api/sync/status", syncs.Status)
	mux.HandleFunc("POST /api/sync", syncs.Trigger)

	return mux
}

package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/rahulhaldarin-lang/OFFICE-LENS/internal/export"
	"github.com/rahulhaldarin-lang/OFFICE-LENS/internal/model"
	"github.com/rahulhaldarin-lang/OFFICE-LENS/internal/store"
	"github.com/rahulhaldarin-lang/OFFICE-LENS/internal/view"
)

// ExportHandler serves downloadable CSV exports.
type ExportHandler struct {
	Store *store.Store
}

// CSV handles GET /api/export/csv. Scope "user" (default) exports the
// current or named user's active entries; scope "all" exports active
// entries across every user (the full archive).
func (h *ExportHandler) CSV(w http.ResponseWriter, r *http.Request) {
	all := h.Store.Entries()

	var entries []model.Entry
	var label string
	switch r.URL.Query().Get("scope") {
	case "", "user":
		userID := r.URL.Query().Get("user")
		if userID == "" {
			userID = h.Store.CurrentUserID()
		}
		entries = view.ActiveEntries(all, userID)
		label = "precision_export"
	case "all":
		entries = view.AllActiveEntries(all)
		label = "precision_archive"
	default:
		jsonError(w, http.StatusBadRequest, "unknown scope")
		return
	}

	filename := export.Filename(label, time.Now())
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := export.WriteCSV(w, entries); err != nil {
		// Headers are already out; all we can do is log.
		slog.Error("failed to write csv export", "error", err)
	}
}

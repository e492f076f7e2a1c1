package api

import (
	"net/http"

	"github.com/rahulhaldarin-lang/OFFICE-LENS/internal/cloudsync"
)

// SyncHandler exposes the cloud-sync stub. It exists for the UI's sync
// widget only; no core operation depends on it.
type SyncHandler struct {
	Service *cloudsync.Service
}

// Status handles GET /api/sync/status.
func (h *SyncHandler) Status(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, h.Service.Status())
}

// Trigger handles POST /api/sync: runs one simulated sync round trip.
func (h *SyncHandler) Trigger(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, h.Service.Sync(r.Context()))
}

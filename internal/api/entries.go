package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/rahulhaldarin-lang/OFFICE-LENS/internal/imaging"
	"github.com/rahulhaldarin-lang/OFFICE-LENS/internal/model"
	"github.com/rahulhaldarin-lang/OFFICE-LENS/internal/store"
	"github.com/rahulhaldarin-lang/OFFICE-LENS/internal/view"
)

// EntriesHandler handles entry CRUD and lifecycle endpoints.
type EntriesHandler struct {
	Store *store.Store
}

type entryRequest struct {
	UserID        string             `json:"user_id"`
	Date          string             `json:"date"`
	ItemType      model.ItemCategory `json:"item_type"`
	Quantity      int                `json:"quantity"`
	Pairs         int                `json:"pairs"`
	InvoiceNumber string             `json:"invoice_number"`
	Weight        decimal.Decimal    `json:"weight"`
}

type entryListResponse struct {
	Entries     []model.Entry   `json:"entries"`
	TotalWeight decimal.Decimal `json:"total_weight"`
}

// validationError maps draft validation failures to field-level messages.
func validationError(w http.ResponseWriter, err error) bool {
	switch {
	case errors.Is(err, model.ErrInvoiceRequired),
		errors.Is(err, model.ErrWeightNotPositive),
		errors.Is(err, model.ErrUnknownCategory),
		errors.Is(err, model.ErrNegativeCount):
		jsonError(w, http.StatusBadRequest, err.Error())
		return true
	}
	return false
}

// List handles GET /api/entries. The view query parameter selects active
// (default), trash, or all (active across every user); user defaults to
// the currently selected user.
func (h *EntriesHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user")
	if userID == "" {
		userID = h.Store.CurrentUserID()
	}

	all := h.Store.Entries()

	var entries []model.Entry
	switch r.URL.Query().Get("view") {
	case "", "active":
		entries = view.ActiveEntries(all, userID)
	case "trash":
		entries = view.TrashedEntries(all, userID)
	case "all":
		entries = view.AllActiveEntries(all)
	default:
		jsonError(w, http.StatusBadRequest, "unknown view")
		return
	}

	jsonResponse(w, http.StatusOK, entryListResponse{
		Entries:     entries,
		TotalWeight: view.TotalWeight(entries),
	})
}

// Create handles POST /api/entries.
func (h *EntriesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req entryRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.UserID == "" {
		req.UserID = h.Store.CurrentUserID()
	}
	if h.Store.User(req.UserID) == nil {
		jsonError(w, http.StatusBadRequest, "unknown user")
		return
	}

	entry, err := h.Store.CreateEntry(r.Context(), model.Entry{
		UserID:        req.UserID,
		Date:          req.Date,
		ItemType:      req.ItemType,
		Quantity:      req.Quantity,
		Pairs:         req.Pairs,
		InvoiceNumber: req.InvoiceNumber,
		Weight:        req.Weight,
	})
	if err != nil {
		if !validationError(w, err) {
			jsonError(w, http.StatusInternalServerError, "failed to create entry")
		}
		return
	}

	jsonResponse(w, http.StatusCreated, entry)
}

// Get handles GET /api/entries/{id}.
func (h *EntriesHandler) Get(w http.ResponseWriter, r *http.Request) {
	entry := h.Store.Entry(r.PathValue("id"))
	if entry == nil {
		jsonError(w, http.StatusNotFound, "entry not found")
		return
	}
	jsonResponse(w, http.StatusOK, entry)
}

// Update handles PUT /api/entries/{id}. Identity fields and lifecycle
// status of the stored entry are preserved by the store.
func (h *EntriesHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req entryRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ok, err := h.Store.UpdateEntry(r.Context(), model.Entry{
		ID:            r.PathValue("id"),
		Date:          req.Date,
		ItemType:      req.ItemType,
		Quantity:      req.Quantity,
		Pairs:         req.Pairs,
		InvoiceNumber: req.InvoiceNumber,
		Weight:        req.Weight,
	})
	if err != nil {
		if !validationError(w, err) {
			jsonError(w, http.StatusInternalServerError, "failed to update entry")
		}
		return
	}
	if !ok {
		jsonError(w, http.StatusNotFound, "entry not found")
		return
	}

	jsonResponse(w, http.StatusOK, h.Store.Entry(r.PathValue("id")))
}

// SoftDelete handles DELETE /api/entries/{id}: moves the entry to the trash.
func (h *EntriesHandler) SoftDelete(w http.ResponseWriter, r *http.Request) {
	h.Store.SoftDeleteEntry(r.Context(), r.PathValue("id"))
	jsonResponse(w, http.StatusOK, map[string]string{"message": "entry moved to trash"})
}

// Restore handles POST /api/entries/{id}/restore.
func (h *EntriesHandler) Restore(w http.ResponseWriter, r *http.Request) {
	h.Store.RestoreEntry(r.Context(), r.PathValue("id"))
	jsonResponse(w, http.StatusOK, map[string]string{"message": "entry restored"})
}

// Purge handles DELETE /api/entries/{id}/purge. Permanent deletion is
// gated on explicit confirmation; without it nothing is removed.
func (h *EntriesHandler) Purge(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("confirm") != "true" {
		jsonError(w, http.StatusBadRequest, "confirmation required for permanent deletion")
		return
	}

	h.Store.PurgeEntry(r.Context(), r.PathValue("id"))
	jsonResponse(w, http.StatusOK, map[string]string{"message": "entry permanently deleted"})
}

// EmptyTrash handles DELETE /api/trash: purges every trashed entry of the
// given (or current) user. Gated on explicit confirmation.
func (h *EntriesHandler) EmptyTrash(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("confirm") != "true" {
		jsonError(w, http.StatusBadRequest, "confirmation required for permanent deletion")
		return
	}

	userID := r.URL.Query().Get("user")
	if userID == "" {
		userID = h.Store.CurrentUserID()
	}

	removed := h.Store.EmptyTrash(r.Context(), userID)
	jsonResponse(w, http.StatusOK, map[string]int{"removed": removed})
}

// UploadPhoto handles PUT /api/entries/{id}/photo: attaches a processed
// proof photo to the entry.
func (h *EntriesHandler) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if h.Store.Entry(id) == nil {
		jsonError(w, http.StatusNotFound, "entry not found")
		return
	}

	// Limit to 5 MB.
	r.Body = http.MaxBytesReader(w, r.Body, 5<<20)

	if err := r.ParseMultipartForm(5 << 20); err != nil {
		jsonError(w, http.StatusBadRequest, "file too large or invalid multipart form")
		return
	}

	file, _, err := r.FormFile("photo")
	if err != nil {
		jsonError(w, http.StatusBadRequest, "photo file required")
		return
	}
	defer file.Close()

	dataURI, err := imaging.Process(io.LimitReader(file, 5<<20), imaging.PhotoMaxDimension)
	if err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.Store.SetEntryPhoto(r.Context(), id, dataURI)
	jsonResponse(w, http.StatusOK, map[string]string{"message": "photo attached"})
}

package api

import (
	"errors"
	"net/http"

	"github.com/rahulhaldarin-lang/OFFICE-LENS/internal/model"
	"github.com/rahulhaldarin-lang/OFFICE-LENS/internal/store"
)

// ContactsHandler handles phonebook endpoints.
type ContactsHandler struct {
	Store *store.Store
}

type contactRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// List handles GET /api/contacts. The view query parameter selects active
// (default) or trash.
func (h *ContactsHandler) List(w http.ResponseWriter, r *http.Request) {
	wantStatus := model.EntryActive
	if r.URL.Query().Get("view") == "trash" {
		wantStatus = model.EntryTrashed
	}

	contacts := []model.Contact{}
	for _, c := range h.Store.Contacts() {
		if c.Status == wantStatus {
			contacts = append(contacts, c)
		}
	}
	jsonResponse(w, http.StatusOK, contacts)
}

// Create handles POST /api/contacts.
func (h *ContactsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	contact, err := h.Store.AddContact(r.Context(), req.Name, req.Phone)
	if err != nil {
		if errors.Is(err, store.ErrNameRequired) || errors.Is(err, store.ErrPhoneRequired) {
			jsonError(w, http.StatusBadRequest, err.Error())
			return
		}
		jsonError(w, http.StatusInternalServerError, "failed to create contact")
		return
	}

	jsonResponse(w, http.StatusCreated, contact)
}

// Update handles PUT /api/contacts/{id}.
func (h *ContactsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ok, err := h.Store.UpdateContact(r.Context(), model.Contact{
		ID:    r.PathValue("id"),
		Name:  req.Name,
		Phone: req.Phone,
	})
	if err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}
	if !ok {
		jsonError(w, http.StatusNotFound, "contact not found")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]string{"message": "contact updated"})
}

// SoftDelete handles DELETE /api/contacts/{id}.
func (h *ContactsHandler) SoftDelete(w http.ResponseWriter, r *http.Request) {
	h.Store.SoftDeleteContact(r.Context(), r.PathValue("id"))
	jsonResponse(w, http.StatusOK, map[string]string{"message": "contact moved to trash"})
}

// Restore handles POST /api/contacts/{id}/restore.
func (h *ContactsHandler) Restore(w http.ResponseWriter, r *http.Request) {
	h.Store.RestoreContact(r.Context(), r.PathValue("id"))
	jsonResponse(w, http.StatusOK, map[string]string{"message": "contact restored"})
}

// Purge handles DELETE /api/contacts/{id}/purge, gated on confirmation.
func (h *ContactsHandler) Purge(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("confirm") != "true" {
		jsonError(w, http.StatusBadRequest, "confirmation required for permanent deletion")
		return
	}

	h.Store.PurgeContact(r.Context(), r.PathValue("id"))
	jsonResponse(w, http.StatusOK, map[string]string{"message": "contact permanently deleted"})
}

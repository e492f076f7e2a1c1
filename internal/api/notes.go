package api

import (
	"errors"
	"net/http"

	"github.com/rahulhaldarin-lang/OFFICE-LENS/internal/model"
	"github.com/rahulhaldarin-lang/OFFICE-LENS/internal/store"
)

// NotesHandler handles the notes ledger endpoints.
type NotesHandler struct {
	Store *store.Store
}

type noteRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Category string `json:"category"`
}

// List handles GET /api/notes.
func (h *NotesHandler) List(w http.ResponseWriter, r *http.Request) {
	notes := h.Store.Notes()
	if notes == nil {
		notes = []model.Note{}
	}
	jsonResponse(w, http.StatusOK, notes)
}

// Create handles POST /api/notes.
func (h *NotesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req noteRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	note, err := h.Store.CreateNote(r.Context(), req.Title, req.Content, req.Category)
	if err != nil {
		if errors.Is(err, store.ErrTitleRequired) {
			jsonError(w, http.StatusBadRequest, err.Error())
			return
		}
		jsonError(w, http.StatusInternalServerError, "failed to create note")
		return
	}

	jsonResponse(w, http.StatusCreated, note)
}

// Update handles PUT /api/notes/{id}.
func (h *NotesHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req noteRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ok, err := h.Store.UpdateNote(r.Context(), model.Note{
		ID:       r.PathValue("id"),
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
	})
	if err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}
	if !ok {
		jsonError(w, http.StatusNotFound, "note not found")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]string{"message": "note updated"})
}

// Delete handles DELETE /api/notes/{id}. Notes have no trash.
func (h *NotesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	h.Store.DeleteNote(r.Context(), r.PathValue("id"))
	jsonResponse(w, http.StatusOK, map[string]string{"message": "note deleted"})
}

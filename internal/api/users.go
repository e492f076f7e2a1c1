package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/rahulhaldarin-lang/OFFICE-LENS/internal/imaging"
	"github.com/rahulhaldarin-lang/OFFICE-LENS/internal/model"
	"github.com/rahulhaldarin-lang/OFFICE-LENS/internal/store"
)

// UsersHandler handles personnel profile endpoints.
type UsersHandler struct {
	Store *store.Store
}

type createUserRequest struct {
	Name string `json:"name"`
}

// List handles GET /api/users.
func (h *UsersHandler) List(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, h.Store.Users())
}

// Create handles POST /api/users. The new user becomes current, matching
// the expectation that adding personnel switches recording to them.
func (h *UsersHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.Store.AddUser(r.Context(), req.Name)
	if err != nil {
		if errors.Is(err, store.ErrNameRequired) {
			jsonError(w, http.StatusBadRequest, err.Error())
			return
		}
		jsonError(w, http.StatusInternalServerError, "failed to create user")
		return
	}

	h.Store.SetCurrentUser(r.Context(), user.ID)
	jsonResponse(w, http.StatusCreated, user)
}

// Get handles GET /api/users/{id}.
func (h *UsersHandler) Get(w http.ResponseWriter, r *http.Request) {
	user := h.Store.User(r.PathValue("id"))
	if user == nil {
		jsonError(w, http.StatusNotFound, "user not found")
		return
	}
	jsonResponse(w, http.StatusOK, user)
}

// Update handles PUT /api/users/{id}.
func (h *UsersHandler) Update(w http.ResponseWriter, r *http.Request) {
	var user model.User
	if err := decodeJSON(r, &user); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	user.ID = r.PathValue("id")

	ok, err := h.Store.UpdateUser(r.Context(), user)
	if err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}
	if !ok {
		jsonError(w, http.StatusNotFound, "user not found")
		return
	}

	jsonResponse(w, http.StatusOK, h.Store.User(user.ID))
}

// GetCurrent handles GET /api/users/current.
func (h *UsersHandler) GetCurrent(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, h.Store.CurrentUser())
}

type setCurrentRequest struct {
	ID string `json:"id"`
}

// SetCurrent handles PUT /api/users/current.
func (h *UsersHandler) SetCurrent(w http.ResponseWriter, r *http.Request) {
	var req setCurrentRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if !h.Store.SetCurrentUser(r.Context(), req.ID) {
		jsonError(w, http.StatusNotFound, "user not found")
		return
	}
	jsonResponse(w, http.StatusOK, h.Store.CurrentUser())
}

// UploadAvatar handles PUT /api/users/{id}/avatar.
func (h *UsersHandler) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if h.Store.User(id) == nil {
		jsonError(w, http.StatusNotFound, "user not found")
		return
	}

	// Limit to 5 MB.
	r.Body = http.MaxBytesReader(w, r.Body, 5<<20)

	if err := r.ParseMultipartForm(5 << 20); err != nil {
		jsonError(w, http.StatusBadRequest, "file too large or invalid multipart form")
		return
	}

	file, _, err := r.FormFile("avatar")
	if err != nil {
		jsonError(w, http.StatusBadRequest, "avatar file required")
		return
	}
	defer file.Close()

	dataURI, err := imaging.Process(io.LimitReader(file, 5<<20), imaging.AvatarMaxDimension)
	if err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.Store.SetUserAvatar(r.Context(), id, dataURI)
	jsonResponse(w, http.StatusOK, map[string]string{"message": "avatar updated"})
}

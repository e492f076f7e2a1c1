package api

import (
	"errors"
	"net/http"

	"github.com/rahulhaldarin-lang/OFFICE-LENS/internal/model"
	"github.com/rahulhaldarin-lang/OFFICE-LENS/internal/store"
)

// SettingsHandler handles app branding and theme endpoints.
type SettingsHandler struct {
	Store *store.Store
}

type settingsResponse struct {
	PrimaryTitle   string `json:"primary_title"`
	SecondaryTitle string `json:"secondary_title"`
	Theme          string `json:"theme"`
}

type settingsRequest struct {
	PrimaryTitle   string `json:"primary_title"`
	SecondaryTitle string `json:"secondary_title"`
	Theme          string `json:"theme"`
}

// Get handles GET /api/settings.
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	settings := h.Store.Settings()
	jsonResponse(w, http.StatusOK, settingsResponse{
		PrimaryTitle:   settings.PrimaryTitle,
		SecondaryTitle: settings.SecondaryTitle,
		Theme:          h.Store.Theme(),
	})
}

// Update handles PUT /api/settings. Omitted fields keep their values.
func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req settingsRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Theme != "" {
		if err := h.Store.SetTheme(r.Context(), req.Theme); err != nil {
			if errors.Is(err, store.ErrUnknownTheme) {
				jsonError(w, http.StatusBadRequest, err.Error())
				return
			}
			jsonError(w, http.StatusInternalServerError, "failed to set theme")
			return
		}
	}

	if req.PrimaryTitle != "" || req.SecondaryTitle != "" {
		current := h.Store.Settings()
		next := model.Settings{
			PrimaryTitle:   current.PrimaryTitle,
			SecondaryTitle: current.SecondaryTitle,
		}
		if req.PrimaryTitle != "" {
			next.PrimaryTitle = req.PrimaryTitle
		}
		if req.SecondaryTitle != "" {
			next.SecondaryTitle = req.SecondaryTitle
		}
		h.Store.SetSettings(r.Context(), next)
	}

	h.Get(w, r)
}

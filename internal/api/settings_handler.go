package api

import (
	"net/http"

	"github.com/hsiaochiang/ExamWordPrep/internal/models"
)

// GET /settings
func (h *Handler) getSettings(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.services.Settings(r.Context(), claimsFrom(r).Username))
}

// PUT /settings
func (h *Handler) putSettings(w http.ResponseWriter, r *http.Request) {
	var settings models.UserSettings
	if !decodeJSON(w, r, &settings) {
		return
	}

	// Settings always belong to the caller, whatever the body claims.
	settings.Username = claimsFrom(r).Username

	if err := h.services.UpsertSettings(r.Context(), settings); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, settings)
}

package api

import (
	"errors"
	"net/http"

	"github.com/hsiaochiang/ExamWordPrep/internal/models"
	"github.com/hsiaochiang/ExamWordPrep/internal/session"
)

// GET /words
func (h *Handler) listWords(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.services.Catalog())
}

type buildSessionRequest struct {
	Condition models.SelectionCondition `json:"condition"`
	MaxCount  int                       `json:"maxCount"`
}

type sessionResponse struct {
	Words       []models.WordEntry         `json:"words"`
	Condition   *models.SelectionCondition `json:"condition,omitempty"`
	Familiarity map[int]models.Familiarity `json:"familiarity"`
}

// POST /session
func (h *Handler) buildSession(w http.ResponseWriter, r *http.Request) {
	var req buildSessionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	username := claimsFrom(r).Username
	words := h.services.BuildSession(r.Context(), username, req.Condition, req.MaxCount)

	respondJSON(w, http.StatusCreated, sessionResponse{
		Words:       words,
		Condition:   &req.Condition,
		Familiarity: h.services.Familiarity(),
	})
}

// GET /session
func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	resp := sessionResponse{
		Words:       h.services.SessionWords(),
		Familiarity: h.services.Familiarity(),
	}
	if cond, ok := h.services.Selection(); ok {
		resp.Condition = &cond
	}
	respondJSON(w, http.StatusOK, resp)
}

// DELETE /session
func (h *Handler) resetSession(w http.ResponseWriter, r *http.Request) {
	h.services.ResetSession()
	w.WriteHeader(http.StatusNoContent)
}

type markFamiliarityRequest struct {
	WordID int                `json:"wordId"`
	Value  models.Familiarity `json:"value"`
}

// POST /session/familiarity
func (h *Handler) markFamiliarity(w http.ResponseWriter, r *http.Request) {
	var req markFamiliarityRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.services.MarkFamiliarity(req.WordID, req.Value); err != nil {
		if errors.Is(err, session.ErrInvalidFamiliarity) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to mark word")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

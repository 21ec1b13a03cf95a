package api

import (
	"net/http"

	"go.uber.org/zap"
)

// GET /records
func (h *Handler) listRecords(w http.ResponseWriter, r *http.Request) {
	username := claimsFrom(r).Username
	records, err := h.services.History(r.Context(), username)
	if err != nil {
		h.log.Error("failed to load records", zap.String("username", username), zap.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to load records")
		return
	}
	respondJSON(w, http.StatusOK, records)
}

// GET /records/wrong-words
func (h *Handler) wrongWordFrequency(w http.ResponseWriter, r *http.Request) {
	username := claimsFrom(r).Username
	counts, err := h.services.WrongWordFrequency(r.Context(), username)
	if err != nil {
		h.log.Error("failed to aggregate wrong words", zap.String("username", username), zap.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to aggregate wrong words")
		return
	}
	respondJSON(w, http.StatusOK, counts)
}

package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/hsiaochiang/ExamWordPrep/internal/service"
	"github.com/hsiaochiang/ExamWordPrep/internal/storage/appdata"
	"go.uber.org/zap"
)

// GET /export
func (h *Handler) exportData(w http.ResponseWriter, r *http.Request) {
	raw, err := h.store.Export(r.Context())
	if err != nil {
		h.log.Error("export failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "export failed")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="appdata.json"`)
	w.Write(raw)
}

// POST /import?mode=replace|merge
func (h *Handler) importData(w http.ResponseWriter, r *http.Request) {
	mode := appdata.ImportMode(r.URL.Query().Get("mode"))
	if mode == "" {
		mode = appdata.ImportReplace
	}

	raw, err := io.ReadAll(r.Body)
	if err != nil {
		respondError(w, http.StatusBadRequest, "failed to read body")
		return
	}

	if err := h.store.Import(r.Context(), raw, mode); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GET /admin/users
func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.ListUsers(r.Context())
	if err != nil {
		h.log.Error("failed to list users", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to list users")
		return
	}

	resp := make([]userResponse, 0, len(users))
	for _, user := range users {
		resp = append(resp, toUserResponse(user))
	}
	respondJSON(w, http.StatusOK, resp)
}

type upsertUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	IsAdmin  bool   `json:"isAdmin"`
}

// POST /admin/users
func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	var req upsertUserRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := h.services.CreateUser(r.Context(), req.Username, req.Password, req.IsAdmin)
	switch {
	case errors.Is(err, service.ErrEmptyUsername):
		respondError(w, http.StatusBadRequest, err.Error())
		return
	case errors.Is(err, service.ErrUserExists):
		respondError(w, http.StatusConflict, err.Error())
		return
	case err != nil:
		h.log.Error("failed to create user", zap.String("username", req.Username), zap.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to create user")
		return
	}

	respondJSON(w, http.StatusCreated, toUserResponse(user))
}

// PUT /admin/users/{username}
func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	username := r.PathValue("username")

	var req upsertUserRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := h.services.UpdateUser(r.Context(), username, req.Password, req.IsAdmin)
	if errors.Is(err, appdata.ErrNotFound) {
		respondError(w, http.StatusNotFound, "user not found")
		return
	}
	if err != nil {
		h.log.Error("failed to update user", zap.String("username", username), zap.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to update user")
		return
	}

	respondJSON(w, http.StatusOK, toUserResponse(user))
}

// DELETE /admin/users/{username}
func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	username := r.PathValue("username")

	err := h.services.DeleteUser(r.Context(), username)
	switch {
	case errors.Is(err, appdata.ErrNotFound):
		respondError(w, http.StatusNotFound, "user not found")
		return
	case errors.Is(err, service.ErrLastAdmin):
		respondError(w, http.StatusConflict, err.Error())
		return
	case err != nil:
		h.log.Error("failed to delete user", zap.String("username", username), zap.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to delete user")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DELETE /admin/records?username=<user>
// An empty username clears everyone's history.
func (h *Handler) resetRecords(w http.ResponseWriter, r *http.Request) {
	username := r.URL.Query().Get("username")
	if err := h.services.ResetRecords(r.Context(), username); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to clear records")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

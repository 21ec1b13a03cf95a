package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/hsiaochiang/ExamWordPrep/internal/models"
	"github.com/hsiaochiang/ExamWordPrep/internal/service"
	"go.uber.org/zap"
)

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// userResponse is the user without the password field.
type userResponse struct {
	Username    string     `json:"username"`
	IsAdmin     bool       `json:"isAdmin"`
	CreatedAt   time.Time  `json:"createdAt"`
	LastLoginAt *time.Time `json:"lastLoginAt"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

func toUserResponse(user models.User) userResponse {
	return userResponse{
		Username:    user.Username,
		IsAdmin:     user.IsAdmin,
		CreatedAt:   user.CreatedAt,
		LastLoginAt: user.LastLoginAt,
	}
}

// POST /auth/login
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, token, err := h.services.Login(r.Context(), req.Username, req.Password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		respondError(w, http.StatusUnauthorized, err.Error())
		return
	}
	if err != nil {
		h.log.Error("login failed", zap.String("username", req.Username), zap.Error(err))
		respondError(w, http.StatusInternalServerError, "login failed")
		return
	}

	respondJSON(w, http.StatusOK, authResponse{Token: token, User: toUserResponse(user)})
}

// POST /auth/register
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, token, err := h.services.Register(r.Context(), req.Username, req.Password)
	switch {
	case errors.Is(err, service.ErrEmptyUsername):
		respondError(w, http.StatusBadRequest, err.Error())
		return
	case errors.Is(err, service.ErrUserExists):
		respondError(w, http.StatusConflict, err.Error())
		return
	case err != nil:
		h.log.Error("registration failed", zap.String("username", req.Username), zap.Error(err))
		respondError(w, http.StatusInternalServerError, "registration failed")
		return
	}

	respondJSON(w, http.StatusCreated, authResponse{Token: token, User: toUserResponse(user)})
}

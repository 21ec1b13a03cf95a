package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/hsiaochiang/ExamWordPrep/internal/service"
	"go.uber.org/zap"
)

type contextKey string

const claimsKey contextKey = "claims"

// authorized verifies the bearer token and stores the claims on the request
// context for the wrapped handler.
func (h *Handler) authorized(next http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			respondError(w, http.StatusUnauthorized, "missing bearer token")
			return
		}

		claims, err := h.services.VerifyToken(token)
		if err != nil {
			h.log.Debug("rejected token", zap.Error(err))
			respondError(w, http.StatusUnauthorized, "invalid token")
			return
		}

		next(w, r.WithContext(context.WithValue(r.Context(), claimsKey, claims)))
	})
}

// adminOnly is authorized plus an admin-flag check.
func (h *Handler) adminOnly(next http.HandlerFunc) http.Handler {
	return h.authorized(func(w http.ResponseWriter, r *http.Request) {
		if !claimsFrom(r).IsAdmin {
			respondError(w, http.StatusForbidden, "admin access required")
			return
		}
		next(w, r)
	})
}

// claimsFrom returns the claims the auth middleware stored. Handlers behind
// authorized can rely on them being present.
func claimsFrom(r *http.Request) service.Claims {
	claims, _ := r.Context().Value(claimsKey).(service.Claims)
	return claims
}

package api

import (
	"encoding/json"
	"net/http"

	"github.com/hsiaochiang/ExamWordPrep/internal/service"
	"github.com/hsiaochiang/ExamWordPrep/internal/storage/appdata"
	"go.uber.org/zap"
)

// Handler holds every dependency the HTTP handlers need. Handler methods
// receive their dependencies through this struct instead of package globals.
type Handler struct {
	services *service.Service
	store    *appdata.Store
	log      *zap.Logger
}

func NewHandler(services *service.Service, store *appdata.Store, log *zap.Logger) *Handler {
	return &Handler{
		services: services,
		store:    store,
		log:      log,
	}
}

// Router registers every route on a fresh mux. Method-qualified patterns keep
// the dispatch in one place.
func (h *Handler) Router() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /auth/login", h.login)
	mux.HandleFunc("POST /auth/register", h.register)

	// Session and quiz routes need a signed-in user.
	mux.Handle("GET /words", h.authorized(h.listWords))
	mux.Handle("POST /session", h.authorized(h.buildSession))
	mux.Handle("GET /session", h.authorized(h.getSession))
	mux.Handle("DELETE /session", h.authorized(h.resetSession))
	mux.Handle("POST /session/familiarity", h.authorized(h.markFamiliarity))
	mux.Handle("POST /quiz/questions", h.authorized(h.quizQuestions))
	mux.Handle("POST /quiz/results", h.authorized(h.submitQuizResult))
	mux.Handle("GET /records", h.authorized(h.listRecords))
	mux.Handle("GET /records/wrong-words", h.authorized(h.wrongWordFrequency))
	mux.Handle("GET /settings", h.authorized(h.getSettings))
	mux.Handle("PUT /settings", h.authorized(h.putSettings))

	mux.Handle("GET /export", h.adminOnly(h.exportData))
	mux.Handle("POST /import", h.adminOnly(h.importData))
	mux.Handle("GET /admin/users", h.adminOnly(h.listUsers))
	mux.Handle("POST /admin/users", h.adminOnly(h.createUser))
	mux.Handle("PUT /admin/users/{username}", h.adminOnly(h.updateUser))
	mux.Handle("DELETE /admin/users/{username}", h.adminOnly(h.deleteUser))
	mux.Handle("DELETE /admin/records", h.adminOnly(h.resetRecords))

	return mux
}

type errorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, errorResponse{Error: msg})
}

// decodeJSON reads the request body into v, answering 400 itself on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondError(w, http.StatusBadRequest, "invalid json")
		return false
	}
	return true
}

// Package api exposes the scoring engine over HTTP for external callers
// (the presentation layer and the daily rollover scheduler).
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mHappah3019/fittracker-sub000/internal/engine"
)

// Server is the FitTracker HTTP API server.
type Server struct {
	svc *engine.Service
}

func NewServer(svc *engine.Service) *Server {
	return &Server{svc: svc}
}

// Handler returns the chi router with all routes mounted.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/users", s.handleCreateUser)
		r.Get("/users/{id}", s.handleGetUser)
		r.Post("/users/{id}/startup", s.handleStartup)

		r.Post("/habits", s.handleCreateHabit)
		r.Patch("/habits/{id}", s.handleUpdateHabit)
		r.Post("/habits/{id}/complete", s.handleComplete)

		r.Post("/rollover", s.handleRollover)
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}

// statusForError maps engine errors to HTTP statuses.
func statusForError(err error) int {
	switch {
	case errors.Is(err, engine.ErrHabitNotFound), errors.Is(err, engine.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, engine.ErrAlreadyCompletedToday):
		return http.StatusConflict
	}
	var dup engine.DuplicateNameError
	if errors.As(err, &dup) {
		return http.StatusConflict
	}
	var val engine.ValidationError
	var freq engine.UnsupportedFrequencyError
	if errors.As(err, &val) || errors.As(err, &freq) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func writeEngineError(w http.ResponseWriter, err error) {
	writeError(w, statusForError(err), err.Error())
}

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{
		"error": map[string]any{
			"message": msg,
		},
	})
}

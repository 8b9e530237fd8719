package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mHappah3019/fittracker-sub000/internal/engine"
	"github.com/mHappah3019/fittracker-sub000/internal/storage"
)

type userResponse struct {
	ID           string  `json:"id"`
	Username     string  `json:"username"`
	Level        int     `json:"level"`
	XPTotal      float64 `json:"xp_total"`
	LifePoints   int     `json:"life_points"`
	LastAccessAt string  `json:"last_access_at,omitempty"`
}

func toUserResponse(u *storage.User) userResponse {
	resp := userResponse{
		ID:         u.ID,
		Username:   u.Username,
		Level:      u.Level,
		XPTotal:    u.XPTotal,
		LifePoints: u.LifePoints,
	}
	if u.LastAccessAt != nil {
		resp.LastAccessAt = u.LastAccessAt.Format(time.RFC3339)
	}
	return resp
}

type habitResponse struct {
	ID            string `json:"id"`
	UserID        string `json:"user_id"`
	Name          string `json:"name"`
	Difficulty    string `json:"difficulty"`
	Frequency     string `json:"frequency"`
	CurrentStreak int    `json:"current_streak"`
	LongestStreak int    `json:"longest_streak"`
	TargetStreak  *int   `json:"target_streak,omitempty"`
}

func toHabitResponse(h *storage.Habit) habitResponse {
	return habitResponse{
		ID:            h.ID,
		UserID:        h.UserID,
		Name:          h.Name,
		Difficulty:    h.Difficulty,
		Frequency:     h.Frequency,
		CurrentStreak: h.CurrentStreak,
		LongestStreak: h.LongestStreak,
		TargetStreak:  h.TargetStreak,
	}
}

// POST /api/users
func (s *Server) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Username == "" {
		writeError(w, http.StatusBadRequest, "username is required")
		return
	}

	u, err := s.svc.UserRepo().GetOrCreate(r.Context(), req.Username)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toUserResponse(u))
}

// GET /api/users/{id}
func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	u, err := s.svc.UserRepo().Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeEngineError(w, err)
		return
	}
	if u == nil {
		writeError(w, http.StatusNotFound, engine.ErrUserNotFound.Error())
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(u))
}

// POST /api/users/{id}/startup — idempotent per calendar day.
func (s *Server) handleStartup(w http.ResponseWriter, r *http.Request) {
	res, err := s.svc.HandleApplicationStartup(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeEngineError(w, err)
		return
	}
	if res == nil {
		writeJSON(w, http.StatusOK, map[string]any{"reconciled": false})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"reconciled":      true,
		"level_decreased": res.LevelDecreased,
		"old_life_points": res.OldLifePoints,
		"new_life_points": res.NewLifePoints,
	})
}

// POST /api/habits
func (s *Server) handleCreateHabit(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID       string `json:"user_id"`
		Name         string `json:"name"`
		Difficulty   string `json:"difficulty"`
		Frequency    string `json:"frequency"`
		TargetStreak *int   `json:"target_streak"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	h, err := s.svc.CreateHabit(r.Context(), engine.CreateHabitInput{
		UserID:       req.UserID,
		Name:         req.Name,
		Difficulty:   engine.Difficulty(req.Difficulty),
		Frequency:    engine.Frequency(req.Frequency),
		TargetStreak: req.TargetStreak,
	})
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toHabitResponse(h))
}

// PATCH /api/habits/{id}
func (s *Server) handleUpdateHabit(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name         *string `json:"name"`
		Difficulty   *string `json:"difficulty"`
		TargetStreak *int    `json:"target_streak"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	in := engine.UpdateHabitInput{
		Name:         req.Name,
		TargetStreak: req.TargetStreak,
	}
	if req.Difficulty != nil {
		d := engine.Difficulty(*req.Difficulty)
		in.Difficulty = &d
	}

	h, err := s.svc.UpdateHabit(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toHabitResponse(h))
}

// POST /api/habits/{id}/complete
func (s *Server) handleComplete(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID string `json:"user_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.UserID == "" {
		writeError(w, http.StatusBadRequest, "user_id is required")
		return
	}

	res, err := s.svc.CompleteHabit(r.Context(), chi.URLParam(r, "id"), req.UserID)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"completion_id": res.Completion.ID,
		"completed_on":  res.Completion.CompletedOn,
		"xp_gained":     res.XPGained,
		"new_level":     res.NewLevel,
		"streak":        res.Streak,
	})
}

// POST /api/rollover — invoked once per day by the external scheduler.
func (s *Server) handleRollover(w http.ResponseWriter, r *http.Request) {
	n, err := s.svc.RunDailyRollover(r.Context())
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"users_reconciled": n})
}

package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/courtside-sim/internal/app/league"
	"github.com/preston-bernstein/courtside-sim/internal/domain/games"
	"github.com/preston-bernstein/courtside-sim/internal/domain/teams"
	"github.com/preston-bernstein/courtside-sim/internal/http/middleware"
	"github.com/preston-bernstein/courtside-sim/internal/logging"
	"github.com/preston-bernstein/courtside-sim/internal/sim"
)

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logging.Error(logger, "failed to encode response", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string, logger *slog.Logger) {
	reqID := middleware.RequestIDFromContext(r.Context())
	if reqID == "" {
		reqID = r.Header.Get("X-Request-ID")
	}
	body := map[string]string{"error": message}
	if reqID != "" {
		body["requestId"] = reqID
	}
	writeJSON(w, status, body, logger)
}

// writeFailure maps a service error onto a status code.
func writeFailure(w http.ResponseWriter, r *http.Request, err error, logger *slog.Logger) {
	status := statusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		logging.Error(logger, "request failed", err)
		msg = "internal error"
	}
	writeError(w, r, status, msg, logger)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, league.ErrGameNotFound), errors.Is(err, league.ErrTeamNotFound):
		return http.StatusNotFound
	case errors.Is(err, league.ErrAlreadyPlayed), errors.Is(err, league.ErrNoPendingGames):
		return http.StatusConflict
	case errors.Is(err, teams.ErrInvalidRoster),
		errors.Is(err, teams.ErrInvalidLineup),
		errors.Is(err, teams.ErrInvalidRotation),
		errors.Is(err, games.ErrInvariant),
		errors.Is(err, sim.ErrInvalidMatchup):
		return http.StatusUnprocessableEntity
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func requireMethod(w http.ResponseWriter, r *http.Request, method string, logger *slog.Logger) bool {
	if r.Method == method {
		return true
	}
	w.Header().Set("Allow", method)
	writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", logger)
	return false
}

func loggerFromContext(r *http.Request, fallback *slog.Logger) *slog.Logger {
	if r == nil {
		return fallback
	}
	return logging.FromContext(r.Context(), fallback)
}

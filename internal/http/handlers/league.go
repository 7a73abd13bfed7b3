package handlers

import (
	"errors"
	nethttp "net/http"
	"strconv"

	"github.com/preston-bernstein/courtside-sim/internal/app/league"
	"github.com/preston-bernstein/courtside-sim/internal/domain/stats"
	"github.com/preston-bernstein/courtside-sim/internal/logging"
	"github.com/preston-bernstein/courtside-sim/internal/sim"
)

// NextRound plays every pending game of the earliest unplayed date.
func (h *Handler) NextRound(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodPost, h.logger) {
		return
	}
	logger := loggerFromContext(r, h.logger)
	round, err := h.league.PlayNextRound(r.Context())
	if errors.Is(err, league.ErrNoPendingGames) {
		writeError(w, r, nethttp.StatusConflict, "season complete", logger)
		return
	}
	if err != nil {
		writeFailure(w, r, err, logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, round, logger)
}

// Exhibition plays two teams off the schedule; nothing is recorded.
func (h *Handler) Exhibition(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodPost, h.logger) {
		return
	}
	logger := loggerFromContext(r, h.logger)
	q := r.URL.Query()
	home, away := q.Get("home"), q.Get("away")
	if home == "" || away == "" {
		writeError(w, r, nethttp.StatusBadRequest, "home and away are required", logger)
		return
	}
	res, err := h.league.Exhibition(home, away, h.league.Mode(q.Get("mode")), sim.Options{RecordPlays: q.Get("plays") == "true"})
	if err != nil {
		logging.Warn(logger, "exhibition failed", logging.FieldTeamID, home+"-"+away, "error", err)
		writeFailure(w, r, err, logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, res, logger)
}

type statsResponse struct {
	Stream  stats.Stream    `json:"stream"`
	Count   int             `json:"count"`
	Leaders []stats.Summary `json:"leaders"`
}

// Stats returns per-player summaries for one stream, top scorers first.
func (h *Handler) Stats(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	q := r.URL.Query()
	stream := stats.ParseStream(q.Get("stream"))
	leaders := h.league.Leaders(stream)
	if raw := q.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			writeError(w, r, nethttp.StatusBadRequest, "invalid limit", h.logger)
			return
		}
		if limit < len(leaders) {
			leaders = leaders[:limit]
		}
	}
	if leaders == nil {
		leaders = []stats.Summary{}
	}
	writeJSON(w, nethttp.StatusOK, statsResponse{Stream: stream, Count: len(leaders), Leaders: leaders}, h.logger)
}

// Standings returns the regular-season table.
func (h *Handler) Standings(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	season := h.league.Season()
	writeJSON(w, nethttp.StatusOK, map[string]any{
		"season":    season.ID,
		"played":    len(season.Results),
		"standings": season.Standings(),
	}, h.logger)
}

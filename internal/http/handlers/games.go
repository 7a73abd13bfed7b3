package handlers

import (
	nethttp "net/http"
	"strconv"

	appgames "github.com/preston-bernstein/courtside-sim/internal/app/games"
	"github.com/preston-bernstein/courtside-sim/internal/domain/games"
	"github.com/preston-bernstein/courtside-sim/internal/logging"
	"github.com/preston-bernstein/courtside-sim/internal/sim"
	"github.com/preston-bernstein/courtside-sim/internal/timeutil"
)

type gamesResponse struct {
	Date  string       `json:"date,omitempty"`
	Count int          `json:"count"`
	Games []games.Game `json:"games"`
}

// Games lists the schedule, filtered by date, team and played.
func (h *Handler) Games(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	q := r.URL.Query()
	f := appgames.Filter{Date: q.Get("date"), TeamID: q.Get("team")}
	if f.Date != "" {
		if _, err := timeutil.ParseDate(f.Date); err != nil {
			writeError(w, r, nethttp.StatusBadRequest, "invalid date format (expected YYYY-MM-DD)", h.logger)
			return
		}
	}
	if raw := q.Get("played"); raw != "" {
		played, err := strconv.ParseBool(raw)
		if err != nil {
			writeError(w, r, nethttp.StatusBadRequest, "invalid played filter", h.logger)
			return
		}
		f.Played = &played
	}
	list := h.games.Games(f)
	if list == nil {
		list = []games.Game{}
	}
	writeJSON(w, nethttp.StatusOK, gamesResponse{Date: f.Date, Count: len(list), Games: list}, h.logger)
}

// GameRoutes serves /games/{id} and /games/{id}/play.
func (h *Handler) GameRoutes(w nethttp.ResponseWriter, r *nethttp.Request) {
	id, rest, ok := pathID(r.URL.Path, "/games/")
	if !ok {
		writeError(w, r, nethttp.StatusBadRequest, "invalid game id", h.logger)
		return
	}
	switch rest {
	case "":
		h.gameByID(w, r, id)
	case "play":
		h.admin.Wrap(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			h.playGame(w, r, id)
		})(w, r)
	default:
		writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
	}
}

func (h *Handler) gameByID(w nethttp.ResponseWriter, r *nethttp.Request, id string) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	game, found := h.games.GameByID(id)
	if !found {
		writeError(w, r, nethttp.StatusNotFound, "game not found", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, game, h.logger)
}

func (h *Handler) playGame(w nethttp.ResponseWriter, r *nethttp.Request, id string) {
	if !requireMethod(w, r, nethttp.MethodPost, h.logger) {
		return
	}
	logger := loggerFromContext(r, h.logger)
	mode := h.league.Mode(r.URL.Query().Get("mode"))
	opts := sim.Options{RecordPlays: r.URL.Query().Get("plays") == "true"}

	res, err := h.league.PlayGame(r.Context(), id, mode, opts)
	if err != nil {
		logging.Warn(logger, "play game failed", logging.FieldGameID, id, "error", err)
		writeFailure(w, r, err, logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, res, logger)
}

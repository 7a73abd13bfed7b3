package handlers

import (
	"log/slog"
	nethttp "net/http"
	"net/url"
	"strings"

	appgames "github.com/preston-bernstein/courtside-sim/internal/app/games"
	"github.com/preston-bernstein/courtside-sim/internal/app/league"
	appplayers "github.com/preston-bernstein/courtside-sim/internal/app/players"
	appteams "github.com/preston-bernstein/courtside-sim/internal/app/teams"
	"github.com/preston-bernstein/courtside-sim/internal/autoplay"
)

// Services are the application services the handlers read and drive.
type Services struct {
	League  *league.Service
	Teams   *appteams.Service
	Players *appplayers.Service
	Games   *appgames.Service
}

// Handler wires HTTP routes to the league services.
type Handler struct {
	league   *league.Service
	teams    *appteams.Service
	players  *appplayers.Service
	games    *appgames.Service
	admin    *AdminGuard
	logger   *slog.Logger
	statusFn func() autoplay.Status
}

// NewHandler constructs a Handler. statusFn may be nil when autoplay is off.
func NewHandler(svc Services, admin *AdminGuard, logger *slog.Logger, statusFn func() autoplay.Status) *Handler {
	return &Handler{
		league:   svc.League,
		teams:    svc.Teams,
		players:  svc.Players,
		games:    svc.Games,
		admin:    admin,
		logger:   logger,
		statusFn: statusFn,
	}
}

func (h *Handler) ServeHTTP(w nethttp.ResponseWriter, r *nethttp.Request) {
	path := r.URL.Path
	switch {
	case path == "/health":
		h.Health(w, r)
	case path == "/ready":
		h.Ready(w, r)
	case path == "/teams":
		h.Teams(w, r)
	case strings.HasPrefix(path, "/teams/"):
		h.TeamByID(w, r)
	case path == "/players":
		h.Players(w, r)
	case strings.HasPrefix(path, "/players/"):
		h.PlayerByID(w, r)
	case path == "/games":
		h.Games(w, r)
	case strings.HasPrefix(path, "/games/"):
		h.GameRoutes(w, r)
	case path == "/rounds/next":
		h.admin.Wrap(h.NextRound)(w, r)
	case path == "/exhibitions":
		h.admin.Wrap(h.Exhibition)(w, r)
	case path == "/stats":
		h.Stats(w, r)
	case path == "/standings":
		h.Standings(w, r)
	case path == "/roles":
		h.Roles(w, r)
	case path == "/roles/fit":
		h.RoleFit(w, r)
	default:
		writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic. With autoplay on, it follows the loop's health.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	if h.statusFn == nil {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	st := h.statusFn()
	if st.IsReady() {
		writeJSON(w, nethttp.StatusOK, map[string]any{"status": "ready", "autoplay": st}, h.logger)
		return
	}
	msg := st.LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, nethttp.StatusServiceUnavailable, msg, h.logger)
}

// pathID extracts {id} from prefix/{id}[/suffix]. ok is false for an empty or malformed id.
func pathID(path, prefix string) (id, rest string, ok bool) {
	trimmed := strings.TrimPrefix(path, prefix)
	raw, rest, _ := strings.Cut(trimmed, "/")
	id, err := url.PathUnescape(raw)
	if err != nil || id == "" || strings.ContainsAny(id, " \t/") {
		return "", "", false
	}
	return id, rest, true
}

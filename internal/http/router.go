package http

import (
	nethttp "net/http"

	"github.com/preston-bernstein/courtside-sim/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux. Routes that advance the
// season go through the handler's dispatch so the admin guard applies.
func NewRouter(handler *handlers.Handler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/ready", handler.Ready)
	mux.HandleFunc("/teams", handler.Teams)
	mux.HandleFunc("/teams/", handler.TeamByID)
	mux.HandleFunc("/players", handler.Players)
	mux.HandleFunc("/players/", handler.PlayerByID)
	mux.HandleFunc("/games", handler.Games)
	mux.Handle("/games/", handler)
	mux.Handle("/rounds/next", handler)
	mux.Handle("/exhibitions", handler)
	mux.HandleFunc("/stats", handler.Stats)
	mux.HandleFunc("/standings", handler.Standings)
	mux.HandleFunc("/roles", handler.Roles)
	mux.HandleFunc("/roles/fit", handler.RoleFit)
	return mux
}

package handlers

import (
	nethttp "net/http"

	"github.com/preston-bernstein/courtside-sim/internal/domain/players"
	"github.com/preston-bernstein/courtside-sim/internal/domain/roles"
)

// Roles lists the archetype catalog, optionally for one position.
func (h *Handler) Roles(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	list := roles.All()
	if raw := r.URL.Query().Get("position"); raw != "" {
		pos, err := players.ParsePosition(raw)
		if err != nil {
			writeError(w, r, nethttp.StatusBadRequest, "invalid position", h.logger)
			return
		}
		list = roles.ForPosition(pos)
	}
	writeJSON(w, nethttp.StatusOK, map[string]any{"roles": list, "count": len(list)}, h.logger)
}

// RoleFit ranks the archetypes of a player's position against their ratings.
func (h *Handler) RoleFit(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	id := r.URL.Query().Get("player")
	if id == "" {
		writeError(w, r, nethttp.StatusBadRequest, "player is required", h.logger)
		return
	}
	report, ok := h.players.RoleFits(id)
	if !ok {
		writeError(w, r, nethttp.StatusNotFound, "player not found", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, report, h.logger)
}

package handlers

import (
	nethttp "net/http"
)

// Teams lists every team with its roster.
func (h *Handler) Teams(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	list := h.teams.Teams()
	writeJSON(w, nethttp.StatusOK, map[string]any{"teams": list, "count": len(list)}, h.logger)
}

// TeamByID returns one team.
func (h *Handler) TeamByID(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	id, rest, ok := pathID(r.URL.Path, "/teams/")
	if !ok || rest != "" {
		writeError(w, r, nethttp.StatusBadRequest, "invalid team id", h.logger)
		return
	}
	team, found := h.teams.TeamByID(id)
	if !found {
		writeError(w, r, nethttp.StatusNotFound, "team not found", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, team, h.logger)
}

// Players lists every rostered player.
func (h *Handler) Players(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	list := h.players.Players()
	if team := r.URL.Query().Get("team"); team != "" {
		filtered := list[:0]
		for _, p := range list {
			if p.TeamID == team {
				filtered = append(filtered, p)
			}
		}
		list = filtered
	}
	writeJSON(w, nethttp.StatusOK, map[string]any{"players": list, "count": len(list)}, h.logger)
}

// PlayerByID returns one player with the team carrying them.
func (h *Handler) PlayerByID(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	id, rest, ok := pathID(r.URL.Path, "/players/")
	if !ok || rest != "" {
		writeError(w, r, nethttp.StatusBadRequest, "invalid player id", h.logger)
		return
	}
	p, found := h.players.PlayerByID(id)
	if !found {
		writeError(w, r, nethttp.StatusNotFound, "player not found", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, p, h.logger)
}

package handlers

import (
	nethttp "net/http"
	"strings"

	"github.com/preston-bernstein/league-stats-service/internal/http/requestutil"
)

// PlayerAverages returns a player's per-game averages; ?last=N limits it to recent games.
func (h *Handler) PlayerAverages(w nethttp.ResponseWriter, r *nethttp.Request) {
	id, ok := h.playerParam(w, r)
	if !ok {
		return
	}
	last, ok := requestutil.IntParam(r, "last", 0)
	if !ok {
		writeError(w, r, nethttp.StatusBadRequest, "last must be a non-negative integer", h.logger)
		return
	}
	line, err := h.svc.PlayerAverages(r.Context(), id, last)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, nethttp.StatusOK, line, h.logger)
}

// PlayerTotals returns a player's season totals.
func (h *Handler) PlayerTotals(w nethttp.ResponseWriter, r *nethttp.Request) {
	id, ok := h.playerParam(w, r)
	if !ok {
		return
	}
	line, err := h.svc.PlayerTotals(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, nethttp.StatusOK, line, h.logger)
}

func (h *Handler) playerParam(w nethttp.ResponseWriter, r *nethttp.Request) (string, bool) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return "", false
	}
	id := strings.TrimSpace(r.PathValue("id"))
	if id == "" || strings.ContainsAny(id, " \t") {
		writeError(w, r, nethttp.StatusBadRequest, "invalid player id", h.logger)
		return "", false
	}
	return id, true
}

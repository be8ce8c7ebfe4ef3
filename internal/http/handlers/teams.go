package handlers

import (
	nethttp "net/http"
	"strings"

	"github.com/preston-bernstein/league-stats-service/internal/http/requestutil"
)

// TeamSplits returns a team's situational averages. The path accepts an id or a name.
func (h *Handler) TeamSplits(w nethttp.ResponseWriter, r *nethttp.Request) {
	team, ok := h.teamParam(w, r)
	if !ok {
		return
	}
	splits, err := h.svc.TeamSplits(r.Context(), team)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, nethttp.StatusOK, splits, h.logger)
}

// TeamAverages returns a team's per-game averages; ?last=N limits it to recent games.
func (h *Handler) TeamAverages(w nethttp.ResponseWriter, r *nethttp.Request) {
	team, ok := h.teamParam(w, r)
	if !ok {
		return
	}
	last, ok := requestutil.IntParam(r, "last", 0)
	if !ok {
		writeError(w, r, nethttp.StatusBadRequest, "last must be a non-negative integer", h.logger)
		return
	}
	line, err := h.svc.TeamAverages(r.Context(), team, last)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, nethttp.StatusOK, line, h.logger)
}

// TeamTotals returns a team's season totals.
func (h *Handler) TeamTotals(w nethttp.ResponseWriter, r *nethttp.Request) {
	team, ok := h.teamParam(w, r)
	if !ok {
		return
	}
	line, err := h.svc.TeamTotals(r.Context(), team)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, nethttp.StatusOK, line, h.logger)
}

func (h *Handler) teamParam(w nethttp.ResponseWriter, r *nethttp.Request) (string, bool) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return "", false
	}
	team := strings.TrimSpace(r.PathValue("team"))
	if team == "" {
		writeError(w, r, nethttp.StatusBadRequest, "invalid team", h.logger)
		return "", false
	}
	return team, true
}

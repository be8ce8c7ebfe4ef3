package handlers

import (
	"errors"
	nethttp "net/http"
	"strings"
	"time"

	"github.com/preston-bernstein/league-stats-service/internal/app/league"
	"github.com/preston-bernstein/league-stats-service/internal/http/requestutil"
	"github.com/preston-bernstein/league-stats-service/internal/logging"
	"github.com/preston-bernstein/league-stats-service/internal/snapshots"
	"github.com/preston-bernstein/league-stats-service/internal/stats"
	"github.com/preston-bernstein/league-stats-service/internal/timeutil"
)

const (
	sourceLive     = "live"
	sourceSnapshot = "snapshot"
)

// StandingsResponse is the body of GET /standings.
type StandingsResponse struct {
	Date        string               `json:"date"`
	Season      string               `json:"season,omitempty"`
	Source      string               `json:"source"`
	GeneratedAt time.Time            `json:"generatedAt"`
	Standings   []stats.TeamStanding `json:"standings"`
}

// Standings returns the live table, or the stored snapshot when ?date= is given.
func (h *Handler) Standings(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	logger := loggerFromContext(r, h.logger)
	date := strings.TrimSpace(r.URL.Query().Get("date"))

	// For explicit date queries, serve snapshots only.
	if date != "" {
		if _, err := timeutil.ParseDate(date); err != nil {
			writeError(w, r, nethttp.StatusBadRequest, "invalid date format (expected YYYY-MM-DD)", logger)
			return
		}
		h.serveSnapshot(w, r, date)
		return
	}

	rows, err := h.svc.Standings(r.Context())
	if errors.Is(err, league.ErrNoSeason) && h.snaps != nil {
		// Nothing loaded yet: fall back to today's snapshot if one exists.
		today := timeutil.UTCDate(h.now())
		if snap, snapErr := h.snaps.LoadStandings(today); snapErr == nil {
			writeJSON(w, nethttp.StatusOK, snapshotResponse(snap), logger)
			return
		}
	}
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	now := h.now().UTC()
	resp := StandingsResponse{
		Date:        timeutil.FormatDate(now),
		Source:      sourceLive,
		GeneratedAt: now,
		Standings:   rows,
	}
	if info, err := h.svc.Info(); err == nil {
		resp.Season = info.Name
	}
	logging.Info(logger, "served standings", logging.FieldCount, len(rows), "source", sourceLive)
	writeJSON(w, nethttp.StatusOK, resp, logger)
}

func (h *Handler) serveSnapshot(w nethttp.ResponseWriter, r *nethttp.Request, date string) {
	logger := loggerFromContext(r, h.logger)
	if h.snaps == nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "snapshot store not configured", logger)
		return
	}
	snap, err := h.snaps.LoadStandings(date)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	logging.Info(logger, "served standings", logging.FieldDate, date, logging.FieldCount, len(snap.Standings), "source", sourceSnapshot)
	writeJSON(w, nethttp.StatusOK, snapshotResponse(snap), logger)
}

func snapshotResponse(snap snapshots.StandingsSnapshot) StandingsResponse {
	return StandingsResponse{
		Date:        snap.Date,
		Season:      snap.Season,
		Source:      sourceSnapshot,
		GeneratedAt: snap.GeneratedAt,
		Standings:   snap.Standings,
	}
}

// Dashboard returns standings plus the headline leaderboards.
func (h *Handler) Dashboard(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	n, ok := requestutil.IntParam(r, "n", h.leaderCount)
	if !ok {
		writeError(w, r, nethttp.StatusBadRequest, "n must be a non-negative integer", h.logger)
		return
	}
	dash, err := h.svc.Dashboard(r.Context(), n)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, nethttp.StatusOK, dash, h.logger)
}

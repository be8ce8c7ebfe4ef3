package handlers

import (
	"context"
	"crypto/subtle"
	"errors"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/league-stats-service/internal/app/league"
	"github.com/preston-bernstein/league-stats-service/internal/http/requestutil"
	"github.com/preston-bernstein/league-stats-service/internal/logging"
	"github.com/preston-bernstein/league-stats-service/internal/snapshots"
)

// SnapshotRefresher writes today's standings snapshot on demand.
type SnapshotRefresher interface {
	Refresh(ctx context.Context) (snapshots.StandingsSnapshot, error)
}

// SeasonReloader re-fetches the season from the provider.
type SeasonReloader interface {
	Refresh(ctx context.Context) error
}

// AdminHandler exposes admin-only endpoints guarded by a bearer token.
type AdminHandler struct {
	snapshots SnapshotRefresher
	season    SeasonReloader
	token     string
	logger    *slog.Logger
}

// NewAdminHandler constructs an AdminHandler. An empty token rejects every request.
func NewAdminHandler(refresher SnapshotRefresher, reloader SeasonReloader, token string, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		snapshots: refresher,
		season:    reloader,
		token:     token,
		logger:    logger,
	}
}

// RefreshSnapshots writes today's standings snapshot.
// ?reload=true re-fetches the season first.
func (h *AdminHandler) RefreshSnapshots(w http.ResponseWriter, r *http.Request) {
	if !h.guard(w, r) {
		return
	}
	logger := loggerFromContext(r, h.logger)
	if h.snapshots == nil {
		writeError(w, r, http.StatusServiceUnavailable, "snapshot writer not configured", logger)
		return
	}
	if r.URL.Query().Get("reload") == "true" && !h.reload(w, r, logger) {
		return
	}

	snap, err := h.snapshots.Refresh(r.Context())
	switch {
	case errors.Is(err, league.ErrNoSeason):
		writeError(w, r, http.StatusServiceUnavailable, "season not loaded", logger)
		return
	case err != nil:
		logging.Error(logger, "admin snapshot write failed", err)
		writeError(w, r, http.StatusInternalServerError, "failed to write snapshot", logger)
		return
	}

	logging.Info(logger, "admin snapshot written",
		logging.FieldDate, snap.Date,
		logging.FieldCount, len(snap.Standings),
	)
	writeJSON(w, http.StatusOK, map[string]any{
		"date":   snap.Date,
		"teams":  len(snap.Standings),
		"status": "ok",
	}, logger)
}

// ReloadSeason re-fetches the season outside the poll cycle.
func (h *AdminHandler) ReloadSeason(w http.ResponseWriter, r *http.Request) {
	if !h.guard(w, r) {
		return
	}
	logger := loggerFromContext(r, h.logger)
	if !h.reload(w, r, logger) {
		return
	}
	logging.Info(logger, "admin season reloaded")
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, logger)
}

func (h *AdminHandler) reload(w http.ResponseWriter, r *http.Request, logger *slog.Logger) bool {
	if h.season == nil {
		writeError(w, r, http.StatusServiceUnavailable, "season reload not configured", logger)
		return false
	}
	if err := h.season.Refresh(r.Context()); err != nil {
		logging.Error(logger, "admin season reload failed", err)
		writeError(w, r, http.StatusBadGateway, "failed to reload season", logger)
		return false
	}
	return true
}

func (h *AdminHandler) guard(w http.ResponseWriter, r *http.Request) bool {
	if !requireMethod(w, r, http.MethodPost, h.logger) {
		return false
	}
	if !h.authorize(r) {
		logging.Warn(h.logger, "admin unauthorized",
			slog.String(logging.FieldPath, r.URL.Path),
			slog.String("client_ip", requestutil.ClientIP(r)),
		)
		writeError(w, r, http.StatusUnauthorized, "unauthorized", h.logger)
		return false
	}
	return true
}

func (h *AdminHandler) authorize(r *http.Request) bool {
	if h.token == "" {
		return false
	}
	token, ok := requestutil.BearerToken(r)
	return ok && subtle.ConstantTimeCompare([]byte(token), []byte(h.token)) == 1
}

package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/preston-bernstein/league-stats-service/internal/app/league"
	"github.com/preston-bernstein/league-stats-service/internal/logging"
	"github.com/preston-bernstein/league-stats-service/internal/snapshots"
)

// writeServiceError maps league and snapshot errors onto HTTP statuses.
func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	logger := loggerFromContext(r, h.logger)
	switch {
	case errors.Is(err, league.ErrNoSeason):
		writeError(w, r, http.StatusServiceUnavailable, "season not loaded", logger)
	case errors.Is(err, league.ErrTeamNotFound):
		writeError(w, r, http.StatusNotFound, "team not found", logger)
	case errors.Is(err, league.ErrPlayerNotFound):
		writeError(w, r, http.StatusNotFound, "player not found", logger)
	case errors.Is(err, league.ErrInvalidQuery):
		writeError(w, r, http.StatusBadRequest, err.Error(), logger)
	case errors.Is(err, snapshots.ErrSnapshotNotFound):
		writeError(w, r, http.StatusNotFound, "snapshot not found", logger)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		writeError(w, r, http.StatusServiceUnavailable, "request cancelled", logger)
	default:
		logging.Error(logger, "request failed", err)
		writeError(w, r, http.StatusInternalServerError, "internal error", logger)
	}
}

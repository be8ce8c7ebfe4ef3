package handlers

import (
	nethttp "net/http"
	"strings"

	"github.com/preston-bernstein/league-stats-service/internal/app/league"
	"github.com/preston-bernstein/league-stats-service/internal/http/requestutil"
	"github.com/preston-bernstein/league-stats-service/internal/logging"
	"github.com/preston-bernstein/league-stats-service/internal/stats"
)

// Leaders ranks players or teams by one stat.
// Query: stat (required), mode=average|total, subject=player|team, n, minGames.
func (h *Handler) Leaders(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	logger := loggerFromContext(r, h.logger)
	q := r.URL.Query()

	key, err := stats.ParseStatKey(q.Get("stat"))
	if err != nil {
		writeError(w, r, nethttp.StatusBadRequest, err.Error(), logger)
		return
	}
	mode, err := stats.ParseMode(q.Get("mode"))
	if err != nil {
		writeError(w, r, nethttp.StatusBadRequest, err.Error(), logger)
		return
	}
	subject, err := league.ParseSubject(q.Get("subject"))
	if err != nil {
		writeError(w, r, nethttp.StatusBadRequest, err.Error(), logger)
		return
	}
	n, ok := requestutil.IntParam(r, "n", h.leaderCount)
	if !ok {
		writeError(w, r, nethttp.StatusBadRequest, "n must be a non-negative integer", logger)
		return
	}

	query := league.Query{Stat: key, Mode: mode, Subject: subject, N: n}
	if strings.TrimSpace(q.Get("minGames")) != "" {
		minGames, ok := requestutil.IntParam(r, "minGames", 0)
		if !ok {
			writeError(w, r, nethttp.StatusBadRequest, "minGames must be a non-negative integer", logger)
			return
		}
		query.MinGames = &minGames
	}

	board, err := h.svc.Leaders(r.Context(), query)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	logging.Debug(logger, "served leaders", logging.FieldStat, key.String(), "mode", string(mode), logging.FieldCount, len(board.Leaders))
	writeJSON(w, nethttp.StatusOK, board, logger)
}

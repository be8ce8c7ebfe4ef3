package handlers

import (
	"log/slog"
	nethttp "net/http"
	"time"

	"github.com/preston-bernstein/league-stats-service/internal/app/league"
	"github.com/preston-bernstein/league-stats-service/internal/poller"
	"github.com/preston-bernstein/league-stats-service/internal/snapshots"
	"github.com/preston-bernstein/league-stats-service/internal/stats"
)

type nowFunc func() time.Time

// Handler wires HTTP routes to the league service.
type Handler struct {
	svc         *league.Service
	snaps       snapshots.Store
	logger      *slog.Logger
	now         nowFunc
	statusFn    func() poller.Status
	leaderCount int
	mux         *nethttp.ServeMux
}

// NewHandler constructs a Handler with defaults.
func NewHandler(svc *league.Service, snaps snapshots.Store, logger *slog.Logger, statusFn func() poller.Status) *Handler {
	h := &Handler{
		svc:         svc,
		snaps:       snaps,
		logger:      logger,
		now:         time.Now,
		statusFn:    statusFn,
		leaderCount: stats.DefaultLeaderCount,
	}
	h.mux = h.routes()
	return h
}

// WithLeaderCount sets the board size used when a request does not pass n.
func (h *Handler) WithLeaderCount(n int) *Handler {
	if n > 0 {
		h.leaderCount = n
	}
	return h
}

func (h *Handler) routes() *nethttp.ServeMux {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", h.Health)
	mux.HandleFunc("/ready", h.Ready)
	mux.HandleFunc("/season", h.Season)
	mux.HandleFunc("/standings", h.Standings)
	mux.HandleFunc("/dashboard", h.Dashboard)
	mux.HandleFunc("/leaders", h.Leaders)
	mux.HandleFunc("/teams/{team}/splits", h.TeamSplits)
	mux.HandleFunc("/teams/{team}/averages", h.TeamAverages)
	mux.HandleFunc("/teams/{team}/totals", h.TeamTotals)
	mux.HandleFunc("/players/{id}/averages", h.PlayerAverages)
	mux.HandleFunc("/players/{id}/totals", h.PlayerTotals)
	mux.HandleFunc("/", h.notFound)
	return mux
}

// ServeHTTP dispatches to the registered routes.
func (h *Handler) ServeHTTP(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.mux.ServeHTTP(w, r)
}

func (h *Handler) notFound(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
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

// Ready reports readiness for traffic (e.g., for Kubernetes probes).
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	if h.statusFn == nil {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	status := h.statusFn()
	if status.IsReady() {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := status.LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, nethttp.StatusServiceUnavailable, msg, h.logger)
}

// Season describes the loaded season.
func (h *Handler) Season(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	info, err := h.svc.Info()
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, nethttp.StatusOK, info, h.logger)
}

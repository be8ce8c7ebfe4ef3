package http

import (
	nethttp "net/http"

	"github.com/preston-bernstein/league-stats-service/internal/http/handlers"
)

// NewRouter mounts the public API and, when admin is non-nil, the admin endpoints.
func NewRouter(handler *handlers.Handler, admin *handlers.AdminHandler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	if admin != nil {
		mux.HandleFunc("/admin/snapshots/refresh", admin.RefreshSnapshots)
		mux.HandleFunc("/admin/season/reload", admin.ReloadSeason)
	}
	mux.Handle("/", handler)
	return mux
}

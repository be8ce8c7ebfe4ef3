package server

import (
	"context"

	"github.com/preston-bernstein/league-stats-service/internal/poller"
)

// Poller defines the poller behavior needed by the server and the admin reload endpoint.
type Poller interface {
	Start(ctx context.Context)
	Stop(ctx context.Context) error
	Refresh(ctx context.Context) error
	Status() poller.Status
}

// snapshotScheduler drives the daily standings snapshot.
type snapshotScheduler interface {
	Start(ctx context.Context) error
	Stop() error
}

package server

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/preston-bernstein/league-stats-service/internal/config"
	"github.com/preston-bernstein/league-stats-service/internal/providers"
	"github.com/preston-bernstein/league-stats-service/internal/teststubs"
	"github.com/preston-bernstein/league-stats-service/internal/testutil"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	return config.Config{
		Port:         "0",
		PollInterval: 5 * time.Millisecond,
		Provider:     "stub",
		Season:       config.SeasonConfig{MaxRetries: 1, RetryBackoff: time.Millisecond},
		Snapshots:    config.SnapshotConfig{Dir: t.TempDir()},
	}
}

func waitForLoad(t *testing.T, srv *Server) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if srv.poller.Status().IsReady() {
			return
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatal("timed out waiting for poller to load the season")
}

type stubScheduler struct {
	mu         sync.Mutex
	startCalls int
	stopCalls  int
	startErr   error
}

func (s *stubScheduler) Start(ctx context.Context) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	s.startCalls++
	return s.startErr
}

func (s *stubScheduler) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopCalls++
	return nil
}

func TestServerServesStatsAfterFirstPoll(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	provider := &teststubs.StubProvider{Season: testutil.FixtureSeason(), Notify: make(chan struct{})}
	srv := newServerWithProvider(testConfig(t), nil, provider)
	srv.poller.Start(ctx)
	defer func() { _ = srv.poller.Stop(ctx) }()

	select {
	case <-provider.Notify:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("timed out waiting for poller to fetch")
	}
	waitForLoad(t, srv)

	router := srv.Handler()
	for _, path := range []string{"/health", "/ready", "/standings", "/leaders?stat=points", "/teams/bos/splits", "/dashboard"} {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
		if rr.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d body=%s", path, rr.Code, rr.Body.String())
		}
	}
}

func TestServerHandlesProviderErrorGracefully(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	provider := &teststubs.StubProvider{Err: providers.Permanent("stub", errors.New("down")), Notify: make(chan struct{})}
	srv := newServerWithProvider(testConfig(t), nil, provider)
	srv.poller.Start(ctx)
	defer func() { _ = srv.poller.Stop(ctx) }()

	select {
	case <-provider.Notify:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("timed out waiting for poller to fetch")
	}

	router := srv.Handler()
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/standings", nil))
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 before the first successful load, got %d", rr.Code)
	}
}

func TestServerMountsAdminOnlyWithToken(t *testing.T) {
	cfg := testConfig(t)
	srv := newServerWithProvider(cfg, nil, &teststubs.StubProvider{})
	rr := testutil.Serve(srv.Handler(), http.MethodPost, "/admin/snapshots/refresh", nil)
	testutil.AssertStatus(t, rr, http.StatusNotFound)

	cfg.Snapshots.AdminToken = "secret"
	srv = newServerWithProvider(cfg, nil, &teststubs.StubProvider{})
	rr = testutil.Serve(srv.Handler(), http.MethodPost, "/admin/snapshots/refresh", nil)
	testutil.AssertStatus(t, rr, http.StatusUnauthorized)
}

func TestAdminRefreshWritesSnapshotThroughServer(t *testing.T) {
	cfg := testConfig(t)
	cfg.Snapshots.AdminToken = "secret"
	provider := &teststubs.StubProvider{Season: testutil.FixtureSeason()}
	srv := newServerWithProvider(cfg, nil, provider)

	req := httptest.NewRequest(http.MethodPost, "/admin/snapshots/refresh?reload=true", nil)
	req.Header.Set("Authorization", "Bearer secret")
	rr := testutil.ServeRequest(srv.Handler(), req)
	testutil.AssertStatus(t, rr, http.StatusOK)

	if provider.Calls.Load() != 1 {
		t.Fatalf("expected reload to fetch once, got %d", provider.Calls.Load())
	}
	var resp map[string]any
	testutil.DecodeJSON(t, rr, &resp)
	date, _ := resp["date"].(string)
	rr = testutil.Serve(srv.Handler(), http.MethodGet, "/standings?date="+date, nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
}

func TestSelectProvider(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name     string
		provider string
		wantType string
	}{
		{"default", "", "*fixture.Provider"},
		{"fixture", "fixture", "*fixture.Provider"},
		{"unknown", "balldontlie", "*fixture.Provider"},
		{"file", "file", "*file.Provider"},
		{"sqlite", "SQLite", "*sqlite.Provider"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Config{
				Provider: tt.provider,
				Season: config.SeasonConfig{
					File:        filepath.Join(dir, "season.json"),
					SQLitePath:  filepath.Join(dir, tt.name+".db"),
					AutoMigrate: true,
				},
			}
			p, err := selectProvider(context.Background(), cfg, nil)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			defer func() { _ = providers.Close(p) }()
			if got := typeName(p); got != tt.wantType {
				t.Fatalf("expected %s, got %s", tt.wantType, got)
			}
		})
	}
}

func TestSelectProviderSQLiteOpenError(t *testing.T) {
	cfg := config.Config{Provider: "sqlite"}
	if _, err := selectProvider(context.Background(), cfg, nil); err == nil {
		t.Fatalf("expected error for empty sqlite path")
	}
}

func TestNormalizeProviderName(t *testing.T) {
	if got := normalizeProviderName(" SQLite ", nil); got != "sqlite" {
		t.Fatalf("expected sqlite, got %s", got)
	}
	if got := normalizeProviderName("", &teststubs.StubProvider{}); got != "*teststubs.stubprovider" {
		t.Fatalf("unexpected derived name %s", got)
	}
	if got := normalizeProviderName("", nil); got != "provider" {
		t.Fatalf("expected fallback name, got %s", got)
	}
}

func TestNewConstructsServer(t *testing.T) {
	cfg := testConfig(t)
	cfg.Provider = "fixture"
	srv, err := New(context.Background(), cfg, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if srv == nil || srv.Handler() == nil || srv.scheduler == nil {
		t.Fatalf("expected server with handler and scheduler")
	}
}

func TestNewFailsWhenProviderCannotOpen(t *testing.T) {
	cfg := testConfig(t)
	cfg.Provider = "sqlite"
	if _, err := New(context.Background(), cfg, nil); err == nil {
		t.Fatalf("expected error when sqlite path is empty")
	}
}

func TestGracefulShutdownCallsStopAndShutdown(t *testing.T) {
	p := &testutil.StubPoller{}
	httpSrv := &testutil.StubHTTPServer{}
	sched := &stubScheduler{}

	srv := newServerWithDeps(config.Config{}, nil, nil, httpSrv, p)
	srv.scheduler = sched
	srv.gracefulShutdown()

	if p.StopCalls != 1 {
		t.Fatalf("expected poller Stop to be called once, got %d", p.StopCalls)
	}
	if httpSrv.ShutdownCalls != 1 {
		t.Fatalf("expected server Shutdown to be called once, got %d", httpSrv.ShutdownCalls)
	}
	if sched.stopCalls != 1 {
		t.Fatalf("expected scheduler Stop to be called once, got %d", sched.stopCalls)
	}
}

func TestGracefulShutdownTimesOutLongRunningShutdown(t *testing.T) {
	p := &testutil.StubPoller{}
	blocking := &testutil.BlockingHTTPServer{
		AddrVal:    ":0",
		HandlerVal: http.NewServeMux(),
		Unblock:    make(chan struct{}),
	}

	original := shutdownTimeout
	shutdownTimeout = 5 * time.Millisecond
	defer func() { shutdownTimeout = original }()

	srv := newServerWithDeps(config.Config{}, nil, nil, blocking, p)

	start := time.Now()
	srv.gracefulShutdown()
	elapsed := time.Since(start)

	if blocking.ShutdownCalls != 1 {
		t.Fatalf("expected server Shutdown to be called once, got %d", blocking.ShutdownCalls)
	}
	if p.StopCalls != 1 {
		t.Fatalf("expected poller Stop to be called once, got %d", p.StopCalls)
	}
	if elapsed > 200*time.Millisecond {
		t.Fatalf("shutdown took too long: %s", elapsed)
	}
}

func TestGracefulShutdownContinuesWhenPollerStopErrors(t *testing.T) {
	p := &testutil.StubPoller{Err: errors.New("stop failure")}
	httpSrv := &testutil.StubHTTPServer{}

	srv := newServerWithDeps(config.Config{}, nil, nil, httpSrv, p)
	srv.gracefulShutdown()

	if p.StopCalls != 1 {
		t.Fatalf("expected poller Stop to be called once, got %d", p.StopCalls)
	}
	if httpSrv.ShutdownCalls != 1 {
		t.Fatalf("expected server Shutdown to be called once, got %d", httpSrv.ShutdownCalls)
	}
}

func TestServerStartHandlesListenErrorAndStops(t *testing.T) {
	srv := newServerWithDeps(config.Config{}, nil, nil, &testutil.ErrHTTPServer{}, &testutil.StubPoller{})

	stopCalled := make(chan struct{})
	srv.startServer(func() { close(stopCalled) })

	select {
	case <-stopCalled:
	case <-time.After(200 * time.Millisecond):
		t.Fatal("expected stop to be called on listen failure")
	}
}

func TestRunCancelsAndStopsComponents(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	plr := &testutil.StubPoller{}
	httpSrv := &testutil.CloseableHTTPServer{}
	sched := &stubScheduler{startErr: errors.New("bad schedule")}

	srv := newServerWithDeps(config.Config{}, nil, nil, httpSrv, plr)
	srv.scheduler = sched

	done := make(chan struct{})
	go func() {
		srv.Run(ctx, cancel)
		close(done)
	}()

	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("run did not return after cancel")
	}

	if plr.StartCalls != 1 || plr.StopCalls != 1 {
		t.Fatalf("expected poller start/stop once, got %d/%d", plr.StartCalls, plr.StopCalls)
	}
	if httpSrv.ShutdownCalls != 1 {
		t.Fatalf("expected server Shutdown called once, got %d", httpSrv.ShutdownCalls)
	}
	if sched.startCalls != 1 || sched.stopCalls != 1 {
		t.Fatalf("expected scheduler start/stop once, got %d/%d", sched.startCalls, sched.stopCalls)
	}
}

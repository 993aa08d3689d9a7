// cmd/web/main.go
//
// Beacon – HTTP entry point.
//
// Startup sequence
// ----------------
//
//  1. Install a bootstrap console logger so config-load issues surface.
//
//  2. Load the layered configuration (.env → conf/global.yaml → legacy
//     bare vars → BEACON_ overrides) and resolve the environment profile.
//
//  3. Start the daily rotating file logger (tees to console in a TTY);
//     debug profiles log at DEBUG.
//
//  4. Build the root router: requestinfo enrichment → metrics → security
//     headers → panic recovery → the five public routes, plus the
//     Prometheus /metrics endpoint on the same listener.
//
//  5. Serve on all interfaces at the configured port; SIGINT/SIGTERM
//     triggers a bounded graceful drain.
//
// Large comment blocks are framed by blank “//” lines; inline comments use
// a single “//”.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/yanizio/beacon/internal/config"
	"github.com/yanizio/beacon/internal/handler"
	"github.com/yanizio/beacon/internal/logger"
	"github.com/yanizio/beacon/internal/middleware"
	"github.com/yanizio/beacon/internal/requestinfo"
	"github.com/yanizio/beacon/internal/server"

	_ "github.com/yanizio/beacon/internal/metrics" // register collectors
)

// runningInTTY returns true when stdout is a character device.
func runningInTTY() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

// bootstrapLogger installs a console logger for the window before the
// file logger is up, so config.Load's spans are not swallowed.
func bootstrapLogger() {
	boot, err := zap.NewDevelopment()
	if err == nil {
		zap.ReplaceGlobals(boot)
	}
}

func main() {
	bootstrapLogger()

	//
	// ── 1.  Configuration ───────────────────────────────────────────────
	//
	cfg, err := config.Load()
	if err != nil {
		zap.S().Fatalw("load config", "err", err)
	}

	//
	// ── 2.  File logger (replaces the bootstrap console logger) ────────
	//
	rootDir, _ := os.Getwd()
	log, err := logger.New(rootDir, cfg.Profile.Debug, runningInTTY())
	if err != nil {
		zap.S().Fatalw("start logger", "err", err)
	}

	//
	// ── 3.  Router: enrichment → metrics → security → recovery ────────
	//
	r := chi.NewRouter()
	r.Use(requestinfo.Enrich)
	r.Use(middleware.Metrics)
	r.Use(middleware.Security)
	r.Use(middleware.Recover)

	handler.New(cfg).Register(r)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	//
	// ── 4.  Serve with graceful drain on SIGINT/SIGTERM ────────────────
	//
	ctx, stop := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg.ListenAddr(), r)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Infow("listening",
			"addr", srv.Addr,
			"env", cfg.Profile.Name,
			"debug", cfg.Profile.Debug,
		)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Infow("shutdown signal received")
		return server.Shutdown(srv)
	})

	if err := g.Wait(); err != nil {
		log.Fatalw("server exit", "err", err)
	}
	log.Infow("server stopped")
}

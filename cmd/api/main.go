package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/riskibarqy/league-tracker/internal/app"
	"github.com/riskibarqy/league-tracker/internal/config"
	"github.com/riskibarqy/league-tracker/internal/observability"
	"github.com/riskibarqy/league-tracker/internal/platform/logging"
	"github.com/sourcegraph/conc"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := logging.New(cfg.AppEnv, cfg.LogLevel)
	defer func() { _ = logger.Sync() }()

	logger, shutdownUptrace, err := observability.InitUptrace(cfg, logger)
	if err != nil {
		logger.Error("init uptrace", "error", err)
		return 1
	}
	logger, shutdownBetterStack, err := observability.InitBetterStackLogger(cfg, logger)
	if err != nil {
		logger.Error("init betterstack", "error", err)
		flushTelemetry(cfg, logger, shutdownUptrace, nil)
		return 1
	}
	logging.SetDefault(logger)

	stopPyroscope := func() error { return nil }
	// Runs on every return below, startup failures included.
	defer func() {
		if err := stopPyroscope(); err != nil {
			logger.Error("stop pyroscope", "error", err)
		}
		flushTelemetry(cfg, logger, shutdownUptrace, shutdownBetterStack)
	}()

	stopPyroscope, err = observability.InitPyroscope(cfg, logger)
	if err != nil {
		stopPyroscope = func() error { return nil }
		logger.Error("init pyroscope", "error", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	application, err := app.New(ctx, cfg, logger)
	if err != nil {
		logger.Error("build app", "error", err)
		return 1
	}

	pprofSrv := observability.NewPprofServer(cfg)

	var wg conc.WaitGroup
	wg.Go(func() {
		logger.Info("http server starting", "addr", cfg.HTTPAddr, "db_driver", cfg.DBDriver)
		if err := application.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server failed", "error", err)
			stop()
		}
	})
	if pprofSrv != nil {
		wg.Go(func() { observability.ServePprof(pprofSrv, logger) })
	}

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	exitCode := 0
	if err := application.Server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
		exitCode = 1
	}
	if pprofSrv != nil {
		if err := pprofSrv.Shutdown(shutdownCtx); err != nil {
			logger.Error("pprof shutdown failed", "error", err)
		}
	}
	wg.Wait()

	if err := application.Close(); err != nil {
		logger.Error("close store", "error", err)
		exitCode = 1
	}
	logger.Info("http server stopped")

	return exitCode
}

// flushTelemetry stops Uptrace before draining Better Stack. Either may be nil.
func flushTelemetry(cfg config.Config, logger *logging.Logger, shutdownUptrace, shutdownBetterStack func(context.Context) error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if shutdownUptrace != nil {
		if err := shutdownUptrace(ctx); err != nil {
			logger.Error("shutdown uptrace", "error", err)
		}
	}
	if shutdownBetterStack != nil {
		if err := shutdownBetterStack(ctx); err != nil {
			logger.Error("shutdown betterstack", "error", err)
		}
	}
}

package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"TradingHours/pkg/config"
	xhttp "TradingHours/pkg/http"
	applogger "TradingHours/pkg/logger"
)

// App runs the market status HTTP API until interrupted.
type App struct {
	cfg        *config.Config
	log        *applogger.Logger
	httpServer *xhttp.Server
}

// New creates the App and its HTTP server around handler.
func New(cfg *config.Config, log *applogger.Logger, handler xhttp.Handler) *App {
	srv := xhttp.NewServer(handler,
		xhttp.WithPort(cfg.Server.Port),
		xhttp.WithTimeouts(cfg.Server.ReadTimeout, cfg.Server.WriteTimeout, cfg.Server.ShutdownTimeout),
		xhttp.WithCORSOrigins(cfg.Server.CORSOrigins),
		xhttp.WithMetrics(cfg.Metrics.Enabled, cfg.Metrics.Path),
		xhttp.WithLogger(log),
	)
	return &App{cfg: cfg, log: log, httpServer: srv}
}

// Server exposes the HTTP server, mainly for tests.
func (a *App) Server() *xhttp.Server { return a.httpServer }

// Run starts the HTTP server and blocks until SIGINT/SIGTERM, ctx cancellation,
// or a listen failure.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	a.log.Info("starting",
		applogger.String("env", a.cfg.Environment),
		applogger.Int("port", a.cfg.Server.Port),
		applogger.Strings("exchanges", a.cfg.Report.Exchanges),
	)
	errCh := a.httpServer.Start()

	select {
	case err, ok := <-errCh:
		if ok && err != nil {
			a.log.Error("http server start error", applogger.Error(err))
			return err
		}
	case <-ctx.Done():
		a.log.Info("shutdown signal received")
	}
	return a.shutdown()
}

func (a *App) shutdown() error {
	if err := a.httpServer.Stop(context.Background()); err != nil {
		a.log.Error("http shutdown error", applogger.Error(err))
		return err
	}
	a.log.Info("shutdown complete")
	return nil
}

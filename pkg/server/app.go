package server

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"FinPlan/internal/domain/repository"
	pkgcache "FinPlan/pkg/cache"
	"FinPlan/pkg/config"
	xhttp "FinPlan/pkg/http"
	applogger "FinPlan/pkg/logger"
)

// App encapsulates the entire application lifecycle.
type App struct {
	cfg        *config.Config
	log        *applogger.Logger
	httpServer *xhttp.Server
	store      pkgcache.Store
	publisher  repository.SnapshotPublisher
}

// New creates a new App instance with all dependencies.
func New(
	cfg *config.Config,
	l *applogger.Logger,
	httpServer *xhttp.Server,
	store pkgcache.Store,
	publisher repository.SnapshotPublisher,
) *App {
	if l == nil {
		l = applogger.NewNop()
	}
	return &App{
		cfg:        cfg,
		log:        l.Component("app"),
		httpServer: httpServer,
		store:      store,
		publisher:  publisher,
	}
}

// Run starts the application and blocks until interrupted.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return a.RunContext(ctx)
}

// RunContext starts the HTTP server and shuts everything down once ctx is done.
func (a *App) RunContext(ctx context.Context) error {
	if err := a.httpServer.Start(); err != nil {
		a.log.Error("http server start error", applogger.Error(err))
		return err
	}
	a.log.Info("finplan started",
		applogger.Int("port", a.cfg.Server.Port),
		applogger.String("cache", a.cfg.Cache.Backend),
		applogger.String("quotes", a.cfg.Quotes.Provider),
		applogger.Bool("kafka", a.publisher != nil),
	)

	<-ctx.Done()
	a.log.Info("shutdown signal received")
	return a.shutdown()
}

// shutdown gracefully stops all services.
func (a *App) shutdown() error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()

	var errs []error
	if err := a.httpServer.Stop(shutdownCtx); err != nil {
		a.log.Error("http shutdown error", applogger.Error(err))
		errs = append(errs, err)
	}

	if a.publisher != nil {
		if err := a.publisher.Close(); err != nil {
			a.log.Warn("snapshot publisher close error", applogger.Error(err))
			errs = append(errs, err)
		}
	}

	if a.store != nil {
		if err := a.store.Close(); err != nil {
			a.log.Warn("cache store close error", applogger.Error(err))
			errs = append(errs, err)
		}
	}

	a.log.Info("shutdown complete")
	return errors.Join(errs...)
}

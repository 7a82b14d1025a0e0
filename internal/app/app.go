// Package app wires the server: configuration, logging, tracing, storage,
// services and the HTTP transport.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/arkhamworks/investigator/internal/api"
	apihttp "github.com/arkhamworks/investigator/internal/api/http"
	"github.com/arkhamworks/investigator/internal/credential"
	"github.com/arkhamworks/investigator/internal/platform/config"
	"github.com/arkhamworks/investigator/internal/platform/log"
	"github.com/arkhamworks/investigator/internal/platform/otel"
	"github.com/arkhamworks/investigator/internal/rules"
	bboltstore "github.com/arkhamworks/investigator/internal/storage/bbolt"
	"github.com/arkhamworks/investigator/internal/systems/coc6"
)

const serviceName = "investigator"

// App owns the wired server and its lifecycle.
type App struct {
	cfg          config.Config
	logger       log.Logger
	store        *bboltstore.Store
	echo         *echo.Echo
	otelShutdown func(context.Context) error
}

// New loads configuration and wires every component of the server.
func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger := log.New(cfg.Env)

	otelShutdown, err := otel.Setup(ctx, serviceName)
	if err != nil {
		return nil, fmt.Errorf("setup tracing: %w", err)
	}

	store, err := bboltstore.Open(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}

	ruleset, err := coc6.NewRuleSet()
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("load coc6 rule set: %w", err)
	}
	registry := rules.NewRegistry(ruleset)
	labels := map[string]api.Labeler{coc6.System: coc6.LabelFor}

	service := api.NewService(store, credential.NewGate(store), registry, labels, cfg.DefaultSystem)

	e := echo.New()
	apihttp.NewRouter(apihttp.NewHandler(service), logger).Setup(e)

	logger.Info().
		Str("env", cfg.Env).
		Str("db", cfg.DBPath).
		Str("default_system", cfg.DefaultSystem).
		Msg("server wired")

	return &App{
		cfg:          cfg,
		logger:       logger,
		store:        store,
		echo:         e,
		otelShutdown: otelShutdown,
	}, nil
}

// Run serves HTTP until the context is cancelled, then shuts down
// gracefully.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = a.echo.Shutdown(shutdownCtx)
	}()
	go func() {
		a.logger.Info().Str("addr", a.cfg.Addr).Msg("listening")
		errCh <- a.echo.Start(a.cfg.Addr)
	}()
	select {
	case <-ctx.Done():
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// Close releases the storage and tracing resources.
func (a *App) Close() {
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			a.logger.Error().Err(err).Msg("close storage")
		}
	}
	if a.otelShutdown != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = a.otelShutdown(shutdownCtx)
	}
}

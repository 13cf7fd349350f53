package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-portal-client/internal/adapter"
	"github.com/MKhiriev/go-portal-client/internal/captcha"
	"github.com/MKhiriev/go-portal-client/internal/config"
	"github.com/MKhiriev/go-portal-client/internal/logger"
	"github.com/MKhiriev/go-portal-client/internal/metrics"
	"github.com/MKhiriev/go-portal-client/internal/service"
	"github.com/MKhiriev/go-portal-client/internal/store"
	"github.com/MKhiriev/go-portal-client/internal/tui"
	"github.com/MKhiriev/go-portal-client/internal/workers"
	"github.com/MKhiriev/go-portal-client/models"
)

type App struct {
	cfg      *config.ClientConfig
	storages *store.ClientStorages
	metrics  *metrics.ClientMetrics
	services *service.ClientServices
	ui       *tui.TUI
	workers  *workers.Workers
	logger   *logger.Logger
}

var _ Client = (*App)(nil)

// NewApp builds every component from cfg. On error nothing is left open.
func NewApp(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	ctx = log.WithContext(ctx)

	storages, err := store.NewClientStorages(ctx, cfg.Storage, cfg.App.Origin, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	app, err := newApp(cfg, storages, buildInfo, log)
	if err != nil {
		_ = storages.Close()
		return nil, err
	}
	return app, nil
}

func newApp(cfg *config.ClientConfig, storages *store.ClientStorages, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	m := metrics.New()

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, storages.Credentials, m, log)
	if err != nil {
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	minter, err := captcha.New(cfg.Captcha, cfg.Adapter.RequestTimeout, log)
	if err != nil {
		return nil, fmt.Errorf("create captcha minter: %w", err)
	}

	services := service.NewClientServices(storages.Credentials, serverAdapter, minter, m, cfg.Workers.RefreshInterval, log)

	ui, err := tui.New(services, buildInfo, log)
	if err != nil {
		return nil, fmt.Errorf("create ui: %w", err)
	}

	// the transport needs to know about the login screen and has to tell
	// the session when it drops a rejected credential
	serverAdapter.SetLocation(ui.Location)
	serverAdapter.OnCredentialRejected(services.Sessions.Invalidate)

	log.Info().Str("origin", cfg.App.Origin).Msg("client app created")

	return &App{
		cfg:      cfg,
		storages: storages,
		metrics:  m,
		services: services,
		ui:       ui,
		workers:  workers.New(services.RefreshJob),
		logger:   log,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	ctx = a.withLogger(ctx)

	a.workers.Start(ctx)
	defer a.workers.Stop()

	if err := a.ui.Run(ctx); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}

	a.logger.Info().Str("func", "App.Run").Msg("client stopped")
	return nil
}

// withLogger attaches the app logger to ctx. The stores log through
// logger.FromContext, so every context handed to the UI and the workers
// has to carry it.
func (a *App) withLogger(ctx context.Context) context.Context {
	return a.logger.WithContext(ctx)
}

// Close flushes metrics and closes the local storage.
func (a *App) Close() error {
	var errs []error
	if err := a.metrics.WriteTextfile(a.cfg.Metrics.TextfilePath); err != nil {
		errs = append(errs, err)
	}
	if err := a.storages.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close local storage: %w", err))
	}
	return errors.Join(errs...)
}

package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-borrower-search/internal/adapter"
	"github.com/MKhiriev/go-borrower-search/internal/config"
	"github.com/MKhiriev/go-borrower-search/internal/logger"
	"github.com/MKhiriev/go-borrower-search/internal/service"
	"github.com/MKhiriev/go-borrower-search/internal/tui"
	"github.com/MKhiriev/go-borrower-search/models"
)

type App struct {
	services *service.ClientServices
	ui       UI

	logger *logger.Logger
}

// NewApp builds the search adapter, one search service per form variant and
// the terminal UI.
func NewApp(cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	searchAdapter, err := adapter.NewHTTPSearchAdapter(cfg.Adapter, log)
	if err != nil {
		return nil, fmt.Errorf("create search adapter: %w", err)
	}

	services := service.NewClientServices(searchAdapter, cfg.Adapter, log)

	app := &App{
		services: services,
		logger:   log,
	}

	ui, err := tui.New(services, buildInfo, app.SwitchHandler, log)
	if err != nil {
		return nil, fmt.Errorf("create ui: %w", err)
	}
	app.ui = ui

	return app, nil
}

func (a *App) Run(ctx context.Context) error {
	a.logger.Info().Int("variants", len(a.services.Variants)).Msg("starting borrower search client")

	if err := a.ui.Run(ctx); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

// SwitchHandler receives the forms' switch requests. The value is false when
// a form asks to hide itself in favour of the other variant.
func (a *App) SwitchHandler(show bool) {
	a.logger.Debug().Bool("show", show).Msg("search form switch requested")
}

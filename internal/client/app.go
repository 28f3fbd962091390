package client

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-notes/internal/logger"
)

var errNoUI = errors.New("ui is required")

// App runs the terminal client.
type App struct {
	ui     UI
	logger *logger.Logger
}

// NewApp creates a client application around ui.
func NewApp(ui UI, log *logger.Logger) (*App, error) {
	if ui == nil {
		return nil, errNoUI
	}
	return &App{ui: ui, logger: log}, nil
}

// Run blocks until the UI exits or a termination signal arrives.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	a.logger.Info().Str("func", "*App.run").Msg("client started")
	defer a.logger.Info().Str("func", "*App.run").Msg("client stopped")

	if err := a.ui.Run(ctx); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

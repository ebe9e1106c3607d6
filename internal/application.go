package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/pixelboard/tictactoe-tui/internal/config"
	"github.com/pixelboard/tictactoe-tui/internal/ui"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	screen, err := ui.NewScreen()
	if err != nil {
		return fmt.Errorf("could not initialize terminal screen: %w", err)
	}
	defer screen.Close()

	renderer := ui.NewRenderer(screen, conf.ASCIIOnly)
	app := ui.NewApp(logger, screen, renderer)

	log.Info("Starting game", "ascii-only", conf.ASCIIOnly)
	if err = app.Run(ctx); err != nil {
		return fmt.Errorf("game loop error: %w", err)
	}

	log.Info("Game exited")

	return nil
}

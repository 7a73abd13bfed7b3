package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/preston-bernstein/courtside-sim/internal/config"
	"github.com/preston-bernstein/courtside-sim/internal/logging"
	"github.com/preston-bernstein/courtside-sim/internal/server"
)

const appVersion = "dev"

func main() {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}

	cfg := config.Load()
	logger := newLogger(cfg, os.Stdout)
	logger.Info("starting courtside-sim",
		logging.FieldSeason, cfg.SeasonID,
		logging.FieldMode, cfg.Sim.DefaultMode,
		logging.FieldDriver, cfg.Persist.Driver,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg, logger)
	srv.Run(ctx, stop)
}

func newLogger(cfg config.Config, out io.Writer) *slog.Logger {
	return logging.NewLogger(logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.Metrics.ServiceName,
		Version: appVersion,
		Output:  out,
	})
}

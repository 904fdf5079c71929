package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/evkarev/cozydiary/internal/buildinfo"
	"github.com/evkarev/cozydiary/internal/cli"
	"github.com/evkarev/cozydiary/internal/config"
	"github.com/evkarev/cozydiary/internal/logging"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)
}

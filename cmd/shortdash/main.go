package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/avydrenko/shortdash/internal/api"
	"github.com/avydrenko/shortdash/internal/config"
	"github.com/avydrenko/shortdash/internal/logger"
	"github.com/avydrenko/shortdash/internal/tui"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := run(ctx); err != nil {
		panic(err)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		return err
	}

	if err := logger.Initialize(cfg.LogLevel); err != nil {
		return err
	}
	defer logger.Log.Sync()

	client, err := api.New(cfg.Client.BaseURL,
		api.WithTimeout(cfg.Client.Timeout),
		api.WithLogger(logger.Log),
	)
	if err != nil {
		return err
	}

	return tui.New(client, os.Stdin, os.Stdout, logger.Log).Run(ctx)
}

// Command shortdash-stub runs the local fake backend so the dashboard client
// can be developed and demoed without the real shortening service.
package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"

	"github.com/avydrenko/shortdash/internal/config"
	"github.com/avydrenko/shortdash/internal/stubserver"
	"github.com/go-chi/httplog/v2"
	"golang.org/x/sync/errgroup"
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

	r := stubserver.NewRouter(
		httplog.NewLogger("shortdash-stub"),
		cfg.StubServer.SecretKey,
		cfg.StubServer.TokenExp,
	)

	server := &http.Server{
		Addr:         cfg.StubServer.Addr(),
		Handler:      r,
		ReadTimeout:  cfg.StubServer.ReadTimeout,
		WriteTimeout: cfg.StubServer.WriteTimeout,
		IdleTimeout:  cfg.StubServer.IdleTimeout,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		return server.Shutdown(context.Background())
	})

	return g.Wait()
}

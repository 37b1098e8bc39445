package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"golang.org/x/exp/slog"

	"github.com/thihaaungym/vaultboard/internal/app/server/api"
	"github.com/thihaaungym/vaultboard/internal/config"
	"github.com/thihaaungym/vaultboard/internal/kv"
	"github.com/thihaaungym/vaultboard/internal/kv/postgres"
	"github.com/thihaaungym/vaultboard/internal/kv/sqlite"
	"github.com/thihaaungym/vaultboard/internal/logger"
)

const shutdownTimeout = 10 * time.Second

type backend interface {
	kv.Store
	Close() error
}

func main() {
	cfg := config.MustLoad()
	log := logger.New(cfg.Env)

	if err := run(cfg, log); err != nil {
		log.Error("server exited", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := openBackend(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	if cfg.Auth.AdminPassword == "" {
		log.Warn("no admin password configured, every login will fail until ADMIN_PASSWORD is set")
	}

	srv := &http.Server{
		Addr:              cfg.Server.RunAddress,
		Handler:           api.New(store, cfg, log),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", slog.String("addr", cfg.Server.RunAddress))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// openBackend picks the key-value backend from the DSN: postgres for
// postgres URIs, embedded sqlite for everything else.
func openBackend(ctx context.Context, cfg *config.Config) (backend, error) {
	uri := cfg.DB.DatabaseURI
	if strings.HasPrefix(uri, "postgres://") || strings.HasPrefix(uri, "postgresql://") {
		return postgres.New(ctx, cfg)
	}
	return sqlite.New(strings.TrimPrefix(uri, "sqlite://"))
}

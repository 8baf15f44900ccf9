// Command server runs the entity validation API.
//
// The config profile comes from --profile or, failing that, APP_PROFILE.
// SIGINT or SIGTERM stops accepting connections, drains in-flight requests
// and flushes telemetry before exit.
package main

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"
	flag "github.com/spf13/pflag"

	adapthttp "github.com/jsamuelsen11/validated-entities/internal/adapters/http"
	"github.com/jsamuelsen11/validated-entities/internal/domain/entity"
	"github.com/jsamuelsen11/validated-entities/internal/platform/config"
	"github.com/jsamuelsen11/validated-entities/internal/platform/logging"
	"github.com/jsamuelsen11/validated-entities/internal/platform/telemetry"
)

const flushTimeout = 5 * time.Second

var errNoProfile = errors.New("no config profile: pass --profile or set APP_PROFILE (local, dev, prod)")

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "server:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	profile := fs.String("profile", os.Getenv("APP_PROFILE"), "config profile to load")
	configDir := fs.String("config-dir", cmp.Or(os.Getenv("APP_CONFIG_DIR"), "configs"), "directory holding base.yaml and profiles")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *profile == "" {
		return errNoProfile
	}

	cfg, err := config.Load(*profile, config.WithConfigDir(*configDir))
	if err != nil {
		return err
	}
	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tel, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("telemetry: %w", err)
	}
	defer flush(ctx, tel, logger)

	injector := newInjector(cfg, logger, tel.Metrics)
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("wiring: %w", err)
	}
	types := do.MustInvoke[*entity.Registry](injector).Types()
	logger.Info("starting",
		slog.String("profile", *profile),
		slog.String("addr", server.Addr()),
		slog.Int("entity_types", len(types)),
	)

	if err := server.Run(ctx); err != nil {
		return err
	}
	logger.Info("stopped")
	return nil
}

// flush exports buffered spans and metrics. It runs after ctx is canceled,
// so it gets its own deadline.
func flush(ctx context.Context, tel *telemetry.Providers, logger *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), flushTimeout)
	defer cancel()
	if err := tel.Shutdown(ctx); err != nil {
		logger.Error("flushing telemetry", slog.Any("error", err))
	}
}

// Package main runs the User walkthrough: one valid and one invalid user,
// built either in process or through a running validation service.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	flag "github.com/spf13/pflag"

	"github.com/jsamuelsen11/validated-entities/internal/adapters/clients/entityapi"
	"github.com/jsamuelsen11/validated-entities/internal/domain"
	"github.com/jsamuelsen11/validated-entities/internal/domain/user"
	"github.com/jsamuelsen11/validated-entities/internal/platform/config"
	"github.com/jsamuelsen11/validated-entities/internal/platform/httpclient"
	"github.com/jsamuelsen11/validated-entities/internal/platform/logging"
	"github.com/jsamuelsen11/validated-entities/internal/ports"
)

// sample is one row of the walkthrough.
type sample struct {
	email string
	phone string
	age   int
	name  string
}

func (s sample) values() map[string]any {
	return map[string]any{
		user.FieldEmail: s.email,
		user.FieldPhone: s.phone,
		user.FieldAge:   s.age,
		user.FieldName:  s.name,
	}
}

var samples = []sample{
	{email: "test@example.com", phone: "+7-123-456-78-90", age: 25, name: "Ivan"},
	{email: "invalid-email", phone: "123", age: -5, name: "Petr"},
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("demo", flag.ContinueOnError)
	profile := fs.String("profile", "local", "config profile used for logging and the remote client")
	configDir := fs.String("config-dir", "configs", "directory holding base.yaml and profile files")
	remote := fs.Bool("remote", false, "construct users through the service at client.base_url")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*profile, config.WithConfigDir(*configDir))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if *remote {
		client := entityapi.NewClient(httpclient.New(&cfg.Client, "entity-api", nil, logger), logger)
		return runRemote(ctx, client, out, logger)
	}
	runLocal(out, logger)
	return nil
}

// runLocal builds each sample with user.New.
func runLocal(out io.Writer, logger *slog.Logger) {
	for _, s := range samples {
		u, err := user.New(s.email, s.phone, s.age, s.name)
		if err != nil {
			report(out, logger, s.name, err)
			continue
		}
		fmt.Fprintln(out, u.String())
	}
}

// runRemote sends each sample to the service. Transport failures abort the
// run; rejections are reported like local ones.
func runRemote(ctx context.Context, client ports.EntityClient, out io.Writer, logger *slog.Logger) error {
	for _, s := range samples {
		e, err := client.Construct(ctx, user.Type.Name(), s.values())
		if err != nil {
			if isRejection(err) {
				report(out, logger, s.name, err)
				continue
			}
			return fmt.Errorf("constructing %s remotely: %w", s.name, err)
		}
		fmt.Fprintln(out, e.Display)
	}
	return nil
}

func report(out io.Writer, logger *slog.Logger, name string, err error) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		logger.Warn("user rejected", slog.String("name", name), slog.Any("rejected", verr))
	} else {
		logger.Warn("user rejected", slog.String("name", name), slog.String("error", err.Error()))
	}
	fmt.Fprintf(out, "Validation error: %v\n", err)
}

func isRejection(err error) bool {
	return errors.Is(err, domain.ErrValidation)
}

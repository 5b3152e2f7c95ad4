// Package cli implements the servicelog command-line tool. It opens the same
// storage slots as the API server, so records can be inspected, exported and
// cleared without running the server.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/pkordes/servicelog/internal/bootstrap"
	"github.com/pkordes/servicelog/internal/config"
	"github.com/pkordes/servicelog/internal/domain"
	"github.com/pkordes/servicelog/internal/store"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "text" | "json" | "yaml" | "csv"
	EnvFile string
	Driver  string // overrides STORAGE_DRIVER when set
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json", "yaml", "csv"}

// Opener builds the stores a command works on. Tests substitute one backed
// by a temporary directory.
type Opener func(ctx context.Context, opts *RootOptions, stderr io.Writer) (*bootstrap.App, error)

// NewRootCommand creates the root command wired to the configured storage.
func NewRootCommand() *cobra.Command {
	return NewRootCommandWith(OpenFromEnv)
}

// NewRootCommandWith creates the root command using open to reach the stores.
func NewRootCommandWith(open Opener) *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "servicelog",
		Short: "Inspect and manage vehicle service-log records",
		Long: `servicelog works directly on the drafts and serviceLogs storage slots
used by the API server: list, export, submit and clear records.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (text|json|yaml|csv)")
	cmd.PersistentFlags().StringVar(&opts.EnvFile, "env-file", ".env", "environment file to load before reading configuration")
	cmd.PersistentFlags().StringVar(&opts.Driver, "driver", "", "storage driver, overrides STORAGE_DRIVER")

	cmd.AddCommand(NewListCommand(opts, open))
	cmd.AddCommand(NewExportCommand(opts, open))
	cmd.AddCommand(NewSubmitCommand(opts, open))
	cmd.AddCommand(NewClearCommand(opts, open))

	return cmd
}

// OpenFromEnv loads configuration the way the API server does and opens the
// configured backend. Diagnostics are logged to stderr.
func OpenFromEnv(ctx context.Context, opts *RootOptions, stderr io.Writer) (*bootstrap.App, error) {
	if err := config.LoadEnvFile(opts.EnvFile); err != nil {
		return nil, WrapExitError(ExitCommandError, "load env file", err)
	}
	if opts.Driver != "" {
		// Set before Load so the driver's connection variables are still checked.
		if err := os.Setenv("STORAGE_DRIVER", opts.Driver); err != nil {
			return nil, WrapExitError(ExitCommandError, "set driver", err)
		}
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "configuration error", err)
	}

	level := slog.LevelWarn
	if opts.Verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	app, err := bootstrap.Open(ctx, cfg, log)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "open storage", err)
	}
	return app, nil
}

// recordStore is what every command needs from a store.
type recordStore interface {
	List() []domain.Record
	ClearAll(ctx context.Context) error
}

// pickStore maps a slot name argument to its store.
func pickStore(app *bootstrap.App, name string) (recordStore, error) {
	switch name {
	case domain.DraftsSlot:
		return app.Drafts, nil
	case domain.ServiceLogsSlot:
		return app.ServiceLogs, nil
	}
	return nil, NewExitError(ExitCommandError,
		fmt.Sprintf("unknown store %q: must be %s or %s", name, domain.DraftsSlot, domain.ServiceLogsSlot))
}

// storeArgs completes and validates the single <store> argument.
var storeArgs = cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs)

var storeNames = []string{domain.DraftsSlot, domain.ServiceLogsSlot}

var (
	_ recordStore = (*store.DraftStore)(nil)
	_ recordStore = (*store.ServiceLogStore)(nil)
)

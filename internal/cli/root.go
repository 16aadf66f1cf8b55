// Package cli is the lld command line.
package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"lld/internal/app"
	"lld/internal/config"
	"lld/internal/di"
)

// Injector builds the application from a configuration.
type Injector func(cfg *config.Config) (*app.App, func(), error)

type flags struct {
	store       string
	storePath   string
	fixtures    string
	logLevel    string
	concurrency int
	cron        string
}

// Execute runs the command line and returns the process exit code.
func Execute(ctx context.Context) int {
	cmd := NewRootCmd(di.InitializeApp, config.Load)
	if err := cmd.ExecuteContext(ctx); err != nil {
		return 1
	}
	return 0
}

// NewRootCmd builds the command tree.
func NewRootCmd(inject Injector, load func() (*config.Config, error)) *cobra.Command {
	f := &flags{}

	cmd := &cobra.Command{
		Use:          "lld",
		Short:        "Run low-level design pattern lessons",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, f, inject, load, func(a *app.App) error {
				return a.Run(cmd.Context())
			})
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&f.store, "store", "", "document store: memory, file or sqlite (overrides LLD_STORE)")
	pf.StringVar(&f.storePath, "store-path", "", "directory or database file for the document store")
	pf.StringVar(&f.fixtures, "fixtures", "", "YAML fixtures for the ATM and file system lessons")
	pf.StringVar(&f.logLevel, "log-level", "", "debug, info, warn or error")
	pf.IntVar(&f.concurrency, "concurrency", 0, "lessons run in parallel")

	cmd.AddCommand(newListCmd(f, inject, load))
	cmd.AddCommand(newRunCmd(f, inject, load))
	cmd.AddCommand(newScheduleCmd(f, inject, load))
	return cmd
}

func newListCmd(f *flags, inject Injector, load func() (*config.Config, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available lessons",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, f, inject, load, func(a *app.App) error {
				return printLessons(cmd.OutOrStdout(), a)
			})
		},
	}
}

func newRunCmd(f *flags, inject Injector, load func() (*config.Config, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "run [lesson...]",
		Short: "Run lessons once and print their transcripts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, f, inject, load, func(a *app.App) error {
				_, err := a.RunOnce(cmd.Context(), args...)
				return err
			})
		},
	}
}

func newScheduleCmd(f *flags, inject Injector, load func() (*config.Config, error)) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Run lessons now and then on a cron schedule until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, f, inject, load, func(a *app.App) error {
				return a.Run(cmd.Context())
			})
		},
	}
	cmd.Flags().StringVar(&f.cron, "cron", "", "cron expression (overrides LLD_SCHEDULE_CRON)")
	return cmd
}

func withApp(cmd *cobra.Command, f *flags, inject Injector, load func() (*config.Config, error), fn func(*app.App) error) error {
	cfg, err := load()
	if err != nil {
		return err
	}
	if err := f.apply(cfg, cmd.Name() == "schedule"); err != nil {
		return err
	}

	a, cleanup, err := inject(cfg)
	if err != nil {
		return fmt.Errorf("initialize application: %w", err)
	}
	defer cleanup()
	return fn(a)
}

func (f *flags) apply(cfg *config.Config, scheduled bool) error {
	if f.store != "" {
		cfg.Store = strings.ToLower(f.store)
	}
	if f.storePath != "" {
		cfg.StorePath = f.storePath
	}
	if f.fixtures != "" {
		cfg.FixturesPath = f.fixtures
	}
	if f.logLevel != "" {
		cfg.LogLevel = f.logLevel
	}
	if f.concurrency > 0 {
		cfg.Concurrency = f.concurrency
	}
	if f.cron != "" {
		cfg.ScheduleCron = f.cron
	}
	if scheduled && cfg.ScheduleCron == "" {
		return fmt.Errorf("schedule: set --cron or LLD_SCHEDULE_CRON")
	}
	return cfg.Validate()
}

func printLessons(w io.Writer, a *app.App) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "KEY\tPATTERN\tTITLE")
	for _, l := range a.Lessons() {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", l.Key, l.Pattern, l.Title)
	}
	return tw.Flush()
}

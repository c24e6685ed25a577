package main

import (
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/nhle/todolists/internal/app"
	"github.com/nhle/todolists/internal/model"
	"github.com/nhle/todolists/internal/todo"
)

// rootOptions carries global flags and test hooks shared by subcommands.
type rootOptions struct {
	configPath string
	dbPath     string
	now        func() time.Time
	stderr     io.Writer
}

func newRootCmd(stdout, stderr io.Writer, now func() time.Time) *cobra.Command {
	opts := &rootOptions{now: now, stderr: stderr}

	cmd := &cobra.Command{
		Use:           "todolists",
		Short:         "Manage named to-do lists and their items",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", model.DefaultConfigPath(), "config file")
	cmd.PersistentFlags().StringVar(&opts.dbPath, "db", "", "database path (overrides config)")

	cmd.AddCommand(newListCmd(opts), newItemCmd(opts))
	return cmd
}

// withApp loads config, opens the app for the duration of fn, and logs
// any failure before returning it.
func (o *rootOptions) withApp(fn func(a *app.App) error) error {
	cfg, err := model.LoadConfig(o.configPath)
	if err != nil {
		return err
	}
	if o.dbPath != "" {
		cfg.Database.Path = o.dbPath
	}

	a, err := app.New(cfg, o.stderr, todo.WithClock(o.now))
	if err != nil {
		return err
	}
	defer a.Close()

	if err := fn(a); err != nil {
		a.Logger.Error("command failed", "err", err)
		return err
	}
	return nil
}

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rogerio-castellano/pantry-tracker/internal/app"
	"github.com/rogerio-castellano/pantry-tracker/internal/config"
	"github.com/rogerio-castellano/pantry-tracker/internal/logger"
)

// cli carries the global flags and how to reach the pantry.
type cli struct {
	configPath string
	jsonOutput bool
	verbose    bool

	// open builds the app for a command; tests swap it for an in-memory one.
	open func(ctx context.Context, c *cli) (*app.App, error)
}

func openApp(ctx context.Context, c *cli) (*app.App, error) {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return nil, err
	}

	level := cfg.Log.Level
	if !c.verbose {
		level = "warn"
	}
	lg, err := logger.New(level)
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}

	return app.New(ctx, cfg, lg)
}

func newRootCmd() *cobra.Command {
	return newRootCmdWith(&cli{open: openApp})
}

func newRootCmdWith(c *cli) *cobra.Command {
	root := &cobra.Command{
		Use:   "pantry",
		Short: "Track what is in the pantry",
		Long: `pantry reads and changes the shared pantry inventory from the command line.

It talks to the same document store as the web server, selected with
store.driver in pantry.yaml or PANTRY_STORE_DRIVER.

Examples:
  pantry list
  pantry search bread
  pantry add "olive oil"
  pantry set eggs 12
  pantry set eggs REMOVE
  pantry import items.csv --mode update
  pantry recipe tomato`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&c.configPath, "config", "", "Path to a config file (default: ./pantry.yaml if present)")
	root.PersistentFlags().BoolVar(&c.jsonOutput, "json", false, "Output in JSON format")
	root.PersistentFlags().BoolVar(&c.verbose, "verbose", false, "Log at the configured level instead of warn")

	root.AddCommand(
		newListCmd(c),
		newSearchCmd(c),
		newAddCmd(c),
		newRemoveCmd(c),
		newSetCmd(c),
		newImportCmd(c),
		newRecipeCmd(c),
	)
	return root
}

// withApp opens the pantry, loads the inventory and runs fn.
func (c *cli) withApp(cmd *cobra.Command, fn func(a *app.App) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	a, err := c.open(ctx, c)
	if err != nil {
		return err
	}
	defer func() {
		if err := a.Close(); err != nil {
			a.Logger.Warn("closing store", zap.Error(err))
		}
	}()

	if _, err := a.Inventory.Refresh(ctx); err != nil {
		return err
	}
	return fn(a)
}

func (c *cli) printJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

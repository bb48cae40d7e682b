package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rogerio-castellano/pantry-tracker/internal/app"
	"github.com/rogerio-castellano/pantry-tracker/internal/inventory"
	"github.com/rogerio-castellano/pantry-tracker/internal/models"
)

var errNegativeQuantity = errors.New("quantity cannot be negative")

func (c *cli) printItems(w io.Writer, items []models.Item) error {
	if c.jsonOutput {
		return c.printJSON(w, items)
	}
	if len(items) == 0 {
		_, err := fmt.Fprintln(w, "No items.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tQUANTITY")
	for _, item := range items {
		fmt.Fprintf(tw, "%s\t%d\n", item.Name, item.Quantity)
	}
	return tw.Flush()
}

func newListCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every item",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withApp(cmd, func(a *app.App) error {
				return c.printItems(cmd.OutOrStdout(), a.Inventory.Inventory())
			})
		},
	}
}

func newSearchCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "search <text>",
		Short: "List items whose name contains text, ignoring case",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withApp(cmd, func(a *app.App) error {
				return c.printItems(cmd.OutOrStdout(), a.Inventory.View(args[0]))
			})
		},
	}
}

func newAddCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>",
		Short: "Add one unit of an item, creating it if needed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withApp(cmd, func(a *app.App) error {
				if err := a.Inventory.AddItem(cmd.Context(), args[0]); err != nil {
					return err
				}
				return c.printChanged(cmd.OutOrStdout(), a, args[0])
			})
		},
	}
}

func newRemoveCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <name>",
		Aliases: []string{"rm"},
		Short:   "Delete an item",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withApp(cmd, func(a *app.App) error {
				if err := a.Inventory.RemoveItem(cmd.Context(), args[0]); err != nil {
					return err
				}
				return c.printChanged(cmd.OutOrStdout(), a, args[0])
			})
		},
	}
}

func newSetCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "set <name> <quantity|REMOVE>",
		Short: "Set the quantity of an item; 0 or REMOVE deletes it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := inventory.ParseQuantity(args[1])
			if err != nil {
				return err
			}
			if !q.Removes() && q.Value() < 0 {
				return errNegativeQuantity
			}

			return c.withApp(cmd, func(a *app.App) error {
				if err := a.Inventory.SetQuantity(cmd.Context(), args[0], q); err != nil {
					return err
				}
				return c.printChanged(cmd.OutOrStdout(), a, args[0])
			})
		},
	}
}

// printChanged reports the item as the refreshed inventory now has it.
func (c *cli) printChanged(w io.Writer, a *app.App, name string) error {
	item, ok := a.Inventory.Lookup(name)
	if c.jsonOutput {
		if !ok {
			return c.printJSON(w, map[string]any{"name": name, "removed": true})
		}
		return c.printJSON(w, item)
	}
	if !ok {
		_, err := fmt.Fprintf(w, "%s removed\n", name)
		return err
	}
	_, err := fmt.Fprintf(w, "%s: %d\n", item.Name, item.Quantity)
	return err
}

func newImportCmd(c *cli) *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Import items from a name,quantity CSV file",
		Long: `Import items from a CSV file with a name,quantity header.

Modes:
  skip    rows naming an existing item are reported and left alone (default)
  update  rows overwrite existing items; a quantity of 0 deletes the item`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", args[0], err)
			}
			defer f.Close()

			return c.withApp(cmd, func(a *app.App) error {
				result, err := a.Inventory.Import(cmd.Context(), f, mode)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				if c.jsonOutput {
					return c.printJSON(out, result)
				}
				fmt.Fprintf(out, "Imported %d item(s)\n", result.Imported)
				for _, rowErr := range result.Errors {
					fmt.Fprintf(out, "  %s\n", rowErr.Error())
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&mode, "mode", inventory.ImportSkip, "Import mode (skip|update)")
	return cmd
}

func newRecipeCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "recipe <text>",
		Short: "Ask for a recipe built around text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withApp(cmd, func(a *app.App) error {
				text, err := a.Recipes.Request(cmd.Context(), args[0])
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				if c.jsonOutput {
					return c.printJSON(out, map[string]string{"query": args[0], "recipe": text})
				}
				_, err = fmt.Fprintln(out, text)
				return err
			})
		},
	}
}

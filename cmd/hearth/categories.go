package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/hearthledger/hearth/internal/cli"
	"github.com/hearthledger/hearth/internal/ledger"
	"github.com/hearthledger/hearth/internal/model"
	"github.com/hearthledger/hearth/internal/report"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List and manage spending categories",
	}

	cmd.AddCommand(categoriesListCmd())
	cmd.AddCommand(categoriesAddCmd())
	cmd.AddCommand(categoriesEditCmd())
	cmd.AddCommand(categoriesDeleteCmd())
	return cmd
}

func categoriesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all categories",
		RunE: func(_ *cobra.Command, _ []string) error {
			store, cleanup, err := openLedger()
			if err != nil {
				return err
			}
			defer cleanup()

			settings := store.Settings()
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tCOLOR\tBUDGET\tCUSTOM")
			for _, c := range store.Categories() {
				budget := "-"
				if c.BudgetLimit > 0 {
					budget = report.FormatAmount(c.BudgetLimit, settings.Currency)
				}
				custom := ""
				if c.IsCustom {
					custom = "yes"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", shortID(c.ID), c.Name, c.Color, budget, custom)
			}
			return w.Flush()
		},
	}
}

func categoriesAddCmd() *cobra.Command {
	var (
		color  string
		budget float64
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a custom category",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			store, cleanup, err := openLedger()
			if err != nil {
				return err
			}
			defer cleanup()

			if budget < 0 {
				return fmt.Errorf("budget limit cannot be negative")
			}

			name := ledger.NormalizeCategoryName(args[0])
			if color == "" {
				color = newColorSource().HexColor()
			}

			id, err := store.AddCategory(model.Category{
				Name:        name,
				Color:       color,
				BudgetLimit: budget,
			})
			if err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Created category %q (%s)", name, shortID(id))))
			return nil
		},
	}

	cmd.Flags().StringVar(&color, "color", "", "display color as #RRGGBB (default: random)")
	cmd.Flags().Float64Var(&budget, "budget", 0, "monthly budget limit (0 = unbudgeted)")
	return cmd
}

func categoriesEditCmd() *cobra.Command {
	var (
		name   string
		color  string
		budget float64
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Update fields of a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, cleanup, err := openLedger()
			if err != nil {
				return err
			}
			defer cleanup()

			id, err := resolveCategoryID(store, args[0])
			if err != nil {
				return err
			}

			var patch ledger.CategoryPatch
			if cmd.Flags().Changed("name") {
				normalized := ledger.NormalizeCategoryName(name)
				patch.Name = &normalized
			}
			if cmd.Flags().Changed("color") {
				patch.Color = &color
			}
			if cmd.Flags().Changed("budget") {
				if budget < 0 {
					return fmt.Errorf("budget limit cannot be negative")
				}
				patch.BudgetLimit = &budget
			}

			if err := store.UpdateCategory(id, patch); err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess("Category updated"))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new name")
	cmd.Flags().StringVar(&color, "color", "", "new display color")
	cmd.Flags().Float64Var(&budget, "budget", 0, "new monthly budget limit")
	return cmd
}

func categoriesDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a category",
		Long: `Delete a category by id.

Expenses recorded against the category are kept; they show up as
"(unknown)" in listings until re-categorized.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			store, cleanup, err := openLedger()
			if err != nil {
				return err
			}
			defer cleanup()

			id, err := resolveCategoryID(store, args[0])
			if err != nil {
				return err
			}
			if err := store.DeleteCategory(id); err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess("Category deleted"))
			return nil
		},
	}
}

// resolveCategoryID accepts a category id, id prefix, or exact name.
func resolveCategoryID(store *ledger.Store, ref string) (string, error) {
	categories := store.Categories()
	for _, c := range categories {
		if c.ID == ref || c.Name == ref {
			return c.ID, nil
		}
	}
	var match string
	for _, c := range categories {
		if len(ref) >= 4 && len(c.ID) > len(ref) && c.ID[:len(ref)] == ref {
			if match != "" {
				return "", fmt.Errorf("ambiguous category id %q", ref)
			}
			match = c.ID
		}
	}
	if match == "" {
		return "", fmt.Errorf("no category matches %q", ref)
	}
	return match, nil
}

// shortID truncates uuid-length ids for display; the seeded categories have
// single-digit ids that are shown as-is.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

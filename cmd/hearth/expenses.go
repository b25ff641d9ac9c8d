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

func expensesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "expenses",
		Short: "List and manage recorded expenses",
	}

	cmd.AddCommand(expensesListCmd())
	cmd.AddCommand(expensesEditCmd())
	cmd.AddCommand(expensesDeleteCmd())
	return cmd
}

func expensesListCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List expenses, most recent first",
		RunE: func(_ *cobra.Command, _ []string) error {
			store, cleanup, err := openLedger()
			if err != nil {
				return err
			}
			defer cleanup()

			expenses := store.Expenses()
			if len(expenses) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No expenses recorded yet."))
				return nil
			}
			if limit > 0 && len(expenses) > limit {
				expenses = expenses[:limit]
			}

			settings := store.Settings()
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tDATE\tAMOUNT\tCATEGORY\tDESCRIPTION")
			for _, e := range expenses {
				categoryName := "(unknown)"
				if cat, ok := store.CategoryByID(e.CategoryID); ok {
					categoryName = cat.Name
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					shortID(e.ID),
					report.FormatDate(e.Date),
					report.FormatAmount(e.Amount, settings.Currency),
					categoryName,
					e.Description)
			}
			return w.Flush()
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "show at most n expenses (0 = all)")
	return cmd
}

func expensesEditCmd() *cobra.Command {
	var (
		amountStr    string
		categoryName string
		dateStr      string
		description  string
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Update fields of an expense",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, cleanup, err := openLedger()
			if err != nil {
				return err
			}
			defer cleanup()

			id, err := resolveExpenseID(store, args[0])
			if err != nil {
				return err
			}

			var patch ledger.ExpensePatch
			if cmd.Flags().Changed("amount") {
				var amount float64
				if _, err := fmt.Sscanf(amountStr, "%f", &amount); err != nil {
					return fmt.Errorf("invalid amount %q", amountStr)
				}
				patch.Amount = &amount
			}
			if cmd.Flags().Changed("date") {
				date, err := model.ParseDate(dateStr)
				if err != nil {
					return err
				}
				patch.Date = &date
			}
			if cmd.Flags().Changed("category") {
				resolver := ledger.NewResolver(store, newColorSource())
				categoryID, err := resolver.Resolve(categoryName)
				if err != nil {
					return err
				}
				patch.CategoryID = &categoryID
			}
			if cmd.Flags().Changed("description") {
				patch.Description = &description
			}

			if err := store.UpdateExpense(id, patch); err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess("Expense updated"))
			return nil
		},
	}

	cmd.Flags().StringVar(&amountStr, "amount", "", "new amount")
	cmd.Flags().StringVar(&dateStr, "date", "", "new date, YYYY-MM-DD")
	cmd.Flags().StringVar(&categoryName, "category", "", "new category name")
	cmd.Flags().StringVar(&description, "description", "", "new description")
	return cmd
}

func expensesDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an expense",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			store, cleanup, err := openLedger()
			if err != nil {
				return err
			}
			defer cleanup()

			id, err := resolveExpenseID(store, args[0])
			if err != nil {
				return err
			}
			if err := store.DeleteExpense(id); err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess("Expense deleted"))
			return nil
		},
	}
}

// resolveExpenseID accepts either a full id or an unambiguous prefix, since
// the list view shows truncated ids.
func resolveExpenseID(store *ledger.Store, prefix string) (string, error) {
	var match string
	for _, e := range store.Expenses() {
		if e.ID == prefix {
			return e.ID, nil
		}
		if len(prefix) >= 4 && len(e.ID) > len(prefix) && e.ID[:len(prefix)] == prefix {
			if match != "" {
				return "", fmt.Errorf("ambiguous expense id %q", prefix)
			}
			match = e.ID
		}
	}
	if match == "" {
		return "", fmt.Errorf("no expense matches id %q", prefix)
	}
	return match, nil
}

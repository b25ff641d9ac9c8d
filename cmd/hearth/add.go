package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hearthledger/hearth/internal/cli"
	"github.com/hearthledger/hearth/internal/ledger"
	"github.com/hearthledger/hearth/internal/model"
	"github.com/hearthledger/hearth/internal/report"
)

func addCmd() *cobra.Command {
	var (
		categoryName string
		dateStr      string
		description  string
	)

	cmd := &cobra.Command{
		Use:   "add <amount>",
		Short: "Record a single expense",
		Long: `Record one expense against a category.

The category is matched by name, case-insensitively; an unknown name
creates a new custom category on the fly.

Examples:
  hearth add 42.50 --category Food --description "weekly groceries"
  hearth add 1200 --category Housing --date 2026-08-01`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			amount, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid amount %q", args[0])
			}

			store, cleanup, err := openLedger()
			if err != nil {
				return err
			}
			defer cleanup()

			date := model.DateOf(store.Clock().Now())
			if dateStr != "" {
				date, err = model.ParseDate(dateStr)
				if err != nil {
					return err
				}
			}

			resolver := ledger.NewResolver(store, newColorSource())
			categoryID, err := resolver.Resolve(categoryName)
			if err != nil {
				return err
			}

			id, err := store.AddExpense(model.Expense{
				Date:        date,
				Amount:      amount,
				CategoryID:  categoryID,
				Description: description,
			})
			if err != nil {
				return err
			}

			settings := store.Settings()
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Recorded %s (%s)",
				report.FormatAmount(amount, settings.Currency), shortID(id))))
			return nil
		},
	}

	cmd.Flags().StringVarP(&categoryName, "category", "c", "", "category name (required)")
	cmd.Flags().StringVarP(&dateStr, "date", "d", "", "expense date, YYYY-MM-DD (default: today)")
	cmd.Flags().StringVarP(&description, "description", "m", "", "what the expense was for")
	_ = cmd.MarkFlagRequired("category")

	return cmd
}

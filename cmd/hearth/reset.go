package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hearthledger/hearth/internal/cli"
)

func resetCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Wipe all data and restore defaults",
		Long: `Reset deletes every expense, custom category and setting, restoring the
five default categories and default settings.

This is a destructive, irreversible operation.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			store, cleanup, err := openLedger()
			if err != nil {
				return err
			}
			defer cleanup()

			if !force {
				expenseCount := len(store.Expenses())
				fmt.Printf("This will delete %d expenses and all custom categories.\n", expenseCount)
				fmt.Print("Are you sure you want to continue? [y/N]: ")

				var response string
				if _, err := fmt.Scanln(&response); err != nil && err.Error() != "unexpected newline" {
					return fmt.Errorf("failed to read input: %w", err)
				}
				if response != "y" && response != "Y" {
					fmt.Fprintln(os.Stdout, "Reset canceled.")
					return nil
				}
			}

			if err := store.Reset(); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess("All data wiped; defaults restored."))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip confirmation prompt")
	return cmd
}

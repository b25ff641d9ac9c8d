package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hearthledger/hearth/internal/cli"
	"github.com/hearthledger/hearth/internal/ledger"
	"github.com/hearthledger/hearth/internal/report"
)

func settingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show and change global settings",
	}

	cmd.AddCommand(settingsShowCmd())
	cmd.AddCommand(settingsSetCmd())
	return cmd
}

func settingsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print current settings",
		RunE: func(_ *cobra.Command, _ []string) error {
			store, cleanup, err := openLedger()
			if err != nil {
				return err
			}
			defer cleanup()

			s := store.Settings()
			fmt.Printf("Monthly budget: %s\n", report.FormatAmount(s.MonthlyBudget, s.Currency))
			fmt.Printf("Currency:       %s\n", s.Currency)
			fmt.Printf("Dark mode:      %t\n", s.DarkMode)
			return nil
		},
	}
}

func settingsSetCmd() *cobra.Command {
	var (
		monthlyBudget float64
		currency      string
		darkMode      bool
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update one or more settings",
		Long: `Update settings. Only the flags you pass are changed.

Examples:
  hearth settings set --monthly-budget 2500
  hearth settings set --currency EUR --dark-mode=false`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, cleanup, err := openLedger()
			if err != nil {
				return err
			}
			defer cleanup()

			var patch ledger.SettingsPatch
			if cmd.Flags().Changed("monthly-budget") {
				if monthlyBudget < 0 {
					return fmt.Errorf("monthly budget cannot be negative")
				}
				patch.MonthlyBudget = &monthlyBudget
			}
			if cmd.Flags().Changed("currency") {
				patch.Currency = &currency
			}
			if cmd.Flags().Changed("dark-mode") {
				patch.DarkMode = &darkMode
			}

			if patch.MonthlyBudget == nil && patch.Currency == nil && patch.DarkMode == nil {
				return fmt.Errorf("nothing to change; pass at least one flag")
			}

			if err := store.UpdateSettings(patch); err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess("Settings updated"))
			return nil
		},
	}

	cmd.Flags().Float64Var(&monthlyBudget, "monthly-budget", 0, "overall monthly budget")
	cmd.Flags().StringVar(&currency, "currency", "", "ISO currency code (e.g. USD, EUR)")
	cmd.Flags().BoolVar(&darkMode, "dark-mode", false, "dark mode preference")
	return cmd
}

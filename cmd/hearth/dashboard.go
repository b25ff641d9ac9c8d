package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hearthledger/hearth/internal/cli"
	"github.com/hearthledger/hearth/internal/report"
)

func dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show spending overview, budgets and the monthly trend",
		RunE: func(_ *cobra.Command, _ []string) error {
			store, cleanup, err := openLedger()
			if err != nil {
				return err
			}
			defer cleanup()

			expenses := store.Expenses()
			categories := store.Categories()
			settings := store.Settings()
			now := store.Clock().Now()

			summary := report.Summarize(expenses, settings, now)
			currency := settings.Currency

			headline := fmt.Sprintf("Total spent:      %s\n", report.FormatAmount(summary.TotalSpent, currency))
			remaining := report.FormatAmount(summary.Remaining, currency)
			if summary.Remaining < 0 {
				remaining = cli.ErrorStyle.Render(remaining)
			} else {
				remaining = cli.SuccessStyle.Render(remaining)
			}
			headline += fmt.Sprintf("Budget remaining: %s of %s\n", remaining,
				report.FormatAmount(settings.MonthlyBudget, currency))
			headline += fmt.Sprintf("Daily average:    %s", report.FormatAmount(summary.DailyAverage, currency))

			fmt.Println(cli.RenderBox("Overview", headline))

			if usages := report.BudgetUsages(expenses, categories); len(usages) > 0 {
				var b strings.Builder
				for i, u := range usages {
					if i > 0 {
						b.WriteString("\n")
					}
					line := fmt.Sprintf("%-15s %s %5.1f%%  %s / %s",
						u.Category.Name,
						cli.ProgressBar(u.Percent, 20, u.Category.Color),
						u.Percent,
						report.FormatAmount(u.Spent, currency),
						report.FormatAmount(u.Category.BudgetLimit, currency))
					if u.Spent > u.Category.BudgetLimit {
						line += "  " + cli.FormatWarning("over budget")
					}
					b.WriteString(line)
				}
				fmt.Println(cli.RenderBox("Budgets", b.String()))
			}

			if spends := report.SpendByCategory(expenses, categories); len(spends) > 0 {
				var b strings.Builder
				for i, s := range spends {
					if i > 0 {
						b.WriteString("\n")
					}
					b.WriteString(fmt.Sprintf("%-15s %s", s.Name, report.FormatAmount(s.Spent, currency)))
				}
				fmt.Println(cli.RenderBox("Spend by category", b.String()))
			}

			trend := report.MonthlyTrend(expenses, now)
			var b strings.Builder
			for i, bucket := range trend {
				if i > 0 {
					b.WriteString("\n")
				}
				b.WriteString(fmt.Sprintf("%s  %s", bucket.Label, report.FormatAmount(bucket.Amount, currency)))
			}
			fmt.Println(cli.RenderBox("Monthly trend", b.String()))

			return nil
		},
	}
}

// Package report computes read-side aggregates over the ledger
// collections. Everything here is pure and recomputed per call; the inputs
// are small and in-memory, so no caching is needed.
//
// All aggregates treat amounts as absolute magnitudes. Expenses whose
// category no longer exists are invisible to per-category views but still
// count toward totals.
package report

import (
	"math"
	"time"

	"github.com/hearthledger/hearth/internal/model"
)

// CategorySpend is one slice of the per-category breakdown.
type CategorySpend struct {
	CategoryID string
	Name       string
	Color      string
	Spent      float64
}

// SpendByCategory sums absolute spend per category, omitting categories
// with no spend.
func SpendByCategory(expenses []model.Expense, categories []model.Category) []CategorySpend {
	var out []CategorySpend
	for _, cat := range categories {
		spent := spendFor(expenses, cat.ID)
		if spent <= 0 {
			continue
		}
		out = append(out, CategorySpend{
			CategoryID: cat.ID,
			Name:       cat.Name,
			Color:      cat.Color,
			Spent:      spent,
		})
	}
	return out
}

// BudgetUsage reports spend against one budgeted category. Percent is
// clipped at 100; overspend stays visible through Spent vs. the limit.
type BudgetUsage struct {
	Category model.Category
	Spent    float64
	Percent  float64
}

// BudgetUsages computes usage for every category with a positive budget
// limit.
func BudgetUsages(expenses []model.Expense, categories []model.Category) []BudgetUsage {
	var out []BudgetUsage
	for _, cat := range categories {
		if cat.BudgetLimit <= 0 {
			continue
		}
		spent := spendFor(expenses, cat.ID)
		out = append(out, BudgetUsage{
			Category: cat,
			Spent:    spent,
			Percent:  math.Min(spent/cat.BudgetLimit*100, 100),
		})
	}
	return out
}

func spendFor(expenses []model.Expense, categoryID string) float64 {
	var total float64
	for _, e := range expenses {
		if e.CategoryID == categoryID {
			total += math.Abs(e.Amount)
		}
	}
	return total
}

// MonthBucket is one calendar month of the trend window.
type MonthBucket struct {
	Label  string
	Start  time.Time
	End    time.Time
	Amount float64
}

// TrendMonths is the width of the trailing trend window.
const TrendMonths = 6

// MonthlyTrend buckets expenses into the TrendMonths consecutive calendar
// months ending at now's month. Expenses outside the window are dropped.
func MonthlyTrend(expenses []model.Expense, now time.Time) []MonthBucket {
	buckets := make([]MonthBucket, TrendMonths)
	for i := range buckets {
		start := startOfMonth(now).AddDate(0, i-(TrendMonths-1), 0)
		buckets[i] = MonthBucket{
			Label: start.Format("Jan"),
			Start: start,
			End:   start.AddDate(0, 1, 0).Add(-time.Nanosecond),
		}
	}

	for _, e := range expenses {
		d := e.Date.Time
		for i := range buckets {
			if !d.Before(buckets[i].Start) && !d.After(buckets[i].End) {
				buckets[i].Amount += math.Abs(e.Amount)
				break
			}
		}
	}
	return buckets
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// Summary is the dashboard headline: totals against the monthly budget.
type Summary struct {
	TotalSpent   float64
	Remaining    float64
	Projected    float64
	DailyAverage float64
}

// Summarize computes the headline totals. TotalSpent covers every expense
// on record, category dangling or not. Projected is the literal total, a
// documented simplification rather than a forecast. The daily average
// divisor is floored at one to guard the first of the month.
func Summarize(expenses []model.Expense, settings model.Settings, now time.Time) Summary {
	var total float64
	for _, e := range expenses {
		total += math.Abs(e.Amount)
	}

	day := now.Day()
	if day < 1 {
		day = 1
	}

	return Summary{
		TotalSpent:   total,
		Remaining:    settings.MonthlyBudget - total,
		Projected:    total,
		DailyAverage: total / float64(day),
	}
}

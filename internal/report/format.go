package report

import (
	"math"

	"github.com/Rhymond/go-money"

	"github.com/hearthledger/hearth/internal/model"
)

// FormatAmount renders an amount with the symbol and decimal conventions of
// the given ISO currency code. Unknown codes fall back to USD formatting
// so display never fails.
func FormatAmount(amount float64, currencyCode string) string {
	currency := money.GetCurrency(currencyCode)
	if currency == nil {
		currency = money.GetCurrency(money.USD)
	}

	units := int64(math.Round(amount * math.Pow10(currency.Fraction)))
	return money.New(units, currency.Code).Display()
}

// FormatDate renders a calendar date in the short human-readable form used
// across the CLI.
func FormatDate(d model.Date) string {
	return d.Format("Jan 02, 2006")
}

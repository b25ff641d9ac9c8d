package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/hearthledger/hearth/internal/model"
)

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "$12.50", FormatAmount(12.5, "USD"))
	assert.Equal(t, "$1,234.50", FormatAmount(1234.5, "USD"))
	assert.Equal(t, "-$10.50", FormatAmount(-10.5, "USD"))
	// Unknown codes render as USD rather than failing.
	assert.Equal(t, "$5.00", FormatAmount(5, "ZZZ"))
	// Zero-fraction currencies drop the decimals.
	assert.Equal(t, "¥1,250", FormatAmount(1250, "JPY"))
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "Aug 01, 2026", FormatDate(model.NewDate(2026, time.August, 1)))
	assert.Equal(t, "Dec 25, 2025", FormatDate(model.NewDate(2025, time.December, 25)))
}

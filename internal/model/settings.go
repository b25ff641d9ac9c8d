package model

// Settings holds the singleton global configuration for the ledger.
type Settings struct {
	MonthlyBudget float64 `json:"monthlyBudget"`
	Currency      string  `json:"currency"`
	DarkMode      bool    `json:"darkMode"`
}

// DefaultSettings returns the settings applied on first run and after a reset.
func DefaultSettings() Settings {
	return Settings{
		MonthlyBudget: 3000,
		Currency:      "USD",
		DarkMode:      true,
	}
}

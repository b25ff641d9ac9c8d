package model

// Expense represents a single recorded expense.
//
// CategoryID is a soft reference: the store never verifies it points at a
// live category, and readers must tolerate a failed lookup.
type Expense struct {
	ID          string  `json:"id"`
	Date        Date    `json:"date"`
	Amount      float64 `json:"amount"`
	CategoryID  string  `json:"categoryId"`
	Description string  `json:"description"`
}

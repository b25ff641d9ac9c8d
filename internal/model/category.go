// Package model defines the core data types shared across the application.
package model

// Category represents a spending category that expenses are recorded against.
type Category struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Color       string  `json:"color"`
	BudgetLimit float64 `json:"budgetLimit"`
	IsCustom    bool    `json:"isCustom"`
}

// DefaultCategories returns the five categories seeded on first run.
// Their ids are stable so expenses recorded before a reset still resolve
// after one.
func DefaultCategories() []Category {
	return []Category{
		{ID: "1", Name: "Housing", Color: "#00BFFF", BudgetLimit: 1000, IsCustom: false},
		{ID: "2", Name: "Food", Color: "#4CFF00", BudgetLimit: 500, IsCustom: false},
		{ID: "3", Name: "Transport", Color: "#FFD700", BudgetLimit: 200, IsCustom: false},
		{ID: "4", Name: "Utilities", Color: "#9E9E9E", BudgetLimit: 300, IsCustom: false},
		{ID: "5", Name: "Entertainment", Color: "#FF2E2E", BudgetLimit: 150, IsCustom: false},
	}
}

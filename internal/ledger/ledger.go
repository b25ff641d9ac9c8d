// Package ledger owns the in-memory expense, category and settings
// collections and keeps them mirrored to durable storage. Every mutation is
// persisted before the call returns (write-through, not write-back), so
// there is no separate flush step.
package ledger

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/hearthledger/hearth/internal/common"
	"github.com/hearthledger/hearth/internal/model"
	"github.com/hearthledger/hearth/internal/storage"
)

// Store is the single owner of the ledger collections. It is not safe for
// concurrent use; the application is single-writer by design.
type Store struct {
	mirror storage.Store
	clock  Clock
	ids    IDSource

	expenses   []model.Expense
	categories []model.Category
	settings   model.Settings
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the system clock.
func WithClock(c Clock) Option {
	return func(s *Store) { s.clock = c }
}

// WithIDSource overrides the uuid-backed id generator.
func WithIDSource(ids IDSource) Option {
	return func(s *Store) { s.ids = ids }
}

// Open seeds a Store from the durable mirror, falling back to compiled-in
// defaults for any record the mirror does not hold.
func Open(mirror storage.Store, opts ...Option) (*Store, error) {
	s := &Store{
		mirror: mirror,
		clock:  SystemClock(),
		ids:    UUIDSource(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := loadRecord(mirror, storage.KeyExpenses, &s.expenses); err != nil {
		return nil, err
	}

	found, err := loadFound(mirror, storage.KeyCategories, &s.categories)
	if err != nil {
		return nil, err
	}
	if !found {
		s.categories = model.DefaultCategories()
	}

	found, err = loadFound(mirror, storage.KeySettings, &s.settings)
	if err != nil {
		return nil, err
	}
	if !found {
		s.settings = model.DefaultSettings()
	}

	slog.Debug("ledger opened",
		"expenses", len(s.expenses),
		"categories", len(s.categories))
	return s, nil
}

func loadRecord(mirror storage.Store, key string, dst any) error {
	_, err := loadFound(mirror, key, dst)
	return err
}

func loadFound(mirror storage.Store, key string, dst any) (bool, error) {
	raw, err := mirror.Get(key)
	if err != nil {
		return false, fmt.Errorf("failed to load %s: %w", key, err)
	}
	if raw == nil {
		return false, nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("%w: failed to decode %s: %v", common.ErrCorruptRecord, key, err)
	}
	return true, nil
}

// Expenses returns a copy of the expense collection, most recent first.
func (s *Store) Expenses() []model.Expense {
	out := make([]model.Expense, len(s.expenses))
	copy(out, s.expenses)
	return out
}

// Categories returns a copy of the category collection.
func (s *Store) Categories() []model.Category {
	out := make([]model.Category, len(s.categories))
	copy(out, s.categories)
	return out
}

// CategoryByID looks up a category. The second return is false when the id
// does not resolve; callers must treat that as "unknown category", never as
// a fatal condition.
func (s *Store) CategoryByID(id string) (model.Category, bool) {
	for _, c := range s.categories {
		if c.ID == id {
			return c, true
		}
	}
	return model.Category{}, false
}

// Settings returns the current global settings.
func (s *Store) Settings() model.Settings {
	return s.settings
}

// AddExpense records a new expense, prepending it so the collection stays
// most-recent-first, and returns the generated id.
func (s *Store) AddExpense(e model.Expense) (string, error) {
	e.ID = s.ids.NewID()
	s.expenses = append([]model.Expense{e}, s.expenses...)
	if err := s.persistExpenses(); err != nil {
		return "", err
	}
	return e.ID, nil
}

// ExpensePatch holds the optional fields of an expense update. Nil fields
// are left untouched.
type ExpensePatch struct {
	Date        *model.Date
	Amount      *float64
	CategoryID  *string
	Description *string
}

// UpdateExpense shallow-merges patch into the matching expense. A missing
// id is a silent no-op.
func (s *Store) UpdateExpense(id string, patch ExpensePatch) error {
	for i := range s.expenses {
		if s.expenses[i].ID != id {
			continue
		}
		e := &s.expenses[i]
		if patch.Date != nil {
			e.Date = *patch.Date
		}
		if patch.Amount != nil {
			e.Amount = *patch.Amount
		}
		if patch.CategoryID != nil {
			e.CategoryID = *patch.CategoryID
		}
		if patch.Description != nil {
			e.Description = *patch.Description
		}
		return s.persistExpenses()
	}
	return nil
}

// DeleteExpense removes the matching expense. Deleting an absent id is a
// no-op.
func (s *Store) DeleteExpense(id string) error {
	for i := range s.expenses {
		if s.expenses[i].ID == id {
			s.expenses = append(s.expenses[:i], s.expenses[i+1:]...)
			return s.persistExpenses()
		}
	}
	return nil
}

// AddCategory creates a new category and returns its id. Categories created
// through this path are always custom, whatever the caller set.
func (s *Store) AddCategory(c model.Category) (string, error) {
	c.ID = s.ids.NewID()
	c.IsCustom = true
	s.categories = append(s.categories, c)
	if err := s.persistCategories(); err != nil {
		return "", err
	}
	slog.Debug("created category", "name", c.Name, "id", c.ID)
	return c.ID, nil
}

// CategoryPatch holds the optional fields of a category update.
type CategoryPatch struct {
	Name        *string
	Color       *string
	BudgetLimit *float64
}

// UpdateCategory shallow-merges patch into the matching category. A missing
// id is a silent no-op.
func (s *Store) UpdateCategory(id string, patch CategoryPatch) error {
	for i := range s.categories {
		if s.categories[i].ID != id {
			continue
		}
		c := &s.categories[i]
		if patch.Name != nil {
			c.Name = *patch.Name
		}
		if patch.Color != nil {
			c.Color = *patch.Color
		}
		if patch.BudgetLimit != nil {
			c.BudgetLimit = *patch.BudgetLimit
		}
		return s.persistCategories()
	}
	return nil
}

// DeleteCategory removes the matching category. Expenses referencing it are
// left untouched; readers tolerate the dangling reference.
func (s *Store) DeleteCategory(id string) error {
	for i := range s.categories {
		if s.categories[i].ID == id {
			s.categories = append(s.categories[:i], s.categories[i+1:]...)
			return s.persistCategories()
		}
	}
	return nil
}

// SettingsPatch holds the optional fields of a settings update.
type SettingsPatch struct {
	MonthlyBudget *float64
	Currency      *string
	DarkMode      *bool
}

// UpdateSettings shallow-merges patch into the settings singleton.
func (s *Store) UpdateSettings(patch SettingsPatch) error {
	if patch.MonthlyBudget != nil {
		s.settings.MonthlyBudget = *patch.MonthlyBudget
	}
	if patch.Currency != nil {
		s.settings.Currency = *patch.Currency
	}
	if patch.DarkMode != nil {
		s.settings.DarkMode = *patch.DarkMode
	}
	return s.persist(storage.KeySettings, s.settings)
}

// Reset wipes the durable mirror entirely and replaces all collections with
// their defaults. Irreversible; callers gate it behind an explicit
// confirmation. The process is expected to exit after a reset so no stale
// state survives.
func (s *Store) Reset() error {
	if err := s.mirror.Clear(); err != nil {
		return fmt.Errorf("failed to clear storage: %w", err)
	}
	s.expenses = nil
	s.categories = model.DefaultCategories()
	s.settings = model.DefaultSettings()
	slog.Info("ledger reset to defaults")
	return nil
}

// Clock returns the store's clock, shared with collaborators that need
// consistent time.
func (s *Store) Clock() Clock {
	return s.clock
}

func (s *Store) persistExpenses() error {
	return s.persist(storage.KeyExpenses, s.expenses)
}

func (s *Store) persistCategories() error {
	return s.persist(storage.KeyCategories, s.categories)
}

func (s *Store) persist(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := s.mirror.Set(key, raw); err != nil {
		return fmt.Errorf("failed to persist %s: %w", key, err)
	}
	return nil
}

package ledger

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hearthledger/hearth/internal/model"
	"github.com/hearthledger/hearth/internal/storage"
)

type fixedClock struct {
	t time.Time
}

func (c fixedClock) Now() time.Time { return c.t }

type seqIDSource struct {
	n int
}

func (s *seqIDSource) NewID() string {
	s.n++
	return fmt.Sprintf("id-%04d", s.n)
}

type fixedColorSource struct {
	color string
}

func (c fixedColorSource) HexColor() string { return c.color }

func newTestStore(t *testing.T) (*Store, *storage.MemoryStore) {
	t.Helper()
	mem := storage.NewMemoryStore()
	store, err := Open(mem,
		WithClock(fixedClock{t: time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)}),
		WithIDSource(&seqIDSource{}),
	)
	require.NoError(t, err)
	return store, mem
}

func TestOpenSeedsDefaults(t *testing.T) {
	store, _ := newTestStore(t)

	assert.Empty(t, store.Expenses())
	assert.Equal(t, model.DefaultCategories(), store.Categories())
	assert.Equal(t, model.DefaultSettings(), store.Settings())
}

func TestOpenPrefersMirror(t *testing.T) {
	mem := storage.NewMemoryStore()
	cats := []model.Category{{ID: "9", Name: "Pets", Color: "#112233", BudgetLimit: 50, IsCustom: true}}
	raw, err := json.Marshal(cats)
	require.NoError(t, err)
	require.NoError(t, mem.Set(storage.KeyCategories, raw))

	store, err := Open(mem)
	require.NoError(t, err)
	assert.Equal(t, cats, store.Categories())
	// Settings record absent, so defaults still apply.
	assert.Equal(t, model.DefaultSettings(), store.Settings())
}

func TestAddExpensePrependsMostRecentFirst(t *testing.T) {
	store, _ := newTestStore(t)

	first, err := store.AddExpense(model.Expense{Amount: 10, Description: "first"})
	require.NoError(t, err)
	second, err := store.AddExpense(model.Expense{Amount: 20, Description: "second"})
	require.NoError(t, err)

	expenses := store.Expenses()
	require.Len(t, expenses, 2)
	assert.Equal(t, second, expenses[0].ID)
	assert.Equal(t, first, expenses[1].ID)
}

func TestUpdateExpenseMergesPartialFields(t *testing.T) {
	store, _ := newTestStore(t)

	id, err := store.AddExpense(model.Expense{
		Date:        model.NewDate(2026, time.August, 1),
		Amount:      10,
		CategoryID:  "1",
		Description: "rent",
	})
	require.NoError(t, err)

	amount := 12.5
	require.NoError(t, store.UpdateExpense(id, ExpensePatch{Amount: &amount}))

	e := store.Expenses()[0]
	assert.Equal(t, 12.5, e.Amount)
	// Untouched fields survive the merge.
	assert.Equal(t, "rent", e.Description)
	assert.Equal(t, "1", e.CategoryID)
	assert.Equal(t, model.NewDate(2026, time.August, 1), e.Date)
}

func TestUpdateExpenseMissingIDIsNoOp(t *testing.T) {
	store, _ := newTestStore(t)

	amount := 99.0
	require.NoError(t, store.UpdateExpense("no-such-id", ExpensePatch{Amount: &amount}))
	assert.Empty(t, store.Expenses())
}

func TestDeleteExpenseIsIdempotent(t *testing.T) {
	store, _ := newTestStore(t)

	id, err := store.AddExpense(model.Expense{Amount: 10})
	require.NoError(t, err)

	require.NoError(t, store.DeleteExpense(id))
	assert.Empty(t, store.Expenses())

	// Second delete of the same id is a no-op, not an error.
	require.NoError(t, store.DeleteExpense(id))
}

func TestAddCategoryForcesCustomFlag(t *testing.T) {
	store, _ := newTestStore(t)

	id, err := store.AddCategory(model.Category{
		Name:     "Gifts",
		Color:    "#ABCDEF",
		IsCustom: false,
	})
	require.NoError(t, err)

	cat, ok := store.CategoryByID(id)
	require.True(t, ok)
	assert.True(t, cat.IsCustom)
	// New categories append after the seeds.
	cats := store.Categories()
	assert.Equal(t, id, cats[len(cats)-1].ID)
}

func TestDeleteCategoryLeavesReferencingExpenses(t *testing.T) {
	store, _ := newTestStore(t)

	catID, err := store.AddCategory(model.Category{Name: "Gifts", Color: "#ABCDEF"})
	require.NoError(t, err)
	_, err = store.AddExpense(model.Expense{Amount: 30, CategoryID: catID})
	require.NoError(t, err)

	require.NoError(t, store.DeleteCategory(catID))

	_, ok := store.CategoryByID(catID)
	assert.False(t, ok)

	// The expense keeps its dangling reference.
	expenses := store.Expenses()
	require.Len(t, expenses, 1)
	assert.Equal(t, catID, expenses[0].CategoryID)
}

func TestUpdateSettingsMerges(t *testing.T) {
	store, _ := newTestStore(t)

	currency := "EUR"
	require.NoError(t, store.UpdateSettings(SettingsPatch{Currency: &currency}))

	s := store.Settings()
	assert.Equal(t, "EUR", s.Currency)
	assert.Equal(t, model.DefaultSettings().MonthlyBudget, s.MonthlyBudget)
	assert.Equal(t, model.DefaultSettings().DarkMode, s.DarkMode)
}

func TestWriteThroughDurability(t *testing.T) {
	// Every mutating call must be reflected in the mirror before it
	// returns; there is no flush step.
	store, mem := newTestStore(t)

	id, err := store.AddExpense(model.Expense{Amount: 42, Description: "lamp"})
	require.NoError(t, err)

	raw, err := mem.Get(storage.KeyExpenses)
	require.NoError(t, err)
	var mirrored []model.Expense
	require.NoError(t, json.Unmarshal(raw, &mirrored))
	require.Len(t, mirrored, 1)
	assert.Equal(t, id, mirrored[0].ID)
	assert.Equal(t, 42.0, mirrored[0].Amount)

	require.NoError(t, store.DeleteExpense(id))
	raw, err = mem.Get(storage.KeyExpenses)
	require.NoError(t, err)
	mirrored = nil
	require.NoError(t, json.Unmarshal(raw, &mirrored))
	assert.Empty(t, mirrored)

	catID, err := store.AddCategory(model.Category{Name: "Gifts", Color: "#ABCDEF"})
	require.NoError(t, err)
	raw, err = mem.Get(storage.KeyCategories)
	require.NoError(t, err)
	var cats []model.Category
	require.NoError(t, json.Unmarshal(raw, &cats))
	assert.Equal(t, catID, cats[len(cats)-1].ID)
}

func TestResetRestoresDefaultsAndWipesMirror(t *testing.T) {
	store, mem := newTestStore(t)

	_, err := store.AddExpense(model.Expense{Amount: 10})
	require.NoError(t, err)
	_, err = store.AddCategory(model.Category{Name: "Gifts", Color: "#ABCDEF"})
	require.NoError(t, err)
	budget := 999.0
	require.NoError(t, store.UpdateSettings(SettingsPatch{MonthlyBudget: &budget}))

	require.NoError(t, store.Reset())

	assert.Empty(t, store.Expenses())
	assert.Equal(t, model.DefaultCategories(), store.Categories())
	assert.Equal(t, model.DefaultSettings(), store.Settings())

	for _, key := range []string{storage.KeyExpenses, storage.KeyCategories, storage.KeySettings} {
		raw, err := mem.Get(key)
		require.NoError(t, err)
		assert.Nil(t, raw, "mirror record %q should be wiped", key)
	}
}

package ledger

import (
	"strings"
	"unicode"

	"github.com/hearthledger/hearth/internal/model"
)

// UncategorizedName is the category name substituted for empty input.
const UncategorizedName = "Uncategorized"

// NormalizeCategoryName canonicalizes free-text category names: trimmed,
// then each whitespace-delimited token title-cased. Empty input maps to
// UncategorizedName. The function is idempotent.
func NormalizeCategoryName(raw string) string {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return UncategorizedName
	}
	for i, f := range fields {
		fields[i] = titleCase(strings.ToLower(f))
	}
	return strings.Join(fields, " ")
}

func titleCase(token string) string {
	r := []rune(token)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// Resolver maps free-text category names to category ids, creating missing
// categories on the fly. The batch cache only prevents duplicate creation
// for repeated new names within a single import run; use one Resolver per
// run and discard it afterward.
type Resolver struct {
	store  *Store
	colors ColorSource
	batch  map[string]string
}

// NewResolver creates a Resolver bound to the given store.
func NewResolver(store *Store, colors ColorSource) *Resolver {
	return &Resolver{
		store:  store,
		colors: colors,
		batch:  make(map[string]string),
	}
}

// Resolve returns the id of the category matching raw, creating one when
// neither the store nor the batch cache knows the name.
func (r *Resolver) Resolve(raw string) (string, error) {
	name := NormalizeCategoryName(raw)

	for _, c := range r.store.Categories() {
		if strings.EqualFold(c.Name, name) {
			return c.ID, nil
		}
	}

	if id, ok := r.batch[name]; ok {
		return id, nil
	}

	id, err := r.store.AddCategory(model.Category{
		Name:        name,
		Color:       r.colors.HexColor(),
		BudgetLimit: 0,
	})
	if err != nil {
		return "", err
	}
	r.batch[name] = id
	return id, nil
}

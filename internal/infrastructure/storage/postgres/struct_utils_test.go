package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hanjihoon31-beep/erphan-sub000/internal/domain/catalogs/product"
	"github.com/hanjihoon31-beep/erphan-sub000/internal/domain/catalogs/store"
	"github.com/hanjihoon31-beep/erphan-sub000/internal/domain/records/cash"
)

type Embedded struct {
	Nested string `db:"nested"`
}

type sample struct {
	Embedded
	ID       string `db:"id"`
	Name     string `db:"name"`
	Ignored  string `db:"-"`
	Untagged string
	hidden   string
}

func TestExtractDBColumns(t *testing.T) {
	cols := ExtractDBColumns(&sample{})

	assert.Equal(t, []string{"nested", "id", "name"}, cols)
}

func TestExtractDBColumnsCaches(t *testing.T) {
	first := ExtractDBColumns(sample{})
	second := ExtractDBColumns(&sample{})

	assert.Equal(t, first, second)
}

func TestExtractDBColumnsNonStruct(t *testing.T) {
	assert.Nil(t, ExtractDBColumns(42))
}

// The repos derive their column lists from the model structs; these pin the
// derived order to the schema so a reordered field cannot silently skew an
// insert.
func TestDerivedColumnLists(t *testing.T) {
	assert.Equal(t, []string{"id", "name", "timezone", "is_active"},
		ExtractDBColumns(store.Store{}))
	assert.Equal(t, []string{"id", "name", "unit", "is_active"},
		ExtractDBColumns(product.Product{}))
	assert.Equal(t, []string{
		"id", "store_id", "record_date",
		"deposit", "gift_cards", "vouchers", "carry_over", "morning_check", "discrepancy", "sales",
		"status", "created_at", "updated_at", "version",
	}, ExtractDBColumns(cash.Record{}))
}

func TestStructToMap(t *testing.T) {
	s := &sample{
		Embedded: Embedded{Nested: "deep"},
		ID:       "abc",
		Name:     "widget",
		Ignored:  "skip",
		Untagged: "skip too",
	}

	m := StructToMap(s)

	assert.Equal(t, map[string]any{
		"nested": "deep",
		"id":     "abc",
		"name":   "widget",
	}, m)
}

func TestStructToMapNonStruct(t *testing.T) {
	assert.Nil(t, StructToMap("not a struct"))
}

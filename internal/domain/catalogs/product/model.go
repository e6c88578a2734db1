// Package product provides the Product catalog, read-only to the record
// engine. Unit is the display unit-of-measure printed on daily forms.
package product

import (
	"github.com/hanjihoon31-beep/erphan-sub000/internal/core/id"
)

// Product represents a tracked product.
type Product struct {
	ID       id.ID  `db:"id" json:"id"`
	Name     string `db:"name" json:"name"`
	Unit     string `db:"unit" json:"unit"`
	IsActive bool   `db:"is_active" json:"isActive"`
}

// Package store provides the Store catalog. Store CRUD is owned by the
// back-office admin service; the record engine only reads identity, the
// active flag and the timezone used to cut calendar days.
package store

import (
	"time"

	"github.com/hanjihoon31-beep/erphan-sub000/internal/core/id"
)

// Store represents a retail location that files daily records.
type Store struct {
	ID       id.ID  `db:"id" json:"id"`
	Name     string `db:"name" json:"name"`
	Timezone string `db:"timezone" json:"timezone"`
	IsActive bool   `db:"is_active" json:"isActive"`
}

// Location resolves the store's timezone, falling back to UTC.
func (s *Store) Location() *time.Location {
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Package store implements the tracker's data engine: typed CRUD over the
// entity model, reference checks on every mutation, atomic cascade deletes,
// and the bulk reads that feed the timeline view. HTTP handlers and other
// adapters stay thin and call into this package.
package store

import (
	"gorm.io/gorm"
)

// Search responses cap at an autocomplete-sized page so they stay cheap
// as the people/teams tables grow.
const searchLimit = 20

// Store wraps the database handle with the tracker's integrity rules
type Store struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{DB: db}
}

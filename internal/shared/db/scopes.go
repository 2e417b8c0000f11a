package db

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LockForUpdate is a GORM scope that takes a row-level write lock on the
// selected rows. It only has an effect inside a transaction; repositories use
// it for read-check-write sequences so two concurrent workflow steps on the
// same row cannot both pass their precondition checks.
//
// Example usage:
//
//	db.Scopes(db.LockForUpdate()).First(&model, id)
func LockForUpdate() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Clauses(clause.Locking{Strength: "UPDATE"})
	}
}

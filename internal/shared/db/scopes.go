// Package db provides database utilities including query scopes shared by
// the GORM repositories.
package db

import (
	"gorm.io/gorm"
)

// NotDeleted is a GORM scope that filters out soft-deleted records.
// Use this scope when querying with Model().Where().Count() or similar patterns
// that may not automatically apply soft delete filtering.
func NotDeleted() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("deleted_at IS NULL")
	}
}

// ActiveOnly filters for records that are active at the API level
// (is_active = true). Soft-deactivated records stay addressable by ID but
// are excluded from active listings and derived counts.
func ActiveOnly() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("is_active = ?", true)
	}
}

// Paginate applies limit/offset pagination. A limit of 0 disables paging.
func Paginate(limit, offset int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if limit > 0 {
			db = db.Limit(limit)
		}
		if offset > 0 {
			db = db.Offset(offset)
		}
		return db
	}
}

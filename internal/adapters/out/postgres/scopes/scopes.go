// Package scopes holds query scopes shared by the repository packages.
package scopes

import "gorm.io/gorm"

// NotDeleted filters out soft-deleted rows. Every repository read applies
// it unless the caller explicitly asks for history.
func NotDeleted(db *gorm.DB) *gorm.DB {
	return db.Where("deleted = FALSE")
}

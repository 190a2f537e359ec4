package postgres

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Helper functions for PostgreSQL error checking
func isUniqueConstraintViolation(err error) bool {
	// Check for GORM's duplicate key error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "unique constraint") ||
		strings.Contains(errMsg, "23505") // PostgreSQL unique_violation error code
}

func isForeignKeyConstraintViolation(err error) bool {
	// Check for GORM's foreign key violation error
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	return false
}

// isLockNotAvailable detects a failed FOR UPDATE NOWAIT acquisition.
// PostgreSQL raises lock_not_available (55P03) instead of blocking.
func isLockNotAvailable(err error) bool {
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "could not obtain lock") ||
		strings.Contains(errMsg, "55p03") // PostgreSQL lock_not_available error code
}

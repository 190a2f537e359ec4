package model

import (
	"time"

	"github.com/google/uuid"
)

// PerkReadModelRow mirrors the 'perk_read_models' table maintained by the
// projector worker. The primary key is the perk id itself: upserts by id keep
// redelivered events idempotent.
type PerkReadModelRow struct {
	PerkID      uuid.UUID `gorm:"type:uuid;primary_key"`
	Description string    `gorm:"type:text;not null"`
	Membership  string    `gorm:"type:varchar(50);not null;index"`
	Product     string    `gorm:"type:varchar(50);not null;index"`
	Upvotes     int       `gorm:"not null;default:0"`
	Downvotes   int       `gorm:"not null;default:0"`
	NetScore    int       `gorm:"not null;default:0;index"`
	StartDate   time.Time `gorm:"type:date"`
	EndDate     time.Time `gorm:"type:date"`
	PostedBy    uuid.UUID `gorm:"type:uuid;index"`
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (PerkReadModelRow) TableName() string {
	return "perk_read_models"
}

// UserProfileReadModelRow mirrors the 'user_profile_read_models' table.
// Membership labels are stored denormalized as a comma-joined string; the
// projection is read-only for serving, never queried by label here.
type UserProfileReadModelRow struct {
	UserID      uuid.UUID `gorm:"type:uuid;primary_key"`
	Email       string    `gorm:"type:varchar(255);not null"`
	ProfileID   uuid.UUID `gorm:"type:uuid"`
	Memberships string    `gorm:"type:text;not null;default:''"`
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserProfileReadModelRow) TableName() string {
	return "user_profile_read_models"
}

package model

import (
	"time"

	"github.com/google/uuid"
)

// PerkModel mirrors the 'perks' table. The vote counters are denormalized and
// only ever written while the row lock is held.
type PerkModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Description string    `gorm:"type:text;not null"`
	Membership  string    `gorm:"type:varchar(50);not null;index"`
	Product     string    `gorm:"type:varchar(50);not null;index"`
	Upvotes     int       `gorm:"not null;default:0"`
	Downvotes   int       `gorm:"not null;default:0"`
	StartDate   time.Time `gorm:"type:date;not null"`
	EndDate     time.Time `gorm:"type:date;not null"`
	PostedBy    uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Votes []VoteModel `gorm:"foreignKey:PerkID"`
}

// TableName explicitly sets the table name for GORM.
func (PerkModel) TableName() string {
	return "perks"
}

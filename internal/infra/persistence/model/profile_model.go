package model

import (
	"time"

	"github.com/google/uuid"
)

// ProfileModel mirrors the 'profiles' table. One row per user.
type ProfileModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Memberships []ProfileMembershipModel `gorm:"foreignKey:ProfileID"`
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}

// ProfileMembershipModel mirrors the 'profile_memberships' table: one row per
// membership label held by a profile. The composite unique index gives the
// label set its set semantics at the storage level.
type ProfileMembershipModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProfileID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_profile_membership_label"`
	Label     string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_profile_membership_label"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileMembershipModel) TableName() string {
	return "profile_memberships"
}

package model

import (
	"time"

	"github.com/google/uuid"
)

// VoteModel mirrors the 'votes' table: the vote ledger. The composite unique
// index enforces at most one vote per (user, perk) pair and is the backstop
// for races the perk row lock did not serialize.
type VoteModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_vote_user_perk"`
	PerkID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_vote_user_perk;index"`
	VoteType  string    `gorm:"type:varchar(20);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (VoteModel) TableName() string {
	return "votes"
}

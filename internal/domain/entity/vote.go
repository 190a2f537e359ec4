package entity

import (
	"time"

	"github.com/google/uuid"

	"perkhub/internal/errors"
)

// VoteType is the direction of a vote on a perk.
type VoteType string

const (
	VoteUp   VoteType = "UPVOTE"
	VoteDown VoteType = "DOWNVOTE"
)

// ParseVoteType converts a raw string into a VoteType, case-insensitively.
func ParseVoteType(raw string) (VoteType, error) {
	switch normalizeLabel(raw) {
	case "upvote", "up":
		return VoteUp, nil
	case "downvote", "down":
		return VoteDown, nil
	}

	return "", errors.Errorf("unknown vote type: %q", raw)
}

// Valid reports whether the vote type is one of the two known directions.
func (v VoteType) Valid() bool {
	return v == VoteUp || v == VoteDown
}

// Opposite returns the other direction.
func (v VoteType) Opposite() VoteType {
	if v == VoteUp {
		return VoteDown
	}

	return VoteUp
}

// Vote is one ledger entry recording a user's current stance on a perk.
// The ledger holds at most one Vote per (user, perk) pair; toggling a vote off
// deletes the entry rather than flagging it.
type Vote struct {
	ID        uuid.UUID // The Global Unique Identifier (GUID) for the vote.
	UserID    uuid.UUID // The voter. Part of the (UserID, PerkID) uniqueness rule.
	PerkID    uuid.UUID // The perk voted on. Part of the (UserID, PerkID) uniqueness rule.
	Type      VoteType  // The current direction of the vote.
	CreatedAt time.Time // Timestamp of when this vote was first cast.
	UpdatedAt time.Time // Timestamp of the last direction change.
}

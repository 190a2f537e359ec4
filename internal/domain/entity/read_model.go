package entity

import (
	"time"

	"github.com/google/uuid"
)

// PerkReadModel is the denormalized, query-optimized projection of a perk.
// It is maintained by the projector worker from domain events; writers never
// touch it. Counter fields hold the absolute counts carried by the latest
// event, so replaying a delivery leaves the row unchanged.
type PerkReadModel struct {
	PerkID      uuid.UUID
	Description string
	Membership  string
	Product     string
	Upvotes     int
	Downvotes   int
	NetScore    int
	StartDate   time.Time
	EndDate     time.Time
	PostedBy    uuid.UUID
	UpdatedAt   time.Time
}

// UserProfileReadModel is the projection of a user account and its membership
// labels, maintained from user and membership events.
type UserProfileReadModel struct {
	UserID      uuid.UUID
	Email       string
	ProfileID   uuid.UUID
	Memberships []string
	UpdatedAt   time.Time
}

package usecase

import (
	"context"

	"github.com/google/uuid"
)

// ProfileOutput is the external representation of a membership profile.
type ProfileOutput struct {
	ProfileID   uuid.UUID
	UserID      uuid.UUID
	Memberships []string
}

// ProfileUsecase defines the interface for membership profile use cases.
type ProfileUsecase interface {
	// GetProfile retrieves the membership label set for a user.
	GetProfile(ctx context.Context, userID uuid.UUID) (*ProfileOutput, error)

	// AddMembership adds a label to the user's profile. Adding a label that is
	// already present is a no-op: the unchanged profile comes back and no
	// event is emitted.
	AddMembership(ctx context.Context, userID uuid.UUID, label string) (*ProfileOutput, error)

	// RemoveMembership removes a label from the user's profile. Removing an
	// absent label is a no-op without an event.
	RemoveMembership(ctx context.Context, userID uuid.UUID, label string) (*ProfileOutput, error)
}

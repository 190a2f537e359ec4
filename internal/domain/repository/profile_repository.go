// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"perkhub/internal/domain/entity"
	"perkhub/internal/errors"

	"github.com/google/uuid"
)

// ErrProfileNotFound is returned when a profile is not found.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository defines the interface for membership-profile persistence.
type ProfileRepository interface {
	// FindByUserID retrieves the profile owned by the given user, with its
	// membership labels loaded.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error)

	// AddMembership appends a membership label row to the profile.
	AddMembership(ctx context.Context, profileID uuid.UUID, label string) error

	// RemoveMembership deletes a membership label row from the profile.
	RemoveMembership(ctx context.Context, profileID uuid.UUID, label string) error

	// DeleteByUserID removes the profile and all its membership rows.
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}

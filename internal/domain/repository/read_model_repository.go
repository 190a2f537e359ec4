// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"perkhub/internal/domain/entity"
	"perkhub/internal/errors"

	"github.com/google/uuid"
)

// ErrReadModelNotFound is returned when a projection row does not exist yet.
// The projector treats this as "start from an empty row", never as a failure.
var ErrReadModelNotFound = errors.New("read model not found")

// ReadModelRepository defines the interface for the projection tables the
// worker maintains. All writes are idempotent upserts keyed by subject id.
type ReadModelRepository interface {
	// UpsertPerk inserts or replaces the perk projection row.
	UpsertPerk(ctx context.Context, rm *entity.PerkReadModel) error

	// FindPerk retrieves the perk projection row, or ErrReadModelNotFound.
	FindPerk(ctx context.Context, perkID uuid.UUID) (*entity.PerkReadModel, error)

	// SetPerkUpvotes sets the absolute upvote count on the perk projection row.
	SetPerkUpvotes(ctx context.Context, perkID uuid.UUID, count int) error

	// SetPerkDownvotes sets the absolute downvote count on the perk projection row.
	SetPerkDownvotes(ctx context.Context, perkID uuid.UUID, count int) error

	// UpsertUserProfile inserts or replaces the user profile projection row.
	UpsertUserProfile(ctx context.Context, rm *entity.UserProfileReadModel) error

	// FindUserProfile retrieves the user profile projection row, or ErrReadModelNotFound.
	FindUserProfile(ctx context.Context, userID uuid.UUID) (*entity.UserProfileReadModel, error)
}

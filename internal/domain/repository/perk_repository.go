// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"perkhub/internal/domain/entity"
	"perkhub/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for perk persistence.
var (
	// ErrPerkNotFound is returned when a perk is not found.
	ErrPerkNotFound = errors.New("perk not found")
	// ErrPerkLocked is returned when the perk row lock could not be acquired
	// immediately. The condition is transient; the caller may retry.
	ErrPerkLocked = errors.New("perk row is locked by another transaction")
)

// PerkRepository defines the interface for perk-related database operations.
type PerkRepository interface {
	// Create persists a new perk entity.
	Create(ctx context.Context, perk *entity.Perk) error

	// FindByID retrieves a perk by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Perk, error)

	// FindByIDForUpdate retrieves a perk by ID holding a row lock for the
	// duration of the surrounding transaction. The lock is acquired with
	// NOWAIT: if another transaction holds it, ErrPerkLocked is returned
	// immediately instead of blocking.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Perk, error)

	// UpdateCounters persists the perk's vote counters.
	UpdateCounters(ctx context.Context, perk *entity.Perk) error

	// FindAll retrieves all perks, newest first.
	FindAll(ctx context.Context) ([]*entity.Perk, error)

	// FindByMembership retrieves all perks requiring the given membership type.
	FindByMembership(ctx context.Context, membership entity.MembershipType) ([]*entity.Perk, error)

	// FindByProduct retrieves all perks for the given product category.
	FindByProduct(ctx context.Context, product entity.ProductType) ([]*entity.Perk, error)

	// FindAllByVotes retrieves all perks ordered by upvote count descending.
	FindAllByVotes(ctx context.Context) ([]*entity.Perk, error)

	// FindByMemberships retrieves all perks whose membership type is in the set.
	FindByMemberships(ctx context.Context, memberships []entity.MembershipType) ([]*entity.Perk, error)

	// FindByPostedBy retrieves all perks posted by the given user.
	FindByPostedBy(ctx context.Context, userID uuid.UUID) ([]*entity.Perk, error)
}

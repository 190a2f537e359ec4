// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"perkhub/internal/domain/entity"
	"perkhub/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for vote persistence.
var (
	// ErrVoteNotFound is returned when no ledger entry exists for a lookup.
	// Absence is an expected state, not a failure.
	ErrVoteNotFound = errors.New("vote not found")
	// ErrDuplicateVote is returned when the (user, perk) uniqueness rule is
	// violated, meaning a concurrent writer created the entry first.
	ErrDuplicateVote = errors.New("vote already exists for this user and perk")
)

// VoteRepository defines the interface for the vote ledger.
type VoteRepository interface {
	// FindByUserAndPerk retrieves the single ledger entry for the pair,
	// or ErrVoteNotFound.
	FindByUserAndPerk(ctx context.Context, userID, perkID uuid.UUID) (*entity.Vote, error)

	// FindByUser retrieves all ledger entries cast by the given user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Vote, error)

	// Create persists a new ledger entry. A concurrent insert for the same
	// (user, perk) pair surfaces as ErrDuplicateVote.
	Create(ctx context.Context, vote *entity.Vote) error

	// UpdateType changes the direction of an existing ledger entry.
	UpdateType(ctx context.Context, id uuid.UUID, voteType entity.VoteType) error

	// Delete removes a ledger entry.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByUser removes all ledger entries cast by the given user.
	DeleteByUser(ctx context.Context, userID uuid.UUID) error
}

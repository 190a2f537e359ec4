package usecase

import (
	"context"
	"time"

	"perkhub/internal/domain/entity"

	"github.com/google/uuid"
)

// CreatePerkInput carries the data needed to post a new perk.
type CreatePerkInput struct {
	UserID      uuid.UUID
	Description string
	Membership  string
	Product     string
	StartDate   time.Time
	EndDate     time.Time
}

// VoteResult is the outcome of a cast vote: the perk's counters after the
// state transition, whatever it was (create, toggle-off or switch).
type VoteResult struct {
	PerkID    uuid.UUID
	Upvotes   int
	Downvotes int
}

// PerkUsecase defines the interface for perk posting, voting and queries.
type PerkUsecase interface {
	// CreatePerk validates and persists a new perk posted by the given user.
	CreatePerk(ctx context.Context, input *CreatePerkInput) (*entity.Perk, error)

	// CastVote applies one vote action against a perk. The outcome depends on
	// the voter's existing ledger entry: none creates a vote, the same
	// direction toggles it off, the opposite direction switches it. The vote
	// and the counter change commit atomically.
	CastVote(ctx context.Context, userID, perkID uuid.UUID, direction entity.VoteType) (*VoteResult, error)

	// GetPerk retrieves a single perk.
	GetPerk(ctx context.Context, perkID uuid.UUID) (*entity.Perk, error)

	// ListPerks retrieves all perks, newest first.
	ListPerks(ctx context.Context) ([]*entity.Perk, error)

	// ListPerksByMembership retrieves perks requiring the given membership.
	ListPerksByMembership(ctx context.Context, membership entity.MembershipType) ([]*entity.Perk, error)

	// ListPerksByProduct retrieves perks for the given product category.
	ListPerksByProduct(ctx context.Context, product entity.ProductType) ([]*entity.Perk, error)

	// ListPerksByVotes retrieves all perks ordered by upvote count descending.
	ListPerksByVotes(ctx context.Context) ([]*entity.Perk, error)

	// ListPerksMatchingProfile retrieves perks whose membership type matches
	// any label in the user's profile.
	ListPerksMatchingProfile(ctx context.Context, userID uuid.UUID) ([]*entity.Perk, error)

	// ListPerksByUser retrieves perks posted by the given user.
	ListPerksByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Perk, error)
}

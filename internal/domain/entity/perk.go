package entity

import (
	"time"

	"github.com/google/uuid"
)

// Perk is a time-boxed offer tied to a membership type and product category.
// Its upvote/downvote counters are denormalized from the vote ledger and may
// only be mutated through ApplyVote/RetractVote so they can never go negative
// or drift from each other.
type Perk struct {
	ID          uuid.UUID      // The Global Unique Identifier (GUID) for the perk.
	Description string         // Free-text description; never blank.
	Membership  MembershipType // The membership program required for the perk.
	Product     ProductType    // The product category the perk applies to.
	Upvotes     int            // Denormalized upvote count, always >= 0.
	Downvotes   int            // Denormalized downvote count, always >= 0.
	StartDate   time.Time      // First day the perk is valid.
	EndDate     time.Time      // Last day the perk is valid; never before StartDate.
	PostedBy    uuid.UUID      // The ID of the user who posted the perk.
	CreatedAt   time.Time      // Timestamp of when this perk was created.
	UpdatedAt   time.Time      // Timestamp of the last modification to this perk.
}

// ApplyVote increments the counter for the given direction.
func (p *Perk) ApplyVote(direction VoteType) {
	switch direction {
	case VoteUp:
		p.Upvotes++
	case VoteDown:
		p.Downvotes++
	}
}

// RetractVote decrements the counter for the given direction, clamping at zero.
// The ledger guarantees a matching increment happened earlier, so the clamp is
// a backstop, not an expected path.
func (p *Perk) RetractVote(direction VoteType) {
	switch direction {
	case VoteUp:
		if p.Upvotes > 0 {
			p.Upvotes--
		}
	case VoteDown:
		if p.Downvotes > 0 {
			p.Downvotes--
		}
	}
}

// NetScore returns upvotes minus downvotes. It is always derived and never
// stored, so it cannot drift from its components.
func (p *Perk) NetScore() int {
	return p.Upvotes - p.Downvotes
}

// ActiveOn reports whether the perk is valid on the given day.
func (p *Perk) ActiveOn(day time.Time) bool {
	d := day.Truncate(24 * time.Hour)

	return !d.Before(p.StartDate.Truncate(24*time.Hour)) && !d.After(p.EndDate.Truncate(24*time.Hour))
}

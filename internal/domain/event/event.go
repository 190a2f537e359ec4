// Package event defines the immutable domain event records published after
// successful state changes. Events are facts: they carry the data a consumer
// needs to update a read model without querying the write store.
package event

import "time"

// Event type names, carried as the event_type message attribute so consumers
// can dispatch without decoding the payload.
const (
	TypePerkCreated       = "perk.created"
	TypePerkUpvoted       = "perk.upvoted"
	TypePerkDownvoted     = "perk.downvoted"
	TypeUserRegistered    = "user.registered"
	TypeMembershipAdded   = "membership.added"
	TypeMembershipRemoved = "membership.removed"
)

// Event is the common shape of all domain events.
// Key returns the ordering key: the id of the subject the event is about, so
// events about the same perk or user are delivered in publish order.
type Event interface {
	EventType() string
	Key() string
}

// PerkCreated records that a new perk was posted.
type PerkCreated struct {
	PerkID      string    `json:"perk_id"`
	Description string    `json:"description"`
	Membership  string    `json:"membership"`
	Product     string    `json:"product"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	PostedBy    string    `json:"posted_by"`
	OccurredAt  time.Time `json:"occurred_at"`
}

func (e *PerkCreated) EventType() string { return TypePerkCreated }
func (e *PerkCreated) Key() string       { return e.PerkID }

// PerkUpvoted records a change to a perk's upvote counter. It carries the new
// absolute count, not a delta, so redelivery cannot double-count.
type PerkUpvoted struct {
	PerkID         string    `json:"perk_id"`
	NewUpvoteCount int       `json:"new_upvote_count"`
	OccurredAt     time.Time `json:"occurred_at"`
}

func (e *PerkUpvoted) EventType() string { return TypePerkUpvoted }
func (e *PerkUpvoted) Key() string       { return e.PerkID }

// PerkDownvoted records a change to a perk's downvote counter, carrying the
// new absolute count.
type PerkDownvoted struct {
	PerkID           string    `json:"perk_id"`
	NewDownvoteCount int       `json:"new_downvote_count"`
	OccurredAt       time.Time `json:"occurred_at"`
}

func (e *PerkDownvoted) EventType() string { return TypePerkDownvoted }
func (e *PerkDownvoted) Key() string       { return e.PerkID }

// UserRegistered records that a new account (with its empty profile) was created.
type UserRegistered struct {
	UserID     string    `json:"user_id"`
	Email      string    `json:"email"`
	OccurredAt time.Time `json:"occurred_at"`
}

func (e *UserRegistered) EventType() string { return TypeUserRegistered }
func (e *UserRegistered) Key() string       { return e.UserID }

// MembershipAdded records that a membership label was added to a profile.
type MembershipAdded struct {
	UserID     string    `json:"user_id"`
	ProfileID  string    `json:"profile_id"`
	Membership string    `json:"membership"`
	OccurredAt time.Time `json:"occurred_at"`
}

func (e *MembershipAdded) EventType() string { return TypeMembershipAdded }
func (e *MembershipAdded) Key() string       { return e.UserID }

// MembershipRemoved records that a membership label was removed from a profile.
type MembershipRemoved struct {
	UserID     string    `json:"user_id"`
	ProfileID  string    `json:"profile_id"`
	Membership string    `json:"membership"`
	OccurredAt time.Time `json:"occurred_at"`
}

func (e *MembershipRemoved) EventType() string { return TypeMembershipRemoved }
func (e *MembershipRemoved) Key() string       { return e.UserID }

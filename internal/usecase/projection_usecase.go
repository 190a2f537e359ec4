package usecase

import (
	"context"

	"perkhub/internal/domain/event"
)

// ProjectionUsecase applies domain events to the read-model tables. Every
// method is idempotent: the channel delivers at least once, so a redelivered
// event must leave the projection in the same state as the first delivery.
type ProjectionUsecase interface {
	ApplyPerkCreated(ctx context.Context, evt *event.PerkCreated) error
	ApplyPerkUpvoted(ctx context.Context, evt *event.PerkUpvoted) error
	ApplyPerkDownvoted(ctx context.Context, evt *event.PerkDownvoted) error
	ApplyUserRegistered(ctx context.Context, evt *event.UserRegistered) error
	ApplyMembershipAdded(ctx context.Context, evt *event.MembershipAdded) error
	ApplyMembershipRemoved(ctx context.Context, evt *event.MembershipRemoved) error
}

package service

import (
	"context"

	"perkhub/internal/domain/event"
)

// EventEmitter is the fire-and-forget facade the write path uses to announce
// state changes. Emit methods return nothing: dispatch happens asynchronously,
// success is logged at info, failure at warn, and no outcome ever reaches the
// caller. A failed emission loses the event; the write itself stands.
type EventEmitter interface {
	EmitPerkCreated(ctx context.Context, evt *event.PerkCreated)
	EmitPerkUpvoted(ctx context.Context, evt *event.PerkUpvoted)
	EmitPerkDownvoted(ctx context.Context, evt *event.PerkDownvoted)
	EmitUserRegistered(ctx context.Context, evt *event.UserRegistered)
	EmitMembershipAdded(ctx context.Context, evt *event.MembershipAdded)
	EmitMembershipRemoved(ctx context.Context, evt *event.MembershipRemoved)
}

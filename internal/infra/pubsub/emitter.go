package pubsub

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "perkhub/internal/delivery/context"
	"perkhub/internal/domain/event"
	"perkhub/internal/domain/service"

	"go.uber.org/fx"
)

const emitTimeout = 30 * time.Second

// eventEmitter implements the fire-and-forget EventEmitter on top of an
// EventPublisher. Each emit dispatches on its own goroutine with a detached
// context: the write path's request may finish or be canceled while the
// publish is still in flight, and a publish failure is logged and dropped.
type eventEmitter struct {
	publisher service.EventPublisher
	logger    *slog.Logger
}

// EmitterParams holds dependencies for EventEmitter, injected by Fx
type EmitterParams struct {
	fx.In

	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewEventEmitter is the constructor for eventEmitter.
func NewEventEmitter(params EmitterParams) service.EventEmitter {
	return &eventEmitter{
		publisher: params.Publisher,
		logger:    params.Logger,
	}
}

func (e *eventEmitter) EmitPerkCreated(ctx context.Context, evt *event.PerkCreated) {
	e.emit(ctx, evt)
}

func (e *eventEmitter) EmitPerkUpvoted(ctx context.Context, evt *event.PerkUpvoted) {
	e.emit(ctx, evt)
}

func (e *eventEmitter) EmitPerkDownvoted(ctx context.Context, evt *event.PerkDownvoted) {
	e.emit(ctx, evt)
}

func (e *eventEmitter) EmitUserRegistered(ctx context.Context, evt *event.UserRegistered) {
	e.emit(ctx, evt)
}

func (e *eventEmitter) EmitMembershipAdded(ctx context.Context, evt *event.MembershipAdded) {
	e.emit(ctx, evt)
}

func (e *eventEmitter) EmitMembershipRemoved(ctx context.Context, evt *event.MembershipRemoved) {
	e.emit(ctx, evt)
}

func (e *eventEmitter) emit(ctx context.Context, evt event.Event) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, e.logger)

	// Keep context values (request id) but detach from request cancellation.
	detached := context.WithoutCancel(ctx)

	go func() {
		publishCtx, cancel := context.WithTimeout(detached, emitTimeout)
		defer cancel()

		if err := e.publisher.Publish(publishCtx, evt); err != nil {
			logger.Warn("Event publish failed, dropping event",
				slog.String("event_type", evt.EventType()),
				slog.String("key", evt.Key()),
				slog.Any("error", err),
			)

			return
		}

		logger.Info("Event published",
			slog.String("event_type", evt.EventType()),
			slog.String("key", evt.Key()),
		)
	}()
}

package pubsub

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"perkhub/internal/domain/event"
	mockSvc "perkhub/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func createTestEmitter(t *testing.T) (*eventEmitter, *mockSvc.MockEventPublisher) {
	publisher := mockSvc.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	emitter := NewEventEmitter(EmitterParams{
		Publisher: publisher,
		Logger:    logger,
	})

	return emitter.(*eventEmitter), publisher
}

func TestEventEmitter_PublishesAsynchronously(t *testing.T) {
	emitter, publisher := createTestEmitter(t)

	published := make(chan event.Event, 1)
	publisher.EXPECT().
		Publish(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, evt event.Event) error {
			published <- evt
			return nil
		})

	evt := &event.PerkUpvoted{PerkID: "perk-1", NewUpvoteCount: 3}
	emitter.EmitPerkUpvoted(context.Background(), evt)

	select {
	case got := <-published:
		assert.Equal(t, evt, got)
	case <-time.After(time.Second):
		t.Fatal("publish was never called")
	}
}

func TestEventEmitter_SurvivesCanceledRequestContext(t *testing.T) {
	emitter, publisher := createTestEmitter(t)

	published := make(chan struct{}, 1)
	publisher.EXPECT().
		Publish(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, evt event.Event) error {
			assert.NoError(t, ctx.Err())
			published <- struct{}{}
			return nil
		})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	emitter.EmitUserRegistered(ctx, &event.UserRegistered{UserID: "user-1"})

	select {
	case <-published:
	case <-time.After(time.Second):
		t.Fatal("publish was never called")
	}
}

func TestEventEmitter_DropsFailedPublish(t *testing.T) {
	emitter, publisher := createTestEmitter(t)

	published := make(chan struct{}, 1)
	publisher.EXPECT().
		Publish(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, evt event.Event) error {
			published <- struct{}{}
			return errors.New("broker unavailable")
		})

	// The write path already committed; a failed publish must not surface.
	emitter.EmitMembershipAdded(context.Background(), &event.MembershipAdded{
		UserID:     "user-1",
		Membership: "Visa",
	})

	select {
	case <-published:
	case <-time.After(time.Second):
		t.Fatal("publish was never called")
	}
}

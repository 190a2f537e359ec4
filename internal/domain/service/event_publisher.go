// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import (
	"context"

	"perkhub/internal/domain/event"
)

// EventPublisher defines the interface for delivering a domain event to the
// propagation channel. Implementations are synchronous and report transport
// failures; asynchrony and error swallowing belong to the EventEmitter.
type EventPublisher interface {
	// Publish sends the event, keyed by event.Key() for ordered delivery and
	// tagged with its event type for consumer dispatch.
	Publish(ctx context.Context, evt event.Event) error

	// Close releases any resources held by the publisher.
	Close() error
}

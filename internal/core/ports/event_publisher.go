package ports

import (
	"context"

	"smallsquare/internal/core/domain/model/order"
)

// OrderEventPublisher emits order lifecycle events for downstream consumers
// (kitchen displays, tracking views). Publication is bookkeeping on top of
// the committed state: handlers publish after a successful commit and treat
// publish failures as log-worthy, never as request failures.
type OrderEventPublisher interface {
	// PublishOrderCreated emits an event for a freshly created order.
	PublishOrderCreated(ctx context.Context, aggregate *order.Order) error

	// PublishOrderStatusChanged emits an event after a status transition.
	PublishOrderStatusChanged(ctx context.Context, aggregate *order.Order) error
}

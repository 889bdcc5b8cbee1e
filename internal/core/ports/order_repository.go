// Package ports defines the interfaces between the domain core and
// infrastructure adapters. These interfaces establish contracts for
// persistence, the identity microservice, and event publication, enabling
// dependency inversion and testability.
package ports

import (
	"context"

	"smallsquare/internal/core/domain/model/kernel"
	"smallsquare/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are stored together with their owned line items; loading an order
// always loads its complete line-item collection.
type OrderRepository interface {
	// Add persists a new order aggregate together with its line items.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// Only status and chef assignment change after creation; line items are immutable.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier,
	// including its line items.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByClientAndStatus retrieves one order of the given client currently
	// in the given status. Used by order creation to reject clients that
	// already have an order in process.
	GetByClientAndStatus(ctx context.Context, clientID kernel.UUID, status order.Status) (*order.Order, error)
}

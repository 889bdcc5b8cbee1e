// Package order provides domain entities and business logic for the order
// lifecycle in the marketplace system. It implements the Order aggregate root
// with its owned line items and the status state machine.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, references, and lifecycle
//   - LineItem: A dish-and-quantity entry owned by an order
//   - Status: A state machine with distinct delivery-path and cancellation-path guards
//
// Key business rules:
//   - Orders are created in Pending status with no chef assigned
//   - A chef binds to an order exactly once, with no reassignment
//   - Delivered is only reachable from Ready, and a delivered order may only
//     move back to Ready
//   - Only Pending orders may be cancelled
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order

// Package services provides domain services that orchestrate business rules
// across multiple domain entities in the marketplace system. It implements
// logic that doesn't naturally belong to a single aggregate root.
//
// The package includes:
//   - DishMembershipValidator: confirms dishes referenced by an order belong
//     to the restaurant the order targets
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services

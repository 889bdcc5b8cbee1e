package kernel

import (
	"fmt"

	"smallsquare/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed indicates that a UUID was not properly initialized through one of the constructor functions.
// This error is returned when validating a zero-value UUID.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID, UUIDFromString, or UUIDFromBytes")

// UUID is the shared identifier value object for every aggregate and entity
// in the marketplace: orders, restaurants, dishes, employees and the clients
// referenced from the identity service all carry one. It wraps
// github.com/google/uuid so the domain can validate and compare identifiers
// without leaking the library type.
//
// The zero value is invalid and fails Validate; identifiers must come from
// NewUUID, UUIDFromString, or UUIDFromBytes. UUID is immutable and safe for
// concurrent use.
//
// Example usage:
//
//	// Mint an identifier for a new order
//	orderID := kernel.NewUUID()
//
//	// Parse a restaurant id arriving in a request path
//	restaurantID, err := kernel.UUIDFromString(ctx.Param("restaurantId"))
//	if err != nil {
//	    // handle error
//	}
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a new random UUID (version 4).
// This is how new aggregates get their identity: order creation, restaurant
// registration and dish creation all mint their ids here.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	fmt.Println(orderID.String()) // e.g., "550e8400-e29b-41d4-a716-446655440000"
func NewUUID() UUID {
	return UUID{
		id: uuid.New(),
	}
}

// UUIDFromString parses a UUID from its string representation.
// It accepts standard UUID formats including:
//   - "6ba7b810-9dad-11d1-80b4-00c04fd430c8"
//   - "{6ba7b810-9dad-11d1-80b4-00c04fd430c8}"
//   - "urn:uuid:6ba7b810-9dad-11d1-80b4-00c04fd430c8"
//
// Returns an error if the string is not a valid UUID format. The HTTP layer
// uses this for path parameters and the X-Client-Id header; the read models
// use it when reconstructing ids from query rows.
//
// Example:
//
//	clientID, err := kernel.UUIDFromString(header)
//	if err != nil {
//	    return fmt.Errorf("invalid client id: %w", err)
//	}
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	return UUID{id: id}, nil
}

// UUIDFromBytes creates a UUID from a byte slice.
// The byte slice must be exactly 16 bytes long, and the nil UUID is rejected.
// This is the path requests take when bodies carry binary-decoded ids, and
// repositories take when restoring aggregates from uuid columns.
//
// Example:
//
//	dishID, err := kernel.UUIDFromBytes(dto.DishID[:])
//	if err != nil {
//	    return fmt.Errorf("invalid dish id: %w", err)
//	}
func UUIDFromBytes(b []byte) (UUID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	newID := UUID{id: id}
	if err = newID.Validate(); err != nil {
		return UUID{}, err
	}

	return newID, nil
}

// String returns the standard string representation of the UUID,
// "xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx". For a zero value this returns the
// nil UUID string.
//
// Used for logging, for binding ids into raw read-model SQL, and for calls
// to the identity service.
//
// Example:
//
//	logger.Info("order created", "orderId", orderID.String())
func (u UUID) String() string {
	return u.id.String()
}

// Bytes returns the underlying UUID value.
// Note: This returns the internal uuid.UUID type, not a byte slice.
// For a byte slice representation, use id.Bytes()[:].
//
// The persistence DTOs and the HTTP transport types store ids as uuid.UUID,
// so mapping to and from them goes through this accessor.
//
// Example:
//
//	dto := OrderDTO{ID: aggregate.ID().Bytes()}
func (u UUID) Bytes() uuid.UUID {
	return u.id
}

// IsEqual compares two UUIDs for equality.
// Returns true if both UUIDs represent the same value, false otherwise.
//
// Example:
//
//	if !aggregate.RestaurantID().IsEqual(cmd.RestaurantID()) {
//	    // the order belongs to another restaurant
//	}
func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// Validate checks if the UUID is properly constructed.
// Returns ErrUUIDIsNotConstructed if the UUID is a zero value (nil UUID).
// A valid UUID is any UUID that was created through one of the constructor functions.
//
// Commands and queries call this on every id they carry, so an
// unconstructed identifier is rejected before it reaches a handler.
//
// Example:
//
//	func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
//	    if err := orderID.Validate(); err != nil {
//	        return GetOrderQuery{}, err
//	    }
//	    // ...
//	}
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}

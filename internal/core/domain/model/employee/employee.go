// Package employee provides the Employee entity: a kitchen staff member
// ("chef") associated with exactly one restaurant. Employees are created by
// the registration flow and are read-only for the order lifecycle, which
// resolves them when validating chef references and assignments.
package employee

import (
	"errors"

	"smallsquare/internal/core/domain/model/kernel"
	"smallsquare/internal/pkg/guard"
)

// ErrEmployeeIsNotConstructed is returned when using an improperly initialized Employee.
var ErrEmployeeIsNotConstructed = errors.New("Employee must be created via NewEmployee constructor")

// Employee links a user of the identity service to the restaurant they cook for.
type Employee struct {
	id           kernel.UUID
	userID       kernel.UUID
	restaurantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewEmployee creates an Employee binding a user to a restaurant.
// All three identifiers must be valid.
func NewEmployee(id kernel.UUID, userID kernel.UUID, restaurantID kernel.UUID) (*Employee, error) {
	if err := errors.Join(
		id.Validate(),
		userID.Validate(),
		restaurantID.Validate(),
	); err != nil {
		return nil, err
	}

	return &Employee{
		id:           id,
		userID:       userID,
		restaurantID: restaurantID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// RestoreEmployee reconstructs an Employee from a persisted state.
// Intended for repositories; business code should use NewEmployee.
func RestoreEmployee(id kernel.UUID, userID kernel.UUID, restaurantID kernel.UUID) (*Employee, error) {
	return NewEmployee(id, userID, restaurantID)
}

// Validate ensures the Employee was created through NewEmployee.
func (e *Employee) Validate() error {
	if e == nil {
		return ErrEmployeeIsNotConstructed
	}
	return e.guard.Validate(ErrEmployeeIsNotConstructed)
}

// ID returns the employee's unique identifier.
func (e *Employee) ID() kernel.UUID {
	return e.id
}

// UserID returns the identity-service user this employee corresponds to.
func (e *Employee) UserID() kernel.UUID {
	return e.userID
}

// RestaurantID returns the restaurant this employee cooks for.
func (e *Employee) RestaurantID() kernel.UUID {
	return e.restaurantID
}

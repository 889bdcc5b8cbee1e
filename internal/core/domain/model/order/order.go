package order

import (
	"errors"
	"fmt"
	"time"

	"smallsquare/internal/core/domain/model/kernel"
	"smallsquare/internal/pkg/errs"
	"smallsquare/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory functions.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrOrderAlreadyAssigned is returned when assigning a chef to an order
	// that already has one. A chef binds to an order exactly once.
	ErrOrderAlreadyAssigned = errs.NewConflictError("order is already assigned to a chef")
)

// Order represents a client's request for dishes from one restaurant,
// tracked through a status workflow. It is the aggregate root of the order
// lifecycle: once created, it is mutated only through chef assignment and
// the two status-transition paths.
//
// Order maintains these invariants:
//   - Must have valid identifiers for the order itself, the client and the restaurant
//   - Must own at least one line item, each referencing a distinct dish
//   - Starts in Pending status; later statuses are reached only through
//     UpdateDeliveryStatus and UpdateCancellationStatus
//   - The chef reference, once set, never changes
//
// The struct uses private fields to ensure encapsulation; state changes go
// through validated methods only.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// date is the business date the order was placed for
	date time.Time

	// status is the current state in the order lifecycle
	status Status

	// description is the client's free-form note for the kitchen
	description string

	// clientID identifies the client who placed the order
	clientID kernel.UUID

	// restaurantID identifies the restaurant the order targets
	restaurantID kernel.UUID

	// chefID is the assigned kitchen employee's ID (nil until assignment)
	chefID *kernel.UUID

	// lines are the dish-and-quantity entries owned by this order
	lines []LineItem

	// guard ensures the order was created via a constructor
	guard guard.ConstructorGuard
}

// NewOrder creates a new Order in Pending status with no chef assigned.
// This is the only way to create a fresh order, ensuring all business
// invariants hold from the start.
//
// Parameters:
//   - id: unique identifier for the order
//   - date: business date of the order (must not be zero)
//   - description: client's note for the kitchen (must not be empty)
//   - clientID: identifier of the ordering client
//   - restaurantID: identifier of the target restaurant
//   - lines: owned line items (at least one, distinct dishes)
//
// Returns a validation error if any parameter is invalid. Whether the
// referenced restaurant and dishes actually exist, and whether the dishes
// belong to the restaurant, is checked by the creation use case against
// the stores; the aggregate only enforces structural invariants.
//
// Example:
//
//	item, _ := order.NewLineItem(dishID, 2)
//	o, err := order.NewOrder(kernel.NewUUID(), date, "no onions", clientID, restaurantID, []order.LineItem{item})
//	if err != nil {
//	    // handle validation error
//	}
func NewOrder(
	id kernel.UUID,
	date time.Time,
	description string,
	clientID kernel.UUID,
	restaurantID kernel.UUID,
	lines []LineItem,
) (*Order, error) {
	order := &Order{
		status: Pending,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setDate(date),
		order.setDescription(description),
		order.setClientID(clientID),
		order.setRestaurantID(restaurantID),
		order.setLines(lines),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage.
// Unlike NewOrder, which always starts orders in Pending with no chef,
// this constructor restores a previously persisted state including the
// current status and any chef assignment.
//
// Returns a validation error if any restored value is invalid, which
// signals corrupted persisted state rather than a caller mistake.
func RestoreOrder(
	id kernel.UUID,
	date time.Time,
	status Status,
	description string,
	clientID kernel.UUID,
	restaurantID kernel.UUID,
	chefID *kernel.UUID,
	lines []LineItem,
) (*Order, error) {
	order := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setDate(date),
		order.setDescription(description),
		order.setClientID(clientID),
		order.setRestaurantID(restaurantID),
		order.setLines(lines),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	order.status = status

	if chefID != nil {
		if err := chefID.Validate(); err != nil {
			return nil, err
		}
		id := *chefID
		order.chefID = &id
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed.
// This prevents bypassing validation by directly instantiating the struct,
// and should be called when handing orders to persistence.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Date returns the business date the order was placed for.
func (o *Order) Date() time.Time {
	return o.date
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Description returns the client's note for the kitchen.
func (o *Order) Description() string {
	return o.description
}

// ClientID returns the identifier of the client who placed the order.
func (o *Order) ClientID() kernel.UUID {
	return o.clientID
}

// RestaurantID returns the identifier of the restaurant the order targets.
func (o *Order) RestaurantID() kernel.UUID {
	return o.restaurantID
}

// Chef returns the assigned chef's employee ID, or nil if unassigned.
func (o *Order) Chef() *kernel.UUID {
	return o.chefID
}

// Lines returns a copy of the order's line items.
func (o *Order) Lines() []LineItem {
	lines := make([]LineItem, len(o.lines))
	copy(lines, o.lines)
	return lines
}

// AssignChef binds a kitchen employee to the order.
//
// Business rules:
//   - The employee ID must be valid
//   - The order must not already have a chef; the binding happens exactly
//     once and reassignment is rejected with ErrOrderAlreadyAssigned
//
// Whether the employee belongs to the order's restaurant is checked by the
// assignment use case against the employee store.
func (o *Order) AssignChef(employeeID kernel.UUID) error {
	if err := employeeID.Validate(); err != nil {
		return err
	}

	if o.chefID != nil {
		return ErrOrderAlreadyAssigned
	}

	o.chefID = &employeeID
	return nil
}

// UpdateDeliveryStatus moves the order to the requested status along the
// delivery path. The delivery-path guards of Status.Deliver apply; on
// success the requested status overwrites the current one.
//
// Example:
//
//	if err := o.UpdateDeliveryStatus(order.Delivered); err != nil {
//	    // the order was not Ready yet
//	}
func (o *Order) UpdateDeliveryStatus(requested Status) error {
	newStatus, err := o.status.Deliver(requested)
	if err != nil {
		return err
	}

	o.setStatus(newStatus)
	return nil
}

// UpdateCancellationStatus moves the order to the requested status along the
// cancellation path. Only Pending orders pass the guard; on success the
// requested status overwrites the current one through the same primitive
// the delivery path uses.
func (o *Order) UpdateCancellationStatus(requested Status) error {
	newStatus, err := o.status.Cancel(requested)
	if err != nil {
		return err
	}

	o.setStatus(newStatus)
	return nil
}

// setStatus is the shared set-status primitive both transition paths
// delegate to after their guards pass.
func (o *Order) setStatus(status Status) {
	o.status = status
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setDate(date time.Time) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("date")
	}
	o.date = date
	return nil
}

func (o *Order) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	o.description = description
	return nil
}

func (o *Order) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}
	o.clientID = clientID
	return nil
}

func (o *Order) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}
	o.restaurantID = restaurantID
	return nil
}

func (o *Order) setLines(lines []LineItem) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("dishes")
	}

	seen := make(map[kernel.UUID]struct{}, len(lines))
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
		if _, ok := seen[line.DishID()]; ok {
			return errs.NewValueIsInvalidErrorWithCause(
				"dishes",
				fmt.Errorf("dish %s is referenced more than once", line.DishID()),
			)
		}
		seen[line.DishID()] = struct{}{}
	}

	o.lines = make([]LineItem, len(lines))
	copy(o.lines, lines)
	return nil
}

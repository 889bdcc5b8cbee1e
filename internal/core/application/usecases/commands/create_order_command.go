package commands

import (
	"errors"
	"time"

	"smallsquare/internal/core/domain/model/kernel"
	"smallsquare/internal/core/domain/model/order"
	"smallsquare/internal/pkg/errs"
	"smallsquare/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrDateIsRequired        = errs.NewValueIsRequiredError("date")
	ErrDescriptionIsRequired = errs.NewValueIsRequiredError("description")
	ErrDishesAreRequired     = errs.NewValueIsRequiredError("dishes")
)

// CreateOrderCommand represents a client's request to place an order with a
// restaurant. The caller's identity (client id) is part of the command and is
// passed explicitly; nothing in the engine reads it from ambient request state.
//
// Example:
//
//	item, _ := order.NewLineItem(dishID, 2)
//	cmd, err := NewCreateOrderCommand(
//	    kernel.NewUUID(), date, "extra sauce", clientID, restaurantID, chefUserID,
//	    []order.LineItem{item},
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	date         time.Time
	description  string
	clientID     kernel.UUID
	restaurantID kernel.UUID
	chefUserID   kernel.UUID
	lines        []order.LineItem

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates that all identifiers are valid, the date and description are
// present, and at least one line item is requested. Returns an error if any
// validation fails.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	date time.Time,
	description string,
	clientID kernel.UUID,
	restaurantID kernel.UUID,
	chefUserID kernel.UUID,
	lines []order.LineItem,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setDate(date),
		cmd.setDescription(description),
		cmd.setClientID(clientID),
		cmd.setRestaurantID(restaurantID),
		cmd.setChefUserID(chefUserID),
		cmd.setLines(lines),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier assigned to the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Date returns the business date of the order.
func (c CreateOrderCommand) Date() time.Time {
	return c.date
}

// Description returns the client's note for the kitchen.
func (c CreateOrderCommand) Description() string {
	return c.description
}

// ClientID returns the identity of the ordering client.
func (c CreateOrderCommand) ClientID() kernel.UUID {
	return c.clientID
}

// RestaurantID returns the identifier of the target restaurant.
func (c CreateOrderCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// ChefUserID returns the identity-service user id of the requested chef.
func (c CreateOrderCommand) ChefUserID() kernel.UUID {
	return c.chefUserID
}

// Lines returns a copy of the requested line items.
func (c CreateOrderCommand) Lines() []order.LineItem {
	lines := make([]order.LineItem, len(c.lines))
	copy(lines, c.lines)
	return lines
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setDate(date time.Time) error {
	if date.IsZero() {
		return ErrDateIsRequired
	}
	c.date = date
	return nil
}

func (c *CreateOrderCommand) setDescription(description string) error {
	if description == "" {
		return ErrDescriptionIsRequired
	}
	c.description = description
	return nil
}

func (c *CreateOrderCommand) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}
	c.clientID = clientID
	return nil
}

func (c *CreateOrderCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}
	c.restaurantID = restaurantID
	return nil
}

func (c *CreateOrderCommand) setChefUserID(chefUserID kernel.UUID) error {
	if err := chefUserID.Validate(); err != nil {
		return err
	}
	c.chefUserID = chefUserID
	return nil
}

func (c *CreateOrderCommand) setLines(lines []order.LineItem) error {
	if len(lines) == 0 {
		return ErrDishesAreRequired
	}
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
	}
	c.lines = make([]order.LineItem, len(lines))
	copy(c.lines, lines)
	return nil
}

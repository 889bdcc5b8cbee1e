package commands

import (
	"errors"

	"smallsquare/internal/core/domain/model/kernel"
	"smallsquare/internal/pkg/guard"
)

var ErrAssignChefCommandIsNotConstructed = errors.New(
	"AssignChefCommand must be created via NewAssignChefCommand constructor",
)

// AssignChefCommand represents a restaurant's request to bind one of its
// kitchen employees to an order. The chef is addressed by the identity-service
// user id, the way the restaurant's staff roster knows them.
type AssignChefCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	chefUserID   kernel.UUID
	restaurantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignChefCommand creates a command to assign a chef to an order.
// All three identifiers must be valid.
func NewAssignChefCommand(orderID, chefUserID, restaurantID kernel.UUID) (AssignChefCommand, error) {
	cmd := AssignChefCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setChefUserID(chefUserID),
		cmd.setRestaurantID(restaurantID),
	); err != nil {
		return AssignChefCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignChefCommand) Validate() error {
	return c.guard.Validate(ErrAssignChefCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to assign.
func (c AssignChefCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ChefUserID returns the identity-service user id of the chef.
func (c AssignChefCommand) ChefUserID() kernel.UUID {
	return c.chefUserID
}

// RestaurantID returns the identifier of the restaurant claiming the order.
func (c AssignChefCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

func (c *AssignChefCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *AssignChefCommand) setChefUserID(chefUserID kernel.UUID) error {
	if err := chefUserID.Validate(); err != nil {
		return err
	}
	c.chefUserID = chefUserID
	return nil
}

func (c *AssignChefCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}
	c.restaurantID = restaurantID
	return nil
}

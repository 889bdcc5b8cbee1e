package commands

import (
	"errors"

	"smallsquare/internal/core/domain/model/kernel"
	"smallsquare/internal/pkg/errs"
	"smallsquare/internal/pkg/guard"
)

var ErrUpdateDishCommandIsNotConstructed = errors.New(
	"UpdateDishCommand must be created via NewUpdateDishCommand constructor",
)

// UpdateDishCommand represents a request to change a dish's menu attributes,
// including toggling whether it is offered.
type UpdateDishCommand struct { //nolint:recvcheck //using for validation
	dishID       kernel.UUID
	restaurantID kernel.UUID
	name         string
	description  string
	price        float64
	imageURL     string
	active       bool

	guard guard.ConstructorGuard
}

// NewUpdateDishCommand creates a command to update a dish's menu attributes.
func NewUpdateDishCommand(
	dishID kernel.UUID,
	restaurantID kernel.UUID,
	name string,
	description string,
	price float64,
	imageURL string,
	active bool,
) (UpdateDishCommand, error) {
	cmd := UpdateDishCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDishID(dishID),
		cmd.setRestaurantID(restaurantID),
		cmd.setName(name),
		cmd.setPrice(price),
	); err != nil {
		return UpdateDishCommand{}, err
	}

	cmd.description = description
	cmd.imageURL = imageURL
	cmd.active = active

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDishCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDishCommandIsNotConstructed)
}

// DishID returns the identifier of the dish being updated.
func (c UpdateDishCommand) DishID() kernel.UUID {
	return c.dishID
}

// RestaurantID returns the restaurant the dish must belong to.
func (c UpdateDishCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// Name returns the new dish name.
func (c UpdateDishCommand) Name() string {
	return c.name
}

// Description returns the new dish description.
func (c UpdateDishCommand) Description() string {
	return c.description
}

// Price returns the new dish price.
func (c UpdateDishCommand) Price() float64 {
	return c.price
}

// ImageURL returns the new dish image URL.
func (c UpdateDishCommand) ImageURL() string {
	return c.imageURL
}

// Active reports whether the dish should be offered after the update.
func (c UpdateDishCommand) Active() bool {
	return c.active
}

func (c *UpdateDishCommand) setDishID(dishID kernel.UUID) error {
	if err := dishID.Validate(); err != nil {
		return err
	}
	c.dishID = dishID
	return nil
}

func (c *UpdateDishCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}
	c.restaurantID = restaurantID
	return nil
}

func (c *UpdateDishCommand) setName(name string) error {
	if name == "" {
		return ErrDishNameIsRequired
	}
	c.name = name
	return nil
}

func (c *UpdateDishCommand) setPrice(price float64) error {
	if price <= 0 {
		return errs.NewValueIsOutOfRangeError("price", price, 0, "+inf")
	}
	c.price = price
	return nil
}

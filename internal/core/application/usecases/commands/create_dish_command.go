package commands

import (
	"errors"

	"smallsquare/internal/core/domain/model/kernel"
	"smallsquare/internal/pkg/errs"
	"smallsquare/internal/pkg/guard"
)

var (
	ErrCreateDishCommandIsNotConstructed = errors.New(
		"CreateDishCommand must be created via NewCreateDishCommand constructor",
	)
	ErrDishNameIsRequired = errs.NewValueIsRequiredError("name")
)

// CreateDishCommand represents a request to add a dish to a restaurant's menu.
// New dishes are always created active.
type CreateDishCommand struct { //nolint:recvcheck //using for validation
	dishID       kernel.UUID
	name         string
	description  string
	price        float64
	imageURL     string
	categoryID   kernel.UUID
	restaurantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateDishCommand creates a command to add a dish to a restaurant's menu.
func NewCreateDishCommand(
	dishID kernel.UUID,
	name string,
	description string,
	price float64,
	imageURL string,
	categoryID kernel.UUID,
	restaurantID kernel.UUID,
) (CreateDishCommand, error) {
	cmd := CreateDishCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDishID(dishID),
		cmd.setName(name),
		cmd.setPrice(price),
		cmd.setRestaurantID(restaurantID),
	); err != nil {
		return CreateDishCommand{}, err
	}

	cmd.description = description
	cmd.imageURL = imageURL
	cmd.categoryID = categoryID

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDishCommand) Validate() error {
	return c.guard.Validate(ErrCreateDishCommandIsNotConstructed)
}

// DishID returns the identifier assigned to the new dish.
func (c CreateDishCommand) DishID() kernel.UUID {
	return c.dishID
}

// Name returns the dish name.
func (c CreateDishCommand) Name() string {
	return c.name
}

// Description returns the dish description.
func (c CreateDishCommand) Description() string {
	return c.description
}

// Price returns the dish price.
func (c CreateDishCommand) Price() float64 {
	return c.price
}

// ImageURL returns the URL of the dish image.
func (c CreateDishCommand) ImageURL() string {
	return c.imageURL
}

// CategoryID returns the menu category of the dish.
func (c CreateDishCommand) CategoryID() kernel.UUID {
	return c.categoryID
}

// RestaurantID returns the restaurant the dish belongs to.
func (c CreateDishCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

func (c *CreateDishCommand) setDishID(dishID kernel.UUID) error {
	if err := dishID.Validate(); err != nil {
		return err
	}
	c.dishID = dishID
	return nil
}

func (c *CreateDishCommand) setName(name string) error {
	if name == "" {
		return ErrDishNameIsRequired
	}
	c.name = name
	return nil
}

func (c *CreateDishCommand) setPrice(price float64) error {
	if price <= 0 {
		return errs.NewValueIsOutOfRangeError("price", price, 0, "+inf")
	}
	c.price = price
	return nil
}

func (c *CreateDishCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}
	c.restaurantID = restaurantID
	return nil
}

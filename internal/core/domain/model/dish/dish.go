// Package dish provides the Dish entity. Dishes belong to exactly one
// restaurant; the order lifecycle reads them only to confirm membership,
// while the catalog flow creates and updates them.
package dish

import (
	"errors"
	"fmt"

	"smallsquare/internal/core/domain/model/kernel"
	"smallsquare/internal/pkg/errs"
	"smallsquare/internal/pkg/guard"
)

var (
	// ErrDishIsNotConstructed is returned when using an improperly initialized Dish.
	ErrDishIsNotConstructed = errors.New("Dish must be created via NewDish constructor")

	// ErrNameIsRequired is returned when attempting to create a dish without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
)

// Dish represents one menu entry of a restaurant.
type Dish struct {
	id           kernel.UUID
	name         string
	description  string
	price        float64
	imageURL     string
	categoryID   kernel.UUID
	restaurantID kernel.UUID
	active       bool

	guard guard.ConstructorGuard
}

// NewDish creates a Dish with the given attributes.
// The dish, category and restaurant identifiers must be valid, the name
// must not be empty and the price must be positive.
func NewDish(
	id kernel.UUID,
	name string,
	description string,
	price float64,
	imageURL string,
	categoryID kernel.UUID,
	restaurantID kernel.UUID,
	active bool,
) (*Dish, error) {
	if err := errors.Join(
		id.Validate(),
		categoryID.Validate(),
		restaurantID.Validate(),
	); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, ErrNameIsRequired
	}
	if price <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"price is invalid",
			fmt.Errorf("%v is not greater than 0", price),
		)
	}

	return &Dish{
		id:           id,
		name:         name,
		description:  description,
		price:        price,
		imageURL:     imageURL,
		categoryID:   categoryID,
		restaurantID: restaurantID,
		active:       active,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// RestoreDish reconstructs a Dish from a persisted state.
// Intended for repositories; business code should use NewDish.
func RestoreDish(
	id kernel.UUID,
	name string,
	description string,
	price float64,
	imageURL string,
	categoryID kernel.UUID,
	restaurantID kernel.UUID,
	active bool,
) (*Dish, error) {
	return NewDish(id, name, description, price, imageURL, categoryID, restaurantID, active)
}

// UpdateDetails replaces the dish's menu attributes. The category and the
// owning restaurant never change after creation.
func (d *Dish) UpdateDetails(name string, description string, price float64, imageURL string, active bool) error {
	if err := d.Validate(); err != nil {
		return err
	}
	if name == "" {
		return ErrNameIsRequired
	}
	if price <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"price is invalid",
			fmt.Errorf("%v is not greater than 0", price),
		)
	}

	d.name = name
	d.description = description
	d.price = price
	d.imageURL = imageURL
	d.active = active

	return nil
}

// Validate ensures the Dish was created through NewDish.
func (d *Dish) Validate() error {
	if d == nil {
		return ErrDishIsNotConstructed
	}
	return d.guard.Validate(ErrDishIsNotConstructed)
}

// ID returns the dish's unique identifier.
func (d *Dish) ID() kernel.UUID {
	return d.id
}

// Name returns the dish's display name.
func (d *Dish) Name() string {
	return d.name
}

// Description returns the dish's menu description.
func (d *Dish) Description() string {
	return d.description
}

// Price returns the dish's unit price.
func (d *Dish) Price() float64 {
	return d.price
}

// ImageURL returns the URL of the dish's image.
func (d *Dish) ImageURL() string {
	return d.imageURL
}

// CategoryID returns the identifier of the dish's menu category.
func (d *Dish) CategoryID() kernel.UUID {
	return d.categoryID
}

// RestaurantID returns the identifier of the owning restaurant.
func (d *Dish) RestaurantID() kernel.UUID {
	return d.restaurantID
}

// Active reports whether the dish is currently offered.
func (d *Dish) Active() bool {
	return d.active
}

package queries

import (
	"errors"

	"smallsquare/internal/core/domain/model/kernel"
	"smallsquare/internal/pkg/guard"
)

var ErrGetDishesQueryIsNotConstructed = errors.New(
	"GetDishesQuery must be created via NewGetDishesQuery constructor",
)

// GetDishesQuery lists the active dishes of one restaurant, optionally
// filtered by category. It backs the menu a client browses before ordering.
type GetDishesQuery struct {
	restaurantID kernel.UUID
	categoryID   *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDishesQuery creates a menu listing query. categoryID is optional;
// when nil the whole menu is returned.
func NewGetDishesQuery(restaurantID kernel.UUID, categoryID *kernel.UUID) (GetDishesQuery, error) {
	if err := restaurantID.Validate(); err != nil {
		return GetDishesQuery{}, err
	}
	if categoryID != nil {
		if err := categoryID.Validate(); err != nil {
			return GetDishesQuery{}, err
		}
	}

	q := GetDishesQuery{
		restaurantID: restaurantID,
		guard:        guard.NewConstructorGuard(),
	}
	if categoryID != nil {
		category := *categoryID
		q.categoryID = &category
	}
	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDishesQuery) Validate() error {
	return q.guard.Validate(ErrGetDishesQueryIsNotConstructed)
}

// RestaurantID returns the restaurant whose menu is requested.
func (q GetDishesQuery) RestaurantID() kernel.UUID {
	return q.restaurantID
}

// CategoryID returns the optional category filter.
func (q GetDishesQuery) CategoryID() *kernel.UUID {
	if q.categoryID == nil {
		return nil
	}
	category := *q.categoryID
	return &category
}

// DishResponse is the menu entry read model.
type DishResponse struct {
	ID          kernel.UUID
	Name        string
	Description string
	Price       float64
	ImageURL    string
	CategoryID  kernel.UUID
}

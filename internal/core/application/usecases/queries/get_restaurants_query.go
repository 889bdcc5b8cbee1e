package queries

import (
	"errors"

	"smallsquare/internal/core/domain/model/kernel"
	"smallsquare/internal/pkg/guard"
)

var ErrGetRestaurantsQueryIsNotConstructed = errors.New(
	"GetRestaurantsQuery must be created via NewGetRestaurantsQuery constructor",
)

// GetRestaurantsQuery lists the restaurants of the marketplace, paged and
// sorted by name. It backs the public storefront listing.
type GetRestaurantsQuery struct {
	take int
	skip int

	guard guard.ConstructorGuard
}

// NewGetRestaurantsQuery creates a paged restaurant listing query.
// take must be positive; skip must not be negative.
func NewGetRestaurantsQuery(take, skip int) (GetRestaurantsQuery, error) {
	if take <= 0 {
		return GetRestaurantsQuery{}, ErrTakeIsInvalid
	}
	if skip < 0 {
		return GetRestaurantsQuery{}, ErrSkipIsInvalid
	}
	return GetRestaurantsQuery{
		take:  take,
		skip:  skip,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRestaurantsQuery) Validate() error {
	return q.guard.Validate(ErrGetRestaurantsQueryIsNotConstructed)
}

// Take returns the page size.
func (q GetRestaurantsQuery) Take() int {
	return q.take
}

// Skip returns the number of restaurants to skip.
func (q GetRestaurantsQuery) Skip() int {
	return q.skip
}

// RestaurantResponse is the storefront restaurant read model.
type RestaurantResponse struct {
	ID      kernel.UUID
	Name    string
	LogoURL string
}

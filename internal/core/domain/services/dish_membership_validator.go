package services

import (
	"fmt"

	"smallsquare/internal/core/domain/model/dish"
	"smallsquare/internal/core/domain/model/kernel"
	"smallsquare/internal/core/domain/model/order"
	"smallsquare/internal/pkg/errs"
)

// DishMembershipValidator is a domain service that confirms every dish
// referenced by an order belongs to the restaurant the order targets.
//
// The validator works on the result of a restaurant-restricted dish lookup:
// the dish store returns only the dishes whose restaurant matches, and the
// validator compares that count against the distinct set of requested dish
// identifiers. Any shortfall means at least one dish is missing or belongs
// to another restaurant, and the order must be rejected.
//
// Example usage:
//
//	validator := services.NewDishMembershipValidator()
//	ids := validator.DistinctDishIDs(lines)
//	found, err := dishRepo.GetByIDsAndRestaurant(ctx, ids, restaurantID)
//	if err != nil {
//	    return err
//	}
//	if err := validator.Validate(restaurantID, ids, found); err != nil {
//	    // one or more dishes do not belong to the restaurant
//	}
type DishMembershipValidator struct{}

// NewDishMembershipValidator creates a new DishMembershipValidator instance.
func NewDishMembershipValidator() DishMembershipValidator {
	return DishMembershipValidator{}
}

// DistinctDishIDs collects the distinct dish identifiers referenced by the
// given line items, preserving first-occurrence order.
func (v DishMembershipValidator) DistinctDishIDs(lines []order.LineItem) []kernel.UUID {
	seen := make(map[kernel.UUID]struct{}, len(lines))
	ids := make([]kernel.UUID, 0, len(lines))
	for _, line := range lines {
		if _, ok := seen[line.DishID()]; ok {
			continue
		}
		seen[line.DishID()] = struct{}{}
		ids = append(ids, line.DishID())
	}
	return ids
}

// Validate confirms that the restaurant-restricted lookup found every
// requested dish.
//
// Parameters:
//   - restaurantID: the restaurant the order targets
//   - requestedIDs: distinct dish identifiers from the creation request
//   - found: dishes returned by the restaurant-restricted lookup
//
// Returns a validation error when the found count differs from the
// requested count, or when a found dish unexpectedly references another
// restaurant (which signals a broken lookup rather than a bad request).
func (v DishMembershipValidator) Validate(
	restaurantID kernel.UUID,
	requestedIDs []kernel.UUID,
	found []*dish.Dish,
) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	for _, d := range found {
		if err := d.Validate(); err != nil {
			return err
		}
		if !d.RestaurantID().IsEqual(restaurantID) {
			return errs.NewValueIsInvalidErrorWithCause(
				"dishes",
				fmt.Errorf("dish %s belongs to restaurant %s, not %s", d.ID(), d.RestaurantID(), restaurantID),
			)
		}
	}

	if len(found) != len(requestedIDs) {
		return errs.NewValueIsInvalidErrorWithCause(
			"dishes",
			fmt.Errorf("one or more dishes do not belong to the restaurant (requested %d, matched %d)",
				len(requestedIDs), len(found)),
		)
	}

	return nil
}

package order

import (
	"errors"
	"fmt"

	"smallsquare/internal/core/domain/model/kernel"
	"smallsquare/internal/pkg/errs"
	"smallsquare/internal/pkg/guard"
)

// ErrLineItemIsNotConstructed is returned when a LineItem was not created
// through the NewLineItem factory function.
var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

// LineItem is one dish-and-quantity entry within an order.
// Line items are created only as part of order creation and are never
// mutated independently; the owning order carries them for its whole life.
type LineItem struct { //nolint:recvcheck //using for validation
	dishID   kernel.UUID
	quantity int

	guard guard.ConstructorGuard
}

// NewLineItem creates a line item referencing a dish with a positive quantity.
//
// Parameters:
//   - dishID: identifier of the ordered dish (must be a valid UUID)
//   - quantity: number of units ordered (must be greater than 0)
//
// Returns a validation error if the dish reference is invalid or the
// quantity is not positive.
func NewLineItem(dishID kernel.UUID, quantity int) (LineItem, error) {
	item := LineItem{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setDishID(dishID),
		item.setQuantity(quantity),
	); err != nil {
		return LineItem{}, err
	}

	return item, nil
}

// Validate ensures the line item was created through NewLineItem.
func (li LineItem) Validate() error {
	return li.guard.Validate(ErrLineItemIsNotConstructed)
}

// DishID returns the identifier of the ordered dish.
func (li LineItem) DishID() kernel.UUID {
	return li.dishID
}

// Quantity returns the number of units ordered.
func (li LineItem) Quantity() int {
	return li.quantity
}

func (li *LineItem) setDishID(dishID kernel.UUID) error {
	if err := dishID.Validate(); err != nil {
		return err
	}
	li.dishID = dishID
	return nil
}

func (li *LineItem) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	li.quantity = quantity
	return nil
}

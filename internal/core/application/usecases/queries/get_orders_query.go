package queries

import (
	"errors"

	"smallsquare/internal/core/domain/model/kernel"
	"smallsquare/internal/core/domain/model/order"
	"smallsquare/internal/pkg/errs"
	"smallsquare/internal/pkg/guard"
)

var (
	ErrGetOrdersQueryIsNotConstructed = errors.New(
		"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
	)
	ErrTakeIsInvalid = errs.NewValueIsInvalidError("take")
	ErrSkipIsInvalid = errs.NewValueIsInvalidError("skip")
)

// GetOrdersQuery retrieves the orders of a restaurant in a given status,
// paged. Kitchen staff use it to work through the backlog status by status.
//
// Example:
//
//	status, _ := order.ParseStatus("Pending")
//	query, _ := NewGetOrdersQuery(restaurantID, status, 20, 0)
//	orders, err := handler.Handle(ctx, query)
type GetOrdersQuery struct {
	restaurantID kernel.UUID
	status       order.Status
	take         int
	skip         int

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query listing a restaurant's orders by status.
// take must be positive; skip must not be negative.
func NewGetOrdersQuery(restaurantID kernel.UUID, status order.Status, take, skip int) (GetOrdersQuery, error) {
	q := GetOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		restaurantID.Validate(),
		status.Validate(),
	); err != nil {
		return GetOrdersQuery{}, err
	}
	if take <= 0 {
		return GetOrdersQuery{}, ErrTakeIsInvalid
	}
	if skip < 0 {
		return GetOrdersQuery{}, ErrSkipIsInvalid
	}

	q.restaurantID = restaurantID
	q.status = status
	q.take = take
	q.skip = skip

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// RestaurantID returns the restaurant whose orders are requested.
func (q GetOrdersQuery) RestaurantID() kernel.UUID {
	return q.restaurantID
}

// Status returns the status filter.
func (q GetOrdersQuery) Status() order.Status {
	return q.status
}

// Take returns the page size.
func (q GetOrdersQuery) Take() int {
	return q.take
}

// Skip returns the number of orders to skip.
func (q GetOrdersQuery) Skip() int {
	return q.skip
}

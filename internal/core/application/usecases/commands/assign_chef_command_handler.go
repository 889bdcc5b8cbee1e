package commands

import (
	"context"
	"errors"

	"smallsquare/internal/core/domain/model/order"
	"smallsquare/internal/pkg/errs"
)

var (
	// ErrOrderNotOwnedByRestaurant is returned when the order targets a
	// different restaurant than the one claiming it.
	ErrOrderNotOwnedByRestaurant = errs.NewValueIsInvalidError("order does not belong to this restaurant")

	// ErrChefNotRelatedToRestaurant is returned when the requested chef is
	// not on the restaurant's staff roster.
	ErrChefNotRelatedToRestaurant = errs.NewValueIsInvalidError("chef is not related to this restaurant")
)

// AssignChefCommandHandler binds a kitchen employee to an unassigned order,
// enforcing restaurant consistency on both sides: the order must belong to
// the claiming restaurant and the chef must be on that restaurant's roster.
//
// Example:
//
//	handler := NewAssignChefCommandHandler(uowFactory)
//	cmd, _ := NewAssignChefCommand(orderID, chefUserID, restaurantID)
//	assigned, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrConflict) {
//	    // the order already has a chef
//	}
type AssignChefCommandHandler struct {
	uowFactory UoWFactory
}

// NewAssignChefCommandHandler creates a handler for chef assignment.
// Requires a UoWFactory for coordinating the order and catalog repositories.
func NewAssignChefCommandHandler(uowFactory UoWFactory) AssignChefCommandHandler {
	return AssignChefCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the chef assignment command.
//
// Steps run in a fixed sequence: resolve the restaurant, resolve the order,
// require the order to belong to the restaurant, require the order to be
// unassigned, resolve the employee by (user, restaurant), then bind the
// employee's id to the order, persist it, and return the updated order.
func (h AssignChefCommandHandler) Handle(ctx context.Context, cmd AssignChefCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	restaurant, err := uow.RestaurantRepository().Get(ctx, cmd.RestaurantID())
	if err != nil {
		return nil, err
	}

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if !aggregate.RestaurantID().IsEqual(restaurant.ID()) {
		return nil, ErrOrderNotOwnedByRestaurant
	}

	// Checked before the employee lookup so an already-assigned order is
	// reported as such even when the requested chef is unknown.
	if aggregate.Chef() != nil {
		return nil, order.ErrOrderAlreadyAssigned
	}

	chef, err := uow.EmployeeRepository().GetByUserAndRestaurant(ctx, cmd.ChefUserID(), cmd.RestaurantID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, ErrChefNotRelatedToRestaurant
	}
	if err != nil {
		return nil, err
	}

	if err = aggregate.AssignChef(chef.ID()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}

package commands

import (
	"context"
	"fmt"

	"smallsquare/internal/pkg/errs"
)

// ErrDishNotOwnedByRestaurant is returned when the dish being updated belongs
// to a different restaurant than the one named in the command.
var ErrDishNotOwnedByRestaurant = errs.NewValueIsInvalidError("dishId")

// UpdateDishCommandHandler changes a dish's menu attributes.
type UpdateDishCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewUpdateDishCommandHandler creates a handler for UpdateDishCommand.
func NewUpdateDishCommandHandler(uowFactory CatalogUoWFactory) UpdateDishCommandHandler {
	return UpdateDishCommandHandler{uowFactory: uowFactory}
}

// Handle updates the dish. The dish must exist and belong to the restaurant
// named in the command.
func (h UpdateDishCommandHandler) Handle(ctx context.Context, cmd UpdateDishCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	aggregate, err := uow.DishRepository().Get(ctx, cmd.DishID())
	if err != nil {
		return fmt.Errorf("get dish %s: %w", cmd.DishID(), err)
	}
	if !aggregate.RestaurantID().IsEqual(cmd.RestaurantID()) {
		return ErrDishNotOwnedByRestaurant
	}

	if err := aggregate.UpdateDetails(
		cmd.Name(),
		cmd.Description(),
		cmd.Price(),
		cmd.ImageURL(),
		cmd.Active(),
	); err != nil {
		return err
	}

	if err := uow.DishRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

package commands

import (
	"context"
	"fmt"

	"smallsquare/internal/core/domain/model/dish"
)

// CreateDishCommandHandler adds a dish to a restaurant's menu.
type CreateDishCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewCreateDishCommandHandler creates a handler for CreateDishCommand.
func NewCreateDishCommandHandler(uowFactory CatalogUoWFactory) CreateDishCommandHandler {
	return CreateDishCommandHandler{uowFactory: uowFactory}
}

// Handle adds the dish. The restaurant must exist. New dishes start active.
func (h CreateDishCommandHandler) Handle(ctx context.Context, cmd CreateDishCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	if _, err := uow.RestaurantRepository().Get(ctx, cmd.RestaurantID()); err != nil {
		return fmt.Errorf("get restaurant %s: %w", cmd.RestaurantID(), err)
	}

	aggregate, err := dish.NewDish(
		cmd.DishID(),
		cmd.Name(),
		cmd.Description(),
		cmd.Price(),
		cmd.ImageURL(),
		cmd.CategoryID(),
		cmd.RestaurantID(),
		true,
	)
	if err != nil {
		return err
	}

	if err := uow.DishRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

package commands_test

import (
	"testing"

	"smallsquare/internal/core/application/usecases/commands"
	"smallsquare/internal/core/domain/model/dish"
	"smallsquare/internal/core/domain/model/kernel"
	"smallsquare/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateDishCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	restaurantID := kernel.NewUUID()
	cmd, err := commands.NewCreateDishCommand(
		kernel.NewUUID(), "Ajiaco", "chicken and potato soup", 18500, "", kernel.NewUUID(), restaurantID)
	require.NoError(t, err)

	restaurantRepo := new(MockRestaurantRepository)
	dishRepo := new(MockDishRepository)
	uow := new(MockCatalogUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RestaurantRepository").Return(restaurantRepo).Once(),
		restaurantRepo.On("Get", mock.Anything, restaurantID).Return(buildRestaurant(t, restaurantID), nil).Once(),
		uow.On("DishRepository").Return(dishRepo).Once(),
		dishRepo.On("Add", mock.Anything, mock.MatchedBy(func(d *dish.Dish) bool {
			return d.Active() // new dishes always start active
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCatalogUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateDishCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	dishRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateDishCommandHandler_Handle_RestaurantNotFound(t *testing.T) {
	ctx := t.Context()
	restaurantID := kernel.NewUUID()
	cmd, err := commands.NewCreateDishCommand(
		kernel.NewUUID(), "Ajiaco", "", 18500, "", kernel.NewUUID(), restaurantID)
	require.NoError(t, err)

	restaurantRepo := new(MockRestaurantRepository)
	uow := new(MockCatalogUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RestaurantRepository").Return(restaurantRepo).Once(),
		restaurantRepo.On("Get", mock.Anything, restaurantID).
			Return(nil, errs.NewObjectNotFoundError("restaurant", restaurantID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCatalogUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateDishCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
}

func TestUpdateDishCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	restaurantID := kernel.NewUUID()
	existing, err := dish.NewDish(
		kernel.NewUUID(), "Ajiaco", "", 18500, "", kernel.NewUUID(), restaurantID, true)
	require.NoError(t, err)
	cmd, err := commands.NewUpdateDishCommand(
		existing.ID(), restaurantID, "Ajiaco Santafereño", "with capers", 21000, "", false)
	require.NoError(t, err)

	dishRepo := new(MockDishRepository)
	uow := new(MockCatalogUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DishRepository").Return(dishRepo).Once(),
		dishRepo.On("Get", mock.Anything, existing.ID()).Return(existing, nil).Once(),
		uow.On("DishRepository").Return(dishRepo).Once(),
		dishRepo.On("Update", mock.Anything, existing).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCatalogUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateDishCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, "Ajiaco Santafereño", existing.Name())
	require.False(t, existing.Active())
	dishRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateDishCommandHandler_Handle_DishNotOwnedByRestaurant(t *testing.T) {
	ctx := t.Context()
	existing, err := dish.NewDish(
		kernel.NewUUID(), "Ajiaco", "", 18500, "", kernel.NewUUID(), kernel.NewUUID(), true)
	require.NoError(t, err)
	cmd, err := commands.NewUpdateDishCommand(
		existing.ID(), kernel.NewUUID(), "Ajiaco", "", 18500, "", true) // different restaurant
	require.NoError(t, err)

	dishRepo := new(MockDishRepository)
	uow := new(MockCatalogUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DishRepository").Return(dishRepo).Once(),
		dishRepo.On("Get", mock.Anything, existing.ID()).Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCatalogUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateDishCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrDishNotOwnedByRestaurant)
	require.Equal(t, "Ajiaco", existing.Name())
	uow.AssertExpectations(t)
}

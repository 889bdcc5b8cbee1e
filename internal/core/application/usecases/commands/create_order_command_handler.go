package commands

import (
	"context"
	"errors"
	"log/slog"

	"smallsquare/internal/core/domain/model/order"
	"smallsquare/internal/core/domain/services"
	"smallsquare/internal/core/ports"
	"smallsquare/internal/pkg/errs"
)

var (
	// ErrClientHasOrderInProcess is returned when the ordering client already
	// has an order in InPreparation status.
	//
	// The guard checks InPreparation only. Newly created orders start in
	// Pending, so a client can hold several Pending orders at once; that
	// looseness is preserved deliberately, pending product clarification.
	ErrClientHasOrderInProcess = errs.NewConflictError("client already has an order in process")

	// ErrChefNotInRestaurant is returned when the requested chef is not an
	// employee of the target restaurant.
	ErrChefNotInRestaurant = errs.NewValueIsInvalidError("chef does not exist in that restaurant")
)

// CreateOrderCommandHandler handles the business logic for order creation:
// referential validation against the catalog, dish membership validation, and
// the persistence of the order with its line items in one transaction.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, publisher, logger)
//	created, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrConflict):
//	    // client already has an order in process
//	case errors.Is(err, errs.ErrObjectNotFound), errors.Is(err, errs.ErrValueIsInvalid):
//	    // bad reference in the request
//	case err != nil:
//	    // store failure
//	}
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.OrderEventPublisher
	logger     *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for order creation.
// Requires a UoWFactory for transactional persistence, an event publisher for
// the order-created event, and a logger for publish failures.
func NewCreateOrderCommandHandler(
	uowFactory UoWFactory,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger,
	}
}

// Handle processes the order creation command.
//
// Guards run in a fixed sequence: the in-process-order conflict check, the
// restaurant lookup, the chef lookup scoped to that restaurant, and the dish
// membership validation. Only then is the order built and persisted together
// with its line items; the unit of work makes the multi-write atomic.
//
// The in-process check and the later insert are separate statements with no
// serialization between concurrent requests for the same client; two
// concurrent creations can both pass the check. See the repository tests that
// demonstrate this window.
//
// On success the persisted order, line items included, is returned.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
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

	orderRepo := uow.OrderRepository()

	existing, err := orderRepo.GetByClientAndStatus(ctx, cmd.ClientID(), order.InPreparation)
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrClientHasOrderInProcess
	}

	if _, err = uow.RestaurantRepository().Get(ctx, cmd.RestaurantID()); err != nil {
		return nil, err
	}

	_, err = uow.EmployeeRepository().GetByUserAndRestaurant(ctx, cmd.ChefUserID(), cmd.RestaurantID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, ErrChefNotInRestaurant
	}
	if err != nil {
		return nil, err
	}

	validator := services.NewDishMembershipValidator()
	dishIDs := validator.DistinctDishIDs(cmd.Lines())

	dishes, err := uow.DishRepository().GetByIDsAndRestaurant(ctx, dishIDs, cmd.RestaurantID())
	if err != nil {
		return nil, err
	}
	if err = validator.Validate(cmd.RestaurantID(), dishIDs, dishes); err != nil {
		return nil, err
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		cmd.Date(),
		cmd.Description(),
		cmd.ClientID(),
		cmd.RestaurantID(),
		cmd.Lines(),
	)
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if publishErr := h.publisher.PublishOrderCreated(ctx, newOrder); publishErr != nil {
		h.logger.ErrorContext(ctx, "failed to publish order created event",
			"order_id", newOrder.ID().String(), "error", publishErr)
	}

	return newOrder, nil
}

package commands

import (
	"context"
	"log/slog"

	"smallsquare/internal/core/domain/model/order"
	"smallsquare/internal/core/ports"
)

// UpdateOrderStatusCommandHandler applies a status change along the delivery
// path: the flow the kitchen and the delivery hand-off drive, used to move an
// order towards Ready and Delivered (and a delivered order back to Ready).
//
// The delivery-path guards live on the order aggregate; this handler resolves
// the order, applies the transition, persists it, and emits a status-changed
// event after commit.
//
// Example:
//
//	handler := NewUpdateOrderStatusCommandHandler(uowFactory, publisher, logger)
//	cmd, _ := NewUpdateOrderStatusCommand(orderID, order.Delivered)
//	updated, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    // the order was not Ready yet, or the store failed
//	}
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
	logger     *slog.Logger
}

// NewUpdateOrderStatusCommandHandler creates a handler for delivery-path
// status updates.
func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger,
	}
}

// Handle processes the delivery-path status update.
// Resolves the order, applies the requested status through the delivery-path
// guards, persists the result, and returns the updated order. Publish
// failures after commit are logged, not returned: the status change is
// already durable.
func (h UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) (*order.Order, error) {
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
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.UpdateDeliveryStatus(cmd.Status()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if publishErr := h.publisher.PublishOrderStatusChanged(ctx, aggregate); publishErr != nil {
		h.logger.ErrorContext(ctx, "failed to publish order status changed event",
			"order_id", aggregate.ID().String(), "status", aggregate.Status().String(), "error", publishErr)
	}

	return aggregate, nil
}

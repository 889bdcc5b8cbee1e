package commands

import (
	"context"
	"log/slog"

	"smallsquare/internal/core/domain/model/order"
	"smallsquare/internal/core/ports"
)

// CancelOrderCommandHandler applies a status change along the cancellation
// path: the flow a client drives to withdraw an order the kitchen has not
// started. It consumes the same UpdateOrderStatusCommand as the delivery
// path; only the guard set differs.
//
// Example:
//
//	handler := NewCancelOrderCommandHandler(uowFactory, publisher, logger)
//	cmd, _ := NewUpdateOrderStatusCommand(orderID, order.Pending)
//	cancelled, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    // the order was already in preparation
//	}
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
	logger     *slog.Logger
}

// NewCancelOrderCommandHandler creates a handler for cancellation-path
// status updates.
func NewCancelOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger,
	}
}

// Handle processes the cancellation-path status update.
// Resolves the order, applies the requested status through the
// cancellation-path guard (only Pending orders pass), persists the result,
// and returns the updated order. Publish failures after commit are logged,
// not returned.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) (*order.Order, error) {
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

	if err = aggregate.UpdateCancellationStatus(cmd.Status()); err != nil {
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

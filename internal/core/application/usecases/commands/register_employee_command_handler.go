package commands

import (
	"context"
	"fmt"

	"smallsquare/internal/core/domain/model/employee"
	"smallsquare/internal/core/ports"
)

// RegisterEmployeeCommandHandler creates the employee's user account in the
// identity service and links it to a restaurant.
type RegisterEmployeeCommandHandler struct {
	uowFactory CatalogUoWFactory
	identity   ports.IdentityClient
}

// NewRegisterEmployeeCommandHandler creates a handler for RegisterEmployeeCommand.
func NewRegisterEmployeeCommandHandler(
	uowFactory CatalogUoWFactory,
	identity ports.IdentityClient,
) RegisterEmployeeCommandHandler {
	return RegisterEmployeeCommandHandler{
		uowFactory: uowFactory,
		identity:   identity,
	}
}

// Handle registers the employee. The restaurant must exist; the user account
// is created via the identity service sign-up and the returned user id is
// linked to the restaurant.
func (h RegisterEmployeeCommandHandler) Handle(ctx context.Context, cmd RegisterEmployeeCommand) error {
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

	userID, err := h.identity.SignUp(ctx, cmd.SignUpRequest())
	if err != nil {
		return fmt.Errorf("sign up employee %s: %w", cmd.Email(), err)
	}

	aggregate, err := employee.NewEmployee(cmd.EmployeeID(), userID, cmd.RestaurantID())
	if err != nil {
		return err
	}

	if err := uow.EmployeeRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

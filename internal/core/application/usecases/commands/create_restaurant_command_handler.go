package commands

import (
	"context"
	"errors"
	"fmt"

	"smallsquare/internal/core/domain/model/restaurant"
	"smallsquare/internal/core/ports"
	"smallsquare/internal/pkg/errs"
)

// OwnerRole is the identity-service role required to register a restaurant.
const OwnerRole = "owner"

// ErrOwnerRoleRequired is returned when the user registering a restaurant
// does not hold the owner role in the identity service.
var ErrOwnerRoleRequired = errs.NewValueIsInvalidError("ownerId")

// CreateRestaurantCommandHandler registers a restaurant after verifying the
// owner's role with the identity service.
type CreateRestaurantCommandHandler struct {
	uowFactory CatalogUoWFactory
	identity   ports.IdentityClient
}

// NewCreateRestaurantCommandHandler creates a handler for CreateRestaurantCommand.
// Requires a CatalogUoWFactory for persistence and an identity client for the
// owner-role check.
func NewCreateRestaurantCommandHandler(
	uowFactory CatalogUoWFactory,
	identity ports.IdentityClient,
) CreateRestaurantCommandHandler {
	return CreateRestaurantCommandHandler{
		uowFactory: uowFactory,
		identity:   identity,
	}
}

// Handle registers the restaurant. The owner must exist in the identity
// service and hold the owner role.
func (h CreateRestaurantCommandHandler) Handle(ctx context.Context, cmd CreateRestaurantCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	owner, err := h.identity.GetUser(ctx, cmd.OwnerID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ErrOwnerRoleRequired
		}
		return fmt.Errorf("get owner %s: %w", cmd.OwnerID(), err)
	}
	if owner.Role != OwnerRole {
		return ErrOwnerRoleRequired
	}

	aggregate, err := restaurant.NewRestaurant(
		cmd.RestaurantID(),
		cmd.Name(),
		cmd.TaxID(),
		cmd.Address(),
		cmd.OwnerID(),
		cmd.Phone(),
		cmd.LogoURL(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	if err := uow.RestaurantRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

package commands

import (
	"errors"

	"smallsquare/internal/core/domain/model/kernel"
	"smallsquare/internal/pkg/errs"
	"smallsquare/internal/pkg/guard"
)

var (
	ErrCreateRestaurantCommandIsNotConstructed = errors.New(
		"CreateRestaurantCommand must be created via NewCreateRestaurantCommand constructor",
	)
	ErrRestaurantNameIsRequired = errs.NewValueIsRequiredError("name")
	ErrTaxIDIsRequired          = errs.NewValueIsRequiredError("taxId")
)

// CreateRestaurantCommand represents a request to register a restaurant on
// the marketplace on behalf of an owner user.
type CreateRestaurantCommand struct { //nolint:recvcheck //using for validation
	restaurantID kernel.UUID
	name         string
	taxID        string
	address      string
	ownerID      kernel.UUID
	phone        string
	logoURL      string

	guard guard.ConstructorGuard
}

// NewCreateRestaurantCommand creates a command to register a restaurant.
// The restaurant id, name, tax id and owner id are required.
func NewCreateRestaurantCommand(
	restaurantID kernel.UUID,
	name string,
	taxID string,
	address string,
	ownerID kernel.UUID,
	phone string,
	logoURL string,
) (CreateRestaurantCommand, error) {
	cmd := CreateRestaurantCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRestaurantID(restaurantID),
		cmd.setName(name),
		cmd.setTaxID(taxID),
		cmd.setOwnerID(ownerID),
	); err != nil {
		return CreateRestaurantCommand{}, err
	}

	cmd.address = address
	cmd.phone = phone
	cmd.logoURL = logoURL

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateRestaurantCommand) Validate() error {
	return c.guard.Validate(ErrCreateRestaurantCommandIsNotConstructed)
}

// RestaurantID returns the identifier assigned to the new restaurant.
func (c CreateRestaurantCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// Name returns the restaurant's display name.
func (c CreateRestaurantCommand) Name() string {
	return c.name
}

// TaxID returns the restaurant's tax identifier.
func (c CreateRestaurantCommand) TaxID() string {
	return c.taxID
}

// Address returns the restaurant's street address.
func (c CreateRestaurantCommand) Address() string {
	return c.address
}

// OwnerID returns the identity-service user id of the owner.
func (c CreateRestaurantCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

// Phone returns the restaurant's contact phone.
func (c CreateRestaurantCommand) Phone() string {
	return c.phone
}

// LogoURL returns the URL of the restaurant's logo image.
func (c CreateRestaurantCommand) LogoURL() string {
	return c.logoURL
}

func (c *CreateRestaurantCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}
	c.restaurantID = restaurantID
	return nil
}

func (c *CreateRestaurantCommand) setName(name string) error {
	if name == "" {
		return ErrRestaurantNameIsRequired
	}
	c.name = name
	return nil
}

func (c *CreateRestaurantCommand) setTaxID(taxID string) error {
	if taxID == "" {
		return ErrTaxIDIsRequired
	}
	c.taxID = taxID
	return nil
}

func (c *CreateRestaurantCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}
	c.ownerID = ownerID
	return nil
}

// Package restaurant provides the Restaurant entity. From the order
// lifecycle's perspective restaurants are read-only reference data; they are
// created by the owner-gated registration flow and never mutated afterwards.
package restaurant

import (
	"errors"

	"smallsquare/internal/core/domain/model/kernel"
	"smallsquare/internal/pkg/errs"
	"smallsquare/internal/pkg/guard"
)

var (
	// ErrRestaurantIsNotConstructed is returned when using an improperly initialized Restaurant.
	ErrRestaurantIsNotConstructed = errors.New("Restaurant must be created via NewRestaurant constructor")

	// ErrNameIsRequired is returned when attempting to create a restaurant without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrTaxIDIsRequired is returned when attempting to create a restaurant without a tax ID.
	ErrTaxIDIsRequired = errs.NewValueIsRequiredError("taxId")
)

// Restaurant represents a restaurant registered on the marketplace.
type Restaurant struct {
	id      kernel.UUID
	name    string
	taxID   string
	address string
	ownerID kernel.UUID
	phone   string
	logoURL string

	guard guard.ConstructorGuard
}

// NewRestaurant creates a Restaurant with the given attributes.
// The restaurant ID, name, tax ID and owner ID are required; address, phone
// and logo URL are informational and may be empty.
func NewRestaurant(
	id kernel.UUID,
	name string,
	taxID string,
	address string,
	ownerID kernel.UUID,
	phone string,
	logoURL string,
) (*Restaurant, error) {
	if err := errors.Join(
		id.Validate(),
		ownerID.Validate(),
	); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, ErrNameIsRequired
	}
	if taxID == "" {
		return nil, ErrTaxIDIsRequired
	}

	return &Restaurant{
		id:      id,
		name:    name,
		taxID:   taxID,
		address: address,
		ownerID: ownerID,
		phone:   phone,
		logoURL: logoURL,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// RestoreRestaurant reconstructs a Restaurant from a persisted state.
// Intended for repositories; business code should use NewRestaurant.
func RestoreRestaurant(
	id kernel.UUID,
	name string,
	taxID string,
	address string,
	ownerID kernel.UUID,
	phone string,
	logoURL string,
) (*Restaurant, error) {
	return NewRestaurant(id, name, taxID, address, ownerID, phone, logoURL)
}

// Validate ensures the Restaurant was created through NewRestaurant.
func (r *Restaurant) Validate() error {
	if r == nil {
		return ErrRestaurantIsNotConstructed
	}
	return r.guard.Validate(ErrRestaurantIsNotConstructed)
}

// ID returns the restaurant's unique identifier.
func (r *Restaurant) ID() kernel.UUID {
	return r.id
}

// Name returns the restaurant's display name.
func (r *Restaurant) Name() string {
	return r.name
}

// TaxID returns the restaurant's tax identifier.
func (r *Restaurant) TaxID() string {
	return r.taxID
}

// Address returns the restaurant's street address.
func (r *Restaurant) Address() string {
	return r.address
}

// OwnerID returns the identifier of the owner user.
func (r *Restaurant) OwnerID() kernel.UUID {
	return r.ownerID
}

// Phone returns the restaurant's contact phone.
func (r *Restaurant) Phone() string {
	return r.phone
}

// LogoURL returns the URL of the restaurant's logo image.
func (r *Restaurant) LogoURL() string {
	return r.logoURL
}

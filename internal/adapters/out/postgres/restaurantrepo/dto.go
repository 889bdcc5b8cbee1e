// Package restaurantrepo provides data transfer objects and mapping functions for restaurant persistence.
// This package implements the repository pattern for the restaurant domain aggregate, handling
// the conversion between domain entities and database representations.
package restaurantrepo

import (
	"smallsquare/internal/core/domain/model/kernel"
	"smallsquare/internal/core/domain/model/restaurant"

	"github.com/google/uuid"
)

// RestaurantDTO represents the database structure for persisting restaurants.
type RestaurantDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name    string    `gorm:"type:varchar(255);not null"`
	TaxID   string    `gorm:"type:varchar(64);not null"`
	Address string    `gorm:"type:text"`
	OwnerID uuid.UUID `gorm:"type:uuid;not null;index"`
	Phone   string    `gorm:"type:varchar(32)"`
	LogoURL string    `gorm:"type:text"`
}

// TableName specifies the database table name for restaurant entities.
// Overrides GORM's default naming convention to use "restaurants".
func (RestaurantDTO) TableName() string {
	return "restaurants"
}

// fromDomain converts a restaurant domain aggregate to its database representation.
func fromDomain(aggregate *restaurant.Restaurant) RestaurantDTO {
	return RestaurantDTO{
		ID:      aggregate.ID().Bytes(),
		Name:    aggregate.Name(),
		TaxID:   aggregate.TaxID(),
		Address: aggregate.Address(),
		OwnerID: aggregate.OwnerID().Bytes(),
		Phone:   aggregate.Phone(),
		LogoURL: aggregate.LogoURL(),
	}
}

// toDomain converts a database DTO to a restaurant domain aggregate.
func toDomain(dto RestaurantDTO) (*restaurant.Restaurant, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	return restaurant.RestoreRestaurant(
		id,
		dto.Name,
		dto.TaxID,
		dto.Address,
		ownerID,
		dto.Phone,
		dto.LogoURL,
	)
}

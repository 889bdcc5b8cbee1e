// Package dishrepo provides data transfer objects and mapping functions for dish persistence.
// This package implements the repository pattern for the dish domain aggregate, handling
// the conversion between domain entities and database representations.
package dishrepo

import (
	"smallsquare/internal/core/domain/model/dish"
	"smallsquare/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DishDTO represents the database structure for persisting dishes.
// The restaurant index backs the membership lookups order creation performs.
type DishDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"type:varchar(255);not null"`
	Description  string    `gorm:"type:text"`
	Price        float64   `gorm:"not null"`
	ImageURL     string    `gorm:"type:text"`
	CategoryID   uuid.UUID `gorm:"type:uuid;not null;index"`
	RestaurantID uuid.UUID `gorm:"type:uuid;not null;index"`
	Active       bool      `gorm:"not null"`
}

// TableName specifies the database table name for dish entities.
// Overrides GORM's default naming convention to use "dishes".
func (DishDTO) TableName() string {
	return "dishes"
}

// fromDomain converts a dish domain aggregate to its database representation.
func fromDomain(aggregate *dish.Dish) DishDTO {
	return DishDTO{
		ID:           aggregate.ID().Bytes(),
		Name:         aggregate.Name(),
		Description:  aggregate.Description(),
		Price:        aggregate.Price(),
		ImageURL:     aggregate.ImageURL(),
		CategoryID:   aggregate.CategoryID().Bytes(),
		RestaurantID: aggregate.RestaurantID().Bytes(),
		Active:       aggregate.Active(),
	}
}

// toDomain converts a database DTO to a dish domain aggregate.
func toDomain(dto DishDTO) (*dish.Dish, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	categoryID, err := kernel.UUIDFromBytes(dto.CategoryID[:])
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	return dish.RestoreDish(
		id,
		dto.Name,
		dto.Description,
		dto.Price,
		dto.ImageURL,
		categoryID,
		restaurantID,
		dto.Active,
	)
}

// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"smallsquare/internal/core/domain/model/kernel"
	"smallsquare/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Orders are stored together with their owned line items; the status column
// holds the status name so it stays queryable without the domain enum.
type OrderDTO struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Date         time.Time  `gorm:"not null"`
	Status       string     `gorm:"type:text;not null;index"`
	Description  string     `gorm:"type:text"`
	ClientID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	RestaurantID uuid.UUID  `gorm:"type:uuid;not null;index"`
	ChefID       *uuid.UUID `gorm:"type:uuid;index"`

	Lines []OrderLineDTO `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderLineDTO represents one dish-and-quantity row of an order.
// The composite primary key mirrors the domain rule that a dish appears
// at most once per order.
type OrderLineDTO struct {
	OrderID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	DishID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Quantity int       `gorm:"not null"`
}

// TableName specifies the database table name for order line entities.
func (OrderLineDTO) TableName() string {
	return "order_lines"
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps the order header, the optional chef assignment and every line item.
func fromDomain(aggregate *order.Order) OrderDTO {
	var chefID *uuid.UUID
	if id := aggregate.Chef(); id != nil {
		raw := id.Bytes()
		chefID = &raw
	}

	lines := aggregate.Lines()
	lineDTOs := make([]OrderLineDTO, 0, len(lines))
	for _, line := range lines {
		lineDTOs = append(lineDTOs, OrderLineDTO{
			OrderID:  aggregate.ID().Bytes(),
			DishID:   line.DishID().Bytes(),
			Quantity: line.Quantity(),
		})
	}

	return OrderDTO{
		ID:           aggregate.ID().Bytes(),
		Date:         aggregate.Date(),
		Status:       aggregate.Status().String(),
		Description:  aggregate.Description(),
		ClientID:     aggregate.ClientID().Bytes(),
		RestaurantID: aggregate.RestaurantID().Bytes(),
		ChefID:       chefID,
		Lines:        lineDTOs,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status, chef assignment
// and line items using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	var chefID *kernel.UUID
	if dto.ChefID != nil {
		cID, chefErr := kernel.UUIDFromBytes((*dto.ChefID)[:])
		if chefErr != nil {
			return nil, chefErr
		}

		chefID = &cID
	}

	lines := make([]order.LineItem, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		dishID, dishErr := kernel.UUIDFromBytes(lineDTO.DishID[:])
		if dishErr != nil {
			return nil, dishErr
		}

		line, lineErr := order.NewLineItem(dishID, lineDTO.Quantity)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(
		id,
		dto.Date,
		status,
		dto.Description,
		clientID,
		restaurantID,
		chefID,
		lines,
	)
}

package queries

import (
	"context"

	"smallsquare/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersQueryHandler lists a restaurant's orders by status, paged.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for paged order listings.
// Requires a GORM database connection for query execution.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the query to list orders of one restaurant in one status.
// Results are ordered by date, oldest first, so the kitchen works the
// backlog in arrival order. Line items are not loaded; the single-order
// query returns them.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetOrderQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			date,
			status,
			description,
			client_id,
			restaurant_id,
			chef_id
		FROM orders
		WHERE restaurant_id = ? AND status = ?
		ORDER BY date, id
		LIMIT ? OFFSET ?
	`, query.RestaurantID().String(), query.Status().String(), query.Take(), query.Skip()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var response GetOrderQueryResponse
		var id, clientID, restaurantID uuid.UUID
		var chefID uuid.NullUUID

		err = rows.Scan(
			&id,
			&response.Date,
			&response.Status,
			&response.Description,
			&clientID,
			&restaurantID,
			&chefID,
		)
		if err != nil {
			return nil, err
		}

		if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if response.ClientID, err = kernel.UUIDFromBytes(clientID[:]); err != nil {
			return nil, err
		}
		if response.RestaurantID, err = kernel.UUIDFromBytes(restaurantID[:]); err != nil {
			return nil, err
		}
		if chefID.Valid {
			chef, chefErr := kernel.UUIDFromBytes(chefID.UUID[:])
			if chefErr != nil {
				return nil, chefErr
			}
			response.ChefID = &chef
		}

		orders = append(orders, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

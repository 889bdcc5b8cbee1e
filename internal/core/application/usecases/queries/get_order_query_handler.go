package queries

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"smallsquare/internal/core/domain/model/kernel"
	"smallsquare/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves one order and its line items from the
// database. Uses direct SQL queries for optimal read performance in the
// CQRS pattern.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order retrieval.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query to retrieve one order with its line items.
// Returns a not-found error when no order exists under the given id.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var response GetOrderQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			date,
			status,
			description,
			client_id,
			restaurant_id,
			chef_id
		FROM orders
		WHERE id = ?
	`, query.OrderID().String()).Row()

	var id, clientID, restaurantID uuid.UUID
	var chefID uuid.NullUUID
	err := row.Scan(
		&id,
		&response.Date,
		&response.Status,
		&response.Description,
		&clientID,
		&restaurantID,
		&chefID,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundErrorWithCause("orderId", query.OrderID(), err)
	}
	if err != nil {
		return GetOrderQueryResponse{}, fmt.Errorf("scan order %s: %w", query.OrderID(), err)
	}

	if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if response.ClientID, err = kernel.UUIDFromBytes(clientID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if response.RestaurantID, err = kernel.UUIDFromBytes(restaurantID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if chefID.Valid {
		chef, chefErr := kernel.UUIDFromBytes(chefID.UUID[:])
		if chefErr != nil {
			return GetOrderQueryResponse{}, chefErr
		}
		response.ChefID = &chef
	}

	lines, err := h.loadLines(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	response.Lines = lines

	return response, nil
}

func (h GetOrderQueryHandler) loadLines(ctx context.Context, orderID kernel.UUID) ([]OrderLineResponse, error) {
	lines := make([]OrderLineResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			dish_id,
			quantity
		FROM order_lines
		WHERE order_id = ?
		ORDER BY dish_id
	`, orderID.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var line OrderLineResponse
		var dishID uuid.UUID

		if err = rows.Scan(&dishID, &line.Quantity); err != nil {
			return nil, err
		}

		if line.DishID, err = kernel.UUIDFromBytes(dishID[:]); err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}

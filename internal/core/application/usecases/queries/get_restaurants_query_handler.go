package queries

import (
	"context"

	"smallsquare/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetRestaurantsQueryHandler lists restaurants for the storefront.
type GetRestaurantsQueryHandler struct {
	db *gorm.DB
}

// NewGetRestaurantsQueryHandler creates a handler for restaurant listings.
// Requires a GORM database connection for query execution.
func NewGetRestaurantsQueryHandler(db *gorm.DB) GetRestaurantsQueryHandler {
	return GetRestaurantsQueryHandler{db: db}
}

// Handle executes the query to list restaurants sorted by name.
func (h GetRestaurantsQueryHandler) Handle(
	ctx context.Context,
	query GetRestaurantsQuery,
) ([]RestaurantResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	restaurants := make([]RestaurantResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			logo_url
		FROM restaurants
		ORDER BY name, id
		LIMIT ? OFFSET ?
	`, query.Take(), query.Skip()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var response RestaurantResponse
		var id uuid.UUID

		if err = rows.Scan(&id, &response.Name, &response.LogoURL); err != nil {
			return nil, err
		}

		if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		restaurants = append(restaurants, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return restaurants, nil
}

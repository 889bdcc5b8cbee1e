package queries

import (
	"context"

	"smallsquare/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDishesQueryHandler lists the active dishes of one restaurant's menu.
type GetDishesQueryHandler struct {
	db *gorm.DB
}

// NewGetDishesQueryHandler creates a handler for menu listings.
// Requires a GORM database connection for query execution.
func NewGetDishesQueryHandler(db *gorm.DB) GetDishesQueryHandler {
	return GetDishesQueryHandler{db: db}
}

// Handle executes the query to list a restaurant's active dishes.
// Inactive dishes never appear: they are kept for historical orders only.
func (h GetDishesQueryHandler) Handle(
	ctx context.Context,
	query GetDishesQuery,
) ([]DishResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			name,
			description,
			price,
			image_url,
			category_id
		FROM dishes
		WHERE restaurant_id = ? AND active
	`
	args := []any{query.RestaurantID().String()}

	if category := query.CategoryID(); category != nil {
		sql += ` AND category_id = ?`
		args = append(args, category.String())
	}
	sql += ` ORDER BY name, id`

	dishes := make([]DishResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var response DishResponse
		var id, categoryID uuid.UUID

		err = rows.Scan(
			&id,
			&response.Name,
			&response.Description,
			&response.Price,
			&response.ImageURL,
			&categoryID,
		)
		if err != nil {
			return nil, err
		}

		if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if response.CategoryID, err = kernel.UUIDFromBytes(categoryID[:]); err != nil {
			return nil, err
		}
		dishes = append(dishes, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return dishes, nil
}

package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOrderBoardQueryHandler counts orders per status in the database.
type GetOrderBoardQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderBoardQueryHandler creates a handler for the order board query.
// Requires a GORM database connection for query execution.
func NewGetOrderBoardQueryHandler(db *gorm.DB) GetOrderBoardQueryHandler {
	return GetOrderBoardQueryHandler{db: db}
}

// Handle executes the query counting orders per lifecycle status.
// Statuses with no orders are absent from the result. Results are sorted
// by status name for consistent output.
func (h GetOrderBoardQueryHandler) Handle(
	ctx context.Context,
	query GetOrderBoardQuery,
) ([]OrderBoardEntry, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	board := make([]OrderBoardEntry, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			COUNT(*)
		FROM orders
		GROUP BY status
		ORDER BY status
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry OrderBoardEntry

		if err = rows.Scan(&entry.Status, &entry.Count); err != nil {
			return nil, err
		}
		board = append(board, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return board, nil
}

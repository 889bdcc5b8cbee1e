package queries

import (
	"errors"

	"smallsquare/internal/pkg/guard"
)

var ErrGetOrderBoardQueryIsNotConstructed = errors.New(
	"GetOrderBoardQuery must be created via NewGetOrderBoardQuery constructor",
)

// GetOrderBoardQuery counts orders per lifecycle status across the whole
// marketplace. The periodic board job uses it to surface the in-flight
// workload in the logs.
//
// Example:
//
//	query := NewGetOrderBoardQuery()
//	handler := NewGetOrderBoardQueryHandler(db)
//
//	board, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get order board: %w", err)
//	}
//	for _, entry := range board {
//	    fmt.Printf("%s: %d\n", entry.Status, entry.Count)
//	}
type GetOrderBoardQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrderBoardQuery creates a query counting orders per status.
// This is a parameterless query covering every restaurant.
func NewGetOrderBoardQuery() GetOrderBoardQuery {
	return GetOrderBoardQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderBoardQueryIsNotConstructed if validation fails.
func (q GetOrderBoardQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderBoardQueryIsNotConstructed)
}

// OrderBoardEntry is one status bucket of the order board.
type OrderBoardEntry struct {
	Status string
	Count  int
}

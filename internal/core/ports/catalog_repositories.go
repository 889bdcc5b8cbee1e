package ports

import (
	"context"

	"smallsquare/internal/core/domain/model/dish"
	"smallsquare/internal/core/domain/model/employee"
	"smallsquare/internal/core/domain/model/kernel"
	"smallsquare/internal/core/domain/model/restaurant"
)

// RestaurantRepository defines the persistence contract for restaurants.
type RestaurantRepository interface {
	// Add persists a new restaurant.
	Add(ctx context.Context, aggregate *restaurant.Restaurant) error

	// Get retrieves a restaurant by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error)
}

// DishRepository defines the persistence contract for dishes.
type DishRepository interface {
	// Add persists a new dish.
	Add(ctx context.Context, aggregate *dish.Dish) error

	// Update persists changes to an existing dish.
	Update(ctx context.Context, aggregate *dish.Dish) error

	// Get retrieves a dish by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*dish.Dish, error)

	// GetByIDsAndRestaurant retrieves the dishes among ids that belong to the
	// given restaurant. The result is the input to dish membership validation:
	// dishes of other restaurants are silently absent from it.
	GetByIDsAndRestaurant(ctx context.Context, ids []kernel.UUID, restaurantID kernel.UUID) ([]*dish.Dish, error)
}

// EmployeeRepository defines the persistence contract for kitchen employees.
type EmployeeRepository interface {
	// Add persists a new employee.
	Add(ctx context.Context, aggregate *employee.Employee) error

	// GetByUserAndRestaurant retrieves the employee that links the given
	// identity-service user to the given restaurant. Used to verify chef
	// references on order creation and assignment.
	GetByUserAndRestaurant(ctx context.Context, userID kernel.UUID, restaurantID kernel.UUID) (*employee.Employee, error)
}

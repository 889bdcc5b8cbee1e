package http

import (
	"time"

	"github.com/google/uuid"
)

// Error is the JSON error envelope every failing endpoint returns.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreatedResponse carries the server-assigned id of a newly created resource.
type CreatedResponse struct {
	ID uuid.UUID `json:"id"`
}

// NewRestaurant is the request body for restaurant registration.
type NewRestaurant struct {
	Name    string    `json:"name"`
	TaxID   string    `json:"taxId"`
	Address string    `json:"address"`
	OwnerID uuid.UUID `json:"ownerId"`
	Phone   string    `json:"phone"`
	LogoURL string    `json:"logoUrl"`
}

// Restaurant is the storefront restaurant listing entry.
type Restaurant struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	LogoURL string    `json:"logoUrl"`
}

// NewEmployee is the request body for registering a kitchen employee.
type NewEmployee struct {
	Name     string `json:"name"`
	LastName string `json:"lastName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// NewDish is the request body for adding a dish to a restaurant's menu.
type NewDish struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	ImageURL    string    `json:"imageUrl"`
	CategoryID  uuid.UUID `json:"categoryId"`
}

// DishUpdate is the request body for updating a dish's menu attributes.
type DishUpdate struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"imageUrl"`
	Active      bool    `json:"active"`
}

// Dish is the menu listing entry.
type Dish struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	ImageURL    string    `json:"imageUrl"`
	CategoryID  uuid.UUID `json:"categoryId"`
}

// NewOrderLine is one dish-and-quantity entry of an order request.
type NewOrderLine struct {
	DishID   uuid.UUID `json:"dishId"`
	Quantity int       `json:"quantity"`
}

// NewOrder is the request body for placing an order. The ordering client is
// identified by the X-Client-Id header, not the body.
type NewOrder struct {
	RestaurantID uuid.UUID      `json:"restaurantId"`
	ChefID       uuid.UUID      `json:"chefId"`
	Description  string         `json:"description"`
	Lines        []NewOrderLine `json:"lines"`
}

// OrderLine is one dish-and-quantity entry of an order response.
type OrderLine struct {
	DishID   uuid.UUID `json:"dishId"`
	Quantity int       `json:"quantity"`
}

// Order is the order read model returned by the order endpoints.
type Order struct {
	ID           uuid.UUID   `json:"id"`
	Date         time.Time   `json:"date"`
	Status       string      `json:"status"`
	Description  string      `json:"description,omitempty"`
	ClientID     uuid.UUID   `json:"clientId"`
	RestaurantID uuid.UUID   `json:"restaurantId"`
	ChefID       *uuid.UUID  `json:"chefId,omitempty"`
	Lines        []OrderLine `json:"lines,omitempty"`
}

// ChefAssignment is the request body for assigning a chef to an order.
type ChefAssignment struct {
	ChefID       uuid.UUID `json:"chefId"`
	RestaurantID uuid.UUID `json:"restaurantId"`
}

// StatusChange is the request body for both status transition endpoints.
type StatusChange struct {
	Status string `json:"status"`
}

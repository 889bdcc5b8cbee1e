package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"smallsquare/internal/core/application/usecases/commands"
	"smallsquare/internal/core/domain/model/dish"
	"smallsquare/internal/core/domain/model/employee"
	"smallsquare/internal/core/domain/model/kernel"
	"smallsquare/internal/core/domain/model/order"
	"smallsquare/internal/core/domain/model/restaurant"
	"smallsquare/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByClientAndStatus(
	ctx context.Context, clientID kernel.UUID, status order.Status,
) (*order.Order, error) {
	args := m.Called(ctx, clientID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockRestaurantRepository struct{ mock.Mock }

func (m *MockRestaurantRepository) Add(ctx context.Context, aggregate *restaurant.Restaurant) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockRestaurantRepository) Get(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*restaurant.Restaurant), args.Error(1)
}

type MockDishRepository struct{ mock.Mock }

func (m *MockDishRepository) Add(ctx context.Context, aggregate *dish.Dish) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockDishRepository) Update(ctx context.Context, aggregate *dish.Dish) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockDishRepository) Get(ctx context.Context, id kernel.UUID) (*dish.Dish, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dish.Dish), args.Error(1)
}

func (m *MockDishRepository) GetByIDsAndRestaurant(
	ctx context.Context, ids []kernel.UUID, restaurantID kernel.UUID,
) ([]*dish.Dish, error) {
	args := m.Called(ctx, ids, restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*dish.Dish), args.Error(1)
}

type MockEmployeeRepository struct{ mock.Mock }

func (m *MockEmployeeRepository) Add(ctx context.Context, aggregate *employee.Employee) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockEmployeeRepository) GetByUserAndRestaurant(
	ctx context.Context, userID kernel.UUID, restaurantID kernel.UUID,
) (*employee.Employee, error) {
	args := m.Called(ctx, userID, restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*employee.Employee), args.Error(1)
}

// MockUoW implements the cross-aggregate unit of work used by order creation
// and chef assignment.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) RestaurantRepository() ports.RestaurantRepository {
	args := m.Called()
	return args.Get(0).(ports.RestaurantRepository)
}

func (m *MockUoW) DishRepository() ports.DishRepository {
	args := m.Called()
	return args.Get(0).(ports.DishRepository)
}

func (m *MockUoW) EmployeeRepository() ports.EmployeeRepository {
	args := m.Called()
	return args.Get(0).(ports.EmployeeRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

// MockOrderUoW implements the order-only unit of work used by the two status
// transition paths.
type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

// MockCatalogUoW implements the catalog unit of work used by restaurant,
// dish and employee registration.
type MockCatalogUoW struct{ mock.Mock }

func (m *MockCatalogUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCatalogUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCatalogUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCatalogUoW) RestaurantRepository() ports.RestaurantRepository {
	args := m.Called()
	return args.Get(0).(ports.RestaurantRepository)
}

func (m *MockCatalogUoW) DishRepository() ports.DishRepository {
	args := m.Called()
	return args.Get(0).(ports.DishRepository)
}

func (m *MockCatalogUoW) EmployeeRepository() ports.EmployeeRepository {
	args := m.Called()
	return args.Get(0).(ports.EmployeeRepository)
}

type MockCatalogUoWFactory struct{ mock.Mock }

func (m *MockCatalogUoWFactory) Create() commands.CatalogUoW {
	args := m.Called()
	return args.Get(0).(commands.CatalogUoW)
}

type MockIdentityClient struct{ mock.Mock }

func (m *MockIdentityClient) GetUser(ctx context.Context, id kernel.UUID) (ports.IdentityUser, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(ports.IdentityUser), args.Error(1)
}

func (m *MockIdentityClient) SignUp(ctx context.Context, req ports.SignUpRequest) (kernel.UUID, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(kernel.UUID), args.Error(1)
}

type MockOrderEventPublisher struct{ mock.Mock }

func (m *MockOrderEventPublisher) PublishOrderCreated(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderEventPublisher) PublishOrderStatusChanged(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

// Shared test helpers.

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func validLines(t *testing.T, count int) []order.LineItem {
	t.Helper()
	lines := make([]order.LineItem, 0, count)
	for range count {
		item, err := order.NewLineItem(kernel.NewUUID(), 1)
		require.NoError(t, err)
		lines = append(lines, item)
	}
	return lines
}

func validOrderDate() time.Time {
	return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
}

func buildRestaurant(t *testing.T, id kernel.UUID) *restaurant.Restaurant {
	t.Helper()
	r, err := restaurant.NewRestaurant(id, "La Plaza", "900123456", "", kernel.NewUUID(), "", "")
	require.NoError(t, err)
	return r
}

func buildEmployee(t *testing.T, userID, restaurantID kernel.UUID) *employee.Employee {
	t.Helper()
	e, err := employee.NewEmployee(kernel.NewUUID(), userID, restaurantID)
	require.NoError(t, err)
	return e
}

func buildOrder(t *testing.T, clientID, restaurantID kernel.UUID) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), validOrderDate(), "table 4", clientID, restaurantID, validLines(t, 1))
	require.NoError(t, err)
	return o
}

func dishesFor(t *testing.T, lines []order.LineItem, restaurantID kernel.UUID) []*dish.Dish {
	t.Helper()
	dishes := make([]*dish.Dish, 0, len(lines))
	for _, line := range lines {
		d, err := dish.NewDish(line.DishID(), "Test Dish", "", 1000, "", kernel.NewUUID(), restaurantID, true)
		require.NoError(t, err)
		dishes = append(dishes, d)
	}
	return dishes
}

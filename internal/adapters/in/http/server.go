// Package http exposes the marketplace's use cases over a JSON REST API.
// Request bodies are decoded into transport types, converted into guarded
// commands and queries, and dispatched to the application layer; errors map
// onto HTTP status codes in writeError.
package http

import (
	"net/http"
	"strconv"
	"time"

	"smallsquare/internal/core/application/usecases/commands"
	"smallsquare/internal/core/application/usecases/queries"
	"smallsquare/internal/core/domain/model/kernel"
	"smallsquare/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	clientIDHeader = "X-Client-Id"

	defaultPageSize = 20
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	assignChefHandler        commands.AssignChefCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler
	cancelOrderHandler       commands.CancelOrderCommandHandler
	createRestaurantHandler  commands.CreateRestaurantCommandHandler
	registerEmployeeHandler  commands.RegisterEmployeeCommandHandler
	createDishHandler        commands.CreateDishCommandHandler
	updateDishHandler        commands.UpdateDishCommandHandler

	// Query handlers
	getOrderHandler       queries.GetOrderQueryHandler
	getOrdersHandler      queries.GetOrdersQueryHandler
	getRestaurantsHandler queries.GetRestaurantsQueryHandler
	getDishesHandler      queries.GetDishesQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	assignChefHandler commands.AssignChefCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	createRestaurantHandler commands.CreateRestaurantCommandHandler,
	registerEmployeeHandler commands.RegisterEmployeeCommandHandler,
	createDishHandler commands.CreateDishCommandHandler,
	updateDishHandler commands.UpdateDishCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getRestaurantsHandler queries.GetRestaurantsQueryHandler,
	getDishesHandler queries.GetDishesQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		assignChefHandler:        assignChefHandler,
		updateOrderStatusHandler: updateOrderStatusHandler,
		cancelOrderHandler:       cancelOrderHandler,
		createRestaurantHandler:  createRestaurantHandler,
		registerEmployeeHandler:  registerEmployeeHandler,
		createDishHandler:        createDishHandler,
		updateDishHandler:        updateDishHandler,
		getOrderHandler:          getOrderHandler,
		getOrdersHandler:         getOrdersHandler,
		getRestaurantsHandler:    getRestaurantsHandler,
		getDishesHandler:         getDishesHandler,
	}
}

// RegisterRoutes binds every endpoint under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/restaurants", s.CreateRestaurant)
	api.GET("/restaurants", s.GetRestaurants)
	api.POST("/restaurants/:restaurantId/employees", s.RegisterEmployee)
	api.POST("/restaurants/:restaurantId/dishes", s.CreateDish)
	api.PUT("/restaurants/:restaurantId/dishes/:dishId", s.UpdateDish)
	api.GET("/restaurants/:restaurantId/dishes", s.GetDishes)
	api.GET("/restaurants/:restaurantId/orders", s.GetOrders)

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/:orderId", s.GetOrder)
	api.PUT("/orders/:orderId/chef", s.AssignChef)
	api.PUT("/orders/:orderId/status", s.UpdateOrderStatus)
	api.PUT("/orders/:orderId/cancellation", s.CancelOrder)
}

// CreateRestaurant handles POST /api/v1/restaurants.
func (s *Server) CreateRestaurant(ctx echo.Context) error {
	var body NewRestaurant
	if err := ctx.Bind(&body); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	ownerID, err := kernel.UUIDFromBytes(body.OwnerID[:])
	if err != nil {
		return writeError(ctx, err)
	}

	restaurantID := kernel.NewUUID()
	cmd, err := commands.NewCreateRestaurantCommand(
		restaurantID,
		body.Name,
		body.TaxID,
		body.Address,
		ownerID,
		body.Phone,
		body.LogoURL,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.createRestaurantHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: restaurantID.Bytes()})
}

// GetRestaurants handles GET /api/v1/restaurants.
func (s *Server) GetRestaurants(ctx echo.Context) error {
	take, skip, err := paging(ctx)
	if err != nil {
		return writeBadRequest(ctx, "Invalid paging parameters")
	}

	query, err := queries.NewGetRestaurantsQuery(take, skip)
	if err != nil {
		return writeError(ctx, err)
	}

	restaurants, err := s.getRestaurantsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]Restaurant, len(restaurants))
	for i, r := range restaurants {
		response[i] = Restaurant{
			ID:      r.ID.Bytes(),
			Name:    r.Name,
			LogoURL: r.LogoURL,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// RegisterEmployee handles POST /api/v1/restaurants/{restaurantId}/employees.
func (s *Server) RegisterEmployee(ctx echo.Context) error {
	restaurantID, err := pathUUID(ctx, "restaurantId")
	if err != nil {
		return writeBadRequest(ctx, "Invalid restaurant id")
	}

	var body NewEmployee
	if err := ctx.Bind(&body); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	employeeID := kernel.NewUUID()
	cmd, err := commands.NewRegisterEmployeeCommand(
		employeeID,
		restaurantID,
		body.Name,
		body.LastName,
		body.Email,
		body.Phone,
		body.Password,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.registerEmployeeHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: employeeID.Bytes()})
}

// CreateDish handles POST /api/v1/restaurants/{restaurantId}/dishes.
func (s *Server) CreateDish(ctx echo.Context) error {
	restaurantID, err := pathUUID(ctx, "restaurantId")
	if err != nil {
		return writeBadRequest(ctx, "Invalid restaurant id")
	}

	var body NewDish
	if err := ctx.Bind(&body); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	categoryID, err := kernel.UUIDFromBytes(body.CategoryID[:])
	if err != nil {
		return writeError(ctx, err)
	}

	dishID := kernel.NewUUID()
	cmd, err := commands.NewCreateDishCommand(
		dishID,
		body.Name,
		body.Description,
		body.Price,
		body.ImageURL,
		categoryID,
		restaurantID,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.createDishHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: dishID.Bytes()})
}

// UpdateDish handles PUT /api/v1/restaurants/{restaurantId}/dishes/{dishId}.
func (s *Server) UpdateDish(ctx echo.Context) error {
	restaurantID, err := pathUUID(ctx, "restaurantId")
	if err != nil {
		return writeBadRequest(ctx, "Invalid restaurant id")
	}

	dishID, err := pathUUID(ctx, "dishId")
	if err != nil {
		return writeBadRequest(ctx, "Invalid dish id")
	}

	var body DishUpdate
	if err := ctx.Bind(&body); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateDishCommand(
		dishID,
		restaurantID,
		body.Name,
		body.Description,
		body.Price,
		body.ImageURL,
		body.Active,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.updateDishHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetDishes handles GET /api/v1/restaurants/{restaurantId}/dishes.
func (s *Server) GetDishes(ctx echo.Context) error {
	restaurantID, err := pathUUID(ctx, "restaurantId")
	if err != nil {
		return writeBadRequest(ctx, "Invalid restaurant id")
	}

	var categoryID *kernel.UUID
	if raw := ctx.QueryParam("categoryId"); raw != "" {
		id, parseErr := kernel.UUIDFromString(raw)
		if parseErr != nil {
			return writeBadRequest(ctx, "Invalid category id")
		}
		categoryID = &id
	}

	query, err := queries.NewGetDishesQuery(restaurantID, categoryID)
	if err != nil {
		return writeError(ctx, err)
	}

	dishes, err := s.getDishesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]Dish, len(dishes))
	for i, d := range dishes {
		response[i] = Dish{
			ID:          d.ID.Bytes(),
			Name:        d.Name,
			Description: d.Description,
			Price:       d.Price,
			ImageURL:    d.ImageURL,
			CategoryID:  d.CategoryID.Bytes(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders. The ordering client is identified
// by the X-Client-Id header; impersonating another client in the body is not
// possible because the body carries no client id.
func (s *Server) CreateOrder(ctx echo.Context) error {
	clientID, err := kernel.UUIDFromString(ctx.Request().Header.Get(clientIDHeader))
	if err != nil {
		return writeBadRequest(ctx, "Missing or invalid "+clientIDHeader+" header")
	}

	var body NewOrder
	if err := ctx.Bind(&body); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	restaurantID, err := kernel.UUIDFromBytes(body.RestaurantID[:])
	if err != nil {
		return writeError(ctx, err)
	}

	chefUserID, err := kernel.UUIDFromBytes(body.ChefID[:])
	if err != nil {
		return writeError(ctx, err)
	}

	lines := make([]order.LineItem, 0, len(body.Lines))
	for _, l := range body.Lines {
		dishID, lineErr := kernel.UUIDFromBytes(l.DishID[:])
		if lineErr != nil {
			return writeError(ctx, lineErr)
		}

		line, lineErr := order.NewLineItem(dishID, l.Quantity)
		if lineErr != nil {
			return writeError(ctx, lineErr)
		}
		lines = append(lines, line)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID,
		time.Now().UTC(),
		body.Description,
		clientID,
		restaurantID,
		chefUserID,
		lines,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderFromDomain(created))
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return writeBadRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	o, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(o))
}

// GetOrders handles GET /api/v1/restaurants/{restaurantId}/orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	restaurantID, err := pathUUID(ctx, "restaurantId")
	if err != nil {
		return writeBadRequest(ctx, "Invalid restaurant id")
	}

	status, err := order.ParseStatus(ctx.QueryParam("status"))
	if err != nil {
		return writeBadRequest(ctx, "Invalid status")
	}

	take, skip, err := paging(ctx)
	if err != nil {
		return writeBadRequest(ctx, "Invalid paging parameters")
	}

	query, err := queries.NewGetOrdersQuery(restaurantID, status, take, skip)
	if err != nil {
		return writeError(ctx, err)
	}

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]Order, len(orders))
	for i, o := range orders {
		response[i] = toOrderResponse(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// AssignChef handles PUT /api/v1/orders/{orderId}/chef.
func (s *Server) AssignChef(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return writeBadRequest(ctx, "Invalid order id")
	}

	var body ChefAssignment
	if err := ctx.Bind(&body); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	chefUserID, err := kernel.UUIDFromBytes(body.ChefID[:])
	if err != nil {
		return writeError(ctx, err)
	}

	restaurantID, err := kernel.UUIDFromBytes(body.RestaurantID[:])
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewAssignChefCommand(orderID, chefUserID, restaurantID)
	if err != nil {
		return writeError(ctx, err)
	}

	assigned, err := s.assignChefHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromDomain(assigned))
}

// UpdateOrderStatus handles PUT /api/v1/orders/{orderId}/status.
// This is the delivery path: the requested status is applied through the
// delivery-path guards.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	return s.handleStatusChange(ctx, func(cmd commands.UpdateOrderStatusCommand) (*order.Order, error) {
		return s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// CancelOrder handles PUT /api/v1/orders/{orderId}/cancellation.
// This is the cancellation path: only Pending orders pass its guard.
func (s *Server) CancelOrder(ctx echo.Context) error {
	return s.handleStatusChange(ctx, func(cmd commands.UpdateOrderStatusCommand) (*order.Order, error) {
		return s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd)
	})
}

func (s *Server) handleStatusChange(
	ctx echo.Context,
	handle func(commands.UpdateOrderStatusCommand) (*order.Order, error),
) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return writeBadRequest(ctx, "Invalid order id")
	}

	var body StatusChange
	if err := ctx.Bind(&body); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	status, err := order.ParseStatus(body.Status)
	if err != nil {
		return writeBadRequest(ctx, "Invalid status")
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, status)
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := handle(cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromDomain(updated))
}

// orderFromDomain renders a freshly mutated aggregate so write endpoints can
// answer with the resulting order without a follow-up read.
func orderFromDomain(o *order.Order) Order {
	var chefID *uuid.UUID
	if o.Chef() != nil {
		raw := o.Chef().Bytes()
		chefID = &raw
	}

	lines := make([]OrderLine, len(o.Lines()))
	for i, l := range o.Lines() {
		lines[i] = OrderLine{DishID: l.DishID().Bytes(), Quantity: l.Quantity()}
	}

	return Order{
		ID:           o.ID().Bytes(),
		Date:         o.Date(),
		Status:       o.Status().String(),
		Description:  o.Description(),
		ClientID:     o.ClientID().Bytes(),
		RestaurantID: o.RestaurantID().Bytes(),
		ChefID:       chefID,
		Lines:        lines,
	}
}

func toOrderResponse(o queries.GetOrderQueryResponse) Order {
	var chefID *uuid.UUID
	if o.ChefID != nil {
		raw := o.ChefID.Bytes()
		chefID = &raw
	}

	lines := make([]OrderLine, len(o.Lines))
	for i, l := range o.Lines {
		lines[i] = OrderLine{DishID: l.DishID.Bytes(), Quantity: l.Quantity}
	}

	return Order{
		ID:           o.ID.Bytes(),
		Date:         o.Date,
		Status:       o.Status,
		Description:  o.Description,
		ClientID:     o.ClientID.Bytes(),
		RestaurantID: o.RestaurantID.Bytes(),
		ChefID:       chefID,
		Lines:        lines,
	}
}

// pathUUID parses a UUID path parameter.
func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param(name))
}

// paging reads the take and skip query parameters, applying defaults.
func paging(ctx echo.Context) (int, int, error) {
	take := defaultPageSize
	if raw := ctx.QueryParam("take"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return 0, 0, err
		}
		take = parsed
	}

	skip := 0
	if raw := ctx.QueryParam("skip"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return 0, 0, err
		}
		skip = parsed
	}

	return take, skip, nil
}

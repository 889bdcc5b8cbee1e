// Package rabbitmq implements the OrderEventPublisher port on top of a
// RabbitMQ topic exchange. Kitchen displays and tracking views subscribe
// to the routing keys published here.
package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"smallsquare/internal/core/domain/model/order"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	exchangeName = "orders"

	orderCreatedKey       = "order.created"
	orderStatusChangedKey = "order.status_changed"
)

// OrderEventPublisher publishes order lifecycle events to RabbitMQ.
type OrderEventPublisher struct {
	conn    *amqp.Connection
	channel *amqp.Channel
}

// NewOrderEventPublisher connects to RabbitMQ and declares the orders exchange.
// The caller owns the publisher and must Close it on shutdown.
func NewOrderEventPublisher(amqpURL string) (*OrderEventPublisher, error) {
	conn, err := amqp.Dial(amqpURL)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open rabbitmq channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		exchangeName,
		amqp.ExchangeTopic,
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		_ = channel.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange %q: %w", exchangeName, err)
	}

	return &OrderEventPublisher{conn: conn, channel: channel}, nil
}

// Close releases the channel and connection.
func (p *OrderEventPublisher) Close() error {
	if err := p.channel.Close(); err != nil {
		_ = p.conn.Close()
		return err
	}
	return p.conn.Close()
}

// orderLineEvent is one line item within an order event payload.
type orderLineEvent struct {
	DishID   string `json:"dishId"`
	Quantity int    `json:"quantity"`
}

// orderEvent is the wire payload for order lifecycle events.
type orderEvent struct {
	OrderID      string           `json:"orderId"`
	Date         time.Time        `json:"date"`
	Status       string           `json:"status"`
	Description  string           `json:"description,omitempty"`
	ClientID     string           `json:"clientId"`
	RestaurantID string           `json:"restaurantId"`
	ChefID       string           `json:"chefId,omitempty"`
	Lines        []orderLineEvent `json:"lines"`
}

// PublishOrderCreated emits an event for a freshly created order.
func (p *OrderEventPublisher) PublishOrderCreated(ctx context.Context, aggregate *order.Order) error {
	return p.publish(ctx, orderCreatedKey, aggregate)
}

// PublishOrderStatusChanged emits an event after a status transition.
func (p *OrderEventPublisher) PublishOrderStatusChanged(ctx context.Context, aggregate *order.Order) error {
	return p.publish(ctx, orderStatusChangedKey, aggregate)
}

func (p *OrderEventPublisher) publish(ctx context.Context, routingKey string, aggregate *order.Order) error {
	body, err := json.Marshal(fromAggregate(aggregate))
	if err != nil {
		return fmt.Errorf("encode %s event: %w", routingKey, err)
	}

	err = p.channel.PublishWithContext(
		ctx,
		exchangeName,
		routingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish %s event: %w", routingKey, err)
	}

	return nil
}

func fromAggregate(aggregate *order.Order) orderEvent {
	lines := aggregate.Lines()
	lineEvents := make([]orderLineEvent, 0, len(lines))
	for _, line := range lines {
		lineEvents = append(lineEvents, orderLineEvent{
			DishID:   line.DishID().String(),
			Quantity: line.Quantity(),
		})
	}

	event := orderEvent{
		OrderID:      aggregate.ID().String(),
		Date:         aggregate.Date(),
		Status:       aggregate.Status().String(),
		Description:  aggregate.Description(),
		ClientID:     aggregate.ClientID().String(),
		RestaurantID: aggregate.RestaurantID().String(),
		Lines:        lineEvents,
	}
	if chef := aggregate.Chef(); chef != nil {
		event.ChefID = chef.String()
	}

	return event
}

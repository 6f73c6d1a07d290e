package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"hospitalfood/internal/core/domain/model/order"
	"hospitalfood/internal/core/ports"

	amqp "github.com/rabbitmq/amqp091-go"
)

// DefaultExchange receives every order status change.
const DefaultExchange = "order_status_fanout"

var _ ports.OrderEventPublisher = (*OrderEventPublisher)(nil)

// StatusChangedMessage is the JSON body of one published event.
type StatusChangedMessage struct {
	OrderID    string    `json:"orderId"`
	Axis       string    `json:"axis"`
	From       string    `json:"from"`
	To         string    `json:"to"`
	OccurredAt time.Time `json:"occurredAt"`
}

// OrderEventPublisher writes status changes to a durable fanout exchange.
type OrderEventPublisher struct {
	conn     Connection
	exchange string
}

func NewOrderEventPublisher(conn Connection, exchange string) *OrderEventPublisher {
	if exchange == "" {
		exchange = DefaultExchange
	}
	return &OrderEventPublisher{conn: conn, exchange: exchange}
}

// PublishStatusChanged sends the events in order on one channel and stops at the first failure.
func (p *OrderEventPublisher) PublishStatusChanged(ctx context.Context, events []order.StatusChanged) error {
	if len(events) == 0 {
		return nil
	}

	ch, err := p.conn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()

	if err = ch.ExchangeDeclare(p.exchange, amqp.ExchangeFanout, true, false, false, false, nil); err != nil {
		return fmt.Errorf("failed to declare exchange: %w", err)
	}

	for _, event := range events {
		body, marshalErr := json.Marshal(StatusChangedMessage{
			OrderID:    event.OrderID.String(),
			Axis:       string(event.Axis),
			From:       event.From,
			To:         event.To,
			OccurredAt: event.OccurredAt,
		})
		if marshalErr != nil {
			return fmt.Errorf("failed to marshal message: %w", marshalErr)
		}

		err = ch.PublishWithContext(ctx, p.exchange, "", false, false, amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			MessageId:    event.OrderID.String(),
			Timestamp:    event.OccurredAt,
			Type:         "order.status_changed",
			Body:         body,
		})
		if err != nil {
			return fmt.Errorf("failed to publish status change of order %s: %w", event.OrderID, err)
		}
	}

	return nil
}

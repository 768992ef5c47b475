package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/rabbitmq/amqp091-go"
)

// DefaultExchange is the fanout exchange kitchen displays bind to.
const DefaultExchange = "orders_fanout"

const publishTimeout = 10 * time.Second

// Publisher sends submitted orders to a RabbitMQ fanout exchange.
type Publisher struct {
	conn     *amqp091.Connection
	channel  *amqp091.Channel
	exchange string
}

// NewPublisher connects to the broker at url and declares the exchange.
func NewPublisher(url, exchange string) (*Publisher, error) {
	if exchange == "" {
		exchange = DefaultExchange
	}

	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		exchange, // name
		"fanout", // kind
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange %s: %w", exchange, err)
	}

	return &Publisher{conn: conn, channel: ch, exchange: exchange}, nil
}

// Dispatch publishes the order as a persistent JSON message.
func (p *Publisher) Dispatch(ctx context.Context, msg Outbound) error {
	publishing, err := encode(msg, time.Now())
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = p.channel.PublishWithContext(
		ctx,
		p.exchange, // exchange
		"",         // routing key
		false,      // mandatory
		false,      // immediate
		publishing,
	)
	if err != nil {
		return fmt.Errorf("failed to publish order %d: %w", msg.BillNumber, err)
	}

	slog.Debug("Order published", "exchange", p.exchange, "bill_no", msg.BillNumber, "size", len(publishing.Body))
	return nil
}

// Close closes the channel and the connection.
func (p *Publisher) Close() error {
	if err := p.channel.Close(); err != nil {
		p.conn.Close()
		return fmt.Errorf("failed to close channel: %w", err)
	}
	return p.conn.Close()
}

func encode(msg Outbound, now time.Time) (amqp091.Publishing, error) {
	body, err := json.Marshal(msg)
	if err != nil {
		return amqp091.Publishing{}, fmt.Errorf("failed to marshal order: %w", err)
	}
	return amqp091.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp091.Persistent,
		Timestamp:    now,
		MessageId:    fmt.Sprintf("bill-%d", msg.BillNumber),
		Body:         body,
	}, nil
}

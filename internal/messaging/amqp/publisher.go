// Package amqp publishes bill events to a RabbitMQ topic exchange.
package amqp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/bill_tracker_app/internal/core/domain"
	portsevents "github.com/SscSPs/bill_tracker_app/internal/core/ports/events"
	"github.com/SscSPs/bill_tracker_app/internal/middleware"
	"github.com/rabbitmq/amqp091-go"
)

const publishTimeout = 5 * time.Second

// channel is the subset of *amqp091.Channel the publisher needs.
type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
	Close() error
}

// Publisher sends every bill event to exchange, routed by the event type
// (bill.created, bill.paid and so on).
type Publisher struct {
	conn     *amqp091.Connection
	channel  channel
	exchange string
}

var _ portsevents.BillEventPublisher = (*Publisher)(nil)

// NewPublisher dials url and declares a durable topic exchange.
func NewPublisher(url, exchange string) (*Publisher, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		exchange, // name
		"topic",  // type
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	return &Publisher{conn: conn, channel: ch, exchange: exchange}, nil
}

// newPublisherWithChannel builds a publisher around an already open channel.
func newPublisherWithChannel(ch channel, exchange string) *Publisher {
	return &Publisher{channel: ch, exchange: exchange}
}

// PublishBillEvent sends event as a persistent JSON message.
func (p *Publisher) PublishBillEvent(ctx context.Context, event domain.BillEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal bill event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = p.channel.PublishWithContext(
		ctx,
		p.exchange,         // exchange
		string(event.Type), // routing key
		false,              // mandatory
		false,              // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    event.OccurredAt,
			Type:         string(event.Type),
			MessageId:    fmt.Sprintf("%s:%s:%d", event.Type, event.BillID, event.OccurredAt.UnixNano()),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish bill event: %w", err)
	}

	middleware.GetLoggerFromCtx(ctx).Debug("Published bill event",
		slog.String("event_type", string(event.Type)),
		slog.String("bill_id", event.BillID),
		slog.String("exchange", p.exchange))
	return nil
}

// Close closes the channel and the connection.
func (p *Publisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"biograf/pkg/utils"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Publisher delivers domain events. Publishing is best effort: callers log
// the error and carry on, the database stays the source of truth.
type Publisher interface {
	PublishTicketsIssued(ctx context.Context, event TicketsIssued) error
	Close() error
}

// channel is the part of *amqp.Channel the publisher uses.
type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

type rabbitPublisher struct {
	mu    sync.Mutex
	conn  *amqp.Connection
	ch    channel
	queue string
	log   *zap.Logger
}

// NewPublisher dials RabbitMQ and declares the durable queue. With no URL
// configured it returns a publisher that drops events.
func NewPublisher(cfg utils.RabbitMQConfig, log *zap.Logger) (Publisher, error) {
	if cfg.URL == "" {
		log.Info("RabbitMQ not configured, events disabled")
		return NoopPublisher{}, nil
	}

	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("rabbitmq dial: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("rabbitmq channel: %w", err)
	}

	if _, err := ch.QueueDeclare(
		cfg.Queue, // name
		true,      // durable
		false,     // autoDelete
		false,     // exclusive
		false,     // noWait
		nil,       // args
	); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("rabbitmq declare %s: %w", cfg.Queue, err)
	}

	log.Info("RabbitMQ connected", zap.String("queue", cfg.Queue))
	return newRabbitPublisher(conn, ch, cfg.Queue, log), nil
}

func newRabbitPublisher(conn *amqp.Connection, ch channel, queue string, log *zap.Logger) *rabbitPublisher {
	return &rabbitPublisher{
		conn:  conn,
		ch:    ch,
		queue: queue,
		log:   log.With(zap.String("publisher", queue)),
	}
}

func (p *rabbitPublisher) PublishTicketsIssued(ctx context.Context, event TicketsIssued) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal tickets issued: %w", err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Type:         "tickets.issued",
		Body:         body,
	}

	// amqp channels are not safe for concurrent publishes
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.ch.PublishWithContext(ctx, "", p.queue, false, false, msg); err != nil {
		p.log.Warn("Failed to publish event", zap.Error(err), zap.Int64("payment_id", event.PaymentID))
		return fmt.Errorf("publish tickets issued: %w", err)
	}

	p.log.Debug("Event published", zap.Int64("payment_id", event.PaymentID), zap.Int("tickets", len(event.TicketIDs)))
	return nil
}

func (p *rabbitPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	err := p.ch.Close()
	if p.conn != nil {
		if cerr := p.conn.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// NoopPublisher drops every event.
type NoopPublisher struct{}

func (NoopPublisher) PublishTicketsIssued(context.Context, TicketsIssued) error { return nil }
func (NoopPublisher) Close() error { return nil }

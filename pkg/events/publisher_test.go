package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"biograf/pkg/utils"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeChannel struct {
	exchange string
	key      string
	msgs     []amqp.Publishing
	err      error
	closed   bool
}

func (f *fakeChannel) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	if f.err != nil {
		return f.err
	}
	f.exchange = exchange
	f.key = key
	f.msgs = append(f.msgs, msg)
	return nil
}

func (f *fakeChannel) Close() error {
	f.closed = true
	return nil
}

func TestPublishTicketsIssued(t *testing.T) {
	ch := &fakeChannel{}
	p := newRabbitPublisher(nil, ch, "tickets.issued", zap.NewNop())

	event := TicketsIssued{
		PaymentID:     9,
		ReservationID: 40,
		ShowtimeID:    7,
		SeatIDs:       []int64{11, 12},
		TicketIDs:     []int64{100, 101},
		IssuedAt:      time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC),
	}
	require.NoError(t, p.PublishTicketsIssued(context.Background(), event))

	require.Len(t, ch.msgs, 1)
	msg := ch.msgs[0]
	assert.Equal(t, "", ch.exchange)
	assert.Equal(t, "tickets.issued", ch.key)
	assert.Equal(t, "application/json", msg.ContentType)
	assert.Equal(t, amqp.Persistent, msg.DeliveryMode)

	var decoded TicketsIssued
	require.NoError(t, json.Unmarshal(msg.Body, &decoded))
	assert.Equal(t, event, decoded)

	require.NoError(t, p.Close())
	assert.True(t, ch.closed)
}

func TestPublishTicketsIssuedError(t *testing.T) {
	ch := &fakeChannel{err: errors.New("channel closed")}
	p := newRabbitPublisher(nil, ch, "tickets.issued", zap.NewNop())

	err := p.PublishTicketsIssued(context.Background(), TicketsIssued{PaymentID: 1})
	assert.ErrorIs(t, err, ch.err)
}

func TestNewPublisherWithoutURL(t *testing.T) {
	p, err := NewPublisher(utils.RabbitMQConfig{Queue: "tickets.issued"}, zap.NewNop())
	require.NoError(t, err)
	assert.IsType(t, NoopPublisher{}, p)
	assert.NoError(t, p.PublishTicketsIssued(context.Background(), TicketsIssued{}))
}

package queue

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"

	"github.com/stakegov/governance-engine/internal/config"
	"github.com/stakegov/governance-engine/internal/observability/metrics"
)

// QueueManager publishes governance events to a topic exchange. Publishing is
// best-effort: the mutation that produced the event has already committed, so
// a publish failure is logged and counted but never surfaced to the caller.
type QueueManager struct {
	exchange string
	conn     *amqp.Connection
	channel  *amqp.Channel
}

func NewQueueManager(cfg *config.QueueConfig) (*QueueManager, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to rabbitmq: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		cfg.Exchange,
		amqp.ExchangeTopic,
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange %s: %w", cfg.Exchange, err)
	}

	return &QueueManager{
		exchange: cfg.Exchange,
		conn:     conn,
		channel:  channel,
	}, nil
}

// PushEvent publishes a single governance event, routed by its event type.
func (qm *QueueManager) PushEvent(ctx context.Context, event Event) {
	body, err := json.Marshal(event)
	if err != nil {
		metrics.RecordQueueSendError()
		log.Ctx(ctx).Error().Err(err).
			Str("event_type", event.EventType.String()).
			Msg("failed to marshal governance event")
		return
	}

	err = qm.channel.PublishWithContext(ctx,
		qm.exchange,
		event.EventType.String(),
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    event.EventID,
			Body:         body,
		},
	)
	if err != nil {
		metrics.RecordQueueSendError()
		log.Ctx(ctx).Error().Err(err).
			Str("event_type", event.EventType.String()).
			Str("event_id", event.EventID).
			Msg("failed to publish governance event")
		return
	}

	log.Ctx(ctx).Debug().
		Str("event_type", event.EventType.String()).
		Str("event_id", event.EventID).
		Msg("governance event published")
}

// Shutdown gracefully stops the interaction with the queue, ensuring all resources are properly released.
func (qm *QueueManager) Shutdown() {
	log.Info().Msg("Shutting down queue manager")
	if qm.channel != nil {
		qm.channel.Close()
	}
	if qm.conn != nil {
		qm.conn.Close()
	}
}

package queue

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

// EventPayload is what goes on the wire for each inbound Zenvia event.
// The raw provider payload rides along so consumers never need the DB.
type EventPayload struct {
	EventID   string `json:"event_id"`
	EventType string `json:"event_type"` // MESSAGE, MESSAGE_STATUS
	Channel   string `json:"channel"`
	Direction string `json:"direction"`

	From      string `json:"from"`
	To        string `json:"to"`
	MessageID string `json:"message_id"`
	Status    string `json:"status"` // status code for MESSAGE_STATUS events

	Raw json.RawMessage `json:"raw"`
}

type EventProducerInterface interface {
	PublishEvent(ctx context.Context, payload EventPayload) error
}

type RabbitMQProducer struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewProducer(conn *amqp.Connection, ch *amqp.Channel) *RabbitMQProducer {
	return &RabbitMQProducer{
		Conn: conn,
		Ch:   ch,
	}
}

func (p *RabbitMQProducer) PublishEvent(ctx context.Context, payload EventPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encoding event payload: %w", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false, // Mandatory
		false, // Immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)

	if err != nil {
		return fmt.Errorf("publishing to RabbitMQ: %w", err)
	}

	return nil
}

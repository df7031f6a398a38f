package queue

import (
	"context"
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Notifier is the contract for whoever tells the operations team about
// traffic (mail today, could be anything).
type Notifier interface {
	SendInboundAlert(from, channel, messageID string) error
	SendDeliveryFailure(to, channel, messageID, status string) error
}

// Statuses Zenvia reports when a sent message did not make it.
func isFailureStatus(status string) bool {
	switch status {
	case "NOT_DELIVERED", "REJECTED", "FAILED":
		return true
	}
	return false
}

type Worker struct {
	Channel  *amqp.Channel
	Notifier Notifier
}

// NewWorker only needs the channel and the notifier; it never touches the
// database.
func NewWorker(ch *amqp.Channel, notifier Notifier) *Worker {
	return &Worker{
		Channel:  ch,
		Notifier: notifier,
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // auto-ack (manual is safer)
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		log.Fatalf("❌ [WORKER] Failed to register RabbitMQ consumer: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var payload EventPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				log.Printf("❌ [WORKER] Invalid JSON: %s", err)
				// Malformed message, reject without requeue so the queue keeps moving.
				d.Nack(false, false)
				continue
			}

			if err := w.processEvent(context.Background(), payload); err != nil {
				log.Printf("❌ [WORKER] Notification failed for event %s: %s", payload.EventID, err)
				d.Nack(false, false)
			} else {
				d.Ack(false)
			}
		}
	}()

	log.Printf(" [*] Worker running, waiting on queue '%s'", queueName)
	<-forever
}

func (w *Worker) processEvent(_ context.Context, payload EventPayload) error {
	switch payload.EventType {
	case "MESSAGE":
		log.Printf("📥 [WORKER] Inbound %s message from %s", payload.Channel, payload.From)
		return w.Notifier.SendInboundAlert(payload.From, payload.Channel, payload.MessageID)

	case "MESSAGE_STATUS":
		if !isFailureStatus(payload.Status) {
			return nil
		}
		log.Printf("⚠️ [WORKER] Message %s to %s ended as %s", payload.MessageID, payload.To, payload.Status)
		return w.Notifier.SendDeliveryFailure(payload.To, payload.Channel, payload.MessageID, payload.Status)

	default:
		log.Printf("⚠️ [WORKER] Unknown event type: %s. Acking and moving on.", payload.EventType)
		return nil
	}
}

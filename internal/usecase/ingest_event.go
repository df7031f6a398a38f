package usecase

import (
	"context"

	"github.com/softharbor/zenvia-bridge/internal/entity"
	"github.com/softharbor/zenvia-bridge/internal/infra/queue"
	"github.com/softharbor/zenvia-bridge/pkg/zenvia"
)

type IngestEventUseCase struct {
	Events   entity.InboundEventRepository
	Producer EventProducerInterface
}

func NewIngestEventUseCase(events entity.InboundEventRepository, producer EventProducerInterface) *IngestEventUseCase {
	return &IngestEventUseCase{
		Events:   events,
		Producer: producer,
	}
}

// Execute stores the callback verbatim and fans it out to the queue. The
// two steps are deliberately ordered: an event that reached the database
// is never lost even if RabbitMQ is down.
func (uc *IngestEventUseCase) Execute(ctx context.Context, input IngestEventInput) (*entity.InboundEvent, error) {
	if input.Type != zenvia.EventTypeMessage && input.Type != zenvia.EventTypeMessageStatus {
		return nil, &DomainError{Code: "UNKNOWN_EVENT_TYPE", Message: "type must be MESSAGE or MESSAGE_STATUS"}
	}

	event := entity.NewInboundEvent(input.Type, input.Channel, eventDirection(input), input.Raw)

	if err := uc.Events.Create(ctx, event); err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
	}

	payload := queue.EventPayload{
		EventID:   event.ID,
		EventType: input.Type,
		Channel:   input.Channel,
		Direction: event.Direction,
		MessageID: input.MessageID,
		Raw:       input.Raw,
	}
	if input.Message != nil {
		payload.From = input.Message.From
		payload.To = input.Message.To
		if payload.MessageID == "" {
			payload.MessageID = input.Message.ID
		}
	}
	if input.Status != nil {
		payload.Status = input.Status.Code
	}

	if err := uc.Producer.PublishEvent(ctx, payload); err != nil {
		return nil, &TechnicalError{Code: "QUEUE_ERROR", Message: err.Error()}
	}

	return event, nil
}

func eventDirection(input IngestEventInput) string {
	if input.Direction != "" {
		return input.Direction
	}
	if input.Message != nil {
		return input.Message.Direction
	}
	return ""
}

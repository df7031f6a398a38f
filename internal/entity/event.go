package entity

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// InboundEvent is one callback delivered by Zenvia to a webhook we
// registered. The raw payload is kept verbatim; derived columns exist only
// for filtering.
type InboundEvent struct {
	ID         string          `json:"id"`
	EventType  string          `json:"event_type"` // MESSAGE, MESSAGE_STATUS
	Channel    string          `json:"channel"`
	Direction  string          `json:"direction"`
	Payload    json.RawMessage `json:"payload"`
	ReceivedAt time.Time       `json:"received_at"`
}

type InboundEventRepository interface {
	Create(ctx context.Context, event *InboundEvent) error
	ListRecent(ctx context.Context, limit int) ([]*InboundEvent, error)
}

func NewInboundEvent(eventType, channel, direction string, payload []byte) *InboundEvent {
	return &InboundEvent{
		ID:         uuid.New().String(),
		EventType:  eventType,
		Channel:    channel,
		Direction:  direction,
		Payload:    payload,
		ReceivedAt: time.Now(),
	}
}

package entity

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Subscription is the local mirror of a webhook subscription registered at
// Zenvia. The provider owns the resource; we keep a copy so listing and
// auditing do not need a provider round trip.
type Subscription struct {
	ID         string    `json:"id"`
	ZenviaID   string    `json:"zenvia_id"`
	EventType  string    `json:"event_type"` // MESSAGE, MESSAGE_STATUS
	Channel    string    `json:"channel"`
	Direction  string    `json:"direction"` // IN, OUT, empty for MESSAGE_STATUS
	WebhookURL string    `json:"webhook_url"`
	Status     string    `json:"status"` // ACTIVE, DEGRADED, INACTIVE
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type SubscriptionRepository interface {
	Create(ctx context.Context, sub *Subscription) error
	FindByZenviaID(ctx context.Context, zenviaID string) (*Subscription, error)
	List(ctx context.Context) ([]*Subscription, error)
	UpdateStatus(ctx context.Context, zenviaID string, status string) error
}

// NewSubscription creates the local mirror with ID and timestamps.
func NewSubscription(zenviaID, eventType, channel, direction, webhookURL, status string) *Subscription {
	now := time.Now()
	return &Subscription{
		ID:         uuid.New().String(),
		ZenviaID:   zenviaID,
		EventType:  eventType,
		Channel:    channel,
		Direction:  direction,
		WebhookURL: webhookURL,
		Status:     status,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

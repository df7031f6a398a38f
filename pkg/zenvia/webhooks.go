package zenvia

import (
	"context"
	"fmt"
	"net/url"
)

const (
	EventTypeMessage       = "MESSAGE"
	EventTypeMessageStatus = "MESSAGE_STATUS"

	WebhookStatusActive   = "ACTIVE"
	WebhookStatusDegraded = "DEGRADED"
	WebhookStatusInactive = "INACTIVE"

	DirectionIn  = "IN"
	DirectionOut = "OUT"
)

type CreateWebhookInput struct {
	EventType         string            `json:"event_type"`
	WebhookURL        string            `json:"webhook_url"`
	WebhookHeaders    map[string]string `json:"webhook_headers"`
	CriteriaChannel   string            `json:"criteria_channel"`
	CriteriaDirection string            `json:"criteria_direction"`
	Status            string            `json:"status"`
}

// WebhookList returns every registered subscription as decoded JSON.
func (c *Client) WebhookList(ctx context.Context) (any, error) {
	return c.requestGet(ctx, "subscriptions", nil)
}

// WebhookRetrieve fetches one subscription by its numeric id.
func (c *Client) WebhookRetrieve(ctx context.Context, id int) (any, error) {
	return c.requestGet(ctx, fmt.Sprintf("subscriptions/%d", id), nil)
}

// WebhookDelete removes one subscription by its numeric id.
func (c *Client) WebhookDelete(ctx context.Context, id int) (any, error) {
	return c.requestDelete(ctx, fmt.Sprintf("subscriptions/%d", id), nil)
}

// WebhookCreate registers a subscription. Zenvia will POST matching events
// to input.WebhookURL using input.WebhookHeaders, which may carry
// authentication. Validation happens before any network call; the first
// violation wins.
func (c *Client) WebhookCreate(ctx context.Context, input CreateWebhookInput) (any, error) {
	status := input.Status
	if status == "" {
		status = WebhookStatusActive
	}

	if input.EventType != EventTypeMessage && input.EventType != EventTypeMessageStatus {
		return nil, &ValidationError{"event_type", "must be MESSAGE or MESSAGE_STATUS"}
	}

	if status != WebhookStatusActive && status != WebhookStatusDegraded && status != WebhookStatusInactive {
		return nil, &ValidationError{"status", "must be ACTIVE, DEGRADED or INACTIVE"}
	}

	if input.EventType == EventTypeMessage {
		if input.CriteriaDirection == "" {
			return nil, &ValidationError{"criteria_direction", "is required when event_type is MESSAGE"}
		}
		if input.CriteriaDirection != DirectionIn && input.CriteriaDirection != DirectionOut {
			return nil, &ValidationError{"criteria_direction", "must be IN or OUT"}
		}
	}

	if !isWellFormedURL(input.WebhookURL) {
		return nil, &ValidationError{"webhook_url", "is not a well formed url"}
	}

	// A nil headers map must still marshal as {}.
	headers := input.WebhookHeaders
	if headers == nil {
		headers = map[string]string{}
	}

	criteria := map[string]any{
		"channel": input.CriteriaChannel,
	}
	if input.EventType == EventTypeMessage {
		criteria["direction"] = input.CriteriaDirection
	}

	body := map[string]any{
		"eventType": input.EventType,
		"webhook": map[string]any{
			"url":     input.WebhookURL,
			"headers": headers,
		},
		"status":   status,
		"version":  "v2",
		"criteria": criteria,
	}

	return c.requestPost(ctx, "subscriptions", nil, body)
}

func isWellFormedURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}

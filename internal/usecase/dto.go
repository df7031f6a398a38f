package usecase

import "encoding/json"

type RegisterWebhookInput struct {
	EventType         string            `json:"event_type"`
	WebhookURL        string            `json:"webhook_url"`
	WebhookHeaders    map[string]string `json:"webhook_headers"`
	CriteriaChannel   string            `json:"criteria_channel"`
	CriteriaDirection string            `json:"criteria_direction"`
	Status            string            `json:"status"`
}

type RegisterWebhookOutput struct {
	ID       string `json:"id"`        // local mirror id
	ZenviaID string `json:"zenvia_id"` // id assigned by the provider
	Status   string `json:"status"`
	Raw      any    `json:"raw"` // provider response, passed through
}

type SendMessageInput struct {
	From       string            `json:"from"`
	To         string            `json:"to"`
	Type       string            `json:"type"` // text, template
	Text       string            `json:"text"`
	TemplateID string            `json:"template_id"`
	Fields     map[string]string `json:"fields"`
}

type SendMessageOutput struct {
	Raw any `json:"raw"`
}

// IngestEventInput mirrors the body Zenvia POSTs to a subscribed webhook.
// Raw keeps the untouched bytes for storage and fan-out.
type IngestEventInput struct {
	ID        string        `json:"id"`
	Type      string        `json:"type"` // MESSAGE, MESSAGE_STATUS
	Channel   string        `json:"channel"`
	Direction string        `json:"direction"`
	MessageID string        `json:"messageId"`
	Message   *EventMessage `json:"message"`
	Status    *EventStatus  `json:"messageStatus"`

	Raw json.RawMessage `json:"-"`
}

type EventMessage struct {
	ID        string `json:"id"`
	From      string `json:"from"`
	To        string `json:"to"`
	Direction string `json:"direction"`
	Channel   string `json:"channel"`
}

type EventStatus struct {
	Timestamp   string `json:"timestamp"`
	Code        string `json:"code"`
	Description string `json:"description"`
}

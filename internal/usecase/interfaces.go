package usecase

import (
	"context"

	"github.com/softharbor/zenvia-bridge/internal/infra/queue"
	"github.com/softharbor/zenvia-bridge/pkg/zenvia"
)

// ZenviaGateway is the client surface the use cases depend on, kept as an
// interface so tests can mock the provider.
type ZenviaGateway interface {
	WebhookCreate(ctx context.Context, input zenvia.CreateWebhookInput) (any, error)
	WebhookList(ctx context.Context) (any, error)
	WebhookRetrieve(ctx context.Context, id int) (any, error)
	WebhookDelete(ctx context.Context, id int) (any, error)
	WhatsappSendText(ctx context.Context, from, to, text string) (any, error)
	WhatsappSendTemplated(ctx context.Context, from, to, templateID string, fields map[string]string) (any, error)
	TemplateList(ctx context.Context, filter zenvia.TemplateFilter) (any, error)
	TemplateRetrieve(ctx context.Context, id string) (any, error)
}

type EventProducerInterface interface {
	PublishEvent(ctx context.Context, payload queue.EventPayload) error
}

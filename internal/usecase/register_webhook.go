package usecase

import (
	"context"
	"log"

	"github.com/softharbor/zenvia-bridge/internal/entity"
	"github.com/softharbor/zenvia-bridge/pkg/zenvia"
)

type RegisterWebhookUseCase struct {
	Gateway ZenviaGateway
	Repo    entity.SubscriptionRepository
}

func NewRegisterWebhookUseCase(gateway ZenviaGateway, repo entity.SubscriptionRepository) *RegisterWebhookUseCase {
	return &RegisterWebhookUseCase{
		Gateway: gateway,
		Repo:    repo,
	}
}

// Execute creates the subscription at Zenvia and mirrors it locally. The
// provider is the source of truth; a mirror write failure is logged, not
// propagated, so the caller never sees a half-failed create for a webhook
// that does exist remotely.
func (uc *RegisterWebhookUseCase) Execute(ctx context.Context, input RegisterWebhookInput) (*RegisterWebhookOutput, error) {
	created, err := uc.Gateway.WebhookCreate(ctx, zenvia.CreateWebhookInput{
		EventType:         input.EventType,
		WebhookURL:        input.WebhookURL,
		WebhookHeaders:    input.WebhookHeaders,
		CriteriaChannel:   input.CriteriaChannel,
		CriteriaDirection: input.CriteriaDirection,
		Status:            input.Status,
	})
	if err != nil {
		if zenvia.IsValidationError(err) {
			return nil, &DomainError{Code: "INVALID_WEBHOOK", Message: err.Error()}
		}
		return nil, &TechnicalError{Code: "PROVIDER_ERROR", Message: err.Error()}
	}

	zenviaID, status := createdFields(created, input.Status)

	sub := entity.NewSubscription(
		zenviaID,
		input.EventType,
		input.CriteriaChannel,
		criteriaDirectionFor(input),
		input.WebhookURL,
		status,
	)

	if err := uc.Repo.Create(ctx, sub); err != nil {
		log.Printf("⚠️ Webhook %s created at Zenvia but mirror write failed: %v", zenviaID, err)
	}

	return &RegisterWebhookOutput{
		ID:       sub.ID,
		ZenviaID: zenviaID,
		Status:   status,
		Raw:      created,
	}, nil
}

// createdFields digs id and status out of the passthrough JSON response.
func createdFields(created any, fallbackStatus string) (string, string) {
	status := fallbackStatus
	if status == "" {
		status = zenvia.WebhookStatusActive
	}

	record, ok := created.(map[string]any)
	if !ok {
		return "", status
	}

	id, _ := record["id"].(string)
	if s, ok := record["status"].(string); ok && s != "" {
		status = s
	}
	return id, status
}

func criteriaDirectionFor(input RegisterWebhookInput) string {
	if input.EventType == zenvia.EventTypeMessage {
		return input.CriteriaDirection
	}
	return ""
}

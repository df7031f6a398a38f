package usecase

import (
	"context"
	"log"
	"strconv"

	"github.com/softharbor/zenvia-bridge/internal/entity"
	"github.com/softharbor/zenvia-bridge/pkg/zenvia"
)

type RemoveWebhookUseCase struct {
	Gateway ZenviaGateway
	Repo    entity.SubscriptionRepository
}

func NewRemoveWebhookUseCase(gateway ZenviaGateway, repo entity.SubscriptionRepository) *RemoveWebhookUseCase {
	return &RemoveWebhookUseCase{
		Gateway: gateway,
		Repo:    repo,
	}
}

// Execute deletes the subscription at Zenvia and marks the local mirror
// INACTIVE. Mirror rows are never deleted; history stays queryable.
func (uc *RemoveWebhookUseCase) Execute(ctx context.Context, id int) (any, error) {
	deleted, err := uc.Gateway.WebhookDelete(ctx, id)
	if err != nil {
		return nil, &TechnicalError{Code: "PROVIDER_ERROR", Message: err.Error()}
	}

	if err := uc.Repo.UpdateStatus(ctx, strconv.Itoa(id), zenvia.WebhookStatusInactive); err != nil {
		log.Printf("⚠️ Webhook %d deleted at Zenvia but mirror update failed: %v", id, err)
	}

	return deleted, nil
}

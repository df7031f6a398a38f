package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/softharbor/zenvia-bridge/internal/entity"
	"github.com/softharbor/zenvia-bridge/pkg/zenvia"
)

func TestRegisterWebhookSuccess(t *testing.T) {
	gateway := new(MockZenviaGateway)
	repo := new(MockSubscriptionRepository)
	uc := NewRegisterWebhookUseCase(gateway, repo)

	gateway.On("WebhookCreate", mock.Anything, zenvia.CreateWebhookInput{
		EventType:         "MESSAGE",
		WebhookURL:        "https://example.com/hook",
		CriteriaChannel:   "whatsapp",
		CriteriaDirection: "IN",
	}).Return(map[string]any{"id": "sub-42", "status": "ACTIVE"}, nil)

	var saved *entity.Subscription
	repo.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		saved = args.Get(1).(*entity.Subscription)
	}).Return(nil)

	output, err := uc.Execute(context.Background(), RegisterWebhookInput{
		EventType:         "MESSAGE",
		WebhookURL:        "https://example.com/hook",
		CriteriaChannel:   "whatsapp",
		CriteriaDirection: "IN",
	})

	assert.NoError(t, err)
	assert.Equal(t, "sub-42", output.ZenviaID)
	assert.Equal(t, "ACTIVE", output.Status)
	assert.NotEmpty(t, output.ID)

	assert.NotNil(t, saved)
	assert.Equal(t, "sub-42", saved.ZenviaID)
	assert.Equal(t, "MESSAGE", saved.EventType)
	assert.Equal(t, "IN", saved.Direction)
	gateway.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestRegisterWebhookValidationBecomesDomainError(t *testing.T) {
	gateway := new(MockZenviaGateway)
	repo := new(MockSubscriptionRepository)
	uc := NewRegisterWebhookUseCase(gateway, repo)

	gateway.On("WebhookCreate", mock.Anything, mock.Anything).
		Return(nil, &zenvia.ValidationError{Field: "event_type", Message: "must be MESSAGE or MESSAGE_STATUS"})

	_, err := uc.Execute(context.Background(), RegisterWebhookInput{EventType: "BANANA"})

	assert.Error(t, err)
	assert.True(t, IsDomainError(err))
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegisterWebhookProviderFailureBecomesTechnicalError(t *testing.T) {
	gateway := new(MockZenviaGateway)
	repo := new(MockSubscriptionRepository)
	uc := NewRegisterWebhookUseCase(gateway, repo)

	gateway.On("WebhookCreate", mock.Anything, mock.Anything).
		Return(nil, &zenvia.RequestError{StatusCode: 500, Message: "boom"})

	_, err := uc.Execute(context.Background(), RegisterWebhookInput{
		EventType:         "MESSAGE",
		WebhookURL:        "https://example.com/hook",
		CriteriaChannel:   "whatsapp",
		CriteriaDirection: "IN",
	})

	assert.True(t, IsTechnicalError(err))
}

func TestRegisterWebhookMirrorFailureIsNotFatal(t *testing.T) {
	gateway := new(MockZenviaGateway)
	repo := new(MockSubscriptionRepository)
	uc := NewRegisterWebhookUseCase(gateway, repo)

	gateway.On("WebhookCreate", mock.Anything, mock.Anything).
		Return(map[string]any{"id": "sub-1"}, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("db down"))

	output, err := uc.Execute(context.Background(), RegisterWebhookInput{
		EventType:       "MESSAGE_STATUS",
		WebhookURL:      "https://example.com/hook",
		CriteriaChannel: "whatsapp",
	})

	// O webhook existe no provider; o espelho é best-effort.
	assert.NoError(t, err)
	assert.Equal(t, "sub-1", output.ZenviaID)
}

func TestRegisterWebhookMessageStatusHasNoDirection(t *testing.T) {
	gateway := new(MockZenviaGateway)
	repo := new(MockSubscriptionRepository)
	uc := NewRegisterWebhookUseCase(gateway, repo)

	gateway.On("WebhookCreate", mock.Anything, mock.Anything).
		Return(map[string]any{"id": "sub-2"}, nil)

	var saved *entity.Subscription
	repo.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		saved = args.Get(1).(*entity.Subscription)
	}).Return(nil)

	_, err := uc.Execute(context.Background(), RegisterWebhookInput{
		EventType:         "MESSAGE_STATUS",
		WebhookURL:        "https://example.com/hook",
		CriteriaChannel:   "whatsapp",
		CriteriaDirection: "IN", // ignored for MESSAGE_STATUS
	})

	assert.NoError(t, err)
	assert.Equal(t, "", saved.Direction)
}

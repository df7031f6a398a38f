package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/softharbor/zenvia-bridge/internal/entity"
	"github.com/softharbor/zenvia-bridge/internal/infra/queue"
	"github.com/softharbor/zenvia-bridge/pkg/zenvia"
)

type MockZenviaGateway struct {
	mock.Mock
}

func (m *MockZenviaGateway) WebhookCreate(ctx context.Context, input zenvia.CreateWebhookInput) (any, error) {
	args := m.Called(ctx, input)
	return args.Get(0), args.Error(1)
}

func (m *MockZenviaGateway) WebhookList(ctx context.Context) (any, error) {
	args := m.Called(ctx)
	return args.Get(0), args.Error(1)
}

func (m *MockZenviaGateway) WebhookRetrieve(ctx context.Context, id int) (any, error) {
	args := m.Called(ctx, id)
	return args.Get(0), args.Error(1)
}

func (m *MockZenviaGateway) WebhookDelete(ctx context.Context, id int) (any, error) {
	args := m.Called(ctx, id)
	return args.Get(0), args.Error(1)
}

func (m *MockZenviaGateway) WhatsappSendText(ctx context.Context, from, to, text string) (any, error) {
	args := m.Called(ctx, from, to, text)
	return args.Get(0), args.Error(1)
}

func (m *MockZenviaGateway) WhatsappSendTemplated(ctx context.Context, from, to, templateID string, fields map[string]string) (any, error) {
	args := m.Called(ctx, from, to, templateID, fields)
	return args.Get(0), args.Error(1)
}

func (m *MockZenviaGateway) TemplateList(ctx context.Context, filter zenvia.TemplateFilter) (any, error) {
	args := m.Called(ctx, filter)
	return args.Get(0), args.Error(1)
}

func (m *MockZenviaGateway) TemplateRetrieve(ctx context.Context, id string) (any, error) {
	args := m.Called(ctx, id)
	return args.Get(0), args.Error(1)
}

type MockSubscriptionRepository struct {
	mock.Mock
}

func (m *MockSubscriptionRepository) Create(ctx context.Context, sub *entity.Subscription) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}

func (m *MockSubscriptionRepository) FindByZenviaID(ctx context.Context, zenviaID string) (*entity.Subscription, error) {
	args := m.Called(ctx, zenviaID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Subscription), args.Error(1)
}

func (m *MockSubscriptionRepository) List(ctx context.Context) ([]*entity.Subscription, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Subscription), args.Error(1)
}

func (m *MockSubscriptionRepository) UpdateStatus(ctx context.Context, zenviaID string, status string) error {
	args := m.Called(ctx, zenviaID, status)
	return args.Error(0)
}

type MockInboundEventRepository struct {
	mock.Mock
}

func (m *MockInboundEventRepository) Create(ctx context.Context, event *entity.InboundEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockInboundEventRepository) ListRecent(ctx context.Context, limit int) ([]*entity.InboundEvent, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.InboundEvent), args.Error(1)
}

type MockEventProducer struct {
	mock.Mock
}

func (m *MockEventProducer) PublishEvent(ctx context.Context, payload queue.EventPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

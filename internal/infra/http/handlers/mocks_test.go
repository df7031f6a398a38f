package handlers

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/softharbor/zenvia-bridge/internal/entity"
	"github.com/softharbor/zenvia-bridge/internal/infra/queue"
	"github.com/softharbor/zenvia-bridge/pkg/zenvia"
)

type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) WebhookCreate(ctx context.Context, input zenvia.CreateWebhookInput) (any, error) {
	args := m.Called(ctx, input)
	return args.Get(0), args.Error(1)
}

func (m *MockGateway) WebhookList(ctx context.Context) (any, error) {
	args := m.Called(ctx)
	return args.Get(0), args.Error(1)
}

func (m *MockGateway) WebhookRetrieve(ctx context.Context, id int) (any, error) {
	args := m.Called(ctx, id)
	return args.Get(0), args.Error(1)
}

func (m *MockGateway) WebhookDelete(ctx context.Context, id int) (any, error) {
	args := m.Called(ctx, id)
	return args.Get(0), args.Error(1)
}

func (m *MockGateway) WhatsappSendText(ctx context.Context, from, to, text string) (any, error) {
	args := m.Called(ctx, from, to, text)
	return args.Get(0), args.Error(1)
}

func (m *MockGateway) WhatsappSendTemplated(ctx context.Context, from, to, templateID string, fields map[string]string) (any, error) {
	args := m.Called(ctx, from, to, templateID, fields)
	return args.Get(0), args.Error(1)
}

func (m *MockGateway) TemplateList(ctx context.Context, filter zenvia.TemplateFilter) (any, error) {
	args := m.Called(ctx, filter)
	return args.Get(0), args.Error(1)
}

func (m *MockGateway) TemplateRetrieve(ctx context.Context, id string) (any, error) {
	args := m.Called(ctx, id)
	return args.Get(0), args.Error(1)
}

type MockSubscriptionRepo struct {
	mock.Mock
}

func (m *MockSubscriptionRepo) Create(ctx context.Context, sub *entity.Subscription) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}

func (m *MockSubscriptionRepo) FindByZenviaID(ctx context.Context, zenviaID string) (*entity.Subscription, error) {
	args := m.Called(ctx, zenviaID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Subscription), args.Error(1)
}

func (m *MockSubscriptionRepo) List(ctx context.Context) ([]*entity.Subscription, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Subscription), args.Error(1)
}

func (m *MockSubscriptionRepo) UpdateStatus(ctx context.Context, zenviaID string, status string) error {
	args := m.Called(ctx, zenviaID, status)
	return args.Error(0)
}

type MockEventRepo struct {
	mock.Mock
}

func (m *MockEventRepo) Create(ctx context.Context, event *entity.InboundEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventRepo) ListRecent(ctx context.Context, limit int) ([]*entity.InboundEvent, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.InboundEvent), args.Error(1)
}

type MockProducer struct {
	mock.Mock
}

func (m *MockProducer) PublishEvent(ctx context.Context, payload queue.EventPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

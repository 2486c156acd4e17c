package usecase

import (
	"context"
	"encoding/json"

	"github.com/stretchr/testify/mock"

	"github.com/xavierca1/greenapi-console/internal/entity"
	"github.com/xavierca1/greenapi-console/internal/infra/integration/greenapi"
)

type MockGreenAPIClient struct {
	mock.Mock
}

func (m *MockGreenAPIClient) GetSettings(ctx context.Context, creds entity.Credentials) (json.RawMessage, error) {
	args := m.Called(ctx, creds)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

func (m *MockGreenAPIClient) GetStateInstance(ctx context.Context, creds entity.Credentials) (*greenapi.StateInstanceResponse, error) {
	args := m.Called(ctx, creds)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*greenapi.StateInstanceResponse), args.Error(1)
}

func (m *MockGreenAPIClient) SendMessage(ctx context.Context, creds entity.Credentials, input greenapi.SendMessageRequest) (*greenapi.SendMessageResponse, error) {
	args := m.Called(ctx, creds, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*greenapi.SendMessageResponse), args.Error(1)
}

func (m *MockGreenAPIClient) SendFileByURL(ctx context.Context, creds entity.Credentials, input greenapi.SendFileByURLRequest) (*greenapi.SendFileByURLResponse, error) {
	args := m.Called(ctx, creds, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*greenapi.SendFileByURLResponse), args.Error(1)
}

type MockCredentialsRepository struct {
	mock.Mock
}

func (m *MockCredentialsRepository) Load(ctx context.Context) (*entity.Credentials, bool) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*entity.Credentials), args.Bool(1)
}

func (m *MockCredentialsRepository) Save(ctx context.Context, c entity.Credentials) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCredentialsRepository) Clear(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

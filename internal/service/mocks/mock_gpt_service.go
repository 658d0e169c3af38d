package mocks

import (
	"context"

	"mygpt/internal/model"
	"mygpt/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockGPTService struct {
	mock.Mock
}

func (m *MockGPTService) CreateGPT(ctx context.Context, ownerID string, in service.GPTInput) (*model.CustomGPT, error) {
	args := m.Called(ctx, ownerID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CustomGPT), args.Error(1)
}

func (m *MockGPTService) ListGPTs(ctx context.Context, ownerID string) ([]model.CustomGPT, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CustomGPT), args.Error(1)
}

func (m *MockGPTService) GetGPT(ctx context.Context, id, ownerID string) (*model.CustomGPT, error) {
	args := m.Called(ctx, id, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CustomGPT), args.Error(1)
}

func (m *MockGPTService) DeleteGPT(ctx context.Context, id, ownerID string) error {
	args := m.Called(ctx, id, ownerID)
	return args.Error(0)
}

func (m *MockGPTService) AppendMessage(ctx context.Context, gptID, ownerID, role, content string) (*model.ChatMessage, error) {
	args := m.Called(ctx, gptID, ownerID, role, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ChatMessage), args.Error(1)
}

func (m *MockGPTService) ListMessages(ctx context.Context, gptID, ownerID string) ([]model.ChatMessage, error) {
	args := m.Called(ctx, gptID, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ChatMessage), args.Error(1)
}

func (m *MockGPTService) ClearMessages(ctx context.Context, gptID, ownerID string) error {
	args := m.Called(ctx, gptID, ownerID)
	return args.Error(0)
}

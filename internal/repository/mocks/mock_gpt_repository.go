package mocks

import (
	"context"

	"mygpt/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockGPTRepository struct {
	mock.Mock
}

func (m *MockGPTRepository) Create(ctx context.Context, g *model.CustomGPT) (*model.CustomGPT, error) {
	args := m.Called(ctx, g)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CustomGPT), args.Error(1)
}

func (m *MockGPTRepository) FindByID(ctx context.Context, id, ownerID string) (*model.CustomGPT, error) {
	args := m.Called(ctx, id, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CustomGPT), args.Error(1)
}

func (m *MockGPTRepository) ListByOwner(ctx context.Context, ownerID string) ([]model.CustomGPT, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CustomGPT), args.Error(1)
}

func (m *MockGPTRepository) Delete(ctx context.Context, id, ownerID string) error {
	args := m.Called(ctx, id, ownerID)
	return args.Error(0)
}

type MockMessageRepository struct {
	mock.Mock
}

func (m *MockMessageRepository) Create(ctx context.Context, msg *model.ChatMessage) (*model.ChatMessage, error) {
	args := m.Called(ctx, msg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ChatMessage), args.Error(1)
}

func (m *MockMessageRepository) ListByGPT(ctx context.Context, gptID, ownerID string) ([]model.ChatMessage, error) {
	args := m.Called(ctx, gptID, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ChatMessage), args.Error(1)
}

func (m *MockMessageRepository) DeleteByGPT(ctx context.Context, gptID, ownerID string) error {
	args := m.Called(ctx, gptID, ownerID)
	return args.Error(0)
}

package mocks

import (
	"context"

	"mygpt/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) Resolve(ctx context.Context, creds service.Credentials) *service.Resolution {
	args := m.Called(ctx, creds)
	return args.Get(0).(*service.Resolution)
}

package mocks

import (
	"context"

	"mygpt/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockUploadService struct {
	mock.Mock
}

func (m *MockUploadService) UploadBatch(ctx context.Context, files []model.FilePayload, ownerID, folder string) ([]model.UploadResult, error) {
	args := m.Called(ctx, files, ownerID, folder)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.UploadResult), args.Error(1)
}

func (m *MockUploadService) PresignDownload(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

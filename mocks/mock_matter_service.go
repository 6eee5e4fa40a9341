package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"mattervault/internal/domain"
	"mattervault/internal/query"
	"mattervault/internal/service"
)

// MockMatterService is a mock implementation of service.MatterService.
type MockMatterService struct {
	mock.Mock
}

func (m *MockMatterService) Create(ctx context.Context, input *service.CreateMatterInput) (*domain.Matter, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Matter), args.Error(1)
}

func (m *MockMatterService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Matter, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Matter), args.Error(1)
}

func (m *MockMatterService) List(ctx context.Context, opts service.ListOptions) (*query.Page[query.ShapedRecord], error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*query.Page[query.ShapedRecord]), args.Error(1)
}

func (m *MockMatterService) Update(ctx context.Context, input *service.UpdateMatterInput) (*domain.Matter, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Matter), args.Error(1)
}

func (m *MockMatterService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

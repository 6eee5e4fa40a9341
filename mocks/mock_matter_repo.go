package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"mattervault/internal/domain"
	"mattervault/internal/query"
)

// MockMatterRepo is a mock implementation of port.MatterRepository.
type MockMatterRepo struct {
	mock.Mock
}

func (m *MockMatterRepo) Create(ctx context.Context, matter *domain.Matter) error {
	args := m.Called(ctx, matter)
	return args.Error(0)
}

func (m *MockMatterRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Matter, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Matter), args.Error(1)
}

func (m *MockMatterRepo) List() query.Source[domain.Matter] {
	args := m.Called()
	return args.Get(0).(query.Source[domain.Matter])
}

func (m *MockMatterRepo) Update(ctx context.Context, matter *domain.Matter) error {
	args := m.Called(ctx, matter)
	return args.Error(0)
}

func (m *MockMatterRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMatterRepo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

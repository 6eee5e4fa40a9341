package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"mattervault/internal/domain"
)

// MockRevisionRepo is a mock implementation of port.RevisionRepository.
type MockRevisionRepo struct {
	mock.Mock
}

func (m *MockRevisionRepo) Create(ctx context.Context, rev *domain.Revision) error {
	args := m.Called(ctx, rev)
	return args.Error(0)
}

func (m *MockRevisionRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Revision, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Revision), args.Error(1)
}

func (m *MockRevisionRepo) ListByDocument(ctx context.Context, docID uuid.UUID) ([]domain.Revision, error) {
	args := m.Called(ctx, docID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Revision), args.Error(1)
}

func (m *MockRevisionRepo) NextNumber(ctx context.Context, docID uuid.UUID) (int, error) {
	args := m.Called(ctx, docID)
	return args.Int(0), args.Error(1)
}

func (m *MockRevisionRepo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

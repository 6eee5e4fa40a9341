package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"mattervault/internal/domain"
	"mattervault/internal/query"
	"mattervault/internal/service"
)

// MockAuditService is a mock implementation of service.AuditService.
type MockAuditService struct {
	mock.Mock
}

func (m *MockAuditService) RecordActivity(ctx context.Context, input *service.RecordActivityInput) (*domain.ActivityRecord, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ActivityRecord), args.Error(1)
}

func (m *MockAuditService) RecordTransfer(ctx context.Context, input *service.RecordTransferInput) (*domain.Transfer, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transfer), args.Error(1)
}

func (m *MockAuditService) ListBySubject(ctx context.Context, subjectID uuid.UUID, opts service.ListOptions) (*query.Page[query.ShapedRecord], error) {
	args := m.Called(ctx, subjectID, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*query.Page[query.ShapedRecord]), args.Error(1)
}

func (m *MockAuditService) GetTransfer(ctx context.Context, transferID uuid.UUID) (*domain.TransferFromRecord, *domain.TransferToRecord, error) {
	args := m.Called(ctx, transferID)
	var from *domain.TransferFromRecord
	var to *domain.TransferToRecord
	if args.Get(0) != nil {
		from = args.Get(0).(*domain.TransferFromRecord)
	}
	if args.Get(1) != nil {
		to = args.Get(1).(*domain.TransferToRecord)
	}
	return from, to, args.Error(2)
}

func (m *MockAuditService) ListActivities(ctx context.Context) ([]domain.Activity, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Activity), args.Error(1)
}

func (m *MockAuditService) ExportBySubject(ctx context.Context, subjectID uuid.UUID) ([]byte, error) {
	args := m.Called(ctx, subjectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"mattervault/internal/domain"
	"mattervault/internal/query"
)

// MockAuditRepo is a mock implementation of port.AuditRepository.
type MockAuditRepo struct {
	mock.Mock
}

func (m *MockAuditRepo) RecordActivity(ctx context.Context, rec *domain.ActivityRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *MockAuditRepo) RecordTransfer(ctx context.Context, t *domain.Transfer) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockAuditRepo) QueryBySubject(subjectID uuid.UUID) query.Source[domain.AuditEntry] {
	args := m.Called(subjectID)
	return args.Get(0).(query.Source[domain.AuditEntry])
}

func (m *MockAuditRepo) GetTransferPair(ctx context.Context, transferID uuid.UUID) (*domain.TransferFromRecord, *domain.TransferToRecord, error) {
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

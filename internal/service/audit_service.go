package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"mattervault/internal/domain"
	"mattervault/internal/export"
	"mattervault/internal/port"
	"mattervault/internal/query"
)

// RecordActivityInput is the DTO for appending one audit record.
type RecordActivityInput struct {
	SubjectKind domain.SubjectKind
	SubjectID   uuid.UUID
	ActivityID  uuid.UUID
	UserID      uuid.UUID
}

// RecordTransferInput is the DTO for recording one document transfer
// between matters.
type RecordTransferInput struct {
	FromMatterID uuid.UUID
	ToMatterID   uuid.UUID
	DocumentID   uuid.UUID
	ActivityID   uuid.UUID
	UserID       uuid.UUID
}

// AuditService defines the audit trail contract.
type AuditService interface {
	RecordActivity(ctx context.Context, input *RecordActivityInput) (*domain.ActivityRecord, error)
	RecordTransfer(ctx context.Context, input *RecordTransferInput) (*domain.Transfer, error)
	ListBySubject(ctx context.Context, subjectID uuid.UUID, opts ListOptions) (*query.Page[query.ShapedRecord], error)
	GetTransfer(ctx context.Context, transferID uuid.UUID) (*domain.TransferFromRecord, *domain.TransferToRecord, error)
	ExportBySubject(ctx context.Context, subjectID uuid.UUID) ([]byte, error)
	ListActivities(ctx context.Context) ([]domain.Activity, error)
}

type auditService struct {
	auditRepo    port.AuditRepository
	matterRepo   port.MatterRepository
	docRepo      port.DocumentRepository
	revRepo      port.RevisionRepository
	userRepo     port.UserRepository
	activityRepo port.ActivityRepository
	registry     *query.Registry
}

// NewAuditService creates a new AuditService implementation.
func NewAuditService(
	auditRepo port.AuditRepository,
	matterRepo port.MatterRepository,
	docRepo port.DocumentRepository,
	revRepo port.RevisionRepository,
	userRepo port.UserRepository,
	activityRepo port.ActivityRepository,
	registry *query.Registry,
) AuditService {
	return &auditService{
		auditRepo:    auditRepo,
		matterRepo:   matterRepo,
		docRepo:      docRepo,
		revRepo:      revRepo,
		userRepo:     userRepo,
		activityRepo: activityRepo,
		registry:     registry,
	}
}

func (s *auditService) RecordActivity(ctx context.Context, input *RecordActivityInput) (*domain.ActivityRecord, error) {
	if !domain.ValidSubjectKinds[input.SubjectKind] {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidSubjectKind, input.SubjectKind)
	}
	if err := s.checkSubject(ctx, input.SubjectKind, input.SubjectID); err != nil {
		return nil, err
	}
	if err := s.checkRef(ctx, s.activityRepo.Exists, input.ActivityID, "activity"); err != nil {
		return nil, err
	}
	if err := s.checkRef(ctx, s.userRepo.Exists, input.UserID, "user"); err != nil {
		return nil, err
	}

	rec := &domain.ActivityRecord{
		SubjectKind: input.SubjectKind,
		SubjectID:   input.SubjectID,
		ActivityID:  input.ActivityID,
		UserID:      input.UserID,
	}
	if err := s.auditRepo.RecordActivity(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *auditService) RecordTransfer(ctx context.Context, input *RecordTransferInput) (*domain.Transfer, error) {
	if input.FromMatterID == input.ToMatterID {
		return nil, domain.ErrSameMatterTransfer
	}
	if err := s.checkRef(ctx, s.matterRepo.Exists, input.FromMatterID, "origin matter"); err != nil {
		return nil, err
	}
	if err := s.checkRef(ctx, s.matterRepo.Exists, input.ToMatterID, "destination matter"); err != nil {
		return nil, err
	}
	if err := s.checkRef(ctx, s.docRepo.Exists, input.DocumentID, "document"); err != nil {
		return nil, err
	}
	if err := s.checkRef(ctx, s.activityRepo.Exists, input.ActivityID, "activity"); err != nil {
		return nil, err
	}
	if err := s.checkRef(ctx, s.userRepo.Exists, input.UserID, "user"); err != nil {
		return nil, err
	}

	t := &domain.Transfer{
		FromMatterID: input.FromMatterID,
		ToMatterID:   input.ToMatterID,
		DocumentID:   input.DocumentID,
		ActivityID:   input.ActivityID,
		UserID:       input.UserID,
	}
	if err := s.auditRepo.RecordTransfer(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *auditService) ListBySubject(ctx context.Context, subjectID uuid.UUID, opts ListOptions) (*query.Page[query.ShapedRecord], error) {
	src := s.auditRepo.QueryBySubject(subjectID)
	return listPipeline(ctx, src, s.registry, shapeAuditDto, shapeAudit, auditShaper, opts)
}

func (s *auditService) GetTransfer(ctx context.Context, transferID uuid.UUID) (*domain.TransferFromRecord, *domain.TransferToRecord, error) {
	return s.auditRepo.GetTransferPair(ctx, transferID)
}

func (s *auditService) ExportBySubject(ctx context.Context, subjectID uuid.UUID) ([]byte, error) {
	entries, err := s.auditRepo.QueryBySubject(subjectID).Materialize(ctx)
	if err != nil {
		return nil, err
	}
	return export.AuditWorkbook(entries)
}

// ListActivities returns the fixed activity vocabulary.
func (s *auditService) ListActivities(ctx context.Context) ([]domain.Activity, error) {
	return s.activityRepo.ListAll(ctx)
}

func (s *auditService) checkSubject(ctx context.Context, kind domain.SubjectKind, id uuid.UUID) error {
	switch kind {
	case domain.SubjectMatter:
		return s.checkRef(ctx, s.matterRepo.Exists, id, "matter")
	case domain.SubjectDocument:
		return s.checkRef(ctx, s.docRepo.Exists, id, "document")
	case domain.SubjectRevision:
		return s.checkRef(ctx, s.revRepo.Exists, id, "revision")
	default:
		return fmt.Errorf("%w: %s", domain.ErrInvalidSubjectKind, kind)
	}
}

func (s *auditService) checkRef(ctx context.Context, exists func(context.Context, uuid.UUID) (bool, error), id uuid.UUID, what string) error {
	ok, err := exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s %s", domain.ErrReferentialIntegrity, what, id)
	}
	return nil
}

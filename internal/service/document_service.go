package service

import (
	"bytes"
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"mattervault/internal/config"
	"mattervault/internal/domain"
	"mattervault/internal/port"
	"mattervault/internal/query"
)

// CreateDocumentInput is the DTO for registering a document in a matter.
type CreateDocumentInput struct {
	MatterID     uuid.UUID
	Title        string
	Description  string
	DocumentType string
	CreatedBy    uuid.UUID
}

// UpdateDocumentInput is the DTO for updating document metadata.
type UpdateDocumentInput struct {
	DocumentID   uuid.UUID
	Title        string
	Description  string
	DocumentType string
	Status       domain.DocumentStatus
	UpdatedBy    uuid.UUID
}

// MoveDocumentInput is the DTO for transferring a document to another
// matter.
type MoveDocumentInput struct {
	DocumentID uuid.UUID
	ToMatterID uuid.UUID
	MovedBy    uuid.UUID
}

// AddRevisionInput is the DTO for uploading a new content revision.
type AddRevisionInput struct {
	DocumentID  uuid.UUID
	Content     []byte
	ContentType string
	CreatedBy   uuid.UUID
}

// DocumentService defines the document management contract.
type DocumentService interface {
	Create(ctx context.Context, input *CreateDocumentInput) (*domain.Document, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Document, error)
	ListByMatter(ctx context.Context, matterID uuid.UUID, opts ListOptions) (*query.Page[query.ShapedRecord], error)
	Update(ctx context.Context, input *UpdateDocumentInput) (*domain.Document, error)
	Delete(ctx context.Context, id uuid.UUID, deletedBy uuid.UUID) error
	Move(ctx context.Context, input *MoveDocumentInput) (*domain.Transfer, error)
	AddRevision(ctx context.Context, input *AddRevisionInput) (*domain.Revision, error)
	ListRevisions(ctx context.Context, docID uuid.UUID) ([]domain.Revision, error)
	DownloadRevision(ctx context.Context, revisionID uuid.UUID) (*domain.Revision, []byte, error)
	PresignRevision(ctx context.Context, revisionID uuid.UUID) (string, error)
}

type documentService struct {
	docRepo      port.DocumentRepository
	matterRepo   port.MatterRepository
	revRepo      port.RevisionRepository
	activityRepo port.ActivityRepository
	auditSvc     AuditService
	storage      port.ObjectStorage
	s3cfg        *config.S3Config
	registry     *query.Registry
	logger       *zap.Logger
}

// NewDocumentService creates a new DocumentService implementation.
func NewDocumentService(
	docRepo port.DocumentRepository,
	matterRepo port.MatterRepository,
	revRepo port.RevisionRepository,
	activityRepo port.ActivityRepository,
	auditSvc AuditService,
	storage port.ObjectStorage,
	s3cfg *config.S3Config,
	registry *query.Registry,
	logger *zap.Logger,
) DocumentService {
	return &documentService{
		docRepo:      docRepo,
		matterRepo:   matterRepo,
		revRepo:      revRepo,
		activityRepo: activityRepo,
		auditSvc:     auditSvc,
		storage:      storage,
		s3cfg:        s3cfg,
		registry:     registry,
		logger:       logger,
	}
}

func (s *documentService) Create(ctx context.Context, input *CreateDocumentInput) (*domain.Document, error) {
	if _, err := s.matterRepo.GetByID(ctx, input.MatterID); err != nil {
		return nil, err
	}

	doc := &domain.Document{
		ID:           uuid.New(),
		MatterID:     input.MatterID,
		Title:        input.Title,
		Description:  input.Description,
		DocumentType: input.DocumentType,
		Status:       domain.DocumentStatusDraft,
		CreatedBy:    input.CreatedBy,
	}
	if err := s.docRepo.Create(ctx, doc); err != nil {
		return nil, err
	}

	if err := s.recordActivity(ctx, domain.ActivityDocumentCreated, domain.SubjectDocument, doc.ID, input.CreatedBy); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *documentService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Document, error) {
	return s.docRepo.GetByID(ctx, id)
}

func (s *documentService) ListByMatter(ctx context.Context, matterID uuid.UUID, opts ListOptions) (*query.Page[query.ShapedRecord], error) {
	ok, err := s.matterRepo.Exists(ctx, matterID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrMatterNotFound
	}
	src := s.docRepo.ListByMatter(matterID)
	return listPipeline(ctx, src, s.registry, shapeDocumentDto, shapeDocument, documentShaper, opts)
}

func (s *documentService) Update(ctx context.Context, input *UpdateDocumentInput) (*domain.Document, error) {
	if !domain.ValidDocumentStatuses[input.Status] {
		return nil, domain.ErrInvalidStatus
	}

	doc, err := s.docRepo.GetByID(ctx, input.DocumentID)
	if err != nil {
		return nil, err
	}
	doc.Title = input.Title
	doc.Description = input.Description
	doc.DocumentType = input.DocumentType
	doc.Status = input.Status
	if err := s.docRepo.Update(ctx, doc); err != nil {
		return nil, err
	}

	if err := s.recordActivity(ctx, domain.ActivityDocumentUpdated, domain.SubjectDocument, doc.ID, input.UpdatedBy); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *documentService) Delete(ctx context.Context, id uuid.UUID, deletedBy uuid.UUID) error {
	doc, err := s.docRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	// The audit record outlives the document, so write it before the row
	// disappears and its existence check starts failing.
	if err := s.recordActivity(ctx, domain.ActivityDocumentDeleted, domain.SubjectDocument, doc.ID, deletedBy); err != nil {
		return err
	}
	return s.docRepo.Delete(ctx, id)
}

// Move transfers a document to another matter and records the transfer
// from both matter perspectives. The two audit records are written
// atomically by the audit store.
func (s *documentService) Move(ctx context.Context, input *MoveDocumentInput) (*domain.Transfer, error) {
	doc, err := s.docRepo.GetByID(ctx, input.DocumentID)
	if err != nil {
		return nil, err
	}
	if doc.MatterID == input.ToMatterID {
		return nil, domain.ErrSameMatterTransfer
	}

	activity, err := s.activityRepo.GetByName(ctx, domain.ActivityDocumentMoved)
	if err != nil {
		return nil, err
	}

	if err := s.docRepo.MoveToMatter(ctx, doc.ID, input.ToMatterID); err != nil {
		return nil, err
	}

	return s.auditSvc.RecordTransfer(ctx, &RecordTransferInput{
		FromMatterID: doc.MatterID,
		ToMatterID:   input.ToMatterID,
		DocumentID:   doc.ID,
		ActivityID:   activity.ID,
		UserID:       input.MovedBy,
	})
}

func (s *documentService) AddRevision(ctx context.Context, input *AddRevisionInput) (*domain.Revision, error) {
	doc, err := s.docRepo.GetByID(ctx, input.DocumentID)
	if err != nil {
		return nil, err
	}

	number, err := s.revRepo.NextNumber(ctx, doc.ID)
	if err != nil {
		return nil, err
	}

	rev := &domain.Revision{
		ID:          uuid.New(),
		DocumentID:  doc.ID,
		Number:      number,
		StorageKey:  fmt.Sprintf("documents/%s/revisions/%d", doc.ID, number),
		ContentType: input.ContentType,
		FileSize:    int64(len(input.Content)),
		CreatedBy:   input.CreatedBy,
	}

	if _, err := s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.s3cfg.Bucket,
		Key:         rev.StorageKey,
		Body:        bytes.NewReader(input.Content),
		ContentType: input.ContentType,
		Size:        rev.FileSize,
	}); err != nil {
		s.logger.Error("revision upload failed",
			zap.String("document_id", doc.ID.String()),
			zap.Int("number", number),
			zap.Error(err))
		return nil, domain.ErrUploadFailed
	}

	if err := s.revRepo.Create(ctx, rev); err != nil {
		// Orphaned object; best effort cleanup.
		if delErr := s.storage.Delete(ctx, s.s3cfg.Bucket, rev.StorageKey); delErr != nil {
			s.logger.Warn("orphaned revision object left in storage",
				zap.String("key", rev.StorageKey), zap.Error(delErr))
		}
		return nil, err
	}

	if err := s.recordActivity(ctx, domain.ActivityRevisionUploaded, domain.SubjectRevision, rev.ID, input.CreatedBy); err != nil {
		return nil, err
	}
	return rev, nil
}

func (s *documentService) ListRevisions(ctx context.Context, docID uuid.UUID) ([]domain.Revision, error) {
	ok, err := s.docRepo.Exists(ctx, docID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrDocumentNotFound
	}
	return s.revRepo.ListByDocument(ctx, docID)
}

func (s *documentService) DownloadRevision(ctx context.Context, revisionID uuid.UUID) (*domain.Revision, []byte, error) {
	rev, err := s.revRepo.GetByID(ctx, revisionID)
	if err != nil {
		return nil, nil, err
	}
	data, err := s.storage.Download(ctx, s.s3cfg.Bucket, rev.StorageKey)
	if err != nil {
		return nil, nil, err
	}
	return rev, data, nil
}

// PresignRevision returns a time-limited direct download URL for a
// revision's content.
func (s *documentService) PresignRevision(ctx context.Context, revisionID uuid.UUID) (string, error) {
	rev, err := s.revRepo.GetByID(ctx, revisionID)
	if err != nil {
		return "", err
	}
	return s.storage.GetPresignedURL(ctx, s.s3cfg.Bucket, rev.StorageKey, s.s3cfg.PresignExpiry)
}

func (s *documentService) recordActivity(ctx context.Context, activityName string, kind domain.SubjectKind, subjectID, userID uuid.UUID) error {
	activity, err := s.activityRepo.GetByName(ctx, activityName)
	if err != nil {
		return err
	}
	_, err = s.auditSvc.RecordActivity(ctx, &RecordActivityInput{
		SubjectKind: kind,
		SubjectID:   subjectID,
		ActivityID:  activity.ID,
		UserID:      userID,
	})
	return err
}

package service

import (
	"context"

	"github.com/google/uuid"

	"mattervault/internal/domain"
	"mattervault/internal/port"
	"mattervault/internal/query"
)

// CreateMatterInput is the DTO for opening a new matter.
type CreateMatterInput struct {
	Name        string
	Reference   string
	Description string
	CreatedBy   uuid.UUID
}

// UpdateMatterInput is the DTO for updating a matter.
type UpdateMatterInput struct {
	MatterID    uuid.UUID
	Name        string
	Description string
	Status      domain.MatterStatus
	UpdatedBy   uuid.UUID
}

// MatterService defines the matter management contract.
type MatterService interface {
	Create(ctx context.Context, input *CreateMatterInput) (*domain.Matter, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Matter, error)
	List(ctx context.Context, opts ListOptions) (*query.Page[query.ShapedRecord], error)
	Update(ctx context.Context, input *UpdateMatterInput) (*domain.Matter, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type matterService struct {
	matterRepo   port.MatterRepository
	activityRepo port.ActivityRepository
	auditSvc     AuditService
	registry     *query.Registry
}

// NewMatterService creates a new MatterService implementation.
func NewMatterService(
	matterRepo port.MatterRepository,
	activityRepo port.ActivityRepository,
	auditSvc AuditService,
	registry *query.Registry,
) MatterService {
	return &matterService{
		matterRepo:   matterRepo,
		activityRepo: activityRepo,
		auditSvc:     auditSvc,
		registry:     registry,
	}
}

func (s *matterService) Create(ctx context.Context, input *CreateMatterInput) (*domain.Matter, error) {
	matter := &domain.Matter{
		ID:          uuid.New(),
		Name:        input.Name,
		Reference:   input.Reference,
		Description: input.Description,
		Status:      domain.MatterStatusOpen,
		CreatedBy:   input.CreatedBy,
	}
	if err := s.matterRepo.Create(ctx, matter); err != nil {
		return nil, err
	}

	if err := s.recordActivity(ctx, domain.ActivityMatterCreated, matter.ID, input.CreatedBy); err != nil {
		return nil, err
	}
	return matter, nil
}

func (s *matterService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Matter, error) {
	return s.matterRepo.GetByID(ctx, id)
}

func (s *matterService) List(ctx context.Context, opts ListOptions) (*query.Page[query.ShapedRecord], error) {
	return listPipeline(ctx, s.matterRepo.List(), s.registry, shapeMatterDto, shapeMatter, matterShaper, opts)
}

func (s *matterService) Update(ctx context.Context, input *UpdateMatterInput) (*domain.Matter, error) {
	if !domain.ValidMatterStatuses[input.Status] {
		return nil, domain.ErrInvalidStatus
	}

	matter, err := s.matterRepo.GetByID(ctx, input.MatterID)
	if err != nil {
		return nil, err
	}
	closing := matter.Status != domain.MatterStatusClosed && input.Status == domain.MatterStatusClosed

	matter.Name = input.Name
	matter.Description = input.Description
	matter.Status = input.Status
	if err := s.matterRepo.Update(ctx, matter); err != nil {
		return nil, err
	}

	activity := domain.ActivityMatterUpdated
	if closing {
		activity = domain.ActivityMatterClosed
	}
	if err := s.recordActivity(ctx, activity, matter.ID, input.UpdatedBy); err != nil {
		return nil, err
	}
	return matter, nil
}

func (s *matterService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.matterRepo.Delete(ctx, id)
}

func (s *matterService) recordActivity(ctx context.Context, activityName string, matterID, userID uuid.UUID) error {
	activity, err := s.activityRepo.GetByName(ctx, activityName)
	if err != nil {
		return err
	}
	_, err = s.auditSvc.RecordActivity(ctx, &RecordActivityInput{
		SubjectKind: domain.SubjectMatter,
		SubjectID:   matterID,
		ActivityID:  activity.ID,
		UserID:      userID,
	})
	return err
}

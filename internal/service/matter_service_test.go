package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mattervault/internal/domain"
	"mattervault/internal/query"
	"mattervault/internal/service"
	"mattervault/mocks"
)

type matterFixture struct {
	matterRepo   *mocks.MockMatterRepo
	activityRepo *mocks.MockActivityRepo
	auditSvc     *mocks.MockAuditService
	svc          service.MatterService
}

func newMatterFixture(t *testing.T) *matterFixture {
	t.Helper()
	registry, err := service.NewFieldRegistry()
	require.NoError(t, err)

	f := &matterFixture{
		matterRepo:   new(mocks.MockMatterRepo),
		activityRepo: new(mocks.MockActivityRepo),
		auditSvc:     new(mocks.MockAuditService),
	}
	f.svc = service.NewMatterService(f.matterRepo, f.activityRepo, f.auditSvc, registry)
	return f
}

func (f *matterFixture) expectActivity(name string) uuid.UUID {
	id := uuid.New()
	f.activityRepo.On("GetByName", mock.Anything, name).Return(&domain.Activity{ID: id, Name: name}, nil)
	return id
}

func TestMatterCreate_RecordsActivity(t *testing.T) {
	f := newMatterFixture(t)
	userID := uuid.New()
	activityID := f.expectActivity(domain.ActivityMatterCreated)

	f.matterRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Matter")).Return(nil)
	f.auditSvc.On("RecordActivity", mock.Anything, mock.MatchedBy(func(in *service.RecordActivityInput) bool {
		return in.SubjectKind == domain.SubjectMatter && in.ActivityID == activityID && in.UserID == userID
	})).Return(&domain.ActivityRecord{}, nil)

	matter, err := f.svc.Create(context.Background(), &service.CreateMatterInput{
		Name:      "Hargreaves v. Linden",
		Reference: "HVL-2026-014",
		CreatedBy: userID,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.MatterStatusOpen, matter.Status)
	assert.NotEqual(t, uuid.Nil, matter.ID)
	f.auditSvc.AssertExpectations(t)
}

func TestMatterCreate_DuplicateReference(t *testing.T) {
	f := newMatterFixture(t)

	f.matterRepo.On("Create", mock.Anything, mock.Anything).Return(domain.ErrDuplicateReference)

	_, err := f.svc.Create(context.Background(), &service.CreateMatterInput{
		Name:      "Hargreaves v. Linden",
		Reference: "HVL-2026-014",
		CreatedBy: uuid.New(),
	})

	assert.ErrorIs(t, err, domain.ErrDuplicateReference)
	f.auditSvc.AssertNotCalled(t, "RecordActivity", mock.Anything, mock.Anything)
}

func TestMatterUpdate_ClosingRecordsClosedActivity(t *testing.T) {
	f := newMatterFixture(t)
	matterID, userID := uuid.New(), uuid.New()
	f.expectActivity(domain.ActivityMatterClosed)

	f.matterRepo.On("GetByID", mock.Anything, matterID).Return(&domain.Matter{
		ID:     matterID,
		Name:   "Hargreaves v. Linden",
		Status: domain.MatterStatusOpen,
	}, nil)
	f.matterRepo.On("Update", mock.Anything, mock.Anything).Return(nil)
	f.auditSvc.On("RecordActivity", mock.Anything, mock.Anything).Return(&domain.ActivityRecord{}, nil)

	matter, err := f.svc.Update(context.Background(), &service.UpdateMatterInput{
		MatterID:  matterID,
		Name:      "Hargreaves v. Linden",
		Status:    domain.MatterStatusClosed,
		UpdatedBy: userID,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.MatterStatusClosed, matter.Status)
	f.activityRepo.AssertCalled(t, "GetByName", mock.Anything, domain.ActivityMatterClosed)
}

func TestMatterUpdate_InvalidStatus(t *testing.T) {
	f := newMatterFixture(t)

	_, err := f.svc.Update(context.Background(), &service.UpdateMatterInput{
		MatterID:  uuid.New(),
		Name:      "x",
		Status:    "litigating",
		UpdatedBy: uuid.New(),
	})

	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
	f.matterRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestMatterList_PaginatesAndShapes(t *testing.T) {
	f := newMatterFixture(t)

	now := time.Now().UTC()
	src := &mocks.StubSource[domain.Matter]{}
	for i := 0; i < 23; i++ {
		src.Items = append(src.Items, domain.Matter{
			ID:        uuid.New(),
			Name:      "matter",
			Reference: "REF",
			Status:    domain.MatterStatusOpen,
			CreatedAt: now,
		})
	}
	f.matterRepo.On("List").Return(src)

	page, err := f.svc.List(context.Background(), service.ListOptions{
		OrderBy:    "createdAt desc",
		Fields:     "id,name",
		PageNumber: 3,
		PageSize:   10,
	})

	require.NoError(t, err)
	assert.Equal(t, 23, page.TotalCount)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 3, page.CurrentPage)
	assert.True(t, page.HasPrevious())
	assert.False(t, page.HasNext())
	assert.Len(t, page.Items, 3)
	assert.Equal(t, []string{"id", "name"}, page.Items[0].Fields())

	assert.Equal(t, []query.OrderField{
		{Path: "created_at", Desc: true},
		{Path: "id", Desc: false},
	}, src.Ordered)
	assert.Equal(t, 20, src.Offset)
	assert.Equal(t, 10, src.Limit)
}

func TestMatterList_InvalidPageNumber(t *testing.T) {
	f := newMatterFixture(t)
	f.matterRepo.On("List").Return(&mocks.StubSource[domain.Matter]{})

	_, err := f.svc.List(context.Background(), service.ListOptions{PageNumber: 0, PageSize: 10})

	assert.ErrorIs(t, err, query.ErrInvalidPageParameter)
}

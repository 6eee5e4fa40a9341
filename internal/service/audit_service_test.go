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

type auditFixture struct {
	auditRepo    *mocks.MockAuditRepo
	matterRepo   *mocks.MockMatterRepo
	docRepo      *mocks.MockDocumentRepo
	revRepo      *mocks.MockRevisionRepo
	userRepo     *mocks.MockUserRepo
	activityRepo *mocks.MockActivityRepo
	svc          service.AuditService
}

func newAuditFixture(t *testing.T) *auditFixture {
	t.Helper()
	registry, err := service.NewFieldRegistry()
	require.NoError(t, err)

	f := &auditFixture{
		auditRepo:    new(mocks.MockAuditRepo),
		matterRepo:   new(mocks.MockMatterRepo),
		docRepo:      new(mocks.MockDocumentRepo),
		revRepo:      new(mocks.MockRevisionRepo),
		userRepo:     new(mocks.MockUserRepo),
		activityRepo: new(mocks.MockActivityRepo),
	}
	f.svc = service.NewAuditService(f.auditRepo, f.matterRepo, f.docRepo, f.revRepo, f.userRepo, f.activityRepo, registry)
	return f
}

func TestRecordActivity_Success(t *testing.T) {
	f := newAuditFixture(t)
	matterID, activityID, userID := uuid.New(), uuid.New(), uuid.New()

	f.matterRepo.On("Exists", mock.Anything, matterID).Return(true, nil)
	f.activityRepo.On("Exists", mock.Anything, activityID).Return(true, nil)
	f.userRepo.On("Exists", mock.Anything, userID).Return(true, nil)
	f.auditRepo.On("RecordActivity", mock.Anything, mock.AnythingOfType("*domain.ActivityRecord")).Return(nil)

	rec, err := f.svc.RecordActivity(context.Background(), &service.RecordActivityInput{
		SubjectKind: domain.SubjectMatter,
		SubjectID:   matterID,
		ActivityID:  activityID,
		UserID:      userID,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.SubjectMatter, rec.SubjectKind)
	assert.Equal(t, matterID, rec.SubjectID)
	f.auditRepo.AssertExpectations(t)
}

func TestRecordActivity_InvalidSubjectKind(t *testing.T) {
	f := newAuditFixture(t)

	_, err := f.svc.RecordActivity(context.Background(), &service.RecordActivityInput{
		SubjectKind: "tenant",
		SubjectID:   uuid.New(),
		ActivityID:  uuid.New(),
		UserID:      uuid.New(),
	})

	assert.ErrorIs(t, err, domain.ErrInvalidSubjectKind)
	f.auditRepo.AssertNotCalled(t, "RecordActivity", mock.Anything, mock.Anything)
}

func TestRecordActivity_UnknownUser(t *testing.T) {
	f := newAuditFixture(t)
	docID, activityID, userID := uuid.New(), uuid.New(), uuid.New()

	f.docRepo.On("Exists", mock.Anything, docID).Return(true, nil)
	f.activityRepo.On("Exists", mock.Anything, activityID).Return(true, nil)
	f.userRepo.On("Exists", mock.Anything, userID).Return(false, nil)

	_, err := f.svc.RecordActivity(context.Background(), &service.RecordActivityInput{
		SubjectKind: domain.SubjectDocument,
		SubjectID:   docID,
		ActivityID:  activityID,
		UserID:      userID,
	})

	assert.ErrorIs(t, err, domain.ErrReferentialIntegrity)
	assert.Contains(t, err.Error(), "user")
	f.auditRepo.AssertNotCalled(t, "RecordActivity", mock.Anything, mock.Anything)
}

func TestRecordTransfer_SameMatter(t *testing.T) {
	f := newAuditFixture(t)
	matterID := uuid.New()

	_, err := f.svc.RecordTransfer(context.Background(), &service.RecordTransferInput{
		FromMatterID: matterID,
		ToMatterID:   matterID,
		DocumentID:   uuid.New(),
		ActivityID:   uuid.New(),
		UserID:       uuid.New(),
	})

	assert.ErrorIs(t, err, domain.ErrSameMatterTransfer)
	f.auditRepo.AssertNotCalled(t, "RecordTransfer", mock.Anything, mock.Anything)
}

func TestRecordTransfer_Success(t *testing.T) {
	f := newAuditFixture(t)
	fromID, toID, docID, activityID, userID := uuid.New(), uuid.New(), uuid.New(), uuid.New(), uuid.New()

	f.matterRepo.On("Exists", mock.Anything, fromID).Return(true, nil)
	f.matterRepo.On("Exists", mock.Anything, toID).Return(true, nil)
	f.docRepo.On("Exists", mock.Anything, docID).Return(true, nil)
	f.activityRepo.On("Exists", mock.Anything, activityID).Return(true, nil)
	f.userRepo.On("Exists", mock.Anything, userID).Return(true, nil)
	f.auditRepo.On("RecordTransfer", mock.Anything, mock.AnythingOfType("*domain.Transfer")).Return(nil)

	transfer, err := f.svc.RecordTransfer(context.Background(), &service.RecordTransferInput{
		FromMatterID: fromID,
		ToMatterID:   toID,
		DocumentID:   docID,
		ActivityID:   activityID,
		UserID:       userID,
	})

	require.NoError(t, err)
	assert.Equal(t, fromID, transfer.FromMatterID)
	assert.Equal(t, toID, transfer.ToMatterID)
	f.auditRepo.AssertExpectations(t)
}

func TestRecordTransfer_UnknownDestinationMatter(t *testing.T) {
	f := newAuditFixture(t)
	fromID, toID := uuid.New(), uuid.New()

	f.matterRepo.On("Exists", mock.Anything, fromID).Return(true, nil)
	f.matterRepo.On("Exists", mock.Anything, toID).Return(false, nil)

	_, err := f.svc.RecordTransfer(context.Background(), &service.RecordTransferInput{
		FromMatterID: fromID,
		ToMatterID:   toID,
		DocumentID:   uuid.New(),
		ActivityID:   uuid.New(),
		UserID:       uuid.New(),
	})

	assert.ErrorIs(t, err, domain.ErrReferentialIntegrity)
	assert.Contains(t, err.Error(), "destination matter")
}

func TestListBySubject_SortAndShape(t *testing.T) {
	f := newAuditFixture(t)
	subjectID := uuid.New()

	src := &mocks.StubSource[domain.AuditEntry]{
		Items: []domain.AuditEntry{
			{
				ID:            uuid.New(),
				SubjectKind:   domain.SubjectDocument,
				SubjectID:     subjectID,
				ActivityName:  "document.moved",
				UserFirstName: "Ada",
				UserLastName:  "Lovelace",
				CreatedAt:     time.Now().UTC(),
			},
		},
	}
	f.auditRepo.On("QueryBySubject", subjectID).Return(src)

	page, err := f.svc.ListBySubject(context.Background(), subjectID, service.ListOptions{
		OrderBy:    "user desc",
		Fields:     "activity,user",
		PageNumber: 1,
		PageSize:   10,
	})

	require.NoError(t, err)

	// The single client field "user" expands to both storage paths, then the
	// tiebreaker is appended ascending.
	assert.Equal(t, []query.OrderField{
		{Path: "u.last_name", Desc: true},
		{Path: "u.first_name", Desc: true},
		{Path: "ar.id", Desc: false},
	}, src.Ordered)

	require.Len(t, page.Items, 1)
	assert.Equal(t, []string{"activity", "user"}, page.Items[0].Fields())
	name, ok := page.Items[0].Get("user")
	require.True(t, ok)
	assert.Equal(t, "Ada Lovelace", name)
	_, ok = page.Items[0].Get("createdAt")
	assert.False(t, ok)
}

func TestListBySubject_UnknownSortField(t *testing.T) {
	f := newAuditFixture(t)
	subjectID := uuid.New()

	f.auditRepo.On("QueryBySubject", subjectID).Return(&mocks.StubSource[domain.AuditEntry]{})

	_, err := f.svc.ListBySubject(context.Background(), subjectID, service.ListOptions{
		OrderBy:    "severity",
		PageNumber: 1,
		PageSize:   10,
	})

	assert.ErrorIs(t, err, query.ErrUnknownSortField)
	assert.Contains(t, err.Error(), "severity")
}

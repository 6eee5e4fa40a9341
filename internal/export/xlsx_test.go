package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"mattervault/internal/domain"
)

func TestAuditWorkbook(t *testing.T) {
	recorded := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	entries := []domain.AuditEntry{
		{
			ID:            uuid.New(),
			SubjectKind:   domain.SubjectDocument,
			SubjectID:     uuid.New(),
			ActivityName:  "document.moved",
			UserFirstName: "Ada",
			UserLastName:  "Lovelace",
			CreatedAt:     recorded,
		},
		{
			ID:            uuid.New(),
			SubjectKind:   domain.SubjectMatter,
			SubjectID:     uuid.New(),
			ActivityName:  "matter.created",
			UserFirstName: "Grace",
			UserLastName:  "Hopper",
			CreatedAt:     recorded.Add(time.Minute),
		},
	}

	data, err := AuditWorkbook(entries)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(auditSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, auditHeader, rows[0])
	assert.Equal(t, "document.moved", rows[1][3])
	assert.Equal(t, "Ada Lovelace", rows[1][4])
	assert.Equal(t, "2026-03-14 09:26:53", rows[1][5])
	assert.Equal(t, "matter.created", rows[2][3])
}

func TestAuditWorkbookEmpty(t *testing.T) {
	data, err := AuditWorkbook(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(auditSheet)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, auditHeader, rows[0])
}

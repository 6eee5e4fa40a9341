package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"mattervault/internal/domain"
	"mattervault/internal/port"
)

type revisionRepo struct {
	db *sqlx.DB
}

// NewRevisionRepo creates a new PostgreSQL-backed RevisionRepository.
func NewRevisionRepo(db *sqlx.DB) port.RevisionRepository {
	return &revisionRepo{db: db}
}

func (r *revisionRepo) Create(ctx context.Context, rev *domain.Revision) error {
	rev.CreatedAt = time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO revisions (id, document_id, number, storage_key, content_type, file_size, created_by, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		rev.ID, rev.DocumentID, rev.Number, rev.StorageKey,
		rev.ContentType, rev.FileSize, rev.CreatedBy, rev.CreatedAt)
	if err != nil {
		return fmt.Errorf("revisionRepo.Create: %w", err)
	}
	return nil
}

func (r *revisionRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Revision, error) {
	var rev domain.Revision
	err := r.db.GetContext(ctx, &rev, "SELECT * FROM revisions WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRevisionNotFound
		}
		return nil, fmt.Errorf("revisionRepo.GetByID: %w", err)
	}
	return &rev, nil
}

func (r *revisionRepo) ListByDocument(ctx context.Context, docID uuid.UUID) ([]domain.Revision, error) {
	var revs []domain.Revision
	err := r.db.SelectContext(ctx, &revs,
		"SELECT * FROM revisions WHERE document_id = $1 ORDER BY number ASC", docID)
	if err != nil {
		return nil, fmt.Errorf("revisionRepo.ListByDocument: %w", err)
	}
	return revs, nil
}

func (r *revisionRepo) NextNumber(ctx context.Context, docID uuid.UUID) (int, error) {
	var next int
	err := r.db.GetContext(ctx, &next,
		"SELECT COALESCE(MAX(number), 0) + 1 FROM revisions WHERE document_id = $1", docID)
	if err != nil {
		return 0, fmt.Errorf("revisionRepo.NextNumber: %w", err)
	}
	return next, nil
}

func (r *revisionRepo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists,
		"SELECT EXISTS(SELECT 1 FROM revisions WHERE id = $1)", id)
	if err != nil {
		return false, fmt.Errorf("revisionRepo.Exists: %w", err)
	}
	return exists, nil
}

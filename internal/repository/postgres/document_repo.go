package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"mattervault/internal/domain"
	"mattervault/internal/port"
	"mattervault/internal/query"
)

type documentRepo struct {
	db *sqlx.DB
}

// NewDocumentRepo creates a new PostgreSQL-backed DocumentRepository.
func NewDocumentRepo(db *sqlx.DB) port.DocumentRepository {
	return &documentRepo{db: db}
}

func (r *documentRepo) Create(ctx context.Context, doc *domain.Document) error {
	now := time.Now().UTC()
	doc.CreatedAt = now
	doc.UpdatedAt = now

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO documents (id, matter_id, title, description, document_type, status, created_by, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		doc.ID, doc.MatterID, doc.Title, doc.Description, doc.DocumentType,
		doc.Status, doc.CreatedBy, doc.CreatedAt, doc.UpdatedAt)
	if err != nil {
		return fmt.Errorf("documentRepo.Create: %w", err)
	}
	return nil
}

func (r *documentRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Document, error) {
	var doc domain.Document
	err := r.db.GetContext(ctx, &doc, "SELECT * FROM documents WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("documentRepo.GetByID: %w", err)
	}
	return &doc, nil
}

func (r *documentRepo) ListByMatter(matterID uuid.UUID) query.Source[domain.Document] {
	return newRowSource[domain.Document](r.db,
		builder().Select("*").From("documents").Where(sq.Eq{"matter_id": matterID}),
		builder().Select("COUNT(*)").From("documents").Where(sq.Eq{"matter_id": matterID}),
		"created_at DESC")
}

func (r *documentRepo) Update(ctx context.Context, doc *domain.Document) error {
	doc.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`UPDATE documents SET title = $1, description = $2, document_type = $3, status = $4, updated_at = $5
		 WHERE id = $6`,
		doc.Title, doc.Description, doc.DocumentType, doc.Status, doc.UpdatedAt, doc.ID)
	if err != nil {
		return fmt.Errorf("documentRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrDocumentNotFound
	}
	return nil
}

func (r *documentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM documents WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("documentRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrDocumentNotFound
	}
	return nil
}

func (r *documentRepo) MoveToMatter(ctx context.Context, docID, toMatterID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE documents SET matter_id = $1, updated_at = $2 WHERE id = $3",
		toMatterID, time.Now().UTC(), docID)
	if err != nil {
		return fmt.Errorf("documentRepo.MoveToMatter: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrDocumentNotFound
	}
	return nil
}

func (r *documentRepo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists,
		"SELECT EXISTS(SELECT 1 FROM documents WHERE id = $1)", id)
	if err != nil {
		return false, fmt.Errorf("documentRepo.Exists: %w", err)
	}
	return exists, nil
}

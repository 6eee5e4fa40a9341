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

type auditRepo struct {
	db *sqlx.DB
}

// NewAuditRepo creates a new PostgreSQL-backed AuditRepository.
func NewAuditRepo(db *sqlx.DB) port.AuditRepository {
	return &auditRepo{db: db}
}

func (r *auditRepo) RecordActivity(ctx context.Context, rec *domain.ActivityRecord) error {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO activity_records (id, subject_kind, subject_id, activity_id, user_id, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		rec.ID, rec.SubjectKind, rec.SubjectID, rec.ActivityID, rec.UserID, rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("auditRepo.RecordActivity: %w", err)
	}
	return nil
}

// RecordTransfer writes the From and To rows of one transfer inside a
// single transaction. Any failure rolls back both, so readers see either
// the complete pair or nothing.
func (r *auditRepo) RecordTransfer(ctx context.Context, t *domain.Transfer) error {
	if t.TransferID == uuid.Nil {
		t.TransferID = uuid.New()
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("auditRepo.RecordTransfer begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO transfer_from_records (id, transfer_id, matter_id, document_id, activity_id, user_id, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		uuid.New(), t.TransferID, t.FromMatterID, t.DocumentID, t.ActivityID, t.UserID, t.CreatedAt)
	if err != nil {
		return fmt.Errorf("auditRepo.RecordTransfer from: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO transfer_to_records (id, transfer_id, matter_id, document_id, activity_id, user_id, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		uuid.New(), t.TransferID, t.ToMatterID, t.DocumentID, t.ActivityID, t.UserID, t.CreatedAt)
	if err != nil {
		return fmt.Errorf("auditRepo.RecordTransfer to: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("auditRepo.RecordTransfer commit: %w", err)
	}
	return nil
}

func (r *auditRepo) QueryBySubject(subjectID uuid.UUID) query.Source[domain.AuditEntry] {
	sel := builder().
		Select(
			"ar.id",
			"ar.subject_kind",
			"ar.subject_id",
			"ar.activity_id",
			"a.name AS activity_name",
			"ar.user_id",
			"u.first_name AS user_first_name",
			"u.last_name AS user_last_name",
			"ar.created_at",
		).
		From("activity_records ar").
		Join("activities a ON a.id = ar.activity_id").
		Join("users u ON u.id = ar.user_id").
		Where(sq.Eq{"ar.subject_id": subjectID})

	count := builder().
		Select("COUNT(*)").
		From("activity_records ar").
		Where(sq.Eq{"ar.subject_id": subjectID})

	return newRowSource[domain.AuditEntry](r.db, sel, count, "ar.created_at ASC")
}

func (r *auditRepo) GetTransferPair(ctx context.Context, transferID uuid.UUID) (*domain.TransferFromRecord, *domain.TransferToRecord, error) {
	var from domain.TransferFromRecord
	err := r.db.GetContext(ctx, &from,
		"SELECT * FROM transfer_from_records WHERE transfer_id = $1", transferID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, domain.ErrNotFound
		}
		return nil, nil, fmt.Errorf("auditRepo.GetTransferPair from: %w", err)
	}

	var to domain.TransferToRecord
	err = r.db.GetContext(ctx, &to,
		"SELECT * FROM transfer_to_records WHERE transfer_id = $1", transferID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, domain.ErrNotFound
		}
		return nil, nil, fmt.Errorf("auditRepo.GetTransferPair to: %w", err)
	}
	return &from, &to, nil
}

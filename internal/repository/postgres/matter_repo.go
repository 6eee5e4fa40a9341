package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"mattervault/internal/domain"
	"mattervault/internal/port"
	"mattervault/internal/query"
)

type matterRepo struct {
	db *sqlx.DB
}

// NewMatterRepo creates a new PostgreSQL-backed MatterRepository.
func NewMatterRepo(db *sqlx.DB) port.MatterRepository {
	return &matterRepo{db: db}
}

func (r *matterRepo) Create(ctx context.Context, matter *domain.Matter) error {
	now := time.Now().UTC()
	matter.CreatedAt = now
	matter.UpdatedAt = now

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO matters (id, name, reference, description, status, created_by, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		matter.ID, matter.Name, matter.Reference, matter.Description,
		matter.Status, matter.CreatedBy, matter.CreatedAt, matter.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") && strings.Contains(err.Error(), "reference") {
			return domain.ErrDuplicateReference
		}
		return fmt.Errorf("matterRepo.Create: %w", err)
	}
	return nil
}

func (r *matterRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Matter, error) {
	var matter domain.Matter
	err := r.db.GetContext(ctx, &matter, "SELECT * FROM matters WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMatterNotFound
		}
		return nil, fmt.Errorf("matterRepo.GetByID: %w", err)
	}
	return &matter, nil
}

func (r *matterRepo) List() query.Source[domain.Matter] {
	return newRowSource[domain.Matter](r.db,
		builder().Select("*").From("matters"),
		builder().Select("COUNT(*)").From("matters"),
		"created_at DESC")
}

func (r *matterRepo) Update(ctx context.Context, matter *domain.Matter) error {
	matter.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`UPDATE matters SET name = $1, description = $2, status = $3, updated_at = $4
		 WHERE id = $5`,
		matter.Name, matter.Description, matter.Status, matter.UpdatedAt, matter.ID)
	if err != nil {
		return fmt.Errorf("matterRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrMatterNotFound
	}
	return nil
}

func (r *matterRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM matters WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("matterRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrMatterNotFound
	}
	return nil
}

func (r *matterRepo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists,
		"SELECT EXISTS(SELECT 1 FROM matters WHERE id = $1)", id)
	if err != nil {
		return false, fmt.Errorf("matterRepo.Exists: %w", err)
	}
	return exists, nil
}

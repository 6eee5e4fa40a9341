package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"mattervault/internal/domain"
	"mattervault/internal/port"
)

type activityRepo struct {
	db *sqlx.DB
}

// NewActivityRepo creates a new PostgreSQL-backed ActivityRepository.
// The activity vocabulary is seeded by migration; this repository only
// reads it.
func NewActivityRepo(db *sqlx.DB) port.ActivityRepository {
	return &activityRepo{db: db}
}

func (r *activityRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Activity, error) {
	var activity domain.Activity
	err := r.db.GetContext(ctx, &activity, "SELECT * FROM activities WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrActivityNotFound
		}
		return nil, fmt.Errorf("activityRepo.GetByID: %w", err)
	}
	return &activity, nil
}

func (r *activityRepo) GetByName(ctx context.Context, name string) (*domain.Activity, error) {
	var activity domain.Activity
	err := r.db.GetContext(ctx, &activity, "SELECT * FROM activities WHERE name = $1", name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrActivityNotFound
		}
		return nil, fmt.Errorf("activityRepo.GetByName: %w", err)
	}
	return &activity, nil
}

func (r *activityRepo) ListAll(ctx context.Context) ([]domain.Activity, error) {
	var activities []domain.Activity
	err := r.db.SelectContext(ctx, &activities, "SELECT * FROM activities ORDER BY name ASC")
	if err != nil {
		return nil, fmt.Errorf("activityRepo.ListAll: %w", err)
	}
	return activities, nil
}

func (r *activityRepo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists,
		"SELECT EXISTS(SELECT 1 FROM activities WHERE id = $1)", id)
	if err != nil {
		return false, fmt.Errorf("activityRepo.Exists: %w", err)
	}
	return exists, nil
}

package service

import (
	"context"

	"github.com/google/uuid"

	"mattervault/internal/domain"
	"mattervault/internal/port"
	"mattervault/internal/query"
)

// UserService defines the read-only user directory contract.
type UserService interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	List(ctx context.Context, opts ListOptions) (*query.Page[query.ShapedRecord], error)
}

type userService struct {
	userRepo port.UserRepository
	registry *query.Registry
}

// NewUserService creates a new UserService implementation.
func NewUserService(userRepo port.UserRepository, registry *query.Registry) UserService {
	return &userService{userRepo: userRepo, registry: registry}
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *userService) List(ctx context.Context, opts ListOptions) (*query.Page[query.ShapedRecord], error) {
	return listPipeline(ctx, s.userRepo.List(), s.registry, shapeUserDto, shapeUser, userShaper, opts)
}

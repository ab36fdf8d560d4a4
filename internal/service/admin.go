package service

import (
	"context"

	"odms-backend/internal/domain"
	"odms-backend/internal/logger"
	"odms-backend/internal/repository"
)

type adminService struct {
	userRepo repository.UserRepository
}

func NewAdminService(userRepo repository.UserRepository) AdminService {
	return &adminService{userRepo: userRepo}
}

func (s *adminService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.userRepo.List(ctx)
}

func (s *adminService) UpdateUserRole(ctx context.Context, userID int64, role string) error {
	parsed, err := domain.ParseRole(role)
	if err != nil {
		return err
	}
	if err := s.userRepo.UpdateRole(ctx, userID, parsed); err != nil {
		return err
	}
	logger.Info("User role updated", "user_id", userID, "role", parsed)
	return nil
}

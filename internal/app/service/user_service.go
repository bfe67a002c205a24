package service

import (
	"context"
	"errors"
	"fmt"

	"taskdeck/internal/common"
	"taskdeck/internal/common/security"
	"taskdeck/internal/domain/model"
	"taskdeck/internal/domain/repository"
)

// UserService covers self-service account operations and the admin-facing
// user listing.
type UserService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

const minPasswordLength = 6

// ChangePassword re-verifies the current password before storing a fresh
// hash. On a wrong current password the stored hash is left untouched and
// the caller gets ErrAuthenticationFailed.
func (s *UserService) ChangePassword(ctx context.Context, userID int64, currentPassword, newPassword string) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if !security.CheckPasswordHash(currentPassword, user.HashedPassword) {
		return common.ErrAuthenticationFailed
	}
	if len(newPassword) < minPasswordLength {
		return fmt.Errorf("new password must be at least %d characters: %w", minPasswordLength, common.ErrValidation)
	}

	hashedPassword, err := security.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	return s.userRepo.UpdatePassword(ctx, user.ID, hashedPassword)
}

// ChangePasswordByUsername backs the form flow, which identifies the account
// by username rather than by the session. The current password still gates
// the change.
func (s *UserService) ChangePasswordByUsername(ctx context.Context, username, currentPassword, newPassword string) error {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.ErrAuthenticationFailed
		}
		return err
	}
	return s.ChangePassword(ctx, user.ID, currentPassword, newPassword)
}

func (s *UserService) ChangePhoneNumber(ctx context.Context, userID int64, phoneNumber string) error {
	return s.userRepo.UpdatePhoneNumber(ctx, userID, phoneNumber)
}

// ListUsers returns all users with their password digests stripped.
func (s *UserService) ListUsers(ctx context.Context) ([]model.User, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		users[i].HashedPassword = ""
	}
	return users, nil
}

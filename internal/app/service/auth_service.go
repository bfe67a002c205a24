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

// AuthService is the session issuer: it authenticates credentials against
// the user store and mints signed session tokens. It keeps no state between
// requests; the token it returns is the entire session.
type AuthService struct {
	userRepo repository.UserRepository
}

func NewAuthService(userRepo repository.UserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

type RegisterRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"password2"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Register creates a new, active user with the default role. A password
// confirmation mismatch or an already-taken username or email fails with
// ErrValidation; callers surface one generic message for all three.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*model.User, error) {
	if req.Username == "" || req.Email == "" || req.Password == "" {
		return nil, fmt.Errorf("missing required fields: %w", common.ErrValidation)
	}
	if req.Password != req.PasswordConfirm {
		return nil, fmt.Errorf("password confirmation does not match: %w", common.ErrValidation)
	}

	if _, err := s.userRepo.FindByUsername(ctx, req.Username); !errors.Is(err, common.ErrNotFound) {
		if err != nil {
			return nil, fmt.Errorf("failed to check username: %w", err)
		}
		return nil, fmt.Errorf("username already taken: %w", common.ErrValidation)
	}
	if _, err := s.userRepo.FindByEmail(ctx, req.Email); !errors.Is(err, common.ErrNotFound) {
		if err != nil {
			return nil, fmt.Errorf("failed to check email: %w", err)
		}
		return nil, fmt.Errorf("email already taken: %w", common.ErrValidation)
	}

	hashedPassword, err := security.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Username:       req.Username,
		Email:          req.Email,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		HashedPassword: hashedPassword,
		IsActive:       true,
		Role:           string(model.RoleUser), // Default role
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// A concurrent registration can still race the uniqueness checks
		// above; the repo surfaces that as common.ErrConflict.
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	user.HashedPassword = "" // Clear digest before returning
	return user, nil
}

// Authenticate verifies a username/password pair. Absent users, wrong
// passwords, and deactivated accounts are indistinguishable to the caller.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*model.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrAuthenticationFailed
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if !security.CheckPasswordHash(password, user.HashedPassword) {
		return nil, common.ErrAuthenticationFailed
	}
	if !user.IsActive {
		return nil, common.ErrAuthenticationFailed
	}
	return user, nil
}

// Login composes Authenticate with token issuance. Concurrent logins by the
// same user each get an independent, equally valid token.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.Authenticate(ctx, username, password)
	if err != nil {
		return "", err
	}

	token, err := security.GenerateToken(user.Username, user.ID, user.Role)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}

package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jdelacruz/ssis-backend/internal/app/models"
	"github.com/jdelacruz/ssis-backend/internal/app/models/dto"
	"github.com/jdelacruz/ssis-backend/internal/app/repositories"
	"github.com/jdelacruz/ssis-backend/internal/pkg/apperrors"
	"github.com/jdelacruz/ssis-backend/internal/pkg/auth"
	"github.com/jdelacruz/ssis-backend/internal/pkg/validation"
)

// AuthService handles authentication and account registration
type AuthService struct {
	userRepo   *repositories.UserRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new authentication service instance
func NewAuthService(userRepo *repositories.UserRepository, jwtService *auth.JWTService) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// AuthResult carries the outcome of a successful login or signup
type AuthResult struct {
	User      *models.User
	Token     string
	ExpiresIn int
}

// Signup registers a new non-admin account and issues an access token
func (s *AuthService) Signup(ctx context.Context, req dto.SignupRequest) (*AuthResult, error) {
	username := strings.TrimSpace(req.Username)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if !validation.RequiredString(username) {
		return nil, apperrors.NewValidationError("username cannot be empty")
	}
	if !validation.MaxLen(username, validation.NameMaxLength) {
		return nil, apperrors.NewValidationError(
			fmt.Sprintf("username cannot exceed %d characters", validation.NameMaxLength))
	}
	if !validation.ValidEmail(email) {
		return nil, apperrors.NewValidationError("email address is not valid")
	}
	if len(req.Password) < 8 {
		return nil, apperrors.NewValidationError("password must be at least 8 characters")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         models.RoleUser,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return s.issueToken(user)
}

// Login verifies credentials and issues an access token. Unknown emails and
// wrong passwords are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*AuthResult, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issueToken(user)
}

// GetCurrentUser loads the account behind a validated token
func (s *AuthService) GetCurrentUser(ctx context.Context, userID int64) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

func (s *AuthService) issueToken(user *models.User) (*AuthResult, error) {
	token, expiresIn, err := s.jwtService.GenerateAccessToken(user.ID, user.Username, string(user.Role))
	if err != nil {
		return nil, fmt.Errorf("error generating access token: %w", err)
	}

	return &AuthResult{
		User:      user,
		Token:     token,
		ExpiresIn: expiresIn,
	}, nil
}

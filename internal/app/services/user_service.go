package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/jdelacruz/ssis-backend/internal/app/models"
	"github.com/jdelacruz/ssis-backend/internal/app/models/dto"
	"github.com/jdelacruz/ssis-backend/internal/app/repositories"
	"github.com/jdelacruz/ssis-backend/internal/pkg/apperrors"
	"github.com/jdelacruz/ssis-backend/internal/pkg/auth"
	"github.com/jdelacruz/ssis-backend/internal/pkg/validation"
)

// UserService handles account administration
type UserService struct {
	userRepo *repositories.UserRepository
}

// NewUserService creates a new user service instance
func NewUserService(userRepo *repositories.UserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

func normalizeRole(role string) (models.Role, error) {
	if role == "" {
		return models.RoleUser, nil
	}
	r := models.Role(strings.ToLower(strings.TrimSpace(role)))
	if !r.IsValid() {
		return "", apperrors.NewValidationError("role must be admin or user")
	}
	return r, nil
}

// CreateUser creates an account on behalf of an administrator
func (s *UserService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*models.User, error) {
	username := strings.TrimSpace(req.Username)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if !validation.RequiredString(username) {
		return nil, apperrors.NewValidationError("username cannot be empty")
	}
	if !validation.ValidEmail(email) {
		return nil, apperrors.NewValidationError("email address is not valid")
	}
	if len(req.Password) < 8 {
		return nil, apperrors.NewValidationError("password must be at least 8 characters")
	}
	role, err := normalizeRole(req.Role)
	if err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// GetUser retrieves a user by ID
func (s *UserService) GetUser(ctx context.Context, id int64) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// ListUsers returns one page of users matching the list parameters
func (s *UserService) ListUsers(ctx context.Context, params dto.ListParams) ([]models.User, int64, error) {
	return s.userRepo.Search(ctx, params)
}

// UpdateUser applies a partial update to a user. A password, when present,
// is re-hashed.
func (s *UserService) UpdateUser(ctx context.Context, id int64, req dto.UpdateUserRequest) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Username != nil {
		username := strings.TrimSpace(*req.Username)
		if !validation.RequiredString(username) {
			return nil, apperrors.NewValidationError("username cannot be empty")
		}
		user.Username = username
	}
	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		if !validation.ValidEmail(email) {
			return nil, apperrors.NewValidationError("email address is not valid")
		}
		user.Email = email
	}
	if req.Password != nil {
		if len(*req.Password) < 8 {
			return nil, apperrors.NewValidationError("password must be at least 8 characters")
		}
		hash, err := auth.HashPassword(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("error hashing password: %w", err)
		}
		user.PasswordHash = hash
	}
	if req.Role != nil {
		role, err := normalizeRole(*req.Role)
		if err != nil {
			return nil, err
		}
		user.Role = role
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// DeleteUser removes a user by ID. The last admin account cannot be removed.
func (s *UserService) DeleteUser(ctx context.Context, id int64) error {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if user.Role == models.RoleAdmin {
		admins, err := s.userRepo.CountAdmins(ctx)
		if err != nil {
			return err
		}
		if admins <= 1 {
			return apperrors.NewValidationError("cannot delete the last admin account")
		}
	}

	return s.userRepo.Delete(ctx, id)
}

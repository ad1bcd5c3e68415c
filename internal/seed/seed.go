package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jdelacruz/ssis-backend/internal/app/models"
	"github.com/jdelacruz/ssis-backend/internal/app/repositories"
	"github.com/jdelacruz/ssis-backend/internal/pkg/apperrors"
	"github.com/jdelacruz/ssis-backend/internal/pkg/auth"
	"github.com/jdelacruz/ssis-backend/internal/pkg/logger"
)

// Default admin credentials, overridable through the environment for
// non-local deployments.
const (
	DefaultAdminUsername = "admin"
	DefaultAdminEmail    = "admin@ssis.local"
	DefaultAdminPassword = "Admin123!"
)

// CreateDefaultData ensures an admin account exists so a fresh install is
// usable. Existing data is never modified.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool) error {
	userRepo := repositories.NewUserRepository(dbPool)

	_, err := userRepo.GetByUsername(ctx, DefaultAdminUsername)
	if err == nil {
		logger.Debug().Msg("Admin account already exists, skipping seed")
		return nil
	}
	if !errors.Is(err, apperrors.ErrUserNotFound) {
		return fmt.Errorf("error checking for admin account: %w", err)
	}

	hash, err := auth.HashPassword(DefaultAdminPassword)
	if err != nil {
		return fmt.Errorf("error hashing admin password: %w", err)
	}

	admin := &models.User{
		Username:     DefaultAdminUsername,
		Email:        DefaultAdminEmail,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
	}

	if err := userRepo.Create(ctx, admin); err != nil {
		// Another instance may have seeded concurrently
		if errors.Is(err, apperrors.ErrUsernameAlreadyExists) || errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			return nil
		}
		return fmt.Errorf("error creating admin account: %w", err)
	}

	logger.Info().Int64("user_id", admin.ID).Msg("Default admin account created")
	return nil
}

package config

import (
	"context"
	"fmt"
	"time"

	"github.com/mehrbod2002/brokerdb/internal/models"
	"github.com/mehrbod2002/brokerdb/internal/repository"
	"github.com/mehrbod2002/brokerdb/internal/schema"
	"github.com/rs/zerolog"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// EnsureAdminUser inserts the configured admin account unless a user with
// that email already exists. It does nothing when no admin email is set.
func EnsureAdminUser(ctx context.Context, userRepo repository.UserRepository, cfg *Config, logger zerolog.Logger) (bool, error) {
	if cfg.AdminEmail == "" {
		return false, nil
	}

	user, err := userRepo.GetUserByEmail(ctx, cfg.AdminEmail)
	if err != nil {
		return false, err
	}
	if user != nil {
		logger.Info().Str("email", cfg.AdminEmail).Msg("Admin user already exists")
		return false, nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return false, err
	}

	now := time.Now()
	admin := &models.User{
		ID:        primitive.NewObjectID(),
		Email:     cfg.AdminEmail,
		FirstName: cfg.AdminFirstName,
		LastName:  cfg.AdminLastName,
		Password:  string(hashedPassword),
		Status:    models.UserStatusActive,
		KycStatus: models.KycStatusCompleted,
		Roles:     []models.Role{models.RoleAdmin, models.RoleUser},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := schema.Users.Validate(admin); err != nil {
		return false, fmt.Errorf("admin user: %w", err)
	}

	if err := userRepo.SaveUser(ctx, admin); err != nil {
		return false, err
	}

	logger.Info().Str("email", cfg.AdminEmail).Msg("Default admin user created")
	return true, nil
}

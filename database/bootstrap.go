package database

import (
	"time"

	"glamazon/config"
	"glamazon/models"
	"glamazon/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// UserCreator is the subset of the user repository the bootstrap needs.
type UserCreator interface {
	GetByEmailWithProjection(email string, projection bson.M) (*models.User, error)
	Create(user *models.User) error
}

// EnsureDefaultAdmin creates the default admin account on first startup.
// Credentials come from configuration; when they are absent the bootstrap is
// skipped so a deployment can manage admins manually.
func EnsureDefaultAdmin(repo UserCreator) {
	logger := utils.GetLogger()
	cfg := config.AppConfig

	if cfg.DefaultAdminEmail == "" || cfg.DefaultAdminPassword == "" {
		logger.Info("Default admin bootstrap skipped: no credentials configured")
		return
	}

	existing, err := repo.GetByEmailWithProjection(cfg.DefaultAdminEmail, bson.M{"id": 1})
	if err != nil {
		logger.Error("Default admin bootstrap: lookup failed", zap.Error(err))
		return
	}
	if existing != nil {
		logger.Info("Default admin user already exists")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.DefaultAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("Default admin bootstrap: failed to hash password", zap.Error(err))
		return
	}

	now := time.Now()
	admin := models.User{
		ID:             uuid.New().String(),
		Type:           models.UserTypeAdmin,
		Email:          cfg.DefaultAdminEmail,
		Name:           cfg.DefaultAdminName,
		Phone:          cfg.DefaultAdminPhone,
		PasswordHash:   string(hash),
		IsDefaultAdmin: true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := repo.Create(&admin); err != nil {
		logger.Error("Default admin bootstrap: create failed", zap.Error(err))
		return
	}
	logger.Info("Default admin user created successfully")
}

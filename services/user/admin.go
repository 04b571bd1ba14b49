package user

import (
	"fmt"

	"glamazon/models"
	"glamazon/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// CreateUser lets an admin provision an account directly, skipping OTP
// verification. Creating another admin requires the default admin.
func (s *DefaultUserService) CreateUser(actor *models.User, req AdminUserRequest) (*models.User, error) {
	if actor == nil || !actor.IsAdmin() {
		return nil, ErrForbidden
	}
	userType := req.Type
	if userType == "" {
		userType = models.UserTypeClient
	}
	if userType != models.UserTypeClient && userType != models.UserTypeAdmin {
		return nil, fmt.Errorf("%w: unknown user type %q", ErrInvalidInput, userType)
	}
	if userType == models.UserTypeAdmin && !actor.IsDefaultAdmin {
		return nil, ErrForbidden
	}
	email := normalizeEmail(req.Email)
	if email == "" || req.Name == "" {
		return nil, fmt.Errorf("%w: email and name are required", ErrInvalidInput)
	}
	if err := verifyPasswordComplexity(req.Password); err != nil {
		return nil, err
	}

	existing, err := s.Repo.GetByEmailWithProjection(email, bson.M{"id": 1})
	if err != nil {
		return nil, fmt.Errorf("failed to look up email: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	u := &models.User{
		ID:           uuid.New().String(),
		Type:         userType,
		Email:        email,
		Name:         req.Name,
		Phone:        req.Phone,
		PasswordHash: string(hash),
	}
	if err := s.Repo.Create(u); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return u, nil
}

// GetAllUsers returns every account decorated with its presence flag, newest
// first.
func (s *DefaultUserService) GetAllUsers() ([]UserWithPresence, error) {
	users, err := s.Repo.GetAllWithProjection(profileProjection)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	online := map[string]bool{}
	if s.Presence != nil {
		ids, err := s.Presence.OnlineUserIDs()
		if err != nil {
			utils.GetLogger().Error("Failed to load presence set", zap.Error(err))
		} else {
			for _, id := range ids {
				online[id] = true
			}
		}
	}

	out := make([]UserWithPresence, len(users))
	for i, u := range users {
		out[i] = UserWithPresence{User: u, IsOnline: online[u.ID]}
	}
	return out, nil
}

// UpdateUser applies admin edits to another account. Role changes and edits
// to admin accounts require the default admin; the default admin account
// itself cannot be demoted.
func (s *DefaultUserService) UpdateUser(actor *models.User, targetID string, req AdminUserRequest) (*models.User, error) {
	if actor == nil || !actor.IsAdmin() {
		return nil, ErrForbidden
	}
	target, err := s.Repo.GetByIDWithProjection(targetID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if target == nil {
		return nil, ErrNotFound
	}
	if target.IsAdmin() && !actor.IsDefaultAdmin && actor.ID != target.ID {
		return nil, ErrForbidden
	}

	update := bson.M{}
	if req.Name != "" {
		update["name"] = req.Name
	}
	if req.Phone != "" {
		update["phone"] = req.Phone
	}
	if email := normalizeEmail(req.Email); email != "" && email != target.Email {
		existing, err := s.Repo.GetByEmailWithProjection(email, bson.M{"id": 1})
		if err != nil {
			return nil, fmt.Errorf("failed to look up email: %w", err)
		}
		if existing != nil {
			return nil, ErrEmailTaken
		}
		update["email"] = email
	}
	if req.Type != "" && req.Type != target.Type {
		if req.Type != models.UserTypeClient && req.Type != models.UserTypeAdmin {
			return nil, fmt.Errorf("%w: unknown user type %q", ErrInvalidInput, req.Type)
		}
		if !actor.IsDefaultAdmin || target.IsDefaultAdmin {
			return nil, ErrForbidden
		}
		update["type"] = req.Type
	}
	if req.Password != "" {
		if err := verifyPasswordComplexity(req.Password); err != nil {
			return nil, err
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		update["password_hash"] = string(hash)
	}
	if len(update) == 0 {
		return nil, fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}

	if err := s.Repo.UpdateSetDocument(target.ID, update); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return s.Repo.GetByIDWithProjection(target.ID, profileProjection)
}

// DeleteUser removes an account and cascades to its appointments. The default
// admin cannot be deleted, and only the default admin may delete admins.
func (s *DefaultUserService) DeleteUser(actor *models.User, targetID string) error {
	if actor == nil || !actor.IsAdmin() {
		return ErrForbidden
	}
	target, err := s.Repo.GetByIDWithProjection(targetID, nil)
	if err != nil {
		return fmt.Errorf("failed to load user: %w", err)
	}
	if target == nil {
		return ErrNotFound
	}
	if target.IsDefaultAdmin {
		return ErrForbidden
	}
	if target.IsAdmin() && !actor.IsDefaultAdmin {
		return ErrForbidden
	}

	if err := s.Repo.Delete(target.ID); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if err := s.Appointments.DeleteByUser(target.ID); err != nil {
		utils.GetLogger().Error("Failed to cascade appointment delete",
			zap.String("userID", target.ID), zap.Error(err))
		return fmt.Errorf("user deleted but appointment cleanup failed: %w", err)
	}
	utils.GetLogger().Info("Deleted user", zap.String("userID", target.ID))
	return nil
}

// GetUserStatus exposes a single user's presence to the default admin only.
func (s *DefaultUserService) GetUserStatus(actor *models.User, targetID string) (*UserStatus, error) {
	if actor == nil || !actor.IsDefaultAdmin {
		return nil, ErrForbidden
	}
	target, err := s.Repo.GetByIDWithProjection(targetID, bson.M{"id": 1})
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if target == nil {
		return nil, ErrNotFound
	}
	online := false
	if s.Presence != nil {
		online, err = s.Presence.IsOnline(target.ID)
		if err != nil {
			return nil, err
		}
	}
	return &UserStatus{UserID: target.ID, IsOnline: online}, nil
}

package user

import (
	"fmt"
	"strings"
	"time"

	"glamazon/models"
	"glamazon/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const loginTokenDuration = 7 * 24 * time.Hour
const resetTokenDuration = time.Hour

// InitiateSignup checks the email is free, stores an OTP with a TTL, and
// mails it. If delivery fails the pending OTP is removed so a stale code
// cannot be replayed.
func (s *DefaultUserService) InitiateSignup(email string) error {
	email = normalizeEmail(email)
	if email == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}

	existing, err := s.Repo.GetByEmailWithProjection(email, bson.M{"id": 1})
	if err != nil {
		return fmt.Errorf("failed to look up email: %w", err)
	}
	if existing != nil {
		return ErrEmailTaken
	}

	otp, err := utils.StoreSignupOTP(email)
	if err != nil {
		return err
	}
	if err := s.Mailer.SendOTPEmail(email, otp); err != nil {
		utils.GetLogger().Error("Failed to send signup OTP",
			zap.String("email", email), zap.Error(err))
		utils.DeleteSignupOTP(email)
		return fmt.Errorf("failed to send verification email: %w", err)
	}
	return nil
}

// VerifyOtpAndSignup consumes the OTP and creates the client account. The
// email is re-checked because another request may have registered it while
// the OTP was outstanding.
func (s *DefaultUserService) VerifyOtpAndSignup(req SignupVerification) (*AuthResult, error) {
	email := normalizeEmail(req.Email)
	if err := verifyPasswordComplexity(req.Password); err != nil {
		return nil, err
	}
	if err := utils.VerifySignupOTP(email, req.OTP); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOTP, err)
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
		Type:         models.UserTypeClient,
		Email:        email,
		Name:         req.Name,
		Phone:        req.Phone,
		PasswordHash: string(hash),
	}
	if err := s.Repo.Create(u); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := utils.GenerateToken(u.ID, u.Email, loginTokenDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return &AuthResult{Token: token, User: u}, nil
}

// Authenticate verifies credentials, stamps lastLogin, and marks the user
// online. Lookup failures and wrong passwords collapse into the same error.
func (s *DefaultUserService) Authenticate(email, password string) (*AuthResult, error) {
	email = normalizeEmail(email)
	u, err := s.Repo.GetByEmailWithProjection(email, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if u == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	now := time.Now()
	if err := s.Repo.UpdateSetDocument(u.ID, bson.M{"last_login": now}); err != nil {
		utils.GetLogger().Error("Failed to update lastLogin",
			zap.String("userID", u.ID), zap.Error(err))
	} else {
		u.LastLogin = &now
	}

	if s.Presence != nil {
		if err := s.Presence.MarkOnline(u.ID); err != nil {
			utils.GetLogger().Error("Failed to mark user online",
				zap.String("userID", u.ID), zap.Error(err))
		}
	}

	token, err := utils.GenerateToken(u.ID, u.Email, loginTokenDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return &AuthResult{Token: token, User: u}, nil
}

// ForgotPassword mails a one-hour reset link. An unknown email returns nil so
// the endpoint does not disclose which addresses are registered.
func (s *DefaultUserService) ForgotPassword(email string) error {
	email = normalizeEmail(email)
	u, err := s.Repo.GetByEmailWithProjection(email, bson.M{"id": 1, "email": 1, "name": 1})
	if err != nil {
		return fmt.Errorf("failed to look up user: %w", err)
	}
	if u == nil {
		utils.GetLogger().Info("Password reset requested for unknown email",
			zap.String("email", email))
		return nil
	}

	token, err := utils.GenerateResetToken(u.ID, resetTokenDuration)
	if err != nil {
		return fmt.Errorf("failed to issue reset token: %w", err)
	}
	if err := s.Mailer.SendPasswordResetEmail(u.Email, u.Name, token); err != nil {
		utils.GetLogger().Error("Failed to send password reset email",
			zap.String("email", u.Email), zap.Error(err))
		return fmt.Errorf("failed to send reset email: %w", err)
	}
	return nil
}

// ResetPassword validates the reset token and updates the password. The
// confirmation mail is best-effort.
func (s *DefaultUserService) ResetPassword(token, newPassword string) error {
	if err := verifyPasswordComplexity(newPassword); err != nil {
		return err
	}
	userID, err := utils.ExtractResetSubject(token)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	u, err := s.Repo.GetByIDWithProjection(userID, bson.M{"id": 1, "email": 1, "name": 1})
	if err != nil {
		return fmt.Errorf("failed to look up user: %w", err)
	}
	if u == nil {
		return ErrNotFound
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.Repo.UpdateSetDocument(u.ID, bson.M{"password_hash": string(hash)}); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	if err := s.Mailer.SendPasswordChangedEmail(u.Email, u.Name); err != nil {
		utils.GetLogger().Error("Failed to send password changed email",
			zap.String("email", u.Email), zap.Error(err))
	}
	return nil
}

// ChangePassword verifies the current password before applying the new one.
func (s *DefaultUserService) ChangePassword(userID, currentPassword, newPassword string) error {
	if err := verifyPasswordComplexity(newPassword); err != nil {
		return err
	}
	u, err := s.Repo.GetByIDWithProjection(userID, nil)
	if err != nil {
		return fmt.Errorf("failed to look up user: %w", err)
	}
	if u == nil {
		return ErrNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(currentPassword)); err != nil {
		return ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.Repo.UpdateSetDocument(u.ID, bson.M{"password_hash": string(hash)}); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	if err := s.Mailer.SendPasswordChangedEmail(u.Email, u.Name); err != nil {
		utils.GetLogger().Error("Failed to send password changed email",
			zap.String("email", u.Email), zap.Error(err))
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

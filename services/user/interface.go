package user

import (
	"unicode"

	appointmentRepo "glamazon/database/repository/appointment"
	userRepo "glamazon/database/repository/user"
	"glamazon/models"
	"glamazon/services/mailer"
	"glamazon/services/presence"
)

// SignupVerification carries the second signup step: the profile details plus
// the OTP that was mailed during initiation.
type SignupVerification struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone"`
	Password string `json:"password" binding:"required"`
	OTP      string `json:"otp" binding:"required"`
}

// ProfileUpdate is the self-service profile mutation payload.
type ProfileUpdate struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// AdminUserRequest is the admin-side create/update payload.
type AdminUserRequest struct {
	Type     string `json:"type"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// AuthResult pairs a signed JWT with the authenticated account.
type AuthResult struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// UserWithPresence decorates a user with their live presence flag for the
// admin listing.
type UserWithPresence struct {
	models.User
	IsOnline bool `json:"isOnline"`
}

// UserStatus is the default-admin view of a single user's presence.
type UserStatus struct {
	UserID   string `json:"userId"`
	IsOnline bool   `json:"isOnline"`
}

// UserService covers account lifecycle, authentication, and admin user
// management.
type UserService interface {
	InitiateSignup(email string) error
	VerifyOtpAndSignup(req SignupVerification) (*AuthResult, error)
	Authenticate(email, password string) (*AuthResult, error)
	ForgotPassword(email string) error
	ResetPassword(token, newPassword string) error
	ChangePassword(userID, currentPassword, newPassword string) error

	GetProfile(userID string) (*models.User, error)
	UpdateProfile(userID string, upd ProfileUpdate) (*models.User, error)
	Heartbeat(userID string) error

	CreateUser(actor *models.User, req AdminUserRequest) (*models.User, error)
	GetAllUsers() ([]UserWithPresence, error)
	UpdateUser(actor *models.User, targetID string, req AdminUserRequest) (*models.User, error)
	DeleteUser(actor *models.User, targetID string) error
	GetUserStatus(actor *models.User, targetID string) (*UserStatus, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo         userRepo.UserRepository
	Appointments appointmentRepo.AppointmentRepository
	Mailer       mailer.MailerService
	Presence     presence.PresenceService
}

func NewDefaultUserService(
	repo userRepo.UserRepository,
	appts appointmentRepo.AppointmentRepository,
	m mailer.MailerService,
	p presence.PresenceService,
) *DefaultUserService {
	return &DefaultUserService{Repo: repo, Appointments: appts, Mailer: m, Presence: p}
}

// verifyPasswordComplexity enforces the minimum password policy.
func verifyPasswordComplexity(password string) error {
	if len(password) < 8 {
		return ErrWeakPassword
	}
	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasLetter || !hasDigit {
		return ErrWeakPassword
	}
	return nil
}

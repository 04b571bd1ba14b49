package handlers

import (
	"net/http"

	"glamazon/middleware"
	"glamazon/models"
	"glamazon/services/appointment"
	"glamazon/services/dashboard"
	"glamazon/services/user"
	"glamazon/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler wires the account endpoints to their services.
type UserHandler struct {
	Users        user.UserService
	Appointments appointment.AppointmentService
	Dashboard    dashboard.DashboardService
}

func NewUserHandler(
	users user.UserService,
	appts appointment.AppointmentService,
	dash dashboard.DashboardService,
) *UserHandler {
	return &UserHandler{Users: users, Appointments: appts, Dashboard: dash}
}

// InitiateSignupHandler handles POST /api/users/initiate-signup.
func (h *UserHandler) InitiateSignupHandler(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Users.InitiateSignup(req.Email); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Verification code sent"})
}

// VerifyOTPSignupHandler handles POST /api/users/verify-otp-signup.
func (h *UserHandler) VerifyOTPSignupHandler(c *gin.Context) {
	var req user.SignupVerification
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	result, err := h.Users.VerifyOtpAndSignup(req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// LoginHandler handles POST /api/users/login.
func (h *UserHandler) LoginHandler(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	result, err := h.Users.Authenticate(req.Email, req.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// ForgotPasswordHandler handles POST /api/users/forgot-password. The response
// is the same whether or not the email is registered.
func (h *UserHandler) ForgotPasswordHandler(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Users.ForgotPassword(req.Email); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "If the email is registered, a reset link has been sent"})
}

// ResetPasswordHandler handles POST /api/users/reset-password.
func (h *UserHandler) ResetPasswordHandler(c *gin.Context) {
	var req struct {
		Token       string `json:"token" binding:"required"`
		NewPassword string `json:"newPassword" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Users.ResetPassword(req.Token, req.NewPassword); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password has been reset"})
}

// ChangePasswordHandler handles POST /api/users/change-password.
func (h *UserHandler) ChangePasswordHandler(c *gin.Context) {
	userID := c.GetString("userID")
	var req struct {
		CurrentPassword string `json:"currentPassword" binding:"required"`
		NewPassword     string `json:"newPassword" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Users.ChangePassword(userID, req.CurrentPassword, req.NewPassword); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password changed"})
}

// GetProfileHandler handles GET /api/users/profile.
func (h *UserHandler) GetProfileHandler(c *gin.Context) {
	usr, err := h.Users.GetProfile(c.GetString("userID"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, usr)
}

// UpdateProfileHandler handles PUT /api/users/profile.
func (h *UserHandler) UpdateProfileHandler(c *gin.Context) {
	var req user.ProfileUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	usr, err := h.Users.UpdateProfile(c.GetString("userID"), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, usr)
}

// StatsHandler handles GET /api/users/stats, the caller's appointment counters.
func (h *UserHandler) StatsHandler(c *gin.Context) {
	stats, err := h.Appointments.UserStats(c.GetString("userID"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// HeartbeatHandler handles POST /api/users/heartbeat.
func (h *UserHandler) HeartbeatHandler(c *gin.Context) {
	userID := c.GetString("userID")
	if err := h.Users.Heartbeat(userID); err != nil {
		utils.GetLogger().Error("Heartbeat failed",
			zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record heartbeat"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"online": true})
}

// currentUser pulls the authenticated account off the context.
func currentUser(c *gin.Context) *models.User {
	return middleware.CurrentUser(c)
}

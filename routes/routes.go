package routes

import (
	"net/http"
	"time"

	"glamazon/handlers"
	"glamazon/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers account and admin user-management endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/initiate-signup", hb.UserHandler.InitiateSignupHandler)
		api.POST("/verify-otp-signup", hb.UserHandler.VerifyOTPSignupHandler)
		api.POST("/login", hb.UserHandler.LoginHandler)
		api.POST("/forgot-password", hb.UserHandler.ForgotPasswordHandler)
		api.POST("/reset-password", hb.UserHandler.ResetPasswordHandler)

		// Protected routes (require authentication).
		auth := api.Group("")
		auth.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		auth.GET("/profile", hb.UserHandler.GetProfileHandler)
		auth.PUT("/profile", hb.UserHandler.UpdateProfileHandler)
		auth.GET("/stats", hb.UserHandler.StatsHandler)
		auth.POST("/change-password", hb.UserHandler.ChangePasswordHandler)
		auth.POST("/heartbeat", hb.UserHandler.HeartbeatHandler)

		// Admin user management.
		admin := auth.Group("")
		admin.Use(middleware.AdminOnly())
		admin.GET("/all", hb.UserHandler.GetAllUsersHandler)
		admin.POST("/create", hb.UserHandler.CreateUserHandler)
		admin.PUT("/:userId", hb.UserHandler.UpdateUserHandler)
		admin.DELETE("/:userId", hb.UserHandler.DeleteUserHandler)
		admin.GET("/dashboard-stats", hb.UserHandler.UserDashboardStatsHandler)
		admin.GET("/status/:userId", middleware.DefaultAdminOnly(), hb.UserHandler.GetUserStatusHandler)
	}
}

// RegisterAppointmentRoutes registers booking endpoints.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/appointments")
	{
		// Availability is public so prospective clients can browse slots.
		api.GET("/available-slots", hb.AppointmentHandler.AvailableSlotsHandler)

		auth := api.Group("")
		auth.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		auth.POST("/book", hb.AppointmentHandler.BookHandler)
		auth.GET("", hb.AppointmentHandler.ListHandler)

		admin := auth.Group("/admin")
		admin.Use(middleware.AdminOnly())
		admin.GET("", hb.AppointmentHandler.AdminListHandler)
		admin.PATCH("/:id/status", hb.AppointmentHandler.UpdateStatusHandler)
	}
}

// RegisterDashboardRoutes registers the admin dashboard endpoints.
func RegisterDashboardRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/dashboard")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo), middleware.AdminOnly())
		api.GET("/stats", hb.DashboardHandler.StatsHandler)
		api.GET("/data-hash", hb.DashboardHandler.DataHashHandler)
		api.GET("/real-time-updates", hb.DashboardHandler.RealTimeUpdatesHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Glamazon API"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterUserRoutes(r, hb)
	RegisterAppointmentRoutes(r, hb)
	RegisterDashboardRoutes(r, hb)
	RegisterHealthRoute(r)
}

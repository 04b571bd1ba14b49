package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"glamazon/config"
	"glamazon/database"
	appointmentRepoPkg "glamazon/database/repository/appointment"
	userRepoPkg "glamazon/database/repository/user"
	"glamazon/handlers"
	"glamazon/routes"
	"glamazon/services/appointment"
	"glamazon/services/dashboard"
	"glamazon/services/mailer"
	"glamazon/services/notification"
	"glamazon/services/presence"
	"glamazon/services/user"
	"glamazon/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	apptRepo := appointmentRepoPkg.NewMongoAppointmentRepo()

	database.EnsureDefaultAdmin(userRepo)

	// services.
	mailerService := mailer.NewSMTPMailer()
	presenceService := presence.NewRedisPresenceService()
	notificationService := notification.NewAsynqNotificationService()
	defer notificationService.Close()

	appointmentService := &appointment.DefaultAppointmentService{
		Repo:     apptRepo,
		Notifier: notificationService,
		Hours:    appointment.HoursFromConfig(),
		Location: config.BusinessLocation(),
	}

	userService := user.NewDefaultUserService(userRepo, apptRepo, mailerService, presenceService)
	dashboardService := dashboard.NewDefaultDashboardService(userRepo, apptRepo, presenceService)

	// Background worker delivering queued notifications.
	worker := notification.NewWorker(userRepo, mailerService)
	worker.Start()
	defer worker.Shutdown()

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo:           userRepo,
		UserHandler:        handlers.NewUserHandler(userService, appointmentService, dashboardService),
		AppointmentHandler: handlers.NewAppointmentHandler(appointmentService),
		DashboardHandler:   handlers.NewDashboardHandler(dashboardService),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}

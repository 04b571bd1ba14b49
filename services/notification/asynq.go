package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"glamazon/config"
	userRepo "glamazon/database/repository/user"
	"glamazon/models"
	"glamazon/services/mailer"
	"glamazon/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// RedisOpt builds the asynq redis connection from the application config.
func RedisOpt() asynq.RedisClientOpt {
	cfg := config.AppConfig
	return asynq.RedisClientOpt{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisCacheDB,
	}
}

// AsynqNotificationService enqueues notification tasks for background delivery.
type AsynqNotificationService struct {
	client *asynq.Client
}

func NewAsynqNotificationService() *AsynqNotificationService {
	return &AsynqNotificationService{client: asynq.NewClient(RedisOpt())}
}

func (s *AsynqNotificationService) EnqueueBookingConfirmation(appt *models.Appointment) error {
	task, err := NewBookingConfirmationTask(appt)
	if err != nil {
		return err
	}
	info, err := s.client.Enqueue(task,
		asynq.MaxRetry(3),
		asynq.Timeout(30*time.Second),
	)
	if err != nil {
		return fmt.Errorf("failed to enqueue booking confirmation: %w", err)
	}
	utils.GetLogger().Info("Enqueued booking confirmation",
		zap.String("taskID", info.ID), zap.String("appointmentID", appt.ID))
	return nil
}

func (s *AsynqNotificationService) Close() error {
	return s.client.Close()
}

// Worker consumes notification tasks and delivers the mail.
type Worker struct {
	server *asynq.Server
	users  userRepo.UserRepository
	mailer mailer.MailerService
}

func NewWorker(users userRepo.UserRepository, m mailer.MailerService) *Worker {
	srv := asynq.NewServer(RedisOpt(), asynq.Config{
		Concurrency: 5,
	})
	return &Worker{server: srv, users: users, mailer: m}
}

// Start runs the worker loop in a goroutine. Errors are logged, never fatal;
// the HTTP server stays up even if the queue backend is unreachable.
func (w *Worker) Start() {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskTypeBookingConfirmation, w.handleBookingConfirmation)
	go func() {
		if err := w.server.Run(mux); err != nil {
			utils.GetLogger().Error("Notification worker stopped", zap.Error(err))
		}
	}()
}

func (w *Worker) Shutdown() {
	w.server.Shutdown()
}

func (w *Worker) handleBookingConfirmation(ctx context.Context, t *asynq.Task) error {
	var payload BookingConfirmationPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("invalid booking confirmation payload: %w", err)
	}
	appt := payload.Appointment

	user, err := w.users.GetByIDWithProjection(appt.UserID, nil)
	if err != nil {
		return fmt.Errorf("failed to load user %s: %w", appt.UserID, err)
	}
	if user == nil {
		// Owner deleted between booking and delivery; nothing to send.
		utils.GetLogger().Warn("Booking confirmation skipped, user not found",
			zap.String("userID", appt.UserID), zap.String("appointmentID", appt.ID))
		return nil
	}

	if err := w.mailer.SendBookingConfirmationEmail(user.Email, user.Name, &appt); err != nil {
		return fmt.Errorf("failed to send booking confirmation: %w", err)
	}
	utils.GetLogger().Info("Sent booking confirmation",
		zap.String("appointmentID", appt.ID), zap.String("email", user.Email))
	return nil
}

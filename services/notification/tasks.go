package notification

import (
	"encoding/json"
	"fmt"

	"glamazon/models"

	"github.com/hibiken/asynq"
)

const TaskTypeBookingConfirmation = "notification:booking_confirmation"

// BookingConfirmationPayload is the queued task body for a confirmation email.
type BookingConfirmationPayload struct {
	Appointment models.Appointment `json:"appointment"`
}

// NewBookingConfirmationTask marshals the appointment into an asynq task.
func NewBookingConfirmationTask(appt *models.Appointment) (*asynq.Task, error) {
	payload, err := json.Marshal(BookingConfirmationPayload{Appointment: *appt})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal booking confirmation payload: %w", err)
	}
	return asynq.NewTask(TaskTypeBookingConfirmation, payload), nil
}

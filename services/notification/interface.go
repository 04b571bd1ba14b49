package notification

import "glamazon/models"

// NotificationService delivers post-booking notifications. Delivery is
// best-effort: a failed or slow notification must never fail the booking that
// triggered it.
type NotificationService interface {
	EnqueueBookingConfirmation(appt *models.Appointment) error
}

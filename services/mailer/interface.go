package mailer

import "glamazon/models"

// MailerService sends transactional mail to salon clients.
type MailerService interface {
	SendOTPEmail(to, otp string) error
	SendPasswordResetEmail(to, name, resetToken string) error
	SendPasswordChangedEmail(to, name string) error
	SendBookingConfirmationEmail(to, name string, appt *models.Appointment) error
}

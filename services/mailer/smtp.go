package mailer

import (
	"fmt"
	"net/smtp"
	"net/url"

	"glamazon/config"
	"glamazon/models"
)

const htmlMessageFormat = "To: %s\r\n" +
	"From: \"Glamazon Salon\" <%s>\r\n" +
	"Subject: %s\r\n" +
	"MIME-Version: 1.0\r\n" +
	"Content-Type: text/html; charset=\"UTF-8\"\r\n" +
	"\r\n%s\r\n"

// SMTPMailer implements MailerService over plain SMTP with auth.
type SMTPMailer struct {
	host   string
	port   int
	sender string
	auth   smtp.Auth
}

// NewSMTPMailer builds a mailer from the application configuration.
func NewSMTPMailer() *SMTPMailer {
	cfg := config.AppConfig
	sender := cfg.MailSender
	if sender == "" {
		sender = cfg.SMTPUser
	}
	return &SMTPMailer{
		host:   cfg.SMTPHost,
		port:   cfg.SMTPPort,
		sender: sender,
		auth:   smtp.PlainAuth("", cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPHost),
	}
}

func (m *SMTPMailer) send(to, subject, htmlBody string) error {
	if m.sender == "" {
		return fmt.Errorf("mail sender not configured, check SMTP_USER / MAIL_SENDER")
	}
	addr := fmt.Sprintf("%s:%d", m.host, m.port)
	msg := []byte(fmt.Sprintf(htmlMessageFormat, to, m.sender, subject, htmlBody))
	if err := smtp.SendMail(addr, m.auth, m.sender, []string{to}, msg); err != nil {
		return fmt.Errorf("failed to send mail via %s: %w", m.host, err)
	}
	return nil
}

// SendOTPEmail delivers the signup verification code.
func (m *SMTPMailer) SendOTPEmail(to, otp string) error {
	subject := "Email Verification OTP - Glamazon Salon"
	body := fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h1 style="color: #333; text-align: center;">Email Verification</h1>
  <div style="background-color: #f8f8f8; padding: 20px; border-radius: 5px;">
    <p style="font-size: 16px;">Your OTP for email verification is:</p>
    <h2 style="color: #4CAF50; text-align: center; font-size: 32px; letter-spacing: 5px;">%s</h2>
    <p style="color: #666;">This OTP will expire in %d minutes.</p>
    <p style="color: #666;">If you didn't request this verification, please ignore this email.</p>
  </div>
  <p style="text-align: center; margin-top: 20px; color: #888;">This is an automated message from Glamazon Salon. Please do not reply.</p>
</div>`, otp, config.AppConfig.OTPTTLMinutes)
	return m.send(to, subject, body)
}

// SendPasswordResetEmail delivers a reset link carrying the reset token.
func (m *SMTPMailer) SendPasswordResetEmail(to, name, resetToken string) error {
	resetLink := fmt.Sprintf("%s/reset-password?token=%s",
		config.AppConfig.FrontendBaseURL, url.QueryEscape(resetToken))
	subject := "Password Reset Request - Glamazon Salon"
	body := fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h1 style="color: #333; text-align: center;">Password Reset Request</h1>
  <div style="background-color: #f8f8f8; padding: 20px; border-radius: 5px;">
    <p style="font-size: 16px;">Dear %s,</p>
    <p style="font-size: 16px;">We received a request to reset your password. Click the button below to create a new password:</p>
    <div style="text-align: center; margin: 30px 0;">
      <a href="%s" style="background-color: #7B1FA2; color: white; padding: 12px 24px; text-decoration: none; border-radius: 4px; display: inline-block;">Reset Password</a>
    </div>
    <p style="font-size: 16px;">This link will expire in 1 hour for security reasons.</p>
    <p style="font-size: 16px;">If you didn't request this password reset, please ignore this email.</p>
  </div>
  <p style="text-align: center; margin-top: 20px; color: #888;">This is an automated message from Glamazon Salon. Please do not reply.</p>
</div>`, name, resetLink)
	return m.send(to, subject, body)
}

// SendPasswordChangedEmail confirms a successful password change.
func (m *SMTPMailer) SendPasswordChangedEmail(to, name string) error {
	subject := "Password Changed - Glamazon Salon"
	body := fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h1 style="color: #333; text-align: center;">Password Changed Successfully</h1>
  <div style="background-color: #f8f8f8; padding: 20px; border-radius: 5px;">
    <p style="font-size: 16px;">Dear %s,</p>
    <p style="font-size: 16px;">Your password has been successfully changed.</p>
    <p style="font-size: 16px;">If you did not make this change, please contact us immediately.</p>
  </div>
  <p style="text-align: center; margin-top: 20px; color: #888;">This is an automated message from Glamazon Salon. Please do not reply.</p>
</div>`, name)
	return m.send(to, subject, body)
}

// SendBookingConfirmationEmail confirms a new appointment.
func (m *SMTPMailer) SendBookingConfirmationEmail(to, name string, appt *models.Appointment) error {
	subject := "Appointment Confirmed - Glamazon Salon"
	body := fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h1 style="color: #333; text-align: center;">Appointment Confirmed</h1>
  <div style="background-color: #f8f8f8; padding: 20px; border-radius: 5px;">
    <p style="font-size: 16px;">Dear %s,</p>
    <p style="font-size: 16px;">Your appointment has been booked:</p>
    <ul style="font-size: 16px;">
      <li>Service: %s</li>
      <li>Date: %s</li>
      <li>Time: %s</li>
      <li>Price: %.2f</li>
    </ul>
    <p style="font-size: 16px;">We look forward to seeing you.</p>
  </div>
  <p style="text-align: center; margin-top: 20px; color: #888;">This is an automated message from Glamazon Salon. Please do not reply.</p>
</div>`, name, appt.Service.Name, appt.Date, appt.Time, appt.Service.Price)
	return m.send(to, subject, body)
}

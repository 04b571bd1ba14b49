package appointment

import (
	"time"

	appointmentRepo "glamazon/database/repository/appointment"
	"glamazon/models"
	"glamazon/services/notification"
)

// BookingRequest is the payload for creating an appointment. Required-field
// constraints live here, on the structure, not ad hoc in handlers.
type BookingRequest struct {
	Date      string           `json:"date" binding:"required"`
	Time      string           `json:"time" binding:"required"`
	Service   models.Service   `json:"service" binding:"required"`
	Hairstyle models.Hairstyle `json:"hairstyle"`
}

// AvailabilityResult echoes the query and lists bookable start times in
// ascending order.
type AvailabilityResult struct {
	Date            string   `json:"date"`
	ServiceDuration int      `json:"serviceDuration"`
	AvailableSlots  []string `json:"availableSlots"`
}

// UserStats are the per-user appointment counters shown on the client dashboard.
type UserStats struct {
	TotalAppointments     int64 `json:"totalAppointments"`
	UpcomingAppointments  int64 `json:"upcomingAppointments"`
	CompletedAppointments int64 `json:"completedAppointments"`
	CancelledAppointments int64 `json:"cancelledAppointments"`
}

// AppointmentService is the booking engine surface used by the HTTP handlers.
type AppointmentService interface {
	GetAvailableSlots(date string, serviceDuration int) (*AvailabilityResult, error)
	Book(userID string, req BookingRequest) (*models.Appointment, error)
	ListForUser(userID string) ([]models.Appointment, error)
	ListAdmin(filter appointmentRepo.AdminFilter) ([]models.AdminAppointment, int64, error)
	UpdateStatus(id, status string) (*models.Appointment, error)
	UserStats(userID string) (*UserStats, error)
}

// DefaultAppointmentService is the production implementation.
type DefaultAppointmentService struct {
	Repo     appointmentRepo.AppointmentRepository
	Notifier notification.NotificationService
	Hours    BusinessHours
	Location *time.Location

	// Clock is injectable for tests; nil means the wall clock.
	Clock func() time.Time
}

// now returns the current instant pinned to the business time zone.
func (s *DefaultAppointmentService) now() time.Time {
	loc := s.Location
	if loc == nil {
		loc = time.Local
	}
	if s.Clock != nil {
		return s.Clock().In(loc)
	}
	return time.Now().In(loc)
}

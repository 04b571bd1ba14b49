package appointmentRepo

import (
	"errors"
	"time"

	"glamazon/models"
)

// ErrDuplicateSlot is returned by Create when the storage-level uniqueness
// guard rejects a second active appointment for the same date and time.
var ErrDuplicateSlot = errors.New("an active appointment already exists for this slot")

// AdminFilter narrows the admin appointment listing.
type AdminFilter struct {
	Status string // empty means any status
	Date   string // "YYYY-MM-DD", empty means any date
	Page   int64
	Limit  int64
}

// AppointmentRepository defines persistence operations for appointments.
type AppointmentRepository interface {
	Create(appt *models.Appointment) error
	GetByID(id string) (*models.Appointment, error)
	UpdateStatus(id, status string) error
	DeleteByUser(userID string) error

	// GetActiveByDate returns every non-cancelled appointment on the given
	// calendar date. This is the booked-appointment snapshot the availability
	// engine and the write-path guard both run against.
	GetActiveByDate(date string) ([]models.Appointment, error)

	ListByUser(userID string) ([]models.Appointment, error)
	ListAdmin(filter AdminFilter) ([]models.AdminAppointment, int64, error)

	CountAll() (int64, error)
	CountByStatus(status string) (int64, error)
	CountByDate(date string) (int64, error)
	CountUpcoming(fromDate string) (int64, error)
	CountByUser(userID string) (int64, error)
	CountByUserAndStatus(userID, status string) (int64, error)
	CountUpcomingByUser(userID, fromDate string) (int64, error)
	CountUpdatedAfter(t time.Time) (int64, error)
	LatestUpdatedAt() (time.Time, error)
}

package models

import "time"

// Appointment status values. An appointment starts out approved and is moved
// to completed or cancelled by admin operations; only non-cancelled
// appointments occupy the calendar.
const (
	AppointmentStatusApproved  = "approved"
	AppointmentStatusCompleted = "completed"
	AppointmentStatusCancelled = "cancelled"
)

// DateFormat is the calendar-day layout used across the booking API.
const DateFormat = "2006-01-02"

// Service describes the salon service attached to an appointment.
type Service struct {
	Name     string  `bson:"name" json:"name" binding:"required"`
	Price    float64 `bson:"price" json:"price" binding:"required"`
	Duration int     `bson:"duration" json:"duration" binding:"required,gt=0"` // minutes
}

// Hairstyle is an optional style reference picked by the client.
type Hairstyle struct {
	Name  string `bson:"name,omitempty" json:"name,omitempty"`
	Image string `bson:"image,omitempty" json:"image,omitempty"`
}

// Appointment represents a booked salon appointment.
type Appointment struct {
	ID        string    `bson:"id" json:"id"`
	UserID    string    `bson:"user_id" json:"userId"`
	Date      string    `bson:"date" json:"date"` // "YYYY-MM-DD" in business time
	Time      string    `bson:"time" json:"time"` // "HH:MM", 24-hour
	Service   Service   `bson:"service" json:"service"`
	Hairstyle Hairstyle `bson:"hairstyle,omitempty" json:"hairstyle,omitempty"`
	Status    string    `bson:"status" json:"status"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// Occupies reports whether the appointment blocks calendar time.
func (a *Appointment) Occupies() bool {
	return a.Status != AppointmentStatusCancelled
}

// AdminAppointment is an appointment embedded with its owner, as returned by
// the admin listing.
type AdminAppointment struct {
	Appointment `bson:",inline"`
	User        *User `bson:"user,omitempty" json:"user,omitempty"`
}

package appointment

import "errors"

var (
	// ErrInvalidInput is returned for missing or malformed date, time, or
	// duration values.
	ErrInvalidInput = errors.New("invalid input")

	// ErrPastDate is returned when the requested date precedes today's
	// business day.
	ErrPastDate = errors.New("cannot book appointments in the past")

	// ErrSlotTaken is returned when a booking conflicts with an existing
	// non-cancelled appointment.
	ErrSlotTaken = errors.New("this slot is already booked")

	// ErrNotFound is returned when the referenced appointment does not exist.
	ErrNotFound = errors.New("appointment not found")

	// ErrInvalidTransition is returned for status changes the appointment
	// state machine does not allow.
	ErrInvalidTransition = errors.New("invalid appointment status transition")
)

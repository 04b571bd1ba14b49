package appointment

import (
	"errors"
	"fmt"
	"time"

	appointmentRepo "glamazon/database/repository/appointment"
	"glamazon/models"
	"glamazon/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// GetAvailableSlots fetches the booked snapshot for the date and runs the
// availability engine over it.
func (s *DefaultAppointmentService) GetAvailableSlots(date string, serviceDuration int) (*AvailabilityResult, error) {
	if date == "" || serviceDuration <= 0 {
		return nil, fmt.Errorf("%w: date and service duration are required", ErrInvalidInput)
	}

	booked, err := s.Repo.GetActiveByDate(date)
	if err != nil {
		utils.GetLogger().Error("GetAvailableSlots: failed to fetch booked appointments",
			zap.String("date", date), zap.Error(err))
		return nil, fmt.Errorf("failed to load appointments for %s: %w", date, err)
	}

	slots, err := AvailableSlots(s.Hours, date, serviceDuration, BookedIntervals(booked), s.now())
	if err != nil {
		return nil, err
	}

	out := make([]string, len(slots))
	for i, slot := range slots {
		out[i] = slot.String()
	}
	return &AvailabilityResult{
		Date:            date,
		ServiceDuration: serviceDuration,
		AvailableSlots:  out,
	}, nil
}

// Book validates the request, runs the duplicate-slot guard against the
// current booked snapshot, and persists the appointment with status approved.
// The guard checks full interval overlap, not just an exact start-time match,
// so a booking with a longer duration cannot slip past an existing one.
//
// The read-check-write sequence is still racy across concurrent bookings; the
// unique (date, time) index on active appointments is the final arbiter and
// surfaces as ErrSlotTaken from Create.
func (s *DefaultAppointmentService) Book(userID string, req BookingRequest) (*models.Appointment, error) {
	start, err := ParseTimeOfDay(req.Time)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if req.Service.Duration <= 0 {
		return nil, fmt.Errorf("%w: service duration must be positive", ErrInvalidInput)
	}
	now := s.now()
	day, err := time.ParseInLocation(models.DateFormat, req.Date, now.Location())
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", ErrInvalidInput, req.Date)
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if day.Before(today) {
		return nil, ErrPastDate
	}

	booked, err := s.Repo.GetActiveByDate(req.Date)
	if err != nil {
		utils.GetLogger().Error("Book: failed to fetch booked appointments",
			zap.String("date", req.Date), zap.Error(err))
		return nil, fmt.Errorf("failed to load appointments for %s: %w", req.Date, err)
	}

	candidate := SlotInterval{Start: start, Duration: req.Service.Duration}
	if !IsAvailable(candidate, BookedIntervals(booked)) {
		return nil, ErrSlotTaken
	}

	appt := &models.Appointment{
		ID:        uuid.New().String(),
		UserID:    userID,
		Date:      req.Date,
		Time:      start.String(),
		Service:   req.Service,
		Hairstyle: req.Hairstyle,
		Status:    models.AppointmentStatusApproved,
	}

	if err := s.Repo.Create(appt); err != nil {
		if errors.Is(err, appointmentRepo.ErrDuplicateSlot) {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	// Confirmation delivery is best-effort; the booking stands regardless.
	if s.Notifier != nil {
		if err := s.Notifier.EnqueueBookingConfirmation(appt); err != nil {
			utils.GetLogger().Error("Book: failed to enqueue confirmation notification",
				zap.String("appointmentID", appt.ID), zap.Error(err))
		}
	}

	return appt, nil
}

// ListForUser returns the caller's appointments sorted by date then time.
func (s *DefaultAppointmentService) ListForUser(userID string) ([]models.Appointment, error) {
	return s.Repo.ListByUser(userID)
}

// ListAdmin returns a filtered, paginated appointment page with owners embedded.
func (s *DefaultAppointmentService) ListAdmin(filter appointmentRepo.AdminFilter) ([]models.AdminAppointment, int64, error) {
	return s.Repo.ListAdmin(filter)
}

// UpdateStatus applies an admin status transition. Only approved appointments
// may move, and only to completed or cancelled; both are terminal.
func (s *DefaultAppointmentService) UpdateStatus(id, status string) (*models.Appointment, error) {
	if status != models.AppointmentStatusCompleted && status != models.AppointmentStatusCancelled {
		return nil, fmt.Errorf("%w: cannot move an appointment to %q", ErrInvalidTransition, status)
	}

	appt, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if appt == nil {
		return nil, ErrNotFound
	}
	if appt.Status != models.AppointmentStatusApproved {
		return nil, fmt.Errorf("%w: appointment is already %s", ErrInvalidTransition, appt.Status)
	}

	if err := s.Repo.UpdateStatus(id, status); err != nil {
		return nil, err
	}
	appt.Status = status
	return appt, nil
}

// UserStats aggregates a user's appointment counters.
func (s *DefaultAppointmentService) UserStats(userID string) (*UserStats, error) {
	today := s.now().Format(models.DateFormat)

	total, err := s.Repo.CountByUser(userID)
	if err != nil {
		return nil, err
	}
	upcoming, err := s.Repo.CountUpcomingByUser(userID, today)
	if err != nil {
		return nil, err
	}
	completed, err := s.Repo.CountByUserAndStatus(userID, models.AppointmentStatusCompleted)
	if err != nil {
		return nil, err
	}
	cancelled, err := s.Repo.CountByUserAndStatus(userID, models.AppointmentStatusCancelled)
	if err != nil {
		return nil, err
	}

	return &UserStats{
		TotalAppointments:     total,
		UpcomingAppointments:  upcoming,
		CompletedAppointments: completed,
		CancelledAppointments: cancelled,
	}, nil
}

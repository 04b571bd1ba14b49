package appointment

import (
	"fmt"
	"time"

	"glamazon/config"
	"glamazon/models"
)

// BusinessHours parameterizes the slot engine. Values come from configuration;
// nothing in the algorithm assumes particular opening times.
type BusinessHours struct {
	Open        TimeOfDay
	Close       TimeOfDay
	Interval    int // slot step in minutes
	LeadMinutes int // same-day minimum notice before a slot may start
}

// HoursFromConfig builds the business-hours policy from the loaded
// configuration, falling back to an 11:00-22:00 day in 30-minute steps when
// values are missing or malformed.
func HoursFromConfig() BusinessHours {
	cfg := config.AppConfig
	open, err := ParseTimeOfDay(cfg.SalonOpenTime)
	if err != nil {
		open = TimeOfDay{Hour: 11}
	}
	closeAt, err := ParseTimeOfDay(cfg.SalonCloseTime)
	if err != nil {
		closeAt = TimeOfDay{Hour: 22}
	}
	interval := cfg.SlotIntervalMinutes
	if interval <= 0 {
		interval = 30
	}
	lead := cfg.BookingLeadMinutes
	if lead < 0 {
		lead = 30
	}
	return BusinessHours{Open: open, Close: closeAt, Interval: interval, LeadMinutes: lead}
}

// AvailableSlots computes the bookable start times for one calendar date and
// one requested service duration, given the booked-appointment snapshot for
// that date. It is a pure function of its inputs; `now` must already be in
// business time.
//
// An empty result is a valid answer, not an error.
func AvailableSlots(hours BusinessHours, date string, durationMinutes int, booked []SlotInterval, now time.Time) ([]TimeOfDay, error) {
	if date == "" || durationMinutes <= 0 {
		return nil, fmt.Errorf("%w: date and service duration are required", ErrInvalidInput)
	}
	day, err := time.ParseInLocation(models.DateFormat, date, now.Location())
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", ErrInvalidInput, date)
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if day.Before(today) {
		return nil, ErrPastDate
	}

	candidates := GenerateSlots(hours.Open, hours.Close, hours.Interval)

	// Same-day bookings need a lead-time buffer: nothing may start within
	// LeadMinutes of the current moment.
	if day.Equal(today) {
		earliest := now.Hour()*60 + now.Minute() + hours.LeadMinutes
		filtered := candidates[:0]
		for _, slot := range candidates {
			if slot.Minutes() >= earliest {
				filtered = append(filtered, slot)
			}
		}
		candidates = filtered
	}

	available := make([]TimeOfDay, 0, len(candidates))
	for _, slot := range candidates {
		if IsAvailable(SlotInterval{Start: slot, Duration: durationMinutes}, booked) {
			available = append(available, slot)
		}
	}
	return available, nil
}

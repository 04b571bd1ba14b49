package appointment

import "glamazon/models"

// SlotInterval is a half-open time range [Start, Start+Duration) within a
// single business day. Durations must keep the interval inside the day; there
// is no cross-midnight wraparound.
type SlotInterval struct {
	Start    TimeOfDay
	Duration int // minutes, > 0
}

// End returns the exclusive end of the interval as minutes since midnight.
func (s SlotInterval) End() int {
	return s.Start.Minutes() + s.Duration
}

// Overlaps reports whether two half-open intervals on the same calendar date
// share at least one instant. Touching endpoints do not overlap: a candidate
// that starts exactly when a booking ends is fine.
func (s SlotInterval) Overlaps(other SlotInterval) bool {
	return s.Start.Minutes() < other.End() && other.Start.Minutes() < s.End()
}

// IsAvailable reports whether the candidate interval is free of conflicts with
// every booked interval.
func IsAvailable(candidate SlotInterval, booked []SlotInterval) bool {
	for _, b := range booked {
		if candidate.Overlaps(b) {
			return false
		}
	}
	return true
}

// BookedIntervals projects appointments onto their occupied intervals.
// Cancelled appointments never block a slot, and malformed records are
// skipped rather than poisoning the whole availability computation.
func BookedIntervals(appts []models.Appointment) []SlotInterval {
	intervals := make([]SlotInterval, 0, len(appts))
	for _, a := range appts {
		if !a.Occupies() || a.Service.Duration <= 0 {
			continue
		}
		start, err := ParseTimeOfDay(a.Time)
		if err != nil {
			continue
		}
		intervals = append(intervals, SlotInterval{Start: start, Duration: a.Service.Duration})
	}
	return intervals
}

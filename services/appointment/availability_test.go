package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testHours = BusinessHours{
	Open:        TimeOfDay{11, 0},
	Close:       TimeOfDay{22, 0},
	Interval:    30,
	LeadMinutes: 30,
}

func slotStrings(slots []TimeOfDay) []string {
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = s.String()
	}
	return out
}

// A fixed "now" well before the queried date keeps the lead buffer inert.
var calmNow = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func TestAvailableSlotsEmptyCalendar(t *testing.T) {
	slots, err := AvailableSlots(testHours, "2026-03-02", 30, nil, calmNow)
	require.NoError(t, err)
	require.Len(t, slots, 22)
	assert.Equal(t, "11:00", slots[0].String())
	assert.Equal(t, "21:30", slots[21].String())
}

func TestAvailableSlotsBlocksOverlappedStarts(t *testing.T) {
	booked := []SlotInterval{interval("14:00", 60)}

	slots, err := AvailableSlots(testHours, "2026-03-02", 30, booked, calmNow)
	require.NoError(t, err)

	got := slotStrings(slots)
	assert.NotContains(t, got, "14:00")
	assert.NotContains(t, got, "14:30")
	assert.Contains(t, got, "13:30")
	assert.Contains(t, got, "15:00")
	assert.Len(t, got, 20)
}

func TestAvailableSlotsLongDurationBlocksEarlierStarts(t *testing.T) {
	booked := []SlotInterval{interval("14:00", 30)}

	// A 60-minute service cannot start at 13:30 because it would run into the
	// 14:00 booking.
	slots, err := AvailableSlots(testHours, "2026-03-02", 60, booked, calmNow)
	require.NoError(t, err)

	got := slotStrings(slots)
	assert.NotContains(t, got, "13:30")
	assert.NotContains(t, got, "14:00")
	assert.Contains(t, got, "13:00")
	assert.Contains(t, got, "14:30")
}

func TestAvailableSlotsSameDayLeadBuffer(t *testing.T) {
	// 20:50 same day: first allowed start is 21:20, so only 21:30 survives.
	now := time.Date(2026, 3, 2, 20, 50, 0, 0, time.UTC)

	slots, err := AvailableSlots(testHours, "2026-03-02", 30, nil, now)
	require.NoError(t, err)
	assert.Equal(t, []string{"21:30"}, slotStrings(slots))
}

func TestAvailableSlotsSameDayLateEvening(t *testing.T) {
	// 21:45 same day: 21:30 already passed, nothing is left.
	now := time.Date(2026, 3, 2, 21, 45, 0, 0, time.UTC)

	slots, err := AvailableSlots(testHours, "2026-03-02", 30, nil, now)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestAvailableSlotsPastDate(t *testing.T) {
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	_, err := AvailableSlots(testHours, "2026-03-01", 30, nil, now)
	assert.ErrorIs(t, err, ErrPastDate)
}

func TestAvailableSlotsInvalidInput(t *testing.T) {
	_, err := AvailableSlots(testHours, "", 30, nil, calmNow)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = AvailableSlots(testHours, "2026-03-02", 0, nil, calmNow)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = AvailableSlots(testHours, "03/02/2026", 30, nil, calmNow)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestAvailableSlotsIdempotent(t *testing.T) {
	booked := []SlotInterval{interval("12:00", 90), interval("18:30", 30)}

	first, err := AvailableSlots(testHours, "2026-03-02", 45, booked, calmNow)
	require.NoError(t, err)
	second, err := AvailableSlots(testHours, "2026-03-02", 45, booked, calmNow)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

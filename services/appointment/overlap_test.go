package appointment

import (
	"testing"

	"glamazon/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func interval(start string, duration int) SlotInterval {
	t, err := ParseTimeOfDay(start)
	if err != nil {
		panic(err)
	}
	return SlotInterval{Start: t, Duration: duration}
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name string
		a, b SlotInterval
		want bool
	}{
		{"identical", interval("14:00", 30), interval("14:00", 30), true},
		{"contained", interval("14:00", 60), interval("14:15", 15), true},
		{"partial", interval("14:00", 45), interval("14:30", 45), true},
		{"touching end to start", interval("14:00", 30), interval("14:30", 30), false},
		{"touching start to end", interval("14:30", 30), interval("14:00", 30), false},
		{"disjoint", interval("11:00", 30), interval("15:00", 30), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.a.Overlaps(tc.b))
			assert.Equal(t, tc.want, tc.b.Overlaps(tc.a), "overlap must be symmetric")
		})
	}
}

func TestIsAvailable(t *testing.T) {
	booked := []SlotInterval{interval("14:00", 60)}

	assert.False(t, IsAvailable(interval("14:00", 30), booked))
	assert.False(t, IsAvailable(interval("14:30", 30), booked))
	assert.False(t, IsAvailable(interval("13:30", 60), booked))
	// Boundary touches are free.
	assert.True(t, IsAvailable(interval("13:30", 30), booked))
	assert.True(t, IsAvailable(interval("15:00", 30), booked))
	// No bookings means everything is free.
	assert.True(t, IsAvailable(interval("14:00", 30), nil))
}

func TestBookedIntervalsSkipsCancelledAndMalformed(t *testing.T) {
	appts := []models.Appointment{
		{Time: "14:00", Status: models.AppointmentStatusApproved, Service: models.Service{Duration: 60}},
		{Time: "16:00", Status: models.AppointmentStatusCancelled, Service: models.Service{Duration: 60}},
		{Time: "17:00", Status: models.AppointmentStatusCompleted, Service: models.Service{Duration: 30}},
		{Time: "not-a-time", Status: models.AppointmentStatusApproved, Service: models.Service{Duration: 30}},
		{Time: "18:00", Status: models.AppointmentStatusApproved, Service: models.Service{Duration: 0}},
	}

	intervals := BookedIntervals(appts)
	require.Len(t, intervals, 2)
	assert.Equal(t, "14:00", intervals[0].Start.String())
	assert.Equal(t, "17:00", intervals[1].Start.String())
}

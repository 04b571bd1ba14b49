package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	cases := []struct {
		in      string
		want    TimeOfDay
		wantErr bool
	}{
		{in: "00:00", want: TimeOfDay{0, 0}},
		{in: "11:00", want: TimeOfDay{11, 0}},
		{in: "23:59", want: TimeOfDay{23, 59}},
		{in: "09:05", want: TimeOfDay{9, 5}},
		{in: "24:00", wantErr: true},
		{in: "7:30", wantErr: true},
		{in: "12:60", wantErr: true},
		{in: "12-30", wantErr: true},
		{in: "", wantErr: true},
		{in: "12:30:00", wantErr: true},
	}
	for _, tc := range cases {
		got, err := ParseTimeOfDay(tc.in)
		if tc.wantErr {
			assert.Error(t, err, "input %q", tc.in)
			continue
		}
		require.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.want, got)
	}
}

func TestTimeOfDayRoundTrip(t *testing.T) {
	for _, s := range []string{"00:00", "11:30", "21:05", "23:59"} {
		parsed, err := ParseTimeOfDay(s)
		require.NoError(t, err)
		assert.Equal(t, s, parsed.String())
		assert.Equal(t, parsed, TimeOfDayFromMinutes(parsed.Minutes()))
	}
}

func TestTimeOfDayBefore(t *testing.T) {
	assert.True(t, TimeOfDay{11, 0}.Before(TimeOfDay{11, 30}))
	assert.False(t, TimeOfDay{11, 30}.Before(TimeOfDay{11, 30}))
	assert.False(t, TimeOfDay{12, 0}.Before(TimeOfDay{11, 30}))
}

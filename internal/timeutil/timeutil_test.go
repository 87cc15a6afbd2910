package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClock(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"00:00", 0, true},
		{"06:00", 360, true},
		{"18:30", 1110, true},
		{"23:59", 1439, true},
		{"10:00:00", 600, true}, // SQL TIME shape
		{"24:00", 0, false},
		{"9:00", 0, false}, // not zero-padded
		{"9:00:00", 0, false},
		{"09:0", 0, false},
		{"", 0, false},
		{"later", 0, false},
	}
	for _, tc := range tests {
		got, ok := Clock(tc.in)
		assert.Equal(t, tc.ok, ok, tc.in)
		if tc.ok {
			assert.Equal(t, tc.want, got, tc.in)
		}
	}
}

func TestDateRoundTrip(t *testing.T) {
	d, err := ParseDate("2024-06-01")
	assert.NoError(t, err)
	assert.Equal(t, "2024-06-01", DateString(d))

	_, err = ParseDate("01/06/2024")
	assert.Error(t, err)
}

func TestWeekday(t *testing.T) {
	wd, ok := Weekday("2024-06-01") // Saturday
	assert.True(t, ok)
	assert.Equal(t, int(time.Saturday), wd)

	_, ok = Weekday("nope")
	assert.False(t, ok)
}

func TestMinutesToClock(t *testing.T) {
	assert.Equal(t, "06:00", MinutesToClock(360))
	assert.Equal(t, "18:30", MinutesToClock(1110))
	assert.Equal(t, "00:00", MinutesToClock(0))
}

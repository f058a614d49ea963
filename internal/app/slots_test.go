package app_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"danube_tours/internal/app"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAvailableSlots_Weekday(t *testing.T) {
	// Tuesday closes at 23:00: a 4 hour tour can start at 19:00 at the latest.
	slots := app.AvailableSlots(date(2026, time.March, 3), 4)

	assert.Equal(t, "09:00", slots[0])
	assert.Equal(t, "19:00", slots[len(slots)-1])
	assert.NotContains(t, slots, "20:00")
	assert.Len(t, slots, 11)
}

func TestAvailableSlots_Weekend(t *testing.T) {
	// Friday closes at 01:00 the next day, two more start hours open up.
	slots := app.AvailableSlots(date(2026, time.March, 6), 4)

	assert.Contains(t, slots, "20:00")
	assert.Contains(t, slots, "21:00")
	assert.NotContains(t, slots, "22:00")
}

func TestAvailableSlots_LongTourOnSunday(t *testing.T) {
	slots := app.AvailableSlots(date(2026, time.March, 8), 8)

	assert.Equal(t, "09:00", slots[0])
	assert.Equal(t, "17:00", slots[len(slots)-1])
}

func TestAvailableSlots_ZeroDurationUsesDefault(t *testing.T) {
	withDefault := app.AvailableSlots(date(2026, time.March, 3), 0)
	withFour := app.AvailableSlots(date(2026, time.March, 3), 4)
	assert.Equal(t, withFour, withDefault)
}

func TestParseDurationHours(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"4-5 hours", 5},
		{"8 hours", 8},
		{"about 3h", 3},
		{"full day", 4},
		{"", 4},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, app.ParseDurationHours(tt.in), "input %q", tt.in)
	}
}

package app

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// Bookable start hours run from 09:00 up to (excluding) midnight.
// Closing time is 23:00 Monday-Thursday and 01:00 the following day on
// Friday, Saturday and Sunday; both expressed as hours from the
// selected date's midnight.
const (
	firstStartHour = 9
	weekdayClose   = 23
	weekendClose   = 25

	defaultDurationHours = 4
)

// AvailableSlots enumerates the "HH:00" start times on date for which
// the tour still ends by closing time. Pure function of its inputs;
// the date is treated as a wall-clock calendar date.
func AvailableSlots(date time.Time, durationHours int) []string {
	if durationHours <= 0 {
		durationHours = defaultDurationHours
	}
	closing := weekdayClose
	switch date.Weekday() {
	case time.Friday, time.Saturday, time.Sunday:
		closing = weekendClose
	}
	slots := make([]string, 0, 24-firstStartHour)
	for h := firstStartHour; h < 24; h++ {
		if h+durationHours <= closing {
			slots = append(slots, fmt.Sprintf("%02d:00", h))
		}
	}
	return slots
}

var durationDigits = regexp.MustCompile(`\d+`)

// ParseDurationHours extracts the tour length from a free-text
// duration like "4-5 hours": the last embedded integer wins, so ranges
// resolve to their upper bound. Text with no number means the default.
func ParseDurationHours(s string) int {
	m := durationDigits.FindAllString(s, -1)
	if len(m) == 0 {
		return defaultDurationHours
	}
	n, err := strconv.Atoi(m[len(m)-1])
	if err != nil {
		return defaultDurationHours
	}
	return n
}

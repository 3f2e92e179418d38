package age

import "time"

// Day is the length of one countdown day.
const Day = 24 * time.Hour

const secondsPerDay = int64(Day / time.Second)

// CeilDays returns duration in whole days, rounding partial days up.
// Negative durations round toward zero, so -1.5 days is -1.
func CeilDays(duration time.Duration) int {
	days := duration / Day
	if duration%Day > 0 {
		days++
	}
	return int(days)
}

// DaysUntil returns the whole days from now until target, rounding up.
//
// The span is measured in Unix seconds rather than as a time.Duration,
// which saturates near 292 years.
func DaysUntil(target time.Time, now time.Time) int {
	secs := target.Unix() - now.Unix()
	nanos := target.Nanosecond() - now.Nanosecond()
	if nanos < 0 {
		nanos += int(time.Second)
		secs--
	}

	days := secs / secondsPerDay
	rem := secs % secondsPerDay
	if rem < 0 {
		rem += secondsPerDay
		days--
	}
	if rem > 0 || nanos > 0 {
		days++
	}
	return int(days)
}

package utils

import (
	"time"

	"invitation-studio/models"
)

// ParseEventTime combines an event date (YYYY-MM-DD) and time (HH:MM) in loc.
// A blank or unparsable time means midnight.
func ParseEventTime(date, clock string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	if clock != "" {
		if t, err := time.ParseInLocation("2006-01-02 15:04", date+" "+clock, loc); err == nil {
			return t, nil
		}
	}
	return time.ParseInLocation("2006-01-02", date, loc)
}

// TimeUntil returns the countdown from now to the event. It is zero once the event
// has started or when the date cannot be parsed.
func TimeUntil(date, clock string, now time.Time) models.Countdown {
	target, err := ParseEventTime(date, clock, now.Location())
	if err != nil {
		return models.Countdown{}
	}

	diff := target.Sub(now)
	if diff <= 0 {
		return models.Countdown{}
	}

	secs := int64(diff / time.Second)
	return models.Countdown{
		Days:    int(secs / 86400),
		Hours:   int(secs % 86400 / 3600),
		Minutes: int(secs % 3600 / 60),
		Seconds: int(secs % 60),
	}
}

package utils

import "time"

// FormatEventDate renders "2025-06-15" as "Sunday, June 15, 2025".
// Unparsable input is returned unchanged.
func FormatEventDate(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.Format("Monday, January 2, 2006")
}

// FormatEventTime renders "16:00" as "4:00 PM". Unparsable input is returned unchanged.
func FormatEventTime(clock string) string {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return clock
	}
	return t.Format("3:04 PM")
}

// Package biztime centralizes time handling. All storage and transport use
// UTC; conversion to a display timezone happens only at the presentation
// layer.
package biztime

import "time"

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// ToUTC converts a time (any timezone) to UTC.
func ToUTC(t time.Time) time.Time {
	return t.UTC()
}

// FormatDisplay formats a UTC time for user-facing pages.
func FormatDisplay(t time.Time) string {
	return t.Format("2006-01-02 15:04")
}

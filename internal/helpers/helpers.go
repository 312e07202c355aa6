package helpers

import (
	"regexp"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

var hhmmRe = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):[0-5][0-9]$`)

// StringTrim normalizes an incoming id: strips spaces and surrounding
// quotes which may occur when clients pass values as JSON strings or
// templates.
func StringTrim(s string) string {
	s = strings.TrimSpace(s)
	return strings.Trim(s, "\"'")
}

// IsHHMM reports whether s is a 24-hour HH:MM time.
func IsHHMM(s string) bool {
	return hhmmRe.MatchString(s)
}

// ParseDate parses a YYYY-MM-DD calendar date in the server's location.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(dateLayout, s, time.Local)
}

// SameDayConflict reports whether a same-day event ends at or before it
// starts. Zero-padded HH:MM strings order correctly as strings; malformed
// values are left to the per-field rules and never conflict here.
func SameDayConflict(startDate, endDate, startTime, endTime string) bool {
	if startDate != endDate {
		return false
	}
	if !IsHHMM(startTime) || !IsHHMM(endTime) {
		return false
	}
	return startTime >= endTime
}

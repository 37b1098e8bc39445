package record

import (
	"regexp"
	"time"
)

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// IsDate reports whether s is a zero-padded ISO-8601 calendar date naming
// a real day.
func IsDate(s string) bool {
	if !datePattern.MatchString(s) {
		return false
	}
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// validateWindow checks the validity window of a record before any write.
// endDate is ignored for unlimited records; otherwise it must be a date
// not before startDate. Dates are zero-padded, so string comparison is
// chronological comparison.
func validateWindow(startDate, endDate string, unlimited bool) error {
	if !IsDate(startDate) {
		return ErrInvalidDate
	}
	if unlimited {
		return nil
	}
	if !IsDate(endDate) {
		return ErrInvalidDate
	}
	if endDate < startDate {
		return ErrInvalidRange
	}
	return nil
}

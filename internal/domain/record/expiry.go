package record

import "time"

const (
	soonWindowDays = 7
	secondsPerDay  = 86400
)

// Annotation holds the derived status fields of one record for one
// reference date.
type Annotation struct {
	AgeDays   int
	DaysToEnd *int // nil for unlimited records
	Expired   bool
	Soon      bool
}

// Today renders now as the UTC calendar date.
func Today(now time.Time) string {
	return now.UTC().Format(DateLayout)
}

// DaysBetween counts whole days from a to b, both taken as UTC calendar
// dates at midnight regardless of any local time zone. Negative when b
// precedes a; DaysBetween(a, b) == -DaysBetween(b, a). Counted in Unix
// seconds rather than a time.Duration, which saturates past ~292 years.
func DaysBetween(a, b string) int {
	ta := parseDate(a)
	tb := parseDate(b)
	return int((tb.Unix() - ta.Unix()) / secondsPerDay)
}

// Annotate computes the derived status of rec as of today. Pure: no clock,
// no storage.
//
// A record is expired the instant daysToEnd reaches 0, so a same-day end
// counts as expired rather than expiring. "Soon" is the half-open band
// (0, 7] days and therefore never overlaps expired.
func Annotate(rec *Record, today string) Annotation {
	start := rec.StartDate
	if start == "" {
		start = today
	}

	ageDays := DaysBetween(start, today)
	if ageDays < 0 {
		// Future start dates read as age zero, not negative.
		ageDays = 0
	}

	if rec.Unlimited {
		return Annotation{AgeDays: ageDays}
	}

	end := today
	if rec.EndDate != nil && *rec.EndDate != "" {
		end = *rec.EndDate
	}

	daysToEnd := DaysBetween(today, end)
	expired := daysToEnd <= 0
	soon := !expired && daysToEnd <= soonWindowDays

	return Annotation{
		AgeDays:   ageDays,
		DaysToEnd: &daysToEnd,
		Expired:   expired,
		Soon:      soon,
	}
}

// annotate wraps rec with its derived fields.
func annotate(rec *Record, today string) Annotated {
	ann := Annotate(rec, today)
	return Annotated{
		Record:    *rec,
		AgeDays:   ann.AgeDays,
		DaysToEnd: ann.DaysToEnd,
		Expired:   ann.Expired,
		Soon:      ann.Soon,
	}
}

func parseDate(s string) time.Time {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		// Dates are validated before every write; an unparsable one here
		// degrades to the zero time instead of failing the whole query.
		return time.Time{}
	}
	return t
}

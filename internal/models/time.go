package models

import "time"

// DateLayout is the calendar-day format used for business dates. Its
// lexicographic order equals chronological order.
const DateLayout = "2006-01-02"

// TimestampLayout is the write-time stamp format. Milliseconds are kept at a
// fixed width so timestamps also order lexicographically; createdAt is the
// tie-break in every chronological sort.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// NowISO returns the current UTC instant in TimestampLayout.
func NowISO() string {
	return time.Now().UTC().Format(TimestampLayout)
}

// Today returns the current UTC calendar day in DateLayout.
func Today() string {
	return time.Now().UTC().Format(DateLayout)
}

// ValidateDate rejects business dates that are not well-formed calendar days.
func ValidateDate(date string) error {
	if _, err := time.Parse(DateLayout, date); err != nil {
		return Invalid("date", "must be a YYYY-MM-DD calendar day")
	}
	return nil
}


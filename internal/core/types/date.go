package types

import (
	"bytes"
	"time"

	"aktiva/internal/core/apperror"
)

// dateLayout is the on-disk calendar date format (ISO 8601, no time component).
const dateLayout = "2006-01-02"

// Date is a calendar date without a time component.
// It marshals to JSON as "YYYY-MM-DD" and is always anchored at midnight UTC,
// so day arithmetic between two Dates is exact.
type Date struct {
	time.Time
}

// NewDate creates a Date for the given calendar day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a "YYYY-MM-DD" string.
func ParseDate(s string) (Date, error) {
	t, err := time.ParseInLocation(dateLayout, s, time.UTC)
	if err != nil {
		return Date{}, apperror.NewValidation("invalid date, expected YYYY-MM-DD").
			WithDetail("value", s)
	}
	return Date{t}, nil
}

// Today returns the current calendar date in UTC.
func Today() Date {
	now := time.Now().UTC()
	return NewDate(now.Year(), now.Month(), now.Day())
}

// String returns the canonical "YYYY-MM-DD" form.
func (d Date) String() string {
	return d.Format(dateLayout)
}

// DaysSince returns the number of whole calendar days from other to d.
// Negative if d precedes other.
func (d Date) DaysSince(other Date) int {
	return int(d.Time.Sub(other.Time).Hours() / 24)
}

// Equal reports whether two Dates name the same calendar day.
func (d Date) Equal(other Date) bool {
	return d.Time.Equal(other.Time)
}

// MarshalJSON encodes the date as a quoted "YYYY-MM-DD" string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON accepts a quoted "YYYY-MM-DD" string or null.
func (d *Date) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*d = Date{}
		return nil
	}
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return apperror.NewValidation("invalid date, expected YYYY-MM-DD string").
			WithDetail("value", string(data))
	}
	parsed, err := ParseDate(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

package core

import (
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar date. The time-of-day part is always midnight UTC;
// comparisons are by year/month/day, never by 24h windows.
type Date struct {
	time.Time
}

// NewDate creates a Date from year, month, day.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates an instant to its calendar date.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), int(t.Month()), t.Day())
}

// ParseDate reads a YYYY-MM-DD string. Unparsable input yields the zero
// Date rather than an error.
func ParseDate(s string) Date {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}
	}
	return Date{Time: t}
}

// SameDay reports whether d falls on the same calendar day as t.
func (d Date) SameDay(t time.Time) bool {
	return d.Year() == t.Year() && d.Month() == t.Month() && d.Day() == t.Day()
}

// SameMonth reports whether d falls in the same calendar month and year as t.
func (d Date) SameMonth(t time.Time) bool {
	return d.Year() == t.Year() && d.Month() == t.Month()
}

// Label formats the date for chart axes, e.g. "05 Mar".
func (d Date) Label() string {
	return d.Format("02 Jan")
}

// MarshalJSON writes "YYYY-MM-DD", or an empty string for the zero Date,
// matching how unset dates are stored.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

// UnmarshalJSON reads "YYYY-MM-DD". Empty or malformed input decodes to
// the zero Date without error.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}
	*d = ParseDate(s)
	return nil
}

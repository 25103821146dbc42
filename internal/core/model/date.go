package model

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidDate indicates a malformed or non-existent calendar date key.
var ErrInvalidDate = errors.New("invalid calendar date")

// DateLayout is the canonical day-key format.
const DateLayout = "2006-01-02"

// CalendarDate is a day-granularity key in canonical local-time
// YYYY-MM-DD form. All arithmetic goes through explicit
// year/month/day fields rather than raw second math, so day
// boundaries stay correct across DST transitions.
type CalendarDate string

// ParseCalendarDate validates a day key and returns it in canonical form.
func ParseCalendarDate(s string) (CalendarDate, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.Local)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	// Reject non-canonical spellings that still parse (e.g. 2024-1-5)
	if t.Format(DateLayout) != s {
		return "", fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return CalendarDate(s), nil
}

// DateOf returns the calendar date containing t, in t's location.
func DateOf(t time.Time) CalendarDate {
	return CalendarDate(t.Format(DateLayout))
}

// AddDays offsets the date by n days using calendar arithmetic.
func (d CalendarDate) AddDays(n int) CalendarDate {
	y, m, day := d.date()
	t := time.Date(y, m, day+n, 0, 0, 0, 0, time.Local)
	return DateOf(t)
}

// StartOfDay returns midnight at the start of the date in loc.
func (d CalendarDate) StartOfDay(loc *time.Location) time.Time {
	y, m, day := d.date()
	return time.Date(y, m, day, 0, 0, 0, 0, loc)
}

// EndOfDay returns the last instant of the date in loc.
func (d CalendarDate) EndOfDay(loc *time.Location) time.Time {
	y, m, day := d.date()
	return time.Date(y, m, day, 23, 59, 59, int(time.Second-time.Nanosecond), loc)
}

// Noon returns 12:00 of the date in loc.
func (d CalendarDate) Noon(loc *time.Location) time.Time {
	y, m, day := d.date()
	return time.Date(y, m, day, 12, 0, 0, 0, loc)
}

// After reports whether d is a later calendar day than other.
// Canonical YYYY-MM-DD keys order lexicographically.
func (d CalendarDate) After(other CalendarDate) bool {
	return string(d) > string(other)
}

// Before reports whether d is an earlier calendar day than other.
func (d CalendarDate) Before(other CalendarDate) bool {
	return string(d) < string(other)
}

func (d CalendarDate) String() string {
	return string(d)
}

func (d CalendarDate) date() (int, time.Month, int) {
	t, err := time.ParseInLocation(DateLayout, string(d), time.Local)
	if err != nil {
		// Construction paths validate, so a bad key here is a programming error.
		panic(fmt.Sprintf("corrupt calendar date %q: %v", string(d), err))
	}
	return t.Date()
}

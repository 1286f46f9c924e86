package domain

import (
	"regexp"
	"time"
)

// DateLayout is the ISO calendar-date layout used on the wire and as map keys.
const DateLayout = "2006-01-02"

// CalendarDate returns midnight UTC of the calendar date t falls on in its own
// location. All dates stored or compared by the service go through this.
func CalendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DateKey formats the calendar date of t for use as a set key.
func DateKey(t time.Time) string {
	return CalendarDate(t).Format(DateLayout)
}

// emailShape is deliberately loose: something, an @, something, a dot, something.
var emailShape = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)

// ValidEmail reports whether s has the shape of an email address.
func ValidEmail(s string) bool {
	return emailShape.MatchString(s)
}

package borrow

import (
	"strings"
	"time"

	"booklibrary/internal/apperr"
)

// MaxPeriodDays is how far ahead a return date may be set.
const MaxPeriodDays = 31

const dateLayout = "2006-01-02"

var (
	ErrInvalidDate = apperr.Validation("Invalid return date")
	ErrDateInPast  = apperr.Validation("Return date must be more than today")
	ErrTooLong     = apperr.Validation("Maximum reservation period 31 days")
	ErrTaken       = apperr.Conflict("Book is already taken")
)

// Clock reports the current instant. Dates are derived from it in the
// service's location.
type Clock interface {
	Now() time.Time
}

type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

var SystemClock Clock = ClockFunc(time.Now)

func dateOf(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// ParseDueDate reads a YYYY-MM-DD date in loc.
func ParseDueDate(s string, loc *time.Location) (time.Time, error) {
	d, err := time.ParseInLocation(dateLayout, strings.TrimSpace(s), loc)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return d, nil
}

// ValidateDueDate accepts dates from today through today+MaxPeriodDays.
func ValidateDueDate(due, today time.Time) error {
	if due.Before(today) {
		return ErrDateInPast
	}
	if due.After(today.AddDate(0, 0, MaxPeriodDays)) {
		return ErrTooLong
	}
	return nil
}

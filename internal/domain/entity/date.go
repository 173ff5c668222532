package entity

import (
	"encoding/json"
	"time"

	"github.com/pkg/errors"
)

// DateLayout is the wire and storage format of calendar dates.
const DateLayout = "2006-01-02"

// Date is a calendar date without time of day, held as midnight UTC.
type Date struct {
	t time.Time
}

// NewDate returns the calendar date of t in t's own location.
func NewDate(t time.Time) Date {
	y, m, d := t.Date()

	return Date{t: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, errors.Wrapf(err, "invalid date %q", s)
	}

	return Date{t: t}, nil
}

// Time returns the date as midnight UTC.
func (d Date) Time() time.Time { return d.t }

// IsZero reports whether the date is unset.
func (d Date) IsZero() bool { return d.t.IsZero() }

// After reports whether d is a later calendar day than other.
func (d Date) After(other Date) bool { return d.t.After(other.t) }

// Before reports whether d is an earlier calendar day than other.
func (d Date) Before(other Date) bool { return d.t.Before(other.t) }

func (d Date) String() string {
	if d.t.IsZero() {
		return ""
	}

	return d.t.Format(DateLayout)
}

// MarshalJSON renders the date as "YYYY-MM-DD".
func (d Date) MarshalJSON() ([]byte, error) {
	if d.t.IsZero() {
		return []byte("null"), nil
	}

	return json.Marshal(d.String())
}

// UnmarshalJSON accepts "YYYY-MM-DD" or null.
func (d *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*d = Date{}

		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return errors.Wrap(err, "date must be a string")
	}

	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed

	return nil
}

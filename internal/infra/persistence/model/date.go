package model

import (
	"database/sql/driver"
	"time"

	"github.com/pkg/errors"
)

const dateLayout = "2006-01-02"

// Date is a DATE column. It is written as "YYYY-MM-DD" and read back from either
// a time value or a date string, depending on the driver.
type Date struct {
	time.Time
}

// NewDate wraps t as a calendar date.
func NewDate(t time.Time) Date {
	y, m, d := t.Date()

	return Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// Value implements driver.Valuer.
func (d Date) Value() (driver.Value, error) {
	return d.Format(dateLayout), nil
}

// Scan implements sql.Scanner.
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*d = NewDate(v)
	case string:
		return d.parse(v)
	case []byte:
		return d.parse(string(v))
	case nil:
		*d = Date{}
	default:
		return errors.Errorf("cannot scan %T into Date", src)
	}

	return nil
}

func (d *Date) parse(s string) error {
	if len(s) > len(dateLayout) {
		s = s[:len(dateLayout)]
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return errors.Wrapf(err, "scan date %q", s)
	}
	*d = Date{Time: t}

	return nil
}

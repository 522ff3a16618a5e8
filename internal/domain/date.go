package domain

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// dateLayout is the wire and storage format for calendar dates.
const dateLayout = "2006-01-02"

// Date is a calendar date without a time-of-day component. It marshals to
// JSON as "yyyy-mm-dd" and stores in SQL databases as a plain date string,
// so both the sqlite and postgres drivers round-trip it unchanged.
//
// The zero Date is "no date" and reports IsZero() == true.
type Date struct {
	t time.Time
}

// NewDate creates a Date for the given year, month, and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates a time.Time to its calendar date.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// Today returns the current calendar date.
func Today() Date {
	return DateOf(time.Now())
}

// ParseDate parses a "yyyy-mm-dd" string into a Date.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: expected format %s", s, dateLayout)
	}
	return DateOf(t), nil
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool { return d.t.IsZero() }

// Equal reports whether d and other are the same calendar date.
func (d Date) Equal(other Date) bool { return d.t.Equal(other.t) }

// Before reports whether d is earlier than other.
func (d Date) Before(other Date) bool { return d.t.Before(other.t) }

// After reports whether d is later than other.
func (d Date) After(other Date) bool { return d.t.After(other.t) }

// String returns the date in "yyyy-mm-dd" form.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(dateLayout)
}

// MarshalJSON implements json.Marshaler.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.t.Format(dateLayout) + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler. It accepts "yyyy-mm-dd" strings
// and JSON null (left as the zero Date).
func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" || s == `""` {
		*d = Date{}
		return nil
	}
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid date %s: expected a %q string", s, dateLayout)
	}
	parsed, err := ParseDate(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Value implements driver.Valuer so GORM stores the date as "yyyy-mm-dd".
func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.t.Format(dateLayout), nil
}

// Scan implements sql.Scanner. It accepts strings, byte slices, and
// time.Time values from the underlying driver.
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*d = Date{}
		return nil
	case string:
		return d.scanString(v)
	case []byte:
		return d.scanString(string(v))
	case time.Time:
		*d = DateOf(v)
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Date", src)
	}
}

func (d *Date) scanString(s string) error {
	if s == "" {
		*d = Date{}
		return nil
	}
	// Drivers may return a full timestamp for date columns.
	if len(s) > len(dateLayout) {
		s = s[:len(dateLayout)]
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// GormDataType tells GORM to create a date column for this type.
func (Date) GormDataType() string { return "date" }

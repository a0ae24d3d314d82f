package core

import (
	"time"

	"github.com/pkg/errors"
)

const dateLayout = "2006-01-02"

// Date is a calendar day. Time of day and zone carry no meaning;
// comparisons are by date component only and the wire format is the
// bare ISO date (e.g. "2024-03-15").
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates t to its calendar day.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

func Today() Date {
	return DateOf(time.Now())
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, errors.Wrapf(err, "parsing date %q", s)
	}
	return DateOf(t), nil
}

func (d Date) String() string {
	return d.Format(dateLayout)
}

func (d Date) Equal(o Date) bool {
	return d.Time.Equal(o.Time)
}

func (d Date) Before(o Date) bool {
	return d.Time.Before(o.Time)
}

func (d Date) After(o Date) bool {
	return d.Time.After(o.Time)
}

func (d Date) AddDays(n int) Date {
	return DateOf(d.Time.AddDate(0, 0, n))
}

// IsWorkingDay reports whether d falls on Monday through Friday.
func (d Date) IsWorkingDay() bool {
	wd := d.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return errors.Errorf("invalid date payload %s", s)
	}
	s = s[1 : len(s)-1]
	parsed, err := ParseDate(s)
	if err == nil {
		*d = parsed
		return nil
	}
	// older databases stored full timestamps
	t, tErr := time.Parse(time.RFC3339, s)
	if tErr != nil {
		return err
	}
	*d = DateOf(t)
	return nil
}

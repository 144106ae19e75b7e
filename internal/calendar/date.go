package calendar

import (
	"encoding/json"
	"fmt"
	"time"
)

// Layout is the canonical, sortable representation of a Date.
const Layout = time.DateOnly

// Date is a calendar day without a time component. It is stored as YYYY-MM-DD
// and only localised when rendered.
type Date struct {
	time.Time
}

// New returns the Date for the given year, month and day in UTC.
func New(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// From truncates t to its calendar day, keeping the day as seen in t's location.
func From(t time.Time) Date {
	return New(t.Year(), t.Month(), t.Day())
}

// Today returns the current local calendar day.
func Today() Date {
	return From(time.Now())
}

// Parse reads a YYYY-MM-DD string.
func Parse(s string) (Date, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return Date{}, fmt.Errorf("parsing date %q: %w", s, err)
	}

	return Date{Time: t}, nil
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}

	return d.Format(Layout)
}

// YearMonth returns the YYYY-MM key of the month d falls in.
func (d Date) YearMonth() string {
	return d.Format("2006-01")
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}

	if s == "" {
		*d = Date{}
		return nil
	}

	parsed, err := Parse(s)
	if err != nil {
		return err
	}

	*d = parsed

	return nil
}

// ParseMonth reads a YYYY-MM key and returns its year and month.
func ParseMonth(s string) (int, time.Month, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return 0, 0, fmt.Errorf("parsing month %q: %w", s, err)
	}

	return t.Year(), t.Month(), nil
}

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

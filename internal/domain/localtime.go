package domain

import (
	"encoding/json/v2"
	"fmt"
	"time"
)

// Layout is the canonical wire and storage form for appointment times:
// ISO-8601 local date+time, minute precision, no offset.
const Layout = "2006-01-02T15:04"

// DateLayout is the calendar-date form used by day queries.
const DateLayout = "2006-01-02"

// LocalTime is a wall-clock timestamp with no timezone semantics.
// It unmarshals from the canonical layout plus common variants (seconds,
// RFC3339); any offset present is parsed and then discarded, so the stored
// value is always the literal wall-clock reading.
type LocalTime struct {
	time.Time
}

// NewLocalTime builds a LocalTime from calendar and clock components.
func NewLocalTime(year int, month time.Month, day, hour, minute int) LocalTime {
	return LocalTime{time.Date(year, month, day, hour, minute, 0, 0, time.Local)}
}

// ParseLocalTime parses a date+time string in any accepted layout.
func ParseLocalTime(s string) (LocalTime, error) {
	for _, layout := range []string{Layout, "2006-01-02T15:04:05", time.RFC3339, DateLayout} {
		if t, err := time.Parse(layout, s); err == nil {
			// Rebuild on the wall clock so offsets never leak into comparisons.
			return LocalTime{time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.Local)}, nil
		}
	}
	return LocalTime{}, fmt.Errorf("cannot parse %q as local date-time", s)
}

// ParseDate parses a calendar date (no time component).
func ParseDate(s string) (LocalTime, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return LocalTime{}, fmt.Errorf("cannot parse %q as date: %w", s, err)
	}
	return LocalTime{time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)}, nil
}

// SameDay reports whether two timestamps fall on the same calendar day.
// Equality is defined on the (year, month, day) triple only, never on
// 24-hour epoch distance, so it is stable for any time of day.
func (lt LocalTime) SameDay(other LocalTime) bool {
	y1, m1, d1 := lt.Date()
	y2, m2, d2 := other.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// String returns the canonical layout.
func (lt LocalTime) String() string {
	return lt.Format(Layout)
}

// MarshalJSON emits the canonical layout.
func (lt LocalTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(lt.Format(Layout))
}

// UnmarshalJSON accepts any layout ParseLocalTime accepts.
func (lt *LocalTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("local time must be a string: %w", err)
	}
	parsed, err := ParseLocalTime(s)
	if err != nil {
		return err
	}
	*lt = parsed
	return nil
}

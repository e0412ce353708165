package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"regexp"
	"time"
)

// TimeString represents a wall-clock time of day in "HH:MM" (24-hour) format.
// It is the wire and storage format for opening hours, reservation start
// times and generated slots.
type TimeString string

var timeStringPattern = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$`)

var (
	// ErrInvalidTimeString is returned when a value is not in HH:MM format
	ErrInvalidTimeString = errors.New("invalid time string format, expected HH:MM")
)

// NewTimeString creates a TimeString from the time-of-day part of t
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format("15:04"))
}

// NewTimeStringFromString creates a TimeString from s, validating the format
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// NewTimeStringFromMinutes creates a TimeString from a minute offset since
// midnight. Offsets outside a single day are rejected.
func NewTimeStringFromMinutes(minutes int) (TimeString, error) {
	if minutes < 0 || minutes >= 24*60 {
		return "", fmt.Errorf("%w: %d minutes is outside of a day", ErrInvalidTimeString, minutes)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)), nil
}

// String returns the raw HH:MM representation
func (t TimeString) String() string {
	return string(t)
}

// IsZero returns true for the empty value
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate checks that the value matches HH:MM with a 24-hour clock
func (t TimeString) Validate() error {
	if !timeStringPattern.MatchString(string(t)) {
		return ErrInvalidTimeString
	}
	return nil
}

// Minutes returns the offset from midnight in minutes
func (t TimeString) Minutes() (int, error) {
	if err := t.Validate(); err != nil {
		return 0, err
	}
	var hour, minute int
	if _, err := fmt.Sscanf(string(t), "%02d:%02d", &hour, &minute); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidTimeString, err)
	}
	return hour*60 + minute, nil
}

// AddMinutes returns the time shifted forward by the given number of minutes.
// The result is clamped to the same day: shifting past midnight is an error.
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	current, err := t.Minutes()
	if err != nil {
		return "", err
	}
	shifted := current + minutes
	if shifted >= 24*60 {
		// Treat end-of-day overflow as 23:59 so closing-time arithmetic
		// near midnight stays comparable instead of failing.
		shifted = 24*60 - 1
	}
	if shifted < 0 {
		shifted = 0
	}
	return NewTimeStringFromMinutes(shifted)
}

// IsBefore reports whether t is strictly earlier than other
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter reports whether t is strictly later than other
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}

// Format12Hour returns the display form on a 12-hour clock, e.g. "13:30" ->
// "1:30 PM" and "08:45" -> "8:45 AM". Hours 0 and 12 both map to 12.
// Presentation only, never used in scheduling math.
func (t TimeString) Format12Hour() string {
	minutes, err := t.Minutes()
	if err != nil {
		return string(t)
	}

	hour := minutes / 60
	minute := minutes % 60

	suffix := "AM"
	if hour >= 12 {
		suffix = "PM"
	}

	displayHour := hour % 12
	if displayHour == 0 {
		displayHour = 12
	}

	return fmt.Sprintf("%d:%02d %s", displayHour, minute, suffix)
}

// Scan implements sql.Scanner. Postgres TIME columns arrive as "HH:MM:SS"
// strings or as time.Time depending on the driver; both are truncated to
// HH:MM.
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		return t.scanString(v)
	case []byte:
		return t.scanString(string(v))
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: cannot scan %T into TimeString", ErrInvalidTimeString, src)
	}
}

func (t *TimeString) scanString(s string) error {
	if len(s) > 5 {
		s = s[:5]
	}
	ts, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}
	*t = ts
	return nil
}

// Value implements driver.Valuer
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t), nil
}

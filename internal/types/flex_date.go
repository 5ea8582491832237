package types

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// FlexDate is a calendar date that can be unmarshaled from either a bare
// date string ("2024-01-01") or a full RFC 3339 timestamp. It serializes as
// a bare date and maps to a DATE column through the embedded datatypes.Date.
type FlexDate struct {
	datatypes.Date
}

// NewFlexDate builds a FlexDate from a time, dropping the time-of-day part.
func NewFlexDate(t time.Time) FlexDate {
	y, m, d := t.Date()
	return FlexDate{datatypes.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))}
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// Decoding fails closed: a missing or malformed date is an error, never a
// silent zero value.
func (f *FlexDate) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("FlexDate: expected string, got %s", string(data))
	}
	if s == "" {
		return fmt.Errorf("FlexDate: empty date")
	}

	if t, err := time.Parse(DateLayout, s); err == nil {
		f.Date = datatypes.Date(t)
		return nil
	}

	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return fmt.Errorf("FlexDate: invalid date %q, want YYYY-MM-DD", s)
	}
	f.Date = datatypes.Date(t)
	return nil
}

// MarshalJSON implements the json.Marshaler interface.
func (f FlexDate) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.String())
}

// String formats the date in the wire format.
func (f FlexDate) String() string {
	return time.Time(f.Date).Format(DateLayout)
}

// IsZero reports whether the date was never set.
func (f FlexDate) IsZero() bool {
	return time.Time(f.Date).IsZero()
}

package types

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Layouts accepted on the wire. The booking backend serializes
// java.time.LocalDateTime without a zone designator.
const (
	DateTimeLayout = "2006-01-02T15:04:05"
	DateLayout     = "2006-01-02"
	ClockLayout    = "15:04"
)

var parseLayouts = []string{
	DateTimeLayout,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	time.RFC3339,
}

// LocalDateTime is a zone-less timestamp as stored by the booking backend.
// Comparisons on the date component are done on the stored representation,
// no timezone normalization is applied.
type LocalDateTime struct {
	time.Time
}

// NewLocalDateTime wraps a time.Time without converting it.
func NewLocalDateTime(t time.Time) LocalDateTime {
	return LocalDateTime{Time: t}
}

// ParseLocalDateTime parses any of the accepted wire layouts.
func ParseLocalDateTime(s string) (LocalDateTime, error) {
	for _, layout := range parseLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return LocalDateTime{Time: t}, nil
		}
	}
	return LocalDateTime{}, fmt.Errorf("invalid datetime value: %q", s)
}

func (t *LocalDateTime) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		t.Time = time.Time{}
		return nil
	}
	parsed, err := ParseLocalDateTime(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func (t LocalDateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Format(DateTimeLayout))
}

// DateString returns the date component, e.g. "2024-03-14".
func (t LocalDateTime) DateString() string {
	return t.Format(DateLayout)
}

// ClockString returns the clock component, e.g. "10:30".
func (t LocalDateTime) ClockString() string {
	return t.Format(ClockLayout)
}

// SameDay reports whether the date components match.
func (t LocalDateTime) SameDay(other time.Time) bool {
	y1, m1, d1 := t.Date()
	y2, m2, d2 := other.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

package calendar

import (
	"sort"
	"time"

	"github.com/barberlink/admin-gateway/internal/domain"
)

// DaysPerWeek is the length of every week returned by WeekDatesFor.
const DaysPerWeek = 7

// WeekDatesFor returns the 7 consecutive calendar dates of the week
// containing d, starting from the Sunday of that week. Dates are normalized
// to midnight in d's location; no timezone conversion is performed.
func WeekDatesFor(d time.Time) []time.Time {
	start := Midnight(d).AddDate(0, 0, -int(d.Weekday()))

	week := make([]time.Time, DaysPerWeek)
	for i := range week {
		week[i] = start.AddDate(0, 0, i)
	}
	return week
}

// Midnight truncates t to the start of its calendar day.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether two timestamps fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// FilterAppointments returns the subsequence of appointments matching the
// filter, preserving input order. It never sorts; callers needing
// chronological order sort explicitly (see SortByStartTime).
func FilterAppointments(appts []domain.Appointment, f domain.AppointmentFilter) []domain.Appointment {
	out := make([]domain.Appointment, 0, len(appts))
	for _, a := range appts {
		if f.Matches(&a) {
			out = append(out, a)
		}
	}
	return out
}

// AppointmentsOnDate returns the appointments whose start timestamp falls on
// the given calendar day, in original order.
func AppointmentsOnDate(appts []domain.Appointment, day time.Time) []domain.Appointment {
	out := make([]domain.Appointment, 0)
	for _, a := range appts {
		if a.StartTime.SameDay(day) {
			out = append(out, a)
		}
	}
	return out
}

// SortByStartTime returns a copy sorted ascending by start time.
// The sort is stable so appointments sharing a start time keep their order.
func SortByStartTime(appts []domain.Appointment) []domain.Appointment {
	out := make([]domain.Appointment, len(appts))
	copy(out, appts)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartTime.Before(out[j].StartTime.Time)
	})
	return out
}

// Navigate shifts the reference date one step in the given direction:
// a week in week mode, a day in day mode. The list view has no navigation,
// so the date is returned unchanged.
func Navigate(current time.Time, mode domain.ViewMode, direction int) time.Time {
	switch mode {
	case domain.ViewModeWeek:
		return current.AddDate(0, 0, DaysPerWeek*direction)
	case domain.ViewModeDay:
		return current.AddDate(0, 0, direction)
	default:
		return current
	}
}

// TimeProvider abstracts the wall clock so navigation can be tested.
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider is the production TimeProvider.
type RealTimeProvider struct{}

func (RealTimeProvider) Now() time.Time {
	return time.Now()
}

// ResetToToday returns the current date regardless of view mode.
func ResetToToday(tp TimeProvider) time.Time {
	return Midnight(tp.Now())
}

package domain

import "time"

// ViewMode selects how the schedule screen groups appointments.
type ViewMode string

const (
	ViewModeList ViewMode = "list"
	ViewModeWeek ViewMode = "week"
	ViewModeDay  ViewMode = "day"
)

// IsValid reports whether the mode is one of list/week/day.
func (m ViewMode) IsValid() bool {
	return m == ViewModeList || m == ViewModeWeek || m == ViewModeDay
}

// HasNavigation reports whether prev/next navigation applies to the mode.
// The list view shows no navigation controls.
func (m ViewMode) HasNavigation() bool {
	return m == ViewModeWeek || m == ViewModeDay
}

// AppointmentFilter is the transient filter record applied to the working
// set. Nil fields mean "all". Date, when set, matches the exact calendar day
// of the appointment's start time ("2006-01-02").
type AppointmentFilter struct {
	Status   *AppointmentStatus
	TenantID *int64
	Date     *string
}

// Matches applies the filter conjunction to a single appointment.
func (f AppointmentFilter) Matches(a *Appointment) bool {
	if f.Status != nil && a.Status != *f.Status {
		return false
	}
	if f.TenantID != nil && a.TenantID != *f.TenantID {
		return false
	}
	if f.Date != nil && a.StartTime.DateString() != *f.Date {
		return false
	}
	return true
}

// WorkingSet is the in-memory snapshot held between loads. It is replaced
// wholesale on every load; nothing mutates it field by field.
type WorkingSet struct {
	Appointments []Appointment
	Customers    []Customer
	Tenants      []Tenant
	Services     []Service
	LoadedAt     time.Time
}

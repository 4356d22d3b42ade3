package domain

import (
	"github.com/barberlink/admin-gateway/pkg/types"
)

// AppointmentStatus represents the lifecycle status of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "PENDING"
	StatusConfirmed AppointmentStatus = "CONFIRMED"
	StatusCompleted AppointmentStatus = "COMPLETED"
	StatusCancelled AppointmentStatus = "CANCELLED"
)

// AllStatuses lists every status the backend can report.
var AllStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
	StatusCancelled,
}

// allowedTransitions is the transition table enforced client-side before any
// upstream call. The backend stays the final authority: a rejected update must
// never mutate local state.
var allowedTransitions = map[AppointmentStatus][]AppointmentStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted},
	StatusCompleted: {},
	StatusCancelled: {},
}

// IsValid reports whether the status is one the backend can report.
func (s AppointmentStatus) IsValid() bool {
	for _, valid := range AllStatuses {
		if s == valid {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transitions are offered from s.
func (s AppointmentStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// CanTransition reports whether the from→to pair is in the transition table.
func CanTransition(from, to AppointmentStatus) bool {
	for _, allowed := range allowedTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// AllowedTransitions returns the statuses reachable from the given one.
func AllowedTransitions(from AppointmentStatus) []AppointmentStatus {
	targets := allowedTransitions[from]
	out := make([]AppointmentStatus, len(targets))
	copy(out, targets)
	return out
}

// ServiceSnapshot is the inline service copy some appointments carry.
// When present it is preferred over the service lookup table.
type ServiceSnapshot struct {
	Name string
}

// Appointment represents a salon appointment in the system.
// The record is owned by the booking backend; the gateway holds read-only
// copies and only ever mutates the status via the backend.
type Appointment struct {
	ID         int64
	TenantID   int64
	CustomerID int64
	ServiceID  int64
	Service    *ServiceSnapshot
	StartTime  types.LocalDateTime
	EndTime    *types.LocalDateTime
	TotalPrice float64
	Currency   string
	Status     AppointmentStatus
	Notes      *string
}

// CanBeConfirmed reports whether the confirm action applies.
func (a *Appointment) CanBeConfirmed() bool {
	return CanTransition(a.Status, StatusConfirmed)
}

// CanBeCancelled reports whether the cancel action applies.
func (a *Appointment) CanBeCancelled() bool {
	return CanTransition(a.Status, StatusCancelled)
}

// CanBeCompleted reports whether the complete action applies.
func (a *Appointment) CanBeCompleted() bool {
	return CanTransition(a.Status, StatusCompleted)
}

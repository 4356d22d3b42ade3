package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    AppointmentStatus
		to      AppointmentStatus
		allowed bool
	}{
		{"pending to confirmed", StatusPending, StatusConfirmed, true},
		{"pending to cancelled", StatusPending, StatusCancelled, true},
		{"pending to completed", StatusPending, StatusCompleted, false},
		{"confirmed to completed", StatusConfirmed, StatusCompleted, true},
		{"confirmed to cancelled", StatusConfirmed, StatusCancelled, false},
		{"confirmed to pending", StatusConfirmed, StatusPending, false},
		{"completed to confirmed", StatusCompleted, StatusConfirmed, false},
		{"completed to pending", StatusCompleted, StatusPending, false},
		{"cancelled to pending", StatusCancelled, StatusPending, false},
		{"cancelled to confirmed", StatusCancelled, StatusConfirmed, false},
		{"unknown status has no transitions", AppointmentStatus("ARCHIVED"), StatusConfirmed, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, CanTransition(tt.from, tt.to))
		})
	}
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusConfirmed.IsTerminal())
	assert.True(t, StatusCompleted.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
}

func TestTerminalStatusesHaveNoTransitions(t *testing.T) {
	for _, s := range AllStatuses {
		if !s.IsTerminal() {
			continue
		}
		assert.Empty(t, AllowedTransitions(s), "terminal status %s must offer no transitions", s)
	}
}

func TestStatusIsValid(t *testing.T) {
	for _, s := range AllStatuses {
		assert.True(t, s.IsValid(), "status %s", s)
	}
	assert.False(t, AppointmentStatus("UNKNOWN").IsValid())
	assert.False(t, AppointmentStatus("pending").IsValid(), "statuses are case sensitive")
	assert.False(t, AppointmentStatus("").IsValid())
}

func TestAppointmentActionHelpers(t *testing.T) {
	pending := &Appointment{Status: StatusPending}
	assert.True(t, pending.CanBeConfirmed())
	assert.True(t, pending.CanBeCancelled())
	assert.False(t, pending.CanBeCompleted())

	confirmed := &Appointment{Status: StatusConfirmed}
	assert.False(t, confirmed.CanBeConfirmed())
	assert.False(t, confirmed.CanBeCancelled())
	assert.True(t, confirmed.CanBeCompleted())

	completed := &Appointment{Status: StatusCompleted}
	assert.False(t, completed.CanBeConfirmed())
	assert.False(t, completed.CanBeCancelled())
	assert.False(t, completed.CanBeCompleted())
}

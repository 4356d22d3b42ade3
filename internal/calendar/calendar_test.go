package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barberlink/admin-gateway/internal/domain"
	"github.com/barberlink/admin-gateway/pkg/types"
)

func mustParse(t *testing.T, s string) types.LocalDateTime {
	t.Helper()
	ts, err := types.ParseLocalDateTime(s)
	require.NoError(t, err)
	return ts
}

func appt(t *testing.T, id, tenantID int64, status domain.AppointmentStatus, start string) domain.Appointment {
	t.Helper()
	return domain.Appointment{
		ID:        id,
		TenantID:  tenantID,
		Status:    status,
		StartTime: mustParse(t, start),
	}
}

func TestWeekDatesFor(t *testing.T) {
	tests := []struct {
		name      string
		input     time.Time
		wantStart string
	}{
		{"thursday mid-week", time.Date(2024, 3, 14, 15, 30, 0, 0, time.UTC), "2024-03-10"},
		{"sunday is its own week start", time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), "2024-03-10"},
		{"saturday is the week end", time.Date(2024, 3, 16, 23, 59, 0, 0, time.UTC), "2024-03-10"},
		{"week spanning a month boundary", time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC), "2024-03-31"},
		{"week spanning a year boundary", time.Date(2025, 1, 2, 8, 0, 0, 0, time.UTC), "2024-12-29"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			week := WeekDatesFor(tt.input)
			require.Len(t, week, DaysPerWeek)

			assert.Equal(t, tt.wantStart, week[0].Format(domain.DateFormat))
			assert.Equal(t, time.Sunday, week[0].Weekday())

			// Consecutive midnights containing the input day.
			containsInput := false
			for i, d := range week {
				assert.Equal(t, 0, d.Hour())
				if i > 0 {
					assert.Equal(t, week[i-1].AddDate(0, 0, 1), d)
				}
				if SameDay(d, tt.input) {
					containsInput = true
				}
			}
			assert.True(t, containsInput)
		})
	}
}

func TestNavigate(t *testing.T) {
	thursday := time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		mode      domain.ViewMode
		direction int
		want      string
	}{
		{"week forward", domain.ViewModeWeek, 1, "2024-03-21"},
		{"week back", domain.ViewModeWeek, -1, "2024-03-07"},
		{"day forward", domain.ViewModeDay, 1, "2024-03-15"},
		{"day back", domain.ViewModeDay, -1, "2024-03-13"},
		{"list ignores navigation", domain.ViewModeList, 1, "2024-03-14"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Navigate(thursday, tt.mode, tt.direction)
			assert.Equal(t, tt.want, got.Format(domain.DateFormat))
		})
	}
}

func TestNavigateWeekKeepsWeekdayOffset(t *testing.T) {
	// Advancing a Thursday by one week lands on the next Thursday,
	// whose week starts the following Sunday.
	thursday := time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC)
	next := Navigate(thursday, domain.ViewModeWeek, 1)

	assert.Equal(t, time.Thursday, next.Weekday())
	assert.Equal(t, "2024-03-17", WeekDatesFor(next)[0].Format(domain.DateFormat))
}

func TestFilterAppointmentsPreservesOrder(t *testing.T) {
	appts := []domain.Appointment{
		appt(t, 1, 3, domain.StatusPending, "2024-03-14T16:00:00"),
		appt(t, 2, 3, domain.StatusConfirmed, "2024-03-14T09:00:00"),
		appt(t, 3, 5, domain.StatusPending, "2024-03-14T11:00:00"),
		appt(t, 4, 3, domain.StatusPending, "2024-03-15T10:00:00"),
	}

	status := domain.StatusPending
	tenant := int64(3)
	date := "2024-03-14"

	t.Run("status only", func(t *testing.T) {
		got := FilterAppointments(appts, domain.AppointmentFilter{Status: &status})
		require.Len(t, got, 3)
		assert.Equal(t, []int64{1, 3, 4}, ids(got))
	})

	t.Run("conjunction", func(t *testing.T) {
		got := FilterAppointments(appts, domain.AppointmentFilter{
			Status:   &status,
			TenantID: &tenant,
			Date:     &date,
		})
		require.Len(t, got, 1)
		assert.Equal(t, int64(1), got[0].ID)
	})

	t.Run("no match yields empty, not nil panic", func(t *testing.T) {
		other := int64(99)
		got := FilterAppointments(appts, domain.AppointmentFilter{TenantID: &other})
		assert.Empty(t, got)
	})
}

func TestFilterAppointmentsIdempotent(t *testing.T) {
	appts := []domain.Appointment{
		appt(t, 1, 3, domain.StatusPending, "2024-03-14T16:00:00"),
		appt(t, 2, 3, domain.StatusConfirmed, "2024-03-14T09:00:00"),
		appt(t, 3, 3, domain.StatusPending, "2024-03-14T11:00:00"),
	}

	status := domain.StatusPending
	f := domain.AppointmentFilter{Status: &status}

	once := FilterAppointments(appts, f)
	twice := FilterAppointments(once, f)
	assert.Equal(t, once, twice)
}

func TestAppointmentsOnDatePartitionsWeek(t *testing.T) {
	appts := []domain.Appointment{
		appt(t, 1, 1, domain.StatusPending, "2024-03-10T09:00:00"),
		appt(t, 2, 1, domain.StatusPending, "2024-03-13T10:00:00"),
		appt(t, 3, 1, domain.StatusPending, "2024-03-13T14:00:00"),
		appt(t, 4, 1, domain.StatusPending, "2024-03-16T18:00:00"),
		appt(t, 5, 1, domain.StatusPending, "2024-03-17T09:00:00"), // next week
	}

	week := WeekDatesFor(time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC))

	// Every in-week appointment lands in exactly one day bucket.
	total := 0
	seen := map[int64]int{}
	for _, day := range week {
		for _, a := range AppointmentsOnDate(appts, day) {
			seen[a.ID]++
			total++
		}
	}
	assert.Equal(t, 4, total)
	for id, n := range seen {
		assert.Equal(t, 1, n, "appointment %d bucketed more than once", id)
	}
	assert.NotContains(t, seen, int64(5))
}

func TestSortByStartTime(t *testing.T) {
	appts := []domain.Appointment{
		appt(t, 1, 1, domain.StatusPending, "2024-03-14T16:00:00"),
		appt(t, 2, 1, domain.StatusPending, "2024-03-14T09:00:00"),
		appt(t, 3, 1, domain.StatusPending, "2024-03-14T09:00:00"),
		appt(t, 4, 1, domain.StatusPending, "2024-03-14T11:00:00"),
	}

	got := SortByStartTime(appts)

	// Stable: ids 2 and 3 share a start time and keep their relative order.
	assert.Equal(t, []int64{2, 3, 4, 1}, ids(got))

	// Input untouched.
	assert.Equal(t, []int64{1, 2, 3, 4}, ids(appts))
}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

func TestResetToToday(t *testing.T) {
	clock := fixedClock{now: time.Date(2024, 3, 14, 15, 45, 12, 0, time.UTC)}
	got := ResetToToday(clock)
	assert.Equal(t, time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC), got)
}

func ids(appts []domain.Appointment) []int64 {
	out := make([]int64, 0, len(appts))
	for _, a := range appts {
		out = append(out, a.ID)
	}
	return out
}

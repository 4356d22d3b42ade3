package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barberlink/admin-gateway/internal/domain"
)

func TestToDomainFilter(t *testing.T) {
	t.Run("empty query means no filtering", func(t *testing.T) {
		f, err := (&ScheduleQuery{}).ToDomainFilter()
		require.NoError(t, err)
		assert.Nil(t, f.Status)
		assert.Nil(t, f.TenantID)
		assert.Nil(t, f.Date)
	})

	t.Run("all values mean no filtering", func(t *testing.T) {
		f, err := (&ScheduleQuery{Status: FilterAll, Tenant: FilterAll}).ToDomainFilter()
		require.NoError(t, err)
		assert.Nil(t, f.Status)
		assert.Nil(t, f.TenantID)
	})

	t.Run("concrete values convert", func(t *testing.T) {
		f, err := (&ScheduleQuery{Status: "PENDING", Tenant: "3", Date: "2024-03-14"}).ToDomainFilter()
		require.NoError(t, err)
		require.NotNil(t, f.Status)
		assert.Equal(t, domain.StatusPending, *f.Status)
		require.NotNil(t, f.TenantID)
		assert.Equal(t, int64(3), *f.TenantID)
		require.NotNil(t, f.Date)
		assert.Equal(t, "2024-03-14", *f.Date)
	})

	t.Run("invalid status", func(t *testing.T) {
		_, err := (&ScheduleQuery{Status: "ARCHIVED"}).ToDomainFilter()
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("invalid tenant", func(t *testing.T) {
		_, err := (&ScheduleQuery{Tenant: "abc"}).ToDomainFilter()
		assert.ErrorIs(t, err, ErrInvalidTenant)
	})

	t.Run("invalid date", func(t *testing.T) {
		_, err := (&ScheduleQuery{Date: "14.03.2024"}).ToDomainFilter()
		assert.ErrorIs(t, err, ErrInvalidDate)
	})
}

func TestTenantScope(t *testing.T) {
	scope, err := (&ScheduleQuery{}).TenantScope()
	require.NoError(t, err)
	assert.Nil(t, scope)

	scope, err = (&ScheduleQuery{Tenant: FilterAll}).TenantScope()
	require.NoError(t, err)
	assert.Nil(t, scope)

	scope, err = (&ScheduleQuery{Tenant: "5"}).TenantScope()
	require.NoError(t, err)
	require.NotNil(t, scope)
	assert.Equal(t, int64(5), *scope)

	_, err = (&ScheduleQuery{Tenant: "x"}).TenantScope()
	assert.ErrorIs(t, err, ErrInvalidTenant)
}

func TestStatsFor(t *testing.T) {
	appts := []domain.Appointment{
		{Status: domain.StatusPending},
		{Status: domain.StatusPending},
		{Status: domain.StatusConfirmed},
		{Status: domain.StatusCompleted},
		{Status: domain.StatusCancelled},
		{Status: domain.AppointmentStatus("ARCHIVED")}, // counts toward total only
	}

	stats := StatsFor(appts)
	assert.Equal(t, ScheduleStats{
		Total:     6,
		Pending:   2,
		Confirmed: 1,
		Completed: 1,
		Cancelled: 1,
	}, stats)
}

func TestStatsForEmpty(t *testing.T) {
	assert.Equal(t, ScheduleStats{}, StatsFor(nil))
}

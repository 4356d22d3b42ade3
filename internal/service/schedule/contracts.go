package schedule

import (
	"context"

	"github.com/barberlink/admin-gateway/internal/domain"
)

// BookingClient is the slice of the booking backend client the schedule
// service consumes.
type BookingClient interface {
	ListAppointments(ctx context.Context) ([]domain.Appointment, error)
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
	ListTenants(ctx context.Context) ([]domain.Tenant, error)
	ListServices(ctx context.Context, tenantID int64) ([]domain.Service, error)
	UpdateAppointmentStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error
}

// Logger is the printf-style logger consumed by the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

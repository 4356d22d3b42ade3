package book_appointment

import (
	"context"

	"github.com/barberlink/admin-gateway/internal/domain"
	"github.com/barberlink/admin-gateway/internal/integrations/bookingcore"
)

// BookingClient is the slice of the booking backend client the use case needs.
type BookingClient interface {
	ListTenants(ctx context.Context) ([]domain.Tenant, error)
	ListServices(ctx context.Context, tenantID int64) ([]domain.Service, error)
	CreateCustomer(ctx context.Context, req bookingcore.CreateCustomerRequest) (*domain.Customer, error)
	CreateAppointment(ctx context.Context, req bookingcore.CreateAppointmentRequest) (*domain.Appointment, error)
}

// Logger is the printf-style logger consumed by the use case.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

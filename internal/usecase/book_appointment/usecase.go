package book_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/barberlink/admin-gateway/internal/integrations/bookingcore"
	"github.com/barberlink/admin-gateway/pkg/ptr"
)

// UseCase creates an appointment from the quick-booking form: it validates
// the form, creates the customer, then creates the appointment referencing
// it. Both writes go to the booking backend; nothing is stored locally.
type UseCase struct {
	client BookingClient
	logger Logger
}

// NewUseCase creates the quick-booking use case.
func NewUseCase(client BookingClient, logger Logger) *UseCase {
	return &UseCase{
		client: client,
		logger: logger,
	}
}

// Execute runs the two-step booking protocol. A failure in the customer step
// aborts before any appointment is attempted. A failure in the appointment
// step is reported as-is: the backend owns cleanup of the dangling customer,
// the gateway holds no state to roll back.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BookAppointment: tenant=%d, service=%d, date=%s, time=%s",
		req.TenantID, req.ServiceID, req.Date, req.Time)

	// 1. Form validation
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BookAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Tenant must be an active, bookable salon
	tenants, err := uc.client.ListTenants(ctx)
	if err != nil {
		return nil, uc.upstreamError("list tenants", err)
	}
	if err := validateTenantBookable(tenants, req.TenantID); err != nil {
		uc.logger.Warn("BookAppointment: tenant id=%d not bookable", req.TenantID)
		return nil, err
	}

	// 3. Service must belong to the tenant's catalog
	services, err := uc.client.ListServices(ctx, req.TenantID)
	if err != nil {
		return nil, uc.upstreamError("list services", err)
	}
	if err := validateServiceBelongsToTenant(services, req.ServiceID); err != nil {
		uc.logger.Warn("BookAppointment: service id=%d not found for tenant id=%d",
			req.ServiceID, req.TenantID)
		return nil, err
	}

	// 4. Create the customer
	customerReq := bookingcore.CreateCustomerRequest{
		Name:        req.CustomerName,
		PhoneNumber: req.CustomerPhone,
		TenantID:    req.TenantID,
	}
	if req.CustomerEmail != "" {
		customerReq.Email = ptr.Ptr(req.CustomerEmail)
	}

	customer, err := uc.client.CreateCustomer(ctx, customerReq)
	if err != nil {
		uc.logger.Error("BookAppointment: customer creation failed: %v", err)
		if errors.Is(err, bookingcore.ErrUnauthorized) {
			return nil, ErrUnauthorized
		}
		return nil, fmt.Errorf("%w: %v", ErrCustomerCreateFailed, err)
	}

	// 5. Create the appointment referencing the new customer
	appointmentReq := bookingcore.CreateAppointmentRequest{
		TenantID:   req.TenantID,
		CustomerID: customer.ID,
		ServiceID:  req.ServiceID,
		StartTime:  req.startTimeString(),
	}
	if req.Notes != "" {
		appointmentReq.Notes = ptr.Ptr(req.Notes)
	}

	appointment, err := uc.client.CreateAppointment(ctx, appointmentReq)
	if err != nil {
		uc.logger.Error("BookAppointment: appointment creation failed for customer id=%d: %v",
			customer.ID, err)
		if errors.Is(err, bookingcore.ErrUnauthorized) {
			return nil, ErrUnauthorized
		}
		return nil, fmt.Errorf("%w: %v", ErrAppointmentCreateFailed, err)
	}

	uc.logger.Info("BookAppointment: created appointment id=%d for customer id=%d",
		appointment.ID, customer.ID)

	return responseFrom(appointment, customer), nil
}

func (uc *UseCase) upstreamError(step string, err error) error {
	uc.logger.Error("BookAppointment: %s failed: %v", step, err)
	if errors.Is(err, bookingcore.ErrUnauthorized) {
		return ErrUnauthorized
	}
	return fmt.Errorf("%w: %s: %v", ErrInternal, step, err)
}

package book_appointment

import (
	"fmt"
	"strings"
	"time"

	"github.com/barberlink/admin-gateway/internal/domain"
)

// validateRequest checks the quick-booking form the same way the admin
// screen does before submitting.
func validateRequest(req *Request) error {
	if req.TenantID <= 0 {
		return fmt.Errorf("%w: tenantID must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if strings.TrimSpace(req.CustomerName) == "" {
		return fmt.Errorf("%w: customer name is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.CustomerPhone) == "" {
		return fmt.Errorf("%w: customer phone is required", ErrInvalidInput)
	}

	if req.Date == "" {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if _, err := time.Parse(domain.DateFormat, req.Date); err != nil {
		return fmt.Errorf("%w: invalid date format: %v", ErrInvalidInput, err)
	}

	if req.Time == "" {
		return fmt.Errorf("%w: time is required", ErrInvalidInput)
	}
	if _, err := time.Parse(domain.TimeFormat, req.Time); err != nil {
		return fmt.Errorf("%w: invalid time format: %v", ErrInvalidInput, err)
	}

	return nil
}

// validateTenantBookable checks the tenant is active and not the
// administrative pseudo-tenant.
func validateTenantBookable(tenants []domain.Tenant, tenantID int64) error {
	for i := range tenants {
		if tenants[i].ID == tenantID {
			if !tenants[i].IsBookable() {
				return ErrTenantNotBookable
			}
			return nil
		}
	}
	return ErrTenantNotBookable
}

// validateServiceBelongsToTenant checks the service is in the tenant's catalog.
func validateServiceBelongsToTenant(services []domain.Service, serviceID int64) error {
	for i := range services {
		if services[i].ID == serviceID {
			return nil
		}
	}
	return ErrServiceNotFound
}

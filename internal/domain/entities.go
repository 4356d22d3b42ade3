package domain

import "github.com/barberlink/admin-gateway/pkg/types"

// Customer belongs to exactly one tenant. Read-only for the gateway except
// for the quick-booking flow, which creates one via the backend.
type Customer struct {
	ID          int64
	TenantID    int64
	Name        string
	PhoneNumber string
	Email       *string
	Active      bool
}

// Tenant is a salon operating within the platform.
type Tenant struct {
	ID          int64
	Name        string
	PhoneNumber string
	Address     string
	City        string
	District    string
	Active      bool
}

// IsBookable reports whether the tenant should be offered in the booking
// form. The system-administration tenant is a platform artifact, not a salon.
func (t *Tenant) IsBookable() bool {
	return t.Active && t.Name != SystemTenantName
}

// Service is offered by one tenant; there is no global service catalog.
type Service struct {
	ID              int64
	TenantID        int64
	Name            string
	DurationMinutes int
	Price           float64
	Currency        string
	Active          bool
}

// Slot is a candidate appointment window computed by the backend.
// The gateway consumes slots, it never computes them.
type Slot struct {
	StartTime types.LocalDateTime
	EndTime   types.LocalDateTime
}

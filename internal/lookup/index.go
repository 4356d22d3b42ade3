package lookup

import (
	"github.com/barberlink/admin-gateway/internal/domain"
)

// Index holds id→entity maps built once per working-set load, replacing the
// linear scans the screens would otherwise do on every render. Lookups that
// miss fall back to the "Bilinmeyen" sentinel and never fail.
type Index struct {
	customers map[int64]domain.Customer
	tenants   map[int64]domain.Tenant
	services  map[int64]domain.Service
}

// NewIndex builds the lookup maps for a working set.
func NewIndex(ws *domain.WorkingSet) *Index {
	ix := &Index{
		customers: make(map[int64]domain.Customer, len(ws.Customers)),
		tenants:   make(map[int64]domain.Tenant, len(ws.Tenants)),
		services:  make(map[int64]domain.Service, len(ws.Services)),
	}
	for _, c := range ws.Customers {
		ix.customers[c.ID] = c
	}
	for _, t := range ws.Tenants {
		ix.tenants[t.ID] = t
	}
	for _, s := range ws.Services {
		ix.services[s.ID] = s
	}
	return ix
}

// CustomerName resolves a customer's display name.
func (ix *Index) CustomerName(id int64) string {
	if c, ok := ix.customers[id]; ok {
		return c.Name
	}
	return domain.UnknownLabel
}

// CustomerPhone resolves a customer's phone number, empty on miss.
func (ix *Index) CustomerPhone(id int64) string {
	if c, ok := ix.customers[id]; ok {
		return c.PhoneNumber
	}
	return ""
}

// TenantName resolves a tenant's display name.
func (ix *Index) TenantName(id int64) string {
	if t, ok := ix.tenants[id]; ok {
		return t.Name
	}
	return domain.UnknownLabel
}

// ServiceName resolves the service label for an appointment, preferring the
// inline service snapshot over the lookup table.
func (ix *Index) ServiceName(a *domain.Appointment) string {
	if a.Service != nil && a.Service.Name != "" {
		return a.Service.Name
	}
	if s, ok := ix.services[a.ServiceID]; ok {
		return s.Name
	}
	return domain.UnknownLabel
}

// Service returns the full service record, if known.
func (ix *Index) Service(id int64) (domain.Service, bool) {
	s, ok := ix.services[id]
	return s, ok
}

// Tenant returns the full tenant record, if known.
func (ix *Index) Tenant(id int64) (domain.Tenant, bool) {
	t, ok := ix.tenants[id]
	return t, ok
}

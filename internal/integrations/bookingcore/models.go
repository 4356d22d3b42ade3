package bookingcore

import (
	"github.com/barberlink/admin-gateway/internal/domain"
	"github.com/barberlink/admin-gateway/pkg/types"
)

// Wire models for the booking backend. Field names follow the backend's JSON
// contract; conversion to domain types happens at this boundary only.

type appointmentDTO struct {
	ID         int64                `json:"id"`
	TenantID   int64                `json:"tenantId"`
	CustomerID int64                `json:"customerId"`
	ServiceID  int64                `json:"serviceId"`
	Service    *serviceSnapshotDTO  `json:"service,omitempty"`
	StartTime  types.LocalDateTime  `json:"startTime"`
	EndTime    *types.LocalDateTime `json:"endTime,omitempty"`
	TotalPrice float64              `json:"totalPrice"`
	Currency   string               `json:"currency"`
	Status     string               `json:"status"`
	Notes      *string              `json:"notes,omitempty"`
}

type serviceSnapshotDTO struct {
	Name string `json:"name"`
}

func (d *appointmentDTO) toDomain() domain.Appointment {
	a := domain.Appointment{
		ID:         d.ID,
		TenantID:   d.TenantID,
		CustomerID: d.CustomerID,
		ServiceID:  d.ServiceID,
		StartTime:  d.StartTime,
		EndTime:    d.EndTime,
		TotalPrice: d.TotalPrice,
		Currency:   d.Currency,
		Status:     domain.AppointmentStatus(d.Status),
		Notes:      d.Notes,
	}
	if d.Service != nil {
		a.Service = &domain.ServiceSnapshot{Name: d.Service.Name}
	}
	return a
}

type customerDTO struct {
	ID          int64   `json:"id"`
	TenantID    int64   `json:"tenantId"`
	Name        string  `json:"name"`
	PhoneNumber string  `json:"phoneNumber"`
	Email       *string `json:"email,omitempty"`
	Active      *bool   `json:"active,omitempty"`
}

func (d *customerDTO) toDomain() domain.Customer {
	c := domain.Customer{
		ID:          d.ID,
		TenantID:    d.TenantID,
		Name:        d.Name,
		PhoneNumber: d.PhoneNumber,
		Email:       d.Email,
		Active:      true,
	}
	if d.Active != nil {
		c.Active = *d.Active
	}
	return c
}

type tenantDTO struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
	City        string `json:"city"`
	District    string `json:"district"`
	Active      bool   `json:"active"`
}

func (d *tenantDTO) toDomain() domain.Tenant {
	return domain.Tenant{
		ID:          d.ID,
		Name:        d.Name,
		PhoneNumber: d.PhoneNumber,
		Address:     d.Address,
		City:        d.City,
		District:    d.District,
		Active:      d.Active,
	}
}

type serviceDTO struct {
	ID              int64   `json:"id"`
	TenantID        int64   `json:"tenantId"`
	Name            string  `json:"name"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
	Currency        string  `json:"currency"`
	Active          bool    `json:"active"`
}

func (d *serviceDTO) toDomain() domain.Service {
	return domain.Service{
		ID:              d.ID,
		TenantID:        d.TenantID,
		Name:            d.Name,
		DurationMinutes: d.DurationMinutes,
		Price:           d.Price,
		Currency:        d.Currency,
		Active:          d.Active,
	}
}

type slotDTO struct {
	StartTime types.LocalDateTime `json:"startTime"`
	EndTime   types.LocalDateTime `json:"endTime"`
}

func (d *slotDTO) toDomain() domain.Slot {
	return domain.Slot{StartTime: d.StartTime, EndTime: d.EndTime}
}

// CreateCustomerRequest is the payload for POST /customers.
type CreateCustomerRequest struct {
	Name        string  `json:"name"`
	PhoneNumber string  `json:"phoneNumber"`
	Email       *string `json:"email"`
	TenantID    int64   `json:"tenantId"`
}

// CreateAppointmentRequest is the payload for POST /appointments.
// StartTime is the zone-less "2006-01-02T15:04:05" representation.
type CreateAppointmentRequest struct {
	TenantID   int64   `json:"tenantId"`
	CustomerID int64   `json:"customerId"`
	ServiceID  int64   `json:"serviceId"`
	StartTime  string  `json:"startTime"`
	Notes      *string `json:"notes"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// ErrorResponse is the backend's error envelope.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

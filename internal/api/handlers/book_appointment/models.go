package book_appointment

import (
	uc "github.com/barberlink/admin-gateway/internal/usecase/book_appointment"
)

// BookAppointmentRequest is the HTTP request model of the quick-booking form.
type BookAppointmentRequest struct {
	TenantID      int64  `json:"tenantId"`
	ServiceID     int64  `json:"serviceId"`
	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`
	CustomerEmail string `json:"customerEmail,omitempty"`
	Date          string `json:"appointmentDate"`
	Time          string `json:"appointmentTime"`
	Notes         string `json:"notes,omitempty"`
}

// ToUseCaseRequest converts the HTTP request into the use case model.
func (r *BookAppointmentRequest) ToUseCaseRequest() *uc.Request {
	return &uc.Request{
		TenantID:      r.TenantID,
		ServiceID:     r.ServiceID,
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
		CustomerEmail: r.CustomerEmail,
		Date:          r.Date,
		Time:          r.Time,
		Notes:         r.Notes,
	}
}

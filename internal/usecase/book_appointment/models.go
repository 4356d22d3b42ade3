package book_appointment

import (
	"github.com/barberlink/admin-gateway/internal/domain"
	"github.com/barberlink/admin-gateway/pkg/types"
)

// Request is the quick-booking form payload.
type Request struct {
	TenantID      int64
	ServiceID     int64
	CustomerName  string
	CustomerPhone string
	CustomerEmail string // optional
	Date          string // "2006-01-02"
	Time          string // "15:04"
	Notes         string // optional
}

// startTimeString builds the zone-less timestamp the backend expects,
// e.g. "2024-03-14T10:30:00".
func (r *Request) startTimeString() string {
	return r.Date + "T" + r.Time + ":00"
}

// Response reports the created records.
type Response struct {
	AppointmentID int64               `json:"appointmentId"`
	CustomerID    int64               `json:"customerId"`
	TenantID      int64               `json:"tenantId"`
	ServiceID     int64               `json:"serviceId"`
	StartTime     types.LocalDateTime `json:"startTime"`
	Status        string              `json:"status"`
}

func responseFrom(appt *domain.Appointment, customer *domain.Customer) *Response {
	return &Response{
		AppointmentID: appt.ID,
		CustomerID:    customer.ID,
		TenantID:      appt.TenantID,
		ServiceID:     appt.ServiceID,
		StartTime:     appt.StartTime,
		Status:        string(appt.Status),
	}
}

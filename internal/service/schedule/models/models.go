package models

import (
	"errors"
	"strconv"
	"time"

	"github.com/barberlink/admin-gateway/internal/domain"
	"github.com/barberlink/admin-gateway/internal/lookup"
)

var (
	// ErrInvalidStatus is returned for an unknown status filter value.
	ErrInvalidStatus = errors.New("invalid appointment status")

	// ErrInvalidTenant is returned for an unparsable tenant filter value.
	ErrInvalidTenant = errors.New("invalid tenant id")

	// ErrInvalidDate is returned for an unparsable date value.
	ErrInvalidDate = errors.New("invalid date")
)

// FilterAll is the query value matching every status or tenant.
const FilterAll = "all"

// Request models

// ScheduleQuery carries the raw filter values of the list view. Empty and
// "all" both mean no filtering for status and tenant.
type ScheduleQuery struct {
	Status  string
	Tenant  string
	Date    string
	Refresh bool
}

// ToDomainFilter validates and converts the query into a filter record.
func (q *ScheduleQuery) ToDomainFilter() (domain.AppointmentFilter, error) {
	var filter domain.AppointmentFilter

	if q.Status != "" && q.Status != FilterAll {
		status := domain.AppointmentStatus(q.Status)
		if !status.IsValid() {
			return filter, ErrInvalidStatus
		}
		filter.Status = &status
	}

	if q.Tenant != "" && q.Tenant != FilterAll {
		tenantID, err := strconv.ParseInt(q.Tenant, 10, 64)
		if err != nil {
			return filter, ErrInvalidTenant
		}
		filter.TenantID = &tenantID
	}

	if q.Date != "" {
		if _, err := time.Parse(domain.DateFormat, q.Date); err != nil {
			return filter, ErrInvalidDate
		}
		date := q.Date
		filter.Date = &date
	}

	return filter, nil
}

// TenantScope returns the tenant id the working set should be loaded for,
// or nil for the "all tenants" scope.
func (q *ScheduleQuery) TenantScope() (*int64, error) {
	if q.Tenant == "" || q.Tenant == FilterAll {
		return nil, nil
	}
	tenantID, err := strconv.ParseInt(q.Tenant, 10, 64)
	if err != nil {
		return nil, ErrInvalidTenant
	}
	return &tenantID, nil
}

// CalendarQuery carries the navigation state of the week and day views.
// Date is the reference date ("2006-01-02", empty = today); Direction shifts
// it one step (-1 or +1) in the view's unit before rendering.
type CalendarQuery struct {
	Date      string
	Direction int
}

// Response models

// AppointmentView is one appointment with all derived display fields resolved.
type AppointmentView struct {
	ID             int64    `json:"id"`
	TenantID       int64    `json:"tenantId"`
	CustomerID     int64    `json:"customerId"`
	ServiceID      int64    `json:"serviceId"`
	CustomerName   string   `json:"customerName"`
	CustomerPhone  string   `json:"customerPhone"`
	TenantName     string   `json:"tenantName"`
	ServiceName    string   `json:"serviceName"`
	Date           string   `json:"date"`
	Time           string   `json:"time"`
	Price          string   `json:"price"`
	Status         string   `json:"status"`
	StatusLabel    string   `json:"statusLabel"`
	AllowedActions []string `json:"allowedActions"`
}

// ScheduleStats are the dashboard counters, computed over the full working
// set regardless of active filters.
type ScheduleStats struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Confirmed int `json:"confirmed"`
	Completed int `json:"completed"`
	Cancelled int `json:"cancelled"`
}

// ListViewResponse is the list view: filtered appointments plus stats.
// Warning carries a dismissible format-error message when a backend
// collection was coerced to empty; the view still renders.
type ListViewResponse struct {
	Appointments []AppointmentView `json:"appointments"`
	Stats        ScheduleStats     `json:"stats"`
	Warning      string            `json:"warning,omitempty"`
}

// DayBucket is one column of the week view.
type DayBucket struct {
	Date         string            `json:"date"`
	Weekday      string            `json:"weekday"`
	IsToday      bool              `json:"isToday"`
	Appointments []AppointmentView `json:"appointments"`
}

// WeekViewResponse is the week view: seven contiguous day buckets starting
// on Sunday.
type WeekViewResponse struct {
	ReferenceDate string      `json:"referenceDate"`
	Days          []DayBucket `json:"days"`
}

// DayViewResponse is the day view, sorted ascending by start time.
type DayViewResponse struct {
	Date         string            `json:"date"`
	Appointments []AppointmentView `json:"appointments"`
}

// Conversion helpers

// FromDomainAppointment resolves the derived display fields via the lookup index.
func FromDomainAppointment(a *domain.Appointment, ix *lookup.Index) AppointmentView {
	actions := domain.AllowedTransitions(a.Status)
	allowed := make([]string, len(actions))
	for i, s := range actions {
		allowed[i] = string(s)
	}

	return AppointmentView{
		ID:             a.ID,
		TenantID:       a.TenantID,
		CustomerID:     a.CustomerID,
		ServiceID:      a.ServiceID,
		CustomerName:   ix.CustomerName(a.CustomerID),
		CustomerPhone:  ix.CustomerPhone(a.CustomerID),
		TenantName:     ix.TenantName(a.TenantID),
		ServiceName:    ix.ServiceName(a),
		Date:           lookup.FormatDate(a.StartTime),
		Time:           lookup.FormatTime(a.StartTime),
		Price:          lookup.FormatCurrency(a.TotalPrice, a.Currency),
		Status:         string(a.Status),
		StatusLabel:    domain.StatusLabel(a.Status),
		AllowedActions: allowed,
	}
}

// FromDomainAppointments converts a slice, preserving order.
func FromDomainAppointments(appts []domain.Appointment, ix *lookup.Index) []AppointmentView {
	views := make([]AppointmentView, len(appts))
	for i := range appts {
		views[i] = FromDomainAppointment(&appts[i], ix)
	}
	return views
}

// StatsFor counts appointments per status over the full collection.
func StatsFor(appts []domain.Appointment) ScheduleStats {
	stats := ScheduleStats{Total: len(appts)}
	for i := range appts {
		switch appts[i].Status {
		case domain.StatusPending:
			stats.Pending++
		case domain.StatusConfirmed:
			stats.Confirmed++
		case domain.StatusCompleted:
			stats.Completed++
		case domain.StatusCancelled:
			stats.Cancelled++
		}
	}
	return stats
}

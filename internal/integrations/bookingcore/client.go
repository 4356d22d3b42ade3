package bookingcore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/barberlink/admin-gateway/internal/domain"
	"github.com/barberlink/admin-gateway/pkg/authctx"
	"github.com/barberlink/admin-gateway/pkg/metrics"
)

// Logger is the printf-style logger consumed by the client.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client talks to the remote booking backend, the sole source of truth for
// tenants, customers, services, slots and appointments. The admin's bearer
// token is taken from the request context and forwarded as-is.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
	metrics    *metrics.Metrics
}

// NewClient creates a booking backend client.
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// WithMetrics enables upstream request metrics.
func (c *Client) WithMetrics(m *metrics.Metrics) *Client {
	c.metrics = m
	return c
}

// ListAppointments fetches all appointments visible to the caller.
func (c *Client) ListAppointments(ctx context.Context) ([]domain.Appointment, error) {
	body, err := c.get(ctx, "/appointments", "list_appointments")
	if err != nil {
		return nil, err
	}
	dtos, coerced := decodeList[appointmentDTO](body, "")
	appts := make([]domain.Appointment, len(dtos))
	for i := range dtos {
		appts[i] = dtos[i].toDomain()
	}
	if coerced {
		return appts, fmt.Errorf("%w: expected appointment list", ErrInvalidResponse)
	}
	return appts, nil
}

// ListCustomers fetches all customers visible to the caller.
func (c *Client) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	body, err := c.get(ctx, "/customers", "list_customers")
	if err != nil {
		return nil, err
	}
	dtos, coerced := decodeList[customerDTO](body, "")
	customers := make([]domain.Customer, len(dtos))
	for i := range dtos {
		customers[i] = dtos[i].toDomain()
	}
	if coerced {
		return customers, fmt.Errorf("%w: expected customer list", ErrInvalidResponse)
	}
	return customers, nil
}

// ListTenants fetches all tenants. The admin endpoint may answer with a flat
// list or a page object carrying a "content" field; both are accepted.
func (c *Client) ListTenants(ctx context.Context) ([]domain.Tenant, error) {
	body, err := c.get(ctx, "/admin/tenants", "list_tenants")
	if err != nil {
		return nil, err
	}
	dtos, coerced := decodeList[tenantDTO](body, "content")
	tenants := make([]domain.Tenant, len(dtos))
	for i := range dtos {
		tenants[i] = dtos[i].toDomain()
	}
	if coerced {
		return tenants, fmt.Errorf("%w: expected tenant list", ErrInvalidResponse)
	}
	return tenants, nil
}

// ListServices fetches the services of one tenant. There is no global
// services endpoint on the backend.
func (c *Client) ListServices(ctx context.Context, tenantID int64) ([]domain.Service, error) {
	body, err := c.get(ctx, fmt.Sprintf("/services/tenant/%d", tenantID), "list_services")
	if err != nil {
		return nil, err
	}
	dtos, coerced := decodeList[serviceDTO](body, "")
	services := make([]domain.Service, len(dtos))
	for i := range dtos {
		services[i] = dtos[i].toDomain()
	}
	if coerced {
		return services, fmt.Errorf("%w: expected service list", ErrInvalidResponse)
	}
	return services, nil
}

// AvailableSlots fetches the backend-computed candidate slots for a tenant
// and date ("2006-01-02"). The gateway never computes availability itself.
func (c *Client) AvailableSlots(ctx context.Context, tenantID int64, date string) ([]domain.Slot, error) {
	q := url.Values{}
	q.Set("tenantId", fmt.Sprintf("%d", tenantID))
	q.Set("date", date)

	body, err := c.get(ctx, "/slots/available?"+q.Encode(), "available_slots")
	if err != nil {
		return nil, err
	}
	dtos, coerced := decodeList[slotDTO](body, "availableSlots")
	slots := make([]domain.Slot, len(dtos))
	for i := range dtos {
		slots[i] = dtos[i].toDomain()
	}
	if coerced {
		return slots, fmt.Errorf("%w: expected slot list", ErrInvalidResponse)
	}
	return slots, nil
}

// UpdateAppointmentStatus issues the status change for one appointment.
// Legality beyond the client-side transition table is decided by the backend.
func (c *Client) UpdateAppointmentStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error {
	payload := updateStatusRequest{Status: string(status)}
	_, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/appointments/%d", id), payload, "update_appointment_status")
	return err
}

// CreateCustomer creates a customer and returns the stored record.
func (c *Client) CreateCustomer(ctx context.Context, req CreateCustomerRequest) (*domain.Customer, error) {
	body, err := c.do(ctx, http.MethodPost, "/customers", req, "create_customer")
	if err != nil {
		return nil, err
	}
	var dto customerDTO
	if err := json.Unmarshal(body, &dto); err != nil {
		return nil, fmt.Errorf("%w: failed to decode customer: %v", ErrInvalidResponse, err)
	}
	customer := dto.toDomain()
	return &customer, nil
}

// CreateAppointment creates an appointment and returns the stored record.
func (c *Client) CreateAppointment(ctx context.Context, req CreateAppointmentRequest) (*domain.Appointment, error) {
	body, err := c.do(ctx, http.MethodPost, "/appointments", req, "create_appointment")
	if err != nil {
		return nil, err
	}
	var dto appointmentDTO
	if err := json.Unmarshal(body, &dto); err != nil {
		return nil, fmt.Errorf("%w: failed to decode appointment: %v", ErrInvalidResponse, err)
	}
	appt := dto.toDomain()
	return &appt, nil
}

func (c *Client) get(ctx context.Context, path, op string) ([]byte, error) {
	return c.do(ctx, http.MethodGet, path, nil, op)
}

func (c *Client) do(ctx context.Context, method, path string, payload interface{}, op string) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	if token, ok := authctx.Token(ctx); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe(op, "transport_error", start)
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.observe(op, "read_error", start)
		return nil, fmt.Errorf("%w: failed to read response: %v", ErrInternal, err)
	}

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		c.observe(op, "ok", start)
		return body, nil
	case http.StatusUnauthorized:
		c.observe(op, "unauthorized", start)
		return nil, ErrUnauthorized
	case http.StatusNotFound:
		c.observe(op, "not_found", start)
		return nil, ErrNotFound
	case http.StatusBadRequest:
		c.observe(op, "bad_request", start)
		return nil, fmt.Errorf("%w: %s", ErrBadRequest, errorMessage(body))
	default:
		// Unexpected status codes are upstream failures, not format errors.
		c.observe(op, "unexpected_status", start)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInternal, resp.StatusCode, string(body))
	}
}

func (c *Client) observe(op, outcome string, start time.Time) {
	c.metrics.ObserveUpstream(op, outcome, time.Since(start).Seconds())
}

func errorMessage(body []byte) string {
	var er ErrorResponse
	if err := json.Unmarshal(body, &er); err == nil && er.Message != "" {
		return er.Message
	}
	return string(body)
}

// decodeList decodes a JSON list, also accepting an envelope object whose
// wrapperField carries the list (the paginated tenants endpoint, the slot
// response). Any other shape coerces to an empty list with coerced=true so
// callers can surface a format error instead of a broken render.
func decodeList[T any](data []byte, wrapperField string) (items []T, coerced bool) {
	if err := json.Unmarshal(data, &items); err == nil {
		if items == nil {
			items = []T{}
		}
		return items, false
	}

	if wrapperField != "" {
		var envelope map[string]json.RawMessage
		if err := json.Unmarshal(data, &envelope); err == nil {
			if raw, ok := envelope[wrapperField]; ok {
				if err := json.Unmarshal(raw, &items); err == nil {
					if items == nil {
						items = []T{}
					}
					return items, false
				}
			}
		}
	}

	return []T{}, true
}

package bookingcore

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barberlink/admin-gateway/internal/domain"
	"github.com/barberlink/admin-gateway/pkg/authctx"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 5*time.Second, nopLogger{})
}

func TestListAppointments(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/appointments", r.URL.Path)
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id": 1, "tenantId": 3, "customerId": 2, "serviceId": 10,
			 "startTime": "2024-03-14T10:30:00", "totalPrice": 250.0,
			 "currency": "TRY", "status": "PENDING",
			 "service": {"name": "Saç Kesimi"}}
		]`))
	})

	appts, err := client.ListAppointments(context.Background())
	require.NoError(t, err)
	require.Len(t, appts, 1)

	a := appts[0]
	assert.Equal(t, int64(1), a.ID)
	assert.Equal(t, int64(3), a.TenantID)
	assert.Equal(t, domain.StatusPending, a.Status)
	assert.Equal(t, "2024-03-14", a.StartTime.DateString())
	assert.Equal(t, "10:30", a.StartTime.ClockString())
	require.NotNil(t, a.Service)
	assert.Equal(t, "Saç Kesimi", a.Service.Name)
}

func TestBearerTokenForwarding(t *testing.T) {
	var gotAuth string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`[]`))
	})

	ctx := authctx.WithToken(context.Background(), "secret-token")
	_, err := client.ListAppointments(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Bearer secret-token", gotAuth)

	t.Run("no token, no header", func(t *testing.T) {
		_, err := client.ListAppointments(context.Background())
		require.NoError(t, err)
		assert.Empty(t, gotAuth)
	})
}

func TestListTenantsAcceptsPageEnvelope(t *testing.T) {
	t.Run("flat list", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/admin/tenants", r.URL.Path)
			_, _ = w.Write([]byte(`[{"id": 3, "name": "Salon Güzel", "active": true}]`))
		})

		tenants, err := client.ListTenants(context.Background())
		require.NoError(t, err)
		require.Len(t, tenants, 1)
		assert.Equal(t, "Salon Güzel", tenants[0].Name)
	})

	t.Run("content envelope", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"content": [{"id": 3, "name": "Salon Güzel", "active": true}], "totalElements": 1}`))
		})

		tenants, err := client.ListTenants(context.Background())
		require.NoError(t, err)
		require.Len(t, tenants, 1)
		assert.Equal(t, int64(3), tenants[0].ID)
	})
}

func TestMalformedListCoercesToEmpty(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"object instead of list", `{"message": "oops"}`},
		{"scalar", `42`},
		{"invalid json", `{{{`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			})

			appts, err := client.ListAppointments(context.Background())
			assert.ErrorIs(t, err, ErrInvalidResponse)
			assert.NotNil(t, appts)
			assert.Empty(t, appts)
		})
	}

	t.Run("null coerces without error", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`null`))
		})

		appts, err := client.ListAppointments(context.Background())
		require.NoError(t, err)
		assert.Empty(t, appts)
	})
}

func TestStatusCodeMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{"unauthorized", http.StatusUnauthorized, ``, ErrUnauthorized},
		{"not found", http.StatusNotFound, ``, ErrNotFound},
		{"bad request", http.StatusBadRequest, `{"code": 400, "message": "geçersiz durum"}`, ErrBadRequest},
		{"server error", http.StatusInternalServerError, `boom`, ErrInternal},
		{"bad gateway", http.StatusBadGateway, ``, ErrInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := client.ListAppointments(context.Background())
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestBadRequestCarriesBackendMessage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"code": 400, "message": "durum geçişi reddedildi"}`))
	})

	err := client.UpdateAppointmentStatus(context.Background(), 1, domain.StatusConfirmed)
	require.ErrorIs(t, err, ErrBadRequest)
	assert.Contains(t, err.Error(), "durum geçişi reddedildi")
}

func TestUpdateAppointmentStatus(t *testing.T) {
	var gotMethod, gotPath string
	var gotBody updateStatusRequest

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = w.Write([]byte(`{}`))
	})

	err := client.UpdateAppointmentStatus(context.Background(), 42, domain.StatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/appointments/42", gotPath)
	assert.Equal(t, "CONFIRMED", gotBody.Status)
}

func TestListServicesPathIsTenantScoped(t *testing.T) {
	var gotPath string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`[{"id": 10, "tenantId": 3, "name": "Saç Kesimi", "durationMinutes": 30, "price": 250.0}]`))
	})

	services, err := client.ListServices(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "/services/tenant/3", gotPath)
	require.Len(t, services, 1)
	assert.Equal(t, 30, services[0].DurationMinutes)
}

func TestAvailableSlots(t *testing.T) {
	t.Run("envelope response", func(t *testing.T) {
		var gotQuery string
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.RawQuery
			_, _ = w.Write([]byte(`{"availableSlots": [
				{"startTime": "2024-03-14T10:00:00", "endTime": "2024-03-14T10:30:00"}
			]}`))
		})

		slots, err := client.AvailableSlots(context.Background(), 3, "2024-03-14")
		require.NoError(t, err)
		assert.Contains(t, gotQuery, "tenantId=3")
		assert.Contains(t, gotQuery, "date=2024-03-14")
		require.Len(t, slots, 1)
		assert.Equal(t, "10:00", slots[0].StartTime.ClockString())
	})

	t.Run("flat list response", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`[{"startTime": "2024-03-14T10:00:00", "endTime": "2024-03-14T10:30:00"}]`))
		})

		slots, err := client.AvailableSlots(context.Background(), 3, "2024-03-14")
		require.NoError(t, err)
		assert.Len(t, slots, 1)
	})
}

func TestCreateCustomer(t *testing.T) {
	var gotBody CreateCustomerRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/customers", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id": 42, "tenantId": 3, "name": "Ayşe Yılmaz", "phoneNumber": "+905551112233", "active": true}`))
	})

	customer, err := client.CreateCustomer(context.Background(), CreateCustomerRequest{
		Name:        "Ayşe Yılmaz",
		PhoneNumber: "+905551112233",
		TenantID:    3,
	})
	require.NoError(t, err)
	assert.Equal(t, "Ayşe Yılmaz", gotBody.Name)
	assert.Equal(t, int64(42), customer.ID)
	assert.True(t, customer.Active)
}

func TestCreateAppointment(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/appointments", r.URL.Path)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id": 77, "tenantId": 3, "customerId": 42, "serviceId": 10,
			"startTime": "2024-03-14T10:30:00", "status": "PENDING"}`))
	})

	appt, err := client.CreateAppointment(context.Background(), CreateAppointmentRequest{
		TenantID:   3,
		CustomerID: 42,
		ServiceID:  10,
		StartTime:  "2024-03-14T10:30:00",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(77), appt.ID)
	assert.Equal(t, domain.StatusPending, appt.Status)
}

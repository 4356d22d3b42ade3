package schedule

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/barberlink/admin-gateway/internal/calendar"
	"github.com/barberlink/admin-gateway/internal/domain"
	"github.com/barberlink/admin-gateway/internal/integrations/bookingcore"
	"github.com/barberlink/admin-gateway/internal/lookup"
	"github.com/barberlink/admin-gateway/internal/service/schedule/models"
	"github.com/barberlink/admin-gateway/pkg/metrics"
)

// Shown as a dismissible warning when a backend collection was coerced.
const msgMalformedCollection = "sunucudan beklenmeyen veri biçimi alındı"

// Service is the appointment view model: it owns the in-memory working set
// and derives the list/week/day views from it. The working set is replaced
// wholesale on every load; a failed load keeps the last good snapshot.
//
// Concurrent loads are last-write-wins. Out-of-order completions are an
// accepted limitation for an admin dashboard; no request sequencing is done.
type Service struct {
	client  BookingClient
	logger  Logger
	clock   calendar.TimeProvider
	metrics *metrics.Metrics

	mu         sync.RWMutex
	workingSet *domain.WorkingSet
	index      *lookup.Index
	lastScope  *int64 // tenant scope of the last load, reused by refreshes
}

// NewService creates the schedule view-model service.
func NewService(client BookingClient, logger Logger) *Service {
	return &Service{
		client: client,
		logger: logger,
		clock:  calendar.RealTimeProvider{},
	}
}

// WithClock replaces the wall clock.
func (s *Service) WithClock(clock calendar.TimeProvider) *Service {
	s.clock = clock
	return s
}

// WithMetrics enables working-set gauges.
func (s *Service) WithMetrics(m *metrics.Metrics) *Service {
	s.metrics = m
	return s
}

// Load fetches appointments, customers, tenants and services and replaces
// the working set atomically. tenantID narrows the service lookup scope;
// when nil, services are fetched for the first listed tenant. That leaves
// other tenants' service names unresolved under the "all tenants" scope,
// which matches the backend contract: there is no tenant-agnostic catalog.
//
// A fetch failure keeps the previous working set and returns ErrLoadFailed.
// A malformed collection is coerced to empty, the set is still replaced, and
// ErrMalformedData is returned so the caller can surface a format error.
func (s *Service) Load(ctx context.Context, tenantID *int64) error {
	var formatErr error

	appointments, err := s.client.ListAppointments(ctx)
	if err != nil {
		if !errors.Is(err, bookingcore.ErrInvalidResponse) {
			return s.loadError(ctx, "appointments", err)
		}
		s.logger.Warn("Load: appointments collection malformed, coerced to empty: %v", err)
		formatErr = err
	}

	customers, err := s.client.ListCustomers(ctx)
	if err != nil {
		if !errors.Is(err, bookingcore.ErrInvalidResponse) {
			return s.loadError(ctx, "customers", err)
		}
		s.logger.Warn("Load: customers collection malformed, coerced to empty: %v", err)
		formatErr = err
	}

	tenants, err := s.client.ListTenants(ctx)
	if err != nil {
		if !errors.Is(err, bookingcore.ErrInvalidResponse) {
			return s.loadError(ctx, "tenants", err)
		}
		s.logger.Warn("Load: tenants collection malformed, coerced to empty: %v", err)
		formatErr = err
	}

	var services []domain.Service
	serviceScope := tenantID
	if serviceScope == nil && len(tenants) > 0 {
		serviceScope = &tenants[0].ID
	}
	if serviceScope != nil {
		services, err = s.client.ListServices(ctx, *serviceScope)
		if err != nil {
			if !errors.Is(err, bookingcore.ErrInvalidResponse) {
				return s.loadError(ctx, "services", err)
			}
			s.logger.Warn("Load: services collection malformed, coerced to empty: %v", err)
			formatErr = err
		}
	}

	ws := &domain.WorkingSet{
		Appointments: appointments,
		Customers:    customers,
		Tenants:      tenants,
		Services:     services,
		LoadedAt:     s.clock.Now(),
	}

	s.mu.Lock()
	s.workingSet = ws
	s.index = lookup.NewIndex(ws)
	s.lastScope = tenantID
	s.mu.Unlock()

	s.metrics.SetWorkingSetSize("appointments", len(appointments))
	s.metrics.SetWorkingSetSize("customers", len(customers))
	s.metrics.SetWorkingSetSize("tenants", len(tenants))
	s.metrics.SetWorkingSetSize("services", len(services))

	s.logger.Info("Load: working set replaced (appointments=%d, customers=%d, tenants=%d, services=%d)",
		len(appointments), len(customers), len(tenants), len(services))

	if formatErr != nil {
		return fmt.Errorf("%w: %v", ErrMalformedData, formatErr)
	}
	return nil
}

func (s *Service) loadError(ctx context.Context, collection string, err error) error {
	s.logger.Error("Load: failed to fetch %s, keeping previous working set: %v", collection, err)
	if errors.Is(err, bookingcore.ErrUnauthorized) {
		return fmt.Errorf("%w: %s", ErrUnauthorized, collection)
	}
	return fmt.Errorf("%w: %s: %v", ErrLoadFailed, collection, err)
}

// snapshot returns the current working set and index, loading on first use.
func (s *Service) snapshot(ctx context.Context) (*domain.WorkingSet, *lookup.Index, error) {
	s.mu.RLock()
	ws, ix := s.workingSet, s.index
	s.mu.RUnlock()
	if ws != nil {
		return ws, ix, nil
	}

	if err := s.Load(ctx, nil); err != nil && !errors.Is(err, ErrMalformedData) {
		return nil, nil, err
	}

	s.mu.RLock()
	ws, ix = s.workingSet, s.index
	s.mu.RUnlock()
	if ws == nil {
		return nil, nil, ErrLoadFailed
	}
	return ws, ix, nil
}

// ensureScope reloads when the requested tenant scope differs from the one
// the working set was loaded for, or when a refresh is forced.
func (s *Service) ensureScope(ctx context.Context, tenantID *int64, refresh bool) error {
	s.mu.RLock()
	loaded := s.workingSet != nil
	sameScope := equalScope(s.lastScope, tenantID)
	s.mu.RUnlock()

	if loaded && sameScope && !refresh {
		return nil
	}
	return s.Load(ctx, tenantID)
}

func equalScope(a, b *int64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// ListView returns the filtered appointment list plus the dashboard stats.
// Filtering preserves the backend's order; stats count the unfiltered set.
func (s *Service) ListView(ctx context.Context, q *models.ScheduleQuery) (*models.ListViewResponse, error) {
	filter, err := q.ToDomainFilter()
	if err != nil {
		s.logger.Warn("ListView: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	scope, err := q.TenantScope()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	var warning string
	if err := s.ensureScope(ctx, scope, q.Refresh); err != nil {
		if !errors.Is(err, ErrMalformedData) {
			return nil, err
		}
		warning = msgMalformedCollection
	}

	ws, ix, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	filtered := calendar.FilterAppointments(ws.Appointments, filter)
	s.logger.Info("ListView: %d of %d appointments match", len(filtered), len(ws.Appointments))

	return &models.ListViewResponse{
		Appointments: models.FromDomainAppointments(filtered, ix),
		Stats:        models.StatsFor(ws.Appointments),
		Warning:      warning,
	}, nil
}

// WeekView returns seven day buckets for the week containing the reference
// date, Sunday first. Direction shifts the reference date by one week.
func (s *Service) WeekView(ctx context.Context, q *models.CalendarQuery) (*models.WeekViewResponse, error) {
	ref, err := s.referenceDate(q, domain.ViewModeWeek)
	if err != nil {
		return nil, err
	}

	ws, ix, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	today := s.clock.Now()
	days := make([]models.DayBucket, 0, calendar.DaysPerWeek)
	for _, day := range calendar.WeekDatesFor(ref) {
		onDay := calendar.AppointmentsOnDate(ws.Appointments, day)
		days = append(days, models.DayBucket{
			Date:         day.Format(domain.DateFormat),
			Weekday:      lookup.WeekdayShort(day),
			IsToday:      calendar.SameDay(day, today),
			Appointments: models.FromDomainAppointments(onDay, ix),
		})
	}

	return &models.WeekViewResponse{
		ReferenceDate: ref.Format(domain.DateFormat),
		Days:          days,
	}, nil
}

// DayView returns the appointments of one day, sorted ascending by start
// time. Direction shifts the reference date by one day.
func (s *Service) DayView(ctx context.Context, q *models.CalendarQuery) (*models.DayViewResponse, error) {
	ref, err := s.referenceDate(q, domain.ViewModeDay)
	if err != nil {
		return nil, err
	}

	ws, ix, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	onDay := calendar.SortByStartTime(calendar.AppointmentsOnDate(ws.Appointments, ref))

	return &models.DayViewResponse{
		Date:         ref.Format(domain.DateFormat),
		Appointments: models.FromDomainAppointments(onDay, ix),
	}, nil
}

// referenceDate resolves the navigation state of a calendar query: the given
// date (or today when absent), shifted one step when a direction is set.
func (s *Service) referenceDate(q *models.CalendarQuery, mode domain.ViewMode) (time.Time, error) {
	ref := calendar.ResetToToday(s.clock)
	if q.Date != "" {
		parsed, err := time.Parse(domain.DateFormat, q.Date)
		if err != nil {
			s.logger.Warn("referenceDate: invalid date %q", q.Date)
			return time.Time{}, fmt.Errorf("%w: invalid date %q", ErrInvalidInput, q.Date)
		}
		ref = parsed
	}
	if q.Direction != 0 {
		if q.Direction != -1 && q.Direction != 1 {
			return time.Time{}, fmt.Errorf("%w: direction must be -1 or 1", ErrInvalidInput)
		}
		ref = calendar.Navigate(ref, mode, q.Direction)
	}
	return ref, nil
}

// ChangeStatus applies a status transition. Pairs outside the transition
// table are rejected before any network call. On success the working set is
// refreshed; the local copy is never mutated speculatively, the backend stays
// the source of truth.
func (s *Service) ChangeStatus(ctx context.Context, appointmentID int64, target string) error {
	status := domain.AppointmentStatus(target)
	if !status.IsValid() {
		s.logger.Warn("ChangeStatus: invalid status %q for appointment id=%d", target, appointmentID)
		return ErrInvalidStatus
	}

	ws, _, err := s.snapshot(ctx)
	if err != nil {
		return err
	}

	var current *domain.Appointment
	for i := range ws.Appointments {
		if ws.Appointments[i].ID == appointmentID {
			current = &ws.Appointments[i]
			break
		}
	}
	if current == nil {
		s.logger.Warn("ChangeStatus: appointment id=%d not in working set", appointmentID)
		return ErrAppointmentNotFound
	}

	if !domain.CanTransition(current.Status, status) {
		s.logger.Warn("ChangeStatus: transition %s -> %s not allowed for appointment id=%d",
			current.Status, status, appointmentID)
		return fmt.Errorf("%w: %s -> %s", ErrTransitionNotAllowed, current.Status, status)
	}

	if err := s.client.UpdateAppointmentStatus(ctx, appointmentID, status); err != nil {
		s.logger.Error("ChangeStatus: update failed for appointment id=%d: %v", appointmentID, err)
		switch {
		case errors.Is(err, bookingcore.ErrNotFound):
			return ErrAppointmentNotFound
		case errors.Is(err, bookingcore.ErrUnauthorized):
			return ErrUnauthorized
		case errors.Is(err, bookingcore.ErrBadRequest):
			return fmt.Errorf("%w: rejected by backend: %v", ErrTransitionNotAllowed, err)
		default:
			return fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}

	s.logger.Info("ChangeStatus: appointment id=%d -> %s", appointmentID, status)

	// Refetch instead of mutating locally; a failed refresh keeps the last
	// good set and the change is already durable upstream.
	s.mu.RLock()
	scope := s.lastScope
	s.mu.RUnlock()
	if err := s.Load(ctx, scope); err != nil && !errors.Is(err, ErrMalformedData) {
		s.logger.Warn("ChangeStatus: refresh after update failed: %v", err)
	}

	return nil
}

package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/barberlink/admin-gateway/internal/api/handlers"
	"github.com/barberlink/admin-gateway/internal/domain"
	"github.com/barberlink/admin-gateway/internal/integrations/bookingcore"
)

const (
	msgInvalidTenantID = "geçersiz kuaför numarası"
	msgInvalidDate     = "geçersiz tarih"
	msgUnauthorized    = "oturum süresi doldu"
	msgSlotsFailed     = "müsait saatler yüklenemedi"
	msgMalformedSlots  = "sunucudan beklenmeyen veri biçimi alındı"
)

type Handler struct {
	client BookingClient
	logger Logger
}

func NewHandler(client BookingClient, logger Logger) *Handler {
	return &Handler{
		client: client,
		logger: logger,
	}
}

// Handle GET /api/v1/slots/available
// Query params: tenantId, date (both required)
//
// Availability is computed by the booking backend; this endpoint only adapts
// the response for the booking form.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	tenantID, err := strconv.ParseInt(query.Get("tenantId"), 10, 64)
	if err != nil || tenantID <= 0 {
		h.logger.Warn("GET /slots/available - Invalid tenant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTenantID)
		return
	}

	date := query.Get("date")
	if _, err := time.Parse(domain.DateFormat, date); err != nil {
		h.logger.Warn("GET /slots/available - Invalid date %q: %v", date, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	var warning string
	slots, err := h.client.AvailableSlots(r.Context(), tenantID, date)
	if err != nil {
		switch {
		case errors.Is(err, bookingcore.ErrInvalidResponse):
			// Coerced to an empty list; the form shows no slots plus a warning.
			h.logger.Warn("GET /slots/available - Malformed slot list: tenant_id=%d, date=%s", tenantID, date)
			warning = msgMalformedSlots

		case errors.Is(err, bookingcore.ErrUnauthorized):
			h.logger.Warn("GET /slots/available - Unauthorized: tenant_id=%d", tenantID)
			handlers.RespondUnauthorized(w, msgUnauthorized)
			return

		default:
			h.logger.Error("GET /slots/available - Failed: tenant_id=%d, date=%s, error=%v",
				tenantID, date, err)
			handlers.RespondBadGateway(w, msgSlotsFailed)
			return
		}
	}

	h.logger.Info("GET /slots/available - %d slots: tenant_id=%d, date=%s", len(slots), tenantID, date)
	handlers.RespondJSON(w, http.StatusOK, SlotsResponse{
		Slots:   FromDomainSlots(slots),
		Warning: warning,
	})
}

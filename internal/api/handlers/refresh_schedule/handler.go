package refresh_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/barberlink/admin-gateway/internal/api/handlers"
	"github.com/barberlink/admin-gateway/internal/service/schedule"
)

const (
	msgInvalidTenantID = "geçersiz kuaför numarası"
	msgLoadFailed      = "randevular yüklenemedi"
	msgUnauthorized    = "oturum süresi doldu"
	msgMalformedData   = "sunucudan beklenmeyen veri biçimi alındı"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/schedule/refresh
// Query params: tenant (optional; narrows the service lookup scope)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var tenantID *int64
	if tenantStr := r.URL.Query().Get("tenant"); tenantStr != "" && tenantStr != "all" {
		id, err := strconv.ParseInt(tenantStr, 10, 64)
		if err != nil {
			h.logger.Warn("POST /schedule/refresh - Invalid tenant ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTenantID)
			return
		}
		tenantID = &id
	}

	var warning string
	err := h.service.Load(r.Context(), tenantID)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrMalformedData):
			// The reload took effect with coerced collections; report the
			// format problem the same way the list view does.
			h.logger.Warn("POST /schedule/refresh - Malformed collection: %v", err)
			warning = msgMalformedData

		case errors.Is(err, schedule.ErrUnauthorized):
			h.logger.Warn("POST /schedule/refresh - Unauthorized")
			handlers.RespondUnauthorized(w, msgUnauthorized)
			return

		case errors.Is(err, schedule.ErrLoadFailed):
			h.logger.Error("POST /schedule/refresh - Load failed: %v", err)
			handlers.RespondBadGateway(w, msgLoadFailed)
			return

		default:
			h.logger.Error("POST /schedule/refresh - Failed: %v", err)
			handlers.RespondInternalError(w)
			return
		}
	}

	h.logger.Info("POST /schedule/refresh - Working set reloaded")
	handlers.RespondJSON(w, http.StatusOK, RefreshResponse{Warning: warning})
}

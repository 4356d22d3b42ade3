package get_schedule

import (
	"errors"
	"net/http"

	"github.com/barberlink/admin-gateway/internal/api/handlers"
	"github.com/barberlink/admin-gateway/internal/service/schedule"
)

const (
	msgInvalidParams = "geçersiz istek parametreleri"
	msgLoadFailed    = "randevular yüklenemedi"
	msgUnauthorized  = "oturum süresi doldu"
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

// Handle GET /api/v1/schedule
// Query params: status, tenant, date, refresh (all optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	serviceQuery, err := ToServiceQuery(
		query.Get("status"),
		query.Get("tenant"),
		query.Get("date"),
		query.Get("refresh"),
	)
	if err != nil {
		h.logger.Warn("GET /schedule - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.ListView(r.Context(), serviceQuery)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("GET /schedule - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		case errors.Is(err, schedule.ErrUnauthorized):
			h.logger.Warn("GET /schedule - Unauthorized")
			handlers.RespondUnauthorized(w, msgUnauthorized)

		case errors.Is(err, schedule.ErrLoadFailed):
			h.logger.Error("GET /schedule - Load failed: %v", err)
			handlers.RespondBadGateway(w, msgLoadFailed)

		default:
			h.logger.Error("GET /schedule - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /schedule - %d appointments returned", len(result.Appointments))
	handlers.RespondJSON(w, http.StatusOK, result)
}

package get_week_view

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/barberlink/admin-gateway/internal/api/handlers"
	"github.com/barberlink/admin-gateway/internal/service/schedule"
	"github.com/barberlink/admin-gateway/internal/service/schedule/models"
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

// Handle GET /api/v1/schedule/week
// Query params: date (reference date, default today), direction (-1|1, optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	calendarQuery := &models.CalendarQuery{Date: query.Get("date")}
	if dirStr := query.Get("direction"); dirStr != "" {
		dir, err := strconv.Atoi(dirStr)
		if err != nil {
			h.logger.Warn("GET /schedule/week - Invalid direction: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)
			return
		}
		calendarQuery.Direction = dir
	}

	result, err := h.service.WeekView(r.Context(), calendarQuery)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("GET /schedule/week - Invalid parameters: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		case errors.Is(err, schedule.ErrUnauthorized):
			h.logger.Warn("GET /schedule/week - Unauthorized")
			handlers.RespondUnauthorized(w, msgUnauthorized)

		case errors.Is(err, schedule.ErrLoadFailed):
			h.logger.Error("GET /schedule/week - Load failed: %v", err)
			handlers.RespondBadGateway(w, msgLoadFailed)

		default:
			h.logger.Error("GET /schedule/week - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /schedule/week - Week of %s returned", result.ReferenceDate)
	handlers.RespondJSON(w, http.StatusOK, result)
}

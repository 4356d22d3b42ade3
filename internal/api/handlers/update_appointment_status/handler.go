package update_appointment_status

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/barberlink/admin-gateway/internal/api/handlers"
	"github.com/barberlink/admin-gateway/internal/service/schedule"
)

const (
	msgInvalidAppointmentID = "geçersiz randevu numarası"
	msgInvalidRequestBody   = "geçersiz istek gövdesi"
	msgInvalidStatus        = "geçersiz randevu durumu"
	msgNotFound             = "randevu bulunamadı"
	msgTransitionNotAllowed = "bu durum geçişine izin verilmiyor"
	msgUnauthorized         = "oturum süresi doldu"
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

// Handle PUT /api/v1/appointments/{appointmentId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	appointmentIDStr := vars["appointmentId"]

	appointmentID, err := strconv.ParseInt(appointmentIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /appointments/{id}/status - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	var req UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /appointments/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	err = h.service.ChangeStatus(r.Context(), appointmentID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidStatus):
			h.logger.Warn("PUT /appointments/{id}/status - Invalid status %q: appointment_id=%d",
				req.Status, appointmentID)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, schedule.ErrAppointmentNotFound):
			h.logger.Warn("PUT /appointments/{id}/status - Not found: appointment_id=%d", appointmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, schedule.ErrTransitionNotAllowed):
			h.logger.Warn("PUT /appointments/{id}/status - Transition not allowed: appointment_id=%d, target=%s",
				appointmentID, req.Status)
			handlers.RespondBadRequest(w, msgTransitionNotAllowed)

		case errors.Is(err, schedule.ErrUnauthorized):
			h.logger.Warn("PUT /appointments/{id}/status - Unauthorized: appointment_id=%d", appointmentID)
			handlers.RespondUnauthorized(w, msgUnauthorized)

		default:
			h.logger.Error("PUT /appointments/{id}/status - Failed: appointment_id=%d, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /appointments/{id}/status - Updated: appointment_id=%d, status=%s",
		appointmentID, req.Status)
	handlers.RespondJSON(w, http.StatusOK, nil)
}

package book_appointment

import (
	"errors"
	"net/http"

	"github.com/barberlink/admin-gateway/internal/api/handlers"
	uc "github.com/barberlink/admin-gateway/internal/usecase/book_appointment"
)

const (
	msgInvalidRequestBody = "geçersiz istek gövdesi"
	msgValidationFailed   = "zorunlu alanlar eksik veya hatalı"
	msgTenantNotBookable  = "seçilen kuaför için randevu alınamaz"
	msgServiceNotFound    = "seçilen hizmet bulunamadı"
	msgCustomerFailed     = "müşteri oluşturulamadı"
	msgAppointmentFailed  = "randevu oluşturulamadı"
	msgUnauthorized       = "oturum süresi doldu"
)

type Handler struct {
	usecase BookAppointmentUseCase
	logger  Logger
}

func NewHandler(usecase BookAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		usecase: usecase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req BookAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.usecase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, uc.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgValidationFailed)

		case errors.Is(err, uc.ErrTenantNotBookable):
			h.logger.Warn("POST /appointments - Tenant not bookable: tenant_id=%d", req.TenantID)
			handlers.RespondBadRequest(w, msgTenantNotBookable)

		case errors.Is(err, uc.ErrServiceNotFound):
			h.logger.Warn("POST /appointments - Service not found: tenant_id=%d, service_id=%d",
				req.TenantID, req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, uc.ErrCustomerCreateFailed):
			h.logger.Error("POST /appointments - Customer creation failed: %v", err)
			handlers.RespondBadGateway(w, msgCustomerFailed)

		case errors.Is(err, uc.ErrAppointmentCreateFailed):
			h.logger.Error("POST /appointments - Appointment creation failed: %v", err)
			handlers.RespondBadGateway(w, msgAppointmentFailed)

		case errors.Is(err, uc.ErrUnauthorized):
			h.logger.Warn("POST /appointments - Unauthorized")
			handlers.RespondUnauthorized(w, msgUnauthorized)

		default:
			h.logger.Error("POST /appointments - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Created: appointment_id=%d, customer_id=%d",
		result.AppointmentID, result.CustomerID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

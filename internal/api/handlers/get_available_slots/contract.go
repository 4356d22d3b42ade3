package get_available_slots

import (
	"context"

	"github.com/barberlink/admin-gateway/internal/domain"
)

type BookingClient interface {
	AvailableSlots(ctx context.Context, tenantID int64, date string) ([]domain.Slot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

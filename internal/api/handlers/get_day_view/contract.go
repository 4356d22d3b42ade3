package get_day_view

import (
	"context"

	"github.com/barberlink/admin-gateway/internal/service/schedule/models"
)

type ScheduleService interface {
	DayView(ctx context.Context, q *models.CalendarQuery) (*models.DayViewResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

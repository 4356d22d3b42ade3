package get_week_view

import (
	"context"

	"github.com/barberlink/admin-gateway/internal/service/schedule/models"
)

type ScheduleService interface {
	WeekView(ctx context.Context, q *models.CalendarQuery) (*models.WeekViewResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

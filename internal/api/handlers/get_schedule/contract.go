package get_schedule

import (
	"context"

	"github.com/barberlink/admin-gateway/internal/service/schedule/models"
)

type ScheduleService interface {
	ListView(ctx context.Context, q *models.ScheduleQuery) (*models.ListViewResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

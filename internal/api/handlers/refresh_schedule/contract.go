package refresh_schedule

import "context"

type ScheduleService interface {
	Load(ctx context.Context, tenantID *int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package update_appointment_status

import "context"

type ScheduleService interface {
	ChangeStatus(ctx context.Context, appointmentID int64, target string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

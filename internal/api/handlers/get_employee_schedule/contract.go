package get_employee_schedule

import (
	"context"

	"github.com/m04kA/Salon-BookingService/internal/service/schedules/models"
)

type ScheduleService interface {
	GetByEmployee(ctx context.Context, employeeID int64) (*models.WeeklyScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

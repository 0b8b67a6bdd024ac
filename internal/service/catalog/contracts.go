package catalog

import (
	"context"

	"github.com/m04kA/Salon-BookingService/internal/domain"
)

// EmployeeRepository интерфейс репозитория мастеров
type EmployeeRepository interface {
	List(ctx context.Context, activeOnly bool) ([]*domain.Employee, error)
}

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	List(ctx context.Context, activeOnly bool) ([]*domain.Service, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

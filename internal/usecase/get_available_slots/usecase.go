package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	employeeRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/employee"
	scheduleRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/schedule"
	serviceRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/service"
	"github.com/m04kA/Salon-BookingService/internal/scheduling"
)

// UseCase use case для получения доступных слотов мастера
type UseCase struct {
	appointmentRepo AppointmentRepository
	scheduleRepo    ScheduleRepository
	employeeRepo    EmployeeRepository
	serviceRepo     ServiceRepository
	slotOptions     scheduling.Options
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	scheduleRepo ScheduleRepository,
	employeeRepo EmployeeRepository,
	serviceRepo ServiceRepository,
	slotOptions scheduling.Options,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		scheduleRepo:    scheduleRepo,
		employeeRepo:    employeeRepo,
		serviceRepo:     serviceRepo,
		slotOptions:     slotOptions,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case получения доступных слотов.
// Выходной день, прошедшая дата и полностью занятый день - не ошибки,
// а пустой список слотов.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: employee=%d, service=%d, date=%s",
		req.EmployeeID, req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Проверяем существование мастера
	employee, err := uc.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, employeeRepo.ErrEmployeeNotFound) {
			uc.logger.Warn("GetAvailableSlots: employee id=%d not found", req.EmployeeID)
			return nil, ErrEmployeeNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get employee id=%d: %v", req.EmployeeID, err)
		return nil, fmt.Errorf("%w: failed to get employee: %v", ErrInternal, err)
	}
	if !employee.IsActive {
		uc.logger.Warn("GetAvailableSlots: employee id=%d is inactive", req.EmployeeID)
		return nil, ErrEmployeeNotFound
	}

	// 4. Получаем услугу - длительность слота определяется услугой
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	if !service.IsActive {
		uc.logger.Warn("GetAvailableSlots: service id=%d is inactive", req.ServiceID)
		return nil, ErrServiceNotFound
	}
	if !service.HasValidDuration() {
		uc.logger.Error("GetAvailableSlots: service id=%d has invalid duration %d",
			req.ServiceID, service.DurationMinutes)
		return nil, ErrInvalidServiceDuration
	}

	// 5. Получаем недельное расписание мастера.
	// Если расписание не задано, используем дефолтное (пн-пт 09:00-17:00)
	schedule, err := uc.scheduleRepo.GetByEmployeeID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			schedule = domain.DefaultWeeklySchedule(req.EmployeeID)
			uc.logger.Info("GetAvailableSlots: using default schedule for employee=%d", req.EmployeeID)
		} else {
			uc.logger.Error("GetAvailableSlots: failed to get schedule for employee=%d: %v", req.EmployeeID, err)
			return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
		}
	}

	// 6. Получаем активные записи мастера на эту дату
	filter := domain.EmployeeAppointmentsFilter{
		EmployeeID:      req.EmployeeID,
		StartDate:       &req.Date,
		EndDate:         &req.Date,
		IncludeInactive: false,
	}

	appointments, err := uc.appointmentRepo.GetByEmployeeWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 7. Вычисляем доступные слоты
	slots, err := scheduling.ComputeAvailableSlots(schedule, req.Date, service.DurationMinutes, appointments, now, uc.slotOptions)
	if err != nil {
		if errors.Is(err, scheduling.ErrInvalidDuration) {
			return nil, ErrInvalidServiceDuration
		}
		uc.logger.Error("GetAvailableSlots: failed to compute slots: %v", err)
		return nil, fmt.Errorf("%w: failed to compute slots: %v", ErrInternal, err)
	}

	uc.logger.Info("GetAvailableSlots: employee=%d, date=%s, found %d slots",
		req.EmployeeID, req.Date.Format(domain.DateFormat), len(slots))

	return &Response{
		EmployeeID:      req.EmployeeID,
		ServiceID:       req.ServiceID,
		Date:            req.Date,
		DurationMinutes: service.DurationMinutes,
		Slots:           slots,
	}, nil
}

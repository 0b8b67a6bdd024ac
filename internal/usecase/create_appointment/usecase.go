package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	appointmentRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/appointment"
	clientRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/client"
	employeeRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/employee"
	scheduleRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/schedule"
	serviceRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/service"
	"github.com/m04kA/Salon-BookingService/internal/scheduling"
)

// UseCase use case для создания записи к мастеру
type UseCase struct {
	appointmentRepo AppointmentRepository
	scheduleRepo    ScheduleRepository
	employeeRepo    EmployeeRepository
	serviceRepo     ServiceRepository
	clientRepo      ClientRepository
	txManager       TransactionManager
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
	clientRepo ClientRepository,
	txManager TransactionManager,
	slotOptions scheduling.Options,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		scheduleRepo:    scheduleRepo,
		employeeRepo:    employeeRepo,
		serviceRepo:     serviceRepo,
		clientRepo:      clientRepo,
		txManager:       txManager,
		slotOptions:     slotOptions,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания записи.
// Проверка слота и вставка выполняются в одной сериализуемой транзакции:
// записи мастера на дату читаются заново с блокировкой FOR UPDATE, поэтому
// из двух конкурентных запросов на один слот зафиксируется ровно один.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: client=%d, employee=%d, service=%d, date=%s, time=%s",
		req.ClientID, req.EmployeeID, req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Проверяем существование мастера
	employee, err := uc.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, employeeRepo.ErrEmployeeNotFound) {
			uc.logger.Warn("CreateAppointment: employee id=%d not found", req.EmployeeID)
			return nil, ErrEmployeeNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get employee id=%d: %v", req.EmployeeID, err)
		return nil, fmt.Errorf("%w: failed to get employee: %v", ErrInternal, err)
	}
	if !employee.IsActive {
		uc.logger.Warn("CreateAppointment: employee id=%d is inactive", req.EmployeeID)
		return nil, ErrEmployeeNotFound
	}

	// 4. Получаем услугу - длительность записи берется из услуги
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateAppointment: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	if !service.IsActive {
		uc.logger.Warn("CreateAppointment: service id=%d is inactive", req.ServiceID)
		return nil, ErrServiceNotFound
	}
	if !service.HasValidDuration() {
		uc.logger.Error("CreateAppointment: service id=%d has invalid duration %d",
			req.ServiceID, service.DurationMinutes)
		return nil, ErrInvalidServiceDuration
	}

	// 5. Проверяем существование клиента
	if _, err := uc.clientRepo.GetByID(ctx, req.ClientID); err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			uc.logger.Warn("CreateAppointment: client id=%d not found", req.ClientID)
			return nil, ErrClientNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get client id=%d: %v", req.ClientID, err)
		return nil, fmt.Errorf("%w: failed to get client: %v", ErrInternal, err)
	}

	// Переменная для хранения результата
	var result *domain.Appointment

	// 6. Проверка слота и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Получаем недельное расписание мастера
		schedule, err := uc.scheduleRepo.GetByEmployeeID(txCtx, req.EmployeeID)
		if err != nil {
			if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
				schedule = domain.DefaultWeeklySchedule(req.EmployeeID)
				uc.logger.Info("CreateAppointment: using default schedule for employee=%d", req.EmployeeID)
			} else {
				uc.logger.Error("CreateAppointment: failed to get schedule for employee=%d: %v", req.EmployeeID, err)
				return fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
			}
		}

		// 6.2. Читаем активные записи мастера на эту дату заново,
		// с блокировкой FOR UPDATE внутри транзакции
		filter := domain.EmployeeAppointmentsFilter{
			EmployeeID:      req.EmployeeID,
			StartDate:       &req.Date,
			EndDate:         &req.Date,
			IncludeInactive: false,
		}

		appointments, err := uc.appointmentRepo.GetByEmployeeWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		// 6.3. Проверяем запрошенный слот против расписания и занятых интервалов
		endTime, err := scheduling.ValidateSlot(schedule, req.Date, req.StartTime,
			service.DurationMinutes, appointments, now, uc.slotOptions)
		if err != nil {
			uc.logger.Warn("CreateAppointment: slot validation failed: %v", err)
			return err
		}

		// 6.4. Создаем запись с денормализацией данных услуги
		appointment := &domain.Appointment{
			ClientID:        req.ClientID,
			EmployeeID:      req.EmployeeID,
			ServiceID:       req.ServiceID,
			Date:            req.Date,
			StartTime:       req.StartTime,
			EndTime:         endTime,
			DurationMinutes: service.DurationMinutes,
			Status:          domain.StatusPending,
			ServiceName:     service.Name,
			ServicePrice:    service.Price,
			Comment:         req.Comment,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appointment)
		if err != nil {
			// Уникальный индекс - последний рубеж защиты от двойного бронирования
			if errors.Is(err, appointmentRepo.ErrDuplicateSlot) {
				uc.logger.Warn("CreateAppointment: duplicate slot employee=%d, date=%s, time=%s",
					req.EmployeeID, req.Date.Format(domain.DateFormat), req.StartTime)
				return scheduling.ErrTimeConflict
			}
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: created appointment id=%d, client=%d, employee=%d, date=%s, time=%s-%s",
		result.ID, result.ClientID, result.EmployeeID,
		result.Date.Format(domain.DateFormat), result.StartTime, result.EndTime)

	return &Response{
		ID:              result.ID,
		ClientID:        result.ClientID,
		EmployeeID:      result.EmployeeID,
		ServiceID:       result.ServiceID,
		Date:            result.Date,
		StartTime:       result.StartTime,
		EndTime:         result.EndTime,
		DurationMinutes: result.DurationMinutes,
		Status:          string(result.Status),
		ServiceName:     result.ServiceName,
		ServicePrice:    result.ServicePrice,
		Comment:         result.Comment,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}

package schedules

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	employeeRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/employee"
	scheduleRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/schedule"
	"github.com/m04kA/Salon-BookingService/internal/service/schedules/models"
)

// Service сервис для работы с расписаниями мастеров
type Service struct {
	scheduleRepo ScheduleRepository
	employeeRepo EmployeeRepository
	txManager    TransactionManager
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписаний
func NewService(
	scheduleRepo ScheduleRepository,
	employeeRepo EmployeeRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		employeeRepo: employeeRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// GetByEmployee получает недельное расписание мастера.
// Если расписание не сохранено, возвращается дефолтное (пн-пт 09:00-17:00).
func (s *Service) GetByEmployee(ctx context.Context, employeeID int64) (*models.WeeklyScheduleResponse, error) {
	s.logger.Info("GetByEmployee: fetching schedule for employee=%d", employeeID)

	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		if errors.Is(err, employeeRepo.ErrEmployeeNotFound) {
			s.logger.Warn("GetByEmployee: employee id=%d not found", employeeID)
			return nil, ErrEmployeeNotFound
		}
		s.logger.Error("GetByEmployee: failed to get employee id=%d: %v", employeeID, err)
		return nil, fmt.Errorf("%w: GetByEmployee - failed to get employee: %v", ErrInternal, err)
	}

	schedule, err := s.scheduleRepo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			s.logger.Info("GetByEmployee: no stored schedule for employee=%d, using default", employeeID)
			return models.FromDomainSchedule(domain.DefaultWeeklySchedule(employeeID)), nil
		}
		s.logger.Error("GetByEmployee: repository error for employee=%d: %v", employeeID, err)
		return nil, fmt.Errorf("%w: GetByEmployee - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSchedule(schedule), nil
}

// Update полностью заменяет недельное расписание мастера.
// Замена выполняется в транзакции: старые строки удаляются и вставляются
// новые, чтобы читатели не увидели частично обновленную неделю.
func (s *Service) Update(ctx context.Context, employeeID int64, req *models.UpdateScheduleRequest) (*models.WeeklyScheduleResponse, error) {
	s.logger.Info("Update: replacing schedule for employee=%d by user=%d", employeeID, req.UserID)

	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		if errors.Is(err, employeeRepo.ErrEmployeeNotFound) {
			s.logger.Warn("Update: employee id=%d not found", employeeID)
			return nil, ErrEmployeeNotFound
		}
		s.logger.Error("Update: failed to get employee id=%d: %v", employeeID, err)
		return nil, fmt.Errorf("%w: Update - failed to get employee: %v", ErrInternal, err)
	}

	schedule, err := req.ToDomainSchedule(employeeID)
	if err != nil {
		s.logger.Warn("Update: invalid schedule payload for employee=%d: %v", employeeID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := schedule.Validate(); err != nil {
		s.logger.Warn("Update: schedule validation failed for employee=%d: %v", employeeID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchedule, err)
	}

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		return s.scheduleRepo.Replace(txCtx, schedule)
	})
	if err != nil {
		s.logger.Error("Update: failed to replace schedule for employee=%d: %v", employeeID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully replaced schedule for employee=%d", employeeID)
	return models.FromDomainSchedule(schedule), nil
}

package catalog

import (
	"context"
	"fmt"

	"github.com/m04kA/Salon-BookingService/internal/service/catalog/models"
)

// Service сервис справочников: мастера и каталог услуг
type Service struct {
	employeeRepo EmployeeRepository
	serviceRepo  ServiceRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса справочников
func NewService(
	employeeRepo EmployeeRepository,
	serviceRepo ServiceRepository,
	logger Logger,
) *Service {
	return &Service{
		employeeRepo: employeeRepo,
		serviceRepo:  serviceRepo,
		logger:       logger,
	}
}

// ListEmployees возвращает список мастеров для форм записи
func (s *Service) ListEmployees(ctx context.Context, activeOnly bool) (*models.EmployeeListResponse, error) {
	s.logger.Info("ListEmployees: fetching employees, activeOnly=%t", activeOnly)

	employees, err := s.employeeRepo.List(ctx, activeOnly)
	if err != nil {
		s.logger.Error("ListEmployees: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListEmployees - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainEmployeeList(employees), nil
}

// ListServices возвращает каталог услуг для форм записи
func (s *Service) ListServices(ctx context.Context, activeOnly bool) (*models.ServiceListResponse, error) {
	s.logger.Info("ListServices: fetching services, activeOnly=%t", activeOnly)

	services, err := s.serviceRepo.List(ctx, activeOnly)
	if err != nil {
		s.logger.Error("ListServices: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListServices - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainServiceList(services), nil
}

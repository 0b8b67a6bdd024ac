package models

import "github.com/m04kA/Salon-BookingService/internal/domain"

// EmployeeResponse карточка мастера для форм записи
type EmployeeResponse struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Position *string `json:"position,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	IsActive bool    `json:"isActive"`
}

// EmployeeListResponse список мастеров
type EmployeeListResponse struct {
	Employees []EmployeeResponse `json:"employees"`
}

// ServiceResponse карточка услуги из каталога
type ServiceResponse struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Description     *string `json:"description,omitempty"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
	IsActive        bool    `json:"isActive"`
}

// ServiceListResponse список услуг
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

// FromDomainEmployeeList конвертирует список мастеров в DTO
func FromDomainEmployeeList(employees []*domain.Employee) *EmployeeListResponse {
	resp := &EmployeeListResponse{
		Employees: make([]EmployeeResponse, 0, len(employees)),
	}

	for _, e := range employees {
		resp.Employees = append(resp.Employees, EmployeeResponse{
			ID:       e.ID,
			Name:     e.Name,
			Position: e.Position,
			Phone:    e.Phone,
			IsActive: e.IsActive,
		})
	}

	return resp
}

// FromDomainServiceList конвертирует список услуг в DTO
func FromDomainServiceList(services []*domain.Service) *ServiceListResponse {
	resp := &ServiceListResponse{
		Services: make([]ServiceResponse, 0, len(services)),
	}

	for _, s := range services {
		resp.Services = append(resp.Services, ServiceResponse{
			ID:              s.ID,
			Name:            s.Name,
			Description:     s.Description,
			DurationMinutes: s.DurationMinutes,
			Price:           s.Price,
			IsActive:        s.IsActive,
		})
	}

	return resp
}

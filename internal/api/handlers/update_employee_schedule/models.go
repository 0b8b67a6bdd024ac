package update_employee_schedule

import "github.com/m04kA/Salon-BookingService/internal/service/schedules/models"

// UpdateScheduleRequest HTTP request model
type UpdateScheduleRequest struct {
	Days []models.DayScheduleDTO `json:"days"`
}

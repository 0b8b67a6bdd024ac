package models

import (
	"errors"
	"fmt"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	"github.com/m04kA/Salon-BookingService/pkg/types"
)

var (
	// ErrInvalidDay возвращается при некорректном дне недели
	ErrInvalidDay = errors.New("invalid day of week")

	// ErrIncompleteWeek возвращается, когда передано не 7 дней
	ErrIncompleteWeek = errors.New("schedule must contain exactly 7 days")
)

// Request модели

// DayScheduleDTO расписание одного дня недели
type DayScheduleDTO struct {
	DayOfWeek  int     `json:"dayOfWeek"` // ISO 8601: 1 = понедельник ... 7 = воскресенье
	IsWorking  bool    `json:"isWorking"`
	StartTime  string  `json:"startTime,omitempty"` // "09:00"
	EndTime    string  `json:"endTime,omitempty"`   // "17:00"
	BreakStart *string `json:"breakStart,omitempty"`
	BreakEnd   *string `json:"breakEnd,omitempty"`
}

// UpdateScheduleRequest запрос на полную замену недельного расписания
type UpdateScheduleRequest struct {
	UserID int64            `json:"userId"`
	Days   []DayScheduleDTO `json:"days"`
}

// ToDomainSchedule конвертирует request в domain модель.
// Дни должны покрывать все 7 дней недели, каждый ровно один раз.
func (r *UpdateScheduleRequest) ToDomainSchedule(employeeID int64) (*domain.WeeklySchedule, error) {
	if len(r.Days) != 7 {
		return nil, ErrIncompleteWeek
	}

	schedule := &domain.WeeklySchedule{EmployeeID: employeeID}
	seen := make(map[int]bool, 7)

	for _, day := range r.Days {
		if day.DayOfWeek < domain.Monday || day.DayOfWeek > domain.Sunday {
			return nil, fmt.Errorf("%w: %d", ErrInvalidDay, day.DayOfWeek)
		}
		if seen[day.DayOfWeek] {
			return nil, fmt.Errorf("%w: duplicate day %d", ErrInvalidDay, day.DayOfWeek)
		}
		seen[day.DayOfWeek] = true

		domainDay := domain.DaySchedule{
			DayOfWeek: day.DayOfWeek,
			IsWorking: day.IsWorking,
			StartTime: types.TimeString(day.StartTime),
			EndTime:   types.TimeString(day.EndTime),
		}
		if day.BreakStart != nil {
			bs := types.TimeString(*day.BreakStart)
			domainDay.BreakStart = &bs
		}
		if day.BreakEnd != nil {
			be := types.TimeString(*day.BreakEnd)
			domainDay.BreakEnd = &be
		}

		schedule.Days[day.DayOfWeek-1] = domainDay
	}

	return schedule, nil
}

// Response модели

// WeeklyScheduleResponse ответ с недельным расписанием мастера
type WeeklyScheduleResponse struct {
	EmployeeID int64            `json:"employeeId"`
	Days       []DayScheduleDTO `json:"days"`
}

// FromDomainSchedule конвертирует domain модель в DTO
func FromDomainSchedule(s *domain.WeeklySchedule) *WeeklyScheduleResponse {
	if s == nil {
		return nil
	}

	resp := &WeeklyScheduleResponse{
		EmployeeID: s.EmployeeID,
		Days:       make([]DayScheduleDTO, len(s.Days)),
	}

	for i, day := range s.Days {
		dto := DayScheduleDTO{
			DayOfWeek: day.DayOfWeek,
			IsWorking: day.IsWorking,
		}
		if day.IsWorking {
			dto.StartTime = day.StartTime.String()
			dto.EndTime = day.EndTime.String()
			if day.BreakStart != nil {
				bs := day.BreakStart.String()
				dto.BreakStart = &bs
			}
			if day.BreakEnd != nil {
				be := day.BreakEnd.String()
				dto.BreakEnd = &be
			}
		}
		resp.Days[i] = dto
	}

	return resp
}

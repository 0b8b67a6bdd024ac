// Package scheduling реализует вычисление доступных слотов и проверку
// корректности записи. Все функции чистые: текущее время и список
// существующих записей передаются снаружи
package scheduling

import (
	"time"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	"github.com/m04kA/Salon-BookingService/pkg/types"
)

// Options параметры генерации слотов
type Options struct {
	// GranularityMinutes шаг перебора кандидатов; 0 = значение по умолчанию (30)
	GranularityMinutes int

	// LeadTimeMinutes минимальный буфер между "сейчас" и началом слота на сегодня.
	// 0 = отсекаются только слоты, начавшиеся в прошлом
	LeadTimeMinutes int
}

func (o Options) withDefaults() Options {
	if o.GranularityMinutes <= 0 {
		o.GranularityMinutes = domain.DefaultSlotGranularityMinutes
	}
	if o.LeadTimeMinutes < 0 {
		o.LeadTimeMinutes = 0
	}
	return o
}

// ComputeAvailableSlots вычисляет упорядоченный список доступных времён начала
// записи для мастера на указанную дату.
//
// Алгоритм:
//  1. Находим дневное расписание по ISO дню недели; выходной - пустой список
//     (нормальный результат, не ошибка)
//  2. Строим список занятых интервалов: активные записи (каждая со своей
//     длительностью) плюс перерыв
//  3. Перебираем кандидатов от начала рабочего дня с шагом granularity,
//     отбрасывая слоты, выходящие за конец рабочего дня, прошедшие
//     (для сегодняшней даты, с учетом lead time) и пересекающиеся с занятыми
//     интервалами
//
// Результат отсортирован по возрастанию за счет порядка перебора.
func ComputeAvailableSlots(
	schedule *domain.WeeklySchedule,
	date time.Time,
	durationMinutes int,
	appointments []*domain.Appointment,
	now time.Time,
	opts Options,
) ([]types.TimeString, error) {
	if durationMinutes <= 0 {
		return nil, ErrInvalidDuration
	}
	opts = opts.withDefaults()

	// Дата целиком в прошлом - слотов нет
	if isDateInPast(date, now) {
		return []types.TimeString{}, nil
	}

	day, ok := schedule.Day(domain.ISOWeekday(date))
	if !ok || !day.IsWorking {
		return []types.TimeString{}, nil
	}

	workStart, err := day.StartTime.Minutes()
	if err != nil {
		return nil, err
	}
	workEnd, err := day.EndTime.Minutes()
	if err != nil {
		return nil, err
	}

	// Нулевой рабочий день (start == end) вырождается в пустой результат
	if workEnd <= workStart {
		return []types.TimeString{}, nil
	}

	busy, err := busyIntervals(day, appointments)
	if err != nil {
		return nil, err
	}

	// Для сегодняшней даты слот должен начинаться строго позже cutoff
	cutoff := -1
	if isSameDay(date, now) {
		cutoff = minutesOfDay(now) + opts.LeadTimeMinutes
	}

	slots := make([]types.TimeString, 0)

	for t := workStart; t < workEnd; t += opts.GranularityMinutes {
		slotEnd := t + durationMinutes

		// Запись не должна выходить за конец рабочего дня
		if slotEnd > workEnd {
			continue
		}

		if cutoff >= 0 && t <= cutoff {
			continue
		}

		if overlapsAny(t, slotEnd, busy) {
			continue
		}

		slot, err := types.NewTimeStringFromMinutes(t)
		if err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}

	return slots, nil
}

// overlapsAny проверяет пересечение кандидата с любым занятым интервалом
func overlapsAny(start, end int, busy []Interval) bool {
	for _, interval := range busy {
		if Overlaps(start, end, interval.Start, interval.End) {
			return true
		}
	}
	return false
}

// minutesOfDay возвращает время t в минутах от полуночи
func minutesOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата раньше сегодняшнего дня
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}

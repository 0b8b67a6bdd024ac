package scheduling

import (
	"time"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	"github.com/m04kA/Salon-BookingService/pkg/types"
)

// ValidateSlot проверяет предложенное время записи по тем же правилам, что и
// ComputeAvailableSlots, и возвращает вычисленное время окончания.
//
// Проверка выполняется заново от текущего состояния, а не от снапшота
// доступности на клиенте: между показом слотов и отправкой записи состояние
// могло измениться. Порядок проверок:
//  1. Длительность услуги положительна (ErrInvalidDuration)
//  2. Мастер работает в этот день (ErrStaffNotWorking)
//  3. Слот в рабочих часах, не в прошлом, не пересекается с перерывом
//     (SlotUnavailableError с причиной)
//  4. Слот не пересекается ни с одной активной записью (ErrTimeConflict) -
//     авторитетная защита от двойного бронирования; вызывается внутри
//     сериализуемой транзакции над свежей выборкой записей
func ValidateSlot(
	schedule *domain.WeeklySchedule,
	date time.Time,
	startTime types.TimeString,
	durationMinutes int,
	appointments []*domain.Appointment,
	now time.Time,
	opts Options,
) (types.TimeString, error) {
	if durationMinutes <= 0 {
		return "", ErrInvalidDuration
	}
	opts = opts.withDefaults()

	day, ok := schedule.Day(domain.ISOWeekday(date))
	if !ok || !day.IsWorking {
		return "", ErrStaffNotWorking
	}

	start, err := startTime.Minutes()
	if err != nil {
		return "", err
	}
	end := start + durationMinutes

	workStart, err := day.StartTime.Minutes()
	if err != nil {
		return "", err
	}
	workEnd, err := day.EndTime.Minutes()
	if err != nil {
		return "", err
	}

	if start < workStart || start >= workEnd {
		return "", unavailable(ReasonOutsideHours)
	}
	// Начало должно лежать на сетке слотов, иначе множество принимаемых
	// времён разошлось бы с множеством предлагаемых
	if (start-workStart)%opts.GranularityMinutes != 0 {
		return "", unavailable(ReasonOutsideHours)
	}
	if end > workEnd {
		return "", unavailable(ReasonPastClosing)
	}

	if isDateInPast(date, now) {
		return "", unavailable(ReasonInPast)
	}
	if isSameDay(date, now) && start <= minutesOfDay(now)+opts.LeadTimeMinutes {
		return "", unavailable(ReasonInPast)
	}

	if day.HasBreak() {
		breakStart, err := day.BreakStart.Minutes()
		if err != nil {
			return "", err
		}
		breakEnd, err := day.BreakEnd.Minutes()
		if err != nil {
			return "", err
		}
		if Overlaps(start, end, breakStart, breakEnd) {
			return "", unavailable(ReasonBreakConflict)
		}
	}

	// Попарная проверка с каждой активной записью - здесь проигравший гонку
	// запрос детерминированно получает ErrTimeConflict
	for _, appointment := range appointments {
		if !appointment.IsActive() {
			continue
		}
		existingStart, err := appointment.StartTime.Minutes()
		if err != nil {
			return "", err
		}
		if Overlaps(start, end, existingStart, existingStart+appointment.DurationMinutes) {
			return "", ErrTimeConflict
		}
	}

	endTime, err := types.NewTimeStringFromMinutes(end)
	if err != nil {
		return "", err
	}
	return endTime, nil
}

package scheduling

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDuration возвращается при неположительной длительности услуги
	// Указывает на проблему целостности данных в каталоге услуг
	ErrInvalidDuration = errors.New("scheduling: service duration must be positive")

	// ErrStaffNotWorking возвращается, когда мастер не работает в запрошенный день
	ErrStaffNotWorking = errors.New("scheduling: staff member is not working on this day")

	// ErrSlotUnavailable возвращается, когда слот нарушает ограничения расписания
	// Конкретная причина доступна через SlotUnavailableError
	ErrSlotUnavailable = errors.New("scheduling: slot is not available")

	// ErrTimeConflict возвращается, когда слот пересекается с существующей записью
	// Отличается от ErrSlotUnavailable: слот был корректным, но его успели занять
	ErrTimeConflict = errors.New("scheduling: slot conflicts with an existing appointment")
)

// UnavailableReason причина недоступности слота
type UnavailableReason string

const (
	ReasonOutsideHours  UnavailableReason = "outside-hours"
	ReasonPastClosing   UnavailableReason = "past-closing"
	ReasonBreakConflict UnavailableReason = "break-conflict"
	ReasonInPast        UnavailableReason = "in-the-past"
)

// SlotUnavailableError ошибка недоступности слота с указанием нарушенного ограничения
// Сопоставляется с ErrSlotUnavailable через errors.Is
type SlotUnavailableError struct {
	Reason UnavailableReason
}

func (e *SlotUnavailableError) Error() string {
	return fmt.Sprintf("scheduling: slot is not available (%s)", e.Reason)
}

// Is позволяет errors.Is(err, ErrSlotUnavailable) находить типизированную ошибку
func (e *SlotUnavailableError) Is(target error) bool {
	return target == ErrSlotUnavailable
}

func unavailable(reason UnavailableReason) error {
	return &SlotUnavailableError{Reason: reason}
}

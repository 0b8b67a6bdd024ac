package scheduling

import (
	"github.com/m04kA/Salon-BookingService/internal/domain"
)

// Interval is a half-open [Start, End) range in minutes since midnight.
type Interval struct {
	Start int
	End   int
}

// Overlaps reports whether two half-open intervals [aStart, aEnd) and
// [bStart, bEnd) overlap. Strict inequalities make back-to-back intervals
// legal: a slot starting exactly when another ends does not overlap.
// This is the single overlap definition used everywhere in the service.
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && bStart < aEnd
}

// Overlaps reports whether i overlaps other.
func (i Interval) Overlaps(other Interval) bool {
	return Overlaps(i.Start, i.End, other.Start, other.End)
}

// busyIntervals builds the list of occupied intervals for one day: every
// active appointment mapped through its own duration, plus the schedule's
// break interval when present.
func busyIntervals(day domain.DaySchedule, appointments []*domain.Appointment) ([]Interval, error) {
	busy := make([]Interval, 0, len(appointments)+1)

	for _, appointment := range appointments {
		if !appointment.IsActive() {
			continue
		}

		start, err := appointment.StartTime.Minutes()
		if err != nil {
			return nil, err
		}
		busy = append(busy, Interval{Start: start, End: start + appointment.DurationMinutes})
	}

	if day.HasBreak() {
		breakStart, err := day.BreakStart.Minutes()
		if err != nil {
			return nil, err
		}
		breakEnd, err := day.BreakEnd.Minutes()
		if err != nil {
			return nil, err
		}
		busy = append(busy, Interval{Start: breakStart, End: breakEnd})
	}

	return busy, nil
}

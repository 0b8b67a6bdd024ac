package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/Salon-BookingService/pkg/types"
)

// ISO weekday numbers (Monday=1 .. Sunday=7), matching the calendar grid
const (
	Monday    = 1
	Tuesday   = 2
	Wednesday = 3
	Thursday  = 4
	Friday    = 5
	Saturday  = 6
	Sunday    = 7
)

var (
	// ErrInvalidDaySchedule возвращается при нарушении инвариантов дневного расписания
	ErrInvalidDaySchedule = errors.New("invalid day schedule")

	// ErrInvalidWeeklySchedule возвращается при нарушении структуры недельного расписания
	ErrInvalidWeeklySchedule = errors.New("invalid weekly schedule")
)

// DaySchedule represents one weekday of a staff member's recurring schedule.
// BreakStart and BreakEnd are either both set or both nil.
type DaySchedule struct {
	DayOfWeek  int // ISO weekday: Monday=1 .. Sunday=7
	IsWorking  bool
	StartTime  types.TimeString
	EndTime    types.TimeString
	BreakStart *types.TimeString
	BreakEnd   *types.TimeString
}

// HasBreak returns true if the day has a configured break interval
func (d *DaySchedule) HasBreak() bool {
	return d.BreakStart != nil && d.BreakEnd != nil
}

// Validate checks the day schedule invariants:
// if working, startTime < endTime; if a break is present,
// startTime <= breakStart < breakEnd <= endTime.
func (d *DaySchedule) Validate() error {
	if d.DayOfWeek < Monday || d.DayOfWeek > Sunday {
		return fmt.Errorf("%w: day of week must be in [1, 7], got %d", ErrInvalidDaySchedule, d.DayOfWeek)
	}

	if !d.IsWorking {
		return nil
	}

	if err := d.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: start time: %v", ErrInvalidDaySchedule, err)
	}
	if err := d.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: end time: %v", ErrInvalidDaySchedule, err)
	}
	if !d.StartTime.IsBefore(d.EndTime) && d.StartTime != d.EndTime {
		return fmt.Errorf("%w: start time %s must not be after end time %s", ErrInvalidDaySchedule, d.StartTime, d.EndTime)
	}

	if (d.BreakStart == nil) != (d.BreakEnd == nil) {
		return fmt.Errorf("%w: break start and break end must be both present or both absent", ErrInvalidDaySchedule)
	}

	if d.HasBreak() {
		if err := d.BreakStart.Validate(); err != nil {
			return fmt.Errorf("%w: break start: %v", ErrInvalidDaySchedule, err)
		}
		if err := d.BreakEnd.Validate(); err != nil {
			return fmt.Errorf("%w: break end: %v", ErrInvalidDaySchedule, err)
		}
		if d.BreakStart.IsBefore(d.StartTime) {
			return fmt.Errorf("%w: break must not start before working hours", ErrInvalidDaySchedule)
		}
		if !d.BreakStart.IsBefore(*d.BreakEnd) {
			return fmt.Errorf("%w: break start %s must be before break end %s", ErrInvalidDaySchedule, *d.BreakStart, *d.BreakEnd)
		}
		if d.BreakEnd.IsAfter(d.EndTime) {
			return fmt.Errorf("%w: break must not end after working hours", ErrInvalidDaySchedule)
		}
	}

	return nil
}

// WeeklySchedule is a staff member's recurring weekly schedule:
// exactly 7 day entries keyed by ISO weekday.
type WeeklySchedule struct {
	EmployeeID int64
	Days       [7]DaySchedule // index 0 = Monday .. index 6 = Sunday
}

// Day returns the schedule for the given ISO weekday (Monday=1 .. Sunday=7)
func (s *WeeklySchedule) Day(isoWeekday int) (DaySchedule, bool) {
	if isoWeekday < Monday || isoWeekday > Sunday {
		return DaySchedule{}, false
	}
	return s.Days[isoWeekday-1], true
}

// Validate checks every day entry and the weekday numbering
func (s *WeeklySchedule) Validate() error {
	for i := range s.Days {
		if s.Days[i].DayOfWeek != i+1 {
			return fmt.Errorf("%w: day at position %d must have dayOfWeek=%d, got %d",
				ErrInvalidWeeklySchedule, i, i+1, s.Days[i].DayOfWeek)
		}
		if err := s.Days[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// DefaultWeeklySchedule returns the schedule applied when a staff member has
// no stored schedule: Monday-Friday 09:00-17:00, weekend off.
func DefaultWeeklySchedule(employeeID int64) *WeeklySchedule {
	schedule := &WeeklySchedule{EmployeeID: employeeID}
	for day := Monday; day <= Sunday; day++ {
		schedule.Days[day-1] = DaySchedule{
			DayOfWeek: day,
			IsWorking: day <= Friday,
			StartTime: types.TimeString(DefaultWorkDayStart),
			EndTime:   types.TimeString(DefaultWorkDayEnd),
		}
	}
	return schedule
}

// ISOWeekday maps a calendar date to the ISO weekday number (Monday=1 .. Sunday=7).
// This is the single place converting from Go's Sunday=0 convention.
func ISOWeekday(date time.Time) int {
	weekday := int(date.Weekday())
	if weekday == 0 {
		return Sunday
	}
	return weekday
}

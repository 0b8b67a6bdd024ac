package scheduling

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	"github.com/m04kA/Salon-BookingService/pkg/types"
)

func TestValidateSlot_Accepts(t *testing.T) {
	end, err := ValidateSlot(testSchedule(), testWednesday, "10:00", 30, nil, pastNow(), Options{})
	require.NoError(t, err)
	assert.Equal(t, "10:30", end.String())
}

func TestValidateSlot_StaffNotWorking(t *testing.T) {
	_, err := ValidateSlot(testSchedule(), testSunday, "10:00", 30, nil, pastNow(), Options{})
	assert.ErrorIs(t, err, ErrStaffNotWorking)
}

func TestValidateSlot_InvalidDuration(t *testing.T) {
	_, err := ValidateSlot(testSchedule(), testWednesday, "10:00", 0, nil, pastNow(), Options{})
	assert.ErrorIs(t, err, ErrInvalidDuration)
}

func TestValidateSlot_UnavailableReasons(t *testing.T) {
	schedule := testScheduleWithBreak("12:00", "13:00")
	now := time.Date(2025, 10, 15, 14, 5, 0, 0, time.UTC)

	tests := []struct {
		name      string
		startTime string
		duration  int
		reason    UnavailableReason
	}{
		{"before opening", "08:00", 30, ReasonOutsideHours},
		{"at closing", "17:00", 30, ReasonOutsideHours},
		{"runs past closing", "16:45", 30, ReasonPastClosing},
		{"starts in break", "12:00", 30, ReasonBreakConflict},
		{"runs into break", "11:45", 30, ReasonBreakConflict},
		{"already passed today", "14:00", 30, ReasonInPast},
		{"off the slot grid", "14:40", 30, ReasonOutsideHours},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateSlot(schedule, testWednesday, types.TimeString(tt.startTime), tt.duration, nil, now, Options{GranularityMinutes: 15})
			require.ErrorIs(t, err, ErrSlotUnavailable)

			var unavailableErr *SlotUnavailableError
			require.True(t, errors.As(err, &unavailableErr))
			assert.Equal(t, tt.reason, unavailableErr.Reason)
		})
	}
}

func TestValidateSlot_PastDate(t *testing.T) {
	now := time.Date(2025, 10, 20, 9, 0, 0, 0, time.UTC)

	_, err := ValidateSlot(testSchedule(), testWednesday, "10:00", 30, nil, now, Options{})
	require.ErrorIs(t, err, ErrSlotUnavailable)

	var unavailableErr *SlotUnavailableError
	require.True(t, errors.As(err, &unavailableErr))
	assert.Equal(t, ReasonInPast, unavailableErr.Reason)
}

func TestValidateSlot_Conflict(t *testing.T) {
	existing := []*domain.Appointment{appointmentAt("10:00", 60)}

	_, err := ValidateSlot(testSchedule(), testWednesday, "10:30", 30, existing, pastNow(), Options{})
	assert.ErrorIs(t, err, ErrTimeConflict)

	// Конфликт не является SlotUnavailable - у него другая семантика повтора
	assert.NotErrorIs(t, err, ErrSlotUnavailable)
}

func TestValidateSlot_BackToBackAccepted(t *testing.T) {
	existing := []*domain.Appointment{appointmentAt("09:00", 60)}

	end, err := ValidateSlot(testSchedule(), testWednesday, "10:00", 30, existing, pastNow(), Options{})
	require.NoError(t, err)
	assert.Equal(t, "10:30", end.String())
}

func TestValidateSlot_CancelledAppointmentDoesNotConflict(t *testing.T) {
	cancelled := appointmentAt("10:00", 60)
	cancelled.Status = domain.StatusCancelled

	_, err := ValidateSlot(testSchedule(), testWednesday, "10:00", 30, []*domain.Appointment{cancelled}, pastNow(), Options{})
	assert.NoError(t, err)
}

// Non-overlap invariant: последовательность принятых записей никогда не
// содержит пересекающихся интервалов
func TestValidateSlot_NonOverlapInvariant(t *testing.T) {
	accepted := make([]*domain.Appointment, 0)

	proposals := []string{"09:00", "09:30", "10:00", "09:00", "09:15", "10:30", "10:00"}
	for _, start := range proposals {
		_, err := ValidateSlot(testSchedule(), testWednesday, types.TimeString(start), 45, accepted, pastNow(), Options{GranularityMinutes: 15})
		if err != nil {
			continue
		}
		accepted = append(accepted, appointmentAt(start, 45))
	}

	require.NotEmpty(t, accepted)
	for i := 0; i < len(accepted); i++ {
		for j := i + 1; j < len(accepted); j++ {
			aStart, err := accepted[i].StartTime.Minutes()
			require.NoError(t, err)
			bStart, err := accepted[j].StartTime.Minutes()
			require.NoError(t, err)
			assert.False(t,
				Overlaps(aStart, aStart+accepted[i].DurationMinutes, bStart, bStart+accepted[j].DurationMinutes),
				"accepted appointments %s and %s overlap", accepted[i].StartTime, accepted[j].StartTime)
		}
	}
}

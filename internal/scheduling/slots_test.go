package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	"github.com/m04kA/Salon-BookingService/pkg/types"
)

// Wednesday and Sunday of the same week, far in the future relative to "now"
var (
	testWednesday = time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	testSunday    = time.Date(2025, 10, 19, 0, 0, 0, 0, time.UTC)
)

func testSchedule() *domain.WeeklySchedule {
	return domain.DefaultWeeklySchedule(1)
}

func testScheduleWithBreak(breakStart, breakEnd string) *domain.WeeklySchedule {
	schedule := testSchedule()
	bs := types.TimeString(breakStart)
	be := types.TimeString(breakEnd)
	for i := range schedule.Days {
		if schedule.Days[i].IsWorking {
			schedule.Days[i].BreakStart = &bs
			schedule.Days[i].BreakEnd = &be
		}
	}
	return schedule
}

func appointmentAt(start string, durationMinutes int) *domain.Appointment {
	return &domain.Appointment{
		EmployeeID:      1,
		Date:            testWednesday,
		StartTime:       types.TimeString(start),
		DurationMinutes: durationMinutes,
		Status:          domain.StatusConfirmed,
	}
}

func pastNow() time.Time {
	// Long before the test dates, so no candidate is filtered as "in the past"
	return time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)
}

func slotStrings(slots []types.TimeString) []string {
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = s.String()
	}
	return out
}

func TestComputeAvailableSlots_FullOpenDay(t *testing.T) {
	slots, err := ComputeAvailableSlots(testSchedule(), testWednesday, 30, nil, pastNow(), Options{})
	require.NoError(t, err)

	// 09:00 .. 16:30, шаг 30 минут
	assert.Len(t, slots, 16)
	assert.Equal(t, "09:00", slots[0].String())
	assert.Equal(t, "16:30", slots[len(slots)-1].String())
}

func TestComputeAvailableSlots_DayOff(t *testing.T) {
	slots, err := ComputeAvailableSlots(testSchedule(), testSunday, 30, nil, pastNow(), Options{})
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestComputeAvailableSlots_InvalidDuration(t *testing.T) {
	for _, duration := range []int{0, -15} {
		_, err := ComputeAvailableSlots(testSchedule(), testWednesday, duration, nil, pastNow(), Options{})
		assert.ErrorIs(t, err, ErrInvalidDuration)
	}
}

func TestComputeAvailableSlots_ZeroLengthWorkingDay(t *testing.T) {
	schedule := testSchedule()
	schedule.Days[domain.Wednesday-1].StartTime = "10:00"
	schedule.Days[domain.Wednesday-1].EndTime = "10:00"

	slots, err := ComputeAvailableSlots(schedule, testWednesday, 30, nil, pastNow(), Options{})
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestComputeAvailableSlots_BackToBackIsOffered(t *testing.T) {
	// Запись 09:00-10:00: слот 10:00 граничит с ней и должен быть предложен
	existing := []*domain.Appointment{appointmentAt("09:00", 60)}

	slots, err := ComputeAvailableSlots(testSchedule(), testWednesday, 30, existing, pastNow(), Options{})
	require.NoError(t, err)

	strs := slotStrings(slots)
	assert.NotContains(t, strs, "09:00")
	assert.NotContains(t, strs, "09:30")
	assert.Contains(t, strs, "10:00")
}

func TestComputeAvailableSlots_BreakExclusion(t *testing.T) {
	schedule := testScheduleWithBreak("12:00", "13:00")

	// Гранулярность 15, чтобы кандидат 11:45 существовал
	slots, err := ComputeAvailableSlots(schedule, testWednesday, 30, nil, pastNow(), Options{GranularityMinutes: 15})
	require.NoError(t, err)

	strs := slotStrings(slots)
	assert.Contains(t, strs, "11:30")
	assert.NotContains(t, strs, "11:45") // зашла бы в перерыв
	assert.NotContains(t, strs, "12:00")
	assert.NotContains(t, strs, "12:30")
	assert.NotContains(t, strs, "12:45")
	assert.Contains(t, strs, "13:00") // первый корректный слот после перерыва
}

func TestComputeAvailableSlots_PastCutoffToday(t *testing.T) {
	now := time.Date(2025, 10, 15, 14, 5, 0, 0, time.UTC)

	slots, err := ComputeAvailableSlots(testSchedule(), testWednesday, 30, nil, now, Options{})
	require.NoError(t, err)

	strs := slotStrings(slots)
	assert.NotContains(t, strs, "14:00")
	assert.Contains(t, strs, "14:30")
	assert.Equal(t, "14:30", strs[0])
}

func TestComputeAvailableSlots_LeadTimeBuffer(t *testing.T) {
	now := time.Date(2025, 10, 15, 14, 0, 0, 0, time.UTC)

	slots, err := ComputeAvailableSlots(testSchedule(), testWednesday, 30, nil, now, Options{LeadTimeMinutes: 30})
	require.NoError(t, err)

	// cutoff = 14:30, слот 14:30 отсекается, первый доступный 15:00
	strs := slotStrings(slots)
	assert.NotContains(t, strs, "14:30")
	assert.Equal(t, "15:00", strs[0])
}

func TestComputeAvailableSlots_DurationOverrunsClose(t *testing.T) {
	slots, err := ComputeAvailableSlots(testSchedule(), testWednesday, 45, nil, pastNow(), Options{})
	require.NoError(t, err)

	strs := slotStrings(slots)
	assert.NotContains(t, strs, "16:30") // 16:30+45 = 17:15 > 17:00
	assert.Equal(t, "16:00", strs[len(strs)-1])
}

func TestComputeAvailableSlots_DateInPast(t *testing.T) {
	now := time.Date(2025, 10, 20, 9, 0, 0, 0, time.UTC)

	slots, err := ComputeAvailableSlots(testSchedule(), testWednesday, 30, nil, now, Options{})
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestComputeAvailableSlots_InactiveAppointmentsIgnored(t *testing.T) {
	cancelled := appointmentAt("09:00", 60)
	cancelled.Status = domain.StatusCancelled

	slots, err := ComputeAvailableSlots(testSchedule(), testWednesday, 30, []*domain.Appointment{cancelled}, pastNow(), Options{})
	require.NoError(t, err)
	assert.Contains(t, slotStrings(slots), "09:00")
}

func TestComputeAvailableSlots_Ascending(t *testing.T) {
	existing := []*domain.Appointment{
		appointmentAt("10:00", 30),
		appointmentAt("13:30", 90),
	}

	slots, err := ComputeAvailableSlots(testSchedule(), testWednesday, 30, existing, pastNow(), Options{})
	require.NoError(t, err)

	for i := 1; i < len(slots); i++ {
		assert.True(t, slots[i-1].IsBefore(slots[i]), "slots must ascend: %s before %s", slots[i-1], slots[i])
	}
}

// Каждый предложенный слот должен проходить валидацию на том же снапшоте,
// и ни одно время вне списка не должно её проходить
func TestComputeAvailableSlots_SoundAndCompleteAgainstValidator(t *testing.T) {
	schedule := testScheduleWithBreak("12:00", "13:00")
	existing := []*domain.Appointment{
		appointmentAt("09:30", 45),
		appointmentAt("15:00", 30),
	}
	now := time.Date(2025, 10, 15, 10, 10, 0, 0, time.UTC)
	opts := Options{GranularityMinutes: 15}

	slots, err := ComputeAvailableSlots(schedule, testWednesday, 30, existing, now, opts)
	require.NoError(t, err)

	offered := make(map[string]bool)
	for _, slot := range slots {
		offered[slot.String()] = true
	}

	// Перебираем всю сетку кандидатов дня
	for minutes := 0; minutes < 24*60; minutes += opts.GranularityMinutes {
		candidate, err := types.NewTimeStringFromMinutes(minutes)
		require.NoError(t, err)

		_, validateErr := ValidateSlot(schedule, testWednesday, candidate, 30, existing, now, opts)
		if offered[candidate.String()] {
			assert.NoError(t, validateErr, "offered slot %s must validate", candidate)
		} else {
			assert.Error(t, validateErr, "slot %s was not offered and must not validate", candidate)
		}
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                           string
		aStart, aEnd, bStart, bEnd     int
		want                           bool
	}{
		{"identical", 540, 600, 540, 600, true},
		{"partial", 540, 600, 570, 630, true},
		{"contained", 540, 660, 570, 600, true},
		{"back to back", 540, 600, 600, 630, false},
		{"back to back reversed", 600, 630, 540, 600, false},
		{"disjoint", 540, 600, 720, 780, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
			assert.Equal(t, tt.want, Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd))
		})
	}
}

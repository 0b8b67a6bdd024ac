package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	employeeRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/employee"
	scheduleRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/schedule"
	serviceRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/service"
	"github.com/m04kA/Salon-BookingService/internal/scheduling"
	"github.com/m04kA/Salon-BookingService/pkg/ptr"
	"github.com/m04kA/Salon-BookingService/pkg/types"
)

// Wednesday and Sunday of the same week, far in the future relative to "now"
var (
	testWednesday = time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	testSunday    = time.Date(2025, 10, 19, 0, 0, 0, 0, time.UTC)
)

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
	err          error
}

func (f *fakeAppointmentRepo) GetByEmployeeWithFilter(_ context.Context, _ domain.EmployeeAppointmentsFilter) ([]*domain.Appointment, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.appointments, nil
}

type fakeScheduleRepo struct {
	schedule *domain.WeeklySchedule
	err      error
}

func (f *fakeScheduleRepo) GetByEmployeeID(_ context.Context, _ int64) (*domain.WeeklySchedule, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.schedule, nil
}

type fakeEmployeeRepo struct {
	employee *domain.Employee
	err      error
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, _ int64) (*domain.Employee, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.employee, nil
}

type fakeServiceRepo struct {
	service *domain.Service
	err     error
}

func (f *fakeServiceRepo) GetByID(_ context.Context, _ int64) (*domain.Service, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.service, nil
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixture struct {
	appointments *fakeAppointmentRepo
	schedules    *fakeScheduleRepo
	employees    *fakeEmployeeRepo
	services     *fakeServiceRepo
	uc           *UseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		appointments: &fakeAppointmentRepo{},
		schedules:    &fakeScheduleRepo{schedule: domain.DefaultWeeklySchedule(1)},
		employees:    &fakeEmployeeRepo{employee: &domain.Employee{ID: 1, Name: "Anna", IsActive: true}},
		services: &fakeServiceRepo{service: &domain.Service{
			ID: 2, Name: "Haircut", DurationMinutes: 60, Price: 1500, IsActive: true,
		}},
	}
	f.uc = NewUseCase(f.appointments, f.schedules, f.employees, f.services, scheduling.Options{}, nopLogger{})
	f.uc.timeProvider = &fixedTimeProvider{now: time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)}
	return f
}

func validRequest() *Request {
	return &Request{EmployeeID: 1, ServiceID: 2, Date: testWednesday}
}

func TestExecute_FullOpenDay(t *testing.T) {
	f := newFixture(t)

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// 09:00-17:00, 60-minute service, 30-minute grid: 09:00 through 16:00
	assert.Len(t, resp.Slots, 15)
	assert.Equal(t, types.TimeString("09:00"), resp.Slots[0])
	assert.Equal(t, types.TimeString("16:00"), resp.Slots[len(resp.Slots)-1])
	assert.Equal(t, 60, resp.DurationMinutes)
}

func TestExecute_DayOffReturnsEmpty(t *testing.T) {
	f := newFixture(t)

	req := validRequest()
	req.Date = testSunday

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_ExistingAppointmentRemovesSlots(t *testing.T) {
	f := newFixture(t)
	f.appointments.appointments = []*domain.Appointment{{
		EmployeeID:      1,
		Date:            testWednesday,
		StartTime:       types.TimeString("10:00"),
		DurationMinutes: 60,
		Status:          domain.StatusConfirmed,
	}}

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.NotContains(t, resp.Slots, types.TimeString("09:30"))
	assert.NotContains(t, resp.Slots, types.TimeString("10:00"))
	assert.NotContains(t, resp.Slots, types.TimeString("10:30"))
	// Back-to-back is fine
	assert.Contains(t, resp.Slots, types.TimeString("09:00"))
	assert.Contains(t, resp.Slots, types.TimeString("11:00"))
}

func TestExecute_MissingScheduleFallsBackToDefault(t *testing.T) {
	f := newFixture(t)
	f.schedules.err = scheduleRepo.ErrScheduleNotFound

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Slots)
}

func TestExecute_EmployeeNotFound(t *testing.T) {
	f := newFixture(t)
	f.employees.err = employeeRepo.ErrEmployeeNotFound

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrEmployeeNotFound)
}

func TestExecute_InactiveEmployeeTreatedAsNotFound(t *testing.T) {
	f := newFixture(t)
	f.employees.employee.IsActive = false

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrEmployeeNotFound)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	f := newFixture(t)
	f.services.err = serviceRepo.ErrServiceNotFound

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_InactiveServiceTreatedAsNotFound(t *testing.T) {
	f := newFixture(t)
	f.services.service.IsActive = false

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_ServiceWithInvalidDuration(t *testing.T) {
	f := newFixture(t)
	f.services.service.DurationMinutes = 0

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInvalidServiceDuration)
}

func TestExecute_InvalidRequest(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name string
		req  *Request
	}{
		{"zero employee", &Request{ServiceID: 2, Date: testWednesday}},
		{"zero service", &Request{EmployeeID: 1, Date: testWednesday}},
		{"zero date", &Request{EmployeeID: 1, ServiceID: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_RepositoryFailureWrappedAsInternal(t *testing.T) {
	f := newFixture(t)
	f.appointments.err = errors.New("connection refused")

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_CancelledAppointmentDoesNotBlockSlots(t *testing.T) {
	f := newFixture(t)
	f.appointments.appointments = []*domain.Appointment{{
		EmployeeID:         1,
		Date:               testWednesday,
		StartTime:          types.TimeString("10:00"),
		DurationMinutes:    60,
		Status:             domain.StatusCancelled,
		CancellationReason: ptr.Ptr("client request"),
	}}

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Contains(t, resp.Slots, types.TimeString("10:00"))
}

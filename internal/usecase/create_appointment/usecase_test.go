package create_appointment

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	appointmentRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/appointment"
	clientRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/client"
	employeeRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/employee"
	scheduleRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/schedule"
	"github.com/m04kA/Salon-BookingService/internal/scheduling"
	"github.com/m04kA/Salon-BookingService/pkg/ptr"
	"github.com/m04kA/Salon-BookingService/pkg/types"
)

var (
	testWednesday = time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	testSunday    = time.Date(2025, 10, 19, 0, 0, 0, 0, time.UTC)
)

// fakeAppointmentRepo keeps created appointments in memory so that a second
// request for the same slot sees the first one, like FOR UPDATE in Postgres.
type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
	createErr    error
	nextID       int64
}

func (f *fakeAppointmentRepo) Create(_ context.Context, appointment *domain.Appointment) (*domain.Appointment, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.nextID++
	created := *appointment
	created.ID = f.nextID
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	f.appointments = append(f.appointments, &created)
	return &created, nil
}

func (f *fakeAppointmentRepo) GetByEmployeeWithFilter(_ context.Context, filter domain.EmployeeAppointmentsFilter) ([]*domain.Appointment, error) {
	var out []*domain.Appointment
	for _, a := range f.appointments {
		if a.EmployeeID != filter.EmployeeID {
			continue
		}
		if !filter.IncludeInactive && !a.IsActive() {
			continue
		}
		out = append(out, a)
	}
	return out, nil
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

type fakeClientRepo struct {
	client *domain.Client
	err    error
}

func (f *fakeClientRepo) GetByID(_ context.Context, _ int64) (*domain.Client, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.client, nil
}

// fakeTxManager executes the callback without a real transaction
type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
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
	clients      *fakeClientRepo
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
		clients: &fakeClientRepo{client: &domain.Client{ID: 3, Name: "Ivan", Phone: "+79990001122"}},
	}
	f.uc = NewUseCase(f.appointments, f.schedules, f.employees, f.services, f.clients,
		fakeTxManager{}, scheduling.Options{}, nopLogger{})
	f.uc.timeProvider = &fixedTimeProvider{now: time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)}
	return f
}

func validRequest() *Request {
	return &Request{
		ClientID:   3,
		EmployeeID: 1,
		ServiceID:  2,
		Date:       testWednesday,
		StartTime:  types.TimeString("10:00"),
	}
}

func TestExecute_Success(t *testing.T) {
	f := newFixture(t)

	req := validRequest()
	req.Comment = ptr.Ptr("first visit")

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, types.TimeString("10:00"), resp.StartTime)
	assert.Equal(t, types.TimeString("11:00"), resp.EndTime)
	assert.Equal(t, 60, resp.DurationMinutes)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, "Haircut", resp.ServiceName)
	assert.Equal(t, 1500.0, resp.ServicePrice)
	require.NotNil(t, resp.Comment)
	assert.Equal(t, "first visit", *resp.Comment)
}

func TestExecute_SecondRequestForSameSlotConflicts(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	_, err = f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, scheduling.ErrTimeConflict)
	assert.Len(t, f.appointments.appointments, 1)
}

func TestExecute_OverlappingSlotConflicts(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// 10:30 overlaps the 10:00-11:00 appointment
	req := validRequest()
	req.StartTime = types.TimeString("10:30")

	_, err = f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, scheduling.ErrTimeConflict)
}

func TestExecute_BackToBackAllowed(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	req := validRequest()
	req.StartTime = types.TimeString("11:00")

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("12:00"), resp.EndTime)
}

func TestExecute_CancelledSlotCanBeRebooked(t *testing.T) {
	f := newFixture(t)
	f.appointments.appointments = []*domain.Appointment{{
		ID:              7,
		ClientID:        9,
		EmployeeID:      1,
		Date:            testWednesday,
		StartTime:       types.TimeString("10:00"),
		DurationMinutes: 60,
		Status:          domain.StatusCancelled,
	}}

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("10:00"), resp.StartTime)
}

func TestExecute_DayOff(t *testing.T) {
	f := newFixture(t)

	req := validRequest()
	req.Date = testSunday

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, scheduling.ErrStaffNotWorking)
}

func TestExecute_OutsideWorkingHours(t *testing.T) {
	f := newFixture(t)

	req := validRequest()
	req.StartTime = types.TimeString("08:00")

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, scheduling.ErrSlotUnavailable)
}

func TestExecute_SlotRunsPastClosing(t *testing.T) {
	f := newFixture(t)

	req := validRequest()
	req.StartTime = types.TimeString("16:30")

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, scheduling.ErrSlotUnavailable)
}

func TestExecute_SlotInThePast(t *testing.T) {
	f := newFixture(t)
	f.uc.timeProvider = &fixedTimeProvider{
		now: time.Date(2025, 10, 15, 14, 5, 0, 0, time.UTC),
	}

	req := validRequest()
	req.StartTime = types.TimeString("14:00")

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, scheduling.ErrSlotUnavailable)
}

func TestExecute_DuplicateFromUniqueIndexMappedToConflict(t *testing.T) {
	f := newFixture(t)
	f.appointments.createErr = appointmentRepo.ErrDuplicateSlot

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, scheduling.ErrTimeConflict)
}

func TestExecute_MissingScheduleFallsBackToDefault(t *testing.T) {
	f := newFixture(t)
	f.schedules.err = scheduleRepo.ErrScheduleNotFound

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("11:00"), resp.EndTime)
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

func TestExecute_ClientNotFound(t *testing.T) {
	f := newFixture(t)
	f.clients.err = clientRepo.ErrClientNotFound

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrClientNotFound)
}

func TestExecute_ServiceWithInvalidDuration(t *testing.T) {
	f := newFixture(t)
	f.services.service.DurationMinutes = -15

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInvalidServiceDuration)
}

func TestExecute_InvalidRequest(t *testing.T) {
	f := newFixture(t)

	longComment := strings.Repeat("x", domain.MaxCommentLength+1)

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"zero client", func(r *Request) { r.ClientID = 0 }},
		{"zero employee", func(r *Request) { r.EmployeeID = 0 }},
		{"zero service", func(r *Request) { r.ServiceID = 0 }},
		{"zero date", func(r *Request) { r.Date = time.Time{} }},
		{"empty start time", func(r *Request) { r.StartTime = "" }},
		{"malformed start time", func(r *Request) { r.StartTime = "25:00" }},
		{"comment too long", func(r *Request) { r.Comment = &longComment }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := f.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

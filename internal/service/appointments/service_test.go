package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	appointmentRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/appointment"
	employeeRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/employee"
	"github.com/m04kA/Salon-BookingService/internal/service/appointments/models"
	"github.com/m04kA/Salon-BookingService/pkg/ptr"
	"github.com/m04kA/Salon-BookingService/pkg/types"
)

type fakeAppointmentRepo struct {
	appointment   *domain.Appointment
	appointments  []*domain.Appointment
	getErr        error
	updatedStatus *domain.AppointmentStatus
	cancelReason  *string
	lastFilter    *domain.EmployeeAppointmentsFilter
}

func (f *fakeAppointmentRepo) GetByID(_ context.Context, _ int64) (*domain.Appointment, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.appointment, nil
}

func (f *fakeAppointmentRepo) GetByClientID(_ context.Context, _ int64, _ *domain.AppointmentStatus) ([]*domain.Appointment, error) {
	return f.appointments, nil
}

func (f *fakeAppointmentRepo) GetByEmployeeWithFilter(_ context.Context, filter domain.EmployeeAppointmentsFilter) ([]*domain.Appointment, error) {
	f.lastFilter = &filter
	return f.appointments, nil
}

func (f *fakeAppointmentRepo) UpdateStatus(_ context.Context, _ int64, status domain.AppointmentStatus) error {
	f.updatedStatus = &status
	return nil
}

func (f *fakeAppointmentRepo) Cancel(_ context.Context, _ int64, reason string) error {
	f.cancelReason = &reason
	return nil
}

type fakeEmployeeRepo struct {
	err error
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id int64) (*domain.Employee, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Employee{ID: id, Name: "Anna", IsActive: true}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testAppointment(status domain.AppointmentStatus) *domain.Appointment {
	return &domain.Appointment{
		ID:              10,
		ClientID:        3,
		EmployeeID:      1,
		ServiceID:       2,
		Date:            time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		StartTime:       types.TimeString("10:00"),
		EndTime:         types.TimeString("11:00"),
		DurationMinutes: 60,
		Status:          status,
		ServiceName:     "Haircut",
		ServicePrice:    1500,
	}
}

func newService(repo *fakeAppointmentRepo, employees *fakeEmployeeRepo) *Service {
	return NewService(repo, employees, nopLogger{})
}

func TestGetByID_Success(t *testing.T) {
	repo := &fakeAppointmentRepo{appointment: testAppointment(domain.StatusConfirmed)}
	svc := newService(repo, &fakeEmployeeRepo{})

	resp, err := svc.GetByID(context.Background(), 10)
	require.NoError(t, err)

	assert.Equal(t, int64(10), resp.ID)
	assert.Equal(t, "2025-10-15", resp.Date)
	assert.Equal(t, "10:00", resp.StartTime)
	assert.Equal(t, "11:00", resp.EndTime)
	assert.Equal(t, "confirmed", resp.Status)
}

func TestGetByID_NotFound(t *testing.T) {
	repo := &fakeAppointmentRepo{getErr: appointmentRepo.ErrAppointmentNotFound}
	svc := newService(repo, &fakeEmployeeRepo{})

	_, err := svc.GetByID(context.Background(), 10)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestGetClientAppointments_InvalidStatus(t *testing.T) {
	svc := newService(&fakeAppointmentRepo{}, &fakeEmployeeRepo{})

	_, err := svc.GetClientAppointments(context.Background(), &models.GetClientAppointmentsRequest{
		ClientID: 3,
		Status:   ptr.Ptr("unknown"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetClientAppointments_EmptyHistory(t *testing.T) {
	svc := newService(&fakeAppointmentRepo{}, &fakeEmployeeRepo{})

	resp, err := svc.GetClientAppointments(context.Background(), &models.GetClientAppointmentsRequest{ClientID: 3})
	require.NoError(t, err)
	assert.Empty(t, resp.Appointments)
}

func TestGetEmployeeAppointments_FilterPassed(t *testing.T) {
	repo := &fakeAppointmentRepo{appointments: []*domain.Appointment{testAppointment(domain.StatusConfirmed)}}
	svc := newService(repo, &fakeEmployeeRepo{})

	date := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	resp, err := svc.GetEmployeeAppointments(context.Background(), &models.GetEmployeeAppointmentsRequest{
		EmployeeID: 1,
		StartDate:  &date,
		EndDate:    &date,
		Status:     ptr.Ptr("confirmed"),
	})
	require.NoError(t, err)

	assert.Len(t, resp.Appointments, 1)
	require.NotNil(t, repo.lastFilter)
	assert.Equal(t, int64(1), repo.lastFilter.EmployeeID)
	require.NotNil(t, repo.lastFilter.Status)
	assert.Equal(t, domain.StatusConfirmed, *repo.lastFilter.Status)
}

func TestGetEmployeeAppointments_EmployeeNotFound(t *testing.T) {
	svc := newService(&fakeAppointmentRepo{}, &fakeEmployeeRepo{err: employeeRepo.ErrEmployeeNotFound})

	_, err := svc.GetEmployeeAppointments(context.Background(), &models.GetEmployeeAppointmentsRequest{EmployeeID: 99})
	assert.ErrorIs(t, err, ErrEmployeeNotFound)
}

func TestCancel_Success(t *testing.T) {
	repo := &fakeAppointmentRepo{appointment: testAppointment(domain.StatusPending)}
	svc := newService(repo, &fakeEmployeeRepo{})

	err := svc.Cancel(context.Background(), 10, &models.CancelAppointmentRequest{
		UserID:             3,
		CancellationReason: "client request",
	})
	require.NoError(t, err)
	require.NotNil(t, repo.cancelReason)
	assert.Equal(t, "client request", *repo.cancelReason)
}

func TestCancel_NotCancellableStatuses(t *testing.T) {
	for _, status := range []domain.AppointmentStatus{
		domain.StatusArrived,
		domain.StatusCompleted,
		domain.StatusCancelled,
		domain.StatusNoShow,
	} {
		t.Run(string(status), func(t *testing.T) {
			repo := &fakeAppointmentRepo{appointment: testAppointment(status)}
			svc := newService(repo, &fakeEmployeeRepo{})

			err := svc.Cancel(context.Background(), 10, &models.CancelAppointmentRequest{UserID: 3})
			assert.ErrorIs(t, err, ErrCannotCancel)
		})
	}
}

func TestUpdateStatus_Success(t *testing.T) {
	repo := &fakeAppointmentRepo{appointment: testAppointment(domain.StatusConfirmed)}
	svc := newService(repo, &fakeEmployeeRepo{})

	err := svc.UpdateStatus(context.Background(), 10, &models.UpdateStatusRequest{
		UserID: 5,
		Status: "arrived",
	})
	require.NoError(t, err)
	require.NotNil(t, repo.updatedStatus)
	assert.Equal(t, domain.StatusArrived, *repo.updatedStatus)
}

func TestUpdateStatus_FinishedAppointment(t *testing.T) {
	repo := &fakeAppointmentRepo{appointment: testAppointment(domain.StatusCompleted)}
	svc := newService(repo, &fakeEmployeeRepo{})

	err := svc.UpdateStatus(context.Background(), 10, &models.UpdateStatusRequest{
		UserID: 5,
		Status: "confirmed",
	})
	assert.ErrorIs(t, err, ErrAppointmentFinished)
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	repo := &fakeAppointmentRepo{appointment: testAppointment(domain.StatusPending)}
	svc := newService(repo, &fakeEmployeeRepo{})

	err := svc.UpdateStatus(context.Background(), 10, &models.UpdateStatusRequest{
		UserID: 5,
		Status: "done",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

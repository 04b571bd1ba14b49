package appointment

import (
	"testing"
	"time"

	appointmentRepo "glamazon/database/repository/appointment"
	"glamazon/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockAppointmentRepo struct {
	mock.Mock
}

func (m *mockAppointmentRepo) Create(appt *models.Appointment) error {
	return m.Called(appt).Error(0)
}

func (m *mockAppointmentRepo) GetByID(id string) (*models.Appointment, error) {
	args := m.Called(id)
	if appt := args.Get(0); appt != nil {
		return appt.(*models.Appointment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAppointmentRepo) UpdateStatus(id, status string) error {
	return m.Called(id, status).Error(0)
}

func (m *mockAppointmentRepo) DeleteByUser(userID string) error {
	return m.Called(userID).Error(0)
}

func (m *mockAppointmentRepo) GetActiveByDate(date string) ([]models.Appointment, error) {
	args := m.Called(date)
	if appts := args.Get(0); appts != nil {
		return appts.([]models.Appointment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAppointmentRepo) ListByUser(userID string) ([]models.Appointment, error) {
	args := m.Called(userID)
	if appts := args.Get(0); appts != nil {
		return appts.([]models.Appointment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAppointmentRepo) ListAdmin(filter appointmentRepo.AdminFilter) ([]models.AdminAppointment, int64, error) {
	args := m.Called(filter)
	var appts []models.AdminAppointment
	if v := args.Get(0); v != nil {
		appts = v.([]models.AdminAppointment)
	}
	return appts, args.Get(1).(int64), args.Error(2)
}

func (m *mockAppointmentRepo) CountAll() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockAppointmentRepo) CountByStatus(status string) (int64, error) {
	args := m.Called(status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockAppointmentRepo) CountByDate(date string) (int64, error) {
	args := m.Called(date)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockAppointmentRepo) CountUpcoming(fromDate string) (int64, error) {
	args := m.Called(fromDate)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockAppointmentRepo) CountByUser(userID string) (int64, error) {
	args := m.Called(userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockAppointmentRepo) CountByUserAndStatus(userID, status string) (int64, error) {
	args := m.Called(userID, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockAppointmentRepo) CountUpcomingByUser(userID, fromDate string) (int64, error) {
	args := m.Called(userID, fromDate)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockAppointmentRepo) CountUpdatedAfter(t time.Time) (int64, error) {
	args := m.Called(t)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockAppointmentRepo) LatestUpdatedAt() (time.Time, error) {
	args := m.Called()
	return args.Get(0).(time.Time), args.Error(1)
}

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) EnqueueBookingConfirmation(appt *models.Appointment) error {
	return m.Called(appt).Error(0)
}

func newTestService(repo *mockAppointmentRepo, notifier *mockNotifier, now time.Time) *DefaultAppointmentService {
	svc := &DefaultAppointmentService{
		Repo:     repo,
		Hours:    testHours,
		Location: time.UTC,
		Clock:    func() time.Time { return now },
	}
	if notifier != nil {
		svc.Notifier = notifier
	}
	return svc
}

func TestGetAvailableSlotsService(t *testing.T) {
	repo := new(mockAppointmentRepo)
	repo.On("GetActiveByDate", "2026-03-02").Return([]models.Appointment{
		{Time: "14:00", Status: models.AppointmentStatusApproved, Service: models.Service{Duration: 60}},
	}, nil)

	svc := newTestService(repo, nil, calmNow)
	result, err := svc.GetAvailableSlots("2026-03-02", 30)
	require.NoError(t, err)

	assert.Equal(t, "2026-03-02", result.Date)
	assert.Equal(t, 30, result.ServiceDuration)
	assert.NotContains(t, result.AvailableSlots, "14:00")
	assert.NotContains(t, result.AvailableSlots, "14:30")
	assert.Contains(t, result.AvailableSlots, "13:30")
	repo.AssertExpectations(t)
}

func TestBookSuccess(t *testing.T) {
	repo := new(mockAppointmentRepo)
	notifier := new(mockNotifier)
	repo.On("GetActiveByDate", "2026-03-02").Return(nil, nil)
	repo.On("Create", mock.AnythingOfType("*models.Appointment")).Return(nil)
	notifier.On("EnqueueBookingConfirmation", mock.AnythingOfType("*models.Appointment")).Return(nil)

	svc := newTestService(repo, notifier, calmNow)
	appt, err := svc.Book("user-1", BookingRequest{
		Date:    "2026-03-02",
		Time:    "14:00",
		Service: models.Service{Name: "Braids", Price: 45, Duration: 60},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, appt.ID)
	assert.Equal(t, "user-1", appt.UserID)
	assert.Equal(t, models.AppointmentStatusApproved, appt.Status)
	assert.Equal(t, "14:00", appt.Time)
	repo.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestBookSlotTakenDoesNotWrite(t *testing.T) {
	repo := new(mockAppointmentRepo)
	repo.On("GetActiveByDate", "2026-03-02").Return([]models.Appointment{
		{Time: "14:00", Status: models.AppointmentStatusApproved, Service: models.Service{Duration: 60}},
	}, nil)

	svc := newTestService(repo, nil, calmNow)
	_, err := svc.Book("user-1", BookingRequest{
		Date:    "2026-03-02",
		Time:    "14:30",
		Service: models.Service{Name: "Braids", Price: 45, Duration: 30},
	})

	assert.ErrorIs(t, err, ErrSlotTaken)
	repo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestBookDuplicateIndexSurfacesAsSlotTaken(t *testing.T) {
	repo := new(mockAppointmentRepo)
	repo.On("GetActiveByDate", "2026-03-02").Return(nil, nil)
	repo.On("Create", mock.Anything).Return(appointmentRepo.ErrDuplicateSlot)

	svc := newTestService(repo, nil, calmNow)
	_, err := svc.Book("user-1", BookingRequest{
		Date:    "2026-03-02",
		Time:    "14:00",
		Service: models.Service{Duration: 30},
	})
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestBookPastDate(t *testing.T) {
	repo := new(mockAppointmentRepo)

	svc := newTestService(repo, nil, time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC))
	_, err := svc.Book("user-1", BookingRequest{
		Date:    "2026-03-01",
		Time:    "14:00",
		Service: models.Service{Duration: 30},
	})
	assert.ErrorIs(t, err, ErrPastDate)
	repo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestBookInvalidTime(t *testing.T) {
	svc := newTestService(new(mockAppointmentRepo), nil, calmNow)
	_, err := svc.Book("user-1", BookingRequest{
		Date:    "2026-03-02",
		Time:    "2pm",
		Service: models.Service{Duration: 30},
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestBookNotifierFailureDoesNotFailBooking(t *testing.T) {
	repo := new(mockAppointmentRepo)
	notifier := new(mockNotifier)
	repo.On("GetActiveByDate", "2026-03-02").Return(nil, nil)
	repo.On("Create", mock.Anything).Return(nil)
	notifier.On("EnqueueBookingConfirmation", mock.Anything).Return(assert.AnError)

	svc := newTestService(repo, notifier, calmNow)
	appt, err := svc.Book("user-1", BookingRequest{
		Date:    "2026-03-02",
		Time:    "14:00",
		Service: models.Service{Duration: 30},
	})
	require.NoError(t, err)
	assert.NotNil(t, appt)
}

func TestUpdateStatusTransitions(t *testing.T) {
	cases := []struct {
		name      string
		current   string
		target    string
		wantErr   error
		wantWrite bool
	}{
		{"approved to completed", models.AppointmentStatusApproved, models.AppointmentStatusCompleted, nil, true},
		{"approved to cancelled", models.AppointmentStatusApproved, models.AppointmentStatusCancelled, nil, true},
		{"completed is terminal", models.AppointmentStatusCompleted, models.AppointmentStatusCancelled, ErrInvalidTransition, false},
		{"cancelled is terminal", models.AppointmentStatusCancelled, models.AppointmentStatusCompleted, ErrInvalidTransition, false},
		{"unknown target", models.AppointmentStatusApproved, "pending", ErrInvalidTransition, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := new(mockAppointmentRepo)
			if tc.target == models.AppointmentStatusCompleted || tc.target == models.AppointmentStatusCancelled {
				repo.On("GetByID", "appt-1").Return(&models.Appointment{
					ID: "appt-1", Status: tc.current,
				}, nil)
			}
			if tc.wantWrite {
				repo.On("UpdateStatus", "appt-1", tc.target).Return(nil)
			}

			svc := newTestService(repo, nil, calmNow)
			appt, err := svc.UpdateStatus("appt-1", tc.target)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.target, appt.Status)
			repo.AssertExpectations(t)
		})
	}
}

func TestUpdateStatusNotFound(t *testing.T) {
	repo := new(mockAppointmentRepo)
	repo.On("GetByID", "missing").Return(nil, nil)

	svc := newTestService(repo, nil, calmNow)
	_, err := svc.UpdateStatus("missing", models.AppointmentStatusCompleted)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserStats(t *testing.T) {
	repo := new(mockAppointmentRepo)
	repo.On("CountByUser", "user-1").Return(int64(7), nil)
	repo.On("CountUpcomingByUser", "user-1", "2026-03-01").Return(int64(2), nil)
	repo.On("CountByUserAndStatus", "user-1", models.AppointmentStatusCompleted).Return(int64(4), nil)
	repo.On("CountByUserAndStatus", "user-1", models.AppointmentStatusCancelled).Return(int64(1), nil)

	svc := newTestService(repo, nil, calmNow)
	stats, err := svc.UserStats("user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(7), stats.TotalAppointments)
	assert.Equal(t, int64(2), stats.UpcomingAppointments)
	assert.Equal(t, int64(4), stats.CompletedAppointments)
	assert.Equal(t, int64(1), stats.CancelledAppointments)
}

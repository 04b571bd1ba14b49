package dashboard

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"glamazon/config"
	appointmentRepo "glamazon/database/repository/appointment"
	userRepo "glamazon/database/repository/user"
	"glamazon/models"
	"glamazon/services/presence"
)

// DashboardStats is the admin overview counter set.
type DashboardStats struct {
	TotalClients          int64 `json:"totalClients"`
	TotalAppointments     int64 `json:"totalAppointments"`
	TodayAppointments     int64 `json:"todayAppointments"`
	UpcomingAppointments  int64 `json:"upcomingAppointments"`
	CompletedAppointments int64 `json:"completedAppointments"`
	CancelledAppointments int64 `json:"cancelledAppointments"`
	OnlineUsers           int64 `json:"onlineUsers"`
}

// UserAdminStats backs the admin users overview.
type UserAdminStats struct {
	TotalUsers       int64 `json:"totalUsers"`
	TotalClients     int64 `json:"totalClients"`
	NewUsersThisWeek int64 `json:"newUsersThisWeek"`
	OnlineUsers      int64 `json:"onlineUsers"`
}

// DataHash fingerprints the dataset so a polling client can detect change
// with a single cheap request.
type DataHash struct {
	Hash             string    `json:"hash"`
	UserCount        int64     `json:"userCount"`
	AppointmentCount int64     `json:"appointmentCount"`
	LatestUpdate     time.Time `json:"latestUpdate"`
}

// UpdateCheck answers "anything new since lastUpdate?".
type UpdateCheck struct {
	HasUpdates   bool      `json:"hasUpdates"`
	UpdatedCount int64     `json:"updatedCount"`
	LatestUpdate time.Time `json:"latestUpdate"`
	CheckedAt    time.Time `json:"checkedAt"`
}

// DashboardService aggregates cross-entity counters for the admin UI.
type DashboardService interface {
	Stats() (*DashboardStats, error)
	UserStats() (*UserAdminStats, error)
	CurrentDataHash() (*DataHash, error)
	RealTimeUpdates(lastUpdate time.Time) (*UpdateCheck, error)
}

// DefaultDashboardService is the production implementation.
type DefaultDashboardService struct {
	Users        userRepo.UserRepository
	Appointments appointmentRepo.AppointmentRepository
	Presence     presence.PresenceService
	Clock        func() time.Time
}

func NewDefaultDashboardService(
	users userRepo.UserRepository,
	appts appointmentRepo.AppointmentRepository,
	p presence.PresenceService,
) *DefaultDashboardService {
	return &DefaultDashboardService{Users: users, Appointments: appts, Presence: p}
}

func (s *DefaultDashboardService) now() time.Time {
	if s.Clock != nil {
		return s.Clock().In(config.BusinessLocation())
	}
	return time.Now().In(config.BusinessLocation())
}

func (s *DefaultDashboardService) onlineCount() int64 {
	if s.Presence == nil {
		return 0
	}
	n, err := s.Presence.OnlineCount()
	if err != nil {
		return 0
	}
	return n
}

func (s *DefaultDashboardService) Stats() (*DashboardStats, error) {
	today := s.now().Format(models.DateFormat)

	clients, err := s.Users.CountByType(models.UserTypeClient)
	if err != nil {
		return nil, fmt.Errorf("failed to count clients: %w", err)
	}
	total, err := s.Appointments.CountAll()
	if err != nil {
		return nil, fmt.Errorf("failed to count appointments: %w", err)
	}
	todayCount, err := s.Appointments.CountByDate(today)
	if err != nil {
		return nil, fmt.Errorf("failed to count today's appointments: %w", err)
	}
	upcoming, err := s.Appointments.CountUpcoming(today)
	if err != nil {
		return nil, fmt.Errorf("failed to count upcoming appointments: %w", err)
	}
	completed, err := s.Appointments.CountByStatus(models.AppointmentStatusCompleted)
	if err != nil {
		return nil, fmt.Errorf("failed to count completed appointments: %w", err)
	}
	cancelled, err := s.Appointments.CountByStatus(models.AppointmentStatusCancelled)
	if err != nil {
		return nil, fmt.Errorf("failed to count cancelled appointments: %w", err)
	}

	return &DashboardStats{
		TotalClients:          clients,
		TotalAppointments:     total,
		TodayAppointments:     todayCount,
		UpcomingAppointments:  upcoming,
		CompletedAppointments: completed,
		CancelledAppointments: cancelled,
		OnlineUsers:           s.onlineCount(),
	}, nil
}

func (s *DefaultDashboardService) UserStats() (*UserAdminStats, error) {
	total, err := s.Users.CountAll()
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	clients, err := s.Users.CountByType(models.UserTypeClient)
	if err != nil {
		return nil, fmt.Errorf("failed to count clients: %w", err)
	}
	weekAgo := s.now().AddDate(0, 0, -7)
	newUsers, err := s.Users.CountCreatedAfter(weekAgo)
	if err != nil {
		return nil, fmt.Errorf("failed to count new users: %w", err)
	}

	return &UserAdminStats{
		TotalUsers:       total,
		TotalClients:     clients,
		NewUsersThisWeek: newUsers,
		OnlineUsers:      s.onlineCount(),
	}, nil
}

// CurrentDataHash hashes the user count, appointment count, and the latest
// appointment update time. Any write to either collection changes the hash.
func (s *DefaultDashboardService) CurrentDataHash() (*DataHash, error) {
	users, err := s.Users.CountAll()
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	appts, err := s.Appointments.CountAll()
	if err != nil {
		return nil, fmt.Errorf("failed to count appointments: %w", err)
	}
	latest, err := s.Appointments.LatestUpdatedAt()
	if err != nil {
		return nil, fmt.Errorf("failed to load latest update: %w", err)
	}

	sum := sha256.Sum256([]byte(fmt.Sprintf("%d|%d|%d", users, appts, latest.UnixNano())))
	return &DataHash{
		Hash:             hex.EncodeToString(sum[:]),
		UserCount:        users,
		AppointmentCount: appts,
		LatestUpdate:     latest,
	}, nil
}

func (s *DefaultDashboardService) RealTimeUpdates(lastUpdate time.Time) (*UpdateCheck, error) {
	updated, err := s.Appointments.CountUpdatedAfter(lastUpdate)
	if err != nil {
		return nil, fmt.Errorf("failed to count updates: %w", err)
	}
	latest, err := s.Appointments.LatestUpdatedAt()
	if err != nil {
		return nil, fmt.Errorf("failed to load latest update: %w", err)
	}

	return &UpdateCheck{
		HasUpdates:   updated > 0,
		UpdatedCount: updated,
		LatestUpdate: latest,
		CheckedAt:    s.now(),
	}, nil
}

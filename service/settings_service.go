package service

import (
	"context"

	"github.com/webblaze/projectflow-be/repository"
	"github.com/webblaze/projectflow-be/types"
)

// SettingsService updates the owner account's preference blocks. The
// security block's 2FA toggle goes through the dual-flag setter so the
// nested copy never drifts from the top-level one.
type SettingsService interface {
	Get(ctx context.Context, userID string) (*types.Settings, error)
	UpdateNotifications(ctx context.Context, userID string, req *types.UpdateNotificationSettingsRequest) (*types.Settings, error)
	UpdateAppearance(ctx context.Context, userID string, req *types.UpdateAppearanceSettingsRequest) (*types.Settings, error)
	UpdateSecurity(ctx context.Context, userID string, req *types.UpdateSecuritySettingsRequest) (*types.Settings, error)
	UpdatePrivacy(ctx context.Context, userID string, req *types.UpdatePrivacySettingsRequest) (*types.Settings, error)
}

type settingsService struct {
	users    repository.UserRepo
	activity ActivityService
}

func NewSettingsService(users repository.UserRepo, activity ActivityService) SettingsService {
	return &settingsService{
		users:    users,
		activity: activity,
	}
}

func (s *settingsService) Get(ctx context.Context, userID string) (*types.Settings, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &user.Settings, nil
}

// save persists the user and logs the settings change in one place.
func (s *settingsService) save(ctx context.Context, user *types.User, block string) (*types.Settings, error) {
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	s.activity.Record(ctx, user.CompanyName, types.ACTIVITY_TYPE_SETTINGS, types.ACTIVITY_ACTION_EDIT,
		block+" Settings", "Updated "+block+" preferences", user.DisplayName())
	return &user.Settings, nil
}

func (s *settingsService) UpdateNotifications(ctx context.Context, userID string, req *types.UpdateNotificationSettingsRequest) (*types.Settings, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.Settings.Notifications = types.NotificationSettings{
		EmailNotifications: req.EmailNotifications,
		TaskReminders:      req.TaskReminders,
		ProjectUpdates:     req.ProjectUpdates,
		TeamMessages:       req.TeamMessages,
		WeeklyReports:      req.WeeklyReports,
		DailyDigest:        req.DailyDigest,
	}
	return s.save(ctx, user, "Notification")
}

func (s *settingsService) UpdateAppearance(ctx context.Context, userID string, req *types.UpdateAppearanceSettingsRequest) (*types.Settings, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.Settings.Appearance = types.AppearanceSettings{
		Theme:                req.Theme,
		SidebarCollapsed:     req.SidebarCollapsed,
		CompactMode:          req.CompactMode,
		ShowAvatars:          req.ShowAvatars,
		ShowStatusIndicators: req.ShowStatusIndicators,
	}
	return s.save(ctx, user, "Appearance")
}

func (s *settingsService) UpdateSecurity(ctx context.Context, userID string, req *types.UpdateSecuritySettingsRequest) (*types.Settings, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.Settings.Security.SessionTimeout = req.SessionTimeout
	user.Settings.Security.LoginAlerts = req.LoginAlerts
	user.SetTwoFactorEnabled(req.TwoFactorAuth)
	return s.save(ctx, user, "Security")
}

func (s *settingsService) UpdatePrivacy(ctx context.Context, userID string, req *types.UpdatePrivacySettingsRequest) (*types.Settings, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.Settings.Privacy = types.PrivacySettings{
		ProfileVisibility:   req.ProfileVisibility,
		ActivityVisibility:  req.ActivityVisibility,
		ShowOnlineStatus:    req.ShowOnlineStatus,
		AllowDirectMessages: req.AllowDirectMessages,
	}
	return s.save(ctx, user, "Privacy")
}

package service

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/webblaze/projectflow-be/config"
	"github.com/webblaze/projectflow-be/logger"
	"github.com/webblaze/projectflow-be/repository"
	"github.com/webblaze/projectflow-be/types"
)

// CleanupService reaps two kinds of expired data: employee accounts
// whose temporary password lapsed before the first login, and
// soft-deleted projects past the retention window.
type CleanupService interface {
	SweepExpiredEmployees(ctx context.Context) (int64, error)
	SweepDeletedProjects(ctx context.Context) (int, error)
	// Start schedules both sweeps and returns a stop function.
	Start() (func(), error)
}

type cleanupService struct {
	employees repository.EmployeeRepo
	projects  repository.ProjectRepo
	images    ImageService
	retention time.Duration

	employeeSpec string
	projectSpec  string
}

func NewCleanupService(
	employees repository.EmployeeRepo,
	projects repository.ProjectRepo,
	images ImageService,
	cfg *config.Config,
) CleanupService {
	return &cleanupService{
		employees:    employees,
		projects:     projects,
		images:       images,
		retention:    time.Duration(cfg.Cleanup.ProjectRetentionDays) * 24 * time.Hour,
		employeeSpec: cfg.Cleanup.EmployeeSweepSpec,
		projectSpec:  cfg.Cleanup.ProjectSweepSpec,
	}
}

func (s *cleanupService) SweepExpiredEmployees(ctx context.Context) (int64, error) {
	deleted, err := s.employees.DeleteExpired(ctx, time.Now())
	if err != nil {
		return 0, err
	}
	if deleted > 0 {
		logger.Log.WithField("count", deleted).Info("removed employees with expired temporary passwords")
	}
	return deleted, nil
}

func (s *cleanupService) SweepDeletedProjects(ctx context.Context) (int, error) {
	cutoff := time.Now().Add(-s.retention)
	projects, err := s.projects.ListDeletedBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	purged := 0
	for _, project := range projects {
		if urls := project.ImageURLs(); len(urls) > 0 {
			result := s.images.DeleteMany(ctx, urls)
			if result.FailedCount > 0 {
				logger.Log.WithFields(map[string]interface{}{
					"project": project.ProjectID,
					"failed":  result.FailedCount,
				}).Warn("some project images could not be deleted")
			}
		}
		// The status rides in the delete filter: a project restored
		// between the list and the delete survives.
		err := s.projects.Delete(ctx, project.CompanyName, project.ProjectID, types.PROJECT_STATUS_DELETED)
		if err != nil {
			logger.Log.WithError(err).WithField("project", project.ProjectID).Warn("failed to purge project")
			continue
		}
		purged++
	}
	if purged > 0 {
		logger.Log.WithField("count", purged).Info("purged soft-deleted projects past retention")
	}
	return purged, nil
}

func (s *cleanupService) Start() (func(), error) {
	c := cron.New()
	if _, err := c.AddFunc(s.employeeSpec, func() {
		if _, err := s.SweepExpiredEmployees(context.Background()); err != nil {
			logger.Log.WithError(err).Error("employee sweep failed")
		}
	}); err != nil {
		return nil, err
	}
	if _, err := c.AddFunc(s.projectSpec, func() {
		if _, err := s.SweepDeletedProjects(context.Background()); err != nil {
			logger.Log.WithError(err).Error("project sweep failed")
		}
	}); err != nil {
		return nil, err
	}
	c.Start()
	return func() { c.Stop() }, nil
}

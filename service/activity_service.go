package service

import (
	"context"
	"time"

	"github.com/webblaze/projectflow-be/logger"
	"github.com/webblaze/projectflow-be/repository"
	"github.com/webblaze/projectflow-be/types"
)

// ActivityService keeps the append-only audit trail. Record never
// returns an error: an activity write failing must not fail the
// operation being recorded.
type ActivityService interface {
	Record(ctx context.Context, companyName, activityType, action, name, description, performedBy string)
	Recent(ctx context.Context, companyName string) ([]*types.Activity, error)
}

type activityService struct {
	repo repository.ActivityRepo
	feed *WebSocketService
}

func NewActivityService(repo repository.ActivityRepo, feed *WebSocketService) ActivityService {
	return &activityService{
		repo: repo,
		feed: feed,
	}
}

func (s *activityService) Record(ctx context.Context, companyName, activityType, action, name, description, performedBy string) {
	activity := &types.Activity{
		Type:        activityType,
		Action:      action,
		Name:        name,
		Description: description,
		Timestamp:   time.Now(),
		PerformedBy: performedBy,
		CompanyName: companyName,
	}
	if err := s.repo.Create(ctx, activity); err != nil {
		logger.Log.WithError(err).WithField("type", activityType).Error("failed to record activity")
		return
	}
	if s.feed != nil {
		s.feed.Broadcast(activity)
	}
}

func (s *activityService) Recent(ctx context.Context, companyName string) ([]*types.Activity, error) {
	return s.repo.Recent(ctx, companyName, 20)
}

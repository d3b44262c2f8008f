package dashboard

import (
	"context"

	"github.com/muhammadheryan/bhrc-portal/application/activity"
	"github.com/muhammadheryan/bhrc-portal/constant"
	"github.com/muhammadheryan/bhrc-portal/model"
	analyticsrepo "github.com/muhammadheryan/bhrc-portal/repository/analytics"
	"github.com/muhammadheryan/bhrc-portal/utils/errors"
	"github.com/muhammadheryan/bhrc-portal/utils/logger"
	"go.uber.org/zap"
)

const recentActivity = 10

type DashboardApp interface {
	Admin(ctx context.Context) (*model.AdminDashboard, error)
	Member(ctx context.Context, principal *model.Principal) (*model.MemberDashboard, error)
}

type DashboardAppImpl struct {
	analyticsRepo analyticsrepo.AnalyticsRepository
	activityApp   activity.ActivityApp
}

func NewDashboardApp(analyticsRepo analyticsrepo.AnalyticsRepository, activityApp activity.ActivityApp) DashboardApp {
	return &DashboardAppImpl{analyticsRepo: analyticsRepo, activityApp: activityApp}
}

func (s *DashboardAppImpl) Admin(ctx context.Context) (*model.AdminDashboard, error) {
	res, err := s.analyticsRepo.AdminCounts(ctx)
	if err != nil {
		logger.Error("[Admin] err analyticsRepo.AdminCounts", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	// the counters are still useful without the feed
	res.RecentActivity, err = s.activityApp.Recent(ctx, recentActivity)
	if err != nil {
		res.RecentActivity = []model.ActivityEntity{}
	}
	return res, nil
}

func (s *DashboardAppImpl) Member(ctx context.Context, principal *model.Principal) (*model.MemberDashboard, error) {
	res, err := s.analyticsRepo.MemberCounts(ctx, principal.UserID, principal.Email)
	if err != nil {
		logger.Error("[Member] err analyticsRepo.MemberCounts", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return res, nil
}

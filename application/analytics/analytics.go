package analytics

import (
	"context"
	"math"
	"time"

	"github.com/muhammadheryan/bhrc-portal/constant"
	"github.com/muhammadheryan/bhrc-portal/model"
	analyticsrepo "github.com/muhammadheryan/bhrc-portal/repository/analytics"
	"github.com/muhammadheryan/bhrc-portal/utils/errors"
	"github.com/muhammadheryan/bhrc-portal/utils/logger"
	"go.uber.org/zap"
)

const (
	DefaultPeriod = "30d"

	defaultTrendMonths = 12
	maxTrendMonths     = 36
)

var periods = map[string]time.Duration{
	"7d":  7 * 24 * time.Hour,
	"30d": 30 * 24 * time.Hour,
	"90d": 90 * 24 * time.Hour,
	"1y":  365 * 24 * time.Hour,
}

type AnalyticsApp interface {
	Overview(ctx context.Context, period string) (*model.AnalyticsOverview, error)
	Trends(ctx context.Context, months int) (*model.AnalyticsTrends, error)
}

type AnalyticsAppImpl struct {
	analyticsRepo analyticsrepo.AnalyticsRepository
	now           func() time.Time
}

func NewAnalyticsApp(analyticsRepo analyticsrepo.AnalyticsRepository) AnalyticsApp {
	return &AnalyticsAppImpl{analyticsRepo: analyticsRepo, now: time.Now}
}

// PercentageChange compares current with previous, rounded to two decimals.
// With no previous value any growth counts as 100%.
func PercentageChange(current, previous float64) float64 {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	return math.Round((current-previous)/previous*10000) / 100
}

func (s *AnalyticsAppImpl) compare(ctx context.Context, metric analyticsrepo.Metric, now time.Time, span time.Duration) (model.MetricChange, error) {
	from := now.Add(-span)
	current, err := s.analyticsRepo.Sum(ctx, metric, from, now)
	if err != nil {
		return model.MetricChange{}, err
	}
	previous, err := s.analyticsRepo.Sum(ctx, metric, from.Add(-span), from)
	if err != nil {
		return model.MetricChange{}, err
	}
	return model.MetricChange{
		Current:          current,
		Previous:         previous,
		PercentageChange: PercentageChange(current, previous),
	}, nil
}

func (s *AnalyticsAppImpl) Overview(ctx context.Context, period string) (*model.AnalyticsOverview, error) {
	if period == "" {
		period = DefaultPeriod
	}
	span, ok := periods[period]
	if !ok {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest).WithMessage("period must be one of 7d, 30d, 90d, 1y")
	}

	now := s.now()
	res := &model.AnalyticsOverview{Period: period}
	targets := []struct {
		metric analyticsrepo.Metric
		dst    *model.MetricChange
	}{
		{analyticsrepo.MetricUsers, &res.NewUsers},
		{analyticsrepo.MetricDonations, &res.Donations},
		{analyticsrepo.MetricDonationAmount, &res.DonationAmount},
		{analyticsrepo.MetricComplaints, &res.Complaints},
		{analyticsrepo.MetricRegistrations, &res.Registrations},
	}
	for _, t := range targets {
		change, err := s.compare(ctx, t.metric, now, span)
		if err != nil {
			logger.Error("[Overview] err analyticsRepo.Sum", zap.String("metric", string(t.metric)), zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		*t.dst = change
	}
	return res, nil
}

// Trends returns one point per calendar month, oldest first, with empty months as zero.
func (s *AnalyticsAppImpl) Trends(ctx context.Context, months int) (*model.AnalyticsTrends, error) {
	if months <= 0 {
		months = defaultTrendMonths
	}
	if months > maxTrendMonths {
		months = maxTrendMonths
	}

	now := s.now()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -(months - 1), 0)

	series := func(metric analyticsrepo.Metric) ([]model.TrendPoint, error) {
		rows, err := s.analyticsRepo.MonthlyTrend(ctx, metric, start)
		if err != nil {
			return nil, err
		}
		byMonth := make(map[string]float64, len(rows))
		for _, r := range rows {
			byMonth[r.Month] = r.Value
		}
		points := make([]model.TrendPoint, 0, months)
		for i := 0; i < months; i++ {
			m := start.AddDate(0, i, 0).Format("2006-01")
			points = append(points, model.TrendPoint{Month: m, Value: byMonth[m]})
		}
		return points, nil
	}

	res := &model.AnalyticsTrends{}
	var err error
	if res.Users, err = series(analyticsrepo.MetricUsers); err != nil {
		logger.Error("[Trends] err analyticsRepo.MonthlyTrend users", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if res.Donations, err = series(analyticsrepo.MetricDonationAmount); err != nil {
		logger.Error("[Trends] err analyticsRepo.MonthlyTrend donations", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if res.Complaints, err = series(analyticsrepo.MetricComplaints); err != nil {
		logger.Error("[Trends] err analyticsRepo.MonthlyTrend complaints", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return res, nil
}

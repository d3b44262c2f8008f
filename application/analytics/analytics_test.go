package analytics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/muhammadheryan/bhrc-portal/constant"
	analyticsmocks "github.com/muhammadheryan/bhrc-portal/mocks/repository/analytics"
	"github.com/muhammadheryan/bhrc-portal/model"
	analyticsrepo "github.com/muhammadheryan/bhrc-portal/repository/analytics"
	cerr "github.com/muhammadheryan/bhrc-portal/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 5, 20, 10, 0, 0, 0, time.UTC)

func TestPercentageChange(t *testing.T) {
	tests := []struct {
		name              string
		current, previous float64
		want              float64
	}{
		{name: "growth", current: 150, previous: 100, want: 50},
		{name: "decline", current: 2, previous: 3, want: -33.33},
		{name: "from zero", current: 7, previous: 0, want: 100},
		{name: "both zero", current: 0, previous: 0, want: 0},
		{name: "flat", current: 4, previous: 4, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PercentageChange(tt.current, tt.previous))
		})
	}
}

func TestAnalyticsApp_Overview(t *testing.T) {
	t.Run("unknown period", func(t *testing.T) {
		app := &AnalyticsAppImpl{analyticsRepo: analyticsmocks.NewAnalyticsRepository(t), now: func() time.Time { return now }}
		_, err := app.Overview(context.Background(), "2w")
		var ce cerr.CustomError
		require.True(t, errors.As(err, &ce))
		assert.Equal(t, constant.ErrInvalidRequest, ce.ErrorType())
	})

	t.Run("7d compares adjacent windows", func(t *testing.T) {
		repo := analyticsmocks.NewAnalyticsRepository(t)
		app := &AnalyticsAppImpl{analyticsRepo: repo, now: func() time.Time { return now }}
		week := 7 * 24 * time.Hour
		from := now.Add(-week)
		repo.On("Sum", mock.Anything, mock.Anything, from, now).Return(float64(10), nil).Times(5)
		repo.On("Sum", mock.Anything, mock.Anything, from.Add(-week), from).Return(float64(8), nil).Times(5)

		got, err := app.Overview(context.Background(), "7d")
		require.NoError(t, err)
		assert.Equal(t, "7d", got.Period)
		assert.Equal(t, model.MetricChange{Current: 10, Previous: 8, PercentageChange: 25}, got.NewUsers)
		assert.Equal(t, float64(25), got.Registrations.PercentageChange)
	})
}

func TestAnalyticsApp_Trends_FillsMissingMonths(t *testing.T) {
	repo := analyticsmocks.NewAnalyticsRepository(t)
	app := &AnalyticsAppImpl{analyticsRepo: repo, now: func() time.Time { return now }}
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	repo.On("MonthlyTrend", mock.Anything, analyticsrepo.MetricUsers, start).
		Return([]model.TrendPoint{{Month: "2024-04", Value: 5}}, nil).Once()
	repo.On("MonthlyTrend", mock.Anything, analyticsrepo.MetricDonationAmount, start).
		Return([]model.TrendPoint{}, nil).Once()
	repo.On("MonthlyTrend", mock.Anything, analyticsrepo.MetricComplaints, start).
		Return([]model.TrendPoint{{Month: "2024-03", Value: 1}, {Month: "2024-05", Value: 2}}, nil).Once()

	got, err := app.Trends(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, []model.TrendPoint{{Month: "2024-03"}, {Month: "2024-04", Value: 5}, {Month: "2024-05"}}, got.Users)
	assert.Len(t, got.Donations, 3)
	assert.Equal(t, float64(2), got.Complaints[2].Value)
}

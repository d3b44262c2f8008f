package dashboard

import (
	"context"
	"errors"
	"testing"

	activitymocks "github.com/muhammadheryan/bhrc-portal/mocks/application/activity"
	analyticsmocks "github.com/muhammadheryan/bhrc-portal/mocks/repository/analytics"
	"github.com/muhammadheryan/bhrc-portal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDashboardApp_Admin(t *testing.T) {
	tests := []struct {
		name      string
		recent    []model.ActivityEntity
		recentErr error
		wantLen   int
	}{
		{name: "counts with feed", recent: []model.ActivityEntity{{ID: 1}, {ID: 2}}, wantLen: 2},
		{name: "feed failure keeps counts", recentErr: errors.New("db down"), wantLen: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := analyticsmocks.NewAnalyticsRepository(t)
			act := activitymocks.NewActivityApp(t)
			repo.On("AdminCounts", mock.Anything).Return(&model.AdminDashboard{TotalUsers: 40, OpenComplaints: 3}, nil).Once()
			act.On("Recent", mock.Anything, recentActivity).Return(tt.recent, tt.recentErr).Once()

			got, err := NewDashboardApp(repo, act).Admin(context.Background())
			require.NoError(t, err)
			assert.Equal(t, int64(40), got.TotalUsers)
			assert.NotNil(t, got.RecentActivity)
			assert.Len(t, got.RecentActivity, tt.wantLen)
		})
	}
}

func TestDashboardApp_Member(t *testing.T) {
	repo := analyticsmocks.NewAnalyticsRepository(t)
	repo.On("MemberCounts", mock.Anything, uint64(4), "asha@example.org").
		Return(&model.MemberDashboard{DonationCount: 2, DonationTotal: 1500}, nil).Once()

	got, err := NewDashboardApp(repo, activitymocks.NewActivityApp(t)).
		Member(context.Background(), &model.Principal{UserID: 4, Email: "asha@example.org"})
	require.NoError(t, err)
	assert.Equal(t, float64(1500), got.DonationTotal)
}

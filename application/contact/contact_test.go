package contact

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/muhammadheryan/bhrc-portal/application/setting"
	"github.com/muhammadheryan/bhrc-portal/cmd/config"
	"github.com/muhammadheryan/bhrc-portal/constant"
	activitymocks "github.com/muhammadheryan/bhrc-portal/mocks/application/activity"
	notificationmocks "github.com/muhammadheryan/bhrc-portal/mocks/application/notification"
	settingmocks "github.com/muhammadheryan/bhrc-portal/mocks/application/setting"
	contactmocks "github.com/muhammadheryan/bhrc-portal/mocks/repository/contact"
	redismocks "github.com/muhammadheryan/bhrc-portal/mocks/repository/redis"
	"github.com/muhammadheryan/bhrc-portal/model"
	"github.com/muhammadheryan/bhrc-portal/thirdparty/mailer"
	cerr "github.com/muhammadheryan/bhrc-portal/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fields struct {
	contactRepo     *contactmocks.ContactRepository
	redisRepo       *redismocks.RedisRepository
	settingApp      *settingmocks.SettingApp
	notificationApp *notificationmocks.NotificationApp
	activityApp     *activitymocks.ActivityApp
}

func newFields(t *testing.T) fields {
	return fields{
		contactRepo:     contactmocks.NewContactRepository(t),
		redisRepo:       redismocks.NewRedisRepository(t),
		settingApp:      settingmocks.NewSettingApp(t),
		notificationApp: notificationmocks.NewNotificationApp(t),
		activityApp:     activitymocks.NewActivityApp(t),
	}
}

func (f fields) app() ContactApp {
	cfg := &config.Config{AppName: "BHRC"}
	cfg.Mail.AdminEmail = "fallback@bhrc.org"
	cfg.Contact.RateLimit = 5
	cfg.Contact.RateWindow = time.Hour
	return NewContactApp(cfg, f.contactRepo, f.redisRepo, f.settingApp, f.notificationApp, f.activityApp)
}

var message = &model.ContactRequest{
	Name: "Sunita <b>Devi</b>", Email: "Sunita@Example.org", Subject: "Legal help", Message: "Need help with a land dispute.",
}

func TestContactApp_Submit(t *testing.T) {
	tests := []struct {
		name     string
		hits     int64
		mockCall func(f fields)
		wantErr  constant.ErrorType
	}{
		{
			name: "stored and forwarded to the admin inbox",
			hits: 5,
			mockCall: func(f fields) {
				f.contactRepo.On("Create", mock.Anything, mock.MatchedBy(func(c *model.ContactEntity) bool {
					return c.Name == "Sunita Devi" && c.Email == "sunita@example.org" && c.IP == "10.0.0.8"
				})).Return(uint64(14), nil).Once()
				f.settingApp.On("Snapshot", mock.Anything).Return(setting.NewSnapshot([]model.SettingEntity{
					{Key: constant.SettingAdminEmail, Value: "desk@bhrc.org", Type: constant.SettingTypeString},
				}), nil).Once()
				f.notificationApp.On("Send", mock.Anything, mock.MatchedBy(func(m mailer.Message) bool {
					return m.To == "desk@bhrc.org"
				})).Return(nil).Once()
				f.activityApp.On("Log", mock.Anything, mock.Anything).Return().Once()
			},
		},
		{
			name:    "sixth message inside the hour",
			hits:    6,
			wantErr: constant.ErrTooManyRequests,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			f.redisRepo.On("IncrWindow", mock.Anything, "ratelimit:contact:10.0.0.8", time.Hour).
				Return(tt.hits, 20*time.Minute, nil).Once()
			if tt.mockCall != nil {
				tt.mockCall(f)
			}

			got, err := f.app().Submit(context.Background(), message, "10.0.0.8")
			if tt.wantErr != constant.Successful {
				var ce cerr.CustomError
				require.True(t, errors.As(err, &ce))
				assert.Equal(t, tt.wantErr, ce.ErrorType())
				assert.Equal(t, 1200, ce.Meta()["retry_after_seconds"])
				f.contactRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, uint64(14), got.ID)
		})
	}
}

func TestContactApp_Submit_LimiterDownFailsOpen(t *testing.T) {
	f := newFields(t)
	f.redisRepo.On("IncrWindow", mock.Anything, mock.Anything, mock.Anything).Return(int64(0), time.Duration(0), errors.New("redis down")).Once()
	f.contactRepo.On("Create", mock.Anything, mock.Anything).Return(uint64(15), nil).Once()
	f.settingApp.On("Snapshot", mock.Anything).Return(nil, errors.New("redis down")).Once()
	f.notificationApp.On("Send", mock.Anything, mock.MatchedBy(func(m mailer.Message) bool {
		return m.To == "fallback@bhrc.org"
	})).Return(nil).Once()
	f.activityApp.On("Log", mock.Anything, mock.Anything).Return().Once()

	_, err := f.app().Submit(context.Background(), message, "10.0.0.9")
	require.NoError(t, err)
}

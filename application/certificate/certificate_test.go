package certificate

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/muhammadheryan/bhrc-portal/application/setting"
	"github.com/muhammadheryan/bhrc-portal/cmd/config"
	"github.com/muhammadheryan/bhrc-portal/constant"
	activitymocks "github.com/muhammadheryan/bhrc-portal/mocks/application/activity"
	notificationmocks "github.com/muhammadheryan/bhrc-portal/mocks/application/notification"
	settingmocks "github.com/muhammadheryan/bhrc-portal/mocks/application/setting"
	certificatemocks "github.com/muhammadheryan/bhrc-portal/mocks/repository/certificate"
	usermocks "github.com/muhammadheryan/bhrc-portal/mocks/repository/user"
	"github.com/muhammadheryan/bhrc-portal/model"
	cerr "github.com/muhammadheryan/bhrc-portal/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fields struct {
	certificateRepo *certificatemocks.CertificateRepository
	userRepo        *usermocks.UserRepository
	settingApp      *settingmocks.SettingApp
	notificationApp *notificationmocks.NotificationApp
	activityApp     *activitymocks.ActivityApp
}

var today = time.Date(2024, 11, 2, 12, 0, 0, 0, time.UTC)

func newFields(t *testing.T) fields {
	return fields{
		certificateRepo: certificatemocks.NewCertificateRepository(t),
		userRepo:        usermocks.NewUserRepository(t),
		settingApp:      settingmocks.NewSettingApp(t),
		notificationApp: notificationmocks.NewNotificationApp(t),
		activityApp:     activitymocks.NewActivityApp(t),
	}
}

func (f fields) app() *CertificateAppImpl {
	return &CertificateAppImpl{
		config:          &config.Config{AppName: "BHRC"},
		certificateRepo: f.certificateRepo,
		userRepo:        f.userRepo,
		settingApp:      f.settingApp,
		notificationApp: f.notificationApp,
		activityApp:     f.activityApp,
		now:             func() time.Time { return today },
	}
}

func errType(t *testing.T, err error) constant.ErrorType {
	t.Helper()
	var ce cerr.CustomError
	require.True(t, errors.As(err, &ce), "error type = %T, want CustomError", err)
	return ce.ErrorType()
}

var numberPattern = regexp.MustCompile(`^BHRC-2024-\d{4}$`)

func TestCertificateApp_Issue(t *testing.T) {
	admin := &model.Principal{UserID: 1, Role: constant.RoleAdmin}
	req := &model.IssueCertificateRequest{UserID: 4, CertificateType: "volunteer", Title: "Flood Relief Volunteer"}

	t.Run("unknown recipient", func(t *testing.T) {
		f := newFields(t)
		f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: 4}).Return(nil, nil).Once()

		_, err := f.app().Issue(context.Background(), admin, req)
		assert.Equal(t, constant.ErrValidation, errType(t, err))
	})

	t.Run("number collision retried then issued", func(t *testing.T) {
		f := newFields(t)
		f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: 4}).
			Return(&model.UserEntity{ID: 4, Name: "Meera", Email: "meera@example.org"}, nil).Once()
		f.certificateRepo.On("Create", mock.Anything, mock.Anything).Return(uint64(0), &mysql.MySQLError{Number: 1062}).Once()
		f.certificateRepo.On("Create", mock.Anything, mock.MatchedBy(func(c *model.CertificateEntity) bool {
			return numberPattern.MatchString(c.CertificateNumber) && *c.IssuedBy == 1
		})).Return(uint64(20), nil).Once()
		f.settingApp.On("Snapshot", mock.Anything).Return(setting.NewSnapshot(nil), nil).Once()
		f.notificationApp.On("Send", mock.Anything, mock.Anything).Return(nil).Once()
		f.activityApp.On("Log", mock.Anything, mock.Anything).Return().Once()

		got, err := f.app().Issue(context.Background(), admin, req)
		require.NoError(t, err)
		assert.Equal(t, uint64(20), got.ID)
		assert.Equal(t, today, got.IssueDate)
	})

	t.Run("valid_until before issue date", func(t *testing.T) {
		f := newFields(t)
		f.userRepo.On("Get", mock.Anything, mock.Anything).Return(&model.UserEntity{ID: 4}, nil).Once()

		_, err := f.app().Issue(context.Background(), admin, &model.IssueCertificateRequest{
			UserID: 4, CertificateType: "training", Title: "Paralegal", IssueDate: "2024-05-01", ValidUntil: "2024-04-01",
		})
		assert.Equal(t, constant.ErrValidation, errType(t, err))
	})
}

func TestCertificateApp_Verify(t *testing.T) {
	name := "Meera"
	expired := today.AddDate(0, -1, 0)
	tests := []struct {
		name        string
		found       *model.CertificateEntity
		wantValid   bool
		wantExpired bool
	}{
		{name: "unknown number", found: nil},
		{name: "valid", found: &model.CertificateEntity{CertificateNumber: "BHRC-2024-0042", RecipientName: &name, IssueDate: today}, wantValid: true},
		{name: "expired", found: &model.CertificateEntity{CertificateNumber: "BHRC-2024-0042", IssueDate: today, ValidUntil: &expired}, wantExpired: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			f.certificateRepo.On("GetByNumber", mock.Anything, "BHRC-2024-0042").Return(tt.found, nil).Once()

			got, err := f.app().Verify(context.Background(), " bhrc-2024-0042 ")
			require.NoError(t, err)
			assert.Equal(t, tt.wantValid, got.Valid)
			assert.Equal(t, tt.wantExpired, got.Expired)
			assert.Equal(t, "BHRC-2024-0042", got.CertificateNumber)
		})
	}
}

func TestCertificateApp_Get(t *testing.T) {
	f := newFields(t)
	f.certificateRepo.On("GetByID", mock.Anything, uint64(20)).Return(&model.CertificateEntity{ID: 20, UserID: 4}, nil).Times(3)

	_, err := f.app().Get(context.Background(), &model.Principal{UserID: 4, Role: constant.RoleMember}, 20)
	require.NoError(t, err)
	_, err = f.app().Get(context.Background(), &model.Principal{UserID: 2, Role: constant.RoleModerator}, 20)
	require.NoError(t, err)
	_, err = f.app().Get(context.Background(), &model.Principal{UserID: 9, Role: constant.RoleVolunteer}, 20)
	assert.Equal(t, constant.ErrForbidden, errType(t, err))
}

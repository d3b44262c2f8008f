package setting_test

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/bhrc-portal/application/setting"
	"github.com/muhammadheryan/bhrc-portal/constant"
	activitymocks "github.com/muhammadheryan/bhrc-portal/mocks/application/activity"
	settingmocks "github.com/muhammadheryan/bhrc-portal/mocks/repository/setting"
	txmocks "github.com/muhammadheryan/bhrc-portal/mocks/repository/tx"
	"github.com/muhammadheryan/bhrc-portal/model"
	redisrepo "github.com/muhammadheryan/bhrc-portal/repository/redis"
	cerr "github.com/muhammadheryan/bhrc-portal/utils/errors"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fields struct {
	settingRepo *settingmocks.SettingRepository
	txRepo      *txmocks.TxRepository
	activityApp *activitymocks.ActivityApp
	mr          *miniredis.Miniredis
	app         setting.SettingApp
}

func newFields(t *testing.T) fields {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	f := fields{
		settingRepo: settingmocks.NewSettingRepository(t),
		txRepo:      txmocks.NewTxRepository(t),
		activityApp: activitymocks.NewActivityApp(t),
		mr:          mr,
	}
	f.app = setting.NewSettingApp(f.settingRepo, f.txRepo, redisrepo.NewRepository(client), f.activityApp)
	return f
}

var rows = []model.SettingEntity{
	{Key: "general.site_name", Value: "BHRC", Type: constant.SettingTypeString, Category: constant.SettingGeneral, IsPublic: true},
	{Key: "security.login_otp_required", Value: "false", Type: constant.SettingTypeBool, Category: constant.SettingSecurity},
	{Key: "payment.min_amount", Value: "100", Type: constant.SettingTypeNumber, Category: constant.SettingPayment, IsPublic: true},
}

var admin = &model.Principal{UserID: 1, Role: constant.RoleAdmin}

func TestSettingApp_SnapshotIsCached(t *testing.T) {
	f := newFields(t)
	f.settingRepo.On("List", mock.Anything).Return(rows, nil).Once()

	snap, err := f.app.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "BHRC", snap.String("general.site_name", ""))
	assert.True(t, f.mr.Exists("settings:snapshot"))

	// served from redis, List is not called again
	snap, err = f.app.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, float64(100), snap.Number("payment.min_amount", 0))
}

func TestSettingApp_Public(t *testing.T) {
	f := newFields(t)
	f.settingRepo.On("List", mock.Anything).Return(rows, nil).Once()

	got, err := f.app.Public(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[constant.SettingCategory]map[string]any{
		constant.SettingGeneral: {"general.site_name": "BHRC"},
		constant.SettingPayment: {"payment.min_amount": float64(100)},
	}, got)
}

func TestSettingApp_Update(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		value    string
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:  "success: cache invalidated",
			key:   "security.login_otp_required",
			value: "true",
			mockCall: func(f fields) {
				f.mr.Set("settings:snapshot", "[]")
				f.settingRepo.On("GetByKey", mock.Anything, "security.login_otp_required").Return(&rows[1], nil).Once()
				f.settingRepo.On("UpdateValue", mock.Anything, "security.login_otp_required", "true", uint64(1)).Return(true, nil).Once()
				f.activityApp.On("Log", mock.Anything, mock.Anything).Return().Once()
			},
		},
		{
			name:  "error: value does not match type",
			key:   "security.login_otp_required",
			value: "maybe",
			mockCall: func(f fields) {
				f.settingRepo.On("GetByKey", mock.Anything, "security.login_otp_required").Return(&rows[1], nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrValidation,
		},
		{
			name:  "error: unknown key",
			key:   "nope",
			value: "1",
			mockCall: func(f fields) {
				f.settingRepo.On("GetByKey", mock.Anything, "nope").Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tt.mockCall(f)

			got, err := f.app.Update(context.Background(), admin, tt.key, &model.UpdateSettingRequest{Value: tt.value})
			if (err != nil) != tt.wantErr {
				t.Fatalf("Update() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var ce cerr.CustomError
				require.True(t, errors.As(err, &ce))
				assert.Equal(t, tt.errCode, ce.ErrorType())
				return
			}
			assert.Equal(t, tt.value, got.Value)
			assert.False(t, f.mr.Exists("settings:snapshot"))
		})
	}
}

func TestSettingApp_BulkUpdate(t *testing.T) {
	t.Run("rejects unknown keys and bad values before writing", func(t *testing.T) {
		f := newFields(t)
		f.settingRepo.On("List", mock.Anything).Return(rows, nil).Once()

		err := f.app.BulkUpdate(context.Background(), admin, &model.BulkSettingsRequest{Settings: map[string]string{
			"payment.min_amount": "lots",
			"ghost.key":          "x",
		}})
		var ce cerr.CustomError
		require.True(t, errors.As(err, &ce))
		assert.Len(t, ce.Fields(), 2)
		f.txRepo.AssertNotCalled(t, "BeginTx", mock.Anything)
	})

	t.Run("rolls back when one write fails", func(t *testing.T) {
		f := newFields(t)
		tx := &sqlx.Tx{}
		f.settingRepo.On("List", mock.Anything).Return(rows, nil).Once()
		f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
		f.settingRepo.On("UpdateValueTx", mock.Anything, tx, "general.site_name", "BHRC India", uint64(1)).Return(true, nil).Once()
		f.settingRepo.On("UpdateValueTx", mock.Anything, tx, "payment.min_amount", "50", uint64(1)).Return(false, errors.New("deadlock")).Once()
		f.txRepo.On("RollbackTx", tx).Return(nil).Once()

		err := f.app.BulkUpdate(context.Background(), admin, &model.BulkSettingsRequest{Settings: map[string]string{
			"general.site_name":  "BHRC India",
			"payment.min_amount": "50",
		}})
		var ce cerr.CustomError
		require.True(t, errors.As(err, &ce))
		assert.Equal(t, constant.ErrInternal, ce.ErrorType())
	})

	t.Run("commits and invalidates", func(t *testing.T) {
		f := newFields(t)
		tx := &sqlx.Tx{}
		f.mr.Set("settings:snapshot", "[]")
		f.settingRepo.On("List", mock.Anything).Return(rows, nil).Once()
		f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
		f.settingRepo.On("UpdateValueTx", mock.Anything, tx, "security.login_otp_required", "true", uint64(1)).Return(true, nil).Once()
		f.txRepo.On("CommitTx", tx).Return(nil).Once()
		f.activityApp.On("Log", mock.Anything, mock.Anything).Return().Once()

		err := f.app.BulkUpdate(context.Background(), admin, &model.BulkSettingsRequest{Settings: map[string]string{
			"security.login_otp_required": "true",
		}})
		require.NoError(t, err)
		assert.False(t, f.mr.Exists("settings:snapshot"))
	})
}

func TestSettingApp_Restore(t *testing.T) {
	f := newFields(t)
	tx := &sqlx.Tx{}
	f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
	f.settingRepo.On("UpsertTx", mock.Anything, tx, mock.MatchedBy(func(s *model.SettingEntity) bool {
		return s.UpdatedBy != nil && *s.UpdatedBy == 1
	})).Return(nil).Times(len(rows))
	f.txRepo.On("CommitTx", tx).Return(nil).Once()
	f.activityApp.On("Log", mock.Anything, mock.Anything).Return().Once()

	require.NoError(t, f.app.Restore(context.Background(), admin, &model.RestoreSettingsRequest{Settings: rows}))
}

package otp

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/muhammadheryan/bhrc-portal/cmd/config"
	"github.com/muhammadheryan/bhrc-portal/constant"
	otpmocks "github.com/muhammadheryan/bhrc-portal/mocks/repository/otp"
	"github.com/muhammadheryan/bhrc-portal/model"
	cerr "github.com/muhammadheryan/bhrc-portal/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func newApp(t *testing.T) (*OTPAppImpl, *otpmocks.OTPRepository) {
	repo := otpmocks.NewOTPRepository(t)
	app := &OTPAppImpl{
		config: &config.Config{OTP: config.OTPConfig{
			Length:         6,
			EmailTTL:       10 * time.Minute,
			LoginTTL:       5 * time.Minute,
			MaxAttempts:    5,
			ResendCooldown: time.Minute,
			ResetTokenTTL:  time.Hour,
		}},
		otpRepo: repo,
		now:     func() time.Time { return fixedNow },
	}
	return app, repo
}

func errType(t *testing.T, err error) constant.ErrorType {
	t.Helper()
	var ce cerr.CustomError
	require.True(t, errors.As(err, &ce), "error type = %T, want CustomError", err)
	return ce.ErrorType()
}

func TestOTPApp_Issue(t *testing.T) {
	t.Run("invalidates live codes before storing a new one", func(t *testing.T) {
		app, repo := newApp(t)
		repo.On("GetLatestIssued", mock.Anything, "a@example.org", constant.OTPLoginVerification).
			Return(&model.OTPEntity{CreatedAt: fixedNow.Add(-2 * time.Minute)}, nil).Once()
		invalidate := repo.On("InvalidateActive", mock.Anything, "a@example.org", constant.OTPLoginVerification).Return(nil).Once()
		repo.On("Create", mock.Anything, mock.MatchedBy(func(e *model.OTPEntity) bool {
			return len(e.Code) == 6 && e.ExpiresAt.Equal(fixedNow.Add(5*time.Minute))
		})).Return(uint64(1), nil).Once().NotBefore(invalidate)

		code, err := app.Issue(context.Background(), "a@example.org", constant.OTPLoginVerification, nil)
		require.NoError(t, err)
		assert.Len(t, code, 6)
	})

	t.Run("cooldown reports seconds left", func(t *testing.T) {
		app, repo := newApp(t)
		repo.On("GetLatestIssued", mock.Anything, "a@example.org", constant.OTPEmailVerification).
			Return(&model.OTPEntity{CreatedAt: fixedNow.Add(-20 * time.Second)}, nil).Once()

		_, err := app.Issue(context.Background(), "a@example.org", constant.OTPEmailVerification, nil)
		require.Error(t, err)
		var ce cerr.CustomError
		require.True(t, errors.As(err, &ce))
		assert.Equal(t, constant.ErrOTPCooldown, ce.ErrorType())
		assert.Equal(t, 40, ce.Meta()["retry_after_seconds"])
	})
}

func TestOTPApp_CanResend(t *testing.T) {
	tests := []struct {
		name string
		last *model.OTPEntity
		want bool
	}{
		{name: "never issued", want: true},
		{name: "inside cooldown", last: &model.OTPEntity{CreatedAt: fixedNow.Add(-30 * time.Second)}},
		{name: "cooldown elapsed", last: &model.OTPEntity{CreatedAt: fixedNow.Add(-time.Minute)}, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, repo := newApp(t)
			repo.On("GetLatestIssued", mock.Anything, "a@example.org", constant.OTPEmailVerification).Return(tt.last, nil).Once()

			got, err := app.CanResend(context.Background(), "a@example.org", constant.OTPEmailVerification)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOTPApp_Verify(t *testing.T) {
	live := func() *model.OTPEntity {
		return &model.OTPEntity{ID: 4, Code: "123456", ExpiresAt: fixedNow.Add(time.Minute)}
	}
	tests := []struct {
		name     string
		code     string
		mockCall func(repo *otpmocks.OTPRepository)
		wantErr  constant.ErrorType
	}{
		{
			name: "success",
			code: "123456",
			mockCall: func(repo *otpmocks.OTPRepository) {
				repo.On("GetLatest", mock.Anything, "a@example.org", constant.OTPEmailVerification).Return(live(), nil).Once()
				repo.On("MarkVerified", mock.Anything, uint64(4)).Return(true, nil).Once()
			},
		},
		{
			name: "wrong code counts an attempt",
			code: "000000",
			mockCall: func(repo *otpmocks.OTPRepository) {
				repo.On("GetLatest", mock.Anything, "a@example.org", constant.OTPEmailVerification).Return(live(), nil).Once()
				repo.On("IncrementAttempts", mock.Anything, uint64(4)).Return(nil).Once()
			},
			wantErr: constant.ErrInvalidOTP,
		},
		{
			name: "expired",
			code: "123456",
			mockCall: func(repo *otpmocks.OTPRepository) {
				rec := live()
				rec.ExpiresAt = fixedNow
				repo.On("GetLatest", mock.Anything, "a@example.org", constant.OTPEmailVerification).Return(rec, nil).Once()
			},
			wantErr: constant.ErrInvalidOTP,
		},
		{
			name: "attempts exhausted even with the right code",
			code: "123456",
			mockCall: func(repo *otpmocks.OTPRepository) {
				rec := live()
				rec.Attempts = 5
				repo.On("GetLatest", mock.Anything, "a@example.org", constant.OTPEmailVerification).Return(rec, nil).Once()
			},
			wantErr: constant.ErrOTPAttemptsExceeded,
		},
		{
			name: "no record",
			code: "123456",
			mockCall: func(repo *otpmocks.OTPRepository) {
				repo.On("GetLatest", mock.Anything, "a@example.org", constant.OTPEmailVerification).Return(nil, nil).Once()
			},
			wantErr: constant.ErrInvalidOTP,
		},
		{
			name: "consumed concurrently",
			code: "123456",
			mockCall: func(repo *otpmocks.OTPRepository) {
				repo.On("GetLatest", mock.Anything, "a@example.org", constant.OTPEmailVerification).Return(live(), nil).Once()
				repo.On("MarkVerified", mock.Anything, uint64(4)).Return(false, nil).Once()
			},
			wantErr: constant.ErrInvalidOTP,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			app, repo := newApp(t)
			tt.mockCall(repo)

			rec, err := app.Verify(context.Background(), "a@example.org", constant.OTPEmailVerification, tt.code)
			if tt.wantErr == constant.Successful {
				require.NoError(t, err)
				assert.Equal(t, uint64(4), rec.ID)
				return
			}
			assert.Equal(t, tt.wantErr, errType(t, err))
		})
	}
}

func TestOTPApp_Tokens(t *testing.T) {
	app, repo := newApp(t)
	var stored string
	repo.On("GetLatestIssued", mock.Anything, "a@example.org", constant.OTPPasswordReset).Return(nil, nil).Once()
	repo.On("InvalidateActive", mock.Anything, "a@example.org", constant.OTPPasswordReset).Return(nil).Once()
	repo.On("Create", mock.Anything, mock.AnythingOfType("*model.OTPEntity")).
		Run(func(args mock.Arguments) { stored = args.Get(1).(*model.OTPEntity).Code }).
		Return(uint64(9), nil).Once()

	token, err := app.IssueToken(context.Background(), "a@example.org", constant.OTPPasswordReset, nil)
	require.NoError(t, err)
	assert.Len(t, token, 64)
	assert.NotEqual(t, token, stored)
	assert.Equal(t, hashToken(token), stored)

	repo.On("GetByCode", mock.Anything, constant.OTPPasswordReset, stored).
		Return(&model.OTPEntity{ID: 9, Identifier: "a@example.org", ExpiresAt: fixedNow.Add(time.Hour)}, nil).Once()
	repo.On("MarkVerified", mock.Anything, uint64(9)).Return(true, nil).Once()

	rec, err := app.ConsumeToken(context.Background(), constant.OTPPasswordReset, token)
	require.NoError(t, err)
	assert.Equal(t, "a@example.org", rec.Identifier)

	repo.On("GetByCode", mock.Anything, constant.OTPPasswordReset, hashToken("forged")).Return(nil, nil).Once()
	_, err = app.ConsumeToken(context.Background(), constant.OTPPasswordReset, "forged")
	assert.Equal(t, constant.ErrInvalidToken, errType(t, err))
}

func TestOTPApp_PurgeExpired(t *testing.T) {
	app, repo := newApp(t)
	repo.On("PurgeExpired", mock.Anything, fixedNow.Add(-24*time.Hour)).Return(int64(12), nil).Once()

	n, err := app.PurgeExpired(context.Background(), 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(12), n)
}

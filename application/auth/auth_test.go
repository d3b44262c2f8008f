package auth_test

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/muhammadheryan/bhrc-portal/application/auth"
	"github.com/muhammadheryan/bhrc-portal/application/setting"
	"github.com/muhammadheryan/bhrc-portal/cmd/config"
	"github.com/muhammadheryan/bhrc-portal/constant"
	activitymocks "github.com/muhammadheryan/bhrc-portal/mocks/application/activity"
	notificationmocks "github.com/muhammadheryan/bhrc-portal/mocks/application/notification"
	otpmocks "github.com/muhammadheryan/bhrc-portal/mocks/application/otp"
	settingmocks "github.com/muhammadheryan/bhrc-portal/mocks/application/setting"
	redismocks "github.com/muhammadheryan/bhrc-portal/mocks/repository/redis"
	usermocks "github.com/muhammadheryan/bhrc-portal/mocks/repository/user"
	"github.com/muhammadheryan/bhrc-portal/model"
	redisrepo "github.com/muhammadheryan/bhrc-portal/repository/redis"
	"github.com/muhammadheryan/bhrc-portal/thirdparty/mailer"
	cerr "github.com/muhammadheryan/bhrc-portal/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fields struct {
	config          *config.Config
	userRepo        *usermocks.UserRepository
	redisRepo       *redismocks.RedisRepository
	otpApp          *otpmocks.OTPApp
	settingApp      *settingmocks.SettingApp
	notificationApp *notificationmocks.NotificationApp
	activityApp     *activitymocks.ActivityApp
}

func newFields(t *testing.T) fields {
	return fields{
		config: &config.Config{
			AppName: "BHRC",
			Auth: config.AuthConfig{
				JWTSecret:      "test-secret-key-for-jwt-signing",
				JWTExpiration:  time.Hour,
				RefreshExpTime: 24 * time.Hour,
			},
			OTP: config.OTPConfig{
				EmailTTL:         10 * time.Minute,
				LoginTTL:         5 * time.Minute,
				ResendCooldown:   time.Minute,
				ResetTokenTTL:    time.Hour,
				FrontendResetURL: "https://bhrc.example.org/reset-password",
			},
		},
		userRepo:        usermocks.NewUserRepository(t),
		redisRepo:       redismocks.NewRedisRepository(t),
		otpApp:          otpmocks.NewOTPApp(t),
		settingApp:      settingmocks.NewSettingApp(t),
		notificationApp: notificationmocks.NewNotificationApp(t),
		activityApp:     activitymocks.NewActivityApp(t),
	}
}

func (f fields) app() auth.AuthApp {
	return auth.NewAuthApp(f.config, f.userRepo, f.redisRepo, f.otpApp, f.settingApp, f.notificationApp, f.activityApp)
}

func snapshot(pairs ...string) *setting.Snapshot {
	rows := []model.SettingEntity{}
	for i := 0; i+1 < len(pairs); i += 2 {
		rows = append(rows, model.SettingEntity{Key: pairs[i], Value: pairs[i+1], Type: constant.SettingTypeBool})
	}
	return setting.NewSnapshot(rows)
}

func assertErrCode(t *testing.T, err error, want constant.ErrorType) {
	t.Helper()
	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want CustomError", err)
	}
	if ce.ErrorCode() != constant.ErrorTypeCode[want] {
		t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[want])
	}
}

func hashed(t *testing.T, password string) string {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestAuthApp_Register(t *testing.T) {
	type args struct {
		ctx context.Context
		req *model.RegisterRequest
	}
	req := &model.RegisterRequest{
		Name:     "Test User",
		Email:    "Test@Example.com",
		Phone:    "9876543210",
		Password: "Passw0rd!",
	}
	tests := []struct {
		name     string
		args     args
		mockCall func(f fields)
		want     *model.RegisterResponse
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: register new member",
			args: args{ctx: context.Background(), req: req},
			mockCall: func(f fields) {
				f.settingApp.On("Snapshot", mock.Anything).Return(snapshot(), nil).Once()
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "test@example.com"}).
					Return(nil, nil).
					Once()
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Phone: "9876543210"}).
					Return(nil, nil).
					Once()
				f.userRepo.
					On("Create", mock.Anything, mock.MatchedBy(func(ent *model.UserEntity) bool {
						return ent.Email == "test@example.com" &&
							ent.Role == constant.RoleMember &&
							ent.Status == constant.UserStatusPending &&
							bcrypt.CompareHashAndPassword([]byte(ent.PasswordHash), []byte("Passw0rd!")) == nil
					})).
					Return(&model.UserEntity{ID: 7, Name: "Test User", Email: "test@example.com"}, nil).
					Once()
				f.otpApp.
					On("Issue", mock.Anything, "test@example.com", constant.OTPEmailVerification, mock.Anything).
					Return("123456", nil).
					Once()
				f.notificationApp.
					On("Send", mock.Anything, mock.MatchedBy(func(m mailer.Message) bool { return m.Valid() && m.To == "test@example.com" })).
					Return(nil).
					Once()
				f.activityApp.On("Log", mock.Anything, mock.Anything).Return().Once()
			},
			want: &model.RegisterResponse{ID: 7, Name: "Test User", Email: "test@example.com"},
		},
		{
			name: "success: otp failure does not fail registration",
			args: args{ctx: context.Background(), req: req},
			mockCall: func(f fields) {
				f.settingApp.On("Snapshot", mock.Anything).Return(snapshot(), nil).Once()
				f.userRepo.On("Get", mock.Anything, mock.Anything).Return(nil, nil).Twice()
				f.userRepo.
					On("Create", mock.Anything, mock.AnythingOfType("*model.UserEntity")).
					Return(&model.UserEntity{ID: 7, Name: "Test User", Email: "test@example.com"}, nil).
					Once()
				f.otpApp.
					On("Issue", mock.Anything, "test@example.com", constant.OTPEmailVerification, mock.Anything).
					Return("", errors.New("db down")).
					Once()
				f.activityApp.On("Log", mock.Anything, mock.Anything).Return().Once()
			},
			want: &model.RegisterResponse{ID: 7, Name: "Test User", Email: "test@example.com"},
		},
		{
			name: "error: registration closed",
			args: args{ctx: context.Background(), req: req},
			mockCall: func(f fields) {
				f.settingApp.
					On("Snapshot", mock.Anything).
					Return(snapshot(constant.SettingRegistrationOpen, "false"), nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrForbidden,
		},
		{
			name: "error: email already exists",
			args: args{ctx: context.Background(), req: req},
			mockCall: func(f fields) {
				f.settingApp.On("Snapshot", mock.Anything).Return(snapshot(), nil).Once()
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "test@example.com"}).
					Return(&model.UserEntity{ID: 1, Email: "test@example.com"}, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrCredentialExists,
		},
		{
			name: "error: phone already exists",
			args: args{ctx: context.Background(), req: req},
			mockCall: func(f fields) {
				f.settingApp.On("Snapshot", mock.Anything).Return(snapshot(), nil).Once()
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "test@example.com"}).
					Return(nil, nil).
					Once()
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Phone: "9876543210"}).
					Return(&model.UserEntity{ID: 1, Phone: "9876543210"}, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrCredentialExists,
		},
		{
			name: "error: repository Get email returns error",
			args: args{ctx: context.Background(), req: req},
			mockCall: func(f fields) {
				f.settingApp.On("Snapshot", mock.Anything).Return(snapshot(), nil).Once()
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "test@example.com"}).
					Return(nil, errors.New("db error")).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
		{
			name: "error: concurrent insert hits unique key",
			args: args{ctx: context.Background(), req: req},
			mockCall: func(f fields) {
				f.settingApp.On("Snapshot", mock.Anything).Return(snapshot(), nil).Once()
				f.userRepo.On("Get", mock.Anything, mock.Anything).Return(nil, nil).Twice()
				f.userRepo.
					On("Create", mock.Anything, mock.AnythingOfType("*model.UserEntity")).
					Return(nil, &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrCredentialExists,
		},
		{
			name: "error: repository Create returns error",
			args: args{ctx: context.Background(), req: req},
			mockCall: func(f fields) {
				f.settingApp.On("Snapshot", mock.Anything).Return(snapshot(), nil).Once()
				f.userRepo.On("Get", mock.Anything, mock.Anything).Return(nil, nil).Twice()
				f.userRepo.
					On("Create", mock.Anything, mock.AnythingOfType("*model.UserEntity")).
					Return(nil, errors.New("create failed")).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}

			got, err := f.app().Register(tt.args.ctx, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Register() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Register() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestAuthApp_Login(t *testing.T) {
	type args struct {
		ctx context.Context
		req *model.LoginRequest
	}
	active := func(t *testing.T) *model.UserEntity {
		return &model.UserEntity{
			ID:            1,
			Name:          "Test User",
			Email:         "test@example.com",
			Phone:         "9876543210",
			PasswordHash:  hashed(t, "Passw0rd!"),
			Role:          constant.RoleMember,
			Status:        constant.UserStatusActive,
			EmailVerified: true,
		}
	}
	expectTokens := func(f fields) {
		f.redisRepo.
			On("SetSession", mock.Anything, mock.AnythingOfType("string"), uint64(1), time.Hour).
			Return(nil).
			Once()
		f.redisRepo.
			On("SetSession", mock.Anything, mock.AnythingOfType("string"), uint64(1), 24*time.Hour).
			Return(nil).
			Once()
		f.userRepo.On("UpdateLastLogin", mock.Anything, uint64(1)).Return(nil).Once()
		f.activityApp.On("Log", mock.Anything, mock.Anything).Return().Once()
	}
	tests := []struct {
		name        string
		args        args
		mockCall    func(t *testing.T, f fields)
		wantTokens  bool
		wantOTPStep bool
		wantErr     bool
		errCode     constant.ErrorType
	}{
		{
			name: "success: login with email",
			args: args{ctx: context.Background(), req: &model.LoginRequest{Identifier: "Test@Example.com", Password: "Passw0rd!"}},
			mockCall: func(t *testing.T, f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "test@example.com"}).
					Return(active(t), nil).
					Once()
				f.settingApp.On("Snapshot", mock.Anything).Return(snapshot(), nil).Once()
				expectTokens(f)
			},
			wantTokens: true,
		},
		{
			name: "success: login with phone",
			args: args{ctx: context.Background(), req: &model.LoginRequest{Identifier: "9876543210", Password: "Passw0rd!"}},
			mockCall: func(t *testing.T, f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Phone: "9876543210"}).
					Return(active(t), nil).
					Once()
				f.settingApp.On("Snapshot", mock.Anything).Return(snapshot(), nil).Once()
				expectTokens(f)
			},
			wantTokens: true,
		},
		{
			name: "success: second factor required",
			args: args{ctx: context.Background(), req: &model.LoginRequest{Identifier: "test@example.com", Password: "Passw0rd!"}},
			mockCall: func(t *testing.T, f fields) {
				f.userRepo.On("Get", mock.Anything, mock.Anything).Return(active(t), nil).Once()
				f.settingApp.
					On("Snapshot", mock.Anything).
					Return(snapshot(constant.SettingLoginOTPRequired, "true"), nil).
					Once()
				f.otpApp.
					On("Issue", mock.Anything, "test@example.com", constant.OTPLoginVerification, mock.Anything).
					Return("654321", nil).
					Once()
				f.notificationApp.On("Send", mock.Anything, mock.Anything).Return(nil).Once()
			},
			wantOTPStep: true,
		},
		{
			name: "error: user not found",
			args: args{ctx: context.Background(), req: &model.LoginRequest{Identifier: "notfound@example.com", Password: "Passw0rd!"}},
			mockCall: func(t *testing.T, f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "notfound@example.com"}).
					Return(nil, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrUnauthorize,
		},
		{
			name: "error: wrong password",
			args: args{ctx: context.Background(), req: &model.LoginRequest{Identifier: "test@example.com", Password: "wrong"}},
			mockCall: func(t *testing.T, f fields) {
				f.userRepo.On("Get", mock.Anything, mock.Anything).Return(active(t), nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrUnauthorize,
		},
		{
			name: "error: suspended account",
			args: args{ctx: context.Background(), req: &model.LoginRequest{Identifier: "test@example.com", Password: "Passw0rd!"}},
			mockCall: func(t *testing.T, f fields) {
				u := active(t)
				u.Status = constant.UserStatusSuspended
				f.userRepo.On("Get", mock.Anything, mock.Anything).Return(u, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrAccountInactive,
		},
		{
			name: "error: email not verified",
			args: args{ctx: context.Background(), req: &model.LoginRequest{Identifier: "test@example.com", Password: "Passw0rd!"}},
			mockCall: func(t *testing.T, f fields) {
				u := active(t)
				u.Status = constant.UserStatusPending
				u.EmailVerified = false
				f.userRepo.On("Get", mock.Anything, mock.Anything).Return(u, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrEmailNotVerified,
		},
		{
			name: "error: repository returns error",
			args: args{ctx: context.Background(), req: &model.LoginRequest{Identifier: "test@example.com", Password: "Passw0rd!"}},
			mockCall: func(t *testing.T, f fields) {
				f.userRepo.On("Get", mock.Anything, mock.Anything).Return(nil, errors.New("db error")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tt.mockCall(t, f)

			got, err := f.app().Login(tt.args.ctx, tt.args.req, "10.0.0.1")
			if (err != nil) != tt.wantErr {
				t.Fatalf("Login() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}
			assert.Equal(t, tt.wantOTPStep, got.OTPRequired)
			if tt.wantTokens {
				require.NotNil(t, got.Tokens)
				assert.Equal(t, "Bearer", got.Tokens.TokenType)
				assert.NotEqual(t, got.Tokens.AccessToken, got.Tokens.RefreshToken)
				assert.Equal(t, uint64(1), got.User.ID)
			} else {
				assert.Nil(t, got.Tokens)
			}
		})
	}
}

// login drives a successful sign in and returns the issued pair with the stored session ids.
func login(t *testing.T, f fields, user *model.UserEntity) (*model.TokenPair, map[string]uint64) {
	sessions := map[string]uint64{}
	f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: user.Email}).Return(user, nil).Once()
	f.settingApp.On("Snapshot", mock.Anything).Return(snapshot(), nil).Once()
	f.redisRepo.
		On("SetSession", mock.Anything, mock.AnythingOfType("string"), user.ID, mock.Anything).
		Run(func(args mock.Arguments) { sessions[args.String(1)] = args.Get(2).(uint64) }).
		Return(nil).
		Twice()
	f.userRepo.On("UpdateLastLogin", mock.Anything, user.ID).Return(nil).Once()
	f.activityApp.On("Log", mock.Anything, mock.Anything).Return().Once()

	res, err := f.app().Login(context.Background(), &model.LoginRequest{Identifier: user.Email, Password: "Passw0rd!"}, "")
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	return res.Tokens, sessions
}

func TestAuthApp_ValidateToken(t *testing.T) {
	f := newFields(t)
	user := &model.UserEntity{
		ID: 3, Email: "mod@example.com", PasswordHash: hashed(t, "Passw0rd!"),
		Role: constant.RoleMember, Status: constant.UserStatusActive, EmailVerified: true,
	}
	tokens, _ := login(t, f, user)

	t.Run("role comes from the stored user", func(t *testing.T) {
		promoted := *user
		promoted.Role = constant.RoleModerator
		f.redisRepo.On("GetSession", mock.Anything, mock.AnythingOfType("string")).Return(uint64(3), nil).Once()
		f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: 3}).Return(&promoted, nil).Once()

		p, err := f.app().ValidateToken(context.Background(), tokens.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, constant.RoleModerator, p.Role)
		assert.NotEmpty(t, p.SessionID)
	})

	t.Run("refresh token is not an access token", func(t *testing.T) {
		_, err := f.app().ValidateToken(context.Background(), tokens.RefreshToken)
		assert.Error(t, err)
	})

	t.Run("revoked session", func(t *testing.T) {
		f.redisRepo.On("GetSession", mock.Anything, mock.AnythingOfType("string")).Return(uint64(0), errors.New("redis: nil")).Once()
		_, err := f.app().ValidateToken(context.Background(), tokens.AccessToken)
		assert.Error(t, err)
	})

	t.Run("suspended user", func(t *testing.T) {
		suspended := *user
		suspended.Status = constant.UserStatusSuspended
		f.redisRepo.On("GetSession", mock.Anything, mock.AnythingOfType("string")).Return(uint64(3), nil).Once()
		f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: 3}).Return(&suspended, nil).Once()
		_, err := f.app().ValidateToken(context.Background(), tokens.AccessToken)
		assert.Error(t, err)
	})

	t.Run("tampered token", func(t *testing.T) {
		_, err := f.app().ValidateToken(context.Background(), tokens.AccessToken+"x")
		assert.Error(t, err)
	})
}

func TestAuthApp_Refresh(t *testing.T) {
	f := newFields(t)
	user := &model.UserEntity{
		ID: 5, Email: "member@example.com", PasswordHash: hashed(t, "Passw0rd!"),
		Role: constant.RoleMember, Status: constant.UserStatusActive, EmailVerified: true,
	}
	tokens, _ := login(t, f, user)

	f.redisRepo.On("TakeSession", mock.Anything, mock.AnythingOfType("string")).Return(uint64(5), nil).Once()
	f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: 5}).Return(user, nil).Once()
	f.redisRepo.On("SetSession", mock.Anything, mock.AnythingOfType("string"), uint64(5), mock.Anything).Return(nil).Twice()

	pair, err := f.app().Refresh(context.Background(), &model.RefreshRequest{RefreshToken: tokens.RefreshToken})
	require.NoError(t, err)
	assert.NotEqual(t, tokens.RefreshToken, pair.RefreshToken)

	// a second use finds the session already taken
	f.redisRepo.On("TakeSession", mock.Anything, mock.AnythingOfType("string")).Return(uint64(0), redisrepo.ErrNil).Once()
	_, err = f.app().Refresh(context.Background(), &model.RefreshRequest{RefreshToken: tokens.RefreshToken})
	assertErrCode(t, err, constant.ErrUnauthorize)
	f.redisRepo.AssertNotCalled(t, "GetSession", mock.Anything, mock.Anything)

	_, err = f.app().Refresh(context.Background(), &model.RefreshRequest{RefreshToken: tokens.AccessToken})
	assertErrCode(t, err, constant.ErrUnauthorize)
}

func TestAuthApp_Logout(t *testing.T) {
	f := newFields(t)
	user := &model.UserEntity{
		ID: 9, Email: "out@example.com", PasswordHash: hashed(t, "Passw0rd!"),
		Role: constant.RoleMember, Status: constant.UserStatusActive, EmailVerified: true,
	}
	tokens, _ := login(t, f, user)

	f.redisRepo.On("DeleteSession", mock.Anything, "access-jti").Return(nil).Once()
	f.redisRepo.On("DeleteSession", mock.Anything, mock.MatchedBy(func(id string) bool { return id != "access-jti" })).Return(nil).Once()
	f.activityApp.On("Log", mock.Anything, mock.Anything).Return().Once()

	err := f.app().Logout(context.Background(),
		&model.Principal{UserID: 9, Email: user.Email, Role: user.Role, SessionID: "access-jti"},
		&model.LogoutRequest{RefreshToken: tokens.RefreshToken})
	require.NoError(t, err)
}

func TestAuthApp_ForgotPassword(t *testing.T) {
	t.Run("unknown address is silently accepted", func(t *testing.T) {
		f := newFields(t)
		f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "ghost@example.com"}).Return(nil, nil).Once()
		assert.NoError(t, f.app().ForgotPassword(context.Background(), &model.ForgotPasswordRequest{Email: "ghost@example.com"}))
	})

	t.Run("known address gets a reset link", func(t *testing.T) {
		f := newFields(t)
		f.userRepo.
			On("Get", mock.Anything, &model.UserFilter{Email: "known@example.com"}).
			Return(&model.UserEntity{ID: 2, Name: "Known", Email: "known@example.com"}, nil).
			Once()
		f.otpApp.
			On("IssueToken", mock.Anything, "known@example.com", constant.OTPPasswordReset, mock.Anything).
			Return("abc123", nil).
			Once()
		f.settingApp.On("Snapshot", mock.Anything).Return(snapshot(), nil).Once()
		f.notificationApp.On("Send", mock.Anything, mock.Anything).Return(nil).Once()

		assert.NoError(t, f.app().ForgotPassword(context.Background(), &model.ForgotPasswordRequest{Email: "known@example.com"}))
	})
}

func TestAuthApp_ResetPassword(t *testing.T) {
	token := "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"

	t.Run("invalid token", func(t *testing.T) {
		f := newFields(t)
		f.otpApp.
			On("ConsumeToken", mock.Anything, constant.OTPPasswordReset, token).
			Return(nil, cerr.SetCustomError(constant.ErrInvalidToken)).
			Once()
		err := f.app().ResetPassword(context.Background(), &model.ResetPasswordRequest{Token: token, NewPassword: "N3wPassw0rd!"})
		assertErrCode(t, err, constant.ErrInvalidToken)
	})

	t.Run("password replaced", func(t *testing.T) {
		f := newFields(t)
		f.otpApp.
			On("ConsumeToken", mock.Anything, constant.OTPPasswordReset, token).
			Return(&model.OTPEntity{Identifier: "known@example.com"}, nil).
			Once()
		f.userRepo.
			On("Get", mock.Anything, &model.UserFilter{Email: "known@example.com"}).
			Return(&model.UserEntity{ID: 2, Email: "known@example.com"}, nil).
			Once()
		f.userRepo.
			On("UpdatePassword", mock.Anything, uint64(2), mock.MatchedBy(func(h string) bool {
				return bcrypt.CompareHashAndPassword([]byte(h), []byte("N3wPassw0rd!")) == nil
			})).
			Return(nil).
			Once()
		f.redisRepo.On("DeleteUserSessions", mock.Anything, uint64(2)).Return(nil).Once()
		f.activityApp.On("Log", mock.Anything, mock.Anything).Return().Once()

		err := f.app().ResetPassword(context.Background(), &model.ResetPasswordRequest{Token: token, NewPassword: "N3wPassw0rd!"})
		require.NoError(t, err)
	})
}

func TestAuthApp_ChangePassword(t *testing.T) {
	f := newFields(t)
	f.userRepo.
		On("Get", mock.Anything, &model.UserFilter{ID: 4}).
		Return(&model.UserEntity{ID: 4, PasswordHash: hashed(t, "Passw0rd!")}, nil).
		Once()

	err := f.app().ChangePassword(context.Background(), &model.Principal{UserID: 4},
		&model.ChangePasswordRequest{CurrentPassword: "nope", NewPassword: "N3wPassw0rd!"})
	assertErrCode(t, err, constant.ErrInvalidPassword)
}

func TestAuthApp_VerifyEmail(t *testing.T) {
	t.Run("already verified", func(t *testing.T) {
		f := newFields(t)
		f.userRepo.
			On("Get", mock.Anything, &model.UserFilter{Email: "a@example.com"}).
			Return(&model.UserEntity{ID: 1, Email: "a@example.com", EmailVerified: true}, nil).
			Once()
		err := f.app().VerifyEmail(context.Background(), &model.VerifyEmailRequest{Email: "a@example.com", OTP: "123456"})
		assertErrCode(t, err, constant.ErrInvalidRequest)
	})

	t.Run("wrong code", func(t *testing.T) {
		f := newFields(t)
		f.userRepo.
			On("Get", mock.Anything, &model.UserFilter{Email: "a@example.com"}).
			Return(&model.UserEntity{ID: 1, Email: "a@example.com"}, nil).
			Once()
		f.otpApp.
			On("Verify", mock.Anything, "a@example.com", constant.OTPEmailVerification, "000000").
			Return(nil, cerr.SetCustomError(constant.ErrInvalidOTP)).
			Once()
		err := f.app().VerifyEmail(context.Background(), &model.VerifyEmailRequest{Email: "a@example.com", OTP: "000000"})
		assertErrCode(t, err, constant.ErrInvalidOTP)
	})

	t.Run("verified and activated", func(t *testing.T) {
		f := newFields(t)
		f.userRepo.
			On("Get", mock.Anything, &model.UserFilter{Email: "a@example.com"}).
			Return(&model.UserEntity{ID: 1, Name: "A", Email: "a@example.com"}, nil).
			Once()
		f.otpApp.
			On("Verify", mock.Anything, "a@example.com", constant.OTPEmailVerification, "123456").
			Return(&model.OTPEntity{ID: 10}, nil).
			Once()
		f.userRepo.On("MarkEmailVerified", mock.Anything, uint64(1)).Return(nil).Once()
		f.settingApp.On("Snapshot", mock.Anything).Return(snapshot(), nil).Once()
		f.notificationApp.On("Send", mock.Anything, mock.Anything).Return(nil).Once()
		f.activityApp.On("Log", mock.Anything, mock.Anything).Return().Once()

		require.NoError(t, f.app().VerifyEmail(context.Background(), &model.VerifyEmailRequest{Email: "a@example.com", OTP: "123456"}))
	})
}

package auth

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/muhammadheryan/bhrc-portal/application/activity"
	"github.com/muhammadheryan/bhrc-portal/application/notification"
	"github.com/muhammadheryan/bhrc-portal/application/otp"
	"github.com/muhammadheryan/bhrc-portal/application/setting"
	"github.com/muhammadheryan/bhrc-portal/cmd/config"
	"github.com/muhammadheryan/bhrc-portal/constant"
	"github.com/muhammadheryan/bhrc-portal/model"
	redisrepo "github.com/muhammadheryan/bhrc-portal/repository/redis"
	userrepo "github.com/muhammadheryan/bhrc-portal/repository/user"
	"github.com/muhammadheryan/bhrc-portal/thirdparty/mailer"
	"github.com/muhammadheryan/bhrc-portal/utils/dberr"
	"github.com/muhammadheryan/bhrc-portal/utils/errors"
	"github.com/muhammadheryan/bhrc-portal/utils/logger"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type AuthApp interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.RegisterResponse, error)
	VerifyEmail(ctx context.Context, req *model.VerifyEmailRequest) error
	ResendOTP(ctx context.Context, req *model.ResendOTPRequest) (*model.ResendOTPResponse, error)
	Login(ctx context.Context, req *model.LoginRequest, ip string) (*model.LoginResponse, error)
	VerifyLogin(ctx context.Context, req *model.LoginOTPRequest, ip string) (*model.LoginResponse, error)
	Refresh(ctx context.Context, req *model.RefreshRequest) (*model.TokenPair, error)
	Logout(ctx context.Context, principal *model.Principal, req *model.LogoutRequest) error
	ForgotPassword(ctx context.Context, req *model.ForgotPasswordRequest) error
	ResetPassword(ctx context.Context, req *model.ResetPasswordRequest) error
	ChangePassword(ctx context.Context, principal *model.Principal, req *model.ChangePasswordRequest) error
	Me(ctx context.Context, principal *model.Principal) (*model.UserEntity, error)
	ValidateToken(ctx context.Context, tokenString string) (*model.Principal, error)
}

// Claims is the JWT payload for both access and refresh tokens.
type Claims struct {
	Email string             `json:"email"`
	Role  constant.Role      `json:"role"`
	Kind  constant.TokenKind `json:"kind"`
	jwt.RegisteredClaims
}

type AuthAppImpl struct {
	config          *config.Config
	userRepo        userrepo.UserRepository
	redisRepo       redisrepo.Repository
	otpApp          otp.OTPApp
	settingApp      setting.SettingApp
	notificationApp notification.NotificationApp
	activityApp     activity.ActivityApp
}

func NewAuthApp(
	config *config.Config,
	userRepo userrepo.UserRepository,
	redisRepo redisrepo.Repository,
	otpApp otp.OTPApp,
	settingApp setting.SettingApp,
	notificationApp notification.NotificationApp,
	activityApp activity.ActivityApp,
) AuthApp {
	return &AuthAppImpl{
		config:          config,
		userRepo:        userRepo,
		redisRepo:       redisRepo,
		otpApp:          otpApp,
		settingApp:      settingApp,
		notificationApp: notificationApp,
		activityApp:     activityApp,
	}
}

func invalidCredentials() error {
	return errors.SetCustomError(constant.ErrUnauthorize).WithMessage("invalid credentials")
}

// settings falls back to an empty snapshot, so callers use their defaults.
func (s *AuthAppImpl) settings(ctx context.Context) *setting.Snapshot {
	snap, err := s.settingApp.Snapshot(ctx)
	if err != nil {
		return setting.NewSnapshot(nil)
	}
	return snap
}

func (s *AuthAppImpl) org(snap *setting.Snapshot) string {
	return snap.String(constant.SettingSiteName, s.config.AppName)
}

func (s *AuthAppImpl) notify(ctx context.Context, method string, msg mailer.Message) {
	if err := s.notificationApp.Send(ctx, msg); err != nil {
		logger.Warn("["+method+"] email not delivered", zap.String("to", msg.To), zap.String("error", err.Error()))
	}
}

func (s *AuthAppImpl) Register(ctx context.Context, req *model.RegisterRequest) (*model.RegisterResponse, error) {
	snap := s.settings(ctx)
	if !snap.Bool(constant.SettingRegistrationOpen, true) {
		return nil, errors.SetCustomError(constant.ErrForbidden).WithMessage("registration is currently closed")
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	// Check if user exists by email or phone
	existingUser, err := s.userRepo.Get(ctx, &model.UserFilter{Email: email})
	if err != nil {
		logger.Error("[Register] err userRepo.Get email", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existingUser != nil {
		return nil, errors.SetCustomError(constant.ErrCredentialExists)
	}

	existingUser, err = s.userRepo.Get(ctx, &model.UserFilter{Phone: req.Phone})
	if err != nil {
		logger.Error("[Register] err userRepo.Get phone", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existingUser != nil {
		return nil, errors.SetCustomError(constant.ErrCredentialExists)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("[Register] err bcrypt.GenerateFromPassword", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	userEntity, err := s.userRepo.Create(ctx, &model.UserEntity{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		Phone:        req.Phone,
		PasswordHash: string(hashedPassword),
		Role:         constant.RoleMember,
		Status:       constant.UserStatusPending,
	})
	if err != nil {
		if dberr.IsDuplicate(err) {
			return nil, errors.SetCustomError(constant.ErrCredentialExists)
		}
		logger.Error("[Register] err userRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	// the account exists even when the code cannot be sent; resend-otp recovers
	code, err := s.otpApp.Issue(ctx, userEntity.Email, constant.OTPEmailVerification, &userEntity.ID)
	if err != nil {
		logger.Warn("[Register] err otpApp.Issue", zap.String("error", err.Error()))
	} else {
		s.notify(ctx, "Register", mailer.OTPMessage(s.org(snap), userEntity.Email, userEntity.Name, code,
			"verify your email address", s.config.OTP.EmailTTL))
	}

	s.activityApp.Log(ctx, model.ActivityEntry{
		ActorID:     &userEntity.ID,
		Action:      constant.ActionUserRegistered,
		Description: "New member registered: " + userEntity.Email,
	})

	return &model.RegisterResponse{
		ID:    userEntity.ID,
		Name:  userEntity.Name,
		Email: userEntity.Email,
	}, nil
}

func (s *AuthAppImpl) VerifyEmail(ctx context.Context, req *model.VerifyEmailRequest) error {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	user, err := s.userRepo.Get(ctx, &model.UserFilter{Email: email})
	if err != nil {
		logger.Error("[VerifyEmail] err userRepo.Get", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return errors.SetCustomError(constant.ErrInvalidOTP)
	}
	if user.EmailVerified {
		return errors.SetCustomError(constant.ErrInvalidRequest).WithMessage("email address is already verified")
	}

	if _, err := s.otpApp.Verify(ctx, email, constant.OTPEmailVerification, req.OTP); err != nil {
		return err
	}

	if err := s.userRepo.MarkEmailVerified(ctx, user.ID); err != nil {
		logger.Error("[VerifyEmail] err userRepo.MarkEmailVerified", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	s.notify(ctx, "VerifyEmail", mailer.WelcomeMessage(s.org(s.settings(ctx)), user.Email, user.Name))
	s.activityApp.Log(ctx, model.ActivityEntry{
		ActorID:     &user.ID,
		Action:      constant.ActionUserVerified,
		Description: "Email verified: " + user.Email,
	})
	return nil
}

func (s *AuthAppImpl) ResendOTP(ctx context.Context, req *model.ResendOTPRequest) (*model.ResendOTPResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	otpType := constant.OTPType(req.Type)
	cooldown := &model.ResendOTPResponse{RetryAfterSeconds: int(s.config.OTP.ResendCooldown / time.Second)}

	user, err := s.userRepo.Get(ctx, &model.UserFilter{Email: email})
	if err != nil {
		logger.Error("[ResendOTP] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	// unknown addresses get the same answer as known ones
	if user == nil {
		return cooldown, nil
	}
	if otpType == constant.OTPEmailVerification && user.EmailVerified {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest).WithMessage("email address is already verified")
	}

	code, err := s.otpApp.Issue(ctx, email, otpType, &user.ID)
	if err != nil {
		return nil, err
	}

	purpose, ttl := "verify your email address", s.config.OTP.EmailTTL
	if otpType == constant.OTPLoginVerification {
		purpose, ttl = "complete your sign in", s.config.OTP.LoginTTL
	}
	s.notify(ctx, "ResendOTP", mailer.OTPMessage(s.org(s.settings(ctx)), email, user.Name, code, purpose, ttl))
	return cooldown, nil
}

func checkStatus(user *model.UserEntity) error {
	switch user.Status {
	case constant.UserStatusSuspended, constant.UserStatusInactive:
		return errors.SetCustomError(constant.ErrAccountInactive)
	case constant.UserStatusPending:
		if !user.EmailVerified {
			return errors.SetCustomError(constant.ErrEmailNotVerified)
		}
	}
	return nil
}

func (s *AuthAppImpl) Login(ctx context.Context, req *model.LoginRequest, ip string) (*model.LoginResponse, error) {
	// Find user by email or phone
	filter := &model.UserFilter{}
	if isEmail(req.Identifier) {
		filter.Email = strings.ToLower(strings.TrimSpace(req.Identifier))
	} else {
		filter.Phone = strings.TrimSpace(req.Identifier)
	}

	user, err := s.userRepo.Get(ctx, filter)
	if err != nil {
		logger.Error("[Login] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil, invalidCredentials()
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, invalidCredentials()
	}
	if err := checkStatus(user); err != nil {
		return nil, err
	}

	snap := s.settings(ctx)
	if snap.Bool(constant.SettingLoginOTPRequired, false) {
		code, err := s.otpApp.Issue(ctx, user.Email, constant.OTPLoginVerification, &user.ID)
		switch {
		case err == nil:
			s.notify(ctx, "Login", mailer.OTPMessage(s.org(snap), user.Email, user.Name, code,
				"complete your sign in", s.config.OTP.LoginTTL))
		case errors.Is(err, constant.ErrOTPCooldown):
			// a code was sent moments ago and is still valid
		default:
			return nil, err
		}
		return &model.LoginResponse{OTPRequired: true}, nil
	}

	return s.completeLogin(ctx, "Login", user, ip)
}

func (s *AuthAppImpl) VerifyLogin(ctx context.Context, req *model.LoginOTPRequest, ip string) (*model.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	user, err := s.userRepo.Get(ctx, &model.UserFilter{Email: email})
	if err != nil {
		logger.Error("[VerifyLogin] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil, errors.SetCustomError(constant.ErrInvalidOTP)
	}
	if _, err := s.otpApp.Verify(ctx, email, constant.OTPLoginVerification, req.OTP); err != nil {
		return nil, err
	}
	if err := checkStatus(user); err != nil {
		return nil, err
	}
	return s.completeLogin(ctx, "VerifyLogin", user, ip)
}

func (s *AuthAppImpl) completeLogin(ctx context.Context, method string, user *model.UserEntity, ip string) (*model.LoginResponse, error) {
	tokens, err := s.issueTokens(ctx, user)
	if err != nil {
		logger.Error("["+method+"] err issueTokens", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.userRepo.UpdateLastLogin(ctx, user.ID); err != nil {
		logger.Warn("["+method+"] err userRepo.UpdateLastLogin", zap.String("error", err.Error()))
	}

	s.activityApp.Log(ctx, model.ActivityEntry{
		ActorID:     &user.ID,
		Action:      constant.ActionUserLogin,
		Description: "User signed in",
		IP:          ip,
	})

	return &model.LoginResponse{User: user, Tokens: tokens}, nil
}

func (s *AuthAppImpl) Refresh(ctx context.Context, req *model.RefreshRequest) (*model.TokenPair, error) {
	claims, err := s.parse(req.RefreshToken, constant.TokenKindRefresh)
	if err != nil {
		return nil, errors.SetCustomError(constant.ErrUnauthorize).WithMessage("invalid or expired refresh token")
	}

	// refresh tokens are single use; the session is consumed as it is checked
	userID, err := s.checkSession(ctx, claims, true)
	if err != nil {
		return nil, errors.SetCustomError(constant.ErrUnauthorize).WithMessage("invalid or expired refresh token")
	}

	user, err := s.userRepo.Get(ctx, &model.UserFilter{ID: userID})
	if err != nil {
		logger.Error("[Refresh] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}
	if err := checkStatus(user); err != nil {
		return nil, err
	}

	tokens, err := s.issueTokens(ctx, user)
	if err != nil {
		logger.Error("[Refresh] err issueTokens", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return tokens, nil
}

func (s *AuthAppImpl) Logout(ctx context.Context, principal *model.Principal, req *model.LogoutRequest) error {
	if err := s.redisRepo.DeleteSession(ctx, principal.SessionID); err != nil {
		logger.Error("[Logout] err redisRepo.DeleteSession", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if req != nil && req.RefreshToken != "" {
		claims, err := s.parse(req.RefreshToken, constant.TokenKindRefresh)
		if err == nil && claims.Subject == strconv.FormatUint(principal.UserID, 10) {
			if err := s.redisRepo.DeleteSession(ctx, claims.ID); err != nil {
				logger.Warn("[Logout] err redisRepo.DeleteSession refresh", zap.String("error", err.Error()))
			}
		}
	}

	s.activityApp.Log(ctx, model.ActivityEntry{
		ActorID:     &principal.UserID,
		Action:      constant.ActionUserLogout,
		Description: "User signed out",
	})
	return nil
}

// ForgotPassword always succeeds from the caller's point of view.
func (s *AuthAppImpl) ForgotPassword(ctx context.Context, req *model.ForgotPasswordRequest) error {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	user, err := s.userRepo.Get(ctx, &model.UserFilter{Email: email})
	if err != nil {
		logger.Error("[ForgotPassword] err userRepo.Get", zap.String("error", err.Error()))
		return nil
	}
	if user == nil {
		return nil
	}

	token, err := s.otpApp.IssueToken(ctx, email, constant.OTPPasswordReset, &user.ID)
	if err != nil {
		logger.Warn("[ForgotPassword] err otpApp.IssueToken", zap.String("error", err.Error()))
		return nil
	}

	link := s.config.OTP.FrontendResetURL + "?token=" + url.QueryEscape(token)
	s.notify(ctx, "ForgotPassword", mailer.PasswordResetMessage(s.org(s.settings(ctx)), email, user.Name, link, s.config.OTP.ResetTokenTTL))
	return nil
}

func (s *AuthAppImpl) ResetPassword(ctx context.Context, req *model.ResetPasswordRequest) error {
	rec, err := s.otpApp.ConsumeToken(ctx, constant.OTPPasswordReset, req.Token)
	if err != nil {
		return err
	}

	user, err := s.userRepo.Get(ctx, &model.UserFilter{Email: rec.Identifier})
	if err != nil {
		logger.Error("[ResetPassword] err userRepo.Get", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return errors.SetCustomError(constant.ErrInvalidToken)
	}

	if err := s.setPassword(ctx, "ResetPassword", user.ID, req.NewPassword); err != nil {
		return err
	}
	// sign out everywhere; whoever forced the reset may hold a session
	if err := s.redisRepo.DeleteUserSessions(ctx, user.ID); err != nil {
		logger.Error("[ResetPassword] err redisRepo.DeleteUserSessions", zap.String("error", err.Error()))
	}

	s.activityApp.Log(ctx, model.ActivityEntry{
		ActorID:     &user.ID,
		Action:      constant.ActionPasswordReset,
		Description: "Password reset via email token",
	})
	return nil
}

func (s *AuthAppImpl) ChangePassword(ctx context.Context, principal *model.Principal, req *model.ChangePasswordRequest) error {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{ID: principal.UserID})
	if err != nil {
		logger.Error("[ChangePassword] err userRepo.Get", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return errors.SetCustomError(constant.ErrInvalidPassword).WithMessage("current password is incorrect")
	}

	if err := s.setPassword(ctx, "ChangePassword", user.ID, req.NewPassword); err != nil {
		return err
	}

	s.activityApp.Log(ctx, model.ActivityEntry{
		ActorID:     &user.ID,
		Action:      constant.ActionPasswordChanged,
		Description: "Password changed",
	})
	return nil
}

func (s *AuthAppImpl) setPassword(ctx context.Context, method string, userID uint64, password string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("["+method+"] err bcrypt.GenerateFromPassword", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if err := s.userRepo.UpdatePassword(ctx, userID, string(hashed)); err != nil {
		logger.Error("["+method+"] err userRepo.UpdatePassword", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *AuthAppImpl) Me(ctx context.Context, principal *model.Principal) (*model.UserEntity, error) {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{ID: principal.UserID})
	if err != nil {
		logger.Error("[Me] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return user, nil
}

// ValidateToken resolves an access token to its principal. The role comes from
// the stored user so role and status changes apply to live sessions.
func (s *AuthAppImpl) ValidateToken(ctx context.Context, tokenString string) (*model.Principal, error) {
	claims, err := s.parse(tokenString, constant.TokenKindAccess)
	if err != nil {
		return nil, err
	}

	userID, err := s.checkSession(ctx, claims, false)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.Get(ctx, &model.UserFilter{ID: userID})
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user %d no longer exists", userID)
	}
	if user.Status == constant.UserStatusSuspended || user.Status == constant.UserStatusInactive {
		return nil, fmt.Errorf("account is not active")
	}

	return &model.Principal{
		UserID:    user.ID,
		Email:     user.Email,
		Role:      user.Role,
		SessionID: claims.ID,
	}, nil
}

func (s *AuthAppImpl) parse(tokenString string, kind constant.TokenKind) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.config.Auth.JWTSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid claims")
	}
	if claims.Kind != kind {
		return nil, fmt.Errorf("unexpected token kind %q", claims.Kind)
	}
	if claims.ID == "" {
		return nil, fmt.Errorf("token missing jti")
	}
	return claims, nil
}

// checkSession compares the session stored under the jti with the token subject.
// With consume the session is removed in the same step.
func (s *AuthAppImpl) checkSession(ctx context.Context, claims *Claims, consume bool) (uint64, error) {
	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid user id in token")
	}

	lookup := s.redisRepo.GetSession
	if consume {
		lookup = s.redisRepo.TakeSession
	}
	sessionUserID, err := lookup(ctx, claims.ID)
	if err != nil {
		if redisrepo.IsNil(err) {
			return 0, fmt.Errorf("invalid or expired session")
		}
		return 0, fmt.Errorf("get session: %w", err)
	}
	if sessionUserID != userID {
		return 0, stderrors.New("token does not match user session")
	}
	return userID, nil
}

func (s *AuthAppImpl) issueTokens(ctx context.Context, user *model.UserEntity) (*model.TokenPair, error) {
	now := time.Now()
	access, accessID, err := s.sign(user, constant.TokenKindAccess, now, s.config.Auth.JWTExpiration)
	if err != nil {
		return nil, err
	}
	refresh, refreshID, err := s.sign(user, constant.TokenKindRefresh, now, s.config.Auth.RefreshExpTime)
	if err != nil {
		return nil, err
	}

	if err := s.redisRepo.SetSession(ctx, accessID, user.ID, s.config.Auth.JWTExpiration); err != nil {
		return nil, fmt.Errorf("store access session: %w", err)
	}
	if err := s.redisRepo.SetSession(ctx, refreshID, user.ID, s.config.Auth.RefreshExpTime); err != nil {
		return nil, fmt.Errorf("store refresh session: %w", err)
	}

	return &model.TokenPair{
		AccessToken:      access,
		RefreshToken:     refresh,
		TokenType:        "Bearer",
		ExpiresAt:        now.Add(s.config.Auth.JWTExpiration),
		RefreshExpiresAt: now.Add(s.config.Auth.RefreshExpTime),
	}, nil
}

// sign creates a JWT for the user and returns it with its jti.
func (s *AuthAppImpl) sign(user *model.UserEntity, kind constant.TokenKind, now time.Time, ttl time.Duration) (string, string, error) {
	claims := Claims{
		Email: user.Email,
		Role:  user.Role,
		Kind:  kind,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(user.ID, 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.config.Auth.JWTSecret))
	if err != nil {
		return "", "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, claims.ID, nil
}

// isEmail checks if identifier looks like an email
func isEmail(identifier string) bool {
	return strings.ContainsRune(identifier, '@')
}

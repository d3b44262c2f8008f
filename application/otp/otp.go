package otp

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"time"

	"github.com/muhammadheryan/bhrc-portal/cmd/config"
	"github.com/muhammadheryan/bhrc-portal/constant"
	"github.com/muhammadheryan/bhrc-portal/model"
	otprepo "github.com/muhammadheryan/bhrc-portal/repository/otp"
	"github.com/muhammadheryan/bhrc-portal/utils/errors"
	"github.com/muhammadheryan/bhrc-portal/utils/identifier"
	"github.com/muhammadheryan/bhrc-portal/utils/logger"
	"go.uber.org/zap"
)

type OTPApp interface {
	// Issue creates a fresh numeric code for the pair and returns it for delivery.
	Issue(ctx context.Context, identifier string, otpType constant.OTPType, userID *uint64) (string, error)
	CanResend(ctx context.Context, identifier string, otpType constant.OTPType) (bool, error)
	RemainingCooldown(ctx context.Context, identifier string, otpType constant.OTPType) (time.Duration, error)
	Verify(ctx context.Context, identifier string, otpType constant.OTPType, code string) (*model.OTPEntity, error)
	// IssueToken creates a hex security token; only its hash is stored.
	IssueToken(ctx context.Context, identifier string, otpType constant.OTPType, userID *uint64) (string, error)
	ConsumeToken(ctx context.Context, otpType constant.OTPType, token string) (*model.OTPEntity, error)
	PurgeExpired(ctx context.Context, retention time.Duration) (int64, error)
}

type OTPAppImpl struct {
	config  *config.Config
	otpRepo otprepo.OTPRepository
	now     func() time.Time
}

func NewOTPApp(config *config.Config, otpRepo otprepo.OTPRepository) OTPApp {
	return &OTPAppImpl{
		config:  config,
		otpRepo: otpRepo,
		now:     time.Now,
	}
}

func (s *OTPAppImpl) ttl(otpType constant.OTPType) time.Duration {
	switch otpType {
	case constant.OTPLoginVerification:
		return s.config.OTP.LoginTTL
	case constant.OTPPasswordReset:
		return s.config.OTP.ResetTokenTTL
	default:
		return s.config.OTP.EmailTTL
	}
}

func (s *OTPAppImpl) RemainingCooldown(ctx context.Context, identifier string, otpType constant.OTPType) (time.Duration, error) {
	last, err := s.otpRepo.GetLatestIssued(ctx, identifier, otpType)
	if err != nil {
		logger.Error("[RemainingCooldown] err otpRepo.GetLatestIssued", zap.String("error", err.Error()))
		return 0, errors.SetCustomError(constant.ErrInternal)
	}
	if last == nil {
		return 0, nil
	}
	left := s.config.OTP.ResendCooldown - s.now().Sub(last.CreatedAt)
	if left < 0 {
		return 0, nil
	}
	return left, nil
}

func (s *OTPAppImpl) CanResend(ctx context.Context, identifier string, otpType constant.OTPType) (bool, error) {
	left, err := s.RemainingCooldown(ctx, identifier, otpType)
	if err != nil {
		return false, err
	}
	return left == 0, nil
}

func cooldownError(left time.Duration) error {
	seconds := int((left + time.Second - 1) / time.Second)
	return errors.SetCustomError(constant.ErrOTPCooldown).WithMeta("retry_after_seconds", seconds)
}

func (s *OTPAppImpl) store(ctx context.Context, method, identifier string, otpType constant.OTPType, userID *uint64, code string) error {
	left, err := s.RemainingCooldown(ctx, identifier, otpType)
	if err != nil {
		return err
	}
	if left > 0 {
		return cooldownError(left)
	}

	if err := s.otpRepo.InvalidateActive(ctx, identifier, otpType); err != nil {
		logger.Error("["+method+"] err otpRepo.InvalidateActive", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	_, err = s.otpRepo.Create(ctx, &model.OTPEntity{
		UserID:     userID,
		Identifier: identifier,
		Code:       code,
		Type:       otpType,
		ExpiresAt:  s.now().Add(s.ttl(otpType)),
	})
	if err != nil {
		logger.Error("["+method+"] err otpRepo.Create", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *OTPAppImpl) Issue(ctx context.Context, ident string, otpType constant.OTPType, userID *uint64) (string, error) {
	code, err := identifier.OTP(s.config.OTP.Length)
	if err != nil {
		logger.Error("[Issue] err identifier.OTP", zap.String("error", err.Error()))
		return "", errors.SetCustomError(constant.ErrInternal)
	}
	if err := s.store(ctx, "Issue", ident, otpType, userID, code); err != nil {
		return "", err
	}
	return code, nil
}

func (s *OTPAppImpl) Verify(ctx context.Context, ident string, otpType constant.OTPType, code string) (*model.OTPEntity, error) {
	rec, err := s.otpRepo.GetLatest(ctx, ident, otpType)
	if err != nil {
		logger.Error("[Verify] err otpRepo.GetLatest", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if rec == nil || !s.now().Before(rec.ExpiresAt) {
		return nil, errors.SetCustomError(constant.ErrInvalidOTP)
	}
	if rec.Attempts >= s.config.OTP.MaxAttempts {
		return nil, errors.SetCustomError(constant.ErrOTPAttemptsExceeded)
	}

	if subtle.ConstantTimeCompare([]byte(rec.Code), []byte(code)) != 1 {
		if err := s.otpRepo.IncrementAttempts(ctx, rec.ID); err != nil {
			logger.Error("[Verify] err otpRepo.IncrementAttempts", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		return nil, errors.SetCustomError(constant.ErrInvalidOTP)
	}

	ok, err := s.otpRepo.MarkVerified(ctx, rec.ID)
	if err != nil {
		logger.Error("[Verify] err otpRepo.MarkVerified", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if !ok {
		return nil, errors.SetCustomError(constant.ErrInvalidOTP)
	}
	return rec, nil
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

func (s *OTPAppImpl) IssueToken(ctx context.Context, ident string, otpType constant.OTPType, userID *uint64) (string, error) {
	token, err := identifier.Token(identifier.DefaultTokenSize)
	if err != nil {
		logger.Error("[IssueToken] err identifier.Token", zap.String("error", err.Error()))
		return "", errors.SetCustomError(constant.ErrInternal)
	}
	if err := s.store(ctx, "IssueToken", ident, otpType, userID, hashToken(token)); err != nil {
		return "", err
	}
	return token, nil
}

func (s *OTPAppImpl) ConsumeToken(ctx context.Context, otpType constant.OTPType, token string) (*model.OTPEntity, error) {
	rec, err := s.otpRepo.GetByCode(ctx, otpType, hashToken(token))
	if err != nil {
		logger.Error("[ConsumeToken] err otpRepo.GetByCode", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if rec == nil || !s.now().Before(rec.ExpiresAt) {
		return nil, errors.SetCustomError(constant.ErrInvalidToken)
	}

	ok, err := s.otpRepo.MarkVerified(ctx, rec.ID)
	if err != nil {
		logger.Error("[ConsumeToken] err otpRepo.MarkVerified", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if !ok {
		return nil, errors.SetCustomError(constant.ErrInvalidToken)
	}
	return rec, nil
}

func (s *OTPAppImpl) PurgeExpired(ctx context.Context, retention time.Duration) (int64, error) {
	n, err := s.otpRepo.PurgeExpired(ctx, s.now().Add(-retention))
	if err != nil {
		logger.Error("[PurgeExpired] err otpRepo.PurgeExpired", zap.String("error", err.Error()))
		return 0, errors.SetCustomError(constant.ErrInternal)
	}
	return n, nil
}

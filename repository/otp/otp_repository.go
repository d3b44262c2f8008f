package otp

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/bhrc-portal/constant"
	"github.com/muhammadheryan/bhrc-portal/model"
)

type SQL struct {
	conn *sqlx.DB
}

type OTPRepository interface {
	Create(ctx context.Context, data *model.OTPEntity) (uint64, error)
	InvalidateActive(ctx context.Context, identifier string, otpType constant.OTPType) error
	GetLatest(ctx context.Context, identifier string, otpType constant.OTPType) (*model.OTPEntity, error)
	GetLatestIssued(ctx context.Context, identifier string, otpType constant.OTPType) (*model.OTPEntity, error)
	GetByCode(ctx context.Context, otpType constant.OTPType, code string) (*model.OTPEntity, error)
	IncrementAttempts(ctx context.Context, id uint64) error
	MarkVerified(ctx context.Context, id uint64) (bool, error)
	PurgeExpired(ctx context.Context, before time.Time) (int64, error)
}

func NewOTPRepository(conn *sqlx.DB) OTPRepository {
	return &SQL{conn: conn}
}

const (
	otpColumns = `id, user_id, identifier, code, type, expires_at, verified, verified_at, attempts, created_at`

	insertOTPQuery     = `INSERT INTO otp_verifications (user_id, identifier, code, type, expires_at, created_at) VALUES (?, ?, ?, ?, ?, NOW())`
	invalidateOTPQuery = `UPDATE otp_verifications SET verified = 1 WHERE identifier = ? AND type = ? AND verified = 0 AND expires_at > NOW()`
	latestOTPQuery     = `SELECT ` + otpColumns + ` FROM otp_verifications WHERE identifier = ? AND type = ? AND verified = 0 ORDER BY id DESC LIMIT 1`
	latestIssuedQuery  = `SELECT ` + otpColumns + ` FROM otp_verifications WHERE identifier = ? AND type = ? ORDER BY id DESC LIMIT 1`
	otpByCodeQuery     = `SELECT ` + otpColumns + ` FROM otp_verifications WHERE type = ? AND code = ? AND verified = 0 ORDER BY id DESC LIMIT 1`
	incrementOTPQuery  = `UPDATE otp_verifications SET attempts = attempts + 1 WHERE id = ?`
	verifyOTPQuery     = `UPDATE otp_verifications SET verified = 1, verified_at = NOW() WHERE id = ? AND verified = 0`
	purgeOTPQuery      = `DELETE FROM otp_verifications WHERE expires_at < ? OR (verified = 1 AND verified_at < ?)`
)

func (r *SQL) Create(ctx context.Context, data *model.OTPEntity) (uint64, error) {
	res, err := r.conn.ExecContext(ctx, insertOTPQuery, data.UserID, data.Identifier, data.Code, data.Type, data.ExpiresAt)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// InvalidateActive retires every live record for the pair without verifying it; verified_at stays NULL.
func (r *SQL) InvalidateActive(ctx context.Context, identifier string, otpType constant.OTPType) error {
	_, err := r.conn.ExecContext(ctx, invalidateOTPQuery, identifier, otpType)
	return err
}

func (r *SQL) one(ctx context.Context, query string, args ...any) (*model.OTPEntity, error) {
	var entity model.OTPEntity
	if err := r.conn.QueryRowxContext(ctx, query, args...).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

// GetLatest returns the newest unverified record for the pair, expired or not.
func (r *SQL) GetLatest(ctx context.Context, identifier string, otpType constant.OTPType) (*model.OTPEntity, error) {
	return r.one(ctx, latestOTPQuery, identifier, otpType)
}

// GetLatestIssued returns the newest record regardless of state; used for the resend cooldown.
func (r *SQL) GetLatestIssued(ctx context.Context, identifier string, otpType constant.OTPType) (*model.OTPEntity, error) {
	return r.one(ctx, latestIssuedQuery, identifier, otpType)
}

func (r *SQL) GetByCode(ctx context.Context, otpType constant.OTPType, code string) (*model.OTPEntity, error) {
	return r.one(ctx, otpByCodeQuery, otpType, code)
}

func (r *SQL) IncrementAttempts(ctx context.Context, id uint64) error {
	_, err := r.conn.ExecContext(ctx, incrementOTPQuery, id)
	return err
}

// MarkVerified reports false when another request consumed the record first.
func (r *SQL) MarkVerified(ctx context.Context, id uint64) (bool, error) {
	res, err := r.conn.ExecContext(ctx, verifyOTPQuery, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (r *SQL) PurgeExpired(ctx context.Context, before time.Time) (int64, error) {
	res, err := r.conn.ExecContext(ctx, purgeOTPQuery, before, before)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

package model

import (
	"time"

	"github.com/muhammadheryan/bhrc-portal/constant"
)

// OTPEntity backs both numeric OTPs and hex security tokens.
type OTPEntity struct {
	ID         uint64           `db:"id" json:"id"`
	UserID     *uint64          `db:"user_id" json:"user_id,omitempty"`
	Identifier string           `db:"identifier" json:"identifier"`
	Code       string           `db:"code" json:"-"`
	Type       constant.OTPType `db:"type" json:"type"`
	ExpiresAt  time.Time        `db:"expires_at" json:"expires_at"`
	Verified   bool             `db:"verified" json:"verified"`
	VerifiedAt *time.Time       `db:"verified_at" json:"verified_at,omitempty"`
	Attempts   int              `db:"attempts" json:"attempts"`
	CreatedAt  time.Time        `db:"created_at" json:"created_at"`
}

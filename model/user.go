package model

import (
	"time"

	"github.com/muhammadheryan/bhrc-portal/constant"
)

// UserEntity represents the users table entity
type UserEntity struct {
	ID            uint64              `db:"id" json:"id"`
	Name          string              `db:"name" json:"name"`
	Email         string              `db:"email" json:"email"`
	Phone         string              `db:"phone" json:"phone"`
	PasswordHash  string              `db:"password_hash" json:"-"`
	Role          constant.Role       `db:"role" json:"role"`
	Status        constant.UserStatus `db:"status" json:"status"`
	EmailVerified bool                `db:"email_verified" json:"email_verified"`
	PhoneVerified bool                `db:"phone_verified" json:"phone_verified"`
	Address       string              `db:"address" json:"address,omitempty"`
	City          string              `db:"city" json:"city,omitempty"`
	State         string              `db:"state" json:"state,omitempty"`
	Occupation    string              `db:"occupation" json:"occupation,omitempty"`
	LastLogin     *time.Time          `db:"last_login" json:"last_login,omitempty"`
	CreatedAt     time.Time           `db:"created_at" json:"created_at"`
	UpdatedAt     *time.Time          `db:"updated_at" json:"updated_at,omitempty"`
}

// UserFilter for querying a single user
type UserFilter struct {
	ID    uint64
	Email string
	Phone string
}

// UserListFilter for listing users
type UserListFilter struct {
	ListQuery
	Role   string
	Status string
}

// RegisterRequest for user registration
type RegisterRequest struct {
	Name            string `json:"name" validate:"required,min=2,max=100"`
	Email           string `json:"email" validate:"required,email"`
	Phone           string `json:"phone" validate:"required,phone"`
	Password        string `json:"password" validate:"required,password"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
}

// LoginRequest for user login (accepts email or phone)
type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required"` // email or phone
	Password   string `json:"password" validate:"required"`
}

type LoginOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
	OTP   string `json:"otp" validate:"required,numeric,min=4,max=10"`
}

type TokenPair struct {
	AccessToken      string    `json:"access_token"`
	RefreshToken     string    `json:"refresh_token"`
	TokenType        string    `json:"token_type"`
	ExpiresAt        time.Time `json:"expires_at"`
	RefreshExpiresAt time.Time `json:"refresh_expires_at"`
}

type LoginResponse struct {
	User        *UserEntity `json:"user,omitempty"`
	Tokens      *TokenPair  `json:"tokens,omitempty"`
	OTPRequired bool        `json:"otp_required,omitempty"`
}

type RegisterResponse struct {
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type VerifyEmailRequest struct {
	Email string `json:"email" validate:"required,email"`
	OTP   string `json:"otp" validate:"required,numeric,min=4,max=10"`
}

type ResendOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
	Type  string `json:"type" validate:"required,oneof=email_verification login_verification"`
}

type ResendOTPResponse struct {
	RetryAfterSeconds int `json:"retry_after_seconds"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Token           string `json:"token" validate:"required,hexadecimal,len=64"`
	NewPassword     string `json:"new_password" validate:"required,password"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=NewPassword"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,password,nefield=CurrentPassword"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=NewPassword"`
}

// CreateUserRequest is used by admins; the account starts active.
type CreateUserRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required,phone"`
	Password string `json:"password" validate:"required,password"`
	Role     string `json:"role" validate:"required,bhrc_role"`
}

type UpdateProfileRequest struct {
	Name       string `json:"name" validate:"required,min=2,max=100"`
	Phone      string `json:"phone" validate:"required,phone"`
	Address    string `json:"address" validate:"max=255"`
	City       string `json:"city" validate:"max=100"`
	State      string `json:"state" validate:"max=100"`
	Occupation string `json:"occupation" validate:"max=100"`
}

type UpdateUserStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending active inactive suspended"`
}

type UpdateUserRoleRequest struct {
	Role string `json:"role" validate:"required,bhrc_role"`
}

type UserStats struct {
	Total    int64        `json:"total"`
	ByStatus []CountByKey `json:"by_status"`
	ByRole   []CountByKey `json:"by_role"`
}

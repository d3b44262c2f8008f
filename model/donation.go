package model

import (
	"time"

	"github.com/muhammadheryan/bhrc-portal/constant"
)

type DonationEntity struct {
	ID              uint64                  `db:"id" json:"id"`
	ReferenceNumber string                  `db:"reference_number" json:"reference_number"`
	UserID          *uint64                 `db:"user_id" json:"user_id,omitempty"`
	DonorName       *string                 `db:"donor_name" json:"donor_name,omitempty"`
	DonorEmail      *string                 `db:"donor_email" json:"donor_email,omitempty"`
	DonorPhone      *string                 `db:"donor_phone" json:"donor_phone,omitempty"`
	PAN             *string                 `db:"pan_number" json:"pan_number,omitempty"`
	Amount          float64                 `db:"amount" json:"amount"`
	DonationType    string                  `db:"donation_type" json:"donation_type"`
	Category        string                  `db:"category" json:"category"`
	PaymentMethod   string                  `db:"payment_method" json:"payment_method"`
	TransactionID   *string                 `db:"transaction_id" json:"transaction_id,omitempty"`
	Status          constant.DonationStatus `db:"status" json:"status"`
	IsAnonymous     bool                    `db:"is_anonymous" json:"is_anonymous"`
	Message         string                  `db:"message" json:"message,omitempty"`
	CreatedAt       time.Time               `db:"created_at" json:"created_at"`
	UpdatedAt       *time.Time              `db:"updated_at" json:"updated_at,omitempty"`
}

type DonationFilter struct {
	ListQuery
	Status    string
	Category  string
	Type      string
	UserID    uint64
	MinAmount float64
	MaxAmount float64
}

type CreateDonationRequest struct {
	DonorName     string  `json:"donor_name" validate:"required_if=IsAnonymous false,max=100"`
	DonorEmail    string  `json:"donor_email" validate:"required_if=IsAnonymous false,omitempty,email"`
	DonorPhone    string  `json:"donor_phone" validate:"omitempty,phone"`
	PAN           string  `json:"pan_number" validate:"omitempty,len=10,alphanum"`
	Amount        float64 `json:"amount" validate:"required,gt=0,lte=10000000"`
	DonationType  string  `json:"donation_type" validate:"required,oneof=one-time monthly annual"`
	Category      string  `json:"category" validate:"required,oneof=general education legal_aid relief awareness"`
	PaymentMethod string  `json:"payment_method" validate:"required,oneof=upi card netbanking cash cheque bank_transfer"`
	TransactionID string  `json:"transaction_id" validate:"max=100"`
	IsAnonymous   bool    `json:"is_anonymous"`
	Message       string  `json:"message" validate:"max=1000"`
}

type UpdateDonationStatusRequest struct {
	Status        string `json:"status" validate:"required,oneof=pending completed failed refunded"`
	TransactionID string `json:"transaction_id" validate:"max=100"`
}

type DonationReceipt struct {
	ReceiptNumber   string    `json:"receipt_number"`
	ReferenceNumber string    `json:"reference_number"`
	DonorName       string    `json:"donor_name"`
	DonorEmail      string    `json:"donor_email,omitempty"`
	PAN             string    `json:"pan_number,omitempty"`
	Amount          float64   `json:"amount"`
	Category        string    `json:"category"`
	PaymentMethod   string    `json:"payment_method"`
	TransactionID   string    `json:"transaction_id,omitempty"`
	DonatedAt       time.Time `json:"donated_at"`
	Organization    string    `json:"organization"`
}

type MonthlyAmount struct {
	Month  string  `db:"month" json:"month"`
	Count  int64   `db:"count" json:"count"`
	Amount float64 `db:"amount" json:"amount"`
}

type CategoryAmount struct {
	Category string  `db:"category" json:"category"`
	Count    int64   `db:"count" json:"count"`
	Amount   float64 `db:"amount" json:"amount"`
}

type DonationStats struct {
	TotalCount     int64            `json:"total_count"`
	CompletedCount int64            `json:"completed_count"`
	TotalAmount    float64          `json:"total_amount"`
	ByCategory     []CategoryAmount `json:"by_category"`
	ByMonth        []MonthlyAmount  `json:"by_month"`
}

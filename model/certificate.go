package model

import "time"

type CertificateEntity struct {
	ID                uint64     `db:"id" json:"id"`
	CertificateNumber string     `db:"certificate_number" json:"certificate_number"`
	UserID            uint64     `db:"user_id" json:"user_id"`
	RecipientName     *string    `db:"recipient_name" json:"recipient_name,omitempty"`
	CertificateType   string     `db:"certificate_type" json:"certificate_type"`
	Title             string     `db:"title" json:"title"`
	Description       string     `db:"description" json:"description,omitempty"`
	IssueDate         time.Time  `db:"issue_date" json:"issue_date"`
	ValidUntil        *time.Time `db:"valid_until" json:"valid_until,omitempty"`
	IssuedBy          *uint64    `db:"issued_by" json:"issued_by,omitempty"`
	CreatedAt         time.Time  `db:"created_at" json:"created_at"`
}

type CertificateFilter struct {
	ListQuery
	UserID uint64
	Type   string
}

type IssueCertificateRequest struct {
	UserID          uint64 `json:"user_id" validate:"required,gt=0"`
	CertificateType string `json:"certificate_type" validate:"required,oneof=membership volunteer appreciation participation training"`
	Title           string `json:"title" validate:"required,min=3,max=200"`
	Description     string `json:"description" validate:"max=1000"`
	IssueDate       string `json:"issue_date" validate:"omitempty,datetime=2006-01-02"`
	ValidUntil      string `json:"valid_until" validate:"omitempty,datetime=2006-01-02"`
}

type CertificateVerification struct {
	Valid             bool       `json:"valid"`
	CertificateNumber string     `json:"certificate_number"`
	RecipientName     string     `json:"recipient_name,omitempty"`
	Title             string     `json:"title,omitempty"`
	IssueDate         *time.Time `json:"issue_date,omitempty"`
	Expired           bool       `json:"expired"`
}

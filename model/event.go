package model

import (
	"time"

	"github.com/muhammadheryan/bhrc-portal/constant"
)

type EventEntity struct {
	ID                   uint64               `db:"id" json:"id"`
	Title                string               `db:"title" json:"title"`
	Description          string               `db:"description" json:"description"`
	EventType            string               `db:"event_type" json:"event_type"`
	EventDate            time.Time            `db:"event_date" json:"event_date"`
	EndDate              *time.Time           `db:"end_date" json:"end_date,omitempty"`
	Location             string               `db:"location" json:"location"`
	Capacity             *int                 `db:"capacity" json:"capacity,omitempty"`
	RegistrationRequired bool                 `db:"registration_required" json:"registration_required"`
	RegistrationFee      float64              `db:"registration_fee" json:"registration_fee"`
	Status               constant.EventStatus `db:"status" json:"status"`
	IsPublic             bool                 `db:"is_public" json:"is_public"`
	ImageURL             string               `db:"image_url" json:"image_url,omitempty"`
	CreatedBy            *uint64              `db:"created_by" json:"created_by,omitempty"`
	RegistrationCount    int64                `db:"registration_count" json:"registration_count"`
	CreatedAt            time.Time            `db:"created_at" json:"created_at"`
	UpdatedAt            *time.Time           `db:"updated_at" json:"updated_at,omitempty"`
}

type EventFilter struct {
	ListQuery
	Status     string
	EventType  string
	PublicOnly bool
	Upcoming   bool
}

type EventRequest struct {
	Title                string  `json:"title" validate:"required,min=3,max=200"`
	Description          string  `json:"description" validate:"required,min=10"`
	EventType            string  `json:"event_type" validate:"required,oneof=workshop seminar campaign meeting training rally other"`
	EventDate            string  `json:"event_date" validate:"required,datetime=2006-01-02T15:04"`
	EndDate              string  `json:"end_date" validate:"omitempty,datetime=2006-01-02T15:04"`
	Location             string  `json:"location" validate:"required,max=255"`
	Capacity             *int    `json:"capacity" validate:"omitempty,gt=0"`
	RegistrationRequired bool    `json:"registration_required"`
	RegistrationFee      float64 `json:"registration_fee" validate:"gte=0"`
	Status               string  `json:"status" validate:"omitempty,oneof=upcoming ongoing completed cancelled postponed"`
	IsPublic             *bool   `json:"is_public"`
	ImageURL             string  `json:"image_url" validate:"omitempty,max=500"`
}

type EventRegistrationEntity struct {
	ID               uint64                    `db:"id" json:"id"`
	EventID          uint64                    `db:"event_id" json:"event_id"`
	UserID           *uint64                   `db:"user_id" json:"user_id,omitempty"`
	ParticipantName  string                    `db:"participant_name" json:"participant_name"`
	ParticipantEmail string                    `db:"participant_email" json:"participant_email"`
	ParticipantPhone string                    `db:"participant_phone" json:"participant_phone"`
	AttendanceStatus constant.AttendanceStatus `db:"attendance_status" json:"attendance_status"`
	PaymentStatus    constant.PaymentStatus    `db:"payment_status" json:"payment_status"`
	EventTitle       *string                   `db:"event_title" json:"event_title,omitempty"`
	EventDate        *time.Time                `db:"event_date" json:"event_date,omitempty"`
	CreatedAt        time.Time                 `db:"created_at" json:"created_at"`
	UpdatedAt        *time.Time                `db:"updated_at" json:"updated_at,omitempty"`
}

type RegistrationFilter struct {
	ListQuery
	EventID          uint64
	Email            string
	AttendanceStatus string
}

type EventRegistrationRequest struct {
	ParticipantName  string `json:"participant_name" validate:"required,min=2,max=100"`
	ParticipantEmail string `json:"participant_email" validate:"required,email"`
	ParticipantPhone string `json:"participant_phone" validate:"required,phone"`
}

type UpdateAttendanceRequest struct {
	AttendanceStatus string `json:"attendance_status" validate:"required,oneof=pending confirmed cancelled attended"`
}

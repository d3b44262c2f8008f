package model

import (
	"time"

	"github.com/muhammadheryan/bhrc-portal/constant"
)

type ComplaintEntity struct {
	ID               uint64                     `db:"id" json:"id"`
	ComplaintNumber  string                     `db:"complaint_number" json:"complaint_number"`
	UserID           *uint64                    `db:"user_id" json:"user_id,omitempty"`
	ComplainantName  string                     `db:"complainant_name" json:"complainant_name"`
	ComplainantEmail string                     `db:"complainant_email" json:"complainant_email"`
	ComplainantPhone string                     `db:"complainant_phone" json:"complainant_phone"`
	ComplainantAddr  string                     `db:"complainant_address" json:"complainant_address,omitempty"`
	ComplaintType    string                     `db:"complaint_type" json:"complaint_type"`
	Subject          string                     `db:"subject" json:"subject"`
	Description      string                     `db:"description" json:"description"`
	IncidentDate     *time.Time                 `db:"incident_date" json:"incident_date,omitempty"`
	IncidentLocation string                     `db:"incident_location" json:"incident_location,omitempty"`
	Priority         constant.ComplaintPriority `db:"priority" json:"priority"`
	Status           constant.ComplaintStatus   `db:"status" json:"status"`
	AssignedTo       *uint64                    `db:"assigned_to" json:"assigned_to,omitempty"`
	AssignedToName   *string                    `db:"assigned_to_name" json:"assigned_to_name,omitempty"`
	ResolutionNotes  string                     `db:"resolution_notes" json:"resolution_notes,omitempty"`
	CreatedAt        time.Time                  `db:"created_at" json:"created_at"`
	UpdatedAt        *time.Time                 `db:"updated_at" json:"updated_at,omitempty"`
}

type ComplaintFilter struct {
	ListQuery
	Status     string
	Type       string
	Priority   string
	AssignedTo uint64
	Email      string
}

type FileComplaintRequest struct {
	ComplainantName    string `json:"complainant_name" validate:"required,min=2,max=100"`
	ComplainantEmail   string `json:"complainant_email" validate:"required,email"`
	ComplainantPhone   string `json:"complainant_phone" validate:"required,phone"`
	ComplainantAddress string `json:"complainant_address" validate:"max=255"`
	ComplaintType      string `json:"complaint_type" validate:"required,oneof=discrimination harassment violence police_misconduct custodial_violence labour_rights child_rights women_rights other"`
	Subject            string `json:"subject" validate:"required,min=5,max=200"`
	Description        string `json:"description" validate:"required,min=20,max=5000"`
	IncidentDate       string `json:"incident_date" validate:"omitempty,datetime=2006-01-02"`
	IncidentLocation   string `json:"incident_location" validate:"max=255"`
	Priority           string `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
}

type FileComplaintResponse struct {
	ID              uint64                   `json:"id"`
	ComplaintNumber string                   `json:"complaint_number"`
	Status          constant.ComplaintStatus `json:"status"`
	CreatedAt       time.Time                `json:"created_at"`
}

type TrackComplaintRequest struct {
	ComplaintNumber string `json:"complaint_number" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
}

type UpdateComplaintStatusRequest struct {
	Status          string `json:"status" validate:"required,oneof=submitted under_review investigating resolved closed rejected"`
	ResolutionNotes string `json:"resolution_notes" validate:"max=5000"`
}

type AssignComplaintRequest struct {
	AssignedTo uint64 `json:"assigned_to" validate:"required,gt=0"`
}

type UpdateComplaintPriorityRequest struct {
	Priority string `json:"priority" validate:"required,oneof=low medium high urgent"`
}

type ComplaintStats struct {
	Total      int64        `json:"total"`
	ByStatus   []CountByKey `json:"by_status"`
	ByType     []CountByKey `json:"by_type"`
	ByPriority []CountByKey `json:"by_priority"`
}

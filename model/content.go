package model

import (
	"time"

	"github.com/muhammadheryan/bhrc-portal/constant"
)

type GalleryEntity struct {
	ID           uint64     `db:"id" json:"id"`
	Title        string     `db:"title" json:"title"`
	Description  string     `db:"description" json:"description,omitempty"`
	Category     string     `db:"category" json:"category"`
	ImageURL     string     `db:"image_url" json:"image_url"`
	ThumbnailURL string     `db:"thumbnail_url" json:"thumbnail_url,omitempty"`
	EventID      *uint64    `db:"event_id" json:"event_id,omitempty"`
	IsPublic     bool       `db:"is_public" json:"is_public"`
	UploadedBy   *uint64    `db:"uploaded_by" json:"uploaded_by,omitempty"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

type GalleryFilter struct {
	ListQuery
	Category   string
	EventID    uint64
	PublicOnly bool
}

type GalleryRequest struct {
	Title        string  `json:"title" validate:"required,min=2,max=200"`
	Description  string  `json:"description" validate:"max=1000"`
	Category     string  `json:"category" validate:"required,oneof=events campaigns awareness meetings other"`
	ImageURL     string  `json:"image_url" validate:"required,max=500"`
	ThumbnailURL string  `json:"thumbnail_url" validate:"max=500"`
	EventID      *uint64 `json:"event_id" validate:"omitempty,gt=0"`
	IsPublic     *bool   `json:"is_public"`
}

type NewsEntity struct {
	ID          uint64              `db:"id" json:"id"`
	Title       string              `db:"title" json:"title"`
	Slug        string              `db:"slug" json:"slug"`
	Summary     string              `db:"summary" json:"summary,omitempty"`
	Content     string              `db:"content" json:"content"`
	Category    string              `db:"category" json:"category"`
	ImageURL    string              `db:"image_url" json:"image_url,omitempty"`
	Status      constant.NewsStatus `db:"status" json:"status"`
	Views       int64               `db:"views" json:"views"`
	AuthorID    *uint64             `db:"author_id" json:"author_id,omitempty"`
	PublishedAt *time.Time          `db:"published_at" json:"published_at,omitempty"`
	CreatedAt   time.Time           `db:"created_at" json:"created_at"`
	UpdatedAt   *time.Time          `db:"updated_at" json:"updated_at,omitempty"`
}

type NewsFilter struct {
	ListQuery
	Category      string
	Status        string
	PublishedOnly bool
}

type NewsRequest struct {
	Title    string `json:"title" validate:"required,min=3,max=200"`
	Summary  string `json:"summary" validate:"max=500"`
	Content  string `json:"content" validate:"required,min=10"`
	Category string `json:"category" validate:"required,oneof=press_release news report announcement story"`
	ImageURL string `json:"image_url" validate:"max=500"`
	Status   string `json:"status" validate:"omitempty,oneof=draft published archived"`
}

type ContactEntity struct {
	ID        uint64    `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Email     string    `db:"email" json:"email"`
	Phone     string    `db:"phone" json:"phone,omitempty"`
	Subject   string    `db:"subject" json:"subject"`
	Message   string    `db:"message" json:"message"`
	IP        string    `db:"ip_address" json:"-"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type ContactRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"omitempty,phone"`
	Subject string `json:"subject" validate:"required,min=3,max=200"`
	Message string `json:"message" validate:"required,min=10,max=5000"`
}

type FileUploadResponse struct {
	Filename     string `json:"filename"`
	OriginalName string `json:"original_name"`
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
	Size         int64  `json:"size"`
	Type         string `json:"type"`
}

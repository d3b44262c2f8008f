package model

import "github.com/muhammadheryan/bhrc-portal/constant"

// PaginationMeta describes the page returned by every list endpoint.
type PaginationMeta struct {
	CurrentPage int   `json:"current_page"`
	PerPage     int   `json:"per_page"`
	Total       int64 `json:"total"`
	TotalPages  int   `json:"total_pages"`
}

// ListResponse pairs a page of items with its pagination descriptor.
type ListResponse[T any] struct {
	Items      []T            `json:"items"`
	Pagination PaginationMeta `json:"pagination"`
}

// Principal is the authenticated caller attached to the request context.
type Principal struct {
	UserID uint64        `json:"user_id"`
	Email  string        `json:"email"`
	Role   constant.Role `json:"role"`
	// SessionID is the jti of the access token the request carried.
	SessionID string `json:"-"`
}

// ListQuery carries the generic list parameters shared by every resource.
type ListQuery struct {
	Page     int
	PerPage  int
	Search   string
	SortBy   string
	SortDir  string
	DateFrom string
	DateTo   string
}

// IDsRequest is the body of bulk endpoints.
type IDsRequest struct {
	IDs []uint64 `json:"ids" validate:"required,min=1,dive,gt=0"`
}

type BulkStatusRequest struct {
	IDs    []uint64 `json:"user_ids" validate:"required,min=1,dive,gt=0"`
	Status string   `json:"status" validate:"required,oneof=pending active inactive suspended"`
}

type BulkDeleteRequest struct {
	IDs []uint64 `json:"user_ids" validate:"required,min=1,dive,gt=0"`
}

type BulkResult struct {
	Affected int64 `json:"affected"`
}

type CountByKey struct {
	Key   string `db:"k" json:"key"`
	Count int64  `db:"c" json:"count"`
}

package model

import "time"

type ActivityEntity struct {
	ID          uint64    `db:"id" json:"id"`
	UserID      *uint64   `db:"user_id" json:"user_id,omitempty"`
	UserName    *string   `db:"user_name" json:"user_name,omitempty"`
	Action      string    `db:"action" json:"action"`
	Description string    `db:"description" json:"description"`
	Metadata    *string   `db:"metadata" json:"metadata,omitempty"`
	IPAddress   *string   `db:"ip_address" json:"ip_address,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

type ActivityFilter struct {
	ListQuery
	UserID uint64
	Action string
}

// ActivityEntry is handed to the activity logger; ActorID is nil for anonymous or system actions.
type ActivityEntry struct {
	ActorID     *uint64
	Action      string
	Description string
	Metadata    map[string]any
	IP          string
}

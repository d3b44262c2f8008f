package model

import (
	"time"

	"github.com/muhammadheryan/bhrc-portal/constant"
)

type SettingEntity struct {
	ID          uint64                   `db:"id" json:"id"`
	Key         string                   `db:"setting_key" json:"key"`
	Value       string                   `db:"setting_value" json:"value"`
	Type        constant.SettingType     `db:"setting_type" json:"type"`
	Category    constant.SettingCategory `db:"category" json:"category"`
	Description string                   `db:"description" json:"description,omitempty"`
	IsPublic    bool                     `db:"is_public" json:"is_public"`
	UpdatedBy   *uint64                  `db:"updated_by" json:"updated_by,omitempty"`
	UpdatedAt   *time.Time               `db:"updated_at" json:"updated_at,omitempty"`
}

type UpdateSettingRequest struct {
	Value string `json:"value" validate:"max=10000"`
}

type BulkSettingsRequest struct {
	Settings map[string]string `json:"settings" validate:"required,min=1"`
}

type RestoreSettingsRequest struct {
	Settings []SettingEntity `json:"settings" validate:"required,min=1,dive"`
}

// TypedSetting is a setting with its value coerced according to its type.
type TypedSetting struct {
	Key      string                   `json:"key"`
	Value    any                      `json:"value"`
	Category constant.SettingCategory `json:"category"`
	IsPublic bool                     `json:"-"`
}

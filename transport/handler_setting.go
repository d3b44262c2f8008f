package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/bhrc-portal/model"
	"github.com/muhammadheryan/bhrc-portal/utils/response"
)

// PublicSettings handler
// @Summary Public site settings
// @Tags Settings
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /api/public/settings [get]
func (s *RestHandler) PublicSettings(w http.ResponseWriter, r *http.Request) {
	res, err := s.SettingApp.Public(r.Context())
	ok(w, res, err)
}

// ListSettings handler
// @Summary All settings grouped by category
// @Tags Settings
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /api/admin/settings [get]
func (s *RestHandler) ListSettings(w http.ResponseWriter, r *http.Request) {
	res, err := s.SettingApp.List(r.Context())
	ok(w, res, err)
}

// GetSetting handler
// @Summary Get one setting
// @Tags Settings
// @Security BearerAuth
// @Produce json
// @Param key path string true "Key"
// @Success 200 {object} response.Envelope{data=model.SettingEntity}
// @Router /api/admin/settings/{key} [get]
func (s *RestHandler) GetSetting(w http.ResponseWriter, r *http.Request) {
	res, err := s.SettingApp.Get(r.Context(), mux.Vars(r)["key"])
	ok(w, res, err)
}

// UpdateSetting handler
// @Summary Update one setting
// @Tags Settings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param key path string true "Key"
// @Param request body model.UpdateSettingRequest true "Value"
// @Success 200 {object} response.Envelope{data=model.SettingEntity}
// @Router /api/admin/settings/{key} [put]
func (s *RestHandler) UpdateSetting(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateSettingRequest
	if !bind(w, r, &req) {
		return
	}
	res, err := s.SettingApp.Update(r.Context(), principal(r), mux.Vars(r)["key"], &req)
	ok(w, res, err)
}

// BulkUpdateSettings handler
// @Summary Update many settings at once
// @Tags Settings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body model.BulkSettingsRequest true "Values"
// @Success 200 {object} response.Envelope
// @Router /api/admin/settings [put]
func (s *RestHandler) BulkUpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req model.BulkSettingsRequest
	if !bind(w, r, &req) {
		return
	}
	if err := s.SettingApp.BulkUpdate(r.Context(), principal(r), &req); err != nil {
		response.Error(w, err)
		return
	}
	response.Success(w, nil, "settings updated")
}

// BackupSettings handler
// @Summary Download every setting
// @Tags Settings
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Envelope{data=[]model.SettingEntity}
// @Router /api/admin/settings/backup [get]
func (s *RestHandler) BackupSettings(w http.ResponseWriter, r *http.Request) {
	res, err := s.SettingApp.Backup(r.Context())
	ok(w, res, err)
}

// RestoreSettings handler
// @Summary Restore settings from a backup
// @Tags Settings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body model.RestoreSettingsRequest true "Backup"
// @Success 200 {object} response.Envelope
// @Router /api/admin/settings/restore [post]
func (s *RestHandler) RestoreSettings(w http.ResponseWriter, r *http.Request) {
	var req model.RestoreSettingsRequest
	if !bind(w, r, &req) {
		return
	}
	if err := s.SettingApp.Restore(r.Context(), principal(r), &req); err != nil {
		response.Error(w, err)
		return
	}
	response.Success(w, nil, "settings restored")
}

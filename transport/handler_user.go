package transport

import (
	"net/http"
	"time"

	"github.com/muhammadheryan/bhrc-portal/application/user"
	"github.com/muhammadheryan/bhrc-portal/model"
	"github.com/muhammadheryan/bhrc-portal/utils/response"
)

func userFilter(r *http.Request) *model.UserListFilter {
	return &model.UserListFilter{
		ListQuery: listQuery(r),
		Role:      r.URL.Query().Get("role"),
		Status:    r.URL.Query().Get("status"),
	}
}

func exportName(prefix string) string {
	return prefix + "_" + time.Now().Format("20060102_150405") + ".csv"
}

// ListUsers handler
// @Summary List users
// @Tags Users
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page"
// @Param per_page query int false "Per page"
// @Param search query string false "Name, email or phone"
// @Param role query string false "Role"
// @Param status query string false "Status"
// @Success 200 {object} response.Envelope{data=[]model.UserEntity}
// @Router /api/admin/users [get]
func (s *RestHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	res, err := s.UserApp.List(r.Context(), userFilter(r))
	list(w, res, err)
}

// GetUser handler
// @Summary Get a user (self or staff)
// @Tags Users
// @Security BearerAuth
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} response.Envelope{data=model.UserEntity}
// @Router /api/users/{id} [get]
func (s *RestHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, valid := pathID(w, r, "id")
	if !valid {
		return
	}
	res, err := s.UserApp.Get(r.Context(), principal(r), id)
	ok(w, res, err)
}

// CreateUser handler
// @Summary Create a user
// @Tags Users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body model.CreateUserRequest true "User"
// @Success 201 {object} response.Envelope{data=model.UserEntity}
// @Router /api/admin/users [post]
func (s *RestHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req model.CreateUserRequest
	if !bind(w, r, &req) {
		return
	}
	res, err := s.UserApp.Create(r.Context(), principal(r), &req)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.Created(w, res, "user created")
}

// UpdateProfile handler
// @Summary Update own profile
// @Tags Member
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body model.UpdateProfileRequest true "Profile"
// @Success 200 {object} response.Envelope{data=model.UserEntity}
// @Router /api/member/profile [put]
func (s *RestHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateProfileRequest
	if !bind(w, r, &req) {
		return
	}
	res, err := s.UserApp.UpdateProfile(r.Context(), principal(r), &req)
	ok(w, res, err)
}

// AdminUpdateUser handler
// @Summary Update a user's profile
// @Tags Users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body model.UpdateProfileRequest true "Profile"
// @Success 200 {object} response.Envelope{data=model.UserEntity}
// @Router /api/admin/users/{id} [put]
func (s *RestHandler) AdminUpdateUser(w http.ResponseWriter, r *http.Request) {
	id, valid := pathID(w, r, "id")
	if !valid {
		return
	}
	var req model.UpdateProfileRequest
	if !bind(w, r, &req) {
		return
	}
	res, err := s.UserApp.AdminUpdate(r.Context(), principal(r), id, &req)
	ok(w, res, err)
}

// UpdateUserStatus handler
// @Summary Change a user's status
// @Tags Users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body model.UpdateUserStatusRequest true "Status"
// @Success 200 {object} response.Envelope
// @Router /api/admin/users/{id}/status [patch]
func (s *RestHandler) UpdateUserStatus(w http.ResponseWriter, r *http.Request) {
	id, valid := pathID(w, r, "id")
	if !valid {
		return
	}
	var req model.UpdateUserStatusRequest
	if !bind(w, r, &req) {
		return
	}
	if err := s.UserApp.UpdateStatus(r.Context(), principal(r), id, &req); err != nil {
		response.Error(w, err)
		return
	}
	response.Success(w, nil, "status updated")
}

// UpdateUserRole handler
// @Summary Change a user's role
// @Tags Users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body model.UpdateUserRoleRequest true "Role"
// @Success 200 {object} response.Envelope
// @Router /api/admin/users/{id}/role [patch]
func (s *RestHandler) UpdateUserRole(w http.ResponseWriter, r *http.Request) {
	id, valid := pathID(w, r, "id")
	if !valid {
		return
	}
	var req model.UpdateUserRoleRequest
	if !bind(w, r, &req) {
		return
	}
	if err := s.UserApp.UpdateRole(r.Context(), principal(r), id, &req); err != nil {
		response.Error(w, err)
		return
	}
	response.Success(w, nil, "role updated")
}

// BulkUserStatus handler
// @Summary Change the status of many users
// @Tags Users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body model.BulkStatusRequest true "Users and status"
// @Success 200 {object} response.Envelope{data=model.BulkResult}
// @Router /api/admin/users/bulk-status [post]
func (s *RestHandler) BulkUserStatus(w http.ResponseWriter, r *http.Request) {
	var req model.BulkStatusRequest
	if !bind(w, r, &req) {
		return
	}
	res, err := s.UserApp.BulkUpdateStatus(r.Context(), principal(r), &req)
	ok(w, res, err)
}

// BulkDeleteUsers handler
// @Summary Delete many users
// @Tags Users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body model.BulkDeleteRequest true "Users"
// @Success 200 {object} response.Envelope{data=model.BulkResult}
// @Failure 400 {object} response.Envelope
// @Router /api/admin/users/bulk-delete [post]
func (s *RestHandler) BulkDeleteUsers(w http.ResponseWriter, r *http.Request) {
	var req model.BulkDeleteRequest
	if !bind(w, r, &req) {
		return
	}
	res, err := s.UserApp.BulkDelete(r.Context(), principal(r), &req)
	ok(w, res, err)
}

// DeleteUser handler
// @Summary Delete a user
// @Tags Users
// @Security BearerAuth
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} response.Envelope
// @Router /api/admin/users/{id} [delete]
func (s *RestHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, valid := pathID(w, r, "id")
	if !valid {
		return
	}
	if err := s.UserApp.Delete(r.Context(), principal(r), id); err != nil {
		response.Error(w, err)
		return
	}
	response.Success(w, nil, "user deleted")
}

// ExportUsers handler
// @Summary Export users as CSV
// @Tags Users
// @Security BearerAuth
// @Produce text/csv
// @Router /api/admin/users/export [get]
func (s *RestHandler) ExportUsers(w http.ResponseWriter, r *http.Request) {
	rows, err := s.UserApp.Export(r.Context(), userFilter(r))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.CSV(w, exportName("users"), user.ExportHeader, rows)
}

// UserStats handler
// @Summary User counts by status and role
// @Tags Users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Envelope{data=model.UserStats}
// @Router /api/admin/users/stats [get]
func (s *RestHandler) UserStats(w http.ResponseWriter, r *http.Request) {
	res, err := s.UserApp.Stats(r.Context())
	ok(w, res, err)
}

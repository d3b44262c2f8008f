package transport

import (
	"net/http"

	"github.com/muhammadheryan/bhrc-portal/model"
	"github.com/muhammadheryan/bhrc-portal/utils/response"
)

// ListEvents handler
// @Summary List events
// @Description Anonymous visitors and members only see public events
// @Tags Events
// @Produce json
// @Param status query string false "Status"
// @Param event_type query string false "Type"
// @Param upcoming query bool false "Only future events"
// @Success 200 {object} response.Envelope{data=[]model.EventEntity}
// @Router /api/events [get]
func (s *RestHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := &model.EventFilter{
		ListQuery: listQuery(r),
		Status:    q.Get("status"),
		EventType: q.Get("event_type"),
		Upcoming:  q.Get("upcoming") == "true",
	}
	res, err := s.EventApp.List(r.Context(), principal(r), f)
	list(w, res, err)
}

// GetEvent handler
// @Summary Get an event
// @Tags Events
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} response.Envelope{data=model.EventEntity}
// @Failure 404 {object} response.Envelope
// @Router /api/events/{id} [get]
func (s *RestHandler) GetEvent(w http.ResponseWriter, r *http.Request) {
	id, valid := pathID(w, r, "id")
	if !valid {
		return
	}
	res, err := s.EventApp.Get(r.Context(), principal(r), id)
	ok(w, res, err)
}

// RegisterEvent handler
// @Summary Register for an event
// @Tags Events
// @Accept json
// @Produce json
// @Param id path int true "Event ID"
// @Param request body model.EventRegistrationRequest true "Participant"
// @Success 201 {object} response.Envelope{data=model.EventRegistrationEntity}
// @Failure 409 {object} response.Envelope
// @Router /api/events/{id}/register [post]
func (s *RestHandler) RegisterEvent(w http.ResponseWriter, r *http.Request) {
	id, valid := pathID(w, r, "id")
	if !valid {
		return
	}
	var req model.EventRegistrationRequest
	if !bind(w, r, &req) {
		return
	}
	res, err := s.EventApp.Register(r.Context(), principal(r), id, &req)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.Created(w, res, "registration confirmed")
}

// CancelRegistration handler
// @Summary Cancel an event registration
// @Tags Events
// @Security BearerAuth
// @Produce json
// @Param id path int true "Registration ID"
// @Success 200 {object} response.Envelope
// @Router /api/events/registrations/{id}/cancel [post]
func (s *RestHandler) CancelRegistration(w http.ResponseWriter, r *http.Request) {
	id, valid := pathID(w, r, "id")
	if !valid {
		return
	}
	if err := s.EventApp.CancelRegistration(r.Context(), principal(r), id); err != nil {
		response.Error(w, err)
		return
	}
	response.Success(w, nil, "registration cancelled")
}

// MyRegistrations handler
// @Summary Event registrations of the current member
// @Tags Member
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Envelope{data=[]model.EventRegistrationEntity}
// @Router /api/member/registrations [get]
func (s *RestHandler) MyRegistrations(w http.ResponseWriter, r *http.Request) {
	f := &model.RegistrationFilter{ListQuery: listQuery(r)}
	res, err := s.EventApp.MyRegistrations(r.Context(), principal(r), f)
	list(w, res, err)
}

// CreateEvent handler
// @Summary Create an event
// @Tags Events
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body model.EventRequest true "Event"
// @Success 201 {object} response.Envelope{data=model.EventEntity}
// @Router /api/admin/events [post]
func (s *RestHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req model.EventRequest
	if !bind(w, r, &req) {
		return
	}
	res, err := s.EventApp.Create(r.Context(), principal(r), &req)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.Created(w, res, "event created")
}

// UpdateEvent handler
// @Summary Update an event
// @Tags Events
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Event ID"
// @Param request body model.EventRequest true "Event"
// @Success 200 {object} response.Envelope{data=model.EventEntity}
// @Router /api/admin/events/{id} [put]
func (s *RestHandler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	id, valid := pathID(w, r, "id")
	if !valid {
		return
	}
	var req model.EventRequest
	if !bind(w, r, &req) {
		return
	}
	res, err := s.EventApp.Update(r.Context(), principal(r), id, &req)
	ok(w, res, err)
}

// DeleteEvent handler
// @Summary Delete an event
// @Tags Events
// @Security BearerAuth
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} response.Envelope
// @Router /api/admin/events/{id} [delete]
func (s *RestHandler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	id, valid := pathID(w, r, "id")
	if !valid {
		return
	}
	if err := s.EventApp.Delete(r.Context(), principal(r), id); err != nil {
		response.Error(w, err)
		return
	}
	response.Success(w, nil, "event deleted")
}

// ListRegistrations handler
// @Summary Registrations for an event
// @Tags Events
// @Security BearerAuth
// @Produce json
// @Param id path int true "Event ID"
// @Param attendance_status query string false "Attendance"
// @Success 200 {object} response.Envelope{data=[]model.EventRegistrationEntity}
// @Router /api/admin/events/{id}/registrations [get]
func (s *RestHandler) ListRegistrations(w http.ResponseWriter, r *http.Request) {
	id, valid := pathID(w, r, "id")
	if !valid {
		return
	}
	f := &model.RegistrationFilter{
		ListQuery:        listQuery(r),
		EventID:          id,
		AttendanceStatus: r.URL.Query().Get("attendance_status"),
	}
	res, err := s.EventApp.ListRegistrations(r.Context(), f)
	list(w, res, err)
}

// UpdateAttendance handler
// @Summary Mark attendance
// @Tags Events
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Registration ID"
// @Param request body model.UpdateAttendanceRequest true "Attendance"
// @Success 200 {object} response.Envelope
// @Failure 422 {object} response.Envelope
// @Router /api/admin/registrations/{id}/attendance [patch]
func (s *RestHandler) UpdateAttendance(w http.ResponseWriter, r *http.Request) {
	id, valid := pathID(w, r, "id")
	if !valid {
		return
	}
	var req model.UpdateAttendanceRequest
	if !bind(w, r, &req) {
		return
	}
	if err := s.EventApp.UpdateAttendance(r.Context(), principal(r), id, &req); err != nil {
		response.Error(w, err)
		return
	}
	response.Success(w, nil, "attendance updated")
}

package transport

import (
	"net/http"

	"github.com/muhammadheryan/bhrc-portal/application/complaint"
	"github.com/muhammadheryan/bhrc-portal/model"
	"github.com/muhammadheryan/bhrc-portal/utils/response"
)

func complaintFilter(r *http.Request) *model.ComplaintFilter {
	q := r.URL.Query()
	return &model.ComplaintFilter{
		ListQuery:  listQuery(r),
		Status:     q.Get("status"),
		Type:       q.Get("complaint_type"),
		Priority:   q.Get("priority"),
		AssignedTo: queryUint(r, "assigned_to"),
	}
}

// FileComplaint handler
// @Summary File a complaint
// @Description Anyone may file; a signed-in member is linked as the owner
// @Tags Complaints
// @Accept json
// @Produce json
// @Param request body model.FileComplaintRequest true "Complaint"
// @Success 201 {object} response.Envelope{data=model.FileComplaintResponse}
// @Failure 400 {object} response.Envelope
// @Router /api/complaints/file [post]
func (s *RestHandler) FileComplaint(w http.ResponseWriter, r *http.Request) {
	var req model.FileComplaintRequest
	if !bind(w, r, &req) {
		return
	}
	res, err := s.ComplaintApp.File(r.Context(), principal(r), &req, clientIP(r))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.Created(w, res, "complaint filed")
}

// TrackComplaint handler
// @Summary Track a complaint by number and email
// @Tags Complaints
// @Accept json
// @Produce json
// @Param request body model.TrackComplaintRequest true "Tracking"
// @Success 200 {object} response.Envelope{data=model.ComplaintEntity}
// @Failure 404 {object} response.Envelope
// @Router /api/complaints/track [post]
func (s *RestHandler) TrackComplaint(w http.ResponseWriter, r *http.Request) {
	var req model.TrackComplaintRequest
	if !bind(w, r, &req) {
		return
	}
	res, err := s.ComplaintApp.Track(r.Context(), &req)
	ok(w, res, err)
}

// GetComplaint handler
// @Summary Get a complaint (owner or staff)
// @Tags Complaints
// @Security BearerAuth
// @Produce json
// @Param id path int true "Complaint ID"
// @Success 200 {object} response.Envelope{data=model.ComplaintEntity}
// @Router /api/complaints/{id} [get]
func (s *RestHandler) GetComplaint(w http.ResponseWriter, r *http.Request) {
	id, valid := pathID(w, r, "id")
	if !valid {
		return
	}
	res, err := s.ComplaintApp.Get(r.Context(), principal(r), id)
	ok(w, res, err)
}

// MyComplaints handler
// @Summary Complaints filed by the current member
// @Tags Member
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Envelope{data=[]model.ComplaintEntity}
// @Router /api/member/complaints [get]
func (s *RestHandler) MyComplaints(w http.ResponseWriter, r *http.Request) {
	res, err := s.ComplaintApp.Mine(r.Context(), principal(r), complaintFilter(r))
	list(w, res, err)
}

// ListComplaints handler
// @Summary List complaints
// @Tags Complaints
// @Security BearerAuth
// @Produce json
// @Param status query string false "Status"
// @Param complaint_type query string false "Type"
// @Param priority query string false "Priority"
// @Param assigned_to query int false "Assignee"
// @Success 200 {object} response.Envelope{data=[]model.ComplaintEntity}
// @Router /api/admin/complaints [get]
func (s *RestHandler) ListComplaints(w http.ResponseWriter, r *http.Request) {
	res, err := s.ComplaintApp.List(r.Context(), complaintFilter(r))
	list(w, res, err)
}

// UpdateComplaintStatus handler
// @Summary Move a complaint through its workflow
// @Tags Complaints
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Complaint ID"
// @Param request body model.UpdateComplaintStatusRequest true "Status"
// @Success 200 {object} response.Envelope{data=model.ComplaintEntity}
// @Failure 422 {object} response.Envelope
// @Router /api/admin/complaints/{id}/status [patch]
func (s *RestHandler) UpdateComplaintStatus(w http.ResponseWriter, r *http.Request) {
	id, valid := pathID(w, r, "id")
	if !valid {
		return
	}
	var req model.UpdateComplaintStatusRequest
	if !bind(w, r, &req) {
		return
	}
	res, err := s.ComplaintApp.UpdateStatus(r.Context(), principal(r), id, &req)
	ok(w, res, err)
}

// AssignComplaint handler
// @Summary Assign a complaint to a staff member
// @Tags Complaints
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Complaint ID"
// @Param request body model.AssignComplaintRequest true "Assignee"
// @Success 200 {object} response.Envelope
// @Router /api/admin/complaints/{id}/assign [patch]
func (s *RestHandler) AssignComplaint(w http.ResponseWriter, r *http.Request) {
	id, valid := pathID(w, r, "id")
	if !valid {
		return
	}
	var req model.AssignComplaintRequest
	if !bind(w, r, &req) {
		return
	}
	if err := s.ComplaintApp.Assign(r.Context(), principal(r), id, &req); err != nil {
		response.Error(w, err)
		return
	}
	response.Success(w, nil, "complaint assigned")
}

// UpdateComplaintPriority handler
// @Summary Change complaint priority
// @Tags Complaints
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Complaint ID"
// @Param request body model.UpdateComplaintPriorityRequest true "Priority"
// @Success 200 {object} response.Envelope
// @Router /api/admin/complaints/{id}/priority [patch]
func (s *RestHandler) UpdateComplaintPriority(w http.ResponseWriter, r *http.Request) {
	id, valid := pathID(w, r, "id")
	if !valid {
		return
	}
	var req model.UpdateComplaintPriorityRequest
	if !bind(w, r, &req) {
		return
	}
	if err := s.ComplaintApp.UpdatePriority(r.Context(), principal(r), id, &req); err != nil {
		response.Error(w, err)
		return
	}
	response.Success(w, nil, "priority updated")
}

// DeleteComplaint handler
// @Summary Delete a complaint
// @Tags Complaints
// @Security BearerAuth
// @Produce json
// @Param id path int true "Complaint ID"
// @Success 200 {object} response.Envelope
// @Router /api/admin/complaints/{id} [delete]
func (s *RestHandler) DeleteComplaint(w http.ResponseWriter, r *http.Request) {
	id, valid := pathID(w, r, "id")
	if !valid {
		return
	}
	if err := s.ComplaintApp.Delete(r.Context(), principal(r), id); err != nil {
		response.Error(w, err)
		return
	}
	response.Success(w, nil, "complaint deleted")
}

// ExportComplaints handler
// @Summary Export complaints as CSV
// @Tags Complaints
// @Security BearerAuth
// @Produce text/csv
// @Router /api/admin/complaints/export [get]
func (s *RestHandler) ExportComplaints(w http.ResponseWriter, r *http.Request) {
	rows, err := s.ComplaintApp.Export(r.Context(), complaintFilter(r))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.CSV(w, exportName("complaints"), complaint.ExportHeader, rows)
}

// ComplaintStats handler
// @Summary Complaint counts
// @Tags Complaints
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Envelope{data=model.ComplaintStats}
// @Router /api/admin/complaints/stats [get]
func (s *RestHandler) ComplaintStats(w http.ResponseWriter, r *http.Request) {
	res, err := s.ComplaintApp.Stats(r.Context())
	ok(w, res, err)
}

package transport

import (
	"net/http"

	"github.com/muhammadheryan/bhrc-portal/application/donation"
	"github.com/muhammadheryan/bhrc-portal/model"
	"github.com/muhammadheryan/bhrc-portal/utils/response"
)

func donationFilter(r *http.Request) *model.DonationFilter {
	q := r.URL.Query()
	return &model.DonationFilter{
		ListQuery: listQuery(r),
		Status:    q.Get("status"),
		Category:  q.Get("category"),
		Type:      q.Get("donation_type"),
		MinAmount: queryFloat(r, "min_amount"),
		MaxAmount: queryFloat(r, "max_amount"),
	}
}

// CreateDonation handler
// @Summary Pledge a donation
// @Tags Donations
// @Accept json
// @Produce json
// @Param request body model.CreateDonationRequest true "Donation"
// @Success 201 {object} response.Envelope{data=model.DonationEntity}
// @Failure 400 {object} response.Envelope
// @Router /api/donations [post]
func (s *RestHandler) CreateDonation(w http.ResponseWriter, r *http.Request) {
	var req model.CreateDonationRequest
	if !bind(w, r, &req) {
		return
	}
	res, err := s.DonationApp.Create(r.Context(), principal(r), &req, clientIP(r))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.Created(w, res, "donation recorded")
}

// GetDonation handler
// @Summary Get a donation (donor or staff)
// @Tags Donations
// @Security BearerAuth
// @Produce json
// @Param id path int true "Donation ID"
// @Success 200 {object} response.Envelope{data=model.DonationEntity}
// @Router /api/donations/{id} [get]
func (s *RestHandler) GetDonation(w http.ResponseWriter, r *http.Request) {
	id, valid := pathID(w, r, "id")
	if !valid {
		return
	}
	res, err := s.DonationApp.Get(r.Context(), principal(r), id)
	ok(w, res, err)
}

// DonationReceipt handler
// @Summary Receipt for a completed donation
// @Tags Donations
// @Security BearerAuth
// @Produce json
// @Param id path int true "Donation ID"
// @Success 200 {object} response.Envelope{data=model.DonationReceipt}
// @Failure 422 {object} response.Envelope
// @Router /api/donations/{id}/receipt [get]
func (s *RestHandler) DonationReceipt(w http.ResponseWriter, r *http.Request) {
	id, valid := pathID(w, r, "id")
	if !valid {
		return
	}
	res, err := s.DonationApp.Receipt(r.Context(), principal(r), id)
	ok(w, res, err)
}

// MyDonations handler
// @Summary Donations made by the current member
// @Tags Member
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Envelope{data=[]model.DonationEntity}
// @Router /api/member/donations [get]
func (s *RestHandler) MyDonations(w http.ResponseWriter, r *http.Request) {
	res, err := s.DonationApp.Mine(r.Context(), principal(r), donationFilter(r))
	list(w, res, err)
}

// ListDonations handler
// @Summary List donations
// @Tags Donations
// @Security BearerAuth
// @Produce json
// @Param status query string false "Status"
// @Param category query string false "Category"
// @Param donation_type query string false "Type"
// @Param min_amount query number false "Minimum amount"
// @Param max_amount query number false "Maximum amount"
// @Success 200 {object} response.Envelope{data=[]model.DonationEntity}
// @Router /api/admin/donations [get]
func (s *RestHandler) ListDonations(w http.ResponseWriter, r *http.Request) {
	f := donationFilter(r)
	f.UserID = queryUint(r, "user_id")
	res, err := s.DonationApp.List(r.Context(), f)
	list(w, res, err)
}

// UpdateDonationStatus handler
// @Summary Change donation status
// @Tags Donations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Donation ID"
// @Param request body model.UpdateDonationStatusRequest true "Status"
// @Success 200 {object} response.Envelope{data=model.DonationEntity}
// @Failure 422 {object} response.Envelope
// @Router /api/admin/donations/{id}/status [patch]
func (s *RestHandler) UpdateDonationStatus(w http.ResponseWriter, r *http.Request) {
	id, valid := pathID(w, r, "id")
	if !valid {
		return
	}
	var req model.UpdateDonationStatusRequest
	if !bind(w, r, &req) {
		return
	}
	res, err := s.DonationApp.UpdateStatus(r.Context(), principal(r), id, &req)
	ok(w, res, err)
}

// DeleteDonation handler
// @Summary Delete a donation that is not completed
// @Tags Donations
// @Security BearerAuth
// @Produce json
// @Param id path int true "Donation ID"
// @Success 200 {object} response.Envelope
// @Router /api/admin/donations/{id} [delete]
func (s *RestHandler) DeleteDonation(w http.ResponseWriter, r *http.Request) {
	id, valid := pathID(w, r, "id")
	if !valid {
		return
	}
	if err := s.DonationApp.Delete(r.Context(), principal(r), id); err != nil {
		response.Error(w, err)
		return
	}
	response.Success(w, nil, "donation deleted")
}

// ExportDonations handler
// @Summary Export donations as CSV
// @Tags Donations
// @Security BearerAuth
// @Produce text/csv
// @Router /api/admin/donations/export [get]
func (s *RestHandler) ExportDonations(w http.ResponseWriter, r *http.Request) {
	rows, err := s.DonationApp.Export(r.Context(), donationFilter(r))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.CSV(w, exportName("donations"), donation.ExportHeader, rows)
}

// DonationStats handler
// @Summary Donation totals
// @Tags Donations
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Envelope{data=model.DonationStats}
// @Router /api/admin/donations/stats [get]
func (s *RestHandler) DonationStats(w http.ResponseWriter, r *http.Request) {
	res, err := s.DonationApp.Stats(r.Context())
	ok(w, res, err)
}

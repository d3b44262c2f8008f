package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/bhrc-portal/model"
	"github.com/muhammadheryan/bhrc-portal/utils/response"
)

// VerifyCertificate handler
// @Summary Verify a certificate number
// @Tags Certificates
// @Produce json
// @Param number path string true "Certificate number"
// @Success 200 {object} response.Envelope{data=model.CertificateVerification}
// @Router /api/certificates/verify/{number} [get]
func (s *RestHandler) VerifyCertificate(w http.ResponseWriter, r *http.Request) {
	res, err := s.CertificateApp.Verify(r.Context(), mux.Vars(r)["number"])
	ok(w, res, err)
}

// GetCertificate handler
// @Summary Get a certificate (holder or staff)
// @Tags Certificates
// @Security BearerAuth
// @Produce json
// @Param id path int true "Certificate ID"
// @Success 200 {object} response.Envelope{data=model.CertificateEntity}
// @Router /api/certificates/{id} [get]
func (s *RestHandler) GetCertificate(w http.ResponseWriter, r *http.Request) {
	id, valid := pathID(w, r, "id")
	if !valid {
		return
	}
	res, err := s.CertificateApp.Get(r.Context(), principal(r), id)
	ok(w, res, err)
}

// MyCertificates handler
// @Summary Certificates held by the current member
// @Tags Member
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Envelope{data=[]model.CertificateEntity}
// @Router /api/member/certificates [get]
func (s *RestHandler) MyCertificates(w http.ResponseWriter, r *http.Request) {
	f := &model.CertificateFilter{ListQuery: listQuery(r), Type: r.URL.Query().Get("certificate_type")}
	res, err := s.CertificateApp.Mine(r.Context(), principal(r), f)
	list(w, res, err)
}

// ListCertificates handler
// @Summary List certificates
// @Tags Certificates
// @Security BearerAuth
// @Produce json
// @Param user_id query int false "Holder"
// @Param certificate_type query string false "Type"
// @Success 200 {object} response.Envelope{data=[]model.CertificateEntity}
// @Router /api/admin/certificates [get]
func (s *RestHandler) ListCertificates(w http.ResponseWriter, r *http.Request) {
	f := &model.CertificateFilter{
		ListQuery: listQuery(r),
		UserID:    queryUint(r, "user_id"),
		Type:      r.URL.Query().Get("certificate_type"),
	}
	res, err := s.CertificateApp.List(r.Context(), f)
	list(w, res, err)
}

// IssueCertificate handler
// @Summary Issue a certificate
// @Tags Certificates
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body model.IssueCertificateRequest true "Certificate"
// @Success 201 {object} response.Envelope{data=model.CertificateEntity}
// @Router /api/admin/certificates [post]
func (s *RestHandler) IssueCertificate(w http.ResponseWriter, r *http.Request) {
	var req model.IssueCertificateRequest
	if !bind(w, r, &req) {
		return
	}
	res, err := s.CertificateApp.Issue(r.Context(), principal(r), &req)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.Created(w, res, "certificate issued")
}

// RevokeCertificate handler
// @Summary Revoke a certificate
// @Tags Certificates
// @Security BearerAuth
// @Produce json
// @Param id path int true "Certificate ID"
// @Success 200 {object} response.Envelope
// @Router /api/admin/certificates/{id} [delete]
func (s *RestHandler) RevokeCertificate(w http.ResponseWriter, r *http.Request) {
	id, valid := pathID(w, r, "id")
	if !valid {
		return
	}
	if err := s.CertificateApp.Revoke(r.Context(), principal(r), id); err != nil {
		response.Error(w, err)
		return
	}
	response.Success(w, nil, "certificate revoked")
}

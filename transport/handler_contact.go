package transport

import (
	"net/http"

	"github.com/muhammadheryan/bhrc-portal/model"
	"github.com/muhammadheryan/bhrc-portal/utils/response"
)

// SubmitContact handler
// @Summary Send a message to the office
// @Tags Contact
// @Accept json
// @Produce json
// @Param request body model.ContactRequest true "Message"
// @Success 201 {object} response.Envelope
// @Failure 429 {object} response.Envelope
// @Router /api/contact [post]
func (s *RestHandler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var req model.ContactRequest
	if !bind(w, r, &req) {
		return
	}
	if _, err := s.ContactApp.Submit(r.Context(), &req, clientIP(r)); err != nil {
		response.Error(w, err)
		return
	}
	response.Created(w, nil, "thank you, your message has been received")
}

// ListContacts handler
// @Summary List contact messages
// @Tags Contact
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Envelope{data=[]model.ContactEntity}
// @Router /api/admin/contact-messages [get]
func (s *RestHandler) ListContacts(w http.ResponseWriter, r *http.Request) {
	res, err := s.ContactApp.List(r.Context(), listQuery(r))
	list(w, res, err)
}

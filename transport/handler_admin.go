package transport

import (
	"net/http"
	"strconv"

	"github.com/muhammadheryan/bhrc-portal/model"
)

// AdminDashboard handler
// @Summary Organisation-wide counters and recent activity
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Envelope{data=model.AdminDashboard}
// @Router /api/admin/dashboard [get]
func (s *RestHandler) AdminDashboard(w http.ResponseWriter, r *http.Request) {
	res, err := s.DashboardApp.Admin(r.Context())
	ok(w, res, err)
}

// MemberDashboard handler
// @Summary Counters for the current member
// @Tags Member
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Envelope{data=model.MemberDashboard}
// @Router /api/member/dashboard [get]
func (s *RestHandler) MemberDashboard(w http.ResponseWriter, r *http.Request) {
	res, err := s.DashboardApp.Member(r.Context(), principal(r))
	ok(w, res, err)
}

// AnalyticsOverview handler
// @Summary Period totals compared with the previous period
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param period query string false "7d, 30d, 90d or 1y"
// @Success 200 {object} response.Envelope{data=model.AnalyticsOverview}
// @Router /api/admin/analytics/overview [get]
func (s *RestHandler) AnalyticsOverview(w http.ResponseWriter, r *http.Request) {
	res, err := s.AnalyticsApp.Overview(r.Context(), r.URL.Query().Get("period"))
	ok(w, res, err)
}

// AnalyticsTrends handler
// @Summary Monthly series
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param months query int false "Number of months"
// @Success 200 {object} response.Envelope{data=model.AnalyticsTrends}
// @Router /api/admin/analytics/trends [get]
func (s *RestHandler) AnalyticsTrends(w http.ResponseWriter, r *http.Request) {
	months, _ := strconv.Atoi(r.URL.Query().Get("months"))
	res, err := s.AnalyticsApp.Trends(r.Context(), months)
	ok(w, res, err)
}

// ListActivity handler
// @Summary Audit trail
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param user_id query int false "Actor"
// @Param action query string false "Action"
// @Success 200 {object} response.Envelope{data=[]model.ActivityEntity}
// @Router /api/admin/activity [get]
func (s *RestHandler) ListActivity(w http.ResponseWriter, r *http.Request) {
	f := &model.ActivityFilter{
		ListQuery: listQuery(r),
		UserID:    queryUint(r, "user_id"),
		Action:    r.URL.Query().Get("action"),
	}
	res, err := s.ActivityApp.List(r.Context(), f)
	list(w, res, err)
}

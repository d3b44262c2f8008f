package transport

import (
	"net"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/bhrc-portal/application/activity"
	"github.com/muhammadheryan/bhrc-portal/application/analytics"
	"github.com/muhammadheryan/bhrc-portal/application/auth"
	"github.com/muhammadheryan/bhrc-portal/application/certificate"
	"github.com/muhammadheryan/bhrc-portal/application/complaint"
	"github.com/muhammadheryan/bhrc-portal/application/contact"
	"github.com/muhammadheryan/bhrc-portal/application/content"
	"github.com/muhammadheryan/bhrc-portal/application/dashboard"
	"github.com/muhammadheryan/bhrc-portal/application/donation"
	"github.com/muhammadheryan/bhrc-portal/application/event"
	"github.com/muhammadheryan/bhrc-portal/application/file"
	"github.com/muhammadheryan/bhrc-portal/application/setting"
	"github.com/muhammadheryan/bhrc-portal/application/user"
	"github.com/muhammadheryan/bhrc-portal/constant"
	"github.com/muhammadheryan/bhrc-portal/utils/response"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	AuthApp        auth.AuthApp
	UserApp        user.UserApp
	ComplaintApp   complaint.ComplaintApp
	DonationApp    donation.DonationApp
	EventApp       event.EventApp
	CertificateApp certificate.CertificateApp
	ContentApp     content.ContentApp
	SettingApp     setting.SettingApp
	AnalyticsApp   analytics.AnalyticsApp
	DashboardApp   dashboard.DashboardApp
	ActivityApp    activity.ActivityApp
	FileApp        file.FileApp
	ContactApp     contact.ContactApp
}

type Options struct {
	// UploadDir is served read-only under UploadURL when both are set.
	UploadDir string
	UploadURL string
	// MetricsKey protects /metrics when non-empty.
	MetricsKey string
	// TrustedProxies may set X-Forwarded-For; other peers are taken at face value.
	TrustedProxies []*net.IPNet
	Registry       *prometheus.Registry
}

type route struct {
	method  string
	path    string
	need    constant.Capability
	handler http.HandlerFunc
}

func (s *RestHandler) routes() []route {
	pub, authn := constant.CapPublic, constant.CapAuthenticated
	return []route{
		// auth
		{http.MethodPost, "/auth/register", pub, s.Register},
		{http.MethodPost, "/auth/verify-email", pub, s.VerifyEmail},
		{http.MethodPost, "/auth/resend-otp", pub, s.ResendOTP},
		{http.MethodPost, "/auth/login", pub, s.Login},
		{http.MethodPost, "/auth/login/verify", pub, s.VerifyLogin},
		{http.MethodPost, "/auth/refresh", pub, s.Refresh},
		{http.MethodPost, "/auth/forgot-password", pub, s.ForgotPassword},
		{http.MethodPost, "/auth/reset-password", pub, s.ResetPassword},
		{http.MethodPost, "/auth/logout", authn, s.Logout},
		{http.MethodPost, "/auth/change-password", authn, s.ChangePassword},
		{http.MethodGet, "/auth/me", authn, s.Me},

		// member self-service
		{http.MethodGet, "/member/profile", authn, s.Me},
		{http.MethodPut, "/member/profile", authn, s.UpdateProfile},
		{http.MethodGet, "/member/dashboard", authn, s.MemberDashboard},
		{http.MethodGet, "/member/donations", authn, s.MyDonations},
		{http.MethodGet, "/member/complaints", authn, s.MyComplaints},
		{http.MethodGet, "/member/certificates", authn, s.MyCertificates},
		{http.MethodGet, "/member/registrations", authn, s.MyRegistrations},
		{http.MethodGet, "/users/{id:[0-9]+}", authn, s.GetUser},

		// complaints
		{http.MethodPost, "/complaints/file", pub, s.FileComplaint},
		{http.MethodPost, "/complaints", pub, s.FileComplaint},
		{http.MethodPost, "/complaints/track", pub, s.TrackComplaint},
		{http.MethodGet, "/complaints/{id:[0-9]+}", authn, s.GetComplaint},

		// donations
		{http.MethodPost, "/donations", pub, s.CreateDonation},
		{http.MethodGet, "/donations/{id:[0-9]+}", authn, s.GetDonation},
		{http.MethodGet, "/donations/{id:[0-9]+}/receipt", authn, s.DonationReceipt},

		// events
		{http.MethodGet, "/events", pub, s.ListEvents},
		{http.MethodGet, "/events/{id:[0-9]+}", pub, s.GetEvent},
		{http.MethodPost, "/events/{id:[0-9]+}/register", pub, s.RegisterEvent},
		{http.MethodPost, "/events/registrations/{id:[0-9]+}/cancel", authn, s.CancelRegistration},

		// certificates
		{http.MethodGet, "/certificates/verify/{number}", pub, s.VerifyCertificate},
		{http.MethodGet, "/certificates/{id:[0-9]+}", authn, s.GetCertificate},

		// public content
		{http.MethodGet, "/gallery", pub, s.ListGallery},
		{http.MethodGet, "/gallery/{id:[0-9]+}", pub, s.GetGallery},
		{http.MethodGet, "/news", pub, s.ListNews},
		{http.MethodGet, "/news/{slug}", pub, s.GetNewsBySlug},
		{http.MethodGet, "/public/settings", pub, s.PublicSettings},
		{http.MethodPost, "/contact", pub, s.SubmitContact},

		// admin: users
		{http.MethodGet, "/admin/users", constant.CapUserRead, s.ListUsers},
		{http.MethodPost, "/admin/users", constant.CapUserManage, s.CreateUser},
		{http.MethodGet, "/admin/users/export", constant.CapExport, s.ExportUsers},
		{http.MethodGet, "/admin/users/stats", constant.CapUserRead, s.UserStats},
		{http.MethodPost, "/admin/users/bulk-status", constant.CapUserManage, s.BulkUserStatus},
		{http.MethodPost, "/admin/users/bulk-delete", constant.CapUserDelete, s.BulkDeleteUsers},
		{http.MethodPut, "/admin/users/{id:[0-9]+}", constant.CapUserManage, s.AdminUpdateUser},
		{http.MethodPatch, "/admin/users/{id:[0-9]+}/status", constant.CapUserManage, s.UpdateUserStatus},
		{http.MethodPatch, "/admin/users/{id:[0-9]+}/role", constant.CapUserRoleManage, s.UpdateUserRole},
		{http.MethodDelete, "/admin/users/{id:[0-9]+}", constant.CapUserDelete, s.DeleteUser},

		// admin: complaints
		{http.MethodGet, "/admin/complaints", constant.CapComplaintRead, s.ListComplaints},
		{http.MethodGet, "/admin/complaints/export", constant.CapExport, s.ExportComplaints},
		{http.MethodGet, "/admin/complaints/stats", constant.CapComplaintRead, s.ComplaintStats},
		{http.MethodPatch, "/admin/complaints/{id:[0-9]+}/status", constant.CapComplaintManage, s.UpdateComplaintStatus},
		{http.MethodPatch, "/admin/complaints/{id:[0-9]+}/assign", constant.CapComplaintManage, s.AssignComplaint},
		{http.MethodPatch, "/admin/complaints/{id:[0-9]+}/priority", constant.CapComplaintManage, s.UpdateComplaintPriority},
		{http.MethodDelete, "/admin/complaints/{id:[0-9]+}", constant.CapComplaintDelete, s.DeleteComplaint},

		// admin: donations
		{http.MethodGet, "/admin/donations", constant.CapDonationRead, s.ListDonations},
		{http.MethodGet, "/admin/donations/export", constant.CapExport, s.ExportDonations},
		{http.MethodGet, "/admin/donations/stats", constant.CapDonationRead, s.DonationStats},
		{http.MethodPatch, "/admin/donations/{id:[0-9]+}/status", constant.CapDonationManage, s.UpdateDonationStatus},
		{http.MethodDelete, "/admin/donations/{id:[0-9]+}", constant.CapDonationDelete, s.DeleteDonation},

		// admin: events
		{http.MethodPost, "/admin/events", constant.CapEventManage, s.CreateEvent},
		{http.MethodPut, "/admin/events/{id:[0-9]+}", constant.CapEventManage, s.UpdateEvent},
		{http.MethodDelete, "/admin/events/{id:[0-9]+}", constant.CapEventDelete, s.DeleteEvent},
		{http.MethodGet, "/admin/events/{id:[0-9]+}/registrations", constant.CapEventManage, s.ListRegistrations},
		{http.MethodPatch, "/admin/registrations/{id:[0-9]+}/attendance", constant.CapEventManage, s.UpdateAttendance},

		// admin: certificates
		{http.MethodGet, "/admin/certificates", constant.CapCertificateRead, s.ListCertificates},
		{http.MethodPost, "/admin/certificates", constant.CapCertificateIssue, s.IssueCertificate},
		{http.MethodDelete, "/admin/certificates/{id:[0-9]+}", constant.CapCertificateRevoke, s.RevokeCertificate},

		// admin: content
		{http.MethodPost, "/admin/gallery", constant.CapContentManage, s.CreateGallery},
		{http.MethodPut, "/admin/gallery/{id:[0-9]+}", constant.CapContentManage, s.UpdateGallery},
		{http.MethodDelete, "/admin/gallery/{id:[0-9]+}", constant.CapContentDelete, s.DeleteGallery},
		{http.MethodGet, "/admin/news/{id:[0-9]+}", constant.CapContentManage, s.GetNews},
		{http.MethodPost, "/admin/news", constant.CapContentManage, s.CreateNews},
		{http.MethodPut, "/admin/news/{id:[0-9]+}", constant.CapContentManage, s.UpdateNews},
		{http.MethodDelete, "/admin/news/{id:[0-9]+}", constant.CapContentDelete, s.DeleteNews},
		{http.MethodGet, "/admin/contact-messages", constant.CapContentManage, s.ListContacts},

		// admin: settings
		{http.MethodGet, "/admin/settings", constant.CapSettingsRead, s.ListSettings},
		{http.MethodPut, "/admin/settings", constant.CapSettingsManage, s.BulkUpdateSettings},
		{http.MethodGet, "/admin/settings/backup", constant.CapSettingsManage, s.BackupSettings},
		{http.MethodPost, "/admin/settings/restore", constant.CapSettingsManage, s.RestoreSettings},
		{http.MethodGet, "/admin/settings/{key}", constant.CapSettingsRead, s.GetSetting},
		{http.MethodPut, "/admin/settings/{key}", constant.CapSettingsManage, s.UpdateSetting},

		// admin: insight
		{http.MethodGet, "/admin/dashboard", constant.CapAnalyticsRead, s.AdminDashboard},
		{http.MethodGet, "/admin/analytics/overview", constant.CapAnalyticsRead, s.AnalyticsOverview},
		{http.MethodGet, "/admin/analytics/trends", constant.CapAnalyticsRead, s.AnalyticsTrends},
		{http.MethodGet, "/admin/activity", constant.CapActivityRead, s.ListActivity},

		// admin: files
		{http.MethodPost, "/admin/files/{type}", constant.CapFileUpload, s.UploadFile},
		{http.MethodDelete, "/admin/files/{type}/{name}", constant.CapFileDelete, s.DeleteFile},
	}
}

func NewTransport(rh *RestHandler, opts Options) http.Handler {
	router := mux.NewRouter()
	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response.NotFound(w, "route not found")
	})
	router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response.JSON(w, http.StatusMethodNotAllowed, response.Envelope{Message: "method not allowed"})
	})

	reg := opts.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	metrics := NewMetrics(reg)

	router.Use(RecoverMiddleware())
	router.Use(ClientIPMiddleware(opts.TrustedProxies))
	router.Use(LoggingMiddleware())
	router.Use(metrics.Middleware())

	// Swagger UI
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)
	router.Handle("/metrics", InternalMiddleware(opts.MetricsKey)(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, map[string]string{"status": "ok"}, "")
	}).Methods(http.MethodGet)
	if opts.UploadDir != "" && opts.UploadURL != "" {
		router.PathPrefix(opts.UploadURL + "/").
			Handler(http.StripPrefix(opts.UploadURL+"/", http.FileServer(http.Dir(opts.UploadDir))))
	}

	api := router.PathPrefix("/api").Subrouter()
	api.Use(AuthMiddleware(rh.AuthApp))
	for _, rt := range rh.routes() {
		api.Handle(rt.path, RequireCapability(rt.need, rt.handler)).Methods(rt.method)
	}

	return router
}

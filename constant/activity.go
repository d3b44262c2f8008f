package constant

// Activity actions written to the audit trail.
const (
	ActionUserRegistered    = "user.registered"
	ActionUserVerified      = "user.email_verified"
	ActionUserLogin         = "user.login"
	ActionUserLogout        = "user.logout"
	ActionPasswordReset     = "user.password_reset"
	ActionPasswordChanged   = "user.password_changed"
	ActionUserCreated       = "user.created"
	ActionUserUpdated       = "user.updated"
	ActionUserStatusChanged = "user.status_changed"
	ActionUserRoleChanged   = "user.role_changed"
	ActionUserDeleted       = "user.deleted"
	ActionUsersBulkStatus   = "user.bulk_status"
	ActionUsersBulkDeleted  = "user.bulk_deleted"

	ActionComplaintFiled    = "complaint.filed"
	ActionComplaintStatus   = "complaint.status_changed"
	ActionComplaintAssigned = "complaint.assigned"
	ActionComplaintPriority = "complaint.priority_changed"
	ActionComplaintDeleted  = "complaint.deleted"

	ActionDonationCreated = "donation.created"
	ActionDonationStatus  = "donation.status_changed"
	ActionDonationDeleted = "donation.deleted"

	ActionEventCreated       = "event.created"
	ActionEventUpdated       = "event.updated"
	ActionEventDeleted       = "event.deleted"
	ActionEventRegistered    = "event.registered"
	ActionRegistrationStatus = "event.attendance_changed"

	ActionCertificateIssued  = "certificate.issued"
	ActionCertificateRevoked = "certificate.revoked"

	ActionContentCreated = "content.created"
	ActionContentUpdated = "content.updated"
	ActionContentDeleted = "content.deleted"

	ActionSettingsUpdated  = "settings.updated"
	ActionSettingsRestored = "settings.restored"

	ActionFileUploaded = "file.uploaded"
	ActionFileDeleted  = "file.deleted"

	ActionContactReceived = "contact.received"
)

// Setting keys read by the services.
const (
	SettingSiteName         = "general.site_name"
	SettingAdminEmail       = "email.admin_email"
	SettingLoginOTPRequired = "security.login_otp_required"
	SettingRegistrationOpen = "security.registration_open"
	SettingNotifyComplaints = "notifications.complaint_updates"
)

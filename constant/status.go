package constant

type UserStatus string

const (
	UserStatusPending   UserStatus = "pending"
	UserStatusActive    UserStatus = "active"
	UserStatusInactive  UserStatus = "inactive"
	UserStatusSuspended UserStatus = "suspended"
)

type ComplaintStatus string

const (
	ComplaintStatusSubmitted     ComplaintStatus = "submitted"
	ComplaintStatusUnderReview   ComplaintStatus = "under_review"
	ComplaintStatusInvestigating ComplaintStatus = "investigating"
	ComplaintStatusResolved      ComplaintStatus = "resolved"
	ComplaintStatusClosed        ComplaintStatus = "closed"
	ComplaintStatusRejected      ComplaintStatus = "rejected"
)

// complaintTransitions lists the statuses reachable from each open status.
// Resolved, closed and rejected are terminal.
var complaintTransitions = map[ComplaintStatus][]ComplaintStatus{
	ComplaintStatusSubmitted:     {ComplaintStatusUnderReview, ComplaintStatusClosed, ComplaintStatusRejected},
	ComplaintStatusUnderReview:   {ComplaintStatusInvestigating, ComplaintStatusResolved, ComplaintStatusClosed, ComplaintStatusRejected},
	ComplaintStatusInvestigating: {ComplaintStatusResolved, ComplaintStatusClosed, ComplaintStatusRejected},
}

func (s ComplaintStatus) CanTransitionTo(next ComplaintStatus) bool {
	for _, allowed := range complaintTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type ComplaintPriority string

const (
	PriorityLow    ComplaintPriority = "low"
	PriorityMedium ComplaintPriority = "medium"
	PriorityHigh   ComplaintPriority = "high"
	PriorityUrgent ComplaintPriority = "urgent"
)

type DonationStatus string

const (
	DonationStatusPending   DonationStatus = "pending"
	DonationStatusCompleted DonationStatus = "completed"
	DonationStatusFailed    DonationStatus = "failed"
	DonationStatusRefunded  DonationStatus = "refunded"
)

var donationTransitions = map[DonationStatus][]DonationStatus{
	DonationStatusPending:   {DonationStatusCompleted, DonationStatusFailed},
	DonationStatusCompleted: {DonationStatusRefunded},
	DonationStatusFailed:    {DonationStatusPending},
}

func (s DonationStatus) CanTransitionTo(next DonationStatus) bool {
	for _, allowed := range donationTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type EventStatus string

const (
	EventStatusUpcoming  EventStatus = "upcoming"
	EventStatusOngoing   EventStatus = "ongoing"
	EventStatusCompleted EventStatus = "completed"
	EventStatusCancelled EventStatus = "cancelled"
	EventStatusPostponed EventStatus = "postponed"
)

type AttendanceStatus string

const (
	AttendancePending   AttendanceStatus = "pending"
	AttendanceConfirmed AttendanceStatus = "confirmed"
	AttendanceCancelled AttendanceStatus = "cancelled"
	AttendanceAttended  AttendanceStatus = "attended"
)

var attendanceTransitions = map[AttendanceStatus][]AttendanceStatus{
	AttendancePending:   {AttendanceConfirmed, AttendanceCancelled, AttendanceAttended},
	AttendanceConfirmed: {AttendanceCancelled, AttendanceAttended},
}

func (s AttendanceStatus) CanTransitionTo(next AttendanceStatus) bool {
	for _, allowed := range attendanceTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type PaymentStatus string

const (
	PaymentStatusNotRequired PaymentStatus = "not_required"
	PaymentStatusPending     PaymentStatus = "pending"
	PaymentStatusPaid        PaymentStatus = "paid"
)

type NewsStatus string

const (
	NewsStatusDraft     NewsStatus = "draft"
	NewsStatusPublished NewsStatus = "published"
	NewsStatusArchived  NewsStatus = "archived"
)

type OTPType string

const (
	OTPEmailVerification OTPType = "email_verification"
	OTPPhoneVerification OTPType = "phone_verification"
	OTPPasswordReset     OTPType = "password_reset"
	OTPLoginVerification OTPType = "login_verification"
)

type SettingCategory string

const (
	SettingGeneral       SettingCategory = "general"
	SettingEmail         SettingCategory = "email"
	SettingPayment       SettingCategory = "payment"
	SettingSecurity      SettingCategory = "security"
	SettingNotifications SettingCategory = "notifications"
)

type SettingType string

const (
	SettingTypeString SettingType = "string"
	SettingTypeBool   SettingType = "boolean"
	SettingTypeNumber SettingType = "number"
	SettingTypeJSON   SettingType = "json"
)

type TokenKind string

const (
	TokenKindAccess  TokenKind = "access"
	TokenKindRefresh TokenKind = "refresh"
)

type ContextKey string

const (
	PrincipalKey ContextKey = "principal"
	ClientIPKey  ContextKey = "client_ip"
)

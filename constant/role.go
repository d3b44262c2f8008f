package constant

type Role string

const (
	RoleAdmin     Role = "admin"
	RoleModerator Role = "moderator"
	RoleMember    Role = "member"
	RoleVolunteer Role = "volunteer"
	RoleDonor     Role = "donor"
	RoleUser      Role = "user"
)

var Roles = []Role{RoleAdmin, RoleModerator, RoleMember, RoleVolunteer, RoleDonor, RoleUser}

func (r Role) Valid() bool {
	for _, role := range Roles {
		if r == role {
			return true
		}
	}
	return false
}

// IsStaff reports whether the role belongs to the back office.
func (r Role) IsStaff() bool {
	return r == RoleAdmin || r == RoleModerator
}

// Capability names an action a route performs. Routes declare exactly one.
type Capability string

const (
	CapPublic        Capability = "public"
	CapAuthenticated Capability = "authenticated"

	CapUserRead       Capability = "user:read"
	CapUserManage     Capability = "user:manage"
	CapUserRoleManage Capability = "user:role"
	CapUserDelete     Capability = "user:delete"

	CapComplaintRead   Capability = "complaint:read"
	CapComplaintManage Capability = "complaint:manage"
	CapComplaintDelete Capability = "complaint:delete"

	CapDonationRead   Capability = "donation:read"
	CapDonationManage Capability = "donation:manage"
	CapDonationDelete Capability = "donation:delete"

	CapEventManage Capability = "event:manage"
	CapEventDelete Capability = "event:delete"

	CapCertificateIssue  Capability = "certificate:issue"
	CapCertificateRead   Capability = "certificate:read"
	CapCertificateRevoke Capability = "certificate:revoke"

	CapContentManage Capability = "content:manage"
	CapContentDelete Capability = "content:delete"

	CapSettingsRead   Capability = "settings:read"
	CapSettingsManage Capability = "settings:manage"

	CapAnalyticsRead Capability = "analytics:read"
	CapActivityRead  Capability = "activity:read"
	CapExport        Capability = "export"

	CapFileUpload Capability = "file:upload"
	CapFileDelete Capability = "file:delete"
)

var staff = []Role{RoleAdmin, RoleModerator}
var adminOnly = []Role{RoleAdmin}

// Capabilities is the single route permission table consulted by the role gate.
// CapPublic and CapAuthenticated are resolved by Allowed without a table entry.
var Capabilities = map[Capability][]Role{
	CapUserRead:       staff,
	CapUserManage:     staff,
	CapUserRoleManage: adminOnly,
	CapUserDelete:     adminOnly,

	CapComplaintRead:   staff,
	CapComplaintManage: staff,
	CapComplaintDelete: adminOnly,

	CapDonationRead:   staff,
	CapDonationManage: staff,
	CapDonationDelete: adminOnly,

	CapEventManage: staff,
	CapEventDelete: adminOnly,

	CapCertificateIssue:  staff,
	CapCertificateRead:   staff,
	CapCertificateRevoke: adminOnly,

	CapContentManage: staff,
	CapContentDelete: adminOnly,

	CapSettingsRead:   staff,
	CapSettingsManage: adminOnly,

	CapAnalyticsRead: staff,
	CapActivityRead:  adminOnly,
	CapExport:        staff,

	CapFileUpload: staff,
	CapFileDelete: adminOnly,
}

// Allowed reports whether role may exercise capability.
func Allowed(role Role, capability Capability) bool {
	switch capability {
	case CapPublic:
		return true
	case CapAuthenticated:
		return role.Valid()
	}
	for _, r := range Capabilities[capability] {
		if r == role {
			return true
		}
	}
	return false
}

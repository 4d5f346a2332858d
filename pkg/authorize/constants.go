package authorize

import (
	"fmt"
	"regexp"
)

type Action string
type Resource string
type Role string
type Domain string

// ----------------------------
// Actions
// ----------------------------

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	ActionList   Action = "list"

	// Power actions
	ActionManage  Action = "manage"  // CRUD + list
	ActionExecute Action = "execute" // run, trigger, start, stop, etc.

	// RBAC-specific actions
	ActionGrant  Action = "grant"
	ActionRevoke Action = "revoke"
)

const (
	WildcardAction Action = "*"
)

var KnownActions = map[Action]struct{}{
	ActionCreate: {}, ActionRead: {}, ActionUpdate: {}, ActionDelete: {}, ActionList: {},
	ActionManage: {}, ActionExecute: {},
	ActionGrant: {}, ActionRevoke: {},
}

// ----------------------------
// Resources
// ----------------------------

const (
	WildcardResource Resource = "*"

	// Identity / auth
	ResourceUser         Resource = "user"
	ResourceAuthSession  Resource = "auth_session"
	ResourceRefreshToken Resource = "refresh_token"
	ResourceOTP          Resource = "otp"

	// Clinic side
	ResourceClinic        Resource = "clinic"
	ResourceVeterinarian  Resource = "veterinarian"
	ResourceServiceItem   Resource = "service_item"
	ResourceShiftCapacity Resource = "shift_capacity"

	// Customer side
	ResourcePet Resource = "pet"

	// Booking
	ResourceAppointment Resource = "appointment"

	// Communication
	ResourceConversation Resource = "conversation"
	ResourceMessage      Resource = "message"
	ResourceNotification Resource = "notification"

	// Storage
	ResourceFile Resource = "file"

	// System / platform admin
	ResourceSystem Resource = "system"
	ResourceAudit  Resource = "audit"
	ResourceRBAC   Resource = "rbac"
)

var KnownResources = map[Resource]struct{}{
	ResourceUser: {}, ResourceAuthSession: {}, ResourceRefreshToken: {}, ResourceOTP: {},
	ResourceClinic: {}, ResourceVeterinarian: {}, ResourceServiceItem: {}, ResourceShiftCapacity: {},
	ResourcePet: {}, ResourceAppointment: {},
	ResourceConversation: {}, ResourceMessage: {}, ResourceNotification: {},
	ResourceFile:   {},
	ResourceSystem: {}, ResourceAudit: {}, ResourceRBAC: {},
}

// ----------------------------
// Roles
// ----------------------------
//
// These are the "policy subjects" we assign to users via grouping policies.

const (
	WildcardRole Role = "*"

	// Platform role (domain = sys)
	RolePlatformAdmin Role = "role:platform:admin"

	// Account roles (domain = sys)
	RoleCustomer Role = "role:customer"
	RolePartner  Role = "role:partner"

	// Clinic ownership (domain = clinic:<uuid>)
	RoleClinicOwner Role = "role:clinic:owner"

	// Private user scope (domain = user:<uuid>)
	RoleUserSelf Role = "role:user:self"
)

var KnownRoles = map[Role]struct{}{
	RolePlatformAdmin: {},
	RoleCustomer:      {},
	RolePartner:       {},
	RoleClinicOwner:   {},
	RoleUserSelf:      {},
}

// Vietnamese display names
var RoleDisplayNamesVI = map[Role]string{
	RolePlatformAdmin: "Quản trị viên hệ thống",
	RoleCustomer:      "Khách hàng",
	RolePartner:       "Đối tác phòng khám",
	RoleClinicOwner:   "Chủ phòng khám",
	RoleUserSelf:      "Chính chủ tài khoản",
}

// Account role strings (stored in the users.role column)
const (
	UserRoleCustomer = "customer"
	UserRolePartner  = "partner"
	UserRoleAdmin    = "admin"
)

// UserRoleToRBACRole maps DB role values to Casbin roles
var UserRoleToRBACRole = map[string]Role{
	UserRoleCustomer: RoleCustomer,
	UserRolePartner:  RolePartner,
	UserRoleAdmin:    RolePlatformAdmin,
}

// ----------------------------
// Domains
// ----------------------------

const (
	DomainSys Domain = "sys"
)

// Domain prefixes (for exact domains we generate per entity)
const (
	DomainPrefixClinic Domain = "clinic:"
	DomainPrefixUser   Domain = "user:"
)

const (
	WildcardDomain Domain = "*"
)

var (
	reUUID = regexp.MustCompile(`^[0-9a-fA-F-]{36}$`)
)

// Domain builders (typed, safe)
func ClinicDomain(clinicID string) Domain {
	return Domain(fmt.Sprintf("%s%s", DomainPrefixClinic, clinicID))
}

func UserDomain(userID string) Domain {
	return Domain(fmt.Sprintf("%s%s", DomainPrefixUser, userID))
}

// IsValidDomain checks whether d is a recognised domain string.
func IsValidDomain(d Domain) bool {
	if d == DomainSys || d == WildcardDomain {
		return true
	}

	s := string(d)
	switch {
	case len(s) > len(DomainPrefixClinic) && s[:len(DomainPrefixClinic)] == string(DomainPrefixClinic):
		return reUUID.MatchString(s[len(DomainPrefixClinic):])
	case len(s) > len(DomainPrefixUser) && s[:len(DomainPrefixUser)] == string(DomainPrefixUser):
		return reUUID.MatchString(s[len(DomainPrefixUser):])
	default:
		return false
	}
}

// ----------------------------
// Casbin tuple helpers
// ----------------------------

type PolicyEffect string

const (
	EffectAllow PolicyEffect = "allow"
	EffectDeny  PolicyEffect = "deny"
)

// PolicySubject is the p.sub in Casbin: either a role (preferred) or a user/service id.
type PolicySubject string

// GroupSubject is the g.sub in Casbin: a concrete principal id (user_id or service_id).
type GroupSubject string

// Grouping rows: g, user_id, role, domain
type GroupingPolicy struct {
	Subject GroupSubject
	Role    Role
	Domain  Domain
}

// Permission rows: p, role, domain, resource, action, eft
type PermissionPolicy struct {
	Subject Role
	Domain  Domain
	Object  Resource
	Action  Action
	Effect  PolicyEffect
}

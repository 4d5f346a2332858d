package authorize

import (
	"context"
	"log/slog"
)

// manageActions is what ActionManage expands to when policies are stored.
// The matcher compares actions literally, so a "manage" row on its own
// would never grant "update".
var manageActions = []Action{ActionCreate, ActionRead, ActionUpdate, ActionDelete, ActionList}

// SeedDefaultPolicies sets up the baseline RBAC policies for the system.
func SeedDefaultPolicies(ctx context.Context, auth IAuthorization) error {
	logger := slog.Default()

	// System-level policies (domain: sys)
	sysPolicies := []PermissionPolicy{
		// Platform admin: god mode
		{RolePlatformAdmin, DomainSys, WildcardResource, WildcardAction, EffectAllow},

		// Customer: pets, bookings, browsing approved clinics, chat
		{RoleCustomer, DomainSys, ResourcePet, ActionManage, EffectAllow},
		{RoleCustomer, DomainSys, ResourceAppointment, ActionCreate, EffectAllow},
		{RoleCustomer, DomainSys, ResourceAppointment, ActionRead, EffectAllow},
		{RoleCustomer, DomainSys, ResourceAppointment, ActionUpdate, EffectAllow},
		{RoleCustomer, DomainSys, ResourceAppointment, ActionList, EffectAllow},
		{RoleCustomer, DomainSys, ResourceClinic, ActionRead, EffectAllow},
		{RoleCustomer, DomainSys, ResourceClinic, ActionList, EffectAllow},
		{RoleCustomer, DomainSys, ResourceConversation, ActionCreate, EffectAllow},
		{RoleCustomer, DomainSys, ResourceConversation, ActionRead, EffectAllow},
		{RoleCustomer, DomainSys, ResourceMessage, ActionCreate, EffectAllow},
		{RoleCustomer, DomainSys, ResourceMessage, ActionRead, EffectAllow},
		{RoleCustomer, DomainSys, ResourceMessage, ActionDelete, EffectAllow},
		{RoleCustomer, DomainSys, ResourceNotification, ActionRead, EffectAllow},
		{RoleCustomer, DomainSys, ResourceNotification, ActionUpdate, EffectAllow},
		{RoleCustomer, DomainSys, ResourceFile, ActionCreate, EffectAllow},
		{RoleCustomer, DomainSys, ResourceFile, ActionRead, EffectAllow},

		// Partner: clinic profile, staff, services, capacity, incoming bookings
		{RolePartner, DomainSys, ResourceClinic, ActionCreate, EffectAllow},
		{RolePartner, DomainSys, ResourceClinic, ActionRead, EffectAllow},
		{RolePartner, DomainSys, ResourceClinic, ActionUpdate, EffectAllow},
		{RolePartner, DomainSys, ResourceVeterinarian, ActionManage, EffectAllow},
		{RolePartner, DomainSys, ResourceServiceItem, ActionManage, EffectAllow},
		{RolePartner, DomainSys, ResourceShiftCapacity, ActionManage, EffectAllow},
		{RolePartner, DomainSys, ResourceAppointment, ActionCreate, EffectAllow},
		{RolePartner, DomainSys, ResourceAppointment, ActionRead, EffectAllow},
		{RolePartner, DomainSys, ResourceAppointment, ActionUpdate, EffectAllow},
		{RolePartner, DomainSys, ResourceAppointment, ActionList, EffectAllow},
		{RolePartner, DomainSys, ResourceConversation, ActionRead, EffectAllow},
		{RolePartner, DomainSys, ResourceMessage, ActionCreate, EffectAllow},
		{RolePartner, DomainSys, ResourceMessage, ActionRead, EffectAllow},
		{RolePartner, DomainSys, ResourceMessage, ActionDelete, EffectAllow},
		// Walk-in booking needs the customer picker
		{RolePartner, DomainSys, ResourceUser, ActionRead, EffectAllow},
		{RolePartner, DomainSys, ResourceUser, ActionList, EffectAllow},
		{RolePartner, DomainSys, ResourceNotification, ActionRead, EffectAllow},
		{RolePartner, DomainSys, ResourceNotification, ActionUpdate, EffectAllow},
		{RolePartner, DomainSys, ResourceFile, ActionCreate, EffectAllow},
		{RolePartner, DomainSys, ResourceFile, ActionRead, EffectAllow},
	}

	// Clinic-level policies (domain: clinic:*)
	clinicPolicies := []PermissionPolicy{
		// Clinic owner: full control within the clinic
		{RoleClinicOwner, WildcardDomain, ResourceClinic, ActionManage, EffectAllow},
		{RoleClinicOwner, WildcardDomain, ResourceVeterinarian, ActionManage, EffectAllow},
		{RoleClinicOwner, WildcardDomain, ResourceServiceItem, ActionManage, EffectAllow},
		{RoleClinicOwner, WildcardDomain, ResourceShiftCapacity, ActionManage, EffectAllow},
		{RoleClinicOwner, WildcardDomain, ResourceAppointment, ActionManage, EffectAllow},
	}

	// User-level policies (domain: user:*)
	userPolicies := []PermissionPolicy{
		// UserSelf: full control over own account resources
		{RoleUserSelf, WildcardDomain, ResourceUser, ActionManage, EffectAllow},
		{RoleUserSelf, WildcardDomain, ResourceAuthSession, ActionManage, EffectAllow},
		{RoleUserSelf, WildcardDomain, ResourceRefreshToken, ActionManage, EffectAllow},
	}

	allPolicies := append(append(sysPolicies, clinicPolicies...), userPolicies...)

	count := 0
	for _, p := range allPolicies {
		actions := []Action{p.Action}
		if p.Action == ActionManage {
			actions = manageActions
		}
		for _, act := range actions {
			added, err := auth.AddPermission(ctx, p.Subject, p.Domain, p.Object, act, p.Effect)
			if err != nil {
				logger.Error("failed to add policy", "policy", p, "error", err)
				return err
			}
			count++
			if added {
				logger.Debug("added policy", "role", p.Subject, "domain", p.Domain, "resource", p.Object, "action", act)
			}
		}
	}

	logger.Info("seeded default RBAC policies", "count", count)
	return nil
}

// AssignUserSelfRole assigns the user:self role in the user's private domain.
// Call this when creating a new user.
func AssignUserSelfRole(ctx context.Context, auth IAuthorization, userID string) error {
	domain := UserDomain(userID)
	subject := GroupSubject(userID)

	_, err := auth.AddRoleForUserInDomain(ctx, subject, RoleUserSelf, domain)
	return err
}

// AssignUserRole assigns the sys-domain role that matches a users.role value.
// Call this when creating a new user.
func AssignUserRole(ctx context.Context, auth IAuthorization, userID, dbRole string) error {
	role, ok := UserRoleToRBACRole[dbRole]
	if !ok {
		return ErrInvalidArgs
	}

	subject := GroupSubject(userID)
	_, err := auth.AddRoleForUserInDomain(ctx, subject, role, DomainSys)
	return err
}

// AssignClinicOwnerRole assigns the clinic:owner role to a user for a specific clinic.
// Call this when a partner registers a clinic.
func AssignClinicOwnerRole(ctx context.Context, auth IAuthorization, userID, clinicID string) error {
	domain := ClinicDomain(clinicID)
	subject := GroupSubject(userID)

	_, err := auth.AddRoleForUserInDomain(ctx, subject, RoleClinicOwner, domain)
	return err
}

// RemoveClinicOwnerRole removes the clinic:owner role from a user for a specific clinic.
func RemoveClinicOwnerRole(ctx context.Context, auth IAuthorization, userID, clinicID string) error {
	domain := ClinicDomain(clinicID)
	subject := GroupSubject(userID)

	_, err := auth.RemoveRoleForUserInDomain(ctx, subject, RoleClinicOwner, domain)
	return err
}

// GetClinicRoles returns all roles a user has in a specific clinic.
func GetClinicRoles(ctx context.Context, auth IAuthorization, userID, clinicID string) ([]Role, error) {
	domain := ClinicDomain(clinicID)
	subject := GroupSubject(userID)

	return auth.GetRolesForUserInDomain(ctx, subject, domain)
}

// AssignPlatformAdminRole assigns the platform admin role to a user.
// Assign with caution, it grants wildcard access in the sys domain.
func AssignPlatformAdminRole(ctx context.Context, auth IAuthorization, userID string) error {
	subject := GroupSubject(userID)
	_, err := auth.AddRoleForUserInDomain(ctx, subject, RolePlatformAdmin, DomainSys)
	return err
}

// RemovePlatformAdminRole removes the platform admin role from a user.
func RemovePlatformAdminRole(ctx context.Context, auth IAuthorization, userID string) error {
	subject := GroupSubject(userID)
	_, err := auth.RemoveRoleForUserInDomain(ctx, subject, RolePlatformAdmin, DomainSys)
	return err
}

package enum

// Role is a user's role as delivered by the store API. ADMIN holds every
// permission implicitly; ADMINISTRATIVE is the superset role that also
// unlocks audit and payment-history mutations.
type Role string

const (
	RoleSalesperson    Role = "SALESPERSON"
	RoleManager        Role = "MANAGER"
	RoleAdmin          Role = "ADMIN"
	RoleAdministrative Role = "ADMINISTRATIVE"
)

// BypassesPermissionChecks reports whether the role is granted every
// permission without consulting the user's permission set.
func (r Role) BypassesPermissionChecks() bool {
	return r == RoleAdmin || r == RoleAdministrative
}

// Package entity contains the core business objects of the project.
package entity

// Role represents the type of account a user holds in the system.
type Role string

const (
	// RolePatient indicates a patient account.
	RolePatient Role = "patient"
	// RoleDoctor indicates a doctor account.
	RoleDoctor Role = "doctor"
	// RoleAdmin indicates an administrative account.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a known value.
func (r Role) IsValid() bool {
	switch r {
	case RolePatient, RoleDoctor, RoleAdmin:
		return true
	default:
		return false
	}
}

// RoleFromString parses a role string, falling back to patient for
// empty input. Unknown values are reported via the second return.
func RoleFromString(s string) (Role, bool) {
	if s == "" {
		return RolePatient, true
	}
	role := Role(s)

	return role, role.IsValid()
}

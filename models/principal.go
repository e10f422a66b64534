package models

import "fmt"

// Role is the closed set of authorization roles understood by the core.
// Keeping it a dedicated type (instead of a free-form string compared by
// equality at every call site) makes authorization checks exhaustive.
type Role string

const (
	// RoleUser is the default role assigned to regular accounts.
	RoleUser Role = "user"

	// RoleAdmin grants access to every project and to the administrative
	// maintenance surface of the credential store.
	RoleAdmin Role = "admin"
)

// ParseRole converts a stored role string into a Role.
// Unknown values are rejected so that a corrupted or hand-edited row cannot
// silently grant privileges.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleUser:
		return RoleUser, nil
	case RoleAdmin:
		return RoleAdmin, nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

// String implements fmt.Stringer.
func (r Role) String() string {
	return string(r)
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// Principal is the authenticated identity on whose behalf an operation is
// authorized. It is established by the credential store after a successful
// login and passed by the caller into every vault operation.
type Principal struct {
	// UserID is the account identifier of the authenticated user.
	UserID int64 `json:"user_id"`

	// Username is the normalized login of the authenticated user.
	Username string `json:"username"`

	// Role is the authorization role of the authenticated user.
	Role Role `json:"role"`
}

// IsAdmin reports whether the principal carries the admin role.
func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// Zero reports whether the principal is unset (no authenticated user).
func (p Principal) Zero() bool {
	return p.UserID == 0 && p.Username == ""
}

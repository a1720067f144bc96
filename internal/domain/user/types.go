package user

// Role is the operator-console access tier. The ordering used for route
// guards (viewer < operator < admin) lives in the auth middleware; the
// domain only validates membership.
type Role string

const (
	RoleViewer   Role = "viewer"
	RoleOperator Role = "operator"
	RoleAdmin    Role = "admin"
)

var knownRoles = map[Role]struct{}{
	RoleViewer:   {},
	RoleOperator: {},
	RoleAdmin:    {},
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	_, ok := knownRoles[r]
	return ok
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

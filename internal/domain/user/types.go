package user

import "errors"

var ErrInvalidRole = errors.New("invalid role")

// Role classifies an authenticated caller. Clients book slots; owners
// additionally manage a tenant. Ownership of a concrete tenant is always
// re-checked against the tenant record, never trusted from the token alone.
type Role string

const (
	RoleClient Role = "client"
	RoleOwner  Role = "owner"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleClient, RoleOwner:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

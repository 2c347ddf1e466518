package user

import "errors"

var ErrInvalidRole = errors.New("invalid role")

// Role is the application role carried in the platform identity token.
type Role string

const (
	RoleClient  Role = "client"
	RolePartner Role = "partner"
	RoleAdmin   Role = "admin"
)

var roleHierarchy = map[Role]int{
	RoleClient:  1,
	RolePartner: 2,
	RoleAdmin:   3,
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleClient, RolePartner, RoleAdmin:
		return true
	default:
		return false
	}
}

func (r Role) AtLeast(min Role) bool {
	have, ok := roleHierarchy[r]
	want, okMin := roleHierarchy[min]
	return ok && okMin && have >= want
}

// NewRole maps a token claim to a Role. An absent claim means a plain client.
func NewRole(s string) (Role, error) {
	if s == "" {
		return RoleClient, nil
	}
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

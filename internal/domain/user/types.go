package user

import "pitch-booking/internal/pkg/errs"

var ErrInvalidRole = errs.Validation("invalid role")

type Role string

const (
	RolePlayer  Role = "player"
	RoleManager Role = "manager"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RolePlayer, RoleManager:
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

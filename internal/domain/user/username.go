package user

import (
	"strings"

	"pitch-booking/internal/pkg/errs"
)

const MaxUsernameLength = 150

var (
	ErrEmptyUsername   = errs.Validation("username is required")
	ErrUsernameTooLong = errs.Validation("username exceeds maximum length")
)

type Username struct {
	value string
}

func NewUsername(s string) (Username, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return Username{}, ErrEmptyUsername
	}
	if len(t) > MaxUsernameLength {
		return Username{}, ErrUsernameTooLong
	}
	return Username{value: t}, nil
}

func (u Username) String() string { return u.value }

package shared

import (
	"pitch-booking/internal/domain/user"

	"github.com/google/uuid"
)

// Minimal snapshot for command read operations
type UserSnapshot struct {
	ID       uuid.UUID
	Username string
	Role     user.Role
	IsActive bool
}

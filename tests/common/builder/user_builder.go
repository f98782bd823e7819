//go:build unit || e2e

package builder

import (
	"pitch-booking/internal/domain/user"
	"pitch-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type UserBuilder struct {
	ID       uuid.UUID
	Username string
	Role     user.Role
	ClubID   *uuid.UUID
	IsActive bool
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:       uuid.New(),
		Username: "player_one",
		Role:     user.RolePlayer,
		IsActive: true,
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildActor() user.Actor {
	return user.Actor{UserID: u.ID, Role: u.Role, ClubID: u.ClubID}
}

func (u *UserBuilder) BuildSnapshot() *shared.UserSnapshot {
	return &shared.UserSnapshot{
		ID:       u.ID,
		Username: u.Username,
		Role:     u.Role,
		IsActive: u.IsActive,
	}
}

// Fluent builder methods
func (u *UserBuilder) WithUsername(username string) *UserBuilder {
	u.Username = username
	return u
}

func (u *UserBuilder) AsManager(clubID uuid.UUID) *UserBuilder {
	u.Role = user.RoleManager
	u.ClubID = &clubID
	return u
}

// AsManagerWithoutClub is a manager whose token carries no club.
func (u *UserBuilder) AsManagerWithoutClub() *UserBuilder {
	u.Role = user.RoleManager
	u.ClubID = nil
	return u
}

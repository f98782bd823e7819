package user

import (
	"pitch-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrNotManager   = errs.Permission("only club managers can perform this action")
	ErrNoClubForKey = errs.Permission("manager token carries no club")
)

// Actor is the authenticated caller, handed explicitly to every use case.
type Actor struct {
	UserID uuid.UUID
	Role   Role
	ClubID *uuid.UUID
}

func NewPlayer(id uuid.UUID) Actor {
	return Actor{UserID: id, Role: RolePlayer}
}

func NewManager(id, clubID uuid.UUID) Actor {
	return Actor{UserID: id, Role: RoleManager, ClubID: &clubID}
}

func (a Actor) IsManager() bool { return a.Role == RoleManager }

// ManagedClub returns the club a manager acts for.
func (a Actor) ManagedClub() (uuid.UUID, error) {
	if a.Role != RoleManager {
		return uuid.Nil, ErrNotManager
	}
	if a.ClubID == nil || *a.ClubID == uuid.Nil {
		return uuid.Nil, ErrNoClubForKey
	}
	return *a.ClubID, nil
}

package request

import (
	"pitch-booking/internal/domain/team"
	"pitch-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateTeamRequest struct {
	Name    string `json:"name" binding:"required,max=100"`
	Logo    string `json:"logo" binding:"max=255"`
	Time    string `json:"time" binding:"max=100"`
	Address string `json:"address" binding:"max=255"`
}

func (r CreateTeamRequest) ToCommand() commands.CreateTeamRequest {
	return commands.CreateTeamRequest{Name: r.Name, Logo: r.Logo, Time: r.Time, Address: r.Address}
}

type UpdateTeamRequest struct {
	Name          *string `json:"name" binding:"omitempty,max=100"`
	Logo          *string `json:"logo" binding:"omitempty,max=255"`
	Time          *string `json:"time" binding:"omitempty,max=100"`
	Address       *string `json:"address" binding:"omitempty,max=255"`
	ChallengeMode *bool   `json:"challenge_mode"`
}

func (r UpdateTeamRequest) ToDomain() team.Update {
	return team.Update{
		Name:          r.Name,
		Logo:          r.Logo,
		Time:          r.Time,
		Address:       r.Address,
		ChallengeMode: r.ChallengeMode,
	}
}

type InviteRequest struct {
	Username string `json:"username" binding:"required,max=150"`
}

type UserSearchQuery struct {
	Q string `form:"q"`
}

type CreateChallengeRequest struct {
	TeamID           uuid.UUID `json:"team_id" binding:"required"`
	ChallengedTeamID uuid.UUID `json:"challenged_team_id" binding:"required"`
	PitchID          uuid.UUID `json:"pitch_id" binding:"required"`
	Date             string    `json:"date" binding:"required,date"`
	StartTime        string    `json:"start_time" binding:"required,timeofday"`
	EndTime          string    `json:"end_time" binding:"required,timeofday"`
}

func (r CreateChallengeRequest) ToCommand() (commands.CreateChallengeRequest, error) {
	slot, err := parseSlot(r.Date, r.StartTime, r.EndTime)
	if err != nil {
		return commands.CreateChallengeRequest{}, err
	}
	return commands.CreateChallengeRequest{
		TeamID:           r.TeamID,
		ChallengedTeamID: r.ChallengedTeamID,
		PitchID:          r.PitchID,
		Date:             slot.date,
		StartTime:        slot.start,
		EndTime:          slot.end,
	}, nil
}

type ChallengeResultRequest struct {
	TeamGoals       *int `json:"team_goals" binding:"required,min=0"`
	ChallengedGoals *int `json:"challenged_team_goals" binding:"required,min=0"`
}

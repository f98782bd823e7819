package response

import (
	"time"

	"pitch-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type TeamResponse struct {
	ID            uuid.UUID `json:"id"`
	CaptainID     uuid.UUID `json:"captain_id"`
	Name          string    `json:"name"`
	LogoURL       string    `json:"logo"`
	Time          string    `json:"time"`
	Address       string    `json:"address"`
	ChallengeMode bool      `json:"challenge_mode"`
	IsActive      bool      `json:"is_active"`
	Wins          int       `json:"wins"`
	Losses        int       `json:"losses"`
	Draws         int       `json:"draws"`
	Canceled      int       `json:"canceled"`
	GoalsScored   int       `json:"goals_scored"`
	GoalsConceded int       `json:"goals_conceded"`
	CleanSheets   int       `json:"clean_sheet"`
	FailedToScore int       `json:"failed_to_score"`
	CreatedAt     time.Time `json:"created_at"`
}

func FromTeamView(v *queries.TeamView) TeamResponse {
	var r TeamResponse
	copyInto(&r, v)
	return r
}

func FromTeamList(items []*queries.TeamView) []TeamResponse {
	return mapAll(items, FromTeamView)
}

type MemberResponse struct {
	PlayerID  uuid.UUID  `json:"player_id"`
	Username  string     `json:"username"`
	Status    string     `json:"status"`
	IsCaptain bool       `json:"is_captain"`
	JoinedAt  time.Time  `json:"joined_at"`
	LeaveAt   *time.Time `json:"leave_at,omitempty"`
}

type TeamDetailResponse struct {
	TeamResponse
	Members []MemberResponse `json:"members"`
}

func FromTeamDetail(v *queries.TeamDetail) TeamDetailResponse {
	return TeamDetailResponse{
		TeamResponse: FromTeamView(&v.TeamView),
		Members: mapAll(v.Members, func(m queries.MemberView) MemberResponse {
			var out MemberResponse
			copyInto(&out, &m)
			return out
		}),
	}
}

type InvitationResponse struct {
	ID        uuid.UUID `json:"id"`
	TeamID    uuid.UUID `json:"team_id"`
	TeamName  string    `json:"team_name"`
	Captain   string    `json:"captain"`
	CreatedAt time.Time `json:"created_at"`
}

func FromInvitationList(items []*queries.InvitationView) []InvitationResponse {
	return mapAll(items, func(v *queries.InvitationView) InvitationResponse {
		var r InvitationResponse
		copyInto(&r, v)
		return r
	})
}

type UserSearchResponse struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
}

func FromUserSearch(items []*queries.UserSearchItem) []UserSearchResponse {
	return mapAll(items, func(v *queries.UserSearchItem) UserSearchResponse {
		var r UserSearchResponse
		copyInto(&r, v)
		return r
	})
}

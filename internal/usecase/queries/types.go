package queries

import (
	"time"

	"pitch-booking/internal/domain/booking"
	"pitch-booking/internal/pkg/daytime"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ClubView struct {
	ID                  uuid.UUID         `json:"id"`
	Name                string            `json:"name"`
	Description         string            `json:"description"`
	Address             string            `json:"address"`
	Latitude            *decimal.Decimal  `json:"latitude,omitempty"`
	Longitude           *decimal.Decimal  `json:"longitude,omitempty"`
	OpenTime            daytime.TimeOfDay `json:"open_time"`
	CloseTime           daytime.TimeOfDay `json:"close_time"`
	WorkingDays         map[string]bool   `json:"working_days"`
	LogoURL             string            `json:"logo"`
	RatingAvg           decimal.Decimal   `json:"rating_avg"`
	RatingCount         int               `json:"rating_count"`
	FlexibleReservation bool              `json:"flexible_reservation"`
	IsActive            bool              `json:"is_active"`
}

type PitchView struct {
	ID           uuid.UUID         `json:"id"`
	ClubID       uuid.UUID         `json:"club_id"`
	Name         string            `json:"name"`
	ImageURL     string            `json:"image"`
	Type         string            `json:"type"`
	SizeHigh     int               `json:"size_high"`
	SizeWidth    int               `json:"size_width"`
	IsActive     bool              `json:"is_active"`
	PriceFirst   decimal.Decimal   `json:"price_first"`
	PriceSecond  decimal.Decimal   `json:"price_second"`
	TimeInterval daytime.TimeOfDay `json:"time_interval"`
}

type PricingRuleView struct {
	ID        uuid.UUID         `json:"id"`
	Type      string            `json:"type"`
	DayOfWeek *int              `json:"day_of_week,omitempty"`
	Date      *time.Time        `json:"date,omitempty"`
	StartTime daytime.TimeOfDay `json:"start_time"`
	EndTime   daytime.TimeOfDay `json:"end_time"`
	Percent   decimal.Decimal   `json:"percent"`
}

// PitchPrice is a pitch's hourly rates after the day's multiplier.
type PitchPrice struct {
	ID           uuid.UUID         `json:"id"`
	Name         string            `json:"name"`
	Type         string            `json:"type"`
	ImageURL     string            `json:"image"`
	PriceFirst   decimal.Decimal   `json:"price_first"`
	PriceSecond  decimal.Decimal   `json:"price_second"`
	TimeInterval daytime.TimeOfDay `json:"time_interval"`
	SizeHigh     int               `json:"size_high"`
	SizeWidth    int               `json:"size_width"`
	IsActive     bool              `json:"is_active"`
}

type OpeningDay struct {
	Date      time.Time         `json:"date"`
	StartTime daytime.TimeOfDay `json:"start_time"`
	EndTime   daytime.TimeOfDay `json:"end_time"`
	Percent   decimal.Decimal   `json:"percent"`
	Pitches   []PitchPrice      `json:"pitches"`
}

type BookingListItem struct {
	ID            uuid.UUID             `json:"id"`
	PitchID       uuid.UUID             `json:"pitch_id"`
	PitchName     string                `json:"pitch_name"`
	ClubID        uuid.UUID             `json:"club_id"`
	ClubName      string                `json:"club_name"`
	PlayerID      *uuid.UUID            `json:"player_id,omitempty"`
	PlayerName    *string               `json:"player_name,omitempty"`
	Phone         *string               `json:"phone,omitempty"`
	Date          time.Time             `json:"date"`
	StartTime     daytime.TimeOfDay     `json:"start_time"`
	EndTime       daytime.TimeOfDay     `json:"end_time"`
	Price         decimal.Decimal       `json:"price"`
	Deposit       *decimal.Decimal      `json:"deposit,omitempty"`
	Status        booking.Status        `json:"status"`
	PaymentStatus booking.PaymentStatus `json:"payment_status"`
	ByOwner       bool                  `json:"by_owner"`
	CreatedAt     time.Time             `json:"created_at"`
}

type StatusHistoryView struct {
	Status    booking.Status    `json:"status"`
	Date      time.Time         `json:"date"`
	StartTime daytime.TimeOfDay `json:"start_time"`
	EndTime   daytime.TimeOfDay `json:"end_time"`
	ChangedAt time.Time         `json:"changed_at"`
}

type ProposalView struct {
	ID           uuid.UUID         `json:"id"`
	NewDate      time.Time         `json:"new_date"`
	NewStartTime daytime.TimeOfDay `json:"new_start_time"`
	NewEndTime   daytime.TimeOfDay `json:"new_end_time"`
	CreatedAt    time.Time         `json:"created_at"`
}

type BookingDetail struct {
	BookingListItem
	Notes    string              `json:"notes"`
	History  []StatusHistoryView `json:"history"`
	Proposal *ProposalView       `json:"proposal,omitempty"`
}

type OwnerBookingFilter struct {
	PitchID  *uuid.UUID
	Date     *time.Time
	TimeFrom *daytime.TimeOfDay
	TimeTo   *daytime.TimeOfDay
}

type ReviewListItem struct {
	ID        uuid.UUID `json:"id"`
	Player    string    `json:"player"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

type NotificationView struct {
	ID        uuid.UUID  `json:"id"`
	SenderID  *uuid.UUID `json:"sender_id,omitempty"`
	Title     string     `json:"title"`
	Message   string     `json:"message"`
	Type      string     `json:"type"`
	IsRead    bool       `json:"is_read"`
	CreatedAt time.Time  `json:"created_at"`
}

type TeamView struct {
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

type MemberView struct {
	PlayerID  uuid.UUID  `json:"player_id"`
	Username  string     `json:"username"`
	Status    string     `json:"status"`
	IsCaptain bool       `json:"is_captain"`
	JoinedAt  time.Time  `json:"joined_at"`
	LeaveAt   *time.Time `json:"leave_at,omitempty"`
}

type TeamDetail struct {
	TeamView
	Members []MemberView `json:"members"`
}

type InvitationView struct {
	ID        uuid.UUID `json:"id"`
	TeamID    uuid.UUID `json:"team_id"`
	TeamName  string    `json:"team_name"`
	Captain   string    `json:"captain"`
	CreatedAt time.Time `json:"created_at"`
}

type UserSearchItem struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
}

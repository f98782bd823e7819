package shared

import (
	"context"
	"time"

	"pitch-booking/internal/domain/booking"
	"pitch-booking/internal/domain/challenge"
	"pitch-booking/internal/domain/club"
	"pitch-booking/internal/domain/notification"
	"pitch-booking/internal/domain/pitch"
	"pitch-booking/internal/domain/pricing"
	"pitch-booking/internal/domain/review"
	"pitch-booking/internal/domain/team"
	"pitch-booking/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
}

type Tx interface {
	Bookings() BookingRepository
	StatusHistory() StatusHistoryRepository
	Proposals() ProposalRepository
	Notifications() NotificationRepository
	Clubs() ClubRepository
	Pitches() PitchRepository
	PricingRules() PricingRuleRepository
	Reviews() ReviewRepository
	Teams() TeamRepository
	Members() MemberRepository
	Invitations() InvitationRepository
	Challenges() ChallengeRepository
	Users() UserRepository
	DB() db.DBTX
}

type BookingRepository interface {
	Create(ctx context.Context, tx db.DBTX, b *booking.Booking) error
	FindForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*booking.Booking, error)
	// UpdateState persists status, slot and updated_at only.
	UpdateState(ctx context.Context, tx db.DBTX, b *booking.Booking) error
	// SlotsInStatus returns slots on the pitch and date whose status is in
	// statuses, excluding the booking with id exclude.
	SlotsInStatus(ctx context.Context, tx db.DBTX, pitchID uuid.UUID, date time.Time, statuses []booking.Status, exclude uuid.UUID) ([]booking.Slot, error)
	// LockPitchDay serialises writers on one pitch and date until the
	// transaction ends.
	LockPitchDay(ctx context.Context, tx db.DBTX, pitchID uuid.UUID, date time.Time) error
}

type StatusHistoryRepository interface {
	Append(ctx context.Context, tx db.DBTX, h booking.StatusHistory) error
}

type ProposalRepository interface {
	Create(ctx context.Context, tx db.DBTX, p *booking.RescheduleProposal) error
	FindPendingForUpdate(ctx context.Context, tx db.DBTX, bookingID uuid.UUID) (*booking.RescheduleProposal, error)
	UpdateStatus(ctx context.Context, tx db.DBTX, p *booking.RescheduleProposal) error
}

type NotificationRepository interface {
	Create(ctx context.Context, tx db.DBTX, n *notification.Notification) error
	FindForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*notification.Notification, error)
	MarkRead(ctx context.Context, tx db.DBTX, id uuid.UUID) error
}

type ClubRepository interface {
	FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*club.Club, error)
	FindForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*club.Club, error)
	Update(ctx context.Context, tx db.DBTX, c *club.Club) error
	UpdateRating(ctx context.Context, tx db.DBTX, c *club.Club) error
}

type PitchRepository interface {
	Create(ctx context.Context, tx db.DBTX, p *pitch.Pitch) error
	FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*pitch.Pitch, error)
	FindForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*pitch.Pitch, error)
	Update(ctx context.Context, tx db.DBTX, p *pitch.Pitch) error
	// ListByClub orders by type then name.
	ListByClub(ctx context.Context, tx db.DBTX, clubID uuid.UUID, activeOnly bool) ([]*pitch.Pitch, error)
}

type PricingRuleRepository interface {
	Create(ctx context.Context, tx db.DBTX, r *pricing.Rule) error
	FindForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*pricing.Rule, error)
	Update(ctx context.Context, tx db.DBTX, r *pricing.Rule) error
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
	// ForDates returns the club's date rules on any of dates and its weekly
	// rules on any of their weekday indexes.
	ForDates(ctx context.Context, tx db.DBTX, clubID uuid.UUID, dates []time.Time) ([]*pricing.Rule, error)
}

type ReviewRepository interface {
	Create(ctx context.Context, tx db.DBTX, r *review.Review) error
	ExistsForBooking(ctx context.Context, tx db.DBTX, bookingID uuid.UUID) (bool, error)
}

type TeamRepository interface {
	Create(ctx context.Context, tx db.DBTX, t *team.Team) error
	FindForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*team.Team, error)
	Update(ctx context.Context, tx db.DBTX, t *team.Team) error
	// CountActiveMemberships counts ACTIVE memberships of the player in
	// active teams.
	CountActiveMemberships(ctx context.Context, tx db.DBTX, playerID uuid.UUID) (int, error)
}

type MemberRepository interface {
	Create(ctx context.Context, tx db.DBTX, m *team.Member) error
	// FindCounted returns the ACTIVE or INACTIVE membership of the player.
	FindCounted(ctx context.Context, tx db.DBTX, teamID, playerID uuid.UUID) (*team.Member, error)
	CountCounted(ctx context.Context, tx db.DBTX, teamID uuid.UUID) (int, error)
	Update(ctx context.Context, tx db.DBTX, m *team.Member) error
}

type InvitationRepository interface {
	Create(ctx context.Context, tx db.DBTX, i *team.Invitation) error
	FindForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*team.Invitation, error)
	ExistsPending(ctx context.Context, tx db.DBTX, teamID, playerID uuid.UUID) (bool, error)
	UpdateStatus(ctx context.Context, tx db.DBTX, i *team.Invitation) error
}

type ChallengeRepository interface {
	Create(ctx context.Context, tx db.DBTX, c *challenge.Challenge) error
	FindForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*challenge.Challenge, error)
	Update(ctx context.Context, tx db.DBTX, c *challenge.Challenge) error
}

type UserRepository interface {
	FindByUsername(ctx context.Context, tx db.DBTX, username string) (*UserSnapshot, error)
	FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*UserSnapshot, error)
}

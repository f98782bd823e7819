package commands

import (
	"context"

	"pitch-booking/internal/domain/event"
	domreview "pitch-booking/internal/domain/review"
	"pitch-booking/internal/domain/user"
	"pitch-booking/internal/infra"
	"pitch-booking/internal/pkg/clock"
	"pitch-booking/internal/usecase/events"
	"pitch-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateReviewRequest struct {
	BookingID uuid.UUID
	Rating    int
	Comment   string
}

type CreateReviewResult struct {
	ReviewID uuid.UUID
}

type ReviewCommands interface {
	CreateReview(ctx context.Context, actor user.Actor, req CreateReviewRequest) (*CreateReviewResult, error)
}

type reviewUseCaseImpl struct {
	runner *events.Runner
	clock  clock.Clock
}

func NewReviewUseCase(runner *events.Runner, clk clock.Clock) ReviewCommands {
	return &reviewUseCaseImpl{runner: runner, clock: clk}
}

func (uc *reviewUseCaseImpl) CreateReview(ctx context.Context, actor user.Actor, req CreateReviewRequest) (*CreateReviewResult, error) {
	var createdID uuid.UUID
	err := uc.runner.Within(ctx, func(ctx context.Context, tx shared.Tx, emit events.Emit) error {
		b, err := tx.Bookings().FindForUpdate(ctx, tx.DB(), req.BookingID)
		if err != nil {
			return notFoundAs(err, ErrBookingNotFound)
		}

		exists, err := tx.Reviews().ExistsForBooking(ctx, tx.DB(), b.ID())
		if err != nil {
			return err
		}
		if exists {
			return domreview.ErrReviewExists
		}

		now := uc.clock.Now()
		rev, err := domreview.NewReview(b, actor.UserID, req.Rating, req.Comment, now)
		if err != nil {
			return err
		}
		if err := tx.Reviews().Create(ctx, tx.DB(), rev); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return domreview.ErrReviewExists
			}
			return err
		}
		createdID = rev.ID()
		return emit(ctx, event.ReviewCreated{Review: rev, At: now})
	})
	if err != nil {
		return nil, err
	}
	return &CreateReviewResult{ReviewID: createdID}, nil
}

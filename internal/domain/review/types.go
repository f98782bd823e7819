package review

import "pitch-booking/internal/pkg/errs"

var (
	ErrInvalidRating  = errs.Validation("rating must be between 1 and 5")
	ErrCommentTooLong = errs.Validation("comment exceeds maximum length")

	ErrBookingNotEligible = errs.Validation("only completed bookings can be reviewed")
	ErrNotBookingPlayer   = errs.Permission("only the booking's player can review it")
	ErrReviewExists       = errs.Validation("this booking has already been reviewed")
)

package booking

import "pitch-booking/internal/pkg/errs"

var ErrInvalidStatus = errs.Validation("invalid booking status")

type Status int16

const (
	StatusPendingManager Status = iota + 1
	StatusPendingPlayer
	StatusPendingPay
	StatusCompleted
	StatusCanceled
	StatusReject
	StatusNoShow
	StatusDisputed
	StatusExpired

	statusEnd
)

var statusLabels = [...]string{
	StatusPendingManager: "PENDING_MANAGER",
	StatusPendingPlayer:  "PENDING_PLAYER",
	StatusPendingPay:     "PENDING_PAY",
	StatusCompleted:      "COMPLETED",
	StatusCanceled:       "CANCELED",
	StatusReject:         "REJECT",
	StatusNoShow:         "NO_SHOW",
	StatusDisputed:       "DISPUTED",
	StatusExpired:        "EXPIRED",
}

// Does not compile when a status is added without a label.
var _ = [1]struct{}{}[len(statusLabels)-int(statusEnd)]

// AllStatuses lists every status in declaration order.
func AllStatuses() []Status {
	out := make([]Status, 0, int(statusEnd)-1)
	for s := StatusPendingManager; s < statusEnd; s++ {
		out = append(out, s)
	}
	return out
}

// ActiveStatuses hold their slot: a new booking may not overlap them.
func ActiveStatuses() []Status {
	return []Status{StatusPendingPay, StatusCompleted, StatusPendingPlayer}
}

func (s Status) IsValid() bool {
	return s >= StatusPendingManager && s < statusEnd
}

func (s Status) IsActive() bool {
	switch s {
	case StatusPendingPay, StatusCompleted, StatusPendingPlayer:
		return true
	case StatusPendingManager, StatusCanceled, StatusReject, StatusNoShow, StatusDisputed, StatusExpired:
		return false
	default:
		return false
	}
}

// IsPending reports whether the booking still waits on someone.
func (s Status) IsPending() bool {
	switch s {
	case StatusPendingManager, StatusPendingPlayer, StatusPendingPay:
		return true
	case StatusCompleted, StatusCanceled, StatusReject, StatusNoShow, StatusDisputed, StatusExpired:
		return false
	default:
		return false
	}
}

func (s Status) String() string {
	if !s.IsValid() {
		return "UNKNOWN"
	}
	return statusLabels[s]
}

func ParseStatus(v int) (Status, error) {
	s := Status(v)
	if !s.IsValid() {
		return 0, ErrInvalidStatus
	}
	return s, nil
}

func ParseStatusLabel(label string) (Status, error) {
	for s := StatusPendingManager; s < statusEnd; s++ {
		if statusLabels[s] == label {
			return s, nil
		}
	}
	return 0, ErrInvalidStatus
}

package booking

type Action string

const (
	ActionConfirmPayment Action = "confirm-payment"
	ActionReject         Action = "reject"
	ActionComplete       Action = "complete"
	ActionCancel         Action = "cancel"
	ActionDispute        Action = "dispute"
	ActionNoShow         Action = "no-show"
	ActionExpire         Action = "expire"
)

func OwnerActions() []Action {
	return []Action{
		ActionConfirmPayment,
		ActionReject,
		ActionComplete,
		ActionCancel,
		ActionDispute,
		ActionNoShow,
		ActionExpire,
	}
}

func ParseAction(s string) (Action, error) {
	for _, a := range OwnerActions() {
		if string(a) == s {
			return a, nil
		}
	}
	return "", ErrUnknownAction
}

// Target is the status a successful action ends in.
func (a Action) Target() Status {
	switch a {
	case ActionConfirmPayment:
		return StatusPendingPay
	case ActionReject:
		return StatusReject
	case ActionComplete:
		return StatusCompleted
	case ActionCancel:
		return StatusCanceled
	case ActionDispute:
		return StatusDisputed
	case ActionNoShow:
		return StatusNoShow
	case ActionExpire:
		return StatusExpired
	default:
		return 0
	}
}

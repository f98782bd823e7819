package booking

import (
	"pitch-booking/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidPaymentStatus = errs.Validation("invalid payment status")
	ErrDepositRequired      = errs.Validation("deposit is required when payment status is DEPOSIT")
	ErrDepositExceedsPrice  = errs.Validation("deposit cannot exceed the booking price")
	ErrNegativeAmount       = errs.Validation("amounts cannot be negative")
)

type PaymentStatus int16

const (
	PaymentUnpaid PaymentStatus = iota + 1
	PaymentDeposit
	PaymentPaid
)

func (p PaymentStatus) IsValid() bool {
	switch p {
	case PaymentUnpaid, PaymentDeposit, PaymentPaid:
		return true
	default:
		return false
	}
}

func (p PaymentStatus) String() string {
	switch p {
	case PaymentUnpaid:
		return "UNPAID"
	case PaymentDeposit:
		return "DEPOSIT"
	case PaymentPaid:
		return "PAID"
	default:
		return "UNKNOWN"
	}
}

func ParsePaymentStatus(v int) (PaymentStatus, error) {
	p := PaymentStatus(v)
	if !p.IsValid() {
		return 0, ErrInvalidPaymentStatus
	}
	return p, nil
}

func validatePayment(status PaymentStatus, price decimal.Decimal, deposit *decimal.Decimal) error {
	if !status.IsValid() {
		return ErrInvalidPaymentStatus
	}
	if price.IsNegative() {
		return ErrNegativeAmount
	}
	if deposit != nil && deposit.IsNegative() {
		return ErrNegativeAmount
	}
	if status == PaymentDeposit {
		if deposit == nil || !deposit.IsPositive() {
			return ErrDepositRequired
		}
		if deposit.GreaterThan(price) {
			return ErrDepositExceedsPrice
		}
	}
	return nil
}

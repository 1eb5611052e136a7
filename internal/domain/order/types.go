package order

import "errors"

var (
	ErrInvalidStatus        = errors.New("invalid status")
	ErrInvalidTransition    = errors.New("status transition not allowed")
	ErrSlipNotAccepted      = errors.New("payment does not accept a slip in its current status")
	ErrFreeOrderHasPayment  = errors.New("free orders have no payment")
	ErrInvalidShipping      = errors.New("shipping address is incomplete")
	ErrInvalidPaymentAmount = errors.New("payment amount must be positive")
)

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusPaid      Status = "PAID"
	StatusCancelled Status = "CANCELLED"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusPaid, StatusCancelled:
		return true
	default:
		return false
	}
}

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

type PaymentStatus string

const (
	PaymentPending        PaymentStatus = "PENDING"
	PaymentAwaitingReview PaymentStatus = "AWAITING_REVIEW"
	PaymentApproved       PaymentStatus = "APPROVED"
	PaymentRejected       PaymentStatus = "REJECTED"
)

func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentPending, PaymentAwaitingReview, PaymentApproved, PaymentRejected:
		return true
	default:
		return false
	}
}

func NewPaymentStatus(s string) (PaymentStatus, error) {
	st := PaymentStatus(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

// AcceptsSlip reports whether a slip may be (re)uploaded. Re-uploading while
// awaiting review replaces the previous slip.
func (s PaymentStatus) AcceptsSlip() bool {
	return s == PaymentPending || s == PaymentAwaitingReview
}

// SlipAcceptingStatuses lists the statuses a conditional slip update may start from.
func SlipAcceptingStatuses() []PaymentStatus {
	return []PaymentStatus{PaymentPending, PaymentAwaitingReview}
}

package order

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const referencePrefix = "EL-"

type Payment struct {
	id         uuid.UUID
	orderID    uuid.UUID
	reference  string
	amount     decimal.Decimal
	status     PaymentStatus
	slipURL    *string
	reviewedBy *uuid.UUID
	reviewedAt *time.Time
	createdAt  time.Time
	updatedAt  time.Time
}

// NewPayment opens a PENDING bank-transfer payment for a non-free order.
func NewPayment(o *Order, now time.Time) (*Payment, error) {
	if o.IsFree() {
		return nil, ErrFreeOrderHasPayment
	}
	if !o.Total().IsPositive() {
		return nil, ErrInvalidPaymentAmount
	}
	return &Payment{
		id:        uuid.New(),
		orderID:   o.ID(),
		reference: Reference(o.ID()),
		amount:    o.Total(),
		status:    PaymentPending,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// Reference is the code the buyer quotes on the bank transfer.
func Reference(orderID uuid.UUID) string {
	hex := strings.ReplaceAll(orderID.String(), "-", "")
	return referencePrefix + strings.ToUpper(hex[:8])
}

type PaymentParams struct {
	ID         uuid.UUID
	OrderID    uuid.UUID
	Reference  string
	Amount     decimal.Decimal
	Status     PaymentStatus
	SlipURL    *string
	ReviewedBy *uuid.UUID
	ReviewedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func ReconstructPayment(p PaymentParams) *Payment {
	return &Payment{
		id:         p.ID,
		orderID:    p.OrderID,
		reference:  p.Reference,
		amount:     p.Amount,
		status:     p.Status,
		slipURL:    p.SlipURL,
		reviewedBy: p.ReviewedBy,
		reviewedAt: p.ReviewedAt,
		createdAt:  p.CreatedAt,
		updatedAt:  p.UpdatedAt,
	}
}

// AttachSlip stores the slip URL and moves the payment to AWAITING_REVIEW.
func (p *Payment) AttachSlip(url string, now time.Time) error {
	if !p.status.AcceptsSlip() {
		return ErrSlipNotAccepted
	}
	p.slipURL = &url
	p.status = PaymentAwaitingReview
	p.updatedAt = now
	return nil
}

func (p *Payment) Approve(reviewer uuid.UUID, now time.Time) error {
	return p.review(PaymentApproved, reviewer, now)
}

func (p *Payment) Reject(reviewer uuid.UUID, now time.Time) error {
	return p.review(PaymentRejected, reviewer, now)
}

func (p *Payment) review(to PaymentStatus, reviewer uuid.UUID, now time.Time) error {
	if p.status != PaymentAwaitingReview {
		return ErrInvalidTransition
	}
	p.status = to
	p.reviewedBy = &reviewer
	p.reviewedAt = &now
	p.updatedAt = now
	return nil
}

func (p *Payment) ID() uuid.UUID           { return p.id }
func (p *Payment) OrderID() uuid.UUID      { return p.orderID }
func (p *Payment) Reference() string       { return p.reference }
func (p *Payment) Amount() decimal.Decimal { return p.amount }
func (p *Payment) Status() PaymentStatus   { return p.status }
func (p *Payment) SlipURL() *string        { return p.slipURL }
func (p *Payment) ReviewedBy() *uuid.UUID  { return p.reviewedBy }
func (p *Payment) ReviewedAt() *time.Time  { return p.reviewedAt }
func (p *Payment) CreatedAt() time.Time    { return p.createdAt }
func (p *Payment) UpdatedAt() time.Time    { return p.updatedAt }

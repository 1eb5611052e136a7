package order

import (
	"time"

	"elearning-storefront/internal/domain/catalog"
	"elearning-storefront/internal/domain/coupon"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Order struct {
	id              uuid.UUID
	userID          uuid.UUID
	itemType        catalog.ItemType
	itemID          uuid.UUID
	subtotal        decimal.Decimal
	discount        decimal.Decimal
	total           decimal.Decimal
	couponID        *uuid.UUID
	status          Status
	shippingAddress *ShippingAddress
	createdAt       time.Time
	updatedAt       time.Time
}

// Applied is a coupon that passed coupon.Evaluate for this order.
type Applied struct {
	CouponID uuid.UUID
	Quote    coupon.Quote
}

// NewOrder prices an order for item. The total is fixed here and never
// recomputed. A zero total produces an order that is already PAID.
func NewOrder(userID uuid.UUID, item catalog.Item, applied *Applied, shipping *ShippingAddress, now time.Time) *Order {
	subtotal := item.Subtotal()
	discount := decimal.Zero
	total := subtotal
	var couponID *uuid.UUID

	if applied != nil {
		id := applied.CouponID
		couponID = &id
		discount = applied.Quote.Discount
		total = applied.Quote.FinalTotal
	}

	status := StatusPending
	if !total.IsPositive() {
		total = decimal.Zero
		status = StatusPaid
	}

	return &Order{
		id:              uuid.New(),
		userID:          userID,
		itemType:        item.Type(),
		itemID:          item.ID(),
		subtotal:        subtotal,
		discount:        discount,
		total:           total,
		couponID:        couponID,
		status:          status,
		shippingAddress: shipping,
		createdAt:       now,
		updatedAt:       now,
	}
}

type OrderParams struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	ItemType        catalog.ItemType
	ItemID          uuid.UUID
	Subtotal        decimal.Decimal
	Discount        decimal.Decimal
	Total           decimal.Decimal
	CouponID        *uuid.UUID
	Status          Status
	ShippingAddress *ShippingAddress
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func ReconstructOrder(p OrderParams) *Order {
	return &Order{
		id:              p.ID,
		userID:          p.UserID,
		itemType:        p.ItemType,
		itemID:          p.ItemID,
		subtotal:        p.Subtotal,
		discount:        p.Discount,
		total:           p.Total,
		couponID:        p.CouponID,
		status:          p.Status,
		shippingAddress: p.ShippingAddress,
		createdAt:       p.CreatedAt,
		updatedAt:       p.UpdatedAt,
	}
}

func (o *Order) IsFree() bool {
	return o.total.IsZero()
}

func (o *Order) MarkPaid(now time.Time) error {
	if o.status != StatusPending {
		return ErrInvalidTransition
	}
	o.status = StatusPaid
	o.updatedAt = now
	return nil
}

func (o *Order) Cancel(now time.Time) error {
	if o.status != StatusPending {
		return ErrInvalidTransition
	}
	o.status = StatusCancelled
	o.updatedAt = now
	return nil
}

func (o *Order) ID() uuid.UUID                     { return o.id }
func (o *Order) UserID() uuid.UUID                 { return o.userID }
func (o *Order) ItemType() catalog.ItemType        { return o.itemType }
func (o *Order) ItemID() uuid.UUID                 { return o.itemID }
func (o *Order) Subtotal() decimal.Decimal         { return o.subtotal }
func (o *Order) Discount() decimal.Decimal         { return o.discount }
func (o *Order) Total() decimal.Decimal            { return o.total }
func (o *Order) CouponID() *uuid.UUID              { return o.couponID }
func (o *Order) Status() Status                    { return o.status }
func (o *Order) ShippingAddress() *ShippingAddress { return o.shippingAddress }
func (o *Order) CreatedAt() time.Time              { return o.createdAt }
func (o *Order) UpdatedAt() time.Time              { return o.updatedAt }

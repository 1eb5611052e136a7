package coupon

import (
	"errors"
	"time"

	"elearning-storefront/internal/domain/catalog"

	"github.com/shopspring/decimal"
)

var (
	ErrNotFound      = errors.New("coupon not found")
	ErrExpired       = errors.New("coupon is outside its validity window")
	ErrLimitReached  = errors.New("coupon redemption limit reached")
	ErrNotApplicable = errors.New("coupon does not apply to this item type")
	ErrInvalidTotal  = errors.New("subtotal cannot be negative")
)

// Quote is the outcome of applying an eligible coupon.
type Quote struct {
	Subtotal   decimal.Decimal
	Discount   decimal.Decimal
	FinalTotal decimal.Decimal
}

// Evaluate is the single eligibility check shared by coupon validation and
// order creation. userRedemptions is how many times the user already redeemed
// the coupon. It has no side effects.
func Evaluate(c *Coupon, userRedemptions int, itemType catalog.ItemType, subtotal decimal.Decimal, now time.Time) (Quote, error) {
	if c == nil || !c.isActive {
		return Quote{}, ErrNotFound
	}
	if subtotal.IsNegative() {
		return Quote{}, ErrInvalidTotal
	}
	if !c.IsValidAt(now) {
		return Quote{}, ErrExpired
	}
	if c.maxRedemptions != nil && c.redemptionCount >= *c.maxRedemptions {
		return Quote{}, ErrLimitReached
	}
	if c.perUserLimit != nil && userRedemptions >= *c.perUserLimit {
		return Quote{}, ErrLimitReached
	}
	if !c.AppliesTo(itemType) {
		return Quote{}, ErrNotApplicable
	}

	discount := c.discount.AmountFor(subtotal)
	return Quote{
		Subtotal:   subtotal,
		Discount:   discount,
		FinalTotal: c.discount.Apply(subtotal),
	}, nil
}

//go:build unit || e2e

package builder

import (
	"time"

	"elearning-storefront/internal/domain/catalog"
	"elearning-storefront/internal/domain/coupon"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CouponBuilder struct {
	ID                  uuid.UUID
	Code                string
	DiscountType        string
	DiscountValue       decimal.Decimal
	ValidFrom           *time.Time
	ValidTo             *time.Time
	MaxRedemptions      *int
	PerUserLimit        *int
	ApplicableItemTypes []catalog.ItemType
	RedemptionCount     int
	IsActive            bool
}

// NewCouponBuilder defaults to SAVE10: 10% off, one redemption overall and per user,
// valid from a day ago until a day from now.
func NewCouponBuilder() *CouponBuilder {
	from := time.Now().Add(-24 * time.Hour)
	to := time.Now().Add(24 * time.Hour)
	one, perUser := 1, 1
	return &CouponBuilder{
		ID:             uuid.New(),
		Code:           "SAVE10",
		DiscountType:   string(coupon.DiscountPercent),
		DiscountValue:  decimal.NewFromInt(10),
		ValidFrom:      &from,
		ValidTo:        &to,
		MaxRedemptions: &one,
		PerUserLimit:   &perUser,
		IsActive:       true,
	}
}

func (b *CouponBuilder) With(mutate func(*CouponBuilder)) *CouponBuilder {
	mutate(b)
	return b
}

func (b *CouponBuilder) BuildDomain() (*coupon.Coupon, error) {
	discount, err := coupon.NewDiscount(b.DiscountType, b.DiscountValue)
	if err != nil {
		return nil, err
	}
	return coupon.Reconstruct(coupon.Params{
		ID:                  b.ID,
		Code:                b.Code,
		Discount:            discount,
		ValidFrom:           b.ValidFrom,
		ValidTo:             b.ValidTo,
		MaxRedemptions:      b.MaxRedemptions,
		PerUserLimit:        b.PerUserLimit,
		ApplicableItemTypes: b.ApplicableItemTypes,
		RedemptionCount:     b.RedemptionCount,
		IsActive:            b.IsActive,
	})
}

// MustBuildDomain panics on invalid builder state; tests only.
func (b *CouponBuilder) MustBuildDomain() *coupon.Coupon {
	c, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return c
}

func (b *CouponBuilder) WithCode(code string) *CouponBuilder {
	b.Code = code
	return b
}

func (b *CouponBuilder) WithFixed(amount int64) *CouponBuilder {
	b.DiscountType = string(coupon.DiscountFixed)
	b.DiscountValue = decimal.NewFromInt(amount)
	return b
}

func (b *CouponBuilder) WithPercent(percent string) *CouponBuilder {
	b.DiscountType = string(coupon.DiscountPercent)
	b.DiscountValue = decimal.RequireFromString(percent)
	return b
}

func (b *CouponBuilder) WithWindow(from, to *time.Time) *CouponBuilder {
	b.ValidFrom = from
	b.ValidTo = to
	return b
}

func (b *CouponBuilder) WithLimits(maxRedemptions, perUser *int) *CouponBuilder {
	b.MaxRedemptions = maxRedemptions
	b.PerUserLimit = perUser
	return b
}

func (b *CouponBuilder) WithRedemptions(n int) *CouponBuilder {
	b.RedemptionCount = n
	return b
}

func (b *CouponBuilder) OnlyFor(types ...catalog.ItemType) *CouponBuilder {
	b.ApplicableItemTypes = types
	return b
}

func (b *CouponBuilder) AsInactive() *CouponBuilder {
	b.IsActive = false
	return b
}

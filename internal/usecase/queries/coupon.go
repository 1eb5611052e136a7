package queries

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/queries/$GOFILE -package=queries

import (
	"context"

	"elearning-storefront/internal/domain/catalog"
	"elearning-storefront/internal/domain/coupon"
	"elearning-storefront/internal/pkg/clock"
	"elearning-storefront/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CouponReadStore interface {
	FindByCode(ctx context.Context, code coupon.Code) (*coupon.Coupon, error)
	CountUserRedemptions(ctx context.Context, couponID, userID uuid.UUID) (int, error)
}

type ValidateCouponInput struct {
	Code     string
	UserID   uuid.UUID
	ItemType string
	ItemID   uuid.UUID
	// Subtotal is used only when ItemID is nil; otherwise the catalog price wins.
	Subtotal decimal.Decimal
}

type CouponQuote struct {
	CouponID      uuid.UUID       `json:"couponId"`
	Code          string          `json:"code"`
	DiscountType  string          `json:"discountType"`
	DiscountValue decimal.Decimal `json:"discountValue"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Discount      decimal.Decimal `json:"discount"`
	FinalTotal    decimal.Decimal `json:"finalTotal"`
}

type CouponQueries interface {
	// Validate previews a coupon for an item. It never changes redemption counts.
	Validate(ctx context.Context, in ValidateCouponInput) (*CouponQuote, error)
}

type couponQueriesImpl struct {
	coupons CouponReadStore
	catalog CatalogReadStore
	clock   clock.Clock
}

func NewCouponQueries(coupons CouponReadStore, catalog CatalogReadStore, clk clock.Clock) CouponQueries {
	return &couponQueriesImpl{
		coupons: coupons,
		catalog: catalog,
		clock:   clk,
	}
}

func (q *couponQueriesImpl) Validate(ctx context.Context, in ValidateCouponInput) (*CouponQuote, error) {
	itemType, err := catalog.NewItemType(in.ItemType)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	code, err := coupon.NewCouponCode(in.Code)
	if err != nil {
		return nil, errs.Mark(coupon.ErrNotFound, errs.ErrNotFound)
	}

	subtotal := in.Subtotal
	if in.ItemID != uuid.Nil {
		item, err := q.catalog.FindItem(ctx, itemType, in.ItemID)
		if err != nil {
			return nil, notFoundAs(err, ErrItemNotFound)
		}
		subtotal = item.Subtotal()
	}

	c, err := q.coupons.FindByCode(ctx, code)
	if err != nil {
		return nil, notFoundAs(err, coupon.ErrNotFound)
	}

	used, err := q.coupons.CountUserRedemptions(ctx, c.ID(), in.UserID)
	if err != nil {
		return nil, err
	}

	quote, err := coupon.Evaluate(c, used, itemType, subtotal, q.clock.Now())
	if err != nil {
		return nil, ClassifyCouponError(err)
	}

	return &CouponQuote{
		CouponID:      c.ID(),
		Code:          c.Code().String(),
		DiscountType:  string(c.Discount().Type()),
		DiscountValue: c.Discount().Value(),
		Subtotal:      quote.Subtotal,
		Discount:      quote.Discount,
		FinalTotal:    quote.FinalTotal,
	}, nil
}

// ClassifyCouponError attaches the HTTP class of a coupon.Evaluate failure.
func ClassifyCouponError(err error) error {
	switch {
	case errs.Is(err, coupon.ErrNotFound):
		return errs.Mark(err, errs.ErrNotFound)
	case errs.Is(err, coupon.ErrInvalidTotal):
		return errs.Mark(err, errs.ErrValidation)
	case errs.Is(err, coupon.ErrExpired), errs.Is(err, coupon.ErrLimitReached), errs.Is(err, coupon.ErrNotApplicable):
		return errs.Mark(err, errs.ErrConflict)
	default:
		return err
	}
}

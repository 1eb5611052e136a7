package commands

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/commands/$GOFILE -package=commands

import (
	"context"
	"log/slog"
	"time"

	"elearning-storefront/internal/domain/catalog"
	"elearning-storefront/internal/domain/coupon"
	"elearning-storefront/internal/domain/enrollment"
	"elearning-storefront/internal/domain/order"
	"elearning-storefront/internal/infra"
	"elearning-storefront/internal/pkg/clock"
	"elearning-storefront/internal/pkg/errs"
	"elearning-storefront/internal/pkg/session"
	"elearning-storefront/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidOrderInput  = errs.New("invalid order input")
	ErrOrderItemNotFound  = errs.New("item to order not found")
	ErrCouponInvalid      = errs.New("coupon rejected at checkout")
	ErrOrderCreateFailure = errs.New("order could not be created")
)

type ShippingInput struct {
	Name       string
	Phone      string
	Address    string
	District   string
	Province   string
	PostalCode string
}

type CreateOrderInput struct {
	ItemType   string
	ItemID     uuid.UUID
	CouponCode string
	Shipping   *ShippingInput
}

type CreateOrderResult struct {
	OrderID    uuid.UUID
	PaymentID  *uuid.UUID
	PaymentRef string
	Total      decimal.Decimal
	IsFree     bool
}

type OrderCommands interface {
	// Create prices the item from the catalog, re-validates the coupon under a
	// row lock and persists the order with its payment or enrollment atomically.
	Create(ctx context.Context, sess session.Session, in CreateOrderInput) (*CreateOrderResult, error)
}

type orderCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewOrderCommands(uow shared.UnitOfWork, clk clock.Clock) OrderCommands {
	return &orderCommandsImpl{
		uow:   uow,
		clock: clk,
	}
}

func (c *orderCommandsImpl) Create(ctx context.Context, sess session.Session, in CreateOrderInput) (*CreateOrderResult, error) {
	itemType, err := catalog.NewItemType(in.ItemType)
	if err != nil {
		return nil, errs.Mark(errs.Mark(err, ErrInvalidOrderInput), errs.ErrValidation)
	}
	if in.ItemID == uuid.Nil {
		return nil, errs.Mark(ErrInvalidOrderInput, errs.ErrValidation)
	}

	var shipping *order.ShippingAddress
	if in.Shipping != nil {
		s := in.Shipping
		shipping, err = order.NewShippingAddress(s.Name, s.Phone, s.Address, s.District, s.Province, s.PostalCode)
		if err != nil {
			return nil, errs.Mark(errs.Mark(err, ErrInvalidOrderInput), errs.ErrValidation)
		}
	}

	var result *CreateOrderResult
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := c.clock.Now()

		item, err := tx.Reads().Item(ctx, itemType, in.ItemID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(ErrOrderItemNotFound, errs.ErrNotFound)
			}
			return err
		}

		var applied *order.Applied
		if in.CouponCode != "" {
			applied, err = c.applyCoupon(ctx, tx, sess.UserID, in.CouponCode, item, now)
			if err != nil {
				return err
			}
		}

		o := order.NewOrder(sess.UserID, item, applied, shipping, now)
		if err := tx.Orders().Create(ctx, o); err != nil {
			return err
		}

		if applied != nil {
			if err := tx.Coupons().Redeem(ctx, applied.CouponID, sess.UserID, o.ID(), now); err != nil {
				if infra.IsKind(err, infra.KindConflict) {
					return couponInvalid(coupon.ErrLimitReached)
				}
				return err
			}
		}

		result = &CreateOrderResult{
			OrderID: o.ID(),
			Total:   o.Total(),
			IsFree:  o.IsFree(),
		}

		if o.IsFree() {
			orderID := o.ID()
			_, err := tx.Enrollments().Grant(ctx, enrollment.Grant(sess.UserID, itemType, item.ID(), &orderID, now))
			return err
		}

		p, err := order.NewPayment(o, now)
		if err != nil {
			return errs.Mark(err, ErrOrderCreateFailure)
		}
		if err := tx.Payments().Create(ctx, p); err != nil {
			return err
		}
		paymentID := p.ID()
		result.PaymentID = &paymentID
		result.PaymentRef = p.Reference()
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("order created",
		"order_id", result.OrderID,
		"user_id", sess.UserID,
		"total", result.Total.String(),
		"is_free", result.IsFree)
	return result, nil
}

// applyCoupon locks the coupon and evaluates it against the authoritative subtotal.
func (c *orderCommandsImpl) applyCoupon(ctx context.Context, tx shared.Tx, userID uuid.UUID, rawCode string, item catalog.Item, now time.Time) (*order.Applied, error) {
	code, err := coupon.NewCouponCode(rawCode)
	if err != nil {
		return nil, couponInvalid(coupon.ErrNotFound)
	}

	cp, err := tx.Coupons().FindByCodeForUpdate(ctx, code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, couponInvalid(coupon.ErrNotFound)
		}
		return nil, err
	}

	used, err := tx.Coupons().CountUserRedemptions(ctx, cp.ID(), userID)
	if err != nil {
		return nil, err
	}

	quote, err := coupon.Evaluate(cp, used, item.Type(), item.Subtotal(), now)
	if err != nil {
		return nil, couponInvalid(err)
	}
	return &order.Applied{CouponID: cp.ID(), Quote: quote}, nil
}

// couponInvalid keeps the eligibility reason visible through errs.Is.
func couponInvalid(reason error) error {
	return errs.Mark(errs.Mark(reason, ErrCouponInvalid), errs.ErrConflict)
}

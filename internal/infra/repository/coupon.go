package repository

import (
	"context"
	"time"

	"elearning-storefront/internal/domain/coupon"
	"elearning-storefront/internal/infra"
	"elearning-storefront/internal/infra/converter"
	"elearning-storefront/internal/infra/query"
	"elearning-storefront/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type CouponWriteQueries interface {
	GetCouponByCodeForUpdate(ctx context.Context, db query.DBTX, code string) (query.Coupons, error)
	CountUserRedemptions(ctx context.Context, db query.DBTX, couponID, userID uuid.UUID) (int64, error)
	CreateCouponRedemption(ctx context.Context, db query.DBTX, arg query.CreateCouponRedemptionParams) error
	IncrementCouponRedemption(ctx context.Context, db query.DBTX, id uuid.UUID) (int64, error)
}

type CouponRepository struct {
	queries CouponWriteQueries
	db      query.DBTX
}

func NewCouponRepository(queries CouponWriteQueries, db query.DBTX) *CouponRepository {
	return &CouponRepository{
		queries: queries,
		db:      db,
	}
}

func (r *CouponRepository) FindByCodeForUpdate(ctx context.Context, code coupon.Code) (*coupon.Coupon, error) {
	row, err := r.queries.GetCouponByCodeForUpdate(ctx, r.db, code.String())
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock coupon by code", err)
	}

	c, err := converter.CouponToDomain(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert coupon row", err)
	}
	return c, nil
}

func (r *CouponRepository) CountUserRedemptions(ctx context.Context, couponID, userID uuid.UUID) (int, error) {
	n, err := r.queries.CountUserRedemptions(ctx, r.db, couponID, userID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count coupon redemptions", err)
	}
	return int(n), nil
}

func (r *CouponRepository) Redeem(ctx context.Context, couponID, userID, orderID uuid.UUID, at time.Time) error {
	affected, err := r.queries.IncrementCouponRedemption(ctx, r.db, couponID)
	if err != nil {
		return infra.WrapRepoErr("failed to increment coupon redemption count", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("coupon redemption cap reached", nil, infra.KindConflict)
	}

	err = r.queries.CreateCouponRedemption(ctx, r.db, query.CreateCouponRedemptionParams{
		CouponID:   couponID,
		UserID:     userID,
		OrderID:    orderID,
		RedeemedAt: at,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to record coupon redemption", err)
	}
	return nil
}

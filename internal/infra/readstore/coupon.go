package readstore

import (
	"context"

	"elearning-storefront/internal/domain/coupon"
	"elearning-storefront/internal/infra"
	"elearning-storefront/internal/infra/converter"
	"elearning-storefront/internal/infra/query"

	"github.com/google/uuid"
)

type CouponReadQueries interface {
	GetCouponByCode(ctx context.Context, db query.DBTX, code string) (query.Coupons, error)
	CountUserRedemptions(ctx context.Context, db query.DBTX, couponID, userID uuid.UUID) (int64, error)
}

type CouponReadStore struct {
	queries CouponReadQueries
	db      query.DBTX
}

func NewCouponReadStore(queries CouponReadQueries, db query.DBTX) *CouponReadStore {
	return &CouponReadStore{
		queries: queries,
		db:      db,
	}
}

// FindByCode reads without locking; order creation re-reads under FOR UPDATE.
func (r *CouponReadStore) FindByCode(ctx context.Context, code coupon.Code) (*coupon.Coupon, error) {
	row, err := r.queries.GetCouponByCode(ctx, r.db, code.String())
	if err != nil {
		return nil, lookupErr("coupon", err)
	}

	c, err := converter.CouponToDomain(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert coupon row", err)
	}
	return c, nil
}

func (r *CouponReadStore) CountUserRedemptions(ctx context.Context, couponID, userID uuid.UUID) (int, error) {
	n, err := r.queries.CountUserRedemptions(ctx, r.db, couponID, userID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count coupon redemptions", err)
	}
	return int(n), nil
}

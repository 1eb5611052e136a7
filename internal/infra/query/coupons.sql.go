package query

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const couponColumns = `id, code, discount_type, discount_value, valid_from, valid_to, max_redemptions,
       per_user_limit, applicable_item_types, redemption_count, is_active`

func scanCoupon(row interface{ Scan(...any) error }) (Coupons, error) {
	var i Coupons
	err := row.Scan(
		&i.ID,
		&i.Code,
		&i.DiscountType,
		&i.DiscountValue,
		&i.ValidFrom,
		&i.ValidTo,
		&i.MaxRedemptions,
		&i.PerUserLimit,
		&i.ApplicableItemTypes,
		&i.RedemptionCount,
		&i.IsActive,
	)
	return i, err
}

const getCouponByCode = `-- name: GetCouponByCode :one
SELECT ` + couponColumns + ` FROM coupons WHERE code = $1
`

func (q *Queries) GetCouponByCode(ctx context.Context, db DBTX, code string) (Coupons, error) {
	return scanCoupon(db.QueryRow(ctx, getCouponByCode, code))
}

const getCouponByCodeForUpdate = `-- name: GetCouponByCodeForUpdate :one
SELECT ` + couponColumns + ` FROM coupons WHERE code = $1 FOR UPDATE
`

// GetCouponByCodeForUpdate locks the coupon row until the surrounding
// transaction ends, serialising concurrent redemptions of one code.
func (q *Queries) GetCouponByCodeForUpdate(ctx context.Context, db DBTX, code string) (Coupons, error) {
	return scanCoupon(db.QueryRow(ctx, getCouponByCodeForUpdate, code))
}

const countUserRedemptions = `-- name: CountUserRedemptions :one
SELECT COUNT(*) FROM coupon_redemptions WHERE coupon_id = $1 AND user_id = $2
`

func (q *Queries) CountUserRedemptions(ctx context.Context, db DBTX, couponID, userID uuid.UUID) (int64, error) {
	var count int64
	err := db.QueryRow(ctx, countUserRedemptions, couponID, userID).Scan(&count)
	return count, err
}

const createCouponRedemption = `-- name: CreateCouponRedemption :exec
INSERT INTO coupon_redemptions (coupon_id, user_id, order_id, redeemed_at)
VALUES ($1, $2, $3, $4)
`

type CreateCouponRedemptionParams struct {
	CouponID   uuid.UUID
	UserID     uuid.UUID
	OrderID    uuid.UUID
	RedeemedAt time.Time
}

func (q *Queries) CreateCouponRedemption(ctx context.Context, db DBTX, arg CreateCouponRedemptionParams) error {
	_, err := db.Exec(ctx, createCouponRedemption, arg.CouponID, arg.UserID, arg.OrderID, arg.RedeemedAt)
	return err
}

const incrementCouponRedemption = `-- name: IncrementCouponRedemption :execrows
UPDATE coupons
SET redemption_count = redemption_count + 1
WHERE id = $1 AND (max_redemptions IS NULL OR redemption_count < max_redemptions)
`

// IncrementCouponRedemption affects no row once the global cap is reached.
func (q *Queries) IncrementCouponRedemption(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	result, err := db.Exec(ctx, incrementCouponRedemption, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

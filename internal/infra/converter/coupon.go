package converter

import (
	"elearning-storefront/internal/domain/catalog"
	"elearning-storefront/internal/domain/coupon"
	"elearning-storefront/internal/infra/query"
	"elearning-storefront/internal/pkg/pgconv"
)

func CouponToDomain(row query.Coupons) (*coupon.Coupon, error) {
	discount, err := coupon.NewDiscount(row.DiscountType, row.DiscountValue)
	if err != nil {
		return nil, err
	}

	types := make([]catalog.ItemType, 0, len(row.ApplicableItemTypes))
	for _, t := range row.ApplicableItemTypes {
		types = append(types, catalog.ItemType(t))
	}

	return coupon.Reconstruct(coupon.Params{
		ID:                  row.ID,
		Code:                row.Code,
		Discount:            discount,
		ValidFrom:           pgconv.TimePtrFromPgtype(row.ValidFrom),
		ValidTo:             pgconv.TimePtrFromPgtype(row.ValidTo),
		MaxRedemptions:      pgconv.IntPtrFromPgtype(row.MaxRedemptions),
		PerUserLimit:        pgconv.IntPtrFromPgtype(row.PerUserLimit),
		ApplicableItemTypes: types,
		RedemptionCount:     int(row.RedemptionCount),
		IsActive:            row.IsActive,
	})
}

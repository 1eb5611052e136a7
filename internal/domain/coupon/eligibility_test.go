//go:build unit

package coupon_test

import (
	"testing"
	"time"

	"elearning-storefront/internal/domain/catalog"
	"elearning-storefront/internal/domain/coupon"
	"elearning-storefront/internal/pkg/ptr"
	"elearning-storefront/internal/testutil/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var decimalCmp = cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })

type testCase struct {
	name            string
	mutate          func(*builder.CouponBuilder)
	userRedemptions int
	itemType        catalog.ItemType
	subtotal        string
	want            coupon.Quote
	errIs           error
}

func TestEvaluate(t *testing.T) {
	now := time.Now()
	past := now.Add(-48 * time.Hour)
	yesterday := now.Add(-24 * time.Hour)
	tomorrow := now.Add(24 * time.Hour)

	t.Run("SAVE10 on 1000 gives 900", func(t *testing.T) {
		c := builder.NewCouponBuilder().MustBuildDomain()
		got, err := coupon.Evaluate(c, 0, catalog.ItemTypeCourse, decimal.NewFromInt(1000), now)
		require.NoError(t, err)

		want := coupon.Quote{
			Subtotal:   decimal.NewFromInt(1000),
			Discount:   decimal.NewFromInt(100),
			FinalTotal: decimal.NewFromInt(900),
		}
		if diff := cmp.Diff(want, got, decimalCmp); diff != "" {
			t.Errorf("Quote mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("eligibility failures", func(t *testing.T) {
		runCases(t, now, []testCase{
			{
				name:   "inactive coupon is not found",
				mutate: func(b *builder.CouponBuilder) { b.AsInactive() },
				errIs:  coupon.ErrNotFound,
			},
			{
				name:   "window ended",
				mutate: func(b *builder.CouponBuilder) { b.WithWindow(&past, &yesterday) },
				errIs:  coupon.ErrExpired,
			},
			{
				name:   "window not started",
				mutate: func(b *builder.CouponBuilder) { b.WithWindow(&tomorrow, nil) },
				errIs:  coupon.ErrExpired,
			},
			{
				name:   "global limit reached",
				mutate: func(b *builder.CouponBuilder) { b.WithLimits(ptr.To(5), nil).WithRedemptions(5) },
				errIs:  coupon.ErrLimitReached,
			},
			{
				name:            "per-user limit reached",
				mutate:          func(b *builder.CouponBuilder) { b.WithLimits(ptr.To(100), ptr.To(2)).WithRedemptions(2) },
				userRedemptions: 2,
				errIs:           coupon.ErrLimitReached,
			},
			{
				name:     "item type excluded",
				mutate:   func(b *builder.CouponBuilder) { b.OnlyFor(catalog.ItemTypeEbook) },
				itemType: catalog.ItemTypeCourse,
				errIs:    coupon.ErrNotApplicable,
			},
			{
				name:     "negative subtotal",
				subtotal: "-1",
				errIs:    coupon.ErrInvalidTotal,
			},
		})
	})

	t.Run("discount computation", func(t *testing.T) {
		runCases(t, now, []testCase{
			{
				name:     "percent rounds half up",
				mutate:   func(b *builder.CouponBuilder) { b.WithPercent("15") },
				subtotal: "99", // 14.85 -> 15
				want:     quote("99", "15", "84"),
			},
			{
				name:     "percent exact half rounds up",
				mutate:   func(b *builder.CouponBuilder) { b.WithPercent("50") },
				subtotal: "5", // 2.5 -> 3
				want:     quote("5", "3", "2"),
			},
			{
				name:     "percent below half rounds down",
				mutate:   func(b *builder.CouponBuilder) { b.WithPercent("10") },
				subtotal: "14", // 1.4 -> 1
				want:     quote("14", "1", "13"),
			},
			{
				name:     "fixed below subtotal",
				mutate:   func(b *builder.CouponBuilder) { b.WithFixed(200) },
				subtotal: "1000",
				want:     quote("1000", "200", "800"),
			},
			{
				name:     "fixed capped at subtotal",
				mutate:   func(b *builder.CouponBuilder) { b.WithFixed(500) },
				subtotal: "300",
				want:     quote("300", "300", "0"),
			},
			{
				name:     "100 percent makes it free",
				mutate:   func(b *builder.CouponBuilder) { b.WithPercent("100") },
				subtotal: "1290",
				want:     quote("1290", "1290", "0"),
			},
			{
				name:     "open window and no limits",
				mutate:   func(b *builder.CouponBuilder) { b.WithWindow(nil, nil).WithLimits(nil, nil).WithRedemptions(1000) },
				subtotal: "1000",
				want:     quote("1000", "100", "900"),
			},
			{
				name:     "applicable list includes item",
				mutate:   func(b *builder.CouponBuilder) { b.OnlyFor(catalog.ItemTypeEbook, catalog.ItemTypeCourse) },
				itemType: catalog.ItemTypeEbook,
				subtotal: "350",
				want:     quote("350", "35", "315"),
			},
		})
	})
}

func TestEvaluate_DoesNotMutateCoupon(t *testing.T) {
	c := builder.NewCouponBuilder().MustBuildDomain()
	before := c.RedemptionCount()

	_, err := coupon.Evaluate(c, 0, catalog.ItemTypeCourse, decimal.NewFromInt(1000), time.Now())
	require.NoError(t, err)
	_, err = coupon.Evaluate(c, 0, catalog.ItemTypeCourse, decimal.NewFromInt(1000), time.Now())
	require.NoError(t, err)

	assert.Equal(t, before, c.RedemptionCount())
}

func TestNewCouponCode(t *testing.T) {
	code, err := coupon.NewCouponCode("  Save10 ")
	require.NoError(t, err)
	assert.Equal(t, coupon.Code("Save10"), code, "case must be preserved for exact matching")

	_, err = coupon.NewCouponCode("   ")
	assert.ErrorIs(t, err, coupon.ErrInvalidCouponCode)

	_, err = coupon.NewCouponCode("SAVE 10")
	assert.ErrorIs(t, err, coupon.ErrInvalidCouponCode)
}

func TestNewDiscount(t *testing.T) {
	_, err := coupon.NewDiscount("percent", decimal.NewFromInt(101))
	assert.ErrorIs(t, err, coupon.ErrInvalidDiscountPercent)

	_, err = coupon.NewDiscount("fixed", decimal.NewFromInt(-1))
	assert.ErrorIs(t, err, coupon.ErrInvalidDiscountAmount)

	_, err = coupon.NewDiscount("bogo", decimal.NewFromInt(1))
	assert.ErrorIs(t, err, coupon.ErrInvalidDiscountType)
}

func quote(subtotal, discount, final string) coupon.Quote {
	return coupon.Quote{
		Subtotal:   decimal.RequireFromString(subtotal),
		Discount:   decimal.RequireFromString(discount),
		FinalTotal: decimal.RequireFromString(final),
	}
}

func runCases(t *testing.T, now time.Time, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewCouponBuilder()
			if tc.mutate != nil {
				tc.mutate(b)
			}
			c, err := b.BuildDomain()
			require.NoError(t, err)

			itemType := tc.itemType
			if itemType == "" {
				itemType = catalog.ItemTypeCourse
			}
			subtotal := "1000"
			if tc.subtotal != "" {
				subtotal = tc.subtotal
			}

			got, err := coupon.Evaluate(c, tc.userRedemptions, itemType, decimal.RequireFromString(subtotal), now)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			if diff := cmp.Diff(tc.want, got, decimalCmp); diff != "" {
				t.Errorf("Quote mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

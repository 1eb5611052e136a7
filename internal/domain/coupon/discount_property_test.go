//go:build unit

package coupon_test

import (
	"testing"

	"elearning-storefront/internal/domain/coupon"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/shopspring/decimal"
)

func TestDiscountProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500
	properties := gopter.NewProperties(parameters)

	properties.Property("percent discount never exceeds subtotal and totals add up", prop.ForAll(
		func(subtotal int64, percent int64) bool {
			d, err := coupon.NewPercentageDiscount(decimal.NewFromInt(percent))
			if err != nil {
				return false
			}
			s := decimal.NewFromInt(subtotal)
			amount := d.AmountFor(s)
			final := d.Apply(s)

			return !amount.IsNegative() &&
				amount.LessThanOrEqual(s) &&
				!final.IsNegative() &&
				amount.Add(final).Equal(s) &&
				amount.Equal(amount.Round(0))
		},
		gen.Int64Range(0, 10_000_000),
		gen.Int64Range(0, 100),
	))

	properties.Property("fixed discount is capped at subtotal", prop.ForAll(
		func(subtotal int64, amount int64) bool {
			d, err := coupon.NewFixedDiscount(decimal.NewFromInt(amount))
			if err != nil {
				return false
			}
			s := decimal.NewFromInt(subtotal)
			got := d.AmountFor(s)
			want := decimal.Min(decimal.NewFromInt(amount), s)

			return got.Equal(want) && d.Apply(s).Equal(s.Sub(want))
		},
		gen.Int64Range(0, 10_000_000),
		gen.Int64Range(0, 20_000_000),
	))

	properties.Property("percent discount is monotonic in the percentage", prop.ForAll(
		func(subtotal int64, p1 int64, p2 int64) bool {
			if p1 > p2 {
				p1, p2 = p2, p1
			}
			d1, _ := coupon.NewPercentageDiscount(decimal.NewFromInt(p1))
			d2, _ := coupon.NewPercentageDiscount(decimal.NewFromInt(p2))
			s := decimal.NewFromInt(subtotal)
			return d1.AmountFor(s).LessThanOrEqual(d2.AmountFor(s))
		},
		gen.Int64Range(0, 1_000_000),
		gen.Int64Range(0, 100),
		gen.Int64Range(0, 100),
	))

	properties.TestingRun(t)
}

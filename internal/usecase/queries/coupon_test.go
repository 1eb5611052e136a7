//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"elearning-storefront/internal/domain/catalog"
	"elearning-storefront/internal/domain/coupon"
	"elearning-storefront/internal/infra"
	"elearning-storefront/internal/pkg/clock"
	"elearning-storefront/internal/pkg/errs"
	"elearning-storefront/internal/testutil/builder"
	"elearning-storefront/internal/usecase/queries"
	queriesmock "elearning-storefront/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCouponQueries_Validate(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	course := builder.NewCourseBuilder().WithPrice(1200).BuildDomain()
	notFound := infra.WrapRepoErr("not found", errs.New("no rows"), infra.KindNotFound)

	type mocks struct {
		coupons *queriesmock.MockCouponReadStore
		catalog *queriesmock.MockCatalogReadStore
	}

	tests := []struct {
		name         string
		input        queries.ValidateCouponInput
		setup        func(m mocks)
		wantDiscount string
		wantTotal    string
		wantClass    error
		wantReason   error
	}{
		{
			name:  "catalog price wins over the client subtotal",
			input: queries.ValidateCouponInput{Code: " SAVE10 ", UserID: userID, ItemType: "course", ItemID: course.ID(), Subtotal: decimal.NewFromInt(1)},
			setup: func(m mocks) {
				c := builder.NewCouponBuilder().MustBuildDomain()
				m.catalog.EXPECT().FindItem(gomock.Any(), catalog.ItemTypeCourse, course.ID()).Return(course, nil)
				m.coupons.EXPECT().FindByCode(gomock.Any(), coupon.Code("SAVE10")).Return(c, nil)
				m.coupons.EXPECT().CountUserRedemptions(gomock.Any(), c.ID(), userID).Return(0, nil)
			},
			wantDiscount: "120",
			wantTotal:    "1080",
		},
		{
			name:  "subtotal is used without an item",
			input: queries.ValidateCouponInput{Code: "FLAT100", UserID: userID, ItemType: "ebook", Subtotal: decimal.NewFromInt(80)},
			setup: func(m mocks) {
				c := builder.NewCouponBuilder().WithCode("FLAT100").WithFixed(100).MustBuildDomain()
				m.coupons.EXPECT().FindByCode(gomock.Any(), gomock.Any()).Return(c, nil)
				m.coupons.EXPECT().CountUserRedemptions(gomock.Any(), gomock.Any(), gomock.Any()).Return(0, nil)
			},
			wantDiscount: "80",
			wantTotal:    "0",
		},
		{
			name:       "unknown item type",
			input:      queries.ValidateCouponInput{Code: "SAVE10", UserID: userID, ItemType: "exam", Subtotal: decimal.NewFromInt(100)},
			setup:      func(mocks) {},
			wantClass:  errs.ErrValidation,
			wantReason: catalog.ErrInvalidItemType,
		},
		{
			name:  "item is not for sale",
			input: queries.ValidateCouponInput{Code: "SAVE10", UserID: userID, ItemType: "course", ItemID: uuid.New()},
			setup: func(m mocks) {
				m.catalog.EXPECT().FindItem(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, notFound)
			},
			wantClass:  errs.ErrNotFound,
			wantReason: queries.ErrItemNotFound,
		},
		{
			name:  "unknown code",
			input: queries.ValidateCouponInput{Code: "NOPE", UserID: userID, ItemType: "course", Subtotal: decimal.NewFromInt(100)},
			setup: func(m mocks) {
				m.coupons.EXPECT().FindByCode(gomock.Any(), gomock.Any()).Return(nil, notFound)
			},
			wantClass:  errs.ErrNotFound,
			wantReason: coupon.ErrNotFound,
		},
		{
			name:  "caller already used the coupon",
			input: queries.ValidateCouponInput{Code: "SAVE10", UserID: userID, ItemType: "course", Subtotal: decimal.NewFromInt(100)},
			setup: func(m mocks) {
				m.coupons.EXPECT().FindByCode(gomock.Any(), gomock.Any()).Return(builder.NewCouponBuilder().MustBuildDomain(), nil)
				m.coupons.EXPECT().CountUserRedemptions(gomock.Any(), gomock.Any(), gomock.Any()).Return(1, nil)
			},
			wantClass:  errs.ErrConflict,
			wantReason: coupon.ErrLimitReached,
		},
		{
			name:  "coupon limited to ebooks",
			input: queries.ValidateCouponInput{Code: "SAVE10", UserID: userID, ItemType: "course", Subtotal: decimal.NewFromInt(100)},
			setup: func(m mocks) {
				c := builder.NewCouponBuilder().OnlyFor(catalog.ItemTypeEbook).MustBuildDomain()
				m.coupons.EXPECT().FindByCode(gomock.Any(), gomock.Any()).Return(c, nil)
				m.coupons.EXPECT().CountUserRedemptions(gomock.Any(), gomock.Any(), gomock.Any()).Return(0, nil)
			},
			wantClass:  errs.ErrConflict,
			wantReason: coupon.ErrNotApplicable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			m := mocks{
				coupons: queriesmock.NewMockCouponReadStore(ctrl),
				catalog: queriesmock.NewMockCatalogReadStore(ctrl),
			}
			tt.setup(m)
			q := queries.NewCouponQueries(m.coupons, m.catalog, clock.NewMockClock(time.Now()))

			quote, err := q.Validate(ctx, tt.input)

			if tt.wantClass != nil {
				require.Error(t, err)
				assert.Nil(t, quote)
				assert.Equal(t, tt.wantClass, errs.Class(err))
				assert.True(t, errs.Is(err, tt.wantReason), "want %v in %v", tt.wantReason, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tt.wantDiscount).Equal(quote.Discount), "discount %s", quote.Discount)
			assert.True(t, decimal.RequireFromString(tt.wantTotal).Equal(quote.FinalTotal), "total %s", quote.FinalTotal)
		})
	}
}

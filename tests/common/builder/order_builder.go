//go:build unit || e2e

package builder

import (
	"time"

	"elearning-storefront/internal/domain/order"
	"elearning-storefront/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderViewBuilder struct {
	view queries.OrderView
}

func NewOrderViewBuilder(userID uuid.UUID) *OrderViewBuilder {
	id := uuid.New()
	return &OrderViewBuilder{view: queries.OrderView{
		ID:        id,
		UserID:    userID,
		ItemType:  "course",
		ItemID:    uuid.New(),
		ItemTitle: "คณิตศาสตร์ ม.4",
		Subtotal:  decimal.NewFromInt(1000),
		Discount:  decimal.Zero,
		Total:     decimal.NewFromInt(1000),
		Status:    string(order.StatusPending),
		Payment: &queries.PaymentView{
			ID:        uuid.New(),
			Reference: order.Reference(id),
			Status:    string(order.PaymentPending),
		},
		CreatedAt: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
	}}
}

func (b *OrderViewBuilder) WithDiscount(discount int64) *OrderViewBuilder {
	b.view.Discount = decimal.NewFromInt(discount)
	b.view.Total = b.view.Subtotal.Sub(b.view.Discount)
	return b
}

func (b *OrderViewBuilder) Build() *queries.OrderView {
	v := b.view
	return &v
}

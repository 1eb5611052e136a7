package request

import (
	"elearning-storefront/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ValidateCouponRequest ignores any userId in the body; the caller comes from the session.
type ValidateCouponRequest struct {
	Code     string          `json:"code" binding:"required,max=64"`
	ItemType string          `json:"itemType" binding:"required"`
	ItemID   *uuid.UUID      `json:"itemId"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

func (r *ValidateCouponRequest) ToInput(userID uuid.UUID) queries.ValidateCouponInput {
	in := queries.ValidateCouponInput{
		Code:     r.Code,
		UserID:   userID,
		ItemType: r.ItemType,
		Subtotal: r.Subtotal,
	}
	if r.ItemID != nil {
		in.ItemID = *r.ItemID
	}
	return in
}

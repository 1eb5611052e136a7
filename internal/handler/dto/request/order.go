package request

import (
	"elearning-storefront/internal/usecase/commands"

	"github.com/google/uuid"
)

type ShippingAddressRequest struct {
	Name       string `json:"name" binding:"max=200"`
	Phone      string `json:"phone" binding:"max=32"`
	Address    string `json:"address" binding:"max=500"`
	District   string `json:"district" binding:"max=100"`
	Province   string `json:"province" binding:"max=100"`
	PostalCode string `json:"postalCode" binding:"max=10"`
}

type CreateOrderRequest struct {
	ItemType        string                  `json:"itemType" binding:"required"`
	ItemID          uuid.UUID               `json:"itemId" binding:"required"`
	CouponCode      string                  `json:"couponCode" binding:"max=64"`
	ShippingAddress *ShippingAddressRequest `json:"shippingAddress"`
}

func (r *CreateOrderRequest) ToInput() commands.CreateOrderInput {
	in := commands.CreateOrderInput{
		ItemType:   r.ItemType,
		ItemID:     r.ItemID,
		CouponCode: r.CouponCode,
	}
	if s := r.ShippingAddress; s != nil {
		in.Shipping = &commands.ShippingInput{
			Name:       s.Name,
			Phone:      s.Phone,
			Address:    s.Address,
			District:   s.District,
			Province:   s.Province,
			PostalCode: s.PostalCode,
		}
	}
	return in
}

package response

import (
	"time"

	"elearning-storefront/internal/domain/order"
	"elearning-storefront/internal/usecase/commands"
	"elearning-storefront/internal/usecase/queries"

	"github.com/google/uuid"
)

type CouponQuoteResponse struct {
	CouponID      uuid.UUID `json:"couponId"`
	Code          string    `json:"code"`
	DiscountType  string    `json:"discountType"`
	DiscountValue float64   `json:"discountValue"`
	Subtotal      float64   `json:"subtotal"`
	Discount      float64   `json:"discount"`
	FinalTotal    float64   `json:"finalTotal"`
}

type CreateOrderResponse struct {
	OrderID    uuid.UUID  `json:"orderId"`
	PaymentID  *uuid.UUID `json:"paymentId,omitempty"`
	PaymentRef string     `json:"paymentRef,omitempty"`
	Total      float64    `json:"total"`
	IsFree     bool       `json:"isFree"`
}

type OrderResponse struct {
	ID              uuid.UUID              `json:"id"`
	UserID          uuid.UUID              `json:"userId"`
	ItemType        string                 `json:"itemType"`
	ItemID          uuid.UUID              `json:"itemId"`
	ItemTitle       string                 `json:"itemTitle"`
	Subtotal        float64                `json:"subtotal"`
	Discount        float64                `json:"discount"`
	Total           float64                `json:"total"`
	Status          string                 `json:"status"`
	ShippingAddress *order.ShippingAddress `json:"shippingAddress,omitempty"`
	Payment         *queries.PaymentView   `json:"payment,omitempty"`
	CreatedAt       time.Time              `json:"createdAt"`
}

type CheckoutResponse struct {
	Order OrderResponse       `json:"order"`
	Bank  queries.BankDisplay `json:"bank"`
}

type SlipResponse struct {
	OrderID   uuid.UUID `json:"orderId"`
	PaymentID uuid.UUID `json:"paymentId"`
	SlipURL   string    `json:"slipUrl"`
	Status    string    `json:"status"`
	Message   string    `json:"message"`
}

type ReviewResponse struct {
	PaymentID   uuid.UUID `json:"paymentId"`
	OrderID     uuid.UUID `json:"orderId"`
	Status      string    `json:"status"`
	OrderStatus string    `json:"orderStatus"`
}

func FromCouponQuote(q *queries.CouponQuote) (CouponQuoteResponse, error) {
	var r CouponQuoteResponse
	err := copyInto(&r, q)
	return r, err
}

func FromCreateOrderResult(res *commands.CreateOrderResult) (CreateOrderResponse, error) {
	var r CreateOrderResponse
	err := copyInto(&r, res)
	return r, err
}

func FromOrderView(v *queries.OrderView) (OrderResponse, error) {
	var r OrderResponse
	err := copyInto(&r, v)
	return r, err
}

func FromOrderViews(vs []queries.OrderView) ([]OrderResponse, error) {
	out := make([]OrderResponse, 0, len(vs))
	for i := range vs {
		r, err := FromOrderView(&vs[i])
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

func FromCheckoutView(v *queries.CheckoutView) (CheckoutResponse, error) {
	o, err := FromOrderView(&v.Order)
	if err != nil {
		return CheckoutResponse{}, err
	}
	return CheckoutResponse{Order: o, Bank: v.Bank}, nil
}

func FromSlipResult(res *commands.SlipResult, msg string) SlipResponse {
	return SlipResponse{
		OrderID:   res.OrderID,
		PaymentID: res.PaymentID,
		SlipURL:   res.SlipURL,
		Status:    string(res.Status),
		Message:   msg,
	}
}

func FromReviewResult(res *commands.ReviewResult) ReviewResponse {
	return ReviewResponse{
		PaymentID:   res.PaymentID,
		OrderID:     res.OrderID,
		Status:      string(res.Status),
		OrderStatus: string(res.OrderStatus),
	}
}

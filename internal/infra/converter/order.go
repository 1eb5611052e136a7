package converter

import (
	"encoding/json"

	"elearning-storefront/internal/domain/catalog"
	"elearning-storefront/internal/domain/order"
	"elearning-storefront/internal/infra/query"
	"elearning-storefront/internal/pkg/pgconv"
)

func OrderToCreateParams(o *order.Order) (query.CreateOrderParams, error) {
	var shipping []byte
	if addr := o.ShippingAddress(); addr != nil {
		b, err := json.Marshal(addr)
		if err != nil {
			return query.CreateOrderParams{}, err
		}
		shipping = b
	}

	return query.CreateOrderParams{
		ID:              o.ID(),
		UserID:          o.UserID(),
		ItemType:        o.ItemType().String(),
		ItemID:          o.ItemID(),
		Subtotal:        o.Subtotal(),
		Discount:        o.Discount(),
		Total:           o.Total(),
		CouponID:        pgconv.UUIDPtrToPgtype(o.CouponID()),
		Status:          string(o.Status()),
		ShippingAddress: shipping,
		CreatedAt:       pgconv.TimeToPgtype(o.CreatedAt()),
		UpdatedAt:       pgconv.TimeToPgtype(o.UpdatedAt()),
	}, nil
}

func OrderToDomain(row query.Orders) (*order.Order, error) {
	itemType, err := catalog.NewItemType(row.ItemType)
	if err != nil {
		return nil, err
	}
	status, err := order.NewStatus(row.Status)
	if err != nil {
		return nil, err
	}
	shipping, err := ShippingFromJSON(row.ShippingAddress)
	if err != nil {
		return nil, err
	}

	return order.ReconstructOrder(order.OrderParams{
		ID:              row.ID,
		UserID:          row.UserID,
		ItemType:        itemType,
		ItemID:          row.ItemID,
		Subtotal:        row.Subtotal,
		Discount:        row.Discount,
		Total:           row.Total,
		CouponID:        pgconv.UUIDPtrFromPgtype(row.CouponID),
		Status:          status,
		ShippingAddress: shipping,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}), nil
}

func ShippingFromJSON(raw []byte) (*order.ShippingAddress, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var addr order.ShippingAddress
	if err := json.Unmarshal(raw, &addr); err != nil {
		return nil, err
	}
	return &addr, nil
}

func PaymentToCreateParams(p *order.Payment) query.CreatePaymentParams {
	return query.CreatePaymentParams{
		ID:        p.ID(),
		OrderID:   p.OrderID(),
		Reference: p.Reference(),
		Amount:    p.Amount(),
		Status:    string(p.Status()),
		CreatedAt: pgconv.TimeToPgtype(p.CreatedAt()),
		UpdatedAt: pgconv.TimeToPgtype(p.UpdatedAt()),
	}
}

func PaymentToDomain(row query.Payments) (*order.Payment, error) {
	status, err := order.NewPaymentStatus(row.Status)
	if err != nil {
		return nil, err
	}

	return order.ReconstructPayment(order.PaymentParams{
		ID:         row.ID,
		OrderID:    row.OrderID,
		Reference:  row.Reference,
		Amount:     row.Amount,
		Status:     status,
		SlipURL:    pgconv.StringPtrFromPgtype(row.SlipUrl),
		ReviewedBy: pgconv.UUIDPtrFromPgtype(row.ReviewedBy),
		ReviewedAt: pgconv.TimePtrFromPgtype(row.ReviewedAt),
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}), nil
}

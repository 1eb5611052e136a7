package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

const orderColumns = `o.id, o.user_id, o.item_type, o.item_id, o.subtotal, o.discount, o.total, o.coupon_id,
       o.status, o.shipping_address, o.created_at, o.updated_at`

const createOrder = `-- name: CreateOrder :exec
INSERT INTO orders (id, user_id, item_type, item_id, subtotal, discount, total, coupon_id, status,
                    shipping_address, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
`

type CreateOrderParams struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	ItemType        string
	ItemID          uuid.UUID
	Subtotal        decimal.Decimal
	Discount        decimal.Decimal
	Total           decimal.Decimal
	CouponID        pgtype.UUID
	Status          string
	ShippingAddress []byte
	CreatedAt       pgtype.Timestamptz
	UpdatedAt       pgtype.Timestamptz
}

func (q *Queries) CreateOrder(ctx context.Context, db DBTX, arg CreateOrderParams) error {
	_, err := db.Exec(ctx, createOrder,
		arg.ID,
		arg.UserID,
		arg.ItemType,
		arg.ItemID,
		arg.Subtotal,
		arg.Discount,
		arg.Total,
		arg.CouponID,
		arg.Status,
		arg.ShippingAddress,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return err
}

func scanOrder(row interface{ Scan(...any) error }, extra ...any) (Orders, error) {
	var i Orders
	dest := []any{
		&i.ID,
		&i.UserID,
		&i.ItemType,
		&i.ItemID,
		&i.Subtotal,
		&i.Discount,
		&i.Total,
		&i.CouponID,
		&i.Status,
		&i.ShippingAddress,
		&i.CreatedAt,
		&i.UpdatedAt,
	}
	err := row.Scan(append(dest, extra...)...)
	return i, err
}

const getOrderByID = `-- name: GetOrderByID :one
SELECT ` + orderColumns + ` FROM orders o WHERE o.id = $1
`

func (q *Queries) GetOrderByID(ctx context.Context, db DBTX, id uuid.UUID) (Orders, error) {
	return scanOrder(db.QueryRow(ctx, getOrderByID, id))
}

const getOrderByIDForUpdate = `-- name: GetOrderByIDForUpdate :one
SELECT ` + orderColumns + ` FROM orders o WHERE o.id = $1 FOR UPDATE
`

func (q *Queries) GetOrderByIDForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (Orders, error) {
	return scanOrder(db.QueryRow(ctx, getOrderByIDForUpdate, id))
}

const updateOrderStatus = `-- name: UpdateOrderStatus :execrows
UPDATE orders SET status = $2, updated_at = $4 WHERE id = $1 AND status = $3
`

type UpdateOrderStatusParams struct {
	ID        uuid.UUID
	Status    string
	From      string
	UpdatedAt pgtype.Timestamptz
}

func (q *Queries) UpdateOrderStatus(ctx context.Context, db DBTX, arg UpdateOrderStatusParams) (int64, error) {
	result, err := db.Exec(ctx, updateOrderStatus, arg.ID, arg.Status, arg.From, arg.UpdatedAt)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

// OrderWithPayment is an order joined with its payment and the purchased item's title.
type OrderWithPayment struct {
	Orders
	ItemTitle        pgtype.Text
	PaymentID        pgtype.UUID
	PaymentReference pgtype.Text
	PaymentStatus    pgtype.Text
	PaymentSlipUrl   pgtype.Text
}

const orderWithPaymentSelect = `
SELECT ` + orderColumns + `,
       COALESCE(c.title, b.title), p.id, p.reference, p.status, p.slip_url
FROM orders o
LEFT JOIN payments p ON p.order_id = o.id
LEFT JOIN courses c ON o.item_type = 'course' AND c.id = o.item_id
LEFT JOIN ebooks b ON o.item_type = 'ebook' AND b.id = o.item_id
`

func scanOrderWithPayment(row interface{ Scan(...any) error }) (OrderWithPayment, error) {
	var i OrderWithPayment
	o, err := scanOrder(row,
		&i.ItemTitle,
		&i.PaymentID,
		&i.PaymentReference,
		&i.PaymentStatus,
		&i.PaymentSlipUrl,
	)
	i.Orders = o
	return i, err
}

const getOrderWithPayment = `-- name: GetOrderWithPayment :one
` + orderWithPaymentSelect + `WHERE o.id = $1
`

func (q *Queries) GetOrderWithPayment(ctx context.Context, db DBTX, id uuid.UUID) (OrderWithPayment, error) {
	return scanOrderWithPayment(db.QueryRow(ctx, getOrderWithPayment, id))
}

const listOrdersByUser = `-- name: ListOrdersByUser :many
` + orderWithPaymentSelect + `WHERE o.user_id = $1
ORDER BY o.created_at DESC
`

func (q *Queries) ListOrdersByUser(ctx context.Context, db DBTX, userID uuid.UUID) ([]OrderWithPayment, error) {
	rows, err := db.Query(ctx, listOrdersByUser, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []OrderWithPayment
	for rows.Next() {
		i, err := scanOrderWithPayment(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

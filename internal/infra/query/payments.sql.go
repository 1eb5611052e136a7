package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

const paymentColumns = `id, order_id, reference, amount, status, slip_url, reviewed_by, reviewed_at, created_at, updated_at`

func scanPayment(row interface{ Scan(...any) error }) (Payments, error) {
	var i Payments
	err := row.Scan(
		&i.ID,
		&i.OrderID,
		&i.Reference,
		&i.Amount,
		&i.Status,
		&i.SlipUrl,
		&i.ReviewedBy,
		&i.ReviewedAt,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const createPayment = `-- name: CreatePayment :exec
INSERT INTO payments (id, order_id, reference, amount, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`

type CreatePaymentParams struct {
	ID        uuid.UUID
	OrderID   uuid.UUID
	Reference string
	Amount    decimal.Decimal
	Status    string
	CreatedAt pgtype.Timestamptz
	UpdatedAt pgtype.Timestamptz
}

func (q *Queries) CreatePayment(ctx context.Context, db DBTX, arg CreatePaymentParams) error {
	_, err := db.Exec(ctx, createPayment,
		arg.ID,
		arg.OrderID,
		arg.Reference,
		arg.Amount,
		arg.Status,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return err
}

const getPaymentByOrderID = `-- name: GetPaymentByOrderID :one
SELECT ` + paymentColumns + ` FROM payments WHERE order_id = $1
`

func (q *Queries) GetPaymentByOrderID(ctx context.Context, db DBTX, orderID uuid.UUID) (Payments, error) {
	return scanPayment(db.QueryRow(ctx, getPaymentByOrderID, orderID))
}

const getPaymentByIDForUpdate = `-- name: GetPaymentByIDForUpdate :one
SELECT ` + paymentColumns + ` FROM payments WHERE id = $1 FOR UPDATE
`

func (q *Queries) GetPaymentByIDForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (Payments, error) {
	return scanPayment(db.QueryRow(ctx, getPaymentByIDForUpdate, id))
}

const attachPaymentSlip = `-- name: AttachPaymentSlip :one
UPDATE payments
SET slip_url = $2, status = 'AWAITING_REVIEW', updated_at = $3
WHERE order_id = $1 AND status IN ('PENDING', 'AWAITING_REVIEW')
RETURNING ` + paymentColumns + `
`

type AttachPaymentSlipParams struct {
	OrderID   uuid.UUID
	SlipUrl   string
	UpdatedAt pgtype.Timestamptz
}

// AttachPaymentSlip is a compare-and-set: it returns pgx.ErrNoRows when the
// payment is no longer accepting slips.
func (q *Queries) AttachPaymentSlip(ctx context.Context, db DBTX, arg AttachPaymentSlipParams) (Payments, error) {
	return scanPayment(db.QueryRow(ctx, attachPaymentSlip, arg.OrderID, arg.SlipUrl, arg.UpdatedAt))
}

const reviewPayment = `-- name: ReviewPayment :execrows
UPDATE payments
SET status = $2, reviewed_by = $3, reviewed_at = $4, updated_at = $4
WHERE id = $1 AND status = 'AWAITING_REVIEW'
`

type ReviewPaymentParams struct {
	ID         uuid.UUID
	Status     string
	ReviewedBy uuid.UUID
	ReviewedAt pgtype.Timestamptz
}

func (q *Queries) ReviewPayment(ctx context.Context, db DBTX, arg ReviewPaymentParams) (int64, error) {
	result, err := db.Exec(ctx, reviewPayment, arg.ID, arg.Status, arg.ReviewedBy, arg.ReviewedAt)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

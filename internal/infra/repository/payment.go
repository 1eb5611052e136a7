package repository

import (
	"context"
	"time"

	"elearning-storefront/internal/domain/order"
	"elearning-storefront/internal/infra"
	"elearning-storefront/internal/infra/converter"
	"elearning-storefront/internal/infra/query"
	"elearning-storefront/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type PaymentWriteQueries interface {
	CreatePayment(ctx context.Context, db query.DBTX, arg query.CreatePaymentParams) error
	GetPaymentByIDForUpdate(ctx context.Context, db query.DBTX, id uuid.UUID) (query.Payments, error)
	AttachPaymentSlip(ctx context.Context, db query.DBTX, arg query.AttachPaymentSlipParams) (query.Payments, error)
	ReviewPayment(ctx context.Context, db query.DBTX, arg query.ReviewPaymentParams) (int64, error)
}

type PaymentRepository struct {
	queries PaymentWriteQueries
	db      query.DBTX
}

func NewPaymentRepository(queries PaymentWriteQueries, db query.DBTX) *PaymentRepository {
	return &PaymentRepository{
		queries: queries,
		db:      db,
	}
}

func (r *PaymentRepository) Create(ctx context.Context, p *order.Payment) error {
	if err := r.queries.CreatePayment(ctx, r.db, converter.PaymentToCreateParams(p)); err != nil {
		return infra.WrapRepoErr("failed to create payment", err)
	}
	return nil
}

func (r *PaymentRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*order.Payment, error) {
	row, err := r.queries.GetPaymentByIDForUpdate(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("payment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock payment", err)
	}
	return toPayment(row)
}

func (r *PaymentRepository) AttachSlip(ctx context.Context, orderID uuid.UUID, slipURL string, at time.Time) (*order.Payment, error) {
	row, err := r.queries.AttachPaymentSlip(ctx, r.db, query.AttachPaymentSlipParams{
		OrderID:   orderID,
		SlipUrl:   slipURL,
		UpdatedAt: pgconv.TimeToPgtype(at),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("payment no longer accepts slips", err, infra.KindConflict)
		}
		return nil, infra.WrapRepoErr("failed to attach payment slip", err)
	}
	return toPayment(row)
}

func (r *PaymentRepository) SaveReview(ctx context.Context, p *order.Payment) error {
	reviewer := p.ReviewedBy()
	reviewedAt := p.ReviewedAt()
	if reviewer == nil || reviewedAt == nil {
		return infra.WrapRepoErr("payment has not been reviewed", nil, infra.KindConflict)
	}

	affected, err := r.queries.ReviewPayment(ctx, r.db, query.ReviewPaymentParams{
		ID:         p.ID(),
		Status:     string(p.Status()),
		ReviewedBy: *reviewer,
		ReviewedAt: pgconv.TimeToPgtype(*reviewedAt),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to save payment review", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("payment is no longer awaiting review", nil, infra.KindConflict)
	}
	return nil
}

func toPayment(row query.Payments) (*order.Payment, error) {
	p, err := converter.PaymentToDomain(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert payment row", err)
	}
	return p, nil
}

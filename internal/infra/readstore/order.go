package readstore

import (
	"context"

	"elearning-storefront/internal/infra"
	"elearning-storefront/internal/infra/converter"
	"elearning-storefront/internal/infra/query"
	"elearning-storefront/internal/pkg/pgconv"
	"elearning-storefront/internal/usecase/queries"

	"github.com/google/uuid"
)

type OrderReadQueries interface {
	GetOrderWithPayment(ctx context.Context, db query.DBTX, id uuid.UUID) (query.OrderWithPayment, error)
	ListOrdersByUser(ctx context.Context, db query.DBTX, userID uuid.UUID) ([]query.OrderWithPayment, error)
}

type OrderReadStore struct {
	queries OrderReadQueries
	db      query.DBTX
}

func NewOrderReadStore(queries OrderReadQueries, db query.DBTX) *OrderReadStore {
	return &OrderReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *OrderReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.OrderView, error) {
	row, err := r.queries.GetOrderWithPayment(ctx, r.db, id)
	if err != nil {
		return nil, lookupErr("order", err)
	}
	return toOrderView(row)
}

func (r *OrderReadStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]queries.OrderView, error) {
	rows, err := r.queries.ListOrdersByUser(ctx, r.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders", err)
	}

	views := make([]queries.OrderView, 0, len(rows))
	for _, row := range rows {
		v, err := toOrderView(row)
		if err != nil {
			return nil, err
		}
		views = append(views, *v)
	}
	return views, nil
}

func toOrderView(row query.OrderWithPayment) (*queries.OrderView, error) {
	shipping, err := converter.ShippingFromJSON(row.ShippingAddress)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode shipping address", err)
	}

	v := &queries.OrderView{
		ID:              row.ID,
		UserID:          row.UserID,
		ItemType:        row.ItemType,
		ItemID:          row.ItemID,
		ItemTitle:       pgconv.StringFromPgtype(row.ItemTitle),
		Subtotal:        row.Subtotal,
		Discount:        row.Discount,
		Total:           row.Total,
		Status:          row.Status,
		ShippingAddress: shipping,
		CreatedAt:       row.CreatedAt,
	}
	if row.PaymentID.Valid {
		v.Payment = &queries.PaymentView{
			ID:        uuid.UUID(row.PaymentID.Bytes),
			Reference: pgconv.StringFromPgtype(row.PaymentReference),
			Status:    pgconv.StringFromPgtype(row.PaymentStatus),
			SlipURL:   pgconv.StringFromPgtype(row.PaymentSlipUrl),
		}
	}
	return v, nil
}

package repository

import (
	"context"

	"elearning-storefront/internal/domain/order"
	"elearning-storefront/internal/infra"
	"elearning-storefront/internal/infra/converter"
	"elearning-storefront/internal/infra/query"
	"elearning-storefront/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type OrderWriteQueries interface {
	CreateOrder(ctx context.Context, db query.DBTX, arg query.CreateOrderParams) error
	GetOrderByIDForUpdate(ctx context.Context, db query.DBTX, id uuid.UUID) (query.Orders, error)
	UpdateOrderStatus(ctx context.Context, db query.DBTX, arg query.UpdateOrderStatusParams) (int64, error)
}

type OrderRepository struct {
	queries OrderWriteQueries
	db      query.DBTX
}

func NewOrderRepository(queries OrderWriteQueries, db query.DBTX) *OrderRepository {
	return &OrderRepository{
		queries: queries,
		db:      db,
	}
}

func (r *OrderRepository) Create(ctx context.Context, o *order.Order) error {
	params, err := converter.OrderToCreateParams(o)
	if err != nil {
		return infra.WrapRepoErr("failed to encode order", err)
	}
	if err := r.queries.CreateOrder(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr("failed to create order", err)
	}
	return nil
}

func (r *OrderRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	row, err := r.queries.GetOrderByIDForUpdate(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock order", err)
	}

	o, err := converter.OrderToDomain(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert order row", err)
	}
	return o, nil
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, o *order.Order, from order.Status) error {
	affected, err := r.queries.UpdateOrderStatus(ctx, r.db, query.UpdateOrderStatusParams{
		ID:        o.ID(),
		Status:    string(o.Status()),
		From:      string(from),
		UpdatedAt: pgconv.TimeToPgtype(o.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update order status", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("order status changed concurrently", nil, infra.KindConflict)
	}
	return nil
}

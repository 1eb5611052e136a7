package queries

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/queries/$GOFILE -package=queries

import (
	"context"

	"elearning-storefront/internal/pkg/errs"
	"elearning-storefront/internal/pkg/session"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound = errs.New("order not found")
	ErrOrderAccess   = errs.New("order belongs to another user")
)

type OrderReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*OrderView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]OrderView, error)
}

// BankDisplay is the static transfer information printed at checkout.
type BankDisplay struct {
	AccountNumber string `json:"accountNumber"`
	AccountName   string `json:"accountName"`
}

type CheckoutView struct {
	Order OrderView   `json:"order"`
	Bank  BankDisplay `json:"bank"`
}

type OrderQueries interface {
	ListMine(ctx context.Context, sess session.Session) ([]OrderView, error)
	// Get returns the order to its owner or to an admin.
	Get(ctx context.Context, sess session.Session, id uuid.UUID) (*OrderView, error)
	Checkout(ctx context.Context, sess session.Session, id uuid.UUID) (*CheckoutView, error)
}

type orderQueriesImpl struct {
	store OrderReadStore
	bank  BankDisplay
}

func NewOrderQueries(store OrderReadStore, bank BankDisplay) OrderQueries {
	return &orderQueriesImpl{
		store: store,
		bank:  bank,
	}
}

func (q *orderQueriesImpl) ListMine(ctx context.Context, sess session.Session) ([]OrderView, error) {
	orders, err := q.store.ListByUser(ctx, sess.UserID)
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []OrderView{}
	}
	return orders, nil
}

func (q *orderQueriesImpl) Get(ctx context.Context, sess session.Session, id uuid.UUID) (*OrderView, error) {
	o, err := q.store.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, ErrOrderNotFound)
	}
	if !sess.CanAccessOwnedBy(o.UserID) {
		return nil, errs.Mark(ErrOrderAccess, errs.ErrForbidden)
	}
	return o, nil
}

func (q *orderQueriesImpl) Checkout(ctx context.Context, sess session.Session, id uuid.UUID) (*CheckoutView, error) {
	o, err := q.Get(ctx, sess, id)
	if err != nil {
		return nil, err
	}
	return &CheckoutView{Order: *o, Bank: q.bank}, nil
}

//go:build unit

package queries_test

import (
	"context"
	"testing"

	"elearning-storefront/internal/domain/user"
	"elearning-storefront/internal/infra"
	"elearning-storefront/internal/pkg/errs"
	"elearning-storefront/internal/pkg/session"
	"elearning-storefront/internal/usecase/queries"
	queriesmock "elearning-storefront/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestOrderQueries_Get(t *testing.T) {
	owner := session.Session{UserID: uuid.New(), Role: user.RoleUser}
	stranger := session.Session{UserID: uuid.New(), Role: user.RoleUser}
	admin := session.Session{UserID: uuid.New(), Role: user.RoleAdmin}
	orderID := uuid.New()
	view := &queries.OrderView{ID: orderID, UserID: owner.UserID, Status: "PENDING"}

	tests := []struct {
		name       string
		caller     session.Session
		found      bool
		wantClass  error
		wantReason error
	}{
		{name: "owner", caller: owner, found: true},
		{name: "admin reads any order", caller: admin, found: true},
		{name: "another user is forbidden", caller: stranger, found: true, wantClass: errs.ErrForbidden, wantReason: queries.ErrOrderAccess},
		{name: "unknown order", caller: owner, wantClass: errs.ErrNotFound, wantReason: queries.ErrOrderNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := queriesmock.NewMockOrderReadStore(ctrl)
			if tt.found {
				store.EXPECT().FindByID(gomock.Any(), orderID).Return(view, nil)
			} else {
				store.EXPECT().FindByID(gomock.Any(), orderID).
					Return(nil, infra.WrapRepoErr("order not found", errs.New("no rows"), infra.KindNotFound))
			}
			q := queries.NewOrderQueries(store, queries.BankDisplay{})

			got, err := q.Get(context.Background(), tt.caller, orderID)

			if tt.wantClass != nil {
				assert.Nil(t, got)
				assert.Equal(t, tt.wantClass, errs.Class(err))
				assert.True(t, errs.Is(err, tt.wantReason))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, orderID, got.ID)
		})
	}
}

func TestOrderQueries_Checkout(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockOrderReadStore(ctrl)
	bank := queries.BankDisplay{AccountNumber: "1078898751", AccountName: "ร้านค้า"}
	q := queries.NewOrderQueries(store, bank)
	sess := session.Session{UserID: uuid.New(), Role: user.RoleUser}
	view := &queries.OrderView{ID: uuid.New(), UserID: sess.UserID}
	store.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)

	checkout, err := q.Checkout(context.Background(), sess, view.ID)

	require.NoError(t, err)
	assert.Equal(t, bank, checkout.Bank)
	assert.Equal(t, view.ID, checkout.Order.ID)
}

func TestOrderQueries_ListMine(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockOrderReadStore(ctrl)
	q := queries.NewOrderQueries(store, queries.BankDisplay{})
	sess := session.Session{UserID: uuid.New(), Role: user.RoleUser}
	store.EXPECT().ListByUser(gomock.Any(), sess.UserID).Return(nil, nil)

	orders, err := q.ListMine(context.Background(), sess)

	require.NoError(t, err)
	assert.NotNil(t, orders)
	assert.Empty(t, orders)
}

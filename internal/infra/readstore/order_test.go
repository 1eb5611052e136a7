//go:build unit

package readstore

import (
	"context"
	"testing"
	"time"

	"elearning-storefront/internal/infra"
	"elearning-storefront/internal/infra/query"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderReadQueries struct {
	mock.Mock
}

func (m *MockOrderReadQueries) GetOrderWithPayment(ctx context.Context, db query.DBTX, id uuid.UUID) (query.OrderWithPayment, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(query.OrderWithPayment), args.Error(1)
}

func (m *MockOrderReadQueries) ListOrdersByUser(ctx context.Context, db query.DBTX, userID uuid.UUID) ([]query.OrderWithPayment, error) {
	args := m.Called(ctx, db, userID)
	return args.Get(0).([]query.OrderWithPayment), args.Error(1)
}

func orderRow(userID uuid.UUID) query.OrderWithPayment {
	return query.OrderWithPayment{
		Orders: query.Orders{
			ID:        uuid.New(),
			UserID:    userID,
			ItemType:  "course",
			ItemID:    uuid.New(),
			Subtotal:  decimal.NewFromInt(1000),
			Discount:  decimal.NewFromInt(100),
			Total:     decimal.NewFromInt(900),
			Status:    "PENDING",
			CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		ItemTitle: pgtype.Text{String: "Go for Backend Engineers", Valid: true},
	}
}

func TestOrderReadStore_FindByID(t *testing.T) {
	userID := uuid.New()

	paid := orderRow(userID)
	paymentID := uuid.New()
	paid.PaymentID = pgtype.UUID{Bytes: paymentID, Valid: true}
	paid.PaymentReference = pgtype.Text{String: "PAY-20250101-ABC123", Valid: true}
	paid.PaymentStatus = pgtype.Text{String: "AWAITING_REVIEW", Valid: true}
	paid.PaymentSlipUrl = pgtype.Text{String: "https://cdn.example.com/slips/a.png", Valid: true}

	shipped := orderRow(userID)
	shipped.ShippingAddress = []byte(`{"name":"สมชาย","phone":"0812345678","address":"1 ถนนสุขุมวิท","district":"คลองเตย","province":"กรุงเทพฯ","postalCode":"10110"}`)

	t.Run("joins payment", func(t *testing.T) {
		mockQueries := new(MockOrderReadQueries)
		mockQueries.On("GetOrderWithPayment", mock.Anything, mock.Anything, paid.ID).Return(paid, nil)

		view, err := NewOrderReadStore(mockQueries, nil).FindByID(context.Background(), paid.ID)

		require.NoError(t, err)
		assert.Equal(t, "Go for Backend Engineers", view.ItemTitle)
		require.NotNil(t, view.Payment)
		assert.Equal(t, paymentID, view.Payment.ID)
		assert.Equal(t, "AWAITING_REVIEW", view.Payment.Status)
		assert.Nil(t, view.ShippingAddress)
	})

	t.Run("decodes shipping address", func(t *testing.T) {
		mockQueries := new(MockOrderReadQueries)
		mockQueries.On("GetOrderWithPayment", mock.Anything, mock.Anything, shipped.ID).Return(shipped, nil)

		view, err := NewOrderReadStore(mockQueries, nil).FindByID(context.Background(), shipped.ID)

		require.NoError(t, err)
		assert.Nil(t, view.Payment)
		require.NotNil(t, view.ShippingAddress)
		assert.Equal(t, "10110", view.ShippingAddress.PostalCode)
	})

	t.Run("not found", func(t *testing.T) {
		id := uuid.New()
		mockQueries := new(MockOrderReadQueries)
		mockQueries.On("GetOrderWithPayment", mock.Anything, mock.Anything, id).Return(query.OrderWithPayment{}, pgx.ErrNoRows)

		_, err := NewOrderReadStore(mockQueries, nil).FindByID(context.Background(), id)

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestOrderReadStore_ListByUser(t *testing.T) {
	userID := uuid.New()
	rows := []query.OrderWithPayment{orderRow(userID), orderRow(userID)}

	mockQueries := new(MockOrderReadQueries)
	mockQueries.On("ListOrdersByUser", mock.Anything, mock.Anything, userID).Return(rows, nil)

	views, err := NewOrderReadStore(mockQueries, nil).ListByUser(context.Background(), userID)

	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, rows[0].ID, views[0].ID)
	assert.Equal(t, rows[1].ID, views[1].ID)
}

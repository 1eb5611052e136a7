//go:build unit

package api_test

import (
	"net/http"
	"net/url"
	"testing"

	"elearning-storefront/internal/domain/coupon"
	reqdto "elearning-storefront/internal/handler/dto/request"
	resdto "elearning-storefront/internal/handler/dto/response"
	"elearning-storefront/internal/pkg/errs"
	"elearning-storefront/internal/usecase/commands"
	"elearning-storefront/internal/usecase/queries"
	"elearning-storefront/tests/common/builder"
	"elearning-storefront/tests/common/httptest"
	"elearning-storefront/tests/common/testutil"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OrderHandlerTestSuite struct {
	routerSuite
}

func TestOrderHandlerSuite(t *testing.T) {
	suite.Run(t, new(OrderHandlerTestSuite))
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *OrderHandlerTestSuite) TestCreate() {
	path := "/api/orders"
	reqBody := reqdto.CreateOrderRequest{ItemType: "course", ItemID: uuid.New(), CouponCode: "SAVE10"}
	paymentID := uuid.New()
	result := &commands.CreateOrderResult{
		OrderID:    uuid.New(),
		PaymentID:  &paymentID,
		PaymentRef: "PAY-1234ABCD",
		Total:      decimal.RequireFromString("899.50"),
	}

	s.Run("success: returns 201 with the payment reference", func() {
		sess, token := s.userToken()
		s.mockOrderCmds.EXPECT().Create(gomock.Any(), sess, reqBody.ToInput()).Return(result, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, path, reqBody, token)

		var body resdto.CreateOrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(result.OrderID, body.OrderID)
		s.Equal(899.5, body.Total)
		s.Equal("PAY-1234ABCD", body.PaymentRef)
		s.False(body.IsFree)
	})

	s.Run("success: free item has no payment", func() {
		_, token := s.userToken()
		s.mockOrderCmds.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&commands.CreateOrderResult{OrderID: uuid.New(), Total: decimal.Zero, IsFree: true}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, path, reqBody, token)

		var body resdto.CreateOrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.True(body.IsFree)
		s.Nil(body.PaymentID)
	})

	s.Run("error: 401 without a session", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, path, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "UNAUTHORIZED")
	})

	s.Run("error: 400 Bad Request on binding errors", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing itemType", mutate: testutil.Field("itemType", nil)},
			{name: "missing itemId", mutate: testutil.Field("itemId", nil)},
			{name: "malformed itemId", mutate: testutil.Field("itemId", "abc")},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				_, token := s.userToken()
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, path, requestMap, token)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "INVALID_REQUEST")
			})
		}
	})

	s.Run("error: use case failures map to their reason", func() {
		cases := []struct {
			name       string
			err        error
			expectCode int
			expectErr  string
		}{
			{
				name:       "coupon exhausted under the lock keeps its reason",
				err:        errs.Mark(errs.Mark(coupon.ErrLimitReached, commands.ErrCouponInvalid), errs.ErrConflict),
				expectCode: http.StatusConflict,
				expectErr:  "COUPON_LIMIT_REACHED",
			},
			{
				name:       "item not found",
				err:        errs.Mark(commands.ErrOrderItemNotFound, errs.ErrNotFound),
				expectCode: http.StatusNotFound,
				expectErr:  "ITEM_NOT_FOUND",
			},
			{
				name:       "ebook without shipping",
				err:        errs.Mark(commands.ErrInvalidOrderInput, errs.ErrValidation),
				expectCode: http.StatusBadRequest,
				expectErr:  "INVALID_ORDER",
			},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				_, token := s.userToken()
				s.mockOrderCmds.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tc.err)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, path, reqBody, token)

				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectErr)
			})
		}
	})
}

// ================================================================================
// TestList / TestGet
// ================================================================================

func (s *OrderHandlerTestSuite) TestList() {
	sess, token := s.userToken()
	views := []queries.OrderView{
		*builder.NewOrderViewBuilder(sess.UserID).Build(),
		*builder.NewOrderViewBuilder(sess.UserID).WithDiscount(100).Build(),
	}
	s.mockOrderQ.EXPECT().ListMine(gomock.Any(), sess).Return(views, nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/orders", nil, token)

	var body []resdto.OrderResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Require().Len(body, 2)
	s.Equal(float64(1000), body[0].Total)
	s.Equal(float64(900), body[1].Total)
	s.Equal(float64(100), body[1].Discount)
	s.Require().NotNil(body[0].Payment)
	s.Equal(views[0].Payment.Reference, body[0].Payment.Reference)
}

func (s *OrderHandlerTestSuite) TestGet() {
	s.Run("success: owner reads the order", func() {
		sess, token := s.userToken()
		view := builder.NewOrderViewBuilder(sess.UserID).Build()
		s.mockOrderQ.EXPECT().Get(gomock.Any(), sess, view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/orders/"+view.ID.String(), nil, token)

		var body resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.ID, body.ID)
		s.Equal("PENDING", body.Status)
	})

	s.Run("error: 403 for another user's order", func() {
		_, token := s.userToken()
		s.mockOrderQ.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(queries.ErrOrderAccess, errs.ErrForbidden))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/orders/"+uuid.NewString(), nil, token)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "ORDER_FORBIDDEN")
	})

	s.Run("error: 404 for an unknown order", func() {
		_, token := s.userToken()
		s.mockOrderQ.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(queries.ErrOrderNotFound, errs.ErrNotFound))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/orders/"+uuid.NewString(), nil, token)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "ORDER_NOT_FOUND")
	})

	s.Run("error: 400 for a malformed id", func() {
		_, token := s.userToken()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/orders/not-a-uuid", nil, token)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "INVALID_REQUEST")
	})
}

// ================================================================================
// TestCheckout
// ================================================================================

func (s *OrderHandlerTestSuite) TestCheckout() {
	s.Run("success: returns the order with bank details", func() {
		sess, token := s.userToken()
		view := &queries.CheckoutView{
			Order: *builder.NewOrderViewBuilder(sess.UserID).Build(),
			Bank:  queries.BankDisplay{AccountNumber: "1078898751", AccountName: "บัญชีร้านค้า"},
		}
		s.mockOrderQ.EXPECT().Checkout(gomock.Any(), sess, view.Order.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/checkout/"+view.Order.ID.String(), nil, token)

		var body resdto.CheckoutResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.Order.ID, body.Order.ID)
		s.Equal("1078898751", body.Bank.AccountNumber)
	})

	s.Run("anonymous visitor is sent to login with the page as callback", func() {
		orderID := uuid.NewString()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/checkout/"+orderID+"?from=cart", nil, "")

		s.Equal(http.StatusFound, rec.Code)
		location, err := url.Parse(rec.Header().Get("Location"))
		s.Require().NoError(err)
		s.Equal("/login", location.Path)
		s.Equal("http://localhost:3000/checkout/"+orderID+"?from=cart", location.Query().Get("callbackUrl"))
		s.Equal("login_required", location.Query().Get("msg"))
	})
}

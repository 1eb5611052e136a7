package api

import (
	"net/http"

	reqdto "elearning-storefront/internal/handler/dto/request"
	resdto "elearning-storefront/internal/handler/dto/response"
	"elearning-storefront/internal/handler/httperr"
	"elearning-storefront/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CouponHandler struct {
	q queries.CouponQueries
}

func NewCouponHandler(q queries.CouponQueries) *CouponHandler {
	return &CouponHandler{q: q}
}

// @Summary Validate coupon
// @Description Preview a coupon against an item. Redemption counts are not changed.
// @Tags coupons
// @Accept json
// @Produce json
// @Param request body reqdto.ValidateCouponRequest true "Coupon to check"
// @Success 200 {object} httperr.Response{data=resdto.CouponQuoteResponse}
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /coupons/validate [post]
func (h *CouponHandler) Validate(c *gin.Context) {
	sess, ok := requireSession(c)
	if !ok {
		return
	}
	var req reqdto.ValidateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	quote, err := h.q.Validate(c.Request.Context(), req.ToInput(sess.UserID))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromCouponQuote(quote)
	mapped(c, http.StatusOK, res, err)
}

package api

import (
	"net/http"

	reqdto "elearning-storefront/internal/handler/dto/request"
	resdto "elearning-storefront/internal/handler/dto/response"
	"elearning-storefront/internal/handler/httperr"
	"elearning-storefront/internal/usecase/commands"
	"elearning-storefront/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	cmds commands.OrderCommands
	q    queries.OrderQueries
}

func NewOrderHandler(cmds commands.OrderCommands, q queries.OrderQueries) *OrderHandler {
	return &OrderHandler{cmds: cmds, q: q}
}

// @Summary Create order
// @Description Create an order for a course or ebook. Free totals are paid and enrolled immediately.
// @Tags orders
// @Accept json
// @Produce json
// @Param request body reqdto.CreateOrderRequest true "Order"
// @Success 201 {object} httperr.Response{data=resdto.CreateOrderResponse}
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /orders [post]
func (h *OrderHandler) Create(c *gin.Context) {
	sess, ok := requireSession(c)
	if !ok {
		return
	}
	var req reqdto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	result, err := h.cmds.Create(c.Request.Context(), sess, req.ToInput())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromCreateOrderResult(result)
	mapped(c, http.StatusCreated, res, err)
}

// @Summary List my orders
// @Tags orders
// @Produce json
// @Success 200 {object} httperr.Response{data=[]resdto.OrderResponse}
// @Failure 401 {object} httperr.Response
// @Router /orders [get]
func (h *OrderHandler) List(c *gin.Context) {
	sess, ok := requireSession(c)
	if !ok {
		return
	}
	views, err := h.q.ListMine(c.Request.Context(), sess)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromOrderViews(views)
	mapped(c, http.StatusOK, res, err)
}

// @Summary Get order
// @Description Owner or admin only
// @Tags orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} httperr.Response{data=resdto.OrderResponse}
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /orders/{id} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	sess, ok := requireSession(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	view, err := h.q.Get(c.Request.Context(), sess, id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromOrderView(view)
	mapped(c, http.StatusOK, res, err)
}

// @Summary Checkout page data
// @Description Order summary plus the bank transfer details
// @Tags orders
// @Produce json
// @Param orderId path string true "Order ID"
// @Success 200 {object} httperr.Response{data=resdto.CheckoutResponse}
// @Failure 302 "Redirect to login without a session"
// @Failure 404 {object} httperr.Response
// @Router /checkout/{orderId} [get]
func (h *OrderHandler) Checkout(c *gin.Context) {
	sess, ok := requireSession(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "orderId")
	if !ok {
		return
	}
	view, err := h.q.Checkout(c.Request.Context(), sess, id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromCheckoutView(view)
	mapped(c, http.StatusOK, res, err)
}

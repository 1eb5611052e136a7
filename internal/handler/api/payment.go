package api

import (
	"context"
	"net/http"

	resdto "elearning-storefront/internal/handler/dto/response"
	"elearning-storefront/internal/handler/httperr"
	"elearning-storefront/internal/pkg/session"
	"elearning-storefront/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const msgSlipUploaded = "อัพโหลดสลิปสำเร็จ กำลังรอการตรวจสอบ"

type reviewFunc func(ctx context.Context, sess session.Session, paymentID uuid.UUID) (*commands.ReviewResult, error)

type PaymentHandler struct {
	cmds     commands.PaymentCommands
	settings commands.UploadSettings
}

func NewPaymentHandler(cmds commands.PaymentCommands, settings commands.UploadSettings) *PaymentHandler {
	return &PaymentHandler{cmds: cmds, settings: settings}
}

// @Summary Upload slip from the checkout page
// @Description JPEG or PNG, at most 2 MiB
// @Tags payments
// @Accept multipart/form-data
// @Produce json
// @Param orderId path string true "Order ID"
// @Param slip formData file true "Transfer slip"
// @Success 200 {object} httperr.Response{data=resdto.SlipResponse}
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /checkout/{orderId}/slip [post]
func (h *PaymentHandler) UploadCheckoutSlip(c *gin.Context) {
	orderID, ok := uuidParam(c, "orderId")
	if !ok || !limitUpload(c, h.settings.CheckoutSlip) {
		return
	}
	h.uploadSlip(c, orderID, commands.SlipFromCheckout)
}

// @Summary Upload slip from the orders page
// @Description JPEG, PNG or WebP, at most 10 MiB
// @Tags payments
// @Accept multipart/form-data
// @Produce json
// @Param orderId formData string true "Order ID"
// @Param slip formData file true "Transfer slip"
// @Success 200 {object} httperr.Response{data=resdto.SlipResponse}
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /payments/upload-slip [post]
func (h *PaymentHandler) UploadOrderSlip(c *gin.Context) {
	if !limitUpload(c, h.settings.OrderSlip) {
		return
	}
	orderID, err := uuid.Parse(c.PostForm("orderId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "กรุณาระบุคำสั่งซื้อ", "ORDER_ID_REQUIRED")
		return
	}
	h.uploadSlip(c, orderID, commands.SlipFromOrders)
}

func (h *PaymentHandler) uploadSlip(c *gin.Context, orderID uuid.UUID, contract commands.SlipContract) {
	sess, ok := requireSession(c)
	if !ok {
		return
	}
	file, closeFile, ok := formFile(c, "slip")
	if !ok {
		return
	}
	defer closeFile()

	result, err := h.cmds.UploadSlip(c.Request.Context(), sess, commands.UploadSlipInput{
		OrderID:  orderID,
		Contract: contract,
		File:     file,
	})
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	httperr.OK(c, resdto.FromSlipResult(result, msgSlipUploaded))
}

// @Summary Approve payment
// @Description Admin only. Marks the order paid and grants access.
// @Tags admin
// @Produce json
// @Param id path string true "Payment ID"
// @Success 200 {object} httperr.Response{data=resdto.ReviewResponse}
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/payments/{id}/approve [post]
func (h *PaymentHandler) Approve(c *gin.Context) {
	h.review(c, h.cmds.Approve)
}

// @Summary Reject payment
// @Description Admin only. Cancels the order.
// @Tags admin
// @Produce json
// @Param id path string true "Payment ID"
// @Success 200 {object} httperr.Response{data=resdto.ReviewResponse}
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/payments/{id}/reject [post]
func (h *PaymentHandler) Reject(c *gin.Context) {
	h.review(c, h.cmds.Reject)
}

func (h *PaymentHandler) review(c *gin.Context, decide reviewFunc) {
	sess, ok := requireSession(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	result, err := decide(c.Request.Context(), sess, id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	httperr.OK(c, resdto.FromReviewResult(result))
}

package handler

import (
	"net/http"

	financeapp "github.com/expensedesk/backend/internal/application/finance"
	"github.com/expensedesk/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// PaymentVoucherHandler handles payment voucher endpoints
type PaymentVoucherHandler struct {
	BaseHandler
	voucherService *financeapp.VoucherService
}

// NewPaymentVoucherHandler creates a new PaymentVoucherHandler
func NewPaymentVoucherHandler(voucherService *financeapp.VoucherService) *PaymentVoucherHandler {
	return &PaymentVoucherHandler{voucherService: voucherService}
}

// RegisterRoutes registers payment voucher routes
func (h *PaymentVoucherHandler) RegisterRoutes(rg *gin.RouterGroup) {
	vouchers := rg.Group("/payment-vouchers")
	{
		vouchers.POST("", h.Create)
		vouchers.POST("/validate", h.Validate)
		vouchers.GET("", h.List)
		vouchers.GET("/:id", h.GetByID)
	}
}

// Create records a payment voucher. A draft that fails business
// validation is rejected with the full issue list so the client can
// surface every problem at once.
func (h *PaymentVoucherHandler) Create(c *gin.Context) {
	var req financeapp.CreateVoucherRequest
	if !bindJSON(c, &h.BaseHandler, &req) {
		return
	}

	resp, issues, err := h.voucherService.Create(c.Request.Context(), req)
	if len(issues) > 0 {
		c.JSON(http.StatusUnprocessableEntity, dto.NewIssuesResponse(
			dto.ErrCodeVoucherNotSavable,
			"Payment voucher failed validation",
			getRequestID(c),
			issues,
		))
		return
	}
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, resp)
}

// Validate runs a dry-run validation of a voucher draft without
// recording anything
func (h *PaymentVoucherHandler) Validate(c *gin.Context) {
	var req financeapp.CreateVoucherRequest
	if !bindJSON(c, &h.BaseHandler, &req) {
		return
	}
	h.Success(c, h.voucherService.Validate(c.Request.Context(), req))
}

// List returns vouchers, optionally filtered by the vendor_id query parameter
func (h *PaymentVoucherHandler) List(c *gin.Context) {
	vendorID, ok := parseOptionalQueryID(c, "vendor_id")
	if !ok {
		h.BadRequest(c, "Invalid vendor_id filter")
		return
	}
	h.Success(c, h.voucherService.List(c.Request.Context(), vendorID))
}

// GetByID returns a single payment voucher
func (h *PaymentVoucherHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid voucher ID")
		return
	}

	resp, err := h.voucherService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}

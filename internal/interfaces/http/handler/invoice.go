package handler

import (
	financeapp "github.com/expensedesk/backend/internal/application/finance"
	"github.com/gin-gonic/gin"
)

// InvoiceHandler handles invoice endpoints
type InvoiceHandler struct {
	BaseHandler
	invoiceService *financeapp.InvoiceService
}

// NewInvoiceHandler creates a new InvoiceHandler
func NewInvoiceHandler(invoiceService *financeapp.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

// RegisterRoutes registers invoice routes
func (h *InvoiceHandler) RegisterRoutes(rg *gin.RouterGroup) {
	invoices := rg.Group("/invoices")
	{
		invoices.POST("", h.Create)
		invoices.GET("", h.List)
		invoices.GET("/:id", h.GetByID)
	}
}

// Create records an invoice against an approved purchase order
func (h *InvoiceHandler) Create(c *gin.Context) {
	var req financeapp.CreateInvoiceRequest
	if !bindJSON(c, &h.BaseHandler, &req) {
		return
	}

	resp, err := h.invoiceService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, resp)
}

// List returns invoices, optionally filtered by the pr_id query parameter
func (h *InvoiceHandler) List(c *gin.Context) {
	prID, ok := parseOptionalQueryID(c, "pr_id")
	if !ok {
		h.BadRequest(c, "Invalid pr_id filter")
		return
	}
	h.Success(c, h.invoiceService.List(c.Request.Context(), prID))
}

// GetByID returns a single invoice with its outstanding balance
func (h *InvoiceHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid invoice ID")
		return
	}

	resp, err := h.invoiceService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}

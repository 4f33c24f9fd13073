package handler

import (
	procurementapp "github.com/expensedesk/backend/internal/application/procurement"
	"github.com/gin-gonic/gin"
)

// PurchaseRequestHandler handles purchase request endpoints
type PurchaseRequestHandler struct {
	BaseHandler
	requestService *procurementapp.RequestService
}

// NewPurchaseRequestHandler creates a new PurchaseRequestHandler
func NewPurchaseRequestHandler(requestService *procurementapp.RequestService) *PurchaseRequestHandler {
	return &PurchaseRequestHandler{requestService: requestService}
}

// RegisterRoutes registers purchase request routes
func (h *PurchaseRequestHandler) RegisterRoutes(rg *gin.RouterGroup) {
	requests := rg.Group("/purchase-requests")
	{
		requests.POST("", h.Create)
		requests.GET("", h.List)
		requests.GET("/:id", h.GetByID)
		requests.PUT("/:id", h.Update)
		requests.POST("/:id/approve", h.Approve)
		requests.GET("/:id/summary", h.Summary)
	}
}

// Create creates a new purchase request
func (h *PurchaseRequestHandler) Create(c *gin.Context) {
	var req procurementapp.CreateRequest
	if !bindJSON(c, &h.BaseHandler, &req) {
		return
	}

	resp, err := h.requestService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, resp)
}

// List returns all purchase requests
func (h *PurchaseRequestHandler) List(c *gin.Context) {
	h.Success(c, h.requestService.List(c.Request.Context()))
}

// GetByID returns a single purchase request
func (h *PurchaseRequestHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid purchase request ID")
		return
	}

	resp, err := h.requestService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}

// Update edits a pending purchase request
func (h *PurchaseRequestHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid purchase request ID")
		return
	}

	var req procurementapp.UpdateRequest
	if !bindJSON(c, &h.BaseHandler, &req) {
		return
	}

	resp, err := h.requestService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}

// Approve converts a pending request into a purchase order
func (h *PurchaseRequestHandler) Approve(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid purchase request ID")
		return
	}

	var req procurementapp.ApproveRequest
	if !bindJSON(c, &h.BaseHandler, &req) {
		return
	}

	resp, err := h.requestService.Approve(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}

// Summary returns the tax split and reconciled balances for a request
func (h *PurchaseRequestHandler) Summary(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid purchase request ID")
		return
	}

	resp, err := h.requestService.Summary(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}

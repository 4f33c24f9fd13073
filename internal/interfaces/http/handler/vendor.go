package handler

import (
	vendorapp "github.com/expensedesk/backend/internal/application/vendors"
	"github.com/gin-gonic/gin"
)

// VendorHandler handles vendor master data endpoints
type VendorHandler struct {
	BaseHandler
	vendorService *vendorapp.VendorService
}

// NewVendorHandler creates a new VendorHandler
func NewVendorHandler(vendorService *vendorapp.VendorService) *VendorHandler {
	return &VendorHandler{vendorService: vendorService}
}

// RegisterRoutes registers vendor routes
func (h *VendorHandler) RegisterRoutes(rg *gin.RouterGroup) {
	vendors := rg.Group("/vendors")
	{
		vendors.POST("", h.Create)
		vendors.GET("", h.List)
		vendors.GET("/:id", h.GetByID)
		vendors.PUT("/:id", h.Update)
		vendors.DELETE("/:id", h.Delete)
	}
}

// Create creates a new vendor
func (h *VendorHandler) Create(c *gin.Context) {
	var req vendorapp.CreateVendorRequest
	if !bindJSON(c, &h.BaseHandler, &req) {
		return
	}

	resp, err := h.vendorService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, resp)
}

// List returns all vendors
func (h *VendorHandler) List(c *gin.Context) {
	h.Success(c, h.vendorService.List(c.Request.Context()))
}

// GetByID returns a single vendor
func (h *VendorHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid vendor ID")
		return
	}

	resp, err := h.vendorService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}

// Update applies a partial update to a vendor
func (h *VendorHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid vendor ID")
		return
	}

	var req vendorapp.UpdateVendorRequest
	if !bindJSON(c, &h.BaseHandler, &req) {
		return
	}

	resp, err := h.vendorService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}

// Delete removes a vendor
func (h *VendorHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid vendor ID")
		return
	}

	if err := h.vendorService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}

package handler

import (
	vendorapp "github.com/expensedesk/backend/internal/application/vendors"
	"github.com/gin-gonic/gin"
)

// VendorTypeHandler handles vendor type endpoints
type VendorTypeHandler struct {
	BaseHandler
	typeService *vendorapp.VendorTypeService
}

// NewVendorTypeHandler creates a new VendorTypeHandler
func NewVendorTypeHandler(typeService *vendorapp.VendorTypeService) *VendorTypeHandler {
	return &VendorTypeHandler{typeService: typeService}
}

// RegisterRoutes registers vendor type routes
func (h *VendorTypeHandler) RegisterRoutes(rg *gin.RouterGroup) {
	types := rg.Group("/vendor-types")
	{
		types.POST("", h.Create)
		types.GET("", h.List)
		types.GET("/:id", h.GetByID)
		types.PUT("/:id", h.Update)
		types.DELETE("/:id", h.Delete)
	}
}

// Create creates a new vendor type
func (h *VendorTypeHandler) Create(c *gin.Context) {
	var req vendorapp.CreateVendorTypeRequest
	if !bindJSON(c, &h.BaseHandler, &req) {
		return
	}

	resp, err := h.typeService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, resp)
}

// List returns all vendor types
func (h *VendorTypeHandler) List(c *gin.Context) {
	h.Success(c, h.typeService.List(c.Request.Context()))
}

// GetByID returns a single vendor type
func (h *VendorTypeHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid vendor type ID")
		return
	}

	resp, err := h.typeService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}

// Update updates a vendor type
func (h *VendorTypeHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid vendor type ID")
		return
	}

	var req vendorapp.UpdateVendorTypeRequest
	if !bindJSON(c, &h.BaseHandler, &req) {
		return
	}

	resp, err := h.typeService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}

// Delete removes a vendor type. Vendors referencing it keep the stale id.
func (h *VendorTypeHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid vendor type ID")
		return
	}

	if err := h.typeService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}

package handler

import (
	financeapp "github.com/expensedesk/backend/internal/application/finance"
	"github.com/gin-gonic/gin"
)

// DebitNoteHandler handles debit note endpoints
type DebitNoteHandler struct {
	BaseHandler
	noteService *financeapp.DebitNoteService
}

// NewDebitNoteHandler creates a new DebitNoteHandler
func NewDebitNoteHandler(noteService *financeapp.DebitNoteService) *DebitNoteHandler {
	return &DebitNoteHandler{noteService: noteService}
}

// RegisterRoutes registers debit note routes
func (h *DebitNoteHandler) RegisterRoutes(rg *gin.RouterGroup) {
	notes := rg.Group("/debit-notes")
	{
		notes.POST("", h.Create)
		notes.GET("", h.List)
		notes.GET("/:id", h.GetByID)
	}
}

// Create records a debit note against a purchase order or one of its invoices
func (h *DebitNoteHandler) Create(c *gin.Context) {
	var req financeapp.CreateDebitNoteRequest
	if !bindJSON(c, &h.BaseHandler, &req) {
		return
	}

	resp, err := h.noteService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, resp)
}

// List returns debit notes, optionally filtered by the pr_id query parameter
func (h *DebitNoteHandler) List(c *gin.Context) {
	prID, ok := parseOptionalQueryID(c, "pr_id")
	if !ok {
		h.BadRequest(c, "Invalid pr_id filter")
		return
	}
	h.Success(c, h.noteService.List(c.Request.Context(), prID))
}

// GetByID returns a single debit note
func (h *DebitNoteHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid debit note ID")
		return
	}

	resp, err := h.noteService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}

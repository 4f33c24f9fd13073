package procurement

import (
	"github.com/expensedesk/backend/internal/domain/procurement"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LineInput carries one request line. GST and TDS rates arrive as free
// text from the entry form; non-numeric values coerce to zero.
type LineInput struct {
	Name        string           `json:"name" binding:"required,min=1,max=200"`
	AccountID   string           `json:"account_id" binding:"required,min=1,max=100"`
	Type        string           `json:"type" binding:"required,oneof=Goods Services"`
	UOM         string           `json:"uom" binding:"max=50"`
	Description string           `json:"description" binding:"max=1000"`
	Quantity    decimal.Decimal  `json:"quantity"`
	UnitPrice   decimal.Decimal  `json:"unit_price"`
	GSTRate     string           `json:"gst_rate" binding:"max=10"`
	TDSRate     string           `json:"tds_rate" binding:"max=10"`
	BaseTotal   *decimal.Decimal `json:"base_total"` // manual override of quantity x price
}

// CreateRequest represents a request to create a purchase request
type CreateRequest struct {
	Title        string      `json:"title" binding:"required,min=1,max=200"`
	VendorID     uuid.UUID   `json:"vendor_id" binding:"required"`
	RequestDate  string      `json:"request_date" binding:"required,dateiso"`
	Description  string      `json:"description" binding:"max=2000"`
	DocumentName string      `json:"document_name" binding:"max=255"`
	Lines        []LineInput `json:"lines" binding:"required,min=1,dive"`
}

// UpdateRequest represents a partial update to a pending purchase request
type UpdateRequest struct {
	Title        *string     `json:"title" binding:"omitempty,min=1,max=200"`
	RequestDate  *string     `json:"request_date" binding:"omitempty,dateiso"`
	Description  *string     `json:"description" binding:"omitempty,max=2000"`
	DocumentName *string     `json:"document_name" binding:"omitempty,max=255"`
	Lines        []LineInput `json:"lines" binding:"omitempty,min=1,dive"`
}

// ApproveRequest turns a pending request into a purchase order
type ApproveRequest struct {
	PONumber       string `json:"po_number" binding:"required,min=1,max=100"`
	PODocumentName string `json:"po_document_name" binding:"max=255"`
}

// LineResponse represents a line in API responses
type LineResponse struct {
	ID             uuid.UUID       `json:"id"`
	Name           string          `json:"name"`
	AccountID      string          `json:"account_id"`
	Type           string          `json:"type"`
	UOM            string          `json:"uom,omitempty"`
	Description    string          `json:"description,omitempty"`
	Quantity       decimal.Decimal `json:"quantity"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	BaseTotal      decimal.Decimal `json:"base_total"`
	BaseOverridden bool            `json:"base_overridden"`
	GSTRate        decimal.Decimal `json:"gst_rate"`
	TDSRate        decimal.Decimal `json:"tds_rate"`
	GSTAmount      decimal.Decimal `json:"gst_amount"`
	TDSAmount      decimal.Decimal `json:"tds_amount"`
	Payable        decimal.Decimal `json:"payable"`
}

// RequestResponse represents a purchase request in API responses
type RequestResponse struct {
	ID             uuid.UUID       `json:"id"`
	Number         string          `json:"number"`
	Title          string          `json:"title"`
	VendorID       uuid.UUID       `json:"vendor_id"`
	VendorName     string          `json:"vendor_name,omitempty"`
	RequestDate    string          `json:"request_date"`
	Description    string          `json:"description,omitempty"`
	DocumentName   string          `json:"document_name,omitempty"`
	ApprovalState  string          `json:"approval_state"`
	PONumber       string          `json:"po_number,omitempty"`
	PODocumentName string          `json:"po_document_name,omitempty"`
	Lines          []LineResponse  `json:"lines"`
	Total          decimal.Decimal `json:"total"`
	CreatedAt      string          `json:"created_at"`
	UpdatedAt      string          `json:"updated_at"`
}

// SummaryResponse is the tax and balance breakdown of one request
type SummaryResponse struct {
	ID            uuid.UUID       `json:"id"`
	Number        string          `json:"number"`
	PONumber      string          `json:"po_number,omitempty"`
	ApprovalState string          `json:"approval_state"`
	Base          decimal.Decimal `json:"base"`
	GST           decimal.Decimal `json:"gst"`
	TDS           decimal.Decimal `json:"tds"`
	Total         decimal.Decimal `json:"total"`
	Invoiced      decimal.Decimal `json:"invoiced"`
	Remaining     decimal.Decimal `json:"remaining"`
	AdvancesPaid  decimal.Decimal `json:"advances_paid"`
	DebitNotes    decimal.Decimal `json:"debit_notes"`
}

const timeLayout = "2006-01-02T15:04:05Z07:00"

// ToLineResponse converts a domain line to its response form
func ToLineResponse(l *procurement.Line) LineResponse {
	return LineResponse{
		ID:             l.ID,
		Name:           l.Name,
		AccountID:      l.AccountID,
		Type:           string(l.Type),
		UOM:            l.UnitOfMeasure,
		Description:    l.Description,
		Quantity:       l.Quantity,
		UnitPrice:      l.UnitPrice,
		BaseTotal:      l.BaseTotal,
		BaseOverridden: l.BaseOverridden,
		GSTRate:        l.GSTRate,
		TDSRate:        l.TDSRate,
		GSTAmount:      l.GSTAmount,
		TDSAmount:      l.TDSAmount,
		Payable:        l.PayableAmount().Amount(),
	}
}

// ToRequestResponse converts a purchase request to its response form.
// vendorName is resolved by the caller; a dangling vendor reference shows
// as an empty name.
func ToRequestResponse(pr *procurement.PurchaseRequest, vendorName string) RequestResponse {
	lines := make([]LineResponse, 0, len(pr.Lines))
	for i := range pr.Lines {
		lines = append(lines, ToLineResponse(&pr.Lines[i]))
	}
	return RequestResponse{
		ID:             pr.ID,
		Number:         pr.Number,
		Title:          pr.Title,
		VendorID:       pr.VendorID,
		VendorName:     vendorName,
		RequestDate:    pr.RequestDate,
		Description:    pr.Description,
		DocumentName:   pr.DocumentName,
		ApprovalState:  pr.ApprovalState.String(),
		PONumber:       pr.PONumber,
		PODocumentName: pr.PODocumentName,
		Lines:          lines,
		Total:          pr.Total().Amount(),
		CreatedAt:      pr.CreatedAt.Format(timeLayout),
		UpdatedAt:      pr.UpdatedAt.Format(timeLayout),
	}
}

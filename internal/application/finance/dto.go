package finance

import (
	"github.com/expensedesk/backend/internal/domain/finance"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LineAllocationInput apportions an invoice amount to one request line
type LineAllocationInput struct {
	PRLineID uuid.UUID       `json:"pr_line_id" binding:"required"`
	Amount   decimal.Decimal `json:"amount"`
}

// CreateInvoiceRequest represents a request to record a vendor invoice
type CreateInvoiceRequest struct {
	PRID         uuid.UUID             `json:"pr_id" binding:"required"`
	Number       string                `json:"number" binding:"required,min=1,max=100"`
	Date         string                `json:"date" binding:"required,dateiso"`
	DueDate      string                `json:"due_date" binding:"required,dateiso"`
	Description  string                `json:"description" binding:"max=2000"`
	DocumentName string                `json:"document_name" binding:"max=255"`
	Allocations  []LineAllocationInput `json:"allocations" binding:"required,min=1,dive"`
}

// InvoiceResponse represents an invoice in API responses
type InvoiceResponse struct {
	ID           uuid.UUID                `json:"id"`
	PRID         uuid.UUID                `json:"pr_id"`
	VendorID     uuid.UUID                `json:"vendor_id"`
	VendorName   string                   `json:"vendor_name,omitempty"`
	Number       string                   `json:"number"`
	Date         string                   `json:"date"`
	DueDate      string                   `json:"due_date"`
	Description  string                   `json:"description,omitempty"`
	DocumentName string                   `json:"document_name,omitempty"`
	Allocations  []finance.LineAllocation `json:"allocations"`
	Total        decimal.Decimal          `json:"total"`
	Outstanding  decimal.Decimal          `json:"outstanding"`
	CreatedAt    string                   `json:"created_at"`
}

// CreateDebitNoteRequest represents a request to record a debit note
type CreateDebitNoteRequest struct {
	PRID          uuid.UUID       `json:"pr_id" binding:"required"`
	InvoiceID     *uuid.UUID      `json:"invoice_id"`
	Title         string          `json:"title" binding:"required,min=1,max=200"`
	Amount        decimal.Decimal `json:"amount"`
	Date          string          `json:"date" binding:"required,dateiso"`
	Description   string          `json:"description" binding:"max=2000"`
	VendorRef     string          `json:"vendor_ref" binding:"max=100"`
	DocumentNames []string        `json:"document_names"`
}

// DebitNoteResponse represents a debit note in API responses
type DebitNoteResponse struct {
	ID            uuid.UUID       `json:"id"`
	PRID          uuid.UUID       `json:"pr_id"`
	VendorID      uuid.UUID       `json:"vendor_id"`
	InvoiceID     *uuid.UUID      `json:"invoice_id,omitempty"`
	Title         string          `json:"title"`
	Amount        decimal.Decimal `json:"amount"`
	Date          string          `json:"date"`
	Description   string          `json:"description,omitempty"`
	VendorRef     string          `json:"vendor_ref,omitempty"`
	DocumentNames []string        `json:"document_names,omitempty"`
	CreatedAt     string          `json:"created_at"`
}

// InvoiceAllocationInput apportions a voucher amount to one invoice
type InvoiceAllocationInput struct {
	InvoiceID uuid.UUID       `json:"invoice_id" binding:"required"`
	Amount    decimal.Decimal `json:"amount"`
}

// AdvanceAllocationInput apportions an advance to one approved PO
type AdvanceAllocationInput struct {
	PRID   uuid.UUID       `json:"pr_id" binding:"required"`
	Amount decimal.Decimal `json:"amount"`
}

// ModeDetailsInput carries payment-mode-specific fields
type ModeDetailsInput struct {
	TransactionNumber string `json:"transaction_number" binding:"max=100"`
	Bank              string `json:"bank" binding:"max=200"`
	ChequeDate        string `json:"cheque_date" binding:"omitempty,dateiso"`
	ChequeNumber      string `json:"cheque_number" binding:"max=50"`
	DDDate            string `json:"dd_date" binding:"omitempty,dateiso"`
	DepositSlipNumber string `json:"deposit_slip_number" binding:"max=100"`
}

// CreateVoucherRequest represents a request to record a payment voucher.
// The same shape is used for dry-run validation.
type CreateVoucherRequest struct {
	VendorID           uuid.UUID                `json:"vendor_id" binding:"required"`
	PVNumber           string                   `json:"pv_number" binding:"required,min=1,max=100"`
	Mode               string                   `json:"mode" binding:"required,oneof=UPI Cash Cheque DemandDraft AccountTransfer"`
	ModeDetails        ModeDetailsInput         `json:"mode_details"`
	Source             string                   `json:"source" binding:"required,oneof=Invoice Advance"`
	Date               string                   `json:"date" binding:"required,dateiso"`
	Description        string                   `json:"description" binding:"max=2000"`
	DocumentName       string                   `json:"document_name" binding:"max=255"`
	InvoiceAllocations []InvoiceAllocationInput `json:"invoice_allocations" binding:"omitempty,dive"`
	AdvanceAllocations []AdvanceAllocationInput `json:"advance_allocations" binding:"omitempty,dive"`
}

// VoucherResponse represents a payment voucher in API responses
type VoucherResponse struct {
	ID                 uuid.UUID                   `json:"id"`
	VendorID           uuid.UUID                   `json:"vendor_id"`
	VendorName         string                      `json:"vendor_name,omitempty"`
	PVNumber           string                      `json:"pv_number"`
	Mode               string                      `json:"mode"`
	ModeDetails        finance.ModeDetails         `json:"mode_details"`
	Source             string                      `json:"source"`
	Date               string                      `json:"date"`
	Description        string                      `json:"description,omitempty"`
	DocumentName       string                      `json:"document_name,omitempty"`
	InvoiceAllocations []finance.InvoiceAllocation `json:"invoice_allocations,omitempty"`
	AdvanceAllocations []finance.AdvanceAllocation `json:"advance_allocations,omitempty"`
	Total              decimal.Decimal             `json:"total"`
	CreatedAt          string                      `json:"created_at"`
}

// ValidationResponse is the outcome of a voucher dry-run validation
type ValidationResponse struct {
	Savable bool                      `json:"savable"`
	Issues  []finance.ValidationIssue `json:"issues"`
}

const timeLayout = "2006-01-02T15:04:05Z07:00"

func toVoucherDraft(req CreateVoucherRequest) finance.VoucherDraft {
	invoiceAllocs := make([]finance.InvoiceAllocation, 0, len(req.InvoiceAllocations))
	for _, a := range req.InvoiceAllocations {
		invoiceAllocs = append(invoiceAllocs, finance.InvoiceAllocation{InvoiceID: a.InvoiceID, Amount: a.Amount})
	}
	advanceAllocs := make([]finance.AdvanceAllocation, 0, len(req.AdvanceAllocations))
	for _, a := range req.AdvanceAllocations {
		advanceAllocs = append(advanceAllocs, finance.AdvanceAllocation{PRID: a.PRID, Amount: a.Amount})
	}
	return finance.VoucherDraft{
		VendorID: req.VendorID,
		PVNumber: req.PVNumber,
		Mode:     finance.PaymentMode(req.Mode),
		ModeDetails: finance.ModeDetails{
			TransactionNumber: req.ModeDetails.TransactionNumber,
			Bank:              req.ModeDetails.Bank,
			ChequeDate:        req.ModeDetails.ChequeDate,
			ChequeNumber:      req.ModeDetails.ChequeNumber,
			DDDate:            req.ModeDetails.DDDate,
			DepositSlipNumber: req.ModeDetails.DepositSlipNumber,
		},
		Source:             finance.VoucherSource(req.Source),
		Date:               req.Date,
		Description:        req.Description,
		DocumentName:       req.DocumentName,
		InvoiceAllocations: invoiceAllocs,
		AdvanceAllocations: advanceAllocs,
	}
}

// ToDebitNoteResponse converts a debit note to its response form
func ToDebitNoteResponse(d *finance.DebitNote) DebitNoteResponse {
	return DebitNoteResponse{
		ID:            d.ID,
		PRID:          d.PRID,
		VendorID:      d.VendorID,
		InvoiceID:     d.InvoiceID,
		Title:         d.Title,
		Amount:        d.Amount,
		Date:          d.Date,
		Description:   d.Description,
		VendorRef:     d.VendorRef,
		DocumentNames: d.DocumentNames,
		CreatedAt:     d.CreatedAt.Format(timeLayout),
	}
}

package finance

import (
	"github.com/expensedesk/backend/internal/domain/shared"
	"github.com/expensedesk/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DebitNote represents a reduction of a vendor's outstanding claim.
// It is raised either against a specific invoice or against the PO itself
// (InvoiceID nil). Debit notes are append-only once recorded.
type DebitNote struct {
	shared.BaseEntity
	PRID          uuid.UUID       `json:"pr_id"`
	VendorID      uuid.UUID       `json:"vendor_id"`
	InvoiceID     *uuid.UUID      `json:"invoice_id,omitempty"`
	Title         string          `json:"title"`
	Amount        decimal.Decimal `json:"amount"`
	Date          string          `json:"date"` // YYYY-MM-DD
	Description   string          `json:"description,omitempty"`
	VendorRef     string          `json:"vendor_ref,omitempty"` // vendor credit note reference
	DocumentNames []string        `json:"document_names,omitempty"`
}

// NewDebitNote creates a debit note against a PO, or against an invoice when
// invoiceID is non-nil
func NewDebitNote(prID, vendorID uuid.UUID, invoiceID *uuid.UUID, title string, amount decimal.Decimal, date string) (*DebitNote, error) {
	if prID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PR", "Purchase request ID cannot be empty")
	}
	if vendorID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_VENDOR", "Vendor ID cannot be empty")
	}
	if title == "" {
		return nil, shared.NewDomainError("INVALID_TITLE", "Debit note title cannot be empty")
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Debit note amount must be positive")
	}
	if date == "" {
		return nil, shared.NewDomainError("INVALID_DATE", "Debit note date is required")
	}
	if invoiceID != nil && *invoiceID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INVOICE", "Invoice ID cannot be the nil id")
	}

	return &DebitNote{
		BaseEntity: shared.NewBaseEntity(),
		PRID:       prID,
		VendorID:   vendorID,
		InvoiceID:  invoiceID,
		Title:      title,
		Amount:     amount,
		Date:       date,
	}, nil
}

// IsAgainstInvoice returns true when the note reduces a specific invoice
func (d *DebitNote) IsAgainstInvoice() bool {
	return d.InvoiceID != nil
}

// AmountMoney returns the note amount as Money
func (d *DebitNote) AmountMoney() valueobject.Money {
	return valueobject.NewMoneyINR(d.Amount)
}

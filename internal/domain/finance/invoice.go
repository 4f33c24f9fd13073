package finance

import (
	"github.com/expensedesk/backend/internal/domain/shared"
	"github.com/expensedesk/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LineAllocation apportions an invoice amount to a purchase request line
type LineAllocation struct {
	PRLineID uuid.UUID       `json:"pr_line_id"`
	Amount   decimal.Decimal `json:"amount"`
}

// AmountMoney returns the allocated amount as Money
func (a *LineAllocation) AmountMoney() valueobject.Money {
	return valueobject.NewMoneyINR(a.Amount)
}

// Invoice represents a vendor invoice raised against a purchase request.
// Invoices are append-only: once recorded they are never mutated in place.
type Invoice struct {
	shared.BaseEntity
	PRID         uuid.UUID        `json:"pr_id"`
	VendorID     uuid.UUID        `json:"vendor_id"`
	Number       string           `json:"number"`
	Date         string           `json:"date"`     // YYYY-MM-DD
	DueDate      string           `json:"due_date"` // YYYY-MM-DD
	Description  string           `json:"description,omitempty"`
	DocumentName string           `json:"document_name,omitempty"`
	Allocations  []LineAllocation `json:"allocations"`
	Total        decimal.Decimal  `json:"total"`
}

// NewInvoice creates an invoice; the total is the sum of line allocations
func NewInvoice(prID, vendorID uuid.UUID, number, date, dueDate string, allocations []LineAllocation) (*Invoice, error) {
	if prID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PR", "Purchase request ID cannot be empty")
	}
	if vendorID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_VENDOR", "Vendor ID cannot be empty")
	}
	if number == "" {
		return nil, shared.NewDomainError("INVALID_INVOICE_NUMBER", "Invoice number cannot be empty")
	}
	if date == "" {
		return nil, shared.NewDomainError("INVALID_INVOICE_DATE", "Invoice date is required")
	}
	if dueDate == "" {
		return nil, shared.NewDomainError("INVALID_DUE_DATE", "Invoice due date is required")
	}
	if len(allocations) == 0 {
		return nil, shared.NewDomainError("INVALID_ALLOCATIONS", "Invoice needs at least one line allocation")
	}

	total := decimal.Zero
	for _, a := range allocations {
		if a.PRLineID == uuid.Nil {
			return nil, shared.NewDomainError("INVALID_ALLOCATIONS", "Allocation must reference a purchase request line")
		}
		if a.Amount.LessThanOrEqual(decimal.Zero) {
			return nil, shared.NewDomainError("INVALID_AMOUNT", "Allocation amount must be positive")
		}
		total = total.Add(a.Amount)
	}

	return &Invoice{
		BaseEntity:  shared.NewBaseEntity(),
		PRID:        prID,
		VendorID:    vendorID,
		Number:      number,
		Date:        date,
		DueDate:     dueDate,
		Allocations: allocations,
		Total:       total,
	}, nil
}

// TotalMoney returns the invoice total as Money
func (inv *Invoice) TotalMoney() valueobject.Money {
	return valueobject.NewMoneyINR(inv.Total)
}

// AllocationForLine returns the allocation against a specific PR line, or nil
func (inv *Invoice) AllocationForLine(prLineID uuid.UUID) *LineAllocation {
	for i := range inv.Allocations {
		if inv.Allocations[i].PRLineID == prLineID {
			return &inv.Allocations[i]
		}
	}
	return nil
}

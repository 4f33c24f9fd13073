package finance

import (
	"github.com/expensedesk/backend/internal/domain/shared"
	"github.com/expensedesk/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentMode represents how a payment voucher was disbursed
type PaymentMode string

const (
	PaymentModeUPI             PaymentMode = "UPI"
	PaymentModeCash            PaymentMode = "Cash"
	PaymentModeCheque          PaymentMode = "Cheque"
	PaymentModeDemandDraft     PaymentMode = "DemandDraft"
	PaymentModeAccountTransfer PaymentMode = "AccountTransfer"
)

// IsValid checks if the mode is a known value
func (m PaymentMode) IsValid() bool {
	switch m {
	case PaymentModeUPI, PaymentModeCash, PaymentModeCheque,
		PaymentModeDemandDraft, PaymentModeAccountTransfer:
		return true
	}
	return false
}

// String returns the string representation of PaymentMode
func (m PaymentMode) String() string {
	return string(m)
}

// VoucherSource discriminates what a voucher pays for
type VoucherSource string

const (
	// VoucherSourceInvoice pays one or more recorded invoices
	VoucherSourceInvoice VoucherSource = "Invoice"
	// VoucherSourceAdvance pays an advance against approved purchase orders
	VoucherSourceAdvance VoucherSource = "Advance"
)

// IsValid checks if the source is a known value
func (s VoucherSource) IsValid() bool {
	return s == VoucherSourceInvoice || s == VoucherSourceAdvance
}

// ModeDetails carries the payment-mode-specific fields.
// Which fields are required depends on the mode; see ValidateVoucher.
type ModeDetails struct {
	TransactionNumber string `json:"transaction_number,omitempty"`
	Bank              string `json:"bank,omitempty"`
	ChequeDate        string `json:"cheque_date,omitempty"` // YYYY-MM-DD
	ChequeNumber      string `json:"cheque_number,omitempty"`
	DDDate            string `json:"dd_date,omitempty"` // YYYY-MM-DD
	DepositSlipNumber string `json:"deposit_slip_number,omitempty"`
}

// InvoiceAllocation apportions a voucher amount to an invoice
type InvoiceAllocation struct {
	InvoiceID uuid.UUID       `json:"invoice_id"`
	Amount    decimal.Decimal `json:"amount"`
}

// AmountMoney returns the allocated amount as Money
func (a *InvoiceAllocation) AmountMoney() valueobject.Money {
	return valueobject.NewMoneyINR(a.Amount)
}

// AdvanceAllocation apportions an advance payment to an approved PO
type AdvanceAllocation struct {
	PRID   uuid.UUID       `json:"pr_id"`
	Amount decimal.Decimal `json:"amount"`
}

// AmountMoney returns the allocated amount as Money
func (a *AdvanceAllocation) AmountMoney() valueobject.Money {
	return valueobject.NewMoneyINR(a.Amount)
}

// PaymentVoucher records funds disbursed to a vendor, either against
// invoices or as an advance against approved purchase orders.
// Vouchers are append-only once recorded.
type PaymentVoucher struct {
	shared.BaseEntity
	VendorID           uuid.UUID           `json:"vendor_id"`
	PVNumber           string              `json:"pv_number"`
	Mode               PaymentMode         `json:"mode"`
	ModeDetails        ModeDetails         `json:"mode_details"`
	Source             VoucherSource       `json:"source"`
	Date               string              `json:"date"` // YYYY-MM-DD
	Description        string              `json:"description,omitempty"`
	DocumentName       string              `json:"document_name,omitempty"`
	InvoiceAllocations []InvoiceAllocation `json:"invoice_allocations,omitempty"`
	AdvanceAllocations []AdvanceAllocation `json:"advance_allocations,omitempty"`
	Total              decimal.Decimal     `json:"total"`
}

// VoucherDraft carries the fields of a voucher before it is recorded.
// Drafts are what the validator inspects; a draft that passes validation
// becomes an immutable PaymentVoucher via NewPaymentVoucher.
type VoucherDraft struct {
	VendorID           uuid.UUID
	PVNumber           string
	Mode               PaymentMode
	ModeDetails        ModeDetails
	Source             VoucherSource
	Date               string
	Description        string
	DocumentName       string
	InvoiceAllocations []InvoiceAllocation
	AdvanceAllocations []AdvanceAllocation
}

// Total computes the draft total from the allocations of the active source
func (d *VoucherDraft) Total() decimal.Decimal {
	total := decimal.Zero
	switch d.Source {
	case VoucherSourceInvoice:
		for _, a := range d.InvoiceAllocations {
			total = total.Add(a.Amount)
		}
	case VoucherSourceAdvance:
		for _, a := range d.AdvanceAllocations {
			total = total.Add(a.Amount)
		}
	}
	return total
}

// NewPaymentVoucher records a draft as a voucher. Structural checks only;
// the business rules (balances, mode fields) are enforced beforehand by
// ValidateVoucherDraft.
func NewPaymentVoucher(d VoucherDraft) (*PaymentVoucher, error) {
	if d.VendorID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_VENDOR", "Vendor ID cannot be empty")
	}
	if d.PVNumber == "" {
		return nil, shared.NewDomainError("INVALID_PV_NUMBER", "Payment voucher number cannot be empty")
	}
	if !d.Mode.IsValid() {
		return nil, shared.NewDomainError("INVALID_MODE", "Payment mode is not valid")
	}
	if !d.Source.IsValid() {
		return nil, shared.NewDomainError("INVALID_SOURCE", "Voucher source must be Invoice or Advance")
	}
	if d.Date == "" {
		return nil, shared.NewDomainError("INVALID_DATE", "Payment date is required")
	}

	pv := &PaymentVoucher{
		BaseEntity:   shared.NewBaseEntity(),
		VendorID:     d.VendorID,
		PVNumber:     d.PVNumber,
		Mode:         d.Mode,
		ModeDetails:  d.ModeDetails,
		Source:       d.Source,
		Date:         d.Date,
		Description:  d.Description,
		DocumentName: d.DocumentName,
	}
	switch d.Source {
	case VoucherSourceInvoice:
		pv.InvoiceAllocations = d.InvoiceAllocations
	case VoucherSourceAdvance:
		pv.AdvanceAllocations = d.AdvanceAllocations
	}
	pv.Total = d.Total()
	return pv, nil
}

// TotalMoney returns the voucher total as Money
func (pv *PaymentVoucher) TotalMoney() valueobject.Money {
	return valueobject.NewMoneyINR(pv.Total)
}

// AllocationForInvoice returns the allocation against a specific invoice, or nil
func (pv *PaymentVoucher) AllocationForInvoice(invoiceID uuid.UUID) *InvoiceAllocation {
	for i := range pv.InvoiceAllocations {
		if pv.InvoiceAllocations[i].InvoiceID == invoiceID {
			return &pv.InvoiceAllocations[i]
		}
	}
	return nil
}

package finance

import (
	"fmt"

	"github.com/expensedesk/backend/internal/domain/procurement"
	"github.com/expensedesk/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// IssueKind classifies why a voucher draft is not savable
type IssueKind string

const (
	IssueMissingField           IssueKind = "MissingField"
	IssueAmountExceedsRemaining IssueKind = "AmountExceedsRemaining"
	IssueInvalidModeFields      IssueKind = "InvalidModeFields"
)

// ValidationIssue is one blocking reason found on a voucher draft
type ValidationIssue struct {
	Kind    IssueKind `json:"kind"`
	Field   string    `json:"field"`
	Message string    `json:"message"`
}

// VoucherContext is the set of records a draft is validated against
type VoucherContext struct {
	Requests   []*procurement.PurchaseRequest
	Invoices   []*Invoice
	Vouchers   []*PaymentVoucher
	DebitNotes []*DebitNote
}

// ValidateVoucherDraft checks a draft against the recorded documents and
// returns every blocking issue. An empty result means the draft is savable.
// Validation is synchronous and derived: it is re-run on every change, never
// cached.
func ValidateVoucherDraft(d VoucherDraft, ctx VoucherContext) []ValidationIssue {
	var issues []ValidationIssue

	if d.VendorID == uuid.Nil {
		issues = append(issues, ValidationIssue{IssueMissingField, "vendor_id", "Vendor is required"})
	}
	if d.PVNumber == "" {
		issues = append(issues, ValidationIssue{IssueMissingField, "pv_number", "Payment voucher number is required"})
	}
	if d.Date == "" {
		issues = append(issues, ValidationIssue{IssueMissingField, "date", "Payment date is required"})
	}
	if !d.Source.IsValid() {
		issues = append(issues, ValidationIssue{IssueMissingField, "source", "Voucher source must be Invoice or Advance"})
	}

	switch d.Source {
	case VoucherSourceInvoice:
		issues = append(issues, validateInvoiceAllocations(d, ctx)...)
	case VoucherSourceAdvance:
		issues = append(issues, validateAdvanceAllocations(d, ctx)...)
	}

	issues = append(issues, validateModeFields(d)...)

	if d.Total().LessThanOrEqual(decimal.Zero) {
		issues = append(issues, ValidationIssue{IssueMissingField, "total", "Total payment amount must be positive"})
	}

	return issues
}

func validateInvoiceAllocations(d VoucherDraft, ctx VoucherContext) []ValidationIssue {
	if len(d.InvoiceAllocations) == 0 {
		return []ValidationIssue{{IssueMissingField, "invoice_allocations", "At least one invoice must be selected"}}
	}

	var issues []ValidationIssue

	// The API accepts a list, so the same invoice may appear more than
	// once. Compare the aggregated amount per invoice, not each entry.
	totals := make(map[uuid.UUID]decimal.Decimal)
	var order []uuid.UUID
	for _, a := range d.InvoiceAllocations {
		if a.Amount.LessThanOrEqual(decimal.Zero) {
			issues = append(issues, ValidationIssue{
				IssueMissingField,
				"invoice_allocations",
				fmt.Sprintf("Amount for invoice %s must be positive", a.InvoiceID),
			})
			continue
		}
		if _, seen := totals[a.InvoiceID]; !seen {
			order = append(order, a.InvoiceID)
		}
		totals[a.InvoiceID] = totals[a.InvoiceID].Add(a.Amount)
	}

	for _, invoiceID := range order {
		allocated := totals[invoiceID]

		// an unknown invoice has zero outstanding, so any positive amount fails
		outstanding := InvoiceOutstanding(ctx.Invoices, ctx.Vouchers, ctx.DebitNotes, invoiceID)
		if exceeds, _ := valueobject.NewMoneyINR(allocated).GreaterThan(outstanding); exceeds {
			issues = append(issues, ValidationIssue{
				IssueAmountExceedsRemaining,
				"invoice_allocations",
				fmt.Sprintf("Amount %s for invoice %s exceeds its outstanding balance %s",
					allocated.StringFixed(2), invoiceID, outstanding.Amount().StringFixed(2)),
			})
		}
	}
	return issues
}

func validateAdvanceAllocations(d VoucherDraft, ctx VoucherContext) []ValidationIssue {
	anyPositive := false
	for _, a := range d.AdvanceAllocations {
		if a.Amount.GreaterThan(decimal.Zero) {
			anyPositive = true
			break
		}
	}
	if !anyPositive {
		return []ValidationIssue{{IssueMissingField, "advance_allocations", "An advance amount against a purchase order is required"}}
	}

	var issues []ValidationIssue

	// Aggregate per purchase request for the same reason as invoices
	totals := make(map[uuid.UUID]decimal.Decimal)
	var order []uuid.UUID
	for _, a := range d.AdvanceAllocations {
		if a.Amount.LessThanOrEqual(decimal.Zero) {
			continue
		}
		if _, seen := totals[a.PRID]; !seen {
			order = append(order, a.PRID)
		}
		totals[a.PRID] = totals[a.PRID].Add(a.Amount)
	}

	for _, prID := range order {
		advanced := totals[prID]

		var pr *procurement.PurchaseRequest
		for _, p := range ctx.Requests {
			if p.ID == prID {
				pr = p
				break
			}
		}
		if pr == nil || !pr.IsApproved() || pr.PONumber == "" {
			issues = append(issues, ValidationIssue{
				IssueMissingField,
				"advance_allocations",
				fmt.Sprintf("Advance must target an approved purchase order, %s is not one", prID),
			})
			continue
		}

		remaining := RemainingForPR(pr.Total(), ctx.Invoices, pr.ID)
		if exceeds, _ := valueobject.NewMoneyINR(advanced).GreaterThan(remaining); exceeds {
			issues = append(issues, ValidationIssue{
				IssueAmountExceedsRemaining,
				"advance_allocations",
				fmt.Sprintf("Advance %s for PO %s exceeds the remaining amount %s",
					advanced.StringFixed(2), pr.PONumber, remaining.Amount().StringFixed(2)),
			})
		}
	}
	return issues
}

func validateModeFields(d VoucherDraft) []ValidationIssue {
	var issues []ValidationIssue
	missing := func(field string) {
		issues = append(issues, ValidationIssue{
			IssueInvalidModeFields,
			field,
			fmt.Sprintf("%s is required for %s payments", field, d.Mode),
		})
	}

	switch d.Mode {
	case PaymentModeUPI:
		if d.ModeDetails.TransactionNumber == "" {
			missing("transaction_number")
		}
	case PaymentModeCheque:
		if d.ModeDetails.Bank == "" {
			missing("bank")
		}
		if d.ModeDetails.ChequeDate == "" {
			missing("cheque_date")
		}
		if d.ModeDetails.ChequeNumber == "" {
			missing("cheque_number")
		}
	case PaymentModeDemandDraft:
		if d.ModeDetails.Bank == "" {
			missing("bank")
		}
		if d.ModeDetails.DDDate == "" {
			missing("dd_date")
		}
		if d.ModeDetails.DepositSlipNumber == "" {
			missing("deposit_slip_number")
		}
	case PaymentModeAccountTransfer:
		if d.ModeDetails.Bank == "" {
			missing("bank")
		}
		if d.ModeDetails.TransactionNumber == "" {
			missing("transaction_number")
		}
	case PaymentModeCash:
		// no extra fields
	default:
		issues = append(issues, ValidationIssue{IssueInvalidModeFields, "mode", "Payment mode is not valid"})
	}
	return issues
}

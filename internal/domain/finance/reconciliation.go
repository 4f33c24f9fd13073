package finance

import (
	"github.com/expensedesk/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Reconciliation helpers derive balances from the recorded documents.
// All functions are pure: they walk the given slices and never cache,
// so every caller sees the balance implied by the current records.

// InvoicedTotalForPR sums the totals of invoices raised against a purchase request
func InvoicedTotalForPR(invoices []*Invoice, prID uuid.UUID) valueobject.Money {
	total := decimal.Zero
	for _, inv := range invoices {
		if inv.PRID == prID {
			total = total.Add(inv.Total)
		}
	}
	return valueobject.NewMoneyINR(total)
}

// RemainingForPR returns how much of a purchase request is still uninvoiced.
// Clamped at zero: over-invoicing in historical data never yields a negative
// remaining balance.
func RemainingForPR(prTotal valueobject.Money, invoices []*Invoice, prID uuid.UUID) valueobject.Money {
	return prTotal.MustSubtract(InvoicedTotalForPR(invoices, prID)).ClampZero()
}

// VouchersTotalForInvoice sums voucher allocations made against an invoice
func VouchersTotalForInvoice(vouchers []*PaymentVoucher, invoiceID uuid.UUID) valueobject.Money {
	total := decimal.Zero
	for _, pv := range vouchers {
		for _, a := range pv.InvoiceAllocations {
			if a.InvoiceID == invoiceID {
				total = total.Add(a.Amount)
			}
		}
	}
	return valueobject.NewMoneyINR(total)
}

// AdvancesTotalForPR sums advance voucher allocations made against a purchase order
func AdvancesTotalForPR(vouchers []*PaymentVoucher, prID uuid.UUID) valueobject.Money {
	total := decimal.Zero
	for _, pv := range vouchers {
		for _, a := range pv.AdvanceAllocations {
			if a.PRID == prID {
				total = total.Add(a.Amount)
			}
		}
	}
	return valueobject.NewMoneyINR(total)
}

// DebitNotesTotalForInvoice sums debit notes raised against an invoice
func DebitNotesTotalForInvoice(notes []*DebitNote, invoiceID uuid.UUID) valueobject.Money {
	total := decimal.Zero
	for _, d := range notes {
		if d.InvoiceID != nil && *d.InvoiceID == invoiceID {
			total = total.Add(d.Amount)
		}
	}
	return valueobject.NewMoneyINR(total)
}

// DebitNotesTotalForPR sums debit notes raised directly against a PO
// (notes linked to a specific invoice are excluded)
func DebitNotesTotalForPR(notes []*DebitNote, prID uuid.UUID) valueobject.Money {
	total := decimal.Zero
	for _, d := range notes {
		if d.PRID == prID && d.InvoiceID == nil {
			total = total.Add(d.Amount)
		}
	}
	return valueobject.NewMoneyINR(total)
}

// InvoiceOutstanding returns the unpaid, un-debited balance of an invoice:
// total minus voucher allocations minus debit notes, clamped at zero.
// Equals the invoice total when nothing references the invoice yet.
func InvoiceOutstanding(invoices []*Invoice, vouchers []*PaymentVoucher, notes []*DebitNote, invoiceID uuid.UUID) valueobject.Money {
	var invoice *Invoice
	for _, inv := range invoices {
		if inv.ID == invoiceID {
			invoice = inv
			break
		}
	}
	if invoice == nil {
		return valueobject.ZeroINR()
	}

	paid := VouchersTotalForInvoice(vouchers, invoiceID)
	debited := DebitNotesTotalForInvoice(notes, invoiceID)
	return invoice.TotalMoney().MustSubtract(paid).MustSubtract(debited).ClampZero()
}

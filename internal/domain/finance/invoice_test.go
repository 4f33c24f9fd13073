package finance

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestNewInvoice(t *testing.T) {
	prID := uuid.New()
	vendorID := uuid.New()
	lineID := uuid.New()

	t.Run("computes total from allocations", func(t *testing.T) {
		inv, err := NewInvoice(prID, vendorID, "INV-001", "2026-08-01", "2026-09-01", []LineAllocation{
			{PRLineID: lineID, Amount: dec("700")},
			{PRLineID: uuid.New(), Amount: dec("460")},
		})
		require.NoError(t, err)
		assert.True(t, inv.Total.Equal(dec("1160")))
		assert.Len(t, inv.Allocations, 2)
	})

	t.Run("rejects missing identifiers and dates", func(t *testing.T) {
		alloc := []LineAllocation{{PRLineID: lineID, Amount: dec("100")}}

		_, err := NewInvoice(uuid.Nil, vendorID, "INV-001", "2026-08-01", "2026-09-01", alloc)
		assert.Error(t, err)
		_, err = NewInvoice(prID, uuid.Nil, "INV-001", "2026-08-01", "2026-09-01", alloc)
		assert.Error(t, err)
		_, err = NewInvoice(prID, vendorID, "", "2026-08-01", "2026-09-01", alloc)
		assert.Error(t, err)
		_, err = NewInvoice(prID, vendorID, "INV-001", "", "2026-09-01", alloc)
		assert.Error(t, err)
		_, err = NewInvoice(prID, vendorID, "INV-001", "2026-08-01", "", alloc)
		assert.Error(t, err)
	})

	t.Run("rejects empty or non-positive allocations", func(t *testing.T) {
		_, err := NewInvoice(prID, vendorID, "INV-001", "2026-08-01", "2026-09-01", nil)
		assert.Error(t, err)

		_, err = NewInvoice(prID, vendorID, "INV-001", "2026-08-01", "2026-09-01", []LineAllocation{
			{PRLineID: lineID, Amount: dec("0")},
		})
		assert.Error(t, err)

		_, err = NewInvoice(prID, vendorID, "INV-001", "2026-08-01", "2026-09-01", []LineAllocation{
			{PRLineID: uuid.Nil, Amount: dec("10")},
		})
		assert.Error(t, err)
	})
}

func TestInvoiceAllocationForLine(t *testing.T) {
	lineID := uuid.New()
	inv, err := NewInvoice(uuid.New(), uuid.New(), "INV-001", "2026-08-01", "2026-09-01", []LineAllocation{
		{PRLineID: lineID, Amount: dec("500")},
	})
	require.NoError(t, err)

	found := inv.AllocationForLine(lineID)
	require.NotNil(t, found)
	assert.True(t, found.Amount.Equal(dec("500")))

	assert.Nil(t, inv.AllocationForLine(uuid.New()))
}

func TestNewDebitNote(t *testing.T) {
	prID := uuid.New()
	vendorID := uuid.New()

	t.Run("against PO", func(t *testing.T) {
		dn, err := NewDebitNote(prID, vendorID, nil, "Damaged goods", dec("150"), "2026-08-10")
		require.NoError(t, err)
		assert.False(t, dn.IsAgainstInvoice())
	})

	t.Run("against invoice", func(t *testing.T) {
		invID := uuid.New()
		dn, err := NewDebitNote(prID, vendorID, &invID, "Short supply", dec("90"), "2026-08-10")
		require.NoError(t, err)
		assert.True(t, dn.IsAgainstInvoice())
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		_, err := NewDebitNote(uuid.Nil, vendorID, nil, "x", dec("1"), "2026-08-10")
		assert.Error(t, err)
		_, err = NewDebitNote(prID, vendorID, nil, "", dec("1"), "2026-08-10")
		assert.Error(t, err)
		_, err = NewDebitNote(prID, vendorID, nil, "x", dec("0"), "2026-08-10")
		assert.Error(t, err)
		_, err = NewDebitNote(prID, vendorID, nil, "x", dec("-5"), "2026-08-10")
		assert.Error(t, err)
		_, err = NewDebitNote(prID, vendorID, nil, "x", dec("1"), "")
		assert.Error(t, err)
		nilID := uuid.Nil
		_, err = NewDebitNote(prID, vendorID, &nilID, "x", dec("1"), "2026-08-10")
		assert.Error(t, err)
	})
}

func TestNewPaymentVoucherFromDraft(t *testing.T) {
	draft := VoucherDraft{
		VendorID: uuid.New(),
		PVNumber: "PV-001",
		Mode:     PaymentModeCash,
		Source:   VoucherSourceInvoice,
		Date:     "2026-08-15",
		InvoiceAllocations: []InvoiceAllocation{
			{InvoiceID: uuid.New(), Amount: dec("1160")},
		},
	}

	pv, err := NewPaymentVoucher(draft)
	require.NoError(t, err)
	assert.True(t, pv.Total.Equal(dec("1160")))
	assert.Equal(t, VoucherSourceInvoice, pv.Source)
	assert.Empty(t, pv.AdvanceAllocations)

	t.Run("advance source totals advances", func(t *testing.T) {
		d := draft
		d.Source = VoucherSourceAdvance
		d.InvoiceAllocations = nil
		d.AdvanceAllocations = []AdvanceAllocation{{PRID: uuid.New(), Amount: dec("500")}}
		pv, err := NewPaymentVoucher(d)
		require.NoError(t, err)
		assert.True(t, pv.Total.Equal(dec("500")))
		assert.Empty(t, pv.InvoiceAllocations)
	})

	t.Run("structural rejections", func(t *testing.T) {
		d := draft
		d.VendorID = uuid.Nil
		_, err := NewPaymentVoucher(d)
		assert.Error(t, err)

		d = draft
		d.PVNumber = ""
		_, err = NewPaymentVoucher(d)
		assert.Error(t, err)

		d = draft
		d.Mode = "Barter"
		_, err = NewPaymentVoucher(d)
		assert.Error(t, err)

		d = draft
		d.Date = ""
		_, err = NewPaymentVoucher(d)
		assert.Error(t, err)
	})
}

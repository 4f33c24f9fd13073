package finance

import (
	"context"
	"testing"

	appproc "github.com/expensedesk/backend/internal/application/procurement"
	appvendors "github.com/expensedesk/backend/internal/application/vendors"
	"github.com/expensedesk/backend/internal/domain/finance"
	"github.com/expensedesk/backend/internal/domain/shared"
	"github.com/expensedesk/backend/internal/store"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memorySnapshotter struct {
	data []byte
}

func (m *memorySnapshotter) Read(_ context.Context) ([]byte, error) {
	if m.data == nil {
		return nil, store.ErrNoSnapshot
	}
	return m.data, nil
}

func (m *memorySnapshotter) Write(_ context.Context, data []byte) error {
	m.data = append([]byte(nil), data...)
	return nil
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// testEnv wires the full service stack over one in-memory store
type testEnv struct {
	store      *store.Store
	invoices   *InvoiceService
	vouchers   *VoucherService
	debitNotes *DebitNoteService
	requests   *appproc.RequestService
	vendorID   uuid.UUID
	prID       uuid.UUID
}

// createTestEnv seeds a vendor and an approved PO worth 1160
func createTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()
	st := store.NewStore(&memorySnapshotter{}, zap.NewNop())
	require.NoError(t, st.Load(ctx))

	v, err := appvendors.NewVendorService(st).Create(ctx, appvendors.CreateVendorRequest{Name: "Mehta Suppliers"})
	require.NoError(t, err)

	requests := appproc.NewRequestService(st)
	pr, err := requests.Create(ctx, appproc.CreateRequest{
		Title:       "Office furniture",
		VendorID:    v.ID,
		RequestDate: "2026-07-01",
		Lines: []appproc.LineInput{
			{
				Name:      "Office chairs",
				AccountID: "acct-furniture",
				Type:      "Goods",
				Quantity:  dec("10"),
				UnitPrice: dec("100"),
				GSTRate:   "18",
				TDSRate:   "2",
			},
		},
	})
	require.NoError(t, err)
	_, err = requests.Approve(ctx, pr.ID, appproc.ApproveRequest{PONumber: "PO-1001"})
	require.NoError(t, err)

	return &testEnv{
		store:      st,
		invoices:   NewInvoiceService(st),
		vouchers:   NewVoucherService(st),
		debitNotes: NewDebitNoteService(st),
		requests:   requests,
		vendorID:   v.ID,
		prID:       pr.ID,
	}
}

func (e *testEnv) lineID(t *testing.T) uuid.UUID {
	t.Helper()
	pr, err := e.store.PurchaseRequestByID(e.prID)
	require.NoError(t, err)
	return pr.Lines[0].ID
}

func (e *testEnv) createInvoice(t *testing.T, number, amount string) *InvoiceResponse {
	t.Helper()
	inv, err := e.invoices.Create(context.Background(), CreateInvoiceRequest{
		PRID:    e.prID,
		Number:  number,
		Date:    "2026-07-15",
		DueDate: "2026-08-15",
		Allocations: []LineAllocationInput{
			{PRLineID: e.lineID(t), Amount: dec(amount)},
		},
	})
	require.NoError(t, err)
	return inv
}

func TestInvoiceService(t *testing.T) {
	ctx := context.Background()

	t.Run("records an invoice and tracks outstanding", func(t *testing.T) {
		env := createTestEnv(t)
		inv := env.createInvoice(t, "INV-100", "1160")
		assert.True(t, inv.Total.Equal(dec("1160")))
		assert.True(t, inv.Outstanding.Equal(dec("1160")))
		assert.Equal(t, "Mehta Suppliers", inv.VendorName)
		assert.Equal(t, env.vendorID, inv.VendorID)
	})

	t.Run("rejects invoicing beyond the uninvoiced balance", func(t *testing.T) {
		env := createTestEnv(t)
		env.createInvoice(t, "INV-100", "700")

		_, err := env.invoices.Create(ctx, CreateInvoiceRequest{
			PRID:        env.prID,
			Number:      "INV-101",
			Date:        "2026-07-15",
			DueDate:     "2026-08-15",
			Allocations: []LineAllocationInput{{PRLineID: env.lineID(t), Amount: dec("460.01")}},
		})
		require.Error(t, err)
		var de *shared.DomainError
		require.ErrorAs(t, err, &de)
		assert.Equal(t, "EXCEEDS_REMAINING", de.Code)
	})

	t.Run("rejects invoices against pending requests", func(t *testing.T) {
		env := createTestEnv(t)
		pending, err := env.requests.Create(ctx, appproc.CreateRequest{
			Title:       "Pending",
			VendorID:    env.vendorID,
			RequestDate: "2026-07-02",
			Lines: []appproc.LineInput{
				{Name: "Item", AccountID: "acct", Type: "Goods", Quantity: dec("1"), UnitPrice: dec("100")},
			},
		})
		require.NoError(t, err)

		_, err = env.invoices.Create(ctx, CreateInvoiceRequest{
			PRID:        pending.ID,
			Number:      "INV-101",
			Date:        "2026-07-15",
			DueDate:     "2026-08-15",
			Allocations: []LineAllocationInput{{PRLineID: uuid.New(), Amount: dec("100")}},
		})
		require.Error(t, err)
		var de *shared.DomainError
		require.ErrorAs(t, err, &de)
		assert.Equal(t, "INVALID_STATE", de.Code)
	})

	t.Run("rejects allocations to foreign lines", func(t *testing.T) {
		env := createTestEnv(t)
		_, err := env.invoices.Create(ctx, CreateInvoiceRequest{
			PRID:        env.prID,
			Number:      "INV-102",
			Date:        "2026-07-15",
			DueDate:     "2026-08-15",
			Allocations: []LineAllocationInput{{PRLineID: uuid.New(), Amount: dec("100")}},
		})
		require.Error(t, err)
		var de *shared.DomainError
		require.ErrorAs(t, err, &de)
		assert.Equal(t, "INVALID_LINE", de.Code)
	})

	t.Run("filters by purchase request", func(t *testing.T) {
		env := createTestEnv(t)
		env.createInvoice(t, "INV-103", "500")
		other := uuid.New()
		assert.Len(t, env.invoices.List(ctx, nil), 1)
		assert.Empty(t, env.invoices.List(ctx, &other))
	})
}

func TestVoucherServiceCreate(t *testing.T) {
	ctx := context.Background()

	voucherFor := func(env *testEnv, invoiceID uuid.UUID, amount string) CreateVoucherRequest {
		return CreateVoucherRequest{
			VendorID: env.vendorID,
			PVNumber: "PV-100",
			Mode:     "Cash",
			Source:   "Invoice",
			Date:     "2026-07-20",
			InvoiceAllocations: []InvoiceAllocationInput{
				{InvoiceID: invoiceID, Amount: dec(amount)},
			},
		}
	}

	t.Run("pays an invoice in full", func(t *testing.T) {
		env := createTestEnv(t)
		inv := env.createInvoice(t, "INV-200", "1160")

		resp, issues, err := env.vouchers.Create(ctx, voucherFor(env, inv.ID, "1160"))
		require.NoError(t, err)
		assert.Empty(t, issues)
		assert.True(t, resp.Total.Equal(dec("1160")))

		got, err := env.invoices.GetByID(ctx, inv.ID)
		require.NoError(t, err)
		assert.True(t, got.Outstanding.IsZero())
	})

	t.Run("any further allocation against a settled invoice fails", func(t *testing.T) {
		env := createTestEnv(t)
		inv := env.createInvoice(t, "INV-201", "1160")
		_, _, err := env.vouchers.Create(ctx, voucherFor(env, inv.ID, "1160"))
		require.NoError(t, err)

		req := voucherFor(env, inv.ID, "0.01")
		req.PVNumber = "PV-101"
		_, issues, err := env.vouchers.Create(ctx, req)
		require.Error(t, err)
		require.NotEmpty(t, issues)
		assert.Equal(t, finance.IssueAmountExceedsRemaining, issues[0].Kind)

		// nothing was recorded
		assert.Len(t, env.vouchers.List(ctx, nil), 1)
	})

	t.Run("advance voucher against an approved PO", func(t *testing.T) {
		env := createTestEnv(t)
		resp, issues, err := env.vouchers.Create(ctx, CreateVoucherRequest{
			VendorID: env.vendorID,
			PVNumber: "PV-102",
			Mode:     "UPI",
			ModeDetails: ModeDetailsInput{
				TransactionNumber: "UPI-998877",
			},
			Source: "Advance",
			Date:   "2026-07-05",
			AdvanceAllocations: []AdvanceAllocationInput{
				{PRID: env.prID, Amount: dec("1160")},
			},
		})
		require.NoError(t, err)
		assert.Empty(t, issues)
		assert.True(t, resp.Total.Equal(dec("1160")))
	})

	t.Run("mode field issues block recording", func(t *testing.T) {
		env := createTestEnv(t)
		inv := env.createInvoice(t, "INV-202", "500")

		req := voucherFor(env, inv.ID, "500")
		req.Mode = "Cheque" // bank, cheque date and number all missing
		_, issues, err := env.vouchers.Create(ctx, req)
		require.Error(t, err)
		assert.Len(t, issues, 3)
		for _, issue := range issues {
			assert.Equal(t, finance.IssueInvalidModeFields, issue.Kind)
		}
	})
}

func TestVoucherServiceValidate(t *testing.T) {
	ctx := context.Background()
	env := createTestEnv(t)
	inv := env.createInvoice(t, "INV-300", "1160")

	t.Run("savable draft", func(t *testing.T) {
		resp := env.vouchers.Validate(ctx, CreateVoucherRequest{
			VendorID: env.vendorID,
			PVNumber: "PV-300",
			Mode:     "Cash",
			Source:   "Invoice",
			Date:     "2026-07-21",
			InvoiceAllocations: []InvoiceAllocationInput{
				{InvoiceID: inv.ID, Amount: dec("1160")},
			},
		})
		assert.True(t, resp.Savable)
		assert.Empty(t, resp.Issues)
	})

	t.Run("dry run records nothing", func(t *testing.T) {
		assert.Empty(t, env.vouchers.List(ctx, nil))
	})

	t.Run("reports all issues at once", func(t *testing.T) {
		resp := env.vouchers.Validate(ctx, CreateVoucherRequest{
			Mode:   "Cheque",
			Source: "Invoice",
		})
		assert.False(t, resp.Savable)
		assert.GreaterOrEqual(t, len(resp.Issues), 4)
	})
}

func TestDebitNoteService(t *testing.T) {
	ctx := context.Background()

	t.Run("note against PO reduces the PO balance only", func(t *testing.T) {
		env := createTestEnv(t)
		dn, err := env.debitNotes.Create(ctx, CreateDebitNoteRequest{
			PRID:   env.prID,
			Title:  "Transit damage",
			Amount: dec("150"),
			Date:   "2026-07-18",
		})
		require.NoError(t, err)
		assert.Nil(t, dn.InvoiceID)
		assert.Equal(t, env.vendorID, dn.VendorID)
	})

	t.Run("note against invoice reduces its outstanding", func(t *testing.T) {
		env := createTestEnv(t)
		inv := env.createInvoice(t, "INV-400", "1160")
		_, err := env.debitNotes.Create(ctx, CreateDebitNoteRequest{
			PRID:      env.prID,
			InvoiceID: &inv.ID,
			Title:     "Short supply",
			Amount:    dec("160"),
			Date:      "2026-07-19",
		})
		require.NoError(t, err)

		got, err := env.invoices.GetByID(ctx, inv.ID)
		require.NoError(t, err)
		assert.True(t, got.Outstanding.Equal(dec("1000")))
	})

	t.Run("rejects an invoice from another PO", func(t *testing.T) {
		env := createTestEnv(t)
		other := createTestEnv(t)
		foreign := other.createInvoice(t, "INV-401", "100")

		_, err := env.debitNotes.Create(ctx, CreateDebitNoteRequest{
			PRID:      env.prID,
			InvoiceID: &foreign.ID,
			Title:     "Wrong invoice",
			Amount:    dec("10"),
			Date:      "2026-07-19",
		})
		require.Error(t, err)
		var de *shared.DomainError
		require.ErrorAs(t, err, &de)
		assert.Equal(t, "INVALID_INVOICE", de.Code)
	})
}

package vendors

import (
	"context"
	"testing"

	"github.com/expensedesk/backend/internal/domain/shared"
	"github.com/expensedesk/backend/internal/store"
	"github.com/google/uuid"
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

func createTestServices(t *testing.T) (*VendorService, *VendorTypeService) {
	t.Helper()
	st := store.NewStore(&memorySnapshotter{}, zap.NewNop())
	require.NoError(t, st.Load(context.Background()))
	return NewVendorService(st), NewVendorTypeService(st)
}

func TestVendorServiceCreate(t *testing.T) {
	ctx := context.Background()
	svc, typeSvc := createTestServices(t)

	t.Run("creates a vendor with full details", func(t *testing.T) {
		vt, err := typeSvc.Create(ctx, CreateVendorTypeRequest{Name: "Contractor"})
		require.NoError(t, err)

		resp, err := svc.Create(ctx, CreateVendorRequest{
			Name:         "Sharma Constructions",
			Email:        "billing@sharma.example",
			Phone:        "+91-9812345678",
			LegalType:    "Partnership",
			VendorTypeID: &vt.ID,
			StartDate:    "2026-04-01",
			Compliance: ComplianceInput{
				GSTIN:   "27AAAAA0000A1Z5",
				PAN:     "AAAAA0000A",
				GSTRate: "18",
				TDSRate: "2",
			},
			ExpenseAccounts: []string{"acct-civil-works"},
			BankAccounts: []BankAccountInput{
				{BankName: "HDFC", AccountNumber: "50100012345", IFSC: "HDFC0000123"},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, "Sharma Constructions", resp.Name)
		assert.Equal(t, "Contractor", resp.VendorTypeName)
		assert.Equal(t, "18", resp.Compliance.GSTRate)
		assert.True(t, resp.Active)
		require.Len(t, resp.BankAccounts, 1)
		assert.Equal(t, "HDFC", resp.BankAccounts[0].BankName)
	})

	t.Run("rejects an unknown vendor type", func(t *testing.T) {
		unknown := uuid.New()
		_, err := svc.Create(ctx, CreateVendorRequest{Name: "X", VendorTypeID: &unknown})
		require.Error(t, err)
		var de *shared.DomainError
		require.ErrorAs(t, err, &de)
		assert.Equal(t, "INVALID_VENDOR_TYPE", de.Code)
	})

	t.Run("rejects a bank account without a number", func(t *testing.T) {
		_, err := svc.Create(ctx, CreateVendorRequest{
			Name:         "Y",
			BankAccounts: []BankAccountInput{{BankName: "SBI"}},
		})
		assert.Error(t, err)
	})
}

func TestVendorServiceUpdate(t *testing.T) {
	ctx := context.Background()
	svc, _ := createTestServices(t)

	created, err := svc.Create(ctx, CreateVendorRequest{Name: "Initial Name"})
	require.NoError(t, err)

	t.Run("partial update leaves other fields alone", func(t *testing.T) {
		name := "Renamed Vendor"
		notes := "preferred for AMC work"
		resp, err := svc.Update(ctx, created.ID, UpdateVendorRequest{Name: &name, Notes: &notes})
		require.NoError(t, err)
		assert.Equal(t, "Renamed Vendor", resp.Name)
		assert.Equal(t, notes, resp.Notes)
		assert.True(t, resp.Active)
	})

	t.Run("deactivation round-trips", func(t *testing.T) {
		inactive := false
		resp, err := svc.Update(ctx, created.ID, UpdateVendorRequest{Active: &inactive})
		require.NoError(t, err)
		assert.False(t, resp.Active)
	})

	t.Run("unknown vendor", func(t *testing.T) {
		name := "Z"
		_, err := svc.Update(ctx, uuid.New(), UpdateVendorRequest{Name: &name})
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestVendorServiceDanglingTypeReference(t *testing.T) {
	ctx := context.Background()
	svc, typeSvc := createTestServices(t)

	vt, err := typeSvc.Create(ctx, CreateVendorTypeRequest{Name: "Consultant"})
	require.NoError(t, err)

	created, err := svc.Create(ctx, CreateVendorRequest{Name: "Advisory LLP", VendorTypeID: &vt.ID})
	require.NoError(t, err)
	assert.Equal(t, "Consultant", created.VendorTypeName)

	// deleting the type must not break vendors referencing it
	require.NoError(t, typeSvc.Delete(ctx, vt.ID))

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "", got.VendorTypeName)
	require.NotNil(t, got.VendorTypeID)
	assert.Equal(t, vt.ID, *got.VendorTypeID)
}

func TestVendorServiceList(t *testing.T) {
	ctx := context.Background()
	svc, _ := createTestServices(t)

	_, err := svc.Create(ctx, CreateVendorRequest{Name: "First"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CreateVendorRequest{Name: "Second"})
	require.NoError(t, err)

	list := svc.List(ctx)
	require.Len(t, list, 2)
	assert.Equal(t, "First", list[0].Name)
	assert.Equal(t, "Second", list[1].Name)
}

func TestVendorTypeService(t *testing.T) {
	ctx := context.Background()
	_, typeSvc := createTestServices(t)

	vt, err := typeSvc.Create(ctx, CreateVendorTypeRequest{Name: "Transporter"})
	require.NoError(t, err)
	assert.True(t, vt.Active)

	name := "Logistics Partner"
	inactive := false
	updated, err := typeSvc.Update(ctx, vt.ID, UpdateVendorTypeRequest{Name: &name, Active: &inactive})
	require.NoError(t, err)
	assert.Equal(t, "Logistics Partner", updated.Name)
	assert.False(t, updated.Active)

	list := typeSvc.List(ctx)
	require.Len(t, list, 1)

	require.NoError(t, typeSvc.Delete(ctx, vt.ID))
	assert.Empty(t, typeSvc.List(ctx))
	assert.ErrorIs(t, typeSvc.Delete(ctx, vt.ID), shared.ErrNotFound)
}

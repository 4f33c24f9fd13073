package vendors

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVendor(t *testing.T) {
	t.Run("creates active vendor with valid inputs", func(t *testing.T) {
		v, err := NewVendor("Acme Supplies", "ops@acme.example", "+91-9000000000")
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, v.ID)
		assert.Equal(t, "Acme Supplies", v.Name)
		assert.True(t, v.Active)
		assert.Empty(t, v.ExpenseAccounts)
		assert.Empty(t, v.BankAccounts)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := NewVendor("", "", "")
		assert.Error(t, err)
	})
}

func TestVendorRename(t *testing.T) {
	v, err := NewVendor("Acme", "", "")
	require.NoError(t, err)

	require.NoError(t, v.Rename("Acme Industries"))
	assert.Equal(t, "Acme Industries", v.Name)

	assert.Error(t, v.Rename(""))
}

func TestVendorSetLegalType(t *testing.T) {
	v, err := NewVendor("Acme", "", "")
	require.NoError(t, err)

	require.NoError(t, v.SetLegalType(LegalTypePartnership))
	assert.Equal(t, LegalTypePartnership, v.LegalType)

	assert.Error(t, v.SetLegalType("Trust"))

	// clearing is allowed
	require.NoError(t, v.SetLegalType(""))
}

func TestVendorCompliance(t *testing.T) {
	v, err := NewVendor("Acme", "", "")
	require.NoError(t, err)

	v.SetCompliance(Compliance{
		GSTIN:      "29ABCDE1234F1Z5",
		PAN:        "ABCDE1234F",
		TDSSection: "194C",
		TDSRate:    "2",
		GSTRate:    "18",
	})
	assert.Equal(t, "29ABCDE1234F1Z5", v.Compliance.GSTIN)
	assert.Equal(t, "2", v.Compliance.TDSRate)
}

func TestVendorBankAccounts(t *testing.T) {
	v, err := NewVendor("Acme", "", "")
	require.NoError(t, err)

	acc, err := NewBankAccount("HDFC Bank", "MG Road", "HDFC0000123", "50100123456789", "Acme Supplies")
	require.NoError(t, err)
	v.AddBankAccount(*acc)
	assert.Len(t, v.BankAccounts, 1)

	v.ReplaceBankAccounts(nil)
	assert.Empty(t, v.BankAccounts)

	_, err = NewBankAccount("", "", "", "123", "")
	assert.Error(t, err)
	_, err = NewBankAccount("HDFC Bank", "", "", "", "")
	assert.Error(t, err)
}

func TestVendorActivation(t *testing.T) {
	v, err := NewVendor("Acme", "", "")
	require.NoError(t, err)

	v.Deactivate()
	assert.False(t, v.Active)
	v.Activate()
	assert.True(t, v.Active)
}

func TestNewVendorType(t *testing.T) {
	vt, err := NewVendorType("Contractor")
	require.NoError(t, err)
	assert.True(t, vt.Active)
	assert.Equal(t, "Contractor", vt.Name)

	_, err = NewVendorType("")
	assert.Error(t, err)

	require.NoError(t, vt.Rename("Consultant"))
	assert.Equal(t, "Consultant", vt.Name)

	vt.SetActive(false)
	assert.False(t, vt.Active)
}

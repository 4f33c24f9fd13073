package vendors

import (
	"github.com/expensedesk/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// LegalType represents the legal constitution of a vendor
type LegalType string

const (
	LegalTypeIndividual     LegalType = "Individual"
	LegalTypeProprietorship LegalType = "Proprietorship"
	LegalTypePartnership    LegalType = "Partnership"
	LegalTypeCompany        LegalType = "Company"
	LegalTypeLLP            LegalType = "LLP"
)

// IsValid checks if the legal type is a known value
func (t LegalType) IsValid() bool {
	switch t {
	case LegalTypeIndividual, LegalTypeProprietorship, LegalTypePartnership,
		LegalTypeCompany, LegalTypeLLP:
		return true
	}
	return false
}

// Compliance holds the statutory identifiers of a vendor
type Compliance struct {
	GSTIN      string `json:"gstin,omitempty"`
	PAN        string `json:"pan,omitempty"`
	TAN        string `json:"tan,omitempty"`
	TDSSection string `json:"tds_section,omitempty"`
	TDSRate    string `json:"tds_rate,omitempty"` // default TDS percent applied to new PR lines
	GSTRate    string `json:"gst_rate,omitempty"` // default GST percent applied to new PR lines
	MSME       string `json:"msme,omitempty"`
}

// Documents holds names of uploaded vendor documents
// Only the filename is retained; content storage is an external concern.
type Documents struct {
	RegistrationName string `json:"registration_name,omitempty"`
	GSTCertName      string `json:"gst_cert_name,omitempty"`
	PANCardName      string `json:"pan_card_name,omitempty"`
	AadhaarName      string `json:"aadhaar_name,omitempty"`
}

// BankAccount represents a vendor bank account
type BankAccount struct {
	ID            uuid.UUID `json:"id"`
	BankName      string    `json:"bank_name"`
	Branch        string    `json:"branch,omitempty"`
	IFSC          string    `json:"ifsc,omitempty"`
	AccountNumber string    `json:"account_number"`
	AccountHolder string    `json:"account_holder,omitempty"`
	DocumentName  string    `json:"document_name,omitempty"`
}

// NewBankAccount creates a new bank account entry
func NewBankAccount(bankName, branch, ifsc, accountNumber, accountHolder string) (*BankAccount, error) {
	if bankName == "" {
		return nil, shared.NewDomainError("INVALID_BANK_NAME", "Bank name cannot be empty")
	}
	if accountNumber == "" {
		return nil, shared.NewDomainError("INVALID_ACCOUNT_NUMBER", "Account number cannot be empty")
	}
	return &BankAccount{
		ID:            uuid.New(),
		BankName:      bankName,
		Branch:        branch,
		IFSC:          ifsc,
		AccountNumber: accountNumber,
		AccountHolder: accountHolder,
	}, nil
}

// Vendor represents a vendor master record
type Vendor struct {
	shared.BaseEntity
	Name            string        `json:"name"`
	Email           string        `json:"email,omitempty"`
	Phone           string        `json:"phone,omitempty"`
	Notes           string        `json:"notes,omitempty"`
	Address         string        `json:"address,omitempty"`
	State           string        `json:"state,omitempty"`
	LegalType       LegalType     `json:"legal_type,omitempty"`
	VendorTypeID    *uuid.UUID    `json:"vendor_type_id,omitempty"`
	StartDate       string        `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate         string        `json:"end_date,omitempty"`   // YYYY-MM-DD
	OneTime         bool          `json:"one_time"`
	Active          bool          `json:"active"`
	ExpenseAccounts []string      `json:"expense_accounts"`
	Compliance      Compliance    `json:"compliance"`
	Documents       Documents     `json:"documents"`
	BankAccounts    []BankAccount `json:"bank_accounts"`
}

// NewVendor creates a new active vendor
func NewVendor(name, email, phone string) (*Vendor, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_VENDOR_NAME", "Vendor name cannot be empty")
	}
	if len(name) > 200 {
		return nil, shared.NewDomainError("INVALID_VENDOR_NAME", "Vendor name cannot exceed 200 characters")
	}
	return &Vendor{
		BaseEntity:      shared.NewBaseEntity(),
		Name:            name,
		Email:           email,
		Phone:           phone,
		Active:          true,
		ExpenseAccounts: make([]string, 0),
		BankAccounts:    make([]BankAccount, 0),
	}, nil
}

// Rename changes the vendor name
func (v *Vendor) Rename(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_VENDOR_NAME", "Vendor name cannot be empty")
	}
	v.Name = name
	v.Touch()
	return nil
}

// SetContact updates the vendor contact details
func (v *Vendor) SetContact(email, phone, address, state string) {
	v.Email = email
	v.Phone = phone
	v.Address = address
	v.State = state
	v.Touch()
}

// SetLegalType sets the legal constitution of the vendor
func (v *Vendor) SetLegalType(t LegalType) error {
	if t != "" && !t.IsValid() {
		return shared.NewDomainError("INVALID_LEGAL_TYPE", "Legal type is not valid")
	}
	v.LegalType = t
	v.Touch()
	return nil
}

// SetCompliance replaces the compliance block
func (v *Vendor) SetCompliance(c Compliance) {
	v.Compliance = c
	v.Touch()
}

// SetExpenseAccounts replaces the linked expense account ids
func (v *Vendor) SetExpenseAccounts(accounts []string) {
	if accounts == nil {
		accounts = make([]string, 0)
	}
	v.ExpenseAccounts = accounts
	v.Touch()
}

// AddBankAccount appends a bank account
func (v *Vendor) AddBankAccount(account BankAccount) {
	v.BankAccounts = append(v.BankAccounts, account)
	v.Touch()
}

// ReplaceBankAccounts replaces all bank accounts
func (v *Vendor) ReplaceBankAccounts(accounts []BankAccount) {
	if accounts == nil {
		accounts = make([]BankAccount, 0)
	}
	v.BankAccounts = accounts
	v.Touch()
}

// Activate marks the vendor as active
func (v *Vendor) Activate() {
	v.Active = true
	v.Touch()
}

// Deactivate marks the vendor as inactive
// Existing PRs, invoices and vouchers keep referencing it by id.
func (v *Vendor) Deactivate() {
	v.Active = false
	v.Touch()
}

// Clone returns an independent copy of the vendor. Mutations on the
// copy do not reach the original until it is handed back to the store.
func (v *Vendor) Clone() *Vendor {
	cp := *v
	if v.VendorTypeID != nil {
		id := *v.VendorTypeID
		cp.VendorTypeID = &id
	}
	if v.ExpenseAccounts != nil {
		cp.ExpenseAccounts = append([]string(nil), v.ExpenseAccounts...)
	}
	if v.BankAccounts != nil {
		cp.BankAccounts = append([]BankAccount(nil), v.BankAccounts...)
	}
	return &cp
}

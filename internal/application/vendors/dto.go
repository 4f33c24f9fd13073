package vendors

import (
	"github.com/expensedesk/backend/internal/domain/vendors"
	"github.com/google/uuid"
)

// BankAccountInput carries one bank account on a create or update request
type BankAccountInput struct {
	BankName      string `json:"bank_name" binding:"required,min=1,max=200"`
	Branch        string `json:"branch" binding:"max=200"`
	IFSC          string `json:"ifsc" binding:"max=20"`
	AccountNumber string `json:"account_number" binding:"required,min=1,max=50"`
	AccountHolder string `json:"account_holder" binding:"max=200"`
	DocumentName  string `json:"document_name" binding:"max=255"`
}

// ComplianceInput carries the statutory identifiers of a vendor
type ComplianceInput struct {
	GSTIN      string `json:"gstin" binding:"max=20"`
	PAN        string `json:"pan" binding:"max=15"`
	TAN        string `json:"tan" binding:"max=15"`
	TDSSection string `json:"tds_section" binding:"max=20"`
	TDSRate    string `json:"tds_rate" binding:"max=10"`
	GSTRate    string `json:"gst_rate" binding:"max=10"`
	MSME       string `json:"msme" binding:"max=30"`
}

// DocumentsInput carries uploaded document filenames
type DocumentsInput struct {
	RegistrationName string `json:"registration_name" binding:"max=255"`
	GSTCertName      string `json:"gst_cert_name" binding:"max=255"`
	PANCardName      string `json:"pan_card_name" binding:"max=255"`
	AadhaarName      string `json:"aadhaar_name" binding:"max=255"`
}

// CreateVendorRequest represents a request to create a new vendor
type CreateVendorRequest struct {
	Name            string             `json:"name" binding:"required,min=1,max=200"`
	Email           string             `json:"email" binding:"omitempty,email,max=200"`
	Phone           string             `json:"phone" binding:"max=50"`
	Notes           string             `json:"notes" binding:"max=2000"`
	Address         string             `json:"address" binding:"max=500"`
	State           string             `json:"state" binding:"max=100"`
	LegalType       string             `json:"legal_type" binding:"omitempty,oneof=Individual Proprietorship Partnership Company LLP"`
	VendorTypeID    *uuid.UUID         `json:"vendor_type_id"`
	StartDate       string             `json:"start_date" binding:"omitempty,dateiso"`
	EndDate         string             `json:"end_date" binding:"omitempty,dateiso"`
	OneTime         bool               `json:"one_time"`
	ExpenseAccounts []string           `json:"expense_accounts"`
	Compliance      ComplianceInput    `json:"compliance"`
	Documents       DocumentsInput     `json:"documents"`
	BankAccounts    []BankAccountInput `json:"bank_accounts" binding:"dive"`
}

// UpdateVendorRequest represents a request to update a vendor.
// Nil fields are left untouched.
type UpdateVendorRequest struct {
	Name            *string             `json:"name" binding:"omitempty,min=1,max=200"`
	Email           *string             `json:"email" binding:"omitempty,max=200"`
	Phone           *string             `json:"phone" binding:"omitempty,max=50"`
	Notes           *string             `json:"notes" binding:"omitempty,max=2000"`
	Address         *string             `json:"address" binding:"omitempty,max=500"`
	State           *string             `json:"state" binding:"omitempty,max=100"`
	LegalType       *string             `json:"legal_type" binding:"omitempty,oneof=Individual Proprietorship Partnership Company LLP"`
	VendorTypeID    *uuid.UUID          `json:"vendor_type_id"`
	StartDate       *string             `json:"start_date" binding:"omitempty,dateiso"`
	EndDate         *string             `json:"end_date" binding:"omitempty,dateiso"`
	OneTime         *bool               `json:"one_time"`
	Active          *bool               `json:"active"`
	ExpenseAccounts []string            `json:"expense_accounts"`
	Compliance      *ComplianceInput    `json:"compliance"`
	Documents       *DocumentsInput     `json:"documents"`
	BankAccounts    []BankAccountInput  `json:"bank_accounts" binding:"omitempty,dive"`
}

// VendorResponse represents a vendor in API responses
type VendorResponse struct {
	ID              uuid.UUID             `json:"id"`
	Name            string                `json:"name"`
	Email           string                `json:"email,omitempty"`
	Phone           string                `json:"phone,omitempty"`
	Notes           string                `json:"notes,omitempty"`
	Address         string                `json:"address,omitempty"`
	State           string                `json:"state,omitempty"`
	LegalType       string                `json:"legal_type,omitempty"`
	VendorTypeID    *uuid.UUID            `json:"vendor_type_id,omitempty"`
	VendorTypeName  string                `json:"vendor_type_name,omitempty"`
	StartDate       string                `json:"start_date,omitempty"`
	EndDate         string                `json:"end_date,omitempty"`
	OneTime         bool                  `json:"one_time"`
	Active          bool                  `json:"active"`
	ExpenseAccounts []string              `json:"expense_accounts"`
	Compliance      vendors.Compliance    `json:"compliance"`
	Documents       vendors.Documents     `json:"documents"`
	BankAccounts    []vendors.BankAccount `json:"bank_accounts"`
	CreatedAt       string                `json:"created_at"`
	UpdatedAt       string                `json:"updated_at"`
}

// CreateVendorTypeRequest represents a request to create a vendor type
type CreateVendorTypeRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// UpdateVendorTypeRequest represents a request to update a vendor type
type UpdateVendorTypeRequest struct {
	Name   *string `json:"name" binding:"omitempty,min=1,max=100"`
	Active *bool   `json:"active"`
}

// VendorTypeResponse represents a vendor type in API responses
type VendorTypeResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Active    bool      `json:"active"`
	CreatedAt string    `json:"created_at"`
	UpdatedAt string    `json:"updated_at"`
}

const timeLayout = "2006-01-02T15:04:05Z07:00"

// ToVendorResponse converts a vendor aggregate to its response form.
// typeName is the display name of the linked vendor type, already resolved
// by the caller; a dangling reference shows as an empty name.
func ToVendorResponse(v *vendors.Vendor, typeName string) VendorResponse {
	return VendorResponse{
		ID:              v.ID,
		Name:            v.Name,
		Email:           v.Email,
		Phone:           v.Phone,
		Notes:           v.Notes,
		Address:         v.Address,
		State:           v.State,
		LegalType:       string(v.LegalType),
		VendorTypeID:    v.VendorTypeID,
		VendorTypeName:  typeName,
		StartDate:       v.StartDate,
		EndDate:         v.EndDate,
		OneTime:         v.OneTime,
		Active:          v.Active,
		ExpenseAccounts: v.ExpenseAccounts,
		Compliance:      v.Compliance,
		Documents:       v.Documents,
		BankAccounts:    v.BankAccounts,
		CreatedAt:       v.CreatedAt.Format(timeLayout),
		UpdatedAt:       v.UpdatedAt.Format(timeLayout),
	}
}

// ToVendorTypeResponse converts a vendor type to its response form
func ToVendorTypeResponse(t *vendors.VendorType) VendorTypeResponse {
	return VendorTypeResponse{
		ID:        t.ID,
		Name:      t.Name,
		Active:    t.Active,
		CreatedAt: t.CreatedAt.Format(timeLayout),
		UpdatedAt: t.UpdatedAt.Format(timeLayout),
	}
}

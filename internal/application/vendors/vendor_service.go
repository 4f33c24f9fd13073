package vendors

import (
	"context"
	"errors"

	"github.com/expensedesk/backend/internal/domain/shared"
	"github.com/expensedesk/backend/internal/domain/vendors"
	"github.com/expensedesk/backend/internal/store"
	"github.com/google/uuid"
)

// VendorService handles vendor master data operations
type VendorService struct {
	store *store.Store
}

// NewVendorService creates a new VendorService
func NewVendorService(st *store.Store) *VendorService {
	return &VendorService{store: st}
}

// Create creates a new vendor
func (s *VendorService) Create(ctx context.Context, req CreateVendorRequest) (*VendorResponse, error) {
	v, err := vendors.NewVendor(req.Name, req.Email, req.Phone)
	if err != nil {
		return nil, err
	}

	v.SetContact(req.Email, req.Phone, req.Address, req.State)
	if err := v.SetLegalType(vendors.LegalType(req.LegalType)); err != nil {
		return nil, err
	}
	v.Notes = req.Notes
	v.StartDate = req.StartDate
	v.EndDate = req.EndDate
	v.OneTime = req.OneTime

	if req.VendorTypeID != nil {
		if _, err := s.store.VendorTypeByID(*req.VendorTypeID); err != nil {
			return nil, shared.NewDomainError("INVALID_VENDOR_TYPE", "Vendor type does not exist")
		}
		v.VendorTypeID = req.VendorTypeID
	}

	v.SetCompliance(toCompliance(req.Compliance))
	v.Documents = toDocuments(req.Documents)
	v.SetExpenseAccounts(req.ExpenseAccounts)

	accounts, err := toBankAccounts(req.BankAccounts)
	if err != nil {
		return nil, err
	}
	v.ReplaceBankAccounts(accounts)

	if err := s.store.AddVendor(ctx, v); err != nil {
		return nil, err
	}

	resp := ToVendorResponse(v, s.typeName(v.VendorTypeID))
	return &resp, nil
}

// GetByID retrieves a vendor by ID
func (s *VendorService) GetByID(ctx context.Context, id uuid.UUID) (*VendorResponse, error) {
	v, err := s.store.VendorByID(id)
	if err != nil {
		return nil, err
	}
	resp := ToVendorResponse(v, s.typeName(v.VendorTypeID))
	return &resp, nil
}

// List returns all vendors in insertion order
func (s *VendorService) List(ctx context.Context) []VendorResponse {
	all := s.store.Vendors()
	out := make([]VendorResponse, 0, len(all))
	for _, v := range all {
		out = append(out, ToVendorResponse(v, s.typeName(v.VendorTypeID)))
	}
	return out
}

// Update applies a partial update to a vendor
func (s *VendorService) Update(ctx context.Context, id uuid.UUID, req UpdateVendorRequest) (*VendorResponse, error) {
	v, err := s.store.VendorByID(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if err := v.Rename(*req.Name); err != nil {
			return nil, err
		}
	}
	if req.Email != nil {
		v.Email = *req.Email
	}
	if req.Phone != nil {
		v.Phone = *req.Phone
	}
	if req.Notes != nil {
		v.Notes = *req.Notes
	}
	if req.Address != nil {
		v.Address = *req.Address
	}
	if req.State != nil {
		v.State = *req.State
	}
	if req.LegalType != nil {
		if err := v.SetLegalType(vendors.LegalType(*req.LegalType)); err != nil {
			return nil, err
		}
	}
	if req.VendorTypeID != nil {
		if _, err := s.store.VendorTypeByID(*req.VendorTypeID); err != nil {
			return nil, shared.NewDomainError("INVALID_VENDOR_TYPE", "Vendor type does not exist")
		}
		v.VendorTypeID = req.VendorTypeID
	}
	if req.StartDate != nil {
		v.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		v.EndDate = *req.EndDate
	}
	if req.OneTime != nil {
		v.OneTime = *req.OneTime
	}
	if req.Active != nil {
		if *req.Active {
			v.Activate()
		} else {
			v.Deactivate()
		}
	}
	if req.ExpenseAccounts != nil {
		v.SetExpenseAccounts(req.ExpenseAccounts)
	}
	if req.Compliance != nil {
		v.SetCompliance(toCompliance(*req.Compliance))
	}
	if req.Documents != nil {
		v.Documents = toDocuments(*req.Documents)
	}
	if req.BankAccounts != nil {
		accounts, err := toBankAccounts(req.BankAccounts)
		if err != nil {
			return nil, err
		}
		v.ReplaceBankAccounts(accounts)
	}
	v.Touch()

	if err := s.store.UpdateVendor(ctx, v); err != nil {
		return nil, err
	}
	resp := ToVendorResponse(v, s.typeName(v.VendorTypeID))
	return &resp, nil
}

// Delete removes a vendor. Documents referencing it keep the stale id and
// render a fallback label; no cascade runs.
func (s *VendorService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.store.RemoveVendor(ctx, id)
}

// typeName resolves the display name for a vendor type reference.
// A dangling or absent reference yields an empty name.
func (s *VendorService) typeName(id *uuid.UUID) string {
	if id == nil {
		return ""
	}
	vt, err := s.store.VendorTypeByID(*id)
	if errors.Is(err, shared.ErrNotFound) {
		return ""
	}
	if err != nil {
		return ""
	}
	return vt.Name
}

func toCompliance(in ComplianceInput) vendors.Compliance {
	return vendors.Compliance{
		GSTIN:      in.GSTIN,
		PAN:        in.PAN,
		TAN:        in.TAN,
		TDSSection: in.TDSSection,
		TDSRate:    in.TDSRate,
		GSTRate:    in.GSTRate,
		MSME:       in.MSME,
	}
}

func toDocuments(in DocumentsInput) vendors.Documents {
	return vendors.Documents{
		RegistrationName: in.RegistrationName,
		GSTCertName:      in.GSTCertName,
		PANCardName:      in.PANCardName,
		AadhaarName:      in.AadhaarName,
	}
}

func toBankAccounts(inputs []BankAccountInput) ([]vendors.BankAccount, error) {
	accounts := make([]vendors.BankAccount, 0, len(inputs))
	for _, in := range inputs {
		account, err := vendors.NewBankAccount(in.BankName, in.Branch, in.IFSC, in.AccountNumber, in.AccountHolder)
		if err != nil {
			return nil, err
		}
		account.DocumentName = in.DocumentName
		accounts = append(accounts, *account)
	}
	return accounts, nil
}

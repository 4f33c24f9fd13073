package finance

import (
	"context"

	"github.com/expensedesk/backend/internal/domain/finance"
	"github.com/expensedesk/backend/internal/domain/shared"
	"github.com/expensedesk/backend/internal/store"
	"github.com/google/uuid"
)

// VoucherService validates and records payment vouchers
type VoucherService struct {
	store *store.Store
}

// NewVoucherService creates a new VoucherService
func NewVoucherService(st *store.Store) *VoucherService {
	return &VoucherService{store: st}
}

// Validate dry-runs a voucher draft against the recorded documents.
// The caller gets every blocking issue; an empty list means savable.
func (s *VoucherService) Validate(ctx context.Context, req CreateVoucherRequest) ValidationResponse {
	issues := finance.ValidateVoucherDraft(toVoucherDraft(req), s.context())
	if issues == nil {
		issues = []finance.ValidationIssue{}
	}
	return ValidationResponse{
		Savable: len(issues) == 0,
		Issues:  issues,
	}
}

// Create validates and records a payment voucher. Recording is all or
// nothing: any validation issue rejects the whole voucher.
func (s *VoucherService) Create(ctx context.Context, req CreateVoucherRequest) (*VoucherResponse, []finance.ValidationIssue, error) {
	draft := toVoucherDraft(req)
	if issues := finance.ValidateVoucherDraft(draft, s.context()); len(issues) > 0 {
		return nil, issues, shared.NewDomainError("VOUCHER_NOT_SAVABLE", "Payment voucher failed validation")
	}

	pv, err := finance.NewPaymentVoucher(draft)
	if err != nil {
		return nil, nil, err
	}
	if err := s.store.AddPaymentVoucher(ctx, pv); err != nil {
		return nil, nil, err
	}
	resp := s.toResponse(pv)
	return &resp, nil, nil
}

// GetByID retrieves a payment voucher by ID
func (s *VoucherService) GetByID(ctx context.Context, id uuid.UUID) (*VoucherResponse, error) {
	pv, err := s.store.PaymentVoucherByID(id)
	if err != nil {
		return nil, err
	}
	resp := s.toResponse(pv)
	return &resp, nil
}

// List returns all payment vouchers, optionally filtered by vendor
func (s *VoucherService) List(ctx context.Context, vendorID *uuid.UUID) []VoucherResponse {
	all := s.store.PaymentVouchers()
	out := make([]VoucherResponse, 0, len(all))
	for _, pv := range all {
		if vendorID != nil && pv.VendorID != *vendorID {
			continue
		}
		out = append(out, s.toResponse(pv))
	}
	return out
}

// context assembles the records every validation runs against
func (s *VoucherService) context() finance.VoucherContext {
	return finance.VoucherContext{
		Requests:   s.store.PurchaseRequests(),
		Invoices:   s.store.Invoices(),
		Vouchers:   s.store.PaymentVouchers(),
		DebitNotes: s.store.DebitNotes(),
	}
}

func (s *VoucherService) toResponse(pv *finance.PaymentVoucher) VoucherResponse {
	return VoucherResponse{
		ID:                 pv.ID,
		VendorID:           pv.VendorID,
		VendorName:         s.vendorName(pv.VendorID),
		PVNumber:           pv.PVNumber,
		Mode:               pv.Mode.String(),
		ModeDetails:        pv.ModeDetails,
		Source:             string(pv.Source),
		Date:               pv.Date,
		Description:        pv.Description,
		DocumentName:       pv.DocumentName,
		InvoiceAllocations: pv.InvoiceAllocations,
		AdvanceAllocations: pv.AdvanceAllocations,
		Total:              pv.Total,
		CreatedAt:          pv.CreatedAt.Format(timeLayout),
	}
}

func (s *VoucherService) vendorName(id uuid.UUID) string {
	v, err := s.store.VendorByID(id)
	if err != nil {
		return ""
	}
	return v.Name
}

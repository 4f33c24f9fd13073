package finance

import (
	"context"

	"github.com/expensedesk/backend/internal/domain/finance"
	"github.com/expensedesk/backend/internal/domain/shared"
	"github.com/expensedesk/backend/internal/store"
	"github.com/google/uuid"
)

// InvoiceService records and lists vendor invoices
type InvoiceService struct {
	store *store.Store
}

// NewInvoiceService creates a new InvoiceService
func NewInvoiceService(st *store.Store) *InvoiceService {
	return &InvoiceService{store: st}
}

// Create records an invoice against an approved purchase order.
// The vendor is inherited from the purchase request.
func (s *InvoiceService) Create(ctx context.Context, req CreateInvoiceRequest) (*InvoiceResponse, error) {
	pr, err := s.store.PurchaseRequestByID(req.PRID)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_PR", "Purchase request does not exist")
	}
	if !pr.IsApproved() {
		return nil, shared.NewDomainError("INVALID_STATE", "Invoices can only be raised against approved purchase orders")
	}

	allocations := make([]finance.LineAllocation, 0, len(req.Allocations))
	for _, a := range req.Allocations {
		if pr.LineByID(a.PRLineID) == nil {
			return nil, shared.NewDomainError("INVALID_LINE", "Allocation references a line that is not on the purchase request")
		}
		allocations = append(allocations, finance.LineAllocation{PRLineID: a.PRLineID, Amount: a.Amount})
	}

	inv, err := finance.NewInvoice(pr.ID, pr.VendorID, req.Number, req.Date, req.DueDate, allocations)
	if err != nil {
		return nil, err
	}
	inv.Description = req.Description
	inv.DocumentName = req.DocumentName

	remaining := finance.RemainingForPR(pr.Total(), s.store.Invoices(), pr.ID)
	if over, _ := inv.TotalMoney().GreaterThan(remaining); over {
		return nil, shared.NewDomainError("EXCEEDS_REMAINING", "Invoice total exceeds the uninvoiced balance of the purchase order")
	}

	if err := s.store.AddInvoice(ctx, inv); err != nil {
		return nil, err
	}
	resp := s.toResponse(inv)
	return &resp, nil
}

// GetByID retrieves an invoice by ID
func (s *InvoiceService) GetByID(ctx context.Context, id uuid.UUID) (*InvoiceResponse, error) {
	inv, err := s.store.InvoiceByID(id)
	if err != nil {
		return nil, err
	}
	resp := s.toResponse(inv)
	return &resp, nil
}

// List returns all invoices, optionally filtered to one purchase request
func (s *InvoiceService) List(ctx context.Context, prID *uuid.UUID) []InvoiceResponse {
	all := s.store.Invoices()
	out := make([]InvoiceResponse, 0, len(all))
	for _, inv := range all {
		if prID != nil && inv.PRID != *prID {
			continue
		}
		out = append(out, s.toResponse(inv))
	}
	return out
}

func (s *InvoiceService) toResponse(inv *finance.Invoice) InvoiceResponse {
	outstanding := finance.InvoiceOutstanding(
		s.store.Invoices(), s.store.PaymentVouchers(), s.store.DebitNotes(), inv.ID)
	return InvoiceResponse{
		ID:           inv.ID,
		PRID:         inv.PRID,
		VendorID:     inv.VendorID,
		VendorName:   s.vendorName(inv.VendorID),
		Number:       inv.Number,
		Date:         inv.Date,
		DueDate:      inv.DueDate,
		Description:  inv.Description,
		DocumentName: inv.DocumentName,
		Allocations:  inv.Allocations,
		Total:        inv.Total,
		Outstanding:  outstanding.Amount(),
		CreatedAt:    inv.CreatedAt.Format(timeLayout),
	}
}

// vendorName resolves a vendor display name; a dangling reference shows
// as an empty name rather than an error
func (s *InvoiceService) vendorName(id uuid.UUID) string {
	v, err := s.store.VendorByID(id)
	if err != nil {
		return ""
	}
	return v.Name
}

package finance

import (
	"context"

	"github.com/expensedesk/backend/internal/domain/finance"
	"github.com/expensedesk/backend/internal/domain/shared"
	"github.com/expensedesk/backend/internal/store"
	"github.com/google/uuid"
)

// DebitNoteService records and lists debit notes
type DebitNoteService struct {
	store *store.Store
}

// NewDebitNoteService creates a new DebitNoteService
func NewDebitNoteService(st *store.Store) *DebitNoteService {
	return &DebitNoteService{store: st}
}

// Create records a debit note against a PO, or against one of its invoices
// when InvoiceID is set
func (s *DebitNoteService) Create(ctx context.Context, req CreateDebitNoteRequest) (*DebitNoteResponse, error) {
	pr, err := s.store.PurchaseRequestByID(req.PRID)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_PR", "Purchase request does not exist")
	}

	if req.InvoiceID != nil {
		inv, err := s.store.InvoiceByID(*req.InvoiceID)
		if err != nil {
			return nil, shared.NewDomainError("INVALID_INVOICE", "Invoice does not exist")
		}
		if inv.PRID != pr.ID {
			return nil, shared.NewDomainError("INVALID_INVOICE", "Invoice does not belong to this purchase request")
		}
	}

	dn, err := finance.NewDebitNote(pr.ID, pr.VendorID, req.InvoiceID, req.Title, req.Amount, req.Date)
	if err != nil {
		return nil, err
	}
	dn.Description = req.Description
	dn.VendorRef = req.VendorRef
	dn.DocumentNames = req.DocumentNames

	if err := s.store.AddDebitNote(ctx, dn); err != nil {
		return nil, err
	}
	resp := ToDebitNoteResponse(dn)
	return &resp, nil
}

// GetByID retrieves a debit note by ID
func (s *DebitNoteService) GetByID(ctx context.Context, id uuid.UUID) (*DebitNoteResponse, error) {
	dn, err := s.store.DebitNoteByID(id)
	if err != nil {
		return nil, err
	}
	resp := ToDebitNoteResponse(dn)
	return &resp, nil
}

// List returns all debit notes, optionally filtered to one purchase request
func (s *DebitNoteService) List(ctx context.Context, prID *uuid.UUID) []DebitNoteResponse {
	all := s.store.DebitNotes()
	out := make([]DebitNoteResponse, 0, len(all))
	for _, dn := range all {
		if prID != nil && dn.PRID != *prID {
			continue
		}
		out = append(out, ToDebitNoteResponse(dn))
	}
	return out
}

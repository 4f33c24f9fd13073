package procurement

import (
	"context"
	"errors"

	"github.com/expensedesk/backend/internal/domain/finance"
	"github.com/expensedesk/backend/internal/domain/procurement"
	"github.com/expensedesk/backend/internal/domain/shared"
	"github.com/expensedesk/backend/internal/store"
	"github.com/google/uuid"
)

// RequestService handles purchase request operations
type RequestService struct {
	store *store.Store
}

// NewRequestService creates a new RequestService
func NewRequestService(st *store.Store) *RequestService {
	return &RequestService{store: st}
}

// Create creates a pending purchase request.
// Lines without explicit rates inherit the vendor's default GST and TDS
// rates from its compliance block.
func (s *RequestService) Create(ctx context.Context, req CreateRequest) (*RequestResponse, error) {
	v, err := s.store.VendorByID(req.VendorID)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_VENDOR", "Vendor does not exist")
	}

	defaultGST := v.Compliance.GSTRate
	defaultTDS := v.Compliance.TDSRate

	lines, err := toLines(req.Lines, defaultGST, defaultTDS)
	if err != nil {
		return nil, err
	}

	pr, err := procurement.NewPurchaseRequest(req.Title, req.VendorID, req.RequestDate, lines)
	if err != nil {
		return nil, err
	}
	pr.Description = req.Description
	pr.DocumentName = req.DocumentName

	if err := s.store.AddPurchaseRequest(ctx, pr); err != nil {
		return nil, err
	}
	resp := ToRequestResponse(pr, v.Name)
	return &resp, nil
}

// GetByID retrieves a purchase request by ID
func (s *RequestService) GetByID(ctx context.Context, id uuid.UUID) (*RequestResponse, error) {
	pr, err := s.store.PurchaseRequestByID(id)
	if err != nil {
		return nil, err
	}
	resp := ToRequestResponse(pr, s.vendorName(pr.VendorID))
	return &resp, nil
}

// List returns all purchase requests in insertion order
func (s *RequestService) List(ctx context.Context) []RequestResponse {
	all := s.store.PurchaseRequests()
	out := make([]RequestResponse, 0, len(all))
	for _, pr := range all {
		out = append(out, ToRequestResponse(pr, s.vendorName(pr.VendorID)))
	}
	return out
}

// Update applies a partial update to a pending purchase request
func (s *RequestService) Update(ctx context.Context, id uuid.UUID, req UpdateRequest) (*RequestResponse, error) {
	pr, err := s.store.PurchaseRequestByID(id)
	if err != nil {
		return nil, err
	}

	title := pr.Title
	requestDate := pr.RequestDate
	description := pr.Description
	documentName := pr.DocumentName
	if req.Title != nil {
		title = *req.Title
	}
	if req.RequestDate != nil {
		requestDate = *req.RequestDate
	}
	if req.Description != nil {
		description = *req.Description
	}
	if req.DocumentName != nil {
		documentName = *req.DocumentName
	}
	if err := pr.UpdateDetails(title, requestDate, description, documentName); err != nil {
		return nil, err
	}

	if req.Lines != nil {
		var defaultGST, defaultTDS string
		if v, err := s.store.VendorByID(pr.VendorID); err == nil {
			defaultGST = v.Compliance.GSTRate
			defaultTDS = v.Compliance.TDSRate
		}
		lines, err := toLines(req.Lines, defaultGST, defaultTDS)
		if err != nil {
			return nil, err
		}
		if err := pr.ReplaceLines(lines); err != nil {
			return nil, err
		}
	}

	if err := s.store.UpdatePurchaseRequest(ctx, pr); err != nil {
		return nil, err
	}
	resp := ToRequestResponse(pr, s.vendorName(pr.VendorID))
	return &resp, nil
}

// Approve records the PO number and freezes the request
func (s *RequestService) Approve(ctx context.Context, id uuid.UUID, req ApproveRequest) (*RequestResponse, error) {
	pr, err := s.store.PurchaseRequestByID(id)
	if err != nil {
		return nil, err
	}
	if err := pr.Approve(req.PONumber, req.PODocumentName); err != nil {
		return nil, err
	}
	if err := s.store.UpdatePurchaseRequest(ctx, pr); err != nil {
		return nil, err
	}
	resp := ToRequestResponse(pr, s.vendorName(pr.VendorID))
	return &resp, nil
}

// Summary returns the tax breakdown and reconciled balances of a request
func (s *RequestService) Summary(ctx context.Context, id uuid.UUID) (*SummaryResponse, error) {
	pr, err := s.store.PurchaseRequestByID(id)
	if err != nil {
		return nil, err
	}

	invoices := s.store.Invoices()
	vouchers := s.store.PaymentVouchers()
	notes := s.store.DebitNotes()

	split := pr.TaxSplitUp()
	return &SummaryResponse{
		ID:            pr.ID,
		Number:        pr.Number,
		PONumber:      pr.PONumber,
		ApprovalState: pr.ApprovalState.String(),
		Base:          split.Base.Amount(),
		GST:           split.GST.Amount(),
		TDS:           split.TDS.Amount(),
		Total:         pr.Total().Amount(),
		Invoiced:      finance.InvoicedTotalForPR(invoices, pr.ID).Amount(),
		Remaining:     finance.RemainingForPR(pr.Total(), invoices, pr.ID).Amount(),
		AdvancesPaid:  finance.AdvancesTotalForPR(vouchers, pr.ID).Amount(),
		DebitNotes:    finance.DebitNotesTotalForPR(notes, pr.ID).Amount(),
	}, nil
}

// vendorName resolves the display name for a vendor reference.
// A dangling reference yields an empty name rather than an error.
func (s *RequestService) vendorName(id uuid.UUID) string {
	v, err := s.store.VendorByID(id)
	if errors.Is(err, shared.ErrNotFound) {
		return ""
	}
	if err != nil {
		return ""
	}
	return v.Name
}

// toLines builds domain lines, applying vendor default rates where a line
// leaves its rate blank
func toLines(inputs []LineInput, defaultGST, defaultTDS string) ([]procurement.Line, error) {
	lines := make([]procurement.Line, 0, len(inputs))
	for _, in := range inputs {
		gst := in.GSTRate
		if gst == "" {
			gst = defaultGST
		}
		tds := in.TDSRate
		if tds == "" {
			tds = defaultTDS
		}

		line, err := procurement.NewLine(in.Name, in.AccountID, procurement.LineType(in.Type),
			in.UOM, in.Quantity, in.UnitPrice,
			procurement.ParseRate(gst), procurement.ParseRate(tds))
		if err != nil {
			return nil, err
		}
		line.Description = in.Description
		if in.BaseTotal != nil {
			line.OverrideBaseTotal(*in.BaseTotal)
		}
		lines = append(lines, *line)
	}
	return lines, nil
}

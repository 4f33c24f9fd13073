package procurement

import (
	"fmt"
	"strings"

	"github.com/expensedesk/backend/internal/domain/shared"
	"github.com/expensedesk/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// ApprovalState represents the lifecycle state of a purchase request
type ApprovalState string

const (
	ApprovalStatePending  ApprovalState = "Pending"
	ApprovalStateApproved ApprovalState = "Approved"
)

// IsValid checks if the state is a known value
func (s ApprovalState) IsValid() bool {
	return s == ApprovalStatePending || s == ApprovalStateApproved
}

// String returns the string representation of ApprovalState
func (s ApprovalState) String() string {
	return string(s)
}

// NewRequestNumber generates a human-facing document number like "PR-3F9A2C"
func NewRequestNumber(prefix string) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])
	return fmt.Sprintf("%s-%s", prefix, suffix)
}

// PurchaseRequest represents a purchase request aggregate root.
// Once approved it carries a PO number and becomes immutable.
type PurchaseRequest struct {
	shared.BaseEntity
	Number         string        `json:"number"`
	Title          string        `json:"title"`
	VendorID       uuid.UUID     `json:"vendor_id"`
	RequestDate    string        `json:"request_date"` // YYYY-MM-DD
	Description    string        `json:"description,omitempty"`
	DocumentName   string        `json:"document_name,omitempty"`
	ApprovalState  ApprovalState `json:"approval_state"`
	PONumber       string        `json:"po_number,omitempty"`
	PODocumentName string        `json:"po_document_name,omitempty"`
	Lines          []Line        `json:"lines"`
}

// NewPurchaseRequest creates a pending purchase request
func NewPurchaseRequest(title string, vendorID uuid.UUID, requestDate string, lines []Line) (*PurchaseRequest, error) {
	if title == "" {
		return nil, shared.NewDomainError("INVALID_TITLE", "Purchase request title cannot be empty")
	}
	if vendorID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_VENDOR", "Vendor ID cannot be empty")
	}
	if requestDate == "" {
		return nil, shared.NewDomainError("INVALID_REQUEST_DATE", "Request date is required")
	}
	if len(lines) == 0 {
		return nil, shared.NewDomainError("INVALID_LINES", "Purchase request needs at least one line item")
	}

	pr := &PurchaseRequest{
		BaseEntity:    shared.NewBaseEntity(),
		Number:        NewRequestNumber("PR"),
		Title:         title,
		VendorID:      vendorID,
		RequestDate:   requestDate,
		ApprovalState: ApprovalStatePending,
		Lines:         lines,
	}
	for i := range pr.Lines {
		pr.Lines[i].Recalculate()
	}
	return pr, nil
}

// IsApproved returns true once the request carries a PO number
func (pr *PurchaseRequest) IsApproved() bool {
	return pr.ApprovalState == ApprovalStateApproved
}

// Approve turns the request into a purchase order.
// The PO number is mandatory; the PO document reference is optional.
func (pr *PurchaseRequest) Approve(poNumber, poDocumentName string) error {
	if pr.IsApproved() {
		return shared.NewDomainError("INVALID_STATE", "Purchase request is already approved")
	}
	if poNumber == "" {
		return shared.NewDomainError("INVALID_PO_NUMBER", "PO number is required for approval")
	}
	pr.ApprovalState = ApprovalStateApproved
	pr.PONumber = poNumber
	pr.PODocumentName = poDocumentName
	pr.Touch()
	return nil
}

// UpdateDetails changes header fields. Only pending requests are mutable.
func (pr *PurchaseRequest) UpdateDetails(title, requestDate, description, documentName string) error {
	if pr.IsApproved() {
		return shared.NewDomainError("INVALID_STATE", "Approved purchase requests cannot be modified")
	}
	if title == "" {
		return shared.NewDomainError("INVALID_TITLE", "Purchase request title cannot be empty")
	}
	if requestDate == "" {
		return shared.NewDomainError("INVALID_REQUEST_DATE", "Request date is required")
	}
	pr.Title = title
	pr.RequestDate = requestDate
	pr.Description = description
	pr.DocumentName = documentName
	pr.Touch()
	return nil
}

// ReplaceLines swaps the line items. Only pending requests are mutable.
func (pr *PurchaseRequest) ReplaceLines(lines []Line) error {
	if pr.IsApproved() {
		return shared.NewDomainError("INVALID_STATE", "Approved purchase requests cannot be modified")
	}
	if len(lines) == 0 {
		return shared.NewDomainError("INVALID_LINES", "Purchase request needs at least one line item")
	}
	pr.Lines = lines
	for i := range pr.Lines {
		pr.Lines[i].Recalculate()
	}
	pr.Touch()
	return nil
}

// LineByID returns the line with the given id, or nil
func (pr *PurchaseRequest) LineByID(id uuid.UUID) *Line {
	for i := range pr.Lines {
		if pr.Lines[i].ID == id {
			return &pr.Lines[i]
		}
	}
	return nil
}

// Total returns the sum of line payables
func (pr *PurchaseRequest) Total() valueobject.Money {
	total := valueobject.ZeroINR()
	for i := range pr.Lines {
		total = total.MustAdd(pr.Lines[i].PayableAmount())
	}
	return total
}

// TaxSplit is the base/GST/TDS/net breakdown across all lines
type TaxSplit struct {
	Base valueobject.Money
	GST  valueobject.Money
	TDS  valueobject.Money
	Net  valueobject.Money
}

// TaxSplitUp returns the aggregate tax breakdown of the request
func (pr *PurchaseRequest) TaxSplitUp() TaxSplit {
	base := valueobject.ZeroINR()
	gst := valueobject.ZeroINR()
	tds := valueobject.ZeroINR()
	for i := range pr.Lines {
		l := &pr.Lines[i]
		base = base.MustAdd(l.BaseTotalMoney())
		gst = gst.MustAdd(l.BaseTotalMoney().CalculatePercentage(l.GSTRate))
		tds = tds.MustAdd(l.BaseTotalMoney().CalculatePercentage(l.TDSRate))
	}
	return TaxSplit{
		Base: base,
		GST:  gst,
		TDS:  tds,
		Net:  base.MustAdd(gst).MustSubtract(tds),
	}
}

// Clone returns an independent copy of the purchase request. Mutations
// on the copy do not reach the original until it is handed back to the
// store.
func (pr *PurchaseRequest) Clone() *PurchaseRequest {
	cp := *pr
	cp.Lines = make([]Line, len(pr.Lines))
	for i := range pr.Lines {
		cp.Lines[i] = pr.Lines[i].Clone()
	}
	return &cp
}

package store

import (
	"context"
	"errors"

	"github.com/expensedesk/backend/internal/domain/finance"
	"github.com/expensedesk/backend/internal/domain/procurement"
	"github.com/expensedesk/backend/internal/domain/vendors"
)

// SnapshotKey is the versioned slot every snapshot is written under.
// Bump the suffix when the snapshot layout changes incompatibly.
const SnapshotKey = "expense-store-v1"

// ErrNoSnapshot is returned by a Snapshotter when no snapshot has been
// written yet. The store treats this as a fresh start, not a failure.
var ErrNoSnapshot = errors.New("no snapshot present")

// Snapshotter persists the full store state as one opaque blob under a
// versioned key. Implementations must make Write atomic: a reader never
// observes a partially written snapshot.
type Snapshotter interface {
	Read(ctx context.Context) ([]byte, error)
	Write(ctx context.Context, data []byte) error
}

// Snapshot is the serialized form of the whole record store. Every
// mutation rewrites the entire snapshot; there are no per-record writes.
type Snapshot struct {
	Vendors          []*vendors.Vendor               `json:"vendors"`
	VendorTypes      []*vendors.VendorType           `json:"vendor_types"`
	PurchaseRequests []*procurement.PurchaseRequest `json:"purchase_requests"`
	Invoices         []*finance.Invoice             `json:"invoices"`
	PaymentVouchers  []*finance.PaymentVoucher      `json:"payment_vouchers"`
	DebitNotes       []*finance.DebitNote           `json:"debit_notes"`
}

package store

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/expensedesk/backend/internal/domain/finance"
	"github.com/expensedesk/backend/internal/domain/procurement"
	"github.com/expensedesk/backend/internal/domain/shared"
	"github.com/expensedesk/backend/internal/domain/vendors"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Store holds every record in memory and rewrites the full snapshot on
// each mutation. A single mutex serializes access; the workload is one
// operator at a time, so contention is not a concern.
type Store struct {
	mu     sync.Mutex
	snap   Snapshotter
	logger *zap.Logger
	state  Snapshot
}

// NewStore creates an empty store backed by the given snapshotter
func NewStore(snap Snapshotter, logger *zap.Logger) *Store {
	return &Store{
		snap:   snap,
		logger: logger,
	}
}

// Load reads the persisted snapshot into memory. A missing snapshot
// starts empty; a corrupt one is logged and discarded rather than
// blocking startup.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.snap.Read(ctx)
	if errors.Is(err, ErrNoSnapshot) {
		s.logger.Info("no snapshot found, starting with an empty store")
		return nil
	}
	if err != nil {
		return err
	}

	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		s.logger.Warn("snapshot is corrupt, starting with an empty store",
			zap.String("key", SnapshotKey),
			zap.Error(err))
		s.state = Snapshot{}
		return nil
	}

	s.state = snapshot
	s.logger.Info("snapshot loaded",
		zap.Int("vendors", len(snapshot.Vendors)),
		zap.Int("purchase_requests", len(snapshot.PurchaseRequests)),
		zap.Int("invoices", len(snapshot.Invoices)),
		zap.Int("payment_vouchers", len(snapshot.PaymentVouchers)),
		zap.Int("debit_notes", len(snapshot.DebitNotes)))
	return nil
}

// persist writes the current state. Callers hold the mutex.
func (s *Store) persist(ctx context.Context) error {
	data, err := json.Marshal(s.state)
	if err != nil {
		return err
	}
	if err := s.snap.Write(ctx, data); err != nil {
		s.logger.Error("failed to persist snapshot", zap.Error(err))
		return err
	}
	return nil
}

// Vendors

func (s *Store) AddVendor(ctx context.Context, v *vendors.Vendor) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Vendors = append(s.state.Vendors, v)
	return s.persist(ctx)
}

func (s *Store) UpdateVendor(ctx context.Context, v *vendors.Vendor) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.state.Vendors {
		if existing.ID == v.ID {
			s.state.Vendors[i] = v
			return s.persist(ctx)
		}
	}
	return shared.ErrNotFound
}

func (s *Store) RemoveVendor(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, v := range s.state.Vendors {
		if v.ID == id {
			s.state.Vendors = append(s.state.Vendors[:i], s.state.Vendors[i+1:]...)
			return s.persist(ctx)
		}
	}
	return shared.ErrNotFound
}

// VendorByID returns a copy of the vendor. Callers mutate the copy and
// hand it back through UpdateVendor; a discarded copy leaves the store
// untouched.
func (s *Store) VendorByID(id uuid.UUID) (*vendors.Vendor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, v := range s.state.Vendors {
		if v.ID == id {
			return v.Clone(), nil
		}
	}
	return nil, shared.ErrNotFound
}

func (s *Store) Vendors() []*vendors.Vendor {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*vendors.Vendor, len(s.state.Vendors))
	for i, v := range s.state.Vendors {
		out[i] = v.Clone()
	}
	return out
}

// Vendor types

func (s *Store) AddVendorType(ctx context.Context, vt *vendors.VendorType) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.VendorTypes = append(s.state.VendorTypes, vt)
	return s.persist(ctx)
}

func (s *Store) UpdateVendorType(ctx context.Context, vt *vendors.VendorType) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.state.VendorTypes {
		if existing.ID == vt.ID {
			s.state.VendorTypes[i] = vt
			return s.persist(ctx)
		}
	}
	return shared.ErrNotFound
}

func (s *Store) RemoveVendorType(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, vt := range s.state.VendorTypes {
		if vt.ID == id {
			s.state.VendorTypes = append(s.state.VendorTypes[:i], s.state.VendorTypes[i+1:]...)
			return s.persist(ctx)
		}
	}
	return shared.ErrNotFound
}

// VendorTypeByID returns a copy; hand it back through UpdateVendorType.
func (s *Store) VendorTypeByID(id uuid.UUID) (*vendors.VendorType, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, vt := range s.state.VendorTypes {
		if vt.ID == id {
			return vt.Clone(), nil
		}
	}
	return nil, shared.ErrNotFound
}

func (s *Store) VendorTypes() []*vendors.VendorType {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*vendors.VendorType, len(s.state.VendorTypes))
	for i, vt := range s.state.VendorTypes {
		out[i] = vt.Clone()
	}
	return out
}

// Purchase requests

func (s *Store) AddPurchaseRequest(ctx context.Context, pr *procurement.PurchaseRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.PurchaseRequests = append(s.state.PurchaseRequests, pr)
	return s.persist(ctx)
}

func (s *Store) UpdatePurchaseRequest(ctx context.Context, pr *procurement.PurchaseRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.state.PurchaseRequests {
		if existing.ID == pr.ID {
			s.state.PurchaseRequests[i] = pr
			return s.persist(ctx)
		}
	}
	return shared.ErrNotFound
}

// PurchaseRequestByID returns a copy of the request. Callers mutate the
// copy and hand it back through UpdatePurchaseRequest; a copy discarded
// after a failed edit leaves the store untouched.
func (s *Store) PurchaseRequestByID(id uuid.UUID) (*procurement.PurchaseRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, pr := range s.state.PurchaseRequests {
		if pr.ID == id {
			return pr.Clone(), nil
		}
	}
	return nil, shared.ErrNotFound
}

func (s *Store) PurchaseRequests() []*procurement.PurchaseRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*procurement.PurchaseRequest, len(s.state.PurchaseRequests))
	for i, pr := range s.state.PurchaseRequests {
		out[i] = pr.Clone()
	}
	return out
}

// Invoices, vouchers and debit notes are append-only and never mutated
// after creation, so their accessors hand out the stored pointers as-is.

func (s *Store) AddInvoice(ctx context.Context, inv *finance.Invoice) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Invoices = append(s.state.Invoices, inv)
	return s.persist(ctx)
}

func (s *Store) InvoiceByID(id uuid.UUID) (*finance.Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, inv := range s.state.Invoices {
		if inv.ID == id {
			return inv, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (s *Store) Invoices() []*finance.Invoice {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*finance.Invoice, len(s.state.Invoices))
	copy(out, s.state.Invoices)
	return out
}

func (s *Store) AddPaymentVoucher(ctx context.Context, pv *finance.PaymentVoucher) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.PaymentVouchers = append(s.state.PaymentVouchers, pv)
	return s.persist(ctx)
}

func (s *Store) PaymentVoucherByID(id uuid.UUID) (*finance.PaymentVoucher, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, pv := range s.state.PaymentVouchers {
		if pv.ID == id {
			return pv, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (s *Store) PaymentVouchers() []*finance.PaymentVoucher {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*finance.PaymentVoucher, len(s.state.PaymentVouchers))
	copy(out, s.state.PaymentVouchers)
	return out
}

func (s *Store) AddDebitNote(ctx context.Context, dn *finance.DebitNote) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.DebitNotes = append(s.state.DebitNotes, dn)
	return s.persist(ctx)
}

func (s *Store) DebitNoteByID(id uuid.UUID) (*finance.DebitNote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, dn := range s.state.DebitNotes {
		if dn.ID == id {
			return dn, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (s *Store) DebitNotes() []*finance.DebitNote {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*finance.DebitNote, len(s.state.DebitNotes))
	copy(out, s.state.DebitNotes)
	return out
}

package vendors

import (
	"context"

	"github.com/expensedesk/backend/internal/domain/vendors"
	"github.com/expensedesk/backend/internal/store"
	"github.com/google/uuid"
)

// VendorTypeService manages vendor classifications
type VendorTypeService struct {
	store *store.Store
}

// NewVendorTypeService creates a new VendorTypeService
func NewVendorTypeService(st *store.Store) *VendorTypeService {
	return &VendorTypeService{store: st}
}

// Create creates a new vendor type
func (s *VendorTypeService) Create(ctx context.Context, req CreateVendorTypeRequest) (*VendorTypeResponse, error) {
	vt, err := vendors.NewVendorType(req.Name)
	if err != nil {
		return nil, err
	}
	if err := s.store.AddVendorType(ctx, vt); err != nil {
		return nil, err
	}
	resp := ToVendorTypeResponse(vt)
	return &resp, nil
}

// GetByID retrieves a vendor type by ID
func (s *VendorTypeService) GetByID(ctx context.Context, id uuid.UUID) (*VendorTypeResponse, error) {
	vt, err := s.store.VendorTypeByID(id)
	if err != nil {
		return nil, err
	}
	resp := ToVendorTypeResponse(vt)
	return &resp, nil
}

// List returns all vendor types in insertion order
func (s *VendorTypeService) List(ctx context.Context) []VendorTypeResponse {
	all := s.store.VendorTypes()
	out := make([]VendorTypeResponse, 0, len(all))
	for _, vt := range all {
		out = append(out, ToVendorTypeResponse(vt))
	}
	return out
}

// Update applies a partial update to a vendor type
func (s *VendorTypeService) Update(ctx context.Context, id uuid.UUID, req UpdateVendorTypeRequest) (*VendorTypeResponse, error) {
	vt, err := s.store.VendorTypeByID(id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		if err := vt.Rename(*req.Name); err != nil {
			return nil, err
		}
	}
	if req.Active != nil {
		vt.SetActive(*req.Active)
	}
	if err := s.store.UpdateVendorType(ctx, vt); err != nil {
		return nil, err
	}
	resp := ToVendorTypeResponse(vt)
	return &resp, nil
}

// Delete removes a vendor type. Vendors referencing it keep the stale id
// and show an empty type name.
func (s *VendorTypeService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.store.RemoveVendorType(ctx, id)
}

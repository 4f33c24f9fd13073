package vendors

import (
	"github.com/expensedesk/backend/internal/domain/shared"
)

// VendorType represents a vendor classification (e.g. Contractor, Consultant)
type VendorType struct {
	shared.BaseEntity
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

// NewVendorType creates a new active vendor type
func NewVendorType(name string) (*VendorType, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_TYPE_NAME", "Vendor type name cannot be empty")
	}
	if len(name) > 100 {
		return nil, shared.NewDomainError("INVALID_TYPE_NAME", "Vendor type name cannot exceed 100 characters")
	}
	return &VendorType{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Active:     true,
	}, nil
}

// Rename changes the vendor type name
func (t *VendorType) Rename(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_TYPE_NAME", "Vendor type name cannot be empty")
	}
	t.Name = name
	t.Touch()
	return nil
}

// SetActive toggles the active flag
func (t *VendorType) SetActive(active bool) {
	t.Active = active
	t.Touch()
}

// Clone returns an independent copy of the vendor type
func (t *VendorType) Clone() *VendorType {
	cp := *t
	return &cp
}

package procurement

import (
	"github.com/expensedesk/backend/internal/domain/shared"
	"github.com/expensedesk/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LineType represents the kind of item requested
type LineType string

const (
	LineTypeGoods    LineType = "Goods"
	LineTypeServices LineType = "Services"
)

// IsValid checks if the line type is a known value
func (t LineType) IsValid() bool {
	return t == LineTypeGoods || t == LineTypeServices
}

// ParseRate parses a percentage rate entered as free text.
// Missing or non-numeric input coerces to zero rather than erroring,
// matching how rate fields behave on the request forms.
func ParseRate(s string) decimal.Decimal {
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Line represents a single item on a purchase request
//
// BaseTotal normally derives from Quantity x UnitPrice. A manual override
// sticks: once BaseOverridden is set, Recalculate keeps the entered base
// and only re-derives the tax amounts and payable from it.
type Line struct {
	ID             uuid.UUID        `json:"id"`
	Name           string           `json:"name"`
	AccountID      string           `json:"account_id"`
	Type           LineType         `json:"type"`
	UnitOfMeasure  string           `json:"uom,omitempty"`
	Description    string           `json:"description,omitempty"`
	Quantity       decimal.Decimal  `json:"quantity"`
	UnitPrice      decimal.Decimal  `json:"unit_price"`
	BaseTotal      decimal.Decimal  `json:"base_total"`
	BaseOverridden bool             `json:"base_overridden,omitempty"`
	GSTRate        decimal.Decimal  `json:"gst_rate"`
	TDSRate        decimal.Decimal  `json:"tds_rate"`
	GSTAmount      decimal.Decimal  `json:"gst_amount"`
	TDSAmount      decimal.Decimal  `json:"tds_amount"`
	Payable        *decimal.Decimal `json:"payable,omitempty"`
}

// NewLine creates a line and computes its derived amounts
func NewLine(name, accountID string, lineType LineType, uom string, quantity, unitPrice, gstRate, tdsRate decimal.Decimal) (*Line, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_LINE_NAME", "Line item name cannot be empty")
	}
	if accountID == "" {
		return nil, shared.NewDomainError("INVALID_ACCOUNT", "Expense account is required")
	}
	if !lineType.IsValid() {
		return nil, shared.NewDomainError("INVALID_LINE_TYPE", "Line type must be Goods or Services")
	}

	l := &Line{
		ID:            uuid.New(),
		Name:          name,
		AccountID:     accountID,
		Type:          lineType,
		UnitOfMeasure: uom,
		Quantity:      quantity,
		UnitPrice:     unitPrice,
		GSTRate:       gstRate,
		TDSRate:       tdsRate,
	}
	l.Recalculate()
	return l, nil
}

// Recalculate populates the derived amounts from the current inputs.
// Pure with respect to its inputs and idempotent: running it on its own
// output yields the same line. Negative quantity or price is not rejected
// here; it propagates arithmetically.
func (l *Line) Recalculate() {
	if !l.BaseOverridden {
		l.BaseTotal = l.Quantity.Mul(l.UnitPrice)
	}

	base := valueobject.NewMoneyINR(l.BaseTotal)
	gst := base.CalculatePercentage(l.GSTRate)
	tds := base.CalculatePercentage(l.TDSRate)
	payable := base.MustAdd(gst).MustSubtract(tds)

	l.GSTAmount = gst.Amount()
	l.TDSAmount = tds.Amount()
	p := payable.Amount()
	l.Payable = &p
}

// OverrideBaseTotal sets an explicit base amount that survives recalculation
func (l *Line) OverrideBaseTotal(base decimal.Decimal) {
	l.BaseTotal = base
	l.BaseOverridden = true
	l.Recalculate()
}

// PayableAmount returns the line payable, deriving it from the tax formula
// when the stored value is absent
func (l *Line) PayableAmount() valueobject.Money {
	if l.Payable != nil {
		return valueobject.NewMoneyINR(*l.Payable)
	}
	base := valueobject.NewMoneyINR(l.BaseTotal)
	return base.
		MustAdd(base.CalculatePercentage(l.GSTRate)).
		MustSubtract(base.CalculatePercentage(l.TDSRate))
}

// BaseTotalMoney returns the base amount as Money
func (l *Line) BaseTotalMoney() valueobject.Money {
	return valueobject.NewMoneyINR(l.BaseTotal)
}

// GSTAmountMoney returns the GST amount as Money
func (l *Line) GSTAmountMoney() valueobject.Money {
	return valueobject.NewMoneyINR(l.GSTAmount)
}

// TDSAmountMoney returns the TDS amount as Money
func (l *Line) TDSAmountMoney() valueobject.Money {
	return valueobject.NewMoneyINR(l.TDSAmount)
}

// Clone returns an independent copy of the line
func (l *Line) Clone() Line {
	cp := *l
	if l.Payable != nil {
		p := *l.Payable
		cp.Payable = &p
	}
	return cp
}

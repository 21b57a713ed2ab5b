package receiving

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/erp/receiving/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Field limits for slips and their line items
const (
	MaxSupplierLength    = 200
	MaxReferenceNoLength = 50
	MaxNoteLength        = 500
	MaxProductNameLength = 200
	MaxUnitLength        = 50

	// MaxItemQuantity is the largest quantity a single line may carry
	MaxItemQuantity int64 = 1_000_000_000
	// PriceScale is the number of decimal places stored for prices and totals
	PriceScale int32 = 4

	DefaultUnit = "unit"
)

// ItemSpec carries the mutable fields of a line item, as supplied by a caller
type ItemSpec struct {
	ProductID   *int64
	ProductName string
	Unit        string
	Quantity    int64
	UnitPrice   decimal.Decimal
}

// Normalize trims the spec, applies the default unit, rounds the unit price
// to PriceScale and validates it
func (s ItemSpec) Normalize() (ItemSpec, error) {
	s.ProductName = strings.TrimSpace(s.ProductName)
	s.Unit = strings.TrimSpace(s.Unit)
	if s.Unit == "" {
		s.Unit = DefaultUnit
	}

	if s.ProductName == "" {
		return s, shared.NewValidationError("product name is required")
	}
	if utf8.RuneCountInString(s.ProductName) > MaxProductNameLength {
		return s, shared.NewValidationError("product name cannot exceed %d characters", MaxProductNameLength)
	}
	if utf8.RuneCountInString(s.Unit) > MaxUnitLength {
		return s, shared.NewValidationError("unit cannot exceed %d characters", MaxUnitLength)
	}
	if s.Quantity <= 0 {
		return s, shared.NewValidationError("quantity must be greater than 0")
	}
	if s.Quantity > MaxItemQuantity {
		return s, shared.NewValidationError("quantity cannot exceed %d", MaxItemQuantity)
	}
	if s.UnitPrice.IsNegative() {
		return s, shared.NewValidationError("unit price cannot be negative")
	}
	s.UnitPrice = s.UnitPrice.Round(PriceScale)
	if s.ProductID != nil && *s.ProductID <= 0 {
		return s, shared.NewValidationError("product id must be positive")
	}
	return s, nil
}

// ReceivingSlipItem is one product/quantity/price line of a slip
type ReceivingSlipItem struct {
	ID          int64
	SlipID      int64
	ProductID   *int64 // nil until the line is resolved to a catalog product
	ProductName string // snapshot at entry time
	Unit        string
	Quantity    int64
	UnitPrice   decimal.Decimal
	Total       decimal.Decimal // always Quantity * UnitPrice
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewReceivingSlipItem creates a validated item for the given slip
func NewReceivingSlipItem(slipID int64, spec ItemSpec) (*ReceivingSlipItem, error) {
	spec, err := spec.Normalize()
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	item := &ReceivingSlipItem{
		SlipID:    slipID,
		CreatedAt: now,
	}
	item.assign(spec, now)
	return item, nil
}

// Apply overwrites every mutable field, including clearing the product
// reference when spec.ProductID is nil, and recomputes the total.
func (i *ReceivingSlipItem) Apply(spec ItemSpec) error {
	spec, err := spec.Normalize()
	if err != nil {
		return err
	}
	i.assign(spec, time.Now().UTC())
	return nil
}

func (i *ReceivingSlipItem) assign(spec ItemSpec, now time.Time) {
	if spec.ProductID != nil {
		id := *spec.ProductID
		i.ProductID = &id
	} else {
		i.ProductID = nil
	}
	i.ProductName = spec.ProductName
	i.Unit = spec.Unit
	i.Quantity = spec.Quantity
	i.UnitPrice = spec.UnitPrice
	i.Total = LineTotal(spec.Quantity, spec.UnitPrice)
	i.UpdatedAt = now
}

// HasProduct returns true if the line is tied to a catalog product
func (i *ReceivingSlipItem) HasProduct() bool {
	return i.ProductID != nil
}

// LineTotal computes quantity * unit price, rounded to PriceScale
func LineTotal(quantity int64, unitPrice decimal.Decimal) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(quantity)).Round(PriceScale)
}

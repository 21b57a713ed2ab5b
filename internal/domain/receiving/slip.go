package receiving

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/erp/receiving/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// AggregateType is the aggregate name used in domain events
const AggregateType = "ReceivingSlip"

// ReceivingSlip is a goods intake document from a supplier.
// It owns its line items and moves once from Draft to Confirmed.
type ReceivingSlip struct {
	shared.BaseAggregateRoot
	ID          int64
	Supplier    string
	ReferenceNo string
	ReceiptDate time.Time // UTC midnight
	Note        string
	Status      SlipStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
	ConfirmedAt *time.Time
	Items       []ReceivingSlipItem
}

// SlipHeader carries the caller-supplied header fields of a new slip
type SlipHeader struct {
	Supplier    string
	ReferenceNo string
	ReceiptDate time.Time
	Note        string
}

// ValidateRequired runs the checks that precede the reference-number
// uniqueness lookup on create, in order: supplier, reference number,
// at least one item.
func ValidateRequired(header SlipHeader, itemCount int) error {
	if strings.TrimSpace(header.Supplier) == "" {
		return shared.NewValidationError("supplier is required")
	}
	if strings.TrimSpace(header.ReferenceNo) == "" {
		return shared.NewValidationError("reference number is required")
	}
	if itemCount == 0 {
		return shared.NewValidationError("at least one item is required")
	}
	return nil
}

// NewReceivingSlip creates a Draft slip with validated items.
// Reference-number uniqueness is the caller's responsibility.
func NewReceivingSlip(header SlipHeader, items []ItemSpec) (*ReceivingSlip, error) {
	if err := ValidateRequired(header, len(items)); err != nil {
		return nil, err
	}
	supplier := strings.TrimSpace(header.Supplier)
	ref := strings.TrimSpace(header.ReferenceNo)
	note := strings.TrimSpace(header.Note)
	if utf8.RuneCountInString(supplier) > MaxSupplierLength {
		return nil, shared.NewValidationError("supplier cannot exceed %d characters", MaxSupplierLength)
	}
	if utf8.RuneCountInString(ref) > MaxReferenceNoLength {
		return nil, shared.NewValidationError("reference number cannot exceed %d characters", MaxReferenceNoLength)
	}
	if utf8.RuneCountInString(note) > MaxNoteLength {
		return nil, shared.NewValidationError("note cannot exceed %d characters", MaxNoteLength)
	}

	now := time.Now().UTC()
	receiptDate := header.ReceiptDate
	if receiptDate.IsZero() {
		receiptDate = now
	}

	slip := &ReceivingSlip{
		Supplier:    supplier,
		ReferenceNo: ref,
		ReceiptDate: NormalizeDate(receiptDate),
		Note:        note,
		Status:      SlipStatusDraft,
		CreatedAt:   now,
		UpdatedAt:   now,
		Items:       make([]ReceivingSlipItem, 0, len(items)),
	}
	for idx, spec := range items {
		item, err := NewReceivingSlipItem(0, spec)
		if err != nil {
			var de *shared.DomainError
			if errors.As(err, &de) {
				return nil, de.WithDetail("item_index", idx)
			}
			return nil, err
		}
		slip.Items = append(slip.Items, *item)
	}
	return slip, nil
}

// NormalizeDate strips the clock from t, keeping its calendar date, in UTC
func NormalizeDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// EnsureModifiable fails with a conflict unless the slip is still Draft
func (s *ReceivingSlip) EnsureModifiable() error {
	if !s.Status.IsEditable() {
		return shared.NewConflictError("only Draft slips can be modified").
			WithDetail("status", s.Status.String())
	}
	return nil
}

// EnsureDeletable fails with a conflict unless the slip is still Draft
func (s *ReceivingSlip) EnsureDeletable() error {
	if !s.Status.IsEditable() {
		return shared.NewConflictError("only Draft slips can be deleted").
			WithDetail("status", s.Status.String())
	}
	return nil
}

// AddItem appends a new line to a Draft slip
func (s *ReceivingSlip) AddItem(spec ItemSpec) (*ReceivingSlipItem, error) {
	if err := s.EnsureModifiable(); err != nil {
		return nil, err
	}
	item, err := NewReceivingSlipItem(s.ID, spec)
	if err != nil {
		return nil, err
	}
	s.Items = append(s.Items, *item)
	return item, nil
}

// TotalAmount sums every line total
func (s *ReceivingSlip) TotalAmount() decimal.Decimal {
	total := decimal.Zero
	for i := range s.Items {
		total = total.Add(s.Items[i].Total)
	}
	return total
}

// TotalQuantity sums every line quantity
func (s *ReceivingSlip) TotalQuantity() int64 {
	var total int64
	for i := range s.Items {
		total += s.Items[i].Quantity
	}
	return total
}

// IsConfirmed returns true once stock has been applied
func (s *ReceivingSlip) IsConfirmed() bool {
	return s.Status == SlipStatusConfirmed
}

// Confirm moves the slip to Confirmed. It is the only code path that writes
// SlipStatusConfirmed. increments is the plan that was applied to stock.
func (s *ReceivingSlip) Confirm(at time.Time, increments []StockIncrement) error {
	if !s.Status.CanTransitionTo(SlipStatusConfirmed) {
		return shared.NewConflictError("slip %s is already %s", s.ReferenceNo, s.Status)
	}
	at = at.UTC()
	s.Status = SlipStatusConfirmed
	s.ConfirmedAt = &at
	s.UpdatedAt = at
	s.AddDomainEvent(NewSlipConfirmedEvent(s, increments))
	return nil
}

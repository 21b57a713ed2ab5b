package receiving

import (
	"time"

	"github.com/erp/receiving/internal/domain/shared"
)

// Event type constants for receiving slips
const (
	EventTypeSlipCreated   = "ReceivingSlipCreated"
	EventTypeSlipConfirmed = "ReceivingSlipConfirmed"
	EventTypeSlipDeleted   = "ReceivingSlipDeleted"
)

// SlipCreatedEvent is raised when a Draft slip is persisted
type SlipCreatedEvent struct {
	shared.BaseDomainEvent
	ReferenceNo string `json:"reference_no"`
	Supplier    string `json:"supplier"`
	ItemCount   int    `json:"item_count"`
}

// NewSlipCreatedEvent creates a SlipCreatedEvent
func NewSlipCreatedEvent(s *ReceivingSlip) *SlipCreatedEvent {
	return &SlipCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeSlipCreated, AggregateType, s.ID),
		ReferenceNo:     s.ReferenceNo,
		Supplier:        s.Supplier,
		ItemCount:       len(s.Items),
	}
}

// SlipConfirmedEvent is raised when a slip's quantities were applied to stock
type SlipConfirmedEvent struct {
	shared.BaseDomainEvent
	ReferenceNo string           `json:"reference_no"`
	ConfirmedAt time.Time        `json:"confirmed_at"`
	Increments  []StockIncrement `json:"increments"`
}

// NewSlipConfirmedEvent creates a SlipConfirmedEvent
func NewSlipConfirmedEvent(s *ReceivingSlip, increments []StockIncrement) *SlipConfirmedEvent {
	var confirmedAt time.Time
	if s.ConfirmedAt != nil {
		confirmedAt = *s.ConfirmedAt
	}
	return &SlipConfirmedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeSlipConfirmed, AggregateType, s.ID),
		ReferenceNo:     s.ReferenceNo,
		ConfirmedAt:     confirmedAt,
		Increments:      append([]StockIncrement(nil), increments...),
	}
}

// SlipDeletedEvent is raised when a Draft slip is removed
type SlipDeletedEvent struct {
	shared.BaseDomainEvent
	ReferenceNo string `json:"reference_no"`
}

// NewSlipDeletedEvent creates a SlipDeletedEvent
func NewSlipDeletedEvent(s *ReceivingSlip) *SlipDeletedEvent {
	return &SlipDeletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeSlipDeleted, AggregateType, s.ID),
		ReferenceNo:     s.ReferenceNo,
	}
}

package receiving

import (
	"context"
	"fmt"

	"github.com/erp/receiving/internal/domain/receiving"
	"github.com/erp/receiving/internal/domain/shared"
	"go.uber.org/zap"
)

// SlipConfirmedHandler writes an audit line for every product whose stock
// was raised by a confirmed slip.
type SlipConfirmedHandler struct {
	logger *zap.Logger
}

// NewSlipConfirmedHandler creates a new handler for slip confirmed events
func NewSlipConfirmedHandler(logger *zap.Logger) *SlipConfirmedHandler {
	return &SlipConfirmedHandler{logger: logger}
}

// EventTypes returns the event types this handler is interested in
func (h *SlipConfirmedHandler) EventTypes() []string {
	return []string{receiving.EventTypeSlipConfirmed}
}

// Handle processes a SlipConfirmedEvent
func (h *SlipConfirmedHandler) Handle(_ context.Context, event shared.DomainEvent) error {
	confirmed, ok := event.(*receiving.SlipConfirmedEvent)
	if !ok {
		h.logger.Error("unexpected event type",
			zap.String("expected", receiving.EventTypeSlipConfirmed),
			zap.String("actual", event.EventType()),
		)
		return fmt.Errorf("unexpected event type: expected %s, got %s",
			receiving.EventTypeSlipConfirmed, event.EventType())
	}

	for _, inc := range confirmed.Increments {
		h.logger.Info("stock received",
			zap.Int64("slip_id", confirmed.AggregateID()),
			zap.String("reference_no", confirmed.ReferenceNo),
			zap.Int64("product_id", inc.ProductID),
			zap.Int64("added_quantity", inc.Quantity),
			zap.Time("confirmed_at", confirmed.ConfirmedAt),
		)
	}
	return nil
}

var _ shared.EventHandler = (*SlipConfirmedHandler)(nil)

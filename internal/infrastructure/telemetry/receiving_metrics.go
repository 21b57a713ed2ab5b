package telemetry

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// ErrMeterNil is returned when metrics are built without a meter
var ErrMeterNil = errors.New("NewReceivingMetrics: meter cannot be nil")

// AttrReason labels why a confirm was rejected
var AttrReason = attribute.Key("reason")

// ReceivingMetrics tracks the receiving-slip lifecycle.
type ReceivingMetrics struct {
	slipsCreated    *Counter
	itemsCreated    *Counter
	slipsConfirmed  *Counter
	slipsDeleted    *Counter
	confirmRejected *Counter
	unitsReceived   *Counter
	confirmDuration *Histogram
}

// NewReceivingMetrics registers the receiving instruments on meter.
func NewReceivingMetrics(meter metric.Meter) (*ReceivingMetrics, error) {
	if meter == nil {
		return nil, ErrMeterNil
	}

	m := &ReceivingMetrics{}
	var err error
	if m.slipsCreated, err = NewCounter(meter, "receiving_slips_created_total", "Receiving slips created", "{slips}"); err != nil {
		return nil, err
	}
	if m.itemsCreated, err = NewCounter(meter, "receiving_slip_items_created_total", "Line items created with new slips", "{items}"); err != nil {
		return nil, err
	}
	if m.slipsConfirmed, err = NewCounter(meter, "receiving_slips_confirmed_total", "Receiving slips confirmed", "{slips}"); err != nil {
		return nil, err
	}
	if m.slipsDeleted, err = NewCounter(meter, "receiving_slips_deleted_total", "Draft receiving slips deleted", "{slips}"); err != nil {
		return nil, err
	}
	if m.confirmRejected, err = NewCounter(meter, "receiving_confirm_rejected_total", "Confirm calls that did not apply stock", "{calls}"); err != nil {
		return nil, err
	}
	if m.unitsReceived, err = NewCounter(meter, "receiving_stock_units_received_total", "Stock units added by confirmed slips", "{units}"); err != nil {
		return nil, err
	}
	if m.confirmDuration, err = NewHistogram(meter, "receiving_confirm_duration_seconds", "Confirm latency", "s", DBDurationBuckets...); err != nil {
		return nil, err
	}
	return m, nil
}

// RecordSlipCreated counts a new slip and its items
func (m *ReceivingMetrics) RecordSlipCreated(ctx context.Context, itemCount int) {
	m.slipsCreated.Inc(ctx)
	m.itemsCreated.Add(ctx, int64(itemCount))
}

// RecordSlipConfirmed counts a successful confirm
func (m *ReceivingMetrics) RecordSlipConfirmed(ctx context.Context, productCount int, units int64, elapsed time.Duration) {
	m.slipsConfirmed.Inc(ctx, attribute.Int("products", productCount))
	m.unitsReceived.Add(ctx, units)
	m.confirmDuration.RecordDuration(ctx, elapsed)
}

// RecordConfirmRejected counts a failed confirm, labelled by error code
func (m *ReceivingMetrics) RecordConfirmRejected(ctx context.Context, reason string) {
	m.confirmRejected.Inc(ctx, AttrReason.String(reason))
}

// RecordSlipDeleted counts a deleted slip
func (m *ReceivingMetrics) RecordSlipDeleted(ctx context.Context) {
	m.slipsDeleted.Inc(ctx)
}

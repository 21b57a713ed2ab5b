package telemetry_test

import (
	"context"
	"testing"
	"time"

	"github.com/erp/receiving/internal/infrastructure/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func collectSums(t *testing.T, reader *sdkmetric.ManualReader) map[string]int64 {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	sums := make(map[string]int64)
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if sum, ok := m.Data.(metricdata.Sum[int64]); ok {
				for _, dp := range sum.DataPoints {
					sums[m.Name] += dp.Value
				}
			}
		}
	}
	return sums
}

func TestNewReceivingMetrics_NilMeter(t *testing.T) {
	m, err := telemetry.NewReceivingMetrics(nil)
	assert.Nil(t, m)
	assert.ErrorIs(t, err, telemetry.ErrMeterNil)
}

func TestReceivingMetrics_Record(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	m, err := telemetry.NewReceivingMetrics(provider.Meter("test"))
	require.NoError(t, err)

	ctx := context.Background()
	m.RecordSlipCreated(ctx, 3)
	m.RecordSlipCreated(ctx, 2)
	m.RecordSlipConfirmed(ctx, 2, 10, 15*time.Millisecond)
	m.RecordConfirmRejected(ctx, "CONFLICT")
	m.RecordSlipDeleted(ctx)

	sums := collectSums(t, reader)
	assert.Equal(t, int64(2), sums["receiving_slips_created_total"])
	assert.Equal(t, int64(5), sums["receiving_slip_items_created_total"])
	assert.Equal(t, int64(1), sums["receiving_slips_confirmed_total"])
	assert.Equal(t, int64(10), sums["receiving_stock_units_received_total"])
	assert.Equal(t, int64(1), sums["receiving_confirm_rejected_total"])
	assert.Equal(t, int64(1), sums["receiving_slips_deleted_total"])
}

package models

import (
	"testing"
	"time"

	"github.com/erp/receiving/internal/domain/receiving"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReceivingSlipModel_RoundTripKeepsItemsAndStatus(t *testing.T) {
	productID := int64(7)
	confirmedAt := time.Date(2024, 5, 3, 8, 0, 0, 0, time.UTC)
	slip := &receiving.ReceivingSlip{
		ID:          3,
		Supplier:    "Acme",
		ReferenceNo: "RS-3",
		ReceiptDate: time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC),
		Status:      receiving.SlipStatusConfirmed,
		ConfirmedAt: &confirmedAt,
		Items: []receiving.ReceivingSlipItem{
			{ID: 1, SlipID: 3, ProductID: &productID, ProductName: "Bolt", Unit: "box",
				Quantity: 4, UnitPrice: decimal.RequireFromString("2.5"), Total: decimal.RequireFromString("10")},
			{ID: 2, SlipID: 3, ProductName: "Loose", Unit: "unit", Quantity: 1},
		},
	}

	m := ReceivingSlipModelFromDomain(slip)
	assert.Equal(t, "CONFIRMED", m.Status)
	require.Len(t, m.Items, 2)

	back := m.ToDomain()
	assert.Equal(t, slip.ReferenceNo, back.ReferenceNo)
	assert.Equal(t, receiving.SlipStatusConfirmed, back.Status)
	assert.Equal(t, confirmedAt, *back.ConfirmedAt)
	require.Len(t, back.Items, 2)
	assert.Equal(t, int64(7), *back.Items[0].ProductID)
	assert.Nil(t, back.Items[1].ProductID)
	assert.True(t, back.Items[0].Total.Equal(decimal.NewFromInt(10)))
}

func TestReceivingSlipModel_ToDomainNormalizesReceiptDate(t *testing.T) {
	local := time.FixedZone("UTC+2", 2*60*60)
	m := &ReceivingSlipModel{ReceiptDate: time.Date(2024, 5, 2, 0, 0, 0, 0, local), Status: "DRAFT"}

	got := m.ToDomain()
	assert.Equal(t, time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC), got.ReceiptDate)
	assert.NotNil(t, got.Items)
	assert.Empty(t, got.Items)
}

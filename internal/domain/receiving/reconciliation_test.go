package receiving

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/erp/receiving/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanReconciliation(t *testing.T) {
	t.Run("sums quantities per product in ascending id order", func(t *testing.T) {
		slip := createTestSlip(t,
			testItem(int64Ptr(20), 3, "1"),
			testItem(int64Ptr(5), 5, "1"),
			testItem(int64Ptr(20), 2, "1"),
		)

		plan, err := slip.PlanReconciliation()
		require.NoError(t, err)
		assert.Equal(t, []StockIncrement{
			{ProductID: 5, Quantity: 5},
			{ProductID: 20, Quantity: 5},
		}, plan)
		assert.Equal(t, []int64{5, 20}, ProductIDs(plan))
	})

	t.Run("conflict when already confirmed", func(t *testing.T) {
		slip := createTestSlip(t)
		require.NoError(t, slip.Confirm(time.Now(), nil))

		_, err := slip.PlanReconciliation()
		assert.True(t, errors.Is(err, shared.ErrConflict))
	})

	t.Run("conflict is reported before empty items", func(t *testing.T) {
		slip := createTestSlip(t)
		slip.Items = nil
		slip.Status = SlipStatusConfirmed

		_, err := slip.PlanReconciliation()
		assert.True(t, errors.Is(err, shared.ErrConflict))
	})

	t.Run("validation when no items", func(t *testing.T) {
		slip := createTestSlip(t)
		slip.Items = nil

		_, err := slip.PlanReconciliation()
		assert.True(t, errors.Is(err, shared.ErrValidation))
	})

	t.Run("validation when an item has no product", func(t *testing.T) {
		slip := createTestSlip(t,
			testItem(int64Ptr(1), 1, "1"),
			testItem(nil, 1, "1"),
		)

		_, err := slip.PlanReconciliation()
		var de *shared.DomainError
		require.True(t, errors.As(err, &de))
		assert.Equal(t, shared.CodeValidation, de.Code)
		assert.Equal(t, []int64{2}, de.Details["unresolved_item_ids"])
	})

	t.Run("sums lines at the quantity limit", func(t *testing.T) {
		slip := createTestSlip(t,
			testItem(int64Ptr(9), MaxItemQuantity, "0"),
			testItem(int64Ptr(9), MaxItemQuantity, "0"),
		)

		plan, err := slip.PlanReconciliation()
		require.NoError(t, err)
		assert.Equal(t, []StockIncrement{{ProductID: 9, Quantity: 2 * MaxItemQuantity}}, plan)
	})

	t.Run("validation when a product sum overflows", func(t *testing.T) {
		slip := createTestSlip(t,
			testItem(int64Ptr(1), 1, "0"),
			testItem(int64Ptr(1), 1, "0"),
		)
		// stored rows that predate the per-line limit
		slip.Items[0].Quantity = 5_000_000_000_000_000_000
		slip.Items[1].Quantity = 5_000_000_000_000_000_000

		plan, err := slip.PlanReconciliation()
		assert.Nil(t, plan)
		var de *shared.DomainError
		require.True(t, errors.As(err, &de))
		assert.Equal(t, shared.CodeValidation, de.Code)
		assert.Equal(t, int64(1), de.Details["product_id"])
	})

	t.Run("validation when a stored quantity is not positive", func(t *testing.T) {
		slip := createTestSlip(t, testItem(int64Ptr(1), 1, "0"))
		slip.Items[0].Quantity = -4

		_, err := slip.PlanReconciliation()
		assert.True(t, errors.Is(err, shared.ErrValidation))
	})
}

func TestEnsureStockHeadroom(t *testing.T) {
	plan := []StockIncrement{{ProductID: 1, Quantity: 10}, {ProductID: 2, Quantity: 10}}

	assert.NoError(t, EnsureStockHeadroom(plan, map[int64]int64{1: 5, 2: math.MaxInt64 - 10}))
	assert.NoError(t, EnsureStockHeadroom(plan, map[int64]int64{1: -3}))

	err := EnsureStockHeadroom(plan, map[int64]int64{1: 5, 2: math.MaxInt64 - 9})
	var de *shared.DomainError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, shared.CodeValidation, de.Code)
	assert.Equal(t, int64(2), de.Details["product_id"])
}

func TestMissingProductIDs(t *testing.T) {
	found := map[int64]struct{}{2: {}, 4: {}}
	assert.Equal(t, []int64{1, 3}, MissingProductIDs([]int64{4, 3, 2, 1}, found))
	assert.Nil(t, MissingProductIDs([]int64{2, 4}, found))
}

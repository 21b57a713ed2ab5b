package receiving

import (
	"math"
	"sort"

	"github.com/erp/receiving/internal/domain/shared"
)

// StockIncrement is the quantity added to one product's stock by a confirm
type StockIncrement struct {
	ProductID int64 `json:"product_id"`
	Quantity  int64 `json:"added_quantity"`
}

// PlanReconciliation checks that the slip can be confirmed and sums its
// quantities per product. Increments are ordered by ascending product id so
// that concurrent confirms lock product rows in the same order.
//
// Checks run in order: Draft status (conflict), at least one item
// (validation), every item tied to a product (validation), per-product sum
// within int64 (validation).
func (s *ReceivingSlip) PlanReconciliation() ([]StockIncrement, error) {
	if s.Status != SlipStatusDraft {
		return nil, shared.NewConflictError("slip %s is already %s", s.ReferenceNo, s.Status).
			WithDetail("status", s.Status.String())
	}
	if len(s.Items) == 0 {
		return nil, shared.NewValidationError("slip %s has no items", s.ReferenceNo)
	}

	var unresolved []int64
	for i := range s.Items {
		if !s.Items[i].HasProduct() {
			unresolved = append(unresolved, s.Items[i].ID)
		}
	}
	if len(unresolved) > 0 {
		return nil, shared.NewValidationError("every item must reference a product before confirmation").
			WithDetail("unresolved_item_ids", unresolved)
	}

	sums := make(map[int64]int64)
	for i := range s.Items {
		item := &s.Items[i]
		if item.Quantity <= 0 {
			return nil, shared.NewValidationError("item %d has a non-positive quantity", item.ID).
				WithDetail("item_id", item.ID)
		}
		productID := *item.ProductID
		if sums[productID] > math.MaxInt64-item.Quantity {
			return nil, shared.NewValidationError("total quantity of product %d is too large", productID).
				WithDetail("product_id", productID)
		}
		sums[productID] += item.Quantity
	}

	increments := make([]StockIncrement, 0, len(sums))
	for productID, qty := range sums {
		increments = append(increments, StockIncrement{ProductID: productID, Quantity: qty})
	}
	sort.Slice(increments, func(a, b int) bool {
		return increments[a].ProductID < increments[b].ProductID
	})
	return increments, nil
}

// ProductIDs returns the product ids of a plan, in plan order
func ProductIDs(increments []StockIncrement) []int64 {
	ids := make([]int64, len(increments))
	for i, inc := range increments {
		ids[i] = inc.ProductID
	}
	return ids
}

// EnsureStockHeadroom fails with a validation error when adding an increment
// to the product's current stock would overflow int64. Products absent from
// stock are skipped.
func EnsureStockHeadroom(increments []StockIncrement, stock map[int64]int64) error {
	for _, inc := range increments {
		current, ok := stock[inc.ProductID]
		if !ok {
			continue
		}
		if current > 0 && current > math.MaxInt64-inc.Quantity {
			return shared.NewValidationError("receiving %d units would overflow the stock of product %d",
				inc.Quantity, inc.ProductID).
				WithDetail("product_id", inc.ProductID)
		}
	}
	return nil
}

// MissingProductIDs returns the ids in wanted that are absent from found,
// ascending.
func MissingProductIDs[V any](wanted []int64, found map[int64]V) []int64 {
	var missing []int64
	for _, id := range wanted {
		if _, ok := found[id]; !ok {
			missing = append(missing, id)
		}
	}
	sort.Slice(missing, func(a, b int) bool { return missing[a] < missing[b] })
	return missing
}

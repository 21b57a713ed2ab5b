package shared

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainError_Is(t *testing.T) {
	err := NewConflictError("slip %s is already %s", "RS-1", "CONFIRMED")
	assert.True(t, errors.Is(err, ErrConflict))
	assert.False(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, "slip RS-1 is already CONFIRMED", err.Error())

	wrapped := fmt.Errorf("confirm: %w", err)
	assert.True(t, errors.Is(wrapped, ErrConflict))

	var de *DomainError
	assert.True(t, errors.As(wrapped, &de))
	assert.Equal(t, CodeConflict, de.Code)
}

func TestDomainError_WithDetail(t *testing.T) {
	base := NewValidationError("products not found")
	withIDs := base.WithDetail("missing_product_ids", []int64{3, 9})

	assert.Nil(t, base.Details, "original error is not mutated")
	assert.Equal(t, []int64{3, 9}, withIDs.Details["missing_product_ids"])
	assert.True(t, errors.Is(withIDs, ErrValidation))
}

func TestNewNotFoundError(t *testing.T) {
	err := NewNotFoundError("receiving slip", int64(12))
	assert.Equal(t, "receiving slip 12 not found", err.Error())
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestNewPaginated(t *testing.T) {
	p := NewPaginated([]int{1, 2}, 25, 2, 20)
	assert.Equal(t, 2, p.TotalPages)

	empty := NewPaginated([]int{}, 0, 1, 20)
	assert.Equal(t, 0, empty.TotalPages)
}

func TestFilter_Offset(t *testing.T) {
	assert.Equal(t, 0, Filter{Page: 1, PageSize: 20}.Offset())
	assert.Equal(t, 40, Filter{Page: 3, PageSize: 20}.Offset())
	assert.Equal(t, 0, Filter{Page: 0, PageSize: 20}.Offset())
}

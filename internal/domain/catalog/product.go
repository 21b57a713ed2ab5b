package catalog

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/erp/receiving/internal/domain/shared"
)

// Product is the catalog's stock-keeping unit. The receiving workflow only
// reads products and increments their stock level; creation, editing and
// deletion belong to the catalog.
type Product struct {
	ID        int64
	Code      string
	Name      string
	Unit      string
	Quantity  int64 // current stock level
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewProduct creates a product with zero stock
func NewProduct(code, name, unit string) (*Product, error) {
	code = strings.TrimSpace(code)
	name = strings.TrimSpace(name)
	if code == "" {
		return nil, shared.NewValidationError("product code cannot be empty")
	}
	if utf8.RuneCountInString(code) > 50 {
		return nil, shared.NewValidationError("product code cannot exceed 50 characters")
	}
	if name == "" {
		return nil, shared.NewValidationError("product name cannot be empty")
	}
	if utf8.RuneCountInString(name) > 200 {
		return nil, shared.NewValidationError("product name cannot exceed 200 characters")
	}
	if strings.TrimSpace(unit) == "" {
		unit = "unit"
	}
	now := time.Now().UTC()
	return &Product{
		Code:      strings.ToUpper(code),
		Name:      name,
		Unit:      unit,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

package catalog

import "context"

// ProductRepository is the slice of the catalog store that other bounded
// contexts are allowed to use.
type ProductRepository interface {
	// FindByID returns shared.ErrNotFound when the product does not exist
	FindByID(ctx context.Context, id int64) (*Product, error)
	// FindByIDs loads every existing product among ids in one query.
	// Missing ids are silently absent from the result.
	FindByIDs(ctx context.Context, ids []int64) ([]Product, error)
	// IncrementQuantity atomically adds delta to the stock level
	IncrementQuantity(ctx context.Context, id int64, delta int64) error
	Save(ctx context.Context, product *Product) error
}

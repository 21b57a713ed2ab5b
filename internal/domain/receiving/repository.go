package receiving

import (
	"context"
	"time"

	"github.com/erp/receiving/internal/domain/shared"
)

// SlipFilter selects slips for listing. Filter.Search matches supplier or
// reference number case-insensitively; nil bounds mean "no constraint".
type SlipFilter struct {
	shared.Filter
	DateFrom *time.Time
	DateTo   *time.Time // inclusive
	Status   *SlipStatus
}

// ReceivingSlipRepository persists ReceivingSlip aggregates
type ReceivingSlipRepository interface {
	// FindByID loads the slip header without items
	FindByID(ctx context.Context, id int64) (*ReceivingSlip, error)
	// FindByIDWithItems loads the slip and its items ordered by item id
	FindByIDWithItems(ctx context.Context, id int64) (*ReceivingSlip, error)
	// FindByIDForUpdate is FindByIDWithItems holding a row lock on the slip
	// until the surrounding transaction ends
	FindByIDForUpdate(ctx context.Context, id int64) (*ReceivingSlip, error)
	// FindPage returns the requested page ordered by receipt date then id,
	// both descending, plus the total match count
	FindPage(ctx context.Context, filter SlipFilter) ([]ReceivingSlip, int64, error)
	ExistsByReferenceNo(ctx context.Context, referenceNo string) (bool, error)
	// Create inserts the slip with its items and assigns their ids
	Create(ctx context.Context, slip *ReceivingSlip) error
	// MarkConfirmed flips status from Draft to Confirmed only if it is still
	// Draft. It returns false when another writer got there first.
	MarkConfirmed(ctx context.Context, id int64, confirmedAt time.Time) (bool, error)
	// Delete removes the slip and its items
	Delete(ctx context.Context, id int64) error
	CountByStatus(ctx context.Context) (map[SlipStatus]int64, error)
}

// ReceivingSlipItemRepository persists line items individually
type ReceivingSlipItemRepository interface {
	FindByID(ctx context.Context, id int64) (*ReceivingSlipItem, error)
	// FindBySlipID returns items ordered by id ascending
	FindBySlipID(ctx context.Context, slipID int64) ([]ReceivingSlipItem, error)
	Create(ctx context.Context, item *ReceivingSlipItem) error
	Update(ctx context.Context, item *ReceivingSlipItem) error
	Delete(ctx context.Context, id int64) error
}

package receiving

import (
	"context"

	"github.com/erp/receiving/internal/domain/receiving"
)

// ConfirmLocker serializes confirm attempts for the same slip across
// processes. It is optional: the status compare-and-set inside the confirm
// transaction is what guarantees a single winner.
type ConfirmLocker interface {
	// Acquire returns shared.ErrConflict (or an error matching it) when
	// another caller holds the lock for slipID.
	Acquire(ctx context.Context, slipID int64) (release func(context.Context) error, err error)
}

// SlipExporter renders a slip with its items as a downloadable document
type SlipExporter interface {
	Export(ctx context.Context, slip *receiving.ReceivingSlip) (*ExportFile, error)
}

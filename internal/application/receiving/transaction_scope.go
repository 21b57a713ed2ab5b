package receiving

import (
	"context"

	"github.com/erp/receiving/internal/domain/catalog"
	"github.com/erp/receiving/internal/domain/receiving"
)

// TransactionScope provides transactional access to the repositories used by
// the receiving workflow. Everything done through the repos passed to fn is
// committed together, or rolled back together when fn returns an error.
type TransactionScope interface {
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories exposes repositories bound to one transaction.
//
// ProductRepo is the catalog's store; the receiving workflow only reads
// products and increments their stock through it.
type TransactionalRepositories interface {
	SlipRepo() receiving.ReceivingSlipRepository
	ItemRepo() receiving.ReceivingSlipItemRepository
	ProductRepo() catalog.ProductRepository
}

// NoOpTransactionScope runs fn against plain repositories without a
// transaction. Used by unit tests.
type NoOpTransactionScope struct {
	slipRepo    receiving.ReceivingSlipRepository
	itemRepo    receiving.ReceivingSlipItemRepository
	productRepo catalog.ProductRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
func NewNoOpTransactionScope(
	slipRepo receiving.ReceivingSlipRepository,
	itemRepo receiving.ReceivingSlipItemRepository,
	productRepo catalog.ProductRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		slipRepo:    slipRepo,
		itemRepo:    itemRepo,
		productRepo: productRepo,
	}
}

// Execute runs the function without a real transaction.
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

func (s *NoOpTransactionScope) SlipRepo() receiving.ReceivingSlipRepository { return s.slipRepo }

func (s *NoOpTransactionScope) ItemRepo() receiving.ReceivingSlipItemRepository { return s.itemRepo }

func (s *NoOpTransactionScope) ProductRepo() catalog.ProductRepository { return s.productRepo }

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)

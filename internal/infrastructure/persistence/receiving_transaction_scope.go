package persistence

import (
	"context"

	apprcv "github.com/erp/receiving/internal/application/receiving"
	"github.com/erp/receiving/internal/domain/catalog"
	"github.com/erp/receiving/internal/domain/receiving"
	"gorm.io/gorm"
)

// GormTransactionScope implements TransactionScope using GORM transactions.
type GormTransactionScope struct {
	db *gorm.DB
}

// NewGormTransactionScope creates a new GormTransactionScope.
func NewGormTransactionScope(db *gorm.DB) *GormTransactionScope {
	return &GormTransactionScope{db: db}
}

// Execute runs fn within a database transaction, rolling back when fn
// returns an error and committing otherwise.
func (s *GormTransactionScope) Execute(ctx context.Context, fn func(repos apprcv.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormTransactionalRepositories{tx: tx})
	})
}

type gormTransactionalRepositories struct {
	tx *gorm.DB
}

func (r *gormTransactionalRepositories) SlipRepo() receiving.ReceivingSlipRepository {
	return NewGormReceivingSlipRepository(r.tx)
}

func (r *gormTransactionalRepositories) ItemRepo() receiving.ReceivingSlipItemRepository {
	return NewGormReceivingSlipItemRepository(r.tx)
}

func (r *gormTransactionalRepositories) ProductRepo() catalog.ProductRepository {
	return NewGormProductRepository(r.tx)
}

var (
	_ apprcv.TransactionScope          = (*GormTransactionScope)(nil)
	_ apprcv.TransactionalRepositories = (*gormTransactionalRepositories)(nil)
)

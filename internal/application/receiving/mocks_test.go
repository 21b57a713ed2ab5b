package receiving

import (
	"context"
	"time"

	"github.com/erp/receiving/internal/domain/catalog"
	"github.com/erp/receiving/internal/domain/receiving"
	"github.com/erp/receiving/internal/domain/shared"
	"github.com/stretchr/testify/mock"
)

// MockSlipRepository is a mock implementation of ReceivingSlipRepository
type MockSlipRepository struct {
	mock.Mock
}

func (m *MockSlipRepository) FindByID(ctx context.Context, id int64) (*receiving.ReceivingSlip, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*receiving.ReceivingSlip), args.Error(1)
}

func (m *MockSlipRepository) FindByIDWithItems(ctx context.Context, id int64) (*receiving.ReceivingSlip, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*receiving.ReceivingSlip), args.Error(1)
}

func (m *MockSlipRepository) FindByIDForUpdate(ctx context.Context, id int64) (*receiving.ReceivingSlip, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*receiving.ReceivingSlip), args.Error(1)
}

func (m *MockSlipRepository) FindPage(ctx context.Context, filter receiving.SlipFilter) ([]receiving.ReceivingSlip, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]receiving.ReceivingSlip), args.Get(1).(int64), args.Error(2)
}

func (m *MockSlipRepository) ExistsByReferenceNo(ctx context.Context, referenceNo string) (bool, error) {
	args := m.Called(ctx, referenceNo)
	return args.Bool(0), args.Error(1)
}

func (m *MockSlipRepository) Create(ctx context.Context, slip *receiving.ReceivingSlip) error {
	args := m.Called(ctx, slip)
	return args.Error(0)
}

func (m *MockSlipRepository) MarkConfirmed(ctx context.Context, id int64, confirmedAt time.Time) (bool, error) {
	args := m.Called(ctx, id, confirmedAt)
	return args.Bool(0), args.Error(1)
}

func (m *MockSlipRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSlipRepository) CountByStatus(ctx context.Context) (map[receiving.SlipStatus]int64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[receiving.SlipStatus]int64), args.Error(1)
}

// MockItemRepository is a mock implementation of ReceivingSlipItemRepository
type MockItemRepository struct {
	mock.Mock
}

func (m *MockItemRepository) FindByID(ctx context.Context, id int64) (*receiving.ReceivingSlipItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*receiving.ReceivingSlipItem), args.Error(1)
}

func (m *MockItemRepository) FindBySlipID(ctx context.Context, slipID int64) ([]receiving.ReceivingSlipItem, error) {
	args := m.Called(ctx, slipID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]receiving.ReceivingSlipItem), args.Error(1)
}

func (m *MockItemRepository) Create(ctx context.Context, item *receiving.ReceivingSlipItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockItemRepository) Update(ctx context.Context, item *receiving.ReceivingSlipItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockItemRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockProductRepository is a mock implementation of catalog.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByID(ctx context.Context, id int64) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindByIDs(ctx context.Context, ids []int64) ([]catalog.Product, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) IncrementQuantity(ctx context.Context, id int64, delta int64) error {
	args := m.Called(ctx, id, delta)
	return args.Error(0)
}

func (m *MockProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

// MockEventPublisher records published events
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, events ...shared.DomainEvent) error {
	args := m.Called(ctx, events)
	return args.Error(0)
}

// MockConfirmLocker is a mock implementation of ConfirmLocker
type MockConfirmLocker struct {
	mock.Mock
	released int
}

func (m *MockConfirmLocker) Acquire(ctx context.Context, slipID int64) (func(context.Context) error, error) {
	args := m.Called(ctx, slipID)
	if err := args.Error(0); err != nil {
		return nil, err
	}
	return func(context.Context) error {
		m.released++
		return nil
	}, nil
}

// MockExporter is a mock implementation of SlipExporter
type MockExporter struct {
	mock.Mock
}

func (m *MockExporter) Export(ctx context.Context, slip *receiving.ReceivingSlip) (*ExportFile, error) {
	args := m.Called(ctx, slip)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ExportFile), args.Error(1)
}

var (
	_ receiving.ReceivingSlipRepository     = (*MockSlipRepository)(nil)
	_ receiving.ReceivingSlipItemRepository = (*MockItemRepository)(nil)
	_ catalog.ProductRepository             = (*MockProductRepository)(nil)
	_ ConfirmLocker                         = (*MockConfirmLocker)(nil)
	_ SlipExporter                          = (*MockExporter)(nil)
)

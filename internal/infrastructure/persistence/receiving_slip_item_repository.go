package persistence

import (
	"context"
	"errors"

	"github.com/erp/receiving/internal/domain/receiving"
	"github.com/erp/receiving/internal/domain/shared"
	"github.com/erp/receiving/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormReceivingSlipItemRepository implements ReceivingSlipItemRepository using GORM
type GormReceivingSlipItemRepository struct {
	db *gorm.DB
}

// NewGormReceivingSlipItemRepository creates a new GormReceivingSlipItemRepository
func NewGormReceivingSlipItemRepository(db *gorm.DB) *GormReceivingSlipItemRepository {
	return &GormReceivingSlipItemRepository{db: db}
}

// FindByID finds a line item by its ID
func (r *GormReceivingSlipItemRepository) FindByID(ctx context.Context, id int64) (*receiving.ReceivingSlipItem, error) {
	var model models.ReceivingSlipItemModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindBySlipID returns the items of a slip ordered by id
func (r *GormReceivingSlipItemRepository) FindBySlipID(ctx context.Context, slipID int64) ([]receiving.ReceivingSlipItem, error) {
	var rows []models.ReceivingSlipItemModel
	if err := r.db.WithContext(ctx).
		Where("slip_id = ?", slipID).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	items := make([]receiving.ReceivingSlipItem, len(rows))
	for i := range rows {
		items[i] = *rows[i].ToDomain()
	}
	return items, nil
}

// Create inserts the item and sets its generated id
func (r *GormReceivingSlipItemRepository) Create(ctx context.Context, item *receiving.ReceivingSlipItem) error {
	model := models.ReceivingSlipItemModelFromDomain(item)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}
	item.ID = model.ID
	return nil
}

// Update overwrites every mutable column, including a cleared product id
func (r *GormReceivingSlipItemRepository) Update(ctx context.Context, item *receiving.ReceivingSlipItem) error {
	model := models.ReceivingSlipItemModelFromDomain(item)
	result := r.db.WithContext(ctx).
		Model(&models.ReceivingSlipItemModel{}).
		Where("id = ?", item.ID).
		Select("product_id", "product_name", "unit", "quantity", "unit_price", "total", "updated_at").
		Updates(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete removes a line item
func (r *GormReceivingSlipItemRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.ReceivingSlipItemModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

var _ receiving.ReceivingSlipItemRepository = (*GormReceivingSlipItemRepository)(nil)

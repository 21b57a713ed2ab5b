package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/erp/receiving/internal/domain/receiving"
	"github.com/erp/receiving/internal/domain/shared"
	"github.com/erp/receiving/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormReceivingSlipRepository implements ReceivingSlipRepository using GORM
type GormReceivingSlipRepository struct {
	db *gorm.DB
}

// NewGormReceivingSlipRepository creates a new GormReceivingSlipRepository
func NewGormReceivingSlipRepository(db *gorm.DB) *GormReceivingSlipRepository {
	return &GormReceivingSlipRepository{db: db}
}

// FindByID finds a slip header by its ID
func (r *GormReceivingSlipRepository) FindByID(ctx context.Context, id int64) (*receiving.ReceivingSlip, error) {
	var model models.ReceivingSlipModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByIDWithItems finds a slip and its items ordered by item id
func (r *GormReceivingSlipRepository) FindByIDWithItems(ctx context.Context, id int64) (*receiving.ReceivingSlip, error) {
	var model models.ReceivingSlipModel
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		First(&model, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByIDForUpdate loads the slip with SELECT ... FOR UPDATE, then its items.
// It must run inside a transaction for the lock to be held.
func (r *GormReceivingSlipRepository) FindByIDForUpdate(ctx context.Context, id int64) (*receiving.ReceivingSlip, error) {
	query := r.db.WithContext(ctx)
	if supportsRowLocks(r.db) {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var model models.ReceivingSlipModel
	if err := query.First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	if err := r.db.WithContext(ctx).
		Where("slip_id = ?", id).
		Order("id ASC").
		Find(&model.Items).Error; err != nil {
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindPage returns one page of slip headers plus the total match count
func (r *GormReceivingSlipRepository) FindPage(ctx context.Context, filter receiving.SlipFilter) ([]receiving.ReceivingSlip, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).
		Model(&models.ReceivingSlipModel{}).
		Scopes(slipFilterScope(filter)).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.ReceivingSlipModel
	if total > 0 {
		orderBy := ValidateSortField(filter.OrderBy, SlipSortFields, "receipt_date")
		orderDir := ValidateSortOrder(filter.OrderDir)
		query := r.db.WithContext(ctx).
			Scopes(slipFilterScope(filter)).
			Order(fmt.Sprintf("%s %s", orderBy, orderDir))
		if orderBy != "id" {
			query = query.Order("id DESC")
		}
		if err := query.
			Offset(filter.Offset()).
			Limit(filter.PageSize).
			Find(&rows).Error; err != nil {
			return nil, 0, err
		}
	}

	slips := make([]receiving.ReceivingSlip, len(rows))
	for i := range rows {
		slips[i] = *rows[i].ToDomain()
	}
	return slips, total, nil
}

func slipFilterScope(filter receiving.SlipFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if search := strings.TrimSpace(filter.Search); search != "" {
			pattern := "%" + escapeLike(strings.ToLower(search)) + "%"
			db = db.Where(`LOWER(supplier) LIKE ? ESCAPE '\' OR LOWER(reference_no) LIKE ? ESCAPE '\'`, pattern, pattern)
		}
		if filter.DateFrom != nil {
			db = db.Where("receipt_date >= ?", *filter.DateFrom)
		}
		if filter.DateTo != nil {
			db = db.Where("receipt_date <= ?", *filter.DateTo)
		}
		if filter.Status != nil {
			db = db.Where("status = ?", string(*filter.Status))
		}
		return db
	}
}

// ExistsByReferenceNo checks whether a slip with the exact reference number exists
func (r *GormReceivingSlipRepository) ExistsByReferenceNo(ctx context.Context, referenceNo string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.ReceivingSlipModel{}).
		Where("reference_no = ?", referenceNo).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create inserts the slip and its items in one transaction and writes the
// generated ids back into the aggregate.
func (r *GormReceivingSlipRepository) Create(ctx context.Context, slip *receiving.ReceivingSlip) error {
	model := models.ReceivingSlipModelFromDomain(slip)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(model).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return shared.NewConflictError("reference number %s already exists", slip.ReferenceNo)
		}
		return err
	}

	slip.ID = model.ID
	for i := range slip.Items {
		slip.Items[i].ID = model.Items[i].ID
		slip.Items[i].SlipID = model.ID
	}
	return nil
}

// MarkConfirmed moves a Draft slip to Confirmed with a compare-and-set
// update. It reports false when the slip was no longer Draft.
func (r *GormReceivingSlipRepository) MarkConfirmed(ctx context.Context, id int64, confirmedAt time.Time) (bool, error) {
	confirmedAt = confirmedAt.UTC()
	result := r.db.WithContext(ctx).
		Model(&models.ReceivingSlipModel{}).
		Where("id = ? AND status = ?", id, string(receiving.SlipStatusDraft)).
		Updates(map[string]any{
			"status":       string(receiving.SlipStatusConfirmed),
			"confirmed_at": confirmedAt,
			"updated_at":   confirmedAt,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

// Delete removes the slip and its items
func (r *GormReceivingSlipRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("slip_id = ?", id).Delete(&models.ReceivingSlipItemModel{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.ReceivingSlipModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

type statusCount struct {
	Status string
	Count  int64
}

// CountByStatus returns the number of slips per status; every status is present
func (r *GormReceivingSlipRepository) CountByStatus(ctx context.Context) (map[receiving.SlipStatus]int64, error) {
	var rows []statusCount
	if err := r.db.WithContext(ctx).
		Model(&models.ReceivingSlipModel{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[receiving.SlipStatus]int64, len(receiving.AllSlipStatuses()))
	for _, status := range receiving.AllSlipStatuses() {
		counts[status] = 0
	}
	for _, row := range rows {
		counts[receiving.SlipStatus(row.Status)] = row.Count
	}
	return counts, nil
}

var _ receiving.ReceivingSlipRepository = (*GormReceivingSlipRepository)(nil)

package models

import (
	"time"

	"github.com/erp/receiving/internal/domain/receiving"
	"github.com/shopspring/decimal"
)

// ReceivingSlipModel is the persistence model for the ReceivingSlip aggregate root.
type ReceivingSlipModel struct {
	BaseModel
	Supplier    string                   `gorm:"type:varchar(200);not null;index"`
	ReferenceNo string                   `gorm:"type:varchar(50);not null;uniqueIndex:idx_receiving_slips_reference_no"`
	ReceiptDate time.Time                `gorm:"type:date;not null;index"`
	Note        string                   `gorm:"type:varchar(500);not null;default:''"`
	Status      string                   `gorm:"type:varchar(20);not null;default:'DRAFT';index"`
	ConfirmedAt *time.Time
	Items       []ReceivingSlipItemModel `gorm:"foreignKey:SlipID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (ReceivingSlipModel) TableName() string {
	return "receiving_slips"
}

// ToDomain converts the model, and any loaded items, to a domain slip.
func (m *ReceivingSlipModel) ToDomain() *receiving.ReceivingSlip {
	slip := &receiving.ReceivingSlip{
		ID:          m.ID,
		Supplier:    m.Supplier,
		ReferenceNo: m.ReferenceNo,
		ReceiptDate: receiving.NormalizeDate(m.ReceiptDate),
		Note:        m.Note,
		Status:      receiving.SlipStatus(m.Status),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		ConfirmedAt: m.ConfirmedAt,
		Items:       make([]receiving.ReceivingSlipItem, len(m.Items)),
	}
	for i := range m.Items {
		slip.Items[i] = *m.Items[i].ToDomain()
	}
	return slip
}

// ReceivingSlipModelFromDomain creates a persistence model, items included.
func ReceivingSlipModelFromDomain(s *receiving.ReceivingSlip) *ReceivingSlipModel {
	m := &ReceivingSlipModel{
		BaseModel:   BaseModel{ID: s.ID, CreatedAt: s.CreatedAt, UpdatedAt: s.UpdatedAt},
		Supplier:    s.Supplier,
		ReferenceNo: s.ReferenceNo,
		ReceiptDate: s.ReceiptDate,
		Note:        s.Note,
		Status:      string(s.Status),
		ConfirmedAt: s.ConfirmedAt,
		Items:       make([]ReceivingSlipItemModel, len(s.Items)),
	}
	for i := range s.Items {
		m.Items[i] = *ReceivingSlipItemModelFromDomain(&s.Items[i])
	}
	return m
}

// ReceivingSlipItemModel is the persistence model for a slip line item.
type ReceivingSlipItemModel struct {
	BaseModel
	SlipID      int64           `gorm:"not null;index"`
	ProductID   *int64          `gorm:"index"`
	ProductName string          `gorm:"type:varchar(200);not null"`
	Unit        string          `gorm:"type:varchar(50);not null"`
	Quantity    int64           `gorm:"not null"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Total       decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	// Product is never loaded; it only declares the restrict-delete constraint.
	Product *ProductModel `gorm:"foreignKey:ProductID;references:ID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for GORM
func (ReceivingSlipItemModel) TableName() string {
	return "receiving_slip_items"
}

// ToDomain converts the persistence model to a domain line item.
func (m *ReceivingSlipItemModel) ToDomain() *receiving.ReceivingSlipItem {
	return &receiving.ReceivingSlipItem{
		ID:          m.ID,
		SlipID:      m.SlipID,
		ProductID:   m.ProductID,
		ProductName: m.ProductName,
		Unit:        m.Unit,
		Quantity:    m.Quantity,
		UnitPrice:   m.UnitPrice,
		Total:       m.Total,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// ReceivingSlipItemModelFromDomain creates a persistence model from a line item.
func ReceivingSlipItemModelFromDomain(item *receiving.ReceivingSlipItem) *ReceivingSlipItemModel {
	return &ReceivingSlipItemModel{
		BaseModel:   BaseModel{ID: item.ID, CreatedAt: item.CreatedAt, UpdatedAt: item.UpdatedAt},
		SlipID:      item.SlipID,
		ProductID:   item.ProductID,
		ProductName: item.ProductName,
		Unit:        item.Unit,
		Quantity:    item.Quantity,
		UnitPrice:   item.UnitPrice,
		Total:       item.Total,
	}
}

// AllModels lists every model for AutoMigrate in tests and sqlite mode
func AllModels() []any {
	return []any{&ProductModel{}, &ReceivingSlipModel{}, &ReceivingSlipItemModel{}}
}

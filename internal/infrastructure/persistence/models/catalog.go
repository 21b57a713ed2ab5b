package models

import (
	"github.com/erp/receiving/internal/domain/catalog"
)

// ProductModel is the persistence model for the Product domain entity.
type ProductModel struct {
	BaseModel
	Code     string `gorm:"type:varchar(50);not null;uniqueIndex:idx_products_code"`
	Name     string `gorm:"type:varchar(200);not null"`
	Unit     string `gorm:"type:varchar(50);not null;default:'unit'"`
	Quantity int64  `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (ProductModel) TableName() string {
	return "products"
}

// ToDomain converts the persistence model to a domain Product entity.
func (m *ProductModel) ToDomain() *catalog.Product {
	return &catalog.Product{
		ID:        m.ID,
		Code:      m.Code,
		Name:      m.Name,
		Unit:      m.Unit,
		Quantity:  m.Quantity,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// ProductModelFromDomain creates a new persistence model from a domain Product entity.
func ProductModelFromDomain(p *catalog.Product) *ProductModel {
	return &ProductModel{
		BaseModel: BaseModel{ID: p.ID, CreatedAt: p.CreatedAt, UpdatedAt: p.UpdatedAt},
		Code:      p.Code,
		Name:      p.Name,
		Unit:      p.Unit,
		Quantity:  p.Quantity,
	}
}

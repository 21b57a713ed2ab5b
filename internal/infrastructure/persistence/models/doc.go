// Package models contains GORM-specific persistence models that map to database tables.
// These models are separate from domain entities to keep the domain layer pure and free
// from ORM concerns.
//
// Structure:
//   - base.go: shared id and timestamp columns
//   - catalog.go: ProductModel (products)
//   - receiving.go: ReceivingSlipModel, ReceivingSlipItemModel
package models

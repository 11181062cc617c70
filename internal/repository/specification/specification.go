package specification

import "gorm.io/gorm"

// Specification narrows, orders or locks a repository query. Specs compose by applying in order.
type Specification interface {
	Apply(db *gorm.DB) *gorm.DB
}

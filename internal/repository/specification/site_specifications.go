package specification

import "gorm.io/gorm"

type BySlug struct {
	Slug string
}

func (s BySlug) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("slug = ?", s.Slug)
}

type ByPageID struct {
	PageID int
}

func (s ByPageID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("page_id = ?", s.PageID)
}

type ByFeatureGroupID struct {
	FeatureGroupID int
}

func (s ByFeatureGroupID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("feature_group_id = ?", s.FeatureGroupID)
}

type ByHeaderConfigID struct {
	HeaderConfigID int
}

func (s ByHeaderConfigID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("header_config_id = ?", s.HeaderConfigID)
}

// Visible keeps rows whose is_visible flag is set.
type Visible struct{}

func (s Visible) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_visible = ?", true)
}

// Active keeps rows whose is_active flag is set.
type Active struct{}

func (s Active) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true)
}

// ReferencedBy counts rows pointing at a content block through the given column.
type ReferencedBy struct {
	Column string
	ID     int
}

func (s ReferencedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where(s.Column+" = ?", s.ID)
}

type ByEmailStatus struct {
	Status string
}

func (s ByEmailStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("email_status = ?", s.Status)
}

type ByFormName struct {
	FormName string
}

func (s ByFormName) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("form_name = ?", s.FormName)
}

package model

import "time"

// GlobalFeature columns keep their historical names (name, icon_url, is_active);
// the API names are applied by the mapper.
type GlobalFeature struct {
	Id          int       `gorm:"primaryKey;autoIncrement"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	IconUrl     string    `gorm:"column:icon_url;type:varchar(255)"`
	Category    string    `gorm:"type:varchar(50);not null;index"`
	SortOrder   int       `gorm:"not null"`
	IsActive    bool      `gorm:"not null"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`

	GroupItems []FeatureGroupItem `gorm:"foreignKey:FeatureId;constraint:OnDelete:CASCADE"`
}

func (GlobalFeature) TableName() string {
	return "global_features"
}

// FeatureGroup stores the public subheading in description. A NULL heading reads back as
// the name; renaming never touches a stored heading.
type FeatureGroup struct {
	Id          int       `gorm:"primaryKey;autoIncrement"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Heading     *string   `gorm:"type:varchar(255)"`
	Description *string   `gorm:"type:text"`
	LayoutType  string    `gorm:"type:varchar(50);not null"`
	IsActive    bool      `gorm:"not null"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`

	GroupItems      []FeatureGroupItem `gorm:"foreignKey:FeatureGroupId;constraint:OnDelete:CASCADE"`
	PageAssignments []PageFeatureGroup `gorm:"foreignKey:FeatureGroupId;constraint:OnDelete:CASCADE"`
}

func (FeatureGroup) TableName() string {
	return "feature_groups"
}

type FeatureGroupItem struct {
	Id             int       `gorm:"primaryKey;autoIncrement"`
	FeatureGroupId int       `gorm:"not null;uniqueIndex:idx_feature_group_items_pair"`
	FeatureId      int       `gorm:"not null;uniqueIndex:idx_feature_group_items_pair;index"`
	SortOrder      int       `gorm:"not null"`
	IsVisible      bool      `gorm:"not null"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`

	Feature *GlobalFeature `gorm:"foreignKey:FeatureId"`
}

func (FeatureGroupItem) TableName() string {
	return "feature_group_items"
}

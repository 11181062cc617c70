// GORM models for pages and their placements
package model

import "time"

type Page struct {
	Id           int       `gorm:"primaryKey;autoIncrement"`
	Slug         string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Title        string    `gorm:"type:varchar(255);not null"`
	MetaTitle    *string   `gorm:"type:varchar(255)"`
	MetaDesc     *string   `gorm:"type:text"`
	SortOrder    int       `gorm:"not null;index"`
	ShowInHeader bool      `gorm:"not null"`
	ShowInFooter bool      `gorm:"not null"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`

	Sections      []PageSection      `gorm:"foreignKey:PageId;constraint:OnDelete:CASCADE"`
	FeatureGroups []PageFeatureGroup `gorm:"foreignKey:PageId;constraint:OnDelete:CASCADE"`
	NavItems      []HeaderNavItem    `gorm:"foreignKey:PageId;constraint:OnDelete:CASCADE"`
}

func (Page) TableName() string {
	return "pages"
}

type PageFeatureGroup struct {
	Id             int       `gorm:"primaryKey;autoIncrement"`
	PageId         int       `gorm:"not null;uniqueIndex:idx_page_feature_groups_pair"`
	FeatureGroupId int       `gorm:"not null;uniqueIndex:idx_page_feature_groups_pair;index"`
	SortOrder      int       `gorm:"not null"`
	IsVisible      bool      `gorm:"not null"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`

	Page         *Page         `gorm:"foreignKey:PageId"`
	FeatureGroup *FeatureGroup `gorm:"foreignKey:FeatureGroupId"`
}

func (PageFeatureGroup) TableName() string {
	return "page_feature_groups"
}

// PageSection keeps one nullable column per content kind; SectionType says which one is set.
type PageSection struct {
	Id               int       `gorm:"primaryKey;autoIncrement"`
	PageId           int       `gorm:"not null;index"`
	SectionType      string    `gorm:"type:varchar(32);not null"`
	SortOrder        int       `gorm:"not null"`
	IsVisible        bool      `gorm:"not null"`
	Title            *string   `gorm:"type:varchar(255)"`
	Subtitle         *string   `gorm:"type:text"`
	Content          *string   `gorm:"type:text"`
	HeroSectionId    *int      `gorm:"index"`
	FeatureGroupId   *int      `gorm:"index"`
	MediaSectionId   *int      `gorm:"index"`
	PricingSectionId *int      `gorm:"index"`
	FaqSectionId     *int      `gorm:"index"`
	CreatedAt        time.Time `gorm:"autoCreateTime"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime"`

	HeroSection    *HeroSection    `gorm:"foreignKey:HeroSectionId;constraint:OnDelete:RESTRICT"`
	FeatureGroup   *FeatureGroup   `gorm:"foreignKey:FeatureGroupId;constraint:OnDelete:RESTRICT"`
	MediaSection   *MediaSection   `gorm:"foreignKey:MediaSectionId;constraint:OnDelete:RESTRICT"`
	PricingSection *PricingSection `gorm:"foreignKey:PricingSectionId;constraint:OnDelete:RESTRICT"`
	FaqSection     *FaqSection     `gorm:"foreignKey:FaqSectionId;constraint:OnDelete:RESTRICT"`
}

func (PageSection) TableName() string {
	return "page_sections"
}

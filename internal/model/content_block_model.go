package model

import (
	"time"

	"gorm.io/datatypes"
)

type CTA struct {
	Id        int       `gorm:"primaryKey;autoIncrement"`
	Text      string    `gorm:"type:varchar(255);not null"`
	Url       string    `gorm:"type:varchar(1024);not null"`
	Icon      *string   `gorm:"type:varchar(255)"`
	Style     string    `gorm:"type:varchar(32);not null"`
	Target    string    `gorm:"type:varchar(16);not null"`
	IsActive  bool      `gorm:"not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`

	HeaderLinks []HeaderCTA `gorm:"foreignKey:CtaId;constraint:OnDelete:CASCADE"`
}

func (CTA) TableName() string {
	return "cta_buttons"
}

type HeroSection struct {
	Id                  int       `gorm:"primaryKey;autoIncrement"`
	Name                string    `gorm:"type:varchar(255);not null"`
	LayoutType          string    `gorm:"type:varchar(50);not null"`
	Tagline             *string   `gorm:"type:varchar(255)"`
	Headline            string    `gorm:"type:text;not null"`
	Subheading          *string   `gorm:"type:text"`
	TaglineColor        *string   `gorm:"type:varchar(64)"`
	HeadlineColor       *string   `gorm:"type:varchar(64)"`
	SubheadingColor     *string   `gorm:"type:varchar(64)"`
	CtaPrimaryId        *int      `gorm:"index"`
	CtaSecondaryId      *int      `gorm:"index"`
	BackgroundType      string    `gorm:"type:varchar(32);not null"`
	BackgroundValue     *string   `gorm:"type:text"`
	MediaType           string    `gorm:"type:varchar(32);not null"`
	MediaUrl            *string   `gorm:"type:varchar(1024)"`
	MediaAlt            *string   `gorm:"type:varchar(255)"`
	PaddingTop          string    `gorm:"type:varchar(32)"`
	PaddingBottom       string    `gorm:"type:varchar(32)"`
	ContainerMaxWidth   string    `gorm:"type:varchar(32)"`
	ShowTypingEffect    bool      `gorm:"not null"`
	ShowBackgroundGrid  bool      `gorm:"not null"`
	ShowScrollIndicator bool      `gorm:"not null"`
	IsActive            bool      `gorm:"not null"`
	CreatedAt           time.Time `gorm:"autoCreateTime"`
	UpdatedAt           time.Time `gorm:"autoUpdateTime"`

	CtaPrimary   *CTA `gorm:"foreignKey:CtaPrimaryId;constraint:OnDelete:SET NULL"`
	CtaSecondary *CTA `gorm:"foreignKey:CtaSecondaryId;constraint:OnDelete:SET NULL"`
}

func (HeroSection) TableName() string {
	return "hero_sections"
}

type MediaSection struct {
	Id         int       `gorm:"primaryKey;autoIncrement"`
	Headline   string    `gorm:"type:text;not null"`
	Subheading *string   `gorm:"type:text"`
	MediaType  string    `gorm:"type:varchar(32);not null"`
	MediaUrl   string    `gorm:"type:varchar(1024);not null"`
	MediaAlt   *string   `gorm:"type:varchar(255)"`
	LayoutType string    `gorm:"type:varchar(50);not null"`
	BadgeText  *string   `gorm:"type:varchar(255)"`
	IsActive   bool      `gorm:"not null"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`

	Features []MediaSectionFeature `gorm:"foreignKey:MediaSectionId;constraint:OnDelete:CASCADE"`
}

func (MediaSection) TableName() string {
	return "media_sections"
}

type MediaSectionFeature struct {
	Id             int       `gorm:"primaryKey;autoIncrement"`
	MediaSectionId int       `gorm:"not null;index"`
	Icon           string    `gorm:"type:varchar(255);not null"`
	Label          string    `gorm:"type:varchar(255);not null"`
	Color          string    `gorm:"type:varchar(64)"`
	SortOrder      int       `gorm:"not null"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`
}

func (MediaSectionFeature) TableName() string {
	return "media_section_features"
}

type PricingSection struct {
	Id         int       `gorm:"primaryKey;autoIncrement"`
	Heading    string    `gorm:"type:varchar(255);not null"`
	Subheading *string   `gorm:"type:text"`
	IsActive   bool      `gorm:"not null"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`

	Plans []PricingPlan `gorm:"foreignKey:PricingSectionId;constraint:OnDelete:CASCADE"`
}

func (PricingSection) TableName() string {
	return "pricing_sections"
}

type PricingPlan struct {
	Id               int                         `gorm:"primaryKey;autoIncrement"`
	PricingSectionId int                         `gorm:"not null;index"`
	Name             string                      `gorm:"type:varchar(255);not null"`
	Description      *string                     `gorm:"type:text"`
	Price            string                      `gorm:"type:varchar(64);not null"`
	BillingPeriod    string                      `gorm:"type:varchar(32)"`
	Features         datatypes.JSONSlice[string] `gorm:"not null"`
	CtaText          string                      `gorm:"type:varchar(255)"`
	CtaUrl           string                      `gorm:"type:varchar(1024)"`
	IsPopular        bool                        `gorm:"not null"`
	SortOrder        int                         `gorm:"not null"`
	IsActive         bool                        `gorm:"not null"`
	CreatedAt        time.Time                   `gorm:"autoCreateTime"`
	UpdatedAt        time.Time                   `gorm:"autoUpdateTime"`
}

func (PricingPlan) TableName() string {
	return "pricing_plans"
}

package entity

import "time"

type FeatureCategory string

const (
	FeatureCategoryIntegration FeatureCategory = "integration"
	FeatureCategoryAi          FeatureCategory = "ai"
	FeatureCategoryAutomation  FeatureCategory = "automation"
	FeatureCategoryAnalytics   FeatureCategory = "analytics"
	FeatureCategorySecurity    FeatureCategory = "security"
	FeatureCategorySupport     FeatureCategory = "support"
)

// GlobalFeature is a reusable feature card. Field names are the API names;
// the persisted columns differ (see mapper).
type GlobalFeature struct {
	Id          int             `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	IconName    string          `json:"iconName"`
	Category    FeatureCategory `json:"category"`
	SortOrder   int             `json:"sortOrder"`
	IsVisible   bool            `json:"isVisible"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// FeatureGroup bundles an ordered list of features under one heading.
// Name is the internal label, Heading/Subheading are shown on the site.
type FeatureGroup struct {
	Id              int                 `json:"id"`
	Name            string              `json:"name"`
	Heading         string              `json:"heading"`
	Subheading      string              `json:"subheading"`
	LayoutType      string              `json:"layoutType"`
	IsActive        bool                `json:"isActive"`
	CreatedAt       time.Time           `json:"createdAt"`
	UpdatedAt       time.Time           `json:"updatedAt"`
	GroupItems      []*FeatureGroupItem `json:"groupItems"`
	PageAssignments []*PageFeatureGroup `json:"pageAssignments"`
	Count           *FeatureGroupCount  `json:"_count,omitempty"`
}

type FeatureGroupCount struct {
	GroupItems      int `json:"groupItems"`
	PageAssignments int `json:"pageAssignments"`
}

// FeatureGroupItem places a GlobalFeature inside a FeatureGroup.
type FeatureGroupItem struct {
	Id             int            `json:"id"`
	FeatureGroupId int            `json:"featureGroupId"`
	FeatureId      int            `json:"featureId"`
	SortOrder      int            `json:"sortOrder"`
	IsVisible      bool           `json:"isVisible"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
	Feature        *GlobalFeature `json:"feature,omitempty"`
}

// Renderable reports whether the item shows on the public site: the group-level flag
// can only hide a feature, never revive one that is hidden globally.
func (i *FeatureGroupItem) Renderable() bool {
	return i.IsVisible && i.Feature != nil && i.Feature.IsVisible
}

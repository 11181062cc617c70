package entity

import "time"

// Page is a routable, slugged page of the public site.
type Page struct {
	Id           int        `json:"id"`
	Slug         string     `json:"slug"`
	Title        string     `json:"title"`
	MetaTitle    *string    `json:"metaTitle"`
	MetaDesc     *string    `json:"metaDesc"`
	SortOrder    int        `json:"sortOrder"`
	ShowInHeader bool       `json:"showInHeader"`
	ShowInFooter bool       `json:"showInFooter"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
	Count        *PageCount `json:"_count,omitempty"`
}

// PageCount summarises what is placed on a page for the admin list view.
type PageCount struct {
	Sections        int `json:"sections"`
	HeroSections    int `json:"heroSections"`
	FeatureGroups   int `json:"featureGroups"`
	MediaSections   int `json:"mediaSections"`
	FeatureAssigned int `json:"pageFeatureGroups"`
}

// PageFeatureGroup is the legacy direct assignment of a feature group to a page.
type PageFeatureGroup struct {
	Id             int           `json:"id"`
	PageId         int           `json:"pageId"`
	FeatureGroupId int           `json:"featureGroupId"`
	SortOrder      int           `json:"sortOrder"`
	IsVisible      bool          `json:"isVisible"`
	CreatedAt      time.Time     `json:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt"`
	Page           *Page         `json:"page,omitempty"`
	FeatureGroup   *FeatureGroup `json:"featureGroup,omitempty"`
}

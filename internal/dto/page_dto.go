package dto

type CreatePageRequest struct {
	Slug         string  `json:"slug" validate:"required,max=255"`
	Title        string  `json:"title" validate:"required,max=255"`
	MetaTitle    *string `json:"metaTitle" validate:"omitempty,max=255"`
	MetaDesc     *string `json:"metaDesc"`
	SortOrder    *int    `json:"sortOrder" validate:"omitempty,gte=0"`
	ShowInHeader bool    `json:"showInHeader"`
	ShowInFooter bool    `json:"showInFooter"`
}

// UpdatePageRequest writes only the keys present in the body.
type UpdatePageRequest struct {
	Id           int     `json:"id"`
	Slug         *string `json:"slug" validate:"omitempty,min=1,max=255"`
	Title        *string `json:"title" validate:"omitempty,min=1,max=255"`
	MetaTitle    *string `json:"metaTitle" validate:"omitempty,max=255"`
	MetaDesc     *string `json:"metaDesc"`
	SortOrder    *int    `json:"sortOrder" validate:"omitempty,gte=0"`
	ShowInHeader *bool   `json:"showInHeader"`
	ShowInFooter *bool   `json:"showInFooter"`
}

type CreatePageFeatureGroupRequest struct {
	PageId         int   `json:"pageId" validate:"required,gt=0"`
	FeatureGroupId int   `json:"featureGroupId" validate:"required,gt=0"`
	SortOrder      *int  `json:"sortOrder" validate:"omitempty,gte=0"`
	IsVisible      *bool `json:"isVisible"`
}

type UpdatePageFeatureGroupRequest struct {
	Id        int   `json:"id"`
	SortOrder *int  `json:"sortOrder" validate:"omitempty,gte=0"`
	IsVisible *bool `json:"isVisible"`
}

// PageFeatureGroupResponse is an assignment with the group in the shape the site components render.
type PageFeatureGroupResponse struct {
	Id             int                   `json:"id"`
	PageId         int                   `json:"pageId"`
	FeatureGroupId int                   `json:"featureGroupId"`
	SortOrder      int                   `json:"sortOrder"`
	IsVisible      bool                  `json:"isVisible"`
	FeatureGroup   *RenderedFeatureGroup `json:"featureGroup"`
}

type RenderedFeatureGroup struct {
	Id         int                    `json:"id"`
	Name       string                 `json:"name"`
	Heading    string                 `json:"heading"`
	Subheading string                 `json:"subheading"`
	LayoutType string                 `json:"layoutType"`
	IsActive   bool                   `json:"isActive"`
	Items      []*RenderedFeatureItem `json:"items"`
}

type RenderedFeatureItem struct {
	Id          int    `json:"id"`
	FeatureId   int    `json:"featureId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	IconName    string `json:"iconName"`
	Category    string `json:"category"`
	SortOrder   int    `json:"sortOrder"`
}

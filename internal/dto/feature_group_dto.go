package dto

type CreateFeatureGroupRequest struct {
	Name       string `json:"name" validate:"required,max=255"`
	Heading    string `json:"heading" validate:"max=255"`
	Subheading string `json:"subheading"`
	LayoutType string `json:"layoutType" validate:"omitempty,max=50"`
	IsActive   *bool  `json:"isActive"`
}

type UpdateFeatureGroupRequest struct {
	Id         int     `json:"id"`
	Name       *string `json:"name" validate:"omitempty,min=1,max=255"`
	Heading    *string `json:"heading" validate:"omitempty,max=255"`
	Subheading *string `json:"subheading"`
	LayoutType *string `json:"layoutType" validate:"omitempty,max=50"`
	IsActive   *bool   `json:"isActive"`
}

type CreateFeatureGroupItemRequest struct {
	FeatureGroupId int   `json:"featureGroupId" validate:"required,gt=0"`
	FeatureId      int   `json:"featureId" validate:"required,gt=0"`
	SortOrder      *int  `json:"sortOrder" validate:"omitempty,gte=0"`
	IsVisible      *bool `json:"isVisible"`
}

// UpdateFeatureGroupItemRequest only moves or hides an item; membership itself is fixed.
type UpdateFeatureGroupItemRequest struct {
	Id        int   `json:"id"`
	SortOrder *int  `json:"sortOrder" validate:"omitempty,gte=0"`
	IsVisible *bool `json:"isVisible"`
}

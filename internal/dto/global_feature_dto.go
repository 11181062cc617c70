package dto

type CreateGlobalFeatureRequest struct {
	Title       string `json:"title" validate:"required,max=255"`
	Description string `json:"description"`
	IconName    string `json:"iconName" validate:"required,icon"`
	Category    string `json:"category" validate:"required,oneof=integration ai automation analytics security support"`
	SortOrder   *int   `json:"sortOrder" validate:"omitempty,gte=0"`
	IsVisible   *bool  `json:"isVisible"`
}

type UpdateGlobalFeatureRequest struct {
	Id          int     `json:"id"`
	Title       *string `json:"title" validate:"omitempty,min=1,max=255"`
	Description *string `json:"description"`
	IconName    *string `json:"iconName" validate:"omitempty,icon"`
	Category    *string `json:"category" validate:"omitempty,oneof=integration ai automation analytics security support"`
	SortOrder   *int    `json:"sortOrder" validate:"omitempty,gte=0"`
	IsVisible   *bool   `json:"isVisible"`
}

package dto

type HeaderNavItemInput struct {
	PageId     *int    `json:"pageId" validate:"omitempty,gt=0"`
	CustomText *string `json:"customText" validate:"required_without=PageId"`
	CustomUrl  *string `json:"customUrl" validate:"required_without=PageId"`
	SortOrder  *int    `json:"sortOrder" validate:"omitempty,gte=0"`
	IsVisible  *bool   `json:"isVisible"`
}

type HeaderCTAInput struct {
	CtaId     int   `json:"ctaId" validate:"required,gt=0"`
	SortOrder *int  `json:"sortOrder" validate:"omitempty,gte=0"`
	IsVisible *bool `json:"isVisible"`
}

type HeaderMenuInput struct {
	MenuId    int  `json:"menuId" validate:"required,gt=0"`
	SortOrder *int `json:"sortOrder" validate:"omitempty,gte=0"`
}

// HeaderConfigRequest replaces the active header configuration and all of its children.
type HeaderConfigRequest struct {
	Id              int                   `json:"id"`
	BackgroundColor string                `json:"backgroundColor" validate:"omitempty,max=64"`
	TextColor       string                `json:"textColor" validate:"omitempty,max=64"`
	HoverColor      string                `json:"hoverColor" validate:"omitempty,max=64"`
	ActiveColor     string                `json:"activeColor" validate:"omitempty,max=64"`
	LogoUrl         *string               `json:"logoUrl" validate:"omitempty,max=1024"`
	IsSticky        bool                  `json:"isSticky"`
	NavItems        []*HeaderNavItemInput `json:"navItems" validate:"omitempty,dive"`
	HeaderCTAs      []*HeaderCTAInput     `json:"headerCTAs" validate:"omitempty,dive"`
	Menus           []*HeaderMenuInput    `json:"menus" validate:"omitempty,dive"`
}

type AddHeaderCTARequest struct {
	CtaId     int   `json:"ctaId" validate:"required,gt=0"`
	SortOrder *int  `json:"sortOrder" validate:"omitempty,gte=0"`
	IsVisible *bool `json:"isVisible"`
}

// HeaderCTAActionRequest is the PUT body {action: removeCta|toggleCtaVisibility, headerCtaId}.
// id is accepted in place of headerCtaId.
type HeaderCTAActionRequest struct {
	Action      string `json:"action" validate:"required,oneof=removeCta toggleCtaVisibility"`
	HeaderCtaId int    `json:"headerCtaId" validate:"omitempty,gt=0"`
	Id          int    `json:"id" validate:"omitempty,gt=0"`
	IsVisible   *bool  `json:"isVisible"`
}

// TargetId is the header CTA link the action applies to.
func (r *HeaderCTAActionRequest) TargetId() int {
	if r.HeaderCtaId > 0 {
		return r.HeaderCtaId
	}
	return r.Id
}

// ToggleHeaderCTARequest sets visibility explicitly; an empty body flips it.
type ToggleHeaderCTARequest struct {
	IsVisible *bool `json:"isVisible"`
}

type MenuItemInput struct {
	Label     string           `json:"label" validate:"required,max=255"`
	Url       string           `json:"url" validate:"required,max=1024"`
	Target    string           `json:"target" validate:"omitempty,oneof=_self _blank"`
	Icon      *string          `json:"icon" validate:"omitempty,icon"`
	SortOrder *int             `json:"sortOrder" validate:"omitempty,gte=0"`
	IsVisible *bool            `json:"isVisible"`
	Children  []*MenuItemInput `json:"children" validate:"omitempty,dive"`
}

// MenuRequest replaces the item tree when items is present.
type MenuRequest struct {
	Id       int               `json:"id"`
	Name     *string           `json:"name" validate:"omitempty,min=1,max=255"`
	IsActive *bool             `json:"isActive"`
	Items    *[]*MenuItemInput `json:"items"`
}

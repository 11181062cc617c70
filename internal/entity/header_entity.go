package entity

import "time"

// HeaderConfig styles the site header and lists its navigation. One row is active at a time.
type HeaderConfig struct {
	Id              int                 `json:"id"`
	IsActive        bool                `json:"isActive"`
	BackgroundColor string              `json:"backgroundColor"`
	TextColor       string              `json:"textColor"`
	HoverColor      string              `json:"hoverColor"`
	ActiveColor     string              `json:"activeColor"`
	LogoUrl         *string             `json:"logoUrl"`
	IsSticky        bool                `json:"isSticky"`
	CreatedAt       time.Time           `json:"createdAt"`
	UpdatedAt       time.Time           `json:"updatedAt"`
	NavItems        []*HeaderNavItem    `json:"navItems"`
	HeaderCTAs      []*HeaderCTA        `json:"headerCTAs"`
	Menus           []*HeaderConfigMenu `json:"menus"`
}

// HeaderNavItem links either to a CMS page or to a free-text custom URL.
type HeaderNavItem struct {
	Id             int       `json:"id"`
	HeaderConfigId int       `json:"headerConfigId"`
	PageId         *int      `json:"pageId"`
	CustomText     *string   `json:"customText"`
	CustomUrl      *string   `json:"customUrl"`
	SortOrder      int       `json:"sortOrder"`
	IsVisible      bool      `json:"isVisible"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
	Page           *Page     `json:"page,omitempty"`
}

// Label is the text shown in the nav bar.
func (n *HeaderNavItem) Label() string {
	if n.CustomText != nil && *n.CustomText != "" {
		return *n.CustomText
	}
	if n.Page != nil {
		return n.Page.Title
	}
	return ""
}

// Href is where the nav item points.
func (n *HeaderNavItem) Href() string {
	if n.CustomUrl != nil && *n.CustomUrl != "" {
		return *n.CustomUrl
	}
	if n.Page != nil {
		if n.Page.Slug == "home" {
			return "/"
		}
		return "/" + n.Page.Slug
	}
	return "#"
}

type HeaderCTA struct {
	Id             int       `json:"id"`
	HeaderConfigId int       `json:"headerConfigId"`
	CtaId          int       `json:"ctaId"`
	SortOrder      int       `json:"sortOrder"`
	IsVisible      bool      `json:"isVisible"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
	Cta            *CTA      `json:"cta,omitempty"`
}

type HeaderConfigMenu struct {
	Id             int       `json:"id"`
	HeaderConfigId int       `json:"headerConfigId"`
	MenuId         int       `json:"menuId"`
	SortOrder      int       `json:"sortOrder"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
	Menu           *Menu     `json:"menu,omitempty"`
}

// Menu is a named dropdown. Items nest one level deep.
type Menu struct {
	Id        int         `json:"id"`
	Name      string      `json:"name"`
	IsActive  bool        `json:"isActive"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
	Items     []*MenuItem `json:"items"`
}

type MenuItem struct {
	Id        int         `json:"id"`
	MenuId    int         `json:"menuId"`
	ParentId  *int        `json:"parentId"`
	Label     string      `json:"label"`
	Url       string      `json:"url"`
	Target    string      `json:"target"`
	Icon      *string     `json:"icon"`
	SortOrder int         `json:"sortOrder"`
	IsVisible bool        `json:"isVisible"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
	Children  []*MenuItem `json:"children,omitempty"`
}

// NestMenuItems arranges a flat, ordered item list into top-level items with children.
// Items whose parent is missing are promoted to the top level.
func NestMenuItems(flat []*MenuItem) []*MenuItem {
	byId := make(map[int]*MenuItem, len(flat))
	for _, it := range flat {
		it.Children = nil
		byId[it.Id] = it
	}
	roots := make([]*MenuItem, 0, len(flat))
	for _, it := range flat {
		if it.ParentId != nil {
			if parent, ok := byId[*it.ParentId]; ok && parent.ParentId == nil {
				parent.Children = append(parent.Children, it)
				continue
			}
		}
		roots = append(roots, it)
	}
	return roots
}

package mapper

import (
	"sitebuilder-be/internal/entity"
	"sitebuilder-be/internal/model"
)

type HeaderConfigMapper struct {
	pages *PageMapper
	ctas  *CTAMapper
	menus *MenuMapper
}

func NewHeaderConfigMapper() *HeaderConfigMapper {
	return &HeaderConfigMapper{pages: NewPageMapper(), ctas: NewCTAMapper(), menus: NewMenuMapper()}
}

func (m *HeaderConfigMapper) ToEntity(h *model.HeaderConfig) *entity.HeaderConfig {
	if h == nil {
		return nil
	}
	return &entity.HeaderConfig{
		Id:              h.Id,
		IsActive:        h.IsActive,
		BackgroundColor: h.BackgroundColor,
		TextColor:       h.TextColor,
		HoverColor:      h.HoverColor,
		ActiveColor:     h.ActiveColor,
		LogoUrl:         h.LogoUrl,
		IsSticky:        h.IsSticky,
		CreatedAt:       h.CreatedAt,
		UpdatedAt:       h.UpdatedAt,
		NavItems:        mapSlice(h.NavItems, m.NavItemToEntity),
		HeaderCTAs:      mapSlice(h.HeaderCTAs, m.HeaderCTAToEntity),
		Menus:           mapSlice(h.Menus, m.MenuLinkToEntity),
	}
}

// ToModel includes the child rows so that a create writes the whole header at once.
func (m *HeaderConfigMapper) ToModel(h *entity.HeaderConfig) *model.HeaderConfig {
	if h == nil {
		return nil
	}
	return &model.HeaderConfig{
		Id:              h.Id,
		IsActive:        h.IsActive,
		BackgroundColor: h.BackgroundColor,
		TextColor:       h.TextColor,
		HoverColor:      h.HoverColor,
		ActiveColor:     h.ActiveColor,
		LogoUrl:         h.LogoUrl,
		IsSticky:        h.IsSticky,
		CreatedAt:       h.CreatedAt,
		UpdatedAt:       h.UpdatedAt,
		NavItems:        unmapSlice(h.NavItems, m.NavItemToModel),
		HeaderCTAs:      unmapSlice(h.HeaderCTAs, m.HeaderCTAToModel),
		Menus:           unmapSlice(h.Menus, m.MenuLinkToModel),
	}
}

func (m *HeaderConfigMapper) NavItemToEntity(n *model.HeaderNavItem) *entity.HeaderNavItem {
	if n == nil {
		return nil
	}
	return &entity.HeaderNavItem{
		Id:             n.Id,
		HeaderConfigId: n.HeaderConfigId,
		PageId:         n.PageId,
		CustomText:     n.CustomText,
		CustomUrl:      n.CustomUrl,
		SortOrder:      n.SortOrder,
		IsVisible:      n.IsVisible,
		CreatedAt:      n.CreatedAt,
		UpdatedAt:      n.UpdatedAt,
		Page:           m.pages.ToEntity(n.Page),
	}
}

func (m *HeaderConfigMapper) NavItemToModel(n *entity.HeaderNavItem) *model.HeaderNavItem {
	if n == nil {
		return nil
	}
	return &model.HeaderNavItem{
		Id:             n.Id,
		HeaderConfigId: n.HeaderConfigId,
		PageId:         n.PageId,
		CustomText:     n.CustomText,
		CustomUrl:      n.CustomUrl,
		SortOrder:      n.SortOrder,
		IsVisible:      n.IsVisible,
		CreatedAt:      n.CreatedAt,
		UpdatedAt:      n.UpdatedAt,
	}
}

func (m *HeaderConfigMapper) HeaderCTAToEntity(c *model.HeaderCTA) *entity.HeaderCTA {
	if c == nil {
		return nil
	}
	return &entity.HeaderCTA{
		Id:             c.Id,
		HeaderConfigId: c.HeaderConfigId,
		CtaId:          c.CtaId,
		SortOrder:      c.SortOrder,
		IsVisible:      c.IsVisible,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
		Cta:            m.ctas.ToEntity(c.Cta),
	}
}

func (m *HeaderConfigMapper) HeaderCTAToModel(c *entity.HeaderCTA) *model.HeaderCTA {
	if c == nil {
		return nil
	}
	return &model.HeaderCTA{
		Id:             c.Id,
		HeaderConfigId: c.HeaderConfigId,
		CtaId:          c.CtaId,
		SortOrder:      c.SortOrder,
		IsVisible:      c.IsVisible,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

func (m *HeaderConfigMapper) MenuLinkToEntity(l *model.HeaderConfigMenu) *entity.HeaderConfigMenu {
	if l == nil {
		return nil
	}
	return &entity.HeaderConfigMenu{
		Id:             l.Id,
		HeaderConfigId: l.HeaderConfigId,
		MenuId:         l.MenuId,
		SortOrder:      l.SortOrder,
		CreatedAt:      l.CreatedAt,
		UpdatedAt:      l.UpdatedAt,
		Menu:           m.menus.ToEntity(l.Menu),
	}
}

func (m *HeaderConfigMapper) MenuLinkToModel(l *entity.HeaderConfigMenu) *model.HeaderConfigMenu {
	if l == nil {
		return nil
	}
	return &model.HeaderConfigMenu{
		Id:             l.Id,
		HeaderConfigId: l.HeaderConfigId,
		MenuId:         l.MenuId,
		SortOrder:      l.SortOrder,
		CreatedAt:      l.CreatedAt,
		UpdatedAt:      l.UpdatedAt,
	}
}

// HeaderCTAMapper adapts the join row mapping to the repository mapper shape.
type HeaderCTAMapper struct {
	header *HeaderConfigMapper
}

func NewHeaderCTAMapper() *HeaderCTAMapper {
	return &HeaderCTAMapper{header: NewHeaderConfigMapper()}
}

func (m *HeaderCTAMapper) ToEntity(c *model.HeaderCTA) *entity.HeaderCTA {
	return m.header.HeaderCTAToEntity(c)
}

func (m *HeaderCTAMapper) ToModel(c *entity.HeaderCTA) *model.HeaderCTA {
	return m.header.HeaderCTAToModel(c)
}

// MenuMapper returns items nested one level deep.
type MenuMapper struct {
	items *MenuItemMapper
}

func NewMenuMapper() *MenuMapper {
	return &MenuMapper{items: NewMenuItemMapper()}
}

func (m *MenuMapper) ToEntity(menu *model.Menu) *entity.Menu {
	if menu == nil {
		return nil
	}
	return &entity.Menu{
		Id:        menu.Id,
		Name:      menu.Name,
		IsActive:  menu.IsActive,
		CreatedAt: menu.CreatedAt,
		UpdatedAt: menu.UpdatedAt,
		Items:     entity.NestMenuItems(mapSlice(menu.Items, m.items.ToEntity)),
	}
}

// ToModel leaves items out; they need their parent ids first and are written by the menu service.
func (m *MenuMapper) ToModel(menu *entity.Menu) *model.Menu {
	if menu == nil {
		return nil
	}
	return &model.Menu{
		Id:        menu.Id,
		Name:      menu.Name,
		IsActive:  menu.IsActive,
		CreatedAt: menu.CreatedAt,
		UpdatedAt: menu.UpdatedAt,
	}
}

type MenuItemMapper struct{}

func NewMenuItemMapper() *MenuItemMapper {
	return &MenuItemMapper{}
}

func (m *MenuItemMapper) ToEntity(i *model.MenuItem) *entity.MenuItem {
	if i == nil {
		return nil
	}
	return &entity.MenuItem{
		Id:        i.Id,
		MenuId:    i.MenuId,
		ParentId:  i.ParentId,
		Label:     i.Label,
		Url:       i.Url,
		Target:    i.Target,
		Icon:      i.Icon,
		SortOrder: i.SortOrder,
		IsVisible: i.IsVisible,
		CreatedAt: i.CreatedAt,
		UpdatedAt: i.UpdatedAt,
	}
}

func (m *MenuItemMapper) ToModel(i *entity.MenuItem) *model.MenuItem {
	if i == nil {
		return nil
	}
	return &model.MenuItem{
		Id:        i.Id,
		MenuId:    i.MenuId,
		ParentId:  i.ParentId,
		Label:     i.Label,
		Url:       i.Url,
		Target:    i.Target,
		Icon:      i.Icon,
		SortOrder: i.SortOrder,
		IsVisible: i.IsVisible,
		CreatedAt: i.CreatedAt,
		UpdatedAt: i.UpdatedAt,
	}
}

type HeaderNavItemMapper struct {
	header *HeaderConfigMapper
}

func NewHeaderNavItemMapper() *HeaderNavItemMapper {
	return &HeaderNavItemMapper{header: NewHeaderConfigMapper()}
}

func (m *HeaderNavItemMapper) ToEntity(n *model.HeaderNavItem) *entity.HeaderNavItem {
	return m.header.NavItemToEntity(n)
}

func (m *HeaderNavItemMapper) ToModel(n *entity.HeaderNavItem) *model.HeaderNavItem {
	return m.header.NavItemToModel(n)
}

type HeaderConfigMenuMapper struct {
	header *HeaderConfigMapper
}

func NewHeaderConfigMenuMapper() *HeaderConfigMenuMapper {
	return &HeaderConfigMenuMapper{header: NewHeaderConfigMapper()}
}

func (m *HeaderConfigMenuMapper) ToEntity(l *model.HeaderConfigMenu) *entity.HeaderConfigMenu {
	return m.header.MenuLinkToEntity(l)
}

func (m *HeaderConfigMenuMapper) ToModel(l *entity.HeaderConfigMenu) *model.HeaderConfigMenu {
	return m.header.MenuLinkToModel(l)
}

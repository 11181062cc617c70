// Field translation between the feature API and its table. This is the only place
// that knows title is stored as name, iconName as icon_url and isVisible as is_active.
package mapper

import (
	"sitebuilder-be/internal/entity"
	"sitebuilder-be/internal/model"
)

type GlobalFeatureMapper struct{}

func NewGlobalFeatureMapper() *GlobalFeatureMapper {
	return &GlobalFeatureMapper{}
}

func (m *GlobalFeatureMapper) ToEntity(f *model.GlobalFeature) *entity.GlobalFeature {
	if f == nil {
		return nil
	}
	return &entity.GlobalFeature{
		Id:          f.Id,
		Title:       f.Name,
		Description: f.Description,
		IconName:    f.IconUrl,
		Category:    entity.FeatureCategory(f.Category),
		SortOrder:   f.SortOrder,
		IsVisible:   f.IsActive,
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   f.UpdatedAt,
	}
}

func (m *GlobalFeatureMapper) ToModel(f *entity.GlobalFeature) *model.GlobalFeature {
	if f == nil {
		return nil
	}
	return &model.GlobalFeature{
		Id:          f.Id,
		Name:        f.Title,
		Description: f.Description,
		IconUrl:     f.IconName,
		Category:    string(f.Category),
		SortOrder:   f.SortOrder,
		IsActive:    f.IsVisible,
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   f.UpdatedAt,
	}
}

// FeatureGroupMapper maps subheading to the description column; an unset heading reads as the name.
type FeatureGroupMapper struct {
	features *GlobalFeatureMapper
	pages    *PageMapper
}

func NewFeatureGroupMapper() *FeatureGroupMapper {
	return &FeatureGroupMapper{features: NewGlobalFeatureMapper(), pages: NewPageMapper()}
}

func (m *FeatureGroupMapper) ToEntity(g *model.FeatureGroup) *entity.FeatureGroup {
	if g == nil {
		return nil
	}
	heading := deref(g.Heading)
	if heading == "" {
		heading = g.Name
	}

	items := make([]*entity.FeatureGroupItem, 0, len(g.GroupItems))
	for i := range g.GroupItems {
		items = append(items, m.item(&g.GroupItems[i]))
	}

	assignments := make([]*entity.PageFeatureGroup, 0, len(g.PageAssignments))
	for i := range g.PageAssignments {
		a := g.PageAssignments[i]
		assignments = append(assignments, &entity.PageFeatureGroup{
			Id:             a.Id,
			PageId:         a.PageId,
			FeatureGroupId: a.FeatureGroupId,
			SortOrder:      a.SortOrder,
			IsVisible:      a.IsVisible,
			CreatedAt:      a.CreatedAt,
			UpdatedAt:      a.UpdatedAt,
			Page:           m.pages.ToEntity(a.Page),
		})
	}

	return &entity.FeatureGroup{
		Id:              g.Id,
		Name:            g.Name,
		Heading:         heading,
		Subheading:      deref(g.Description),
		LayoutType:      g.LayoutType,
		IsActive:        g.IsActive,
		CreatedAt:       g.CreatedAt,
		UpdatedAt:       g.UpdatedAt,
		GroupItems:      items,
		PageAssignments: assignments,
	}
}

func (m *FeatureGroupMapper) ToModel(g *entity.FeatureGroup) *model.FeatureGroup {
	if g == nil {
		return nil
	}
	return &model.FeatureGroup{
		Id:          g.Id,
		Name:        g.Name,
		Heading:     nilIfEmpty(g.Heading),
		Description: nilIfEmpty(g.Subheading),
		LayoutType:  g.LayoutType,
		IsActive:    g.IsActive,
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
	}
}

func (m *FeatureGroupMapper) item(i *model.FeatureGroupItem) *entity.FeatureGroupItem {
	return &entity.FeatureGroupItem{
		Id:             i.Id,
		FeatureGroupId: i.FeatureGroupId,
		FeatureId:      i.FeatureId,
		SortOrder:      i.SortOrder,
		IsVisible:      i.IsVisible,
		CreatedAt:      i.CreatedAt,
		UpdatedAt:      i.UpdatedAt,
		Feature:        m.features.ToEntity(i.Feature),
	}
}

type FeatureGroupItemMapper struct {
	groups *FeatureGroupMapper
}

func NewFeatureGroupItemMapper() *FeatureGroupItemMapper {
	return &FeatureGroupItemMapper{groups: NewFeatureGroupMapper()}
}

func (m *FeatureGroupItemMapper) ToEntity(i *model.FeatureGroupItem) *entity.FeatureGroupItem {
	if i == nil {
		return nil
	}
	return m.groups.item(i)
}

func (m *FeatureGroupItemMapper) ToModel(i *entity.FeatureGroupItem) *model.FeatureGroupItem {
	if i == nil {
		return nil
	}
	return &model.FeatureGroupItem{
		Id:             i.Id,
		FeatureGroupId: i.FeatureGroupId,
		FeatureId:      i.FeatureId,
		SortOrder:      i.SortOrder,
		IsVisible:      i.IsVisible,
		CreatedAt:      i.CreatedAt,
		UpdatedAt:      i.UpdatedAt,
	}
}

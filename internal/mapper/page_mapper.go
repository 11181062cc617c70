package mapper

import (
	"sitebuilder-be/internal/entity"
	"sitebuilder-be/internal/model"
)

type PageMapper struct{}

func NewPageMapper() *PageMapper {
	return &PageMapper{}
}

func (m *PageMapper) ToEntity(p *model.Page) *entity.Page {
	if p == nil {
		return nil
	}
	return &entity.Page{
		Id:           p.Id,
		Slug:         p.Slug,
		Title:        p.Title,
		MetaTitle:    p.MetaTitle,
		MetaDesc:     p.MetaDesc,
		SortOrder:    p.SortOrder,
		ShowInHeader: p.ShowInHeader,
		ShowInFooter: p.ShowInFooter,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func (m *PageMapper) ToModel(p *entity.Page) *model.Page {
	if p == nil {
		return nil
	}
	return &model.Page{
		Id:           p.Id,
		Slug:         p.Slug,
		Title:        p.Title,
		MetaTitle:    p.MetaTitle,
		MetaDesc:     p.MetaDesc,
		SortOrder:    p.SortOrder,
		ShowInHeader: p.ShowInHeader,
		ShowInFooter: p.ShowInFooter,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

type PageFeatureGroupMapper struct {
	pages  *PageMapper
	groups *FeatureGroupMapper
}

func NewPageFeatureGroupMapper() *PageFeatureGroupMapper {
	return &PageFeatureGroupMapper{pages: NewPageMapper(), groups: NewFeatureGroupMapper()}
}

func (m *PageFeatureGroupMapper) ToEntity(a *model.PageFeatureGroup) *entity.PageFeatureGroup {
	if a == nil {
		return nil
	}
	return &entity.PageFeatureGroup{
		Id:             a.Id,
		PageId:         a.PageId,
		FeatureGroupId: a.FeatureGroupId,
		SortOrder:      a.SortOrder,
		IsVisible:      a.IsVisible,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
		Page:           m.pages.ToEntity(a.Page),
		FeatureGroup:   m.groups.ToEntity(a.FeatureGroup),
	}
}

func (m *PageFeatureGroupMapper) ToModel(a *entity.PageFeatureGroup) *model.PageFeatureGroup {
	if a == nil {
		return nil
	}
	return &model.PageFeatureGroup{
		Id:             a.Id,
		PageId:         a.PageId,
		FeatureGroupId: a.FeatureGroupId,
		SortOrder:      a.SortOrder,
		IsVisible:      a.IsVisible,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}

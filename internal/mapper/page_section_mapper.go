package mapper

import (
	"sitebuilder-be/internal/entity"
	"sitebuilder-be/internal/model"
)

type PageSectionMapper struct {
	heroes  *HeroSectionMapper
	groups  *FeatureGroupMapper
	media   *MediaSectionMapper
	pricing *PricingSectionMapper
	faqs    *FaqSectionMapper
}

func NewPageSectionMapper() *PageSectionMapper {
	return &PageSectionMapper{
		heroes:  NewHeroSectionMapper(),
		groups:  NewFeatureGroupMapper(),
		media:   NewMediaSectionMapper(),
		pricing: NewPricingSectionMapper(),
		faqs:    NewFaqSectionMapper(),
	}
}

// ToEntity rebuilds the content block from the stored columns. A row whose columns
// disagree with its type maps to a zero block, which readers skip.
func (m *PageSectionMapper) ToEntity(s *model.PageSection) *entity.PageSection {
	if s == nil {
		return nil
	}
	block, err := entity.ParseSectionContent(s.SectionType, entity.SectionRefs{
		HeroSectionId:    s.HeroSectionId,
		FeatureGroupId:   s.FeatureGroupId,
		MediaSectionId:   s.MediaSectionId,
		PricingSectionId: s.PricingSectionId,
		FaqSectionId:     s.FaqSectionId,
	})
	if err != nil {
		block = entity.SectionContent{}
	}
	return &entity.PageSection{
		Id:             s.Id,
		PageId:         s.PageId,
		Block:          block,
		SortOrder:      s.SortOrder,
		IsVisible:      s.IsVisible,
		Title:          s.Title,
		Subtitle:       s.Subtitle,
		Content:        s.Content,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
		HeroSection:    m.heroes.ToEntity(s.HeroSection),
		FeatureGroup:   m.groups.ToEntity(s.FeatureGroup),
		MediaSection:   m.media.ToEntity(s.MediaSection),
		PricingSection: m.pricing.ToEntity(s.PricingSection),
		FaqSection:     m.faqs.ToEntity(s.FaqSection),
	}
}

func (m *PageSectionMapper) ToModel(s *entity.PageSection) *model.PageSection {
	if s == nil {
		return nil
	}
	refs := s.Block.Refs()
	return &model.PageSection{
		Id:               s.Id,
		PageId:           s.PageId,
		SectionType:      string(s.Block.Type()),
		SortOrder:        s.SortOrder,
		IsVisible:        s.IsVisible,
		Title:            s.Title,
		Subtitle:         s.Subtitle,
		Content:          s.Content,
		HeroSectionId:    refs.HeroSectionId,
		FeatureGroupId:   refs.FeatureGroupId,
		MediaSectionId:   refs.MediaSectionId,
		PricingSectionId: refs.PricingSectionId,
		FaqSectionId:     refs.FaqSectionId,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
}

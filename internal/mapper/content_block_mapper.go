package mapper

import (
	"sitebuilder-be/internal/entity"
	"sitebuilder-be/internal/model"

	"gorm.io/datatypes"
)

type CTAMapper struct{}

func NewCTAMapper() *CTAMapper {
	return &CTAMapper{}
}

func (m *CTAMapper) ToEntity(c *model.CTA) *entity.CTA {
	if c == nil {
		return nil
	}
	return &entity.CTA{
		Id:        c.Id,
		Text:      c.Text,
		Url:       c.Url,
		Icon:      c.Icon,
		Style:     entity.CTAStyle(c.Style),
		Target:    c.Target,
		IsActive:  c.IsActive,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func (m *CTAMapper) ToModel(c *entity.CTA) *model.CTA {
	if c == nil {
		return nil
	}
	return &model.CTA{
		Id:        c.Id,
		Text:      c.Text,
		Url:       c.Url,
		Icon:      c.Icon,
		Style:     string(c.Style),
		Target:    c.Target,
		IsActive:  c.IsActive,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

type HeroSectionMapper struct {
	ctas *CTAMapper
}

func NewHeroSectionMapper() *HeroSectionMapper {
	return &HeroSectionMapper{ctas: NewCTAMapper()}
}

func (m *HeroSectionMapper) ToEntity(h *model.HeroSection) *entity.HeroSection {
	if h == nil {
		return nil
	}
	return &entity.HeroSection{
		Id:                  h.Id,
		Name:                h.Name,
		LayoutType:          h.LayoutType,
		Tagline:             h.Tagline,
		Headline:            h.Headline,
		Subheading:          h.Subheading,
		TaglineColor:        h.TaglineColor,
		HeadlineColor:       h.HeadlineColor,
		SubheadingColor:     h.SubheadingColor,
		CtaPrimaryId:        h.CtaPrimaryId,
		CtaSecondaryId:      h.CtaSecondaryId,
		BackgroundType:      h.BackgroundType,
		BackgroundValue:     h.BackgroundValue,
		MediaType:           h.MediaType,
		MediaUrl:            h.MediaUrl,
		MediaAlt:            h.MediaAlt,
		PaddingTop:          h.PaddingTop,
		PaddingBottom:       h.PaddingBottom,
		ContainerMaxWidth:   h.ContainerMaxWidth,
		ShowTypingEffect:    h.ShowTypingEffect,
		ShowBackgroundGrid:  h.ShowBackgroundGrid,
		ShowScrollIndicator: h.ShowScrollIndicator,
		IsActive:            h.IsActive,
		CreatedAt:           h.CreatedAt,
		UpdatedAt:           h.UpdatedAt,
		CtaPrimary:          m.ctas.ToEntity(h.CtaPrimary),
		CtaSecondary:        m.ctas.ToEntity(h.CtaSecondary),
	}
}

func (m *HeroSectionMapper) ToModel(h *entity.HeroSection) *model.HeroSection {
	if h == nil {
		return nil
	}
	return &model.HeroSection{
		Id:                  h.Id,
		Name:                h.Name,
		LayoutType:          h.LayoutType,
		Tagline:             h.Tagline,
		Headline:            h.Headline,
		Subheading:          h.Subheading,
		TaglineColor:        h.TaglineColor,
		HeadlineColor:       h.HeadlineColor,
		SubheadingColor:     h.SubheadingColor,
		CtaPrimaryId:        h.CtaPrimaryId,
		CtaSecondaryId:      h.CtaSecondaryId,
		BackgroundType:      h.BackgroundType,
		BackgroundValue:     h.BackgroundValue,
		MediaType:           h.MediaType,
		MediaUrl:            h.MediaUrl,
		MediaAlt:            h.MediaAlt,
		PaddingTop:          h.PaddingTop,
		PaddingBottom:       h.PaddingBottom,
		ContainerMaxWidth:   h.ContainerMaxWidth,
		ShowTypingEffect:    h.ShowTypingEffect,
		ShowBackgroundGrid:  h.ShowBackgroundGrid,
		ShowScrollIndicator: h.ShowScrollIndicator,
		IsActive:            h.IsActive,
		CreatedAt:           h.CreatedAt,
		UpdatedAt:           h.UpdatedAt,
	}
}

type MediaSectionMapper struct {
	features *MediaSectionFeatureMapper
}

func NewMediaSectionMapper() *MediaSectionMapper {
	return &MediaSectionMapper{features: NewMediaSectionFeatureMapper()}
}

func (m *MediaSectionMapper) ToEntity(s *model.MediaSection) *entity.MediaSection {
	if s == nil {
		return nil
	}
	return &entity.MediaSection{
		Id:         s.Id,
		Headline:   s.Headline,
		Subheading: s.Subheading,
		MediaType:  s.MediaType,
		MediaUrl:   s.MediaUrl,
		MediaAlt:   s.MediaAlt,
		LayoutType: s.LayoutType,
		BadgeText:  s.BadgeText,
		IsActive:   s.IsActive,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
		Features:   mapSlice(s.Features, m.features.ToEntity),
	}
}

// ToModel carries the feature chips along so a create inserts them with the section.
func (m *MediaSectionMapper) ToModel(s *entity.MediaSection) *model.MediaSection {
	if s == nil {
		return nil
	}
	return &model.MediaSection{
		Id:         s.Id,
		Headline:   s.Headline,
		Subheading: s.Subheading,
		MediaType:  s.MediaType,
		MediaUrl:   s.MediaUrl,
		MediaAlt:   s.MediaAlt,
		LayoutType: s.LayoutType,
		BadgeText:  s.BadgeText,
		IsActive:   s.IsActive,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
		Features:   unmapSlice(s.Features, m.features.ToModel),
	}
}

type MediaSectionFeatureMapper struct{}

func NewMediaSectionFeatureMapper() *MediaSectionFeatureMapper {
	return &MediaSectionFeatureMapper{}
}

func (m *MediaSectionFeatureMapper) ToEntity(f *model.MediaSectionFeature) *entity.MediaSectionFeature {
	if f == nil {
		return nil
	}
	return &entity.MediaSectionFeature{
		Id:             f.Id,
		MediaSectionId: f.MediaSectionId,
		Icon:           f.Icon,
		Label:          f.Label,
		Color:          f.Color,
		SortOrder:      f.SortOrder,
		CreatedAt:      f.CreatedAt,
		UpdatedAt:      f.UpdatedAt,
	}
}

func (m *MediaSectionFeatureMapper) ToModel(f *entity.MediaSectionFeature) *model.MediaSectionFeature {
	if f == nil {
		return nil
	}
	return &model.MediaSectionFeature{
		Id:             f.Id,
		MediaSectionId: f.MediaSectionId,
		Icon:           f.Icon,
		Label:          f.Label,
		Color:          f.Color,
		SortOrder:      f.SortOrder,
		CreatedAt:      f.CreatedAt,
		UpdatedAt:      f.UpdatedAt,
	}
}

type PricingSectionMapper struct {
	plans *PricingPlanMapper
}

func NewPricingSectionMapper() *PricingSectionMapper {
	return &PricingSectionMapper{plans: NewPricingPlanMapper()}
}

func (m *PricingSectionMapper) ToEntity(s *model.PricingSection) *entity.PricingSection {
	if s == nil {
		return nil
	}
	return &entity.PricingSection{
		Id:         s.Id,
		Heading:    s.Heading,
		Subheading: s.Subheading,
		IsActive:   s.IsActive,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
		Plans:      mapSlice(s.Plans, m.plans.ToEntity),
	}
}

func (m *PricingSectionMapper) ToModel(s *entity.PricingSection) *model.PricingSection {
	if s == nil {
		return nil
	}
	return &model.PricingSection{
		Id:         s.Id,
		Heading:    s.Heading,
		Subheading: s.Subheading,
		IsActive:   s.IsActive,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
		Plans:      unmapSlice(s.Plans, m.plans.ToModel),
	}
}

type PricingPlanMapper struct{}

func NewPricingPlanMapper() *PricingPlanMapper {
	return &PricingPlanMapper{}
}

func (m *PricingPlanMapper) ToEntity(p *model.PricingPlan) *entity.PricingPlan {
	if p == nil {
		return nil
	}
	features := []string(p.Features)
	if features == nil {
		features = []string{}
	}
	return &entity.PricingPlan{
		Id:               p.Id,
		PricingSectionId: p.PricingSectionId,
		Name:             p.Name,
		Description:      p.Description,
		Price:            p.Price,
		BillingPeriod:    p.BillingPeriod,
		Features:         features,
		CtaText:          p.CtaText,
		CtaUrl:           p.CtaUrl,
		IsPopular:        p.IsPopular,
		SortOrder:        p.SortOrder,
		IsActive:         p.IsActive,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

func (m *PricingPlanMapper) ToModel(p *entity.PricingPlan) *model.PricingPlan {
	if p == nil {
		return nil
	}
	features := p.Features
	if features == nil {
		features = []string{}
	}
	return &model.PricingPlan{
		Id:               p.Id,
		PricingSectionId: p.PricingSectionId,
		Name:             p.Name,
		Description:      p.Description,
		Price:            p.Price,
		BillingPeriod:    p.BillingPeriod,
		Features:         datatypes.NewJSONSlice(features),
		CtaText:          p.CtaText,
		CtaUrl:           p.CtaUrl,
		IsPopular:        p.IsPopular,
		SortOrder:        p.SortOrder,
		IsActive:         p.IsActive,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

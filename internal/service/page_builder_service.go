package service

import (
	"context"

	"sitebuilder-be/internal/dto"
	"sitebuilder-be/internal/pkg/apperror"
	"sitebuilder-be/internal/repository/specification"
	"sitebuilder-be/internal/repository/unitofwork"
)

const (
	CatalogHeroSections    = "hero-sections"
	CatalogFeatureGroups   = "feature-groups"
	CatalogMediaSections   = "media-sections"
	CatalogPricingSections = "pricing-sections"
	CatalogFaqSections     = "faq-sections"
)

// IPageBuilderService lists the content blocks an editor can drop onto a page.
type IPageBuilderService interface {
	Catalog(ctx context.Context, contentType string) ([]*dto.CatalogItem, error)
}

type pageBuilderService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewPageBuilderService(uowFactory unitofwork.RepositoryFactory) IPageBuilderService {
	return &pageBuilderService{uowFactory: uowFactory}
}

func (s *pageBuilderService) Catalog(ctx context.Context, contentType string) ([]*dto.CatalogItem, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	byId := specification.OrderBy{Field: "id"}
	items := make([]*dto.CatalogItem, 0)

	switch contentType {
	case CatalogHeroSections:
		rows, err := uow.HeroSectionRepository().FindAll(ctx, byId)
		if err != nil {
			return nil, err
		}
		for _, h := range rows {
			items = append(items, &dto.CatalogItem{
				Id:          h.Id,
				Name:        h.Name,
				Description: h.Headline,
				Meta: map[string]interface{}{
					"layoutType": h.LayoutType,
					"isActive":   h.IsActive,
				},
			})
		}
	case CatalogFeatureGroups:
		rows, err := uow.FeatureGroupRepository().FindAll(ctx, specification.Preload{Relation: "GroupItems"}, byId)
		if err != nil {
			return nil, err
		}
		for _, g := range rows {
			items = append(items, &dto.CatalogItem{
				Id:          g.Id,
				Name:        g.Name,
				Description: g.Subheading,
				Meta: map[string]interface{}{
					"layoutType": g.LayoutType,
					"itemCount":  len(g.GroupItems),
					"isActive":   g.IsActive,
				},
			})
		}
	case CatalogMediaSections:
		rows, err := uow.MediaSectionRepository().FindAll(ctx, specification.Preload{Relation: "Features"}, byId)
		if err != nil {
			return nil, err
		}
		for _, m := range rows {
			items = append(items, &dto.CatalogItem{
				Id:          m.Id,
				Name:        m.Headline,
				Description: deref(m.Subheading),
				Meta: map[string]interface{}{
					"mediaType":    m.MediaType,
					"layoutType":   m.LayoutType,
					"featureCount": len(m.Features),
					"isActive":     m.IsActive,
				},
			})
		}
	case CatalogPricingSections:
		rows, err := uow.PricingSectionRepository().FindAll(ctx, specification.Preload{Relation: "Plans"}, byId)
		if err != nil {
			return nil, err
		}
		for _, p := range rows {
			items = append(items, &dto.CatalogItem{
				Id:          p.Id,
				Name:        p.Heading,
				Description: deref(p.Subheading),
				Meta: map[string]interface{}{
					"planCount": len(p.Plans),
					"isActive":  p.IsActive,
				},
			})
		}
	case CatalogFaqSections:
		rows, err := uow.FaqSectionRepository().FindAll(ctx, specification.Preload{Relation: "Category"}, byId)
		if err != nil {
			return nil, err
		}
		for _, f := range rows {
			meta := map[string]interface{}{"isActive": f.IsActive}
			if f.Category != nil {
				meta["category"] = f.Category.Name
			}
			items = append(items, &dto.CatalogItem{
				Id:          f.Id,
				Name:        f.Heading,
				Description: deref(f.Subheading),
				Meta:        meta,
			})
		}
	default:
		return nil, apperror.BadRequest("Unknown content type %q; expected one of %s, %s, %s, %s, %s",
			contentType, CatalogHeroSections, CatalogFeatureGroups, CatalogMediaSections, CatalogPricingSections, CatalogFaqSections)
	}
	return items, nil
}

func deref(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

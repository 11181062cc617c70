package contract

import (
	"context"
	"errors"

	"sitebuilder-be/internal/entity"
)

var ErrSectionsOutsidePage = errors.New("section ids do not all belong to the page")

type PageRepository interface {
	CrudRepository[entity.Page]
	ContentCounts(ctx context.Context, pageIds []int) (map[int]*entity.PageCount, error)
}

type PageSectionRepository interface {
	CrudRepository[entity.PageSection]
	// Reorder sets sort_order to index+1 for each id, in one transaction.
	Reorder(ctx context.Context, pageId int, sectionIds []int) error
}

type HeaderConfigRepository interface {
	CrudRepository[entity.HeaderConfig]
	DeactivateAll(ctx context.Context) error
}

type (
	GlobalFeatureRepository       = CrudRepository[entity.GlobalFeature]
	FeatureGroupRepository        = CrudRepository[entity.FeatureGroup]
	FeatureGroupItemRepository    = CrudRepository[entity.FeatureGroupItem]
	PageFeatureGroupRepository    = CrudRepository[entity.PageFeatureGroup]
	CTARepository                 = CrudRepository[entity.CTA]
	HeroSectionRepository         = CrudRepository[entity.HeroSection]
	MediaSectionRepository        = CrudRepository[entity.MediaSection]
	MediaSectionFeatureRepository = CrudRepository[entity.MediaSectionFeature]
	PricingSectionRepository      = CrudRepository[entity.PricingSection]
	PricingPlanRepository         = CrudRepository[entity.PricingPlan]
	FaqCategoryRepository         = CrudRepository[entity.FaqCategory]
	FaqRepository                 = CrudRepository[entity.Faq]
	FaqSectionRepository          = CrudRepository[entity.FaqSection]
	HeaderNavItemRepository       = CrudRepository[entity.HeaderNavItem]
	HeaderCTARepository           = CrudRepository[entity.HeaderCTA]
	HeaderConfigMenuRepository    = CrudRepository[entity.HeaderConfigMenu]
	MenuRepository                = CrudRepository[entity.Menu]
	MenuItemRepository            = CrudRepository[entity.MenuItem]
	SiteSettingsRepository        = CrudRepository[entity.SiteSettings]
	FormSubmissionRepository      = CrudRepository[entity.FormSubmission]
)

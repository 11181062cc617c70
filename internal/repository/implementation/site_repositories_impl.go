package implementation

import (
	"sitebuilder-be/internal/entity"
	"sitebuilder-be/internal/mapper"
	"sitebuilder-be/internal/model"
	"sitebuilder-be/internal/repository/contract"

	"gorm.io/gorm"
)

func NewGlobalFeatureRepository(db *gorm.DB) contract.GlobalFeatureRepository {
	return newCrudRepository[entity.GlobalFeature, model.GlobalFeature](db, mapper.NewGlobalFeatureMapper())
}

func NewFeatureGroupRepository(db *gorm.DB) contract.FeatureGroupRepository {
	return newCrudRepository[entity.FeatureGroup, model.FeatureGroup](db, mapper.NewFeatureGroupMapper())
}

func NewFeatureGroupItemRepository(db *gorm.DB) contract.FeatureGroupItemRepository {
	return newCrudRepository[entity.FeatureGroupItem, model.FeatureGroupItem](db, mapper.NewFeatureGroupItemMapper())
}

func NewPageFeatureGroupRepository(db *gorm.DB) contract.PageFeatureGroupRepository {
	return newCrudRepository[entity.PageFeatureGroup, model.PageFeatureGroup](db, mapper.NewPageFeatureGroupMapper())
}

func NewCTARepository(db *gorm.DB) contract.CTARepository {
	return newCrudRepository[entity.CTA, model.CTA](db, mapper.NewCTAMapper())
}

func NewHeroSectionRepository(db *gorm.DB) contract.HeroSectionRepository {
	return newCrudRepository[entity.HeroSection, model.HeroSection](db, mapper.NewHeroSectionMapper())
}

func NewMediaSectionRepository(db *gorm.DB) contract.MediaSectionRepository {
	return newCrudRepository[entity.MediaSection, model.MediaSection](db, mapper.NewMediaSectionMapper())
}

func NewMediaSectionFeatureRepository(db *gorm.DB) contract.MediaSectionFeatureRepository {
	return newCrudRepository[entity.MediaSectionFeature, model.MediaSectionFeature](db, mapper.NewMediaSectionFeatureMapper())
}

func NewPricingSectionRepository(db *gorm.DB) contract.PricingSectionRepository {
	return newCrudRepository[entity.PricingSection, model.PricingSection](db, mapper.NewPricingSectionMapper())
}

func NewPricingPlanRepository(db *gorm.DB) contract.PricingPlanRepository {
	return newCrudRepository[entity.PricingPlan, model.PricingPlan](db, mapper.NewPricingPlanMapper())
}

func NewFaqCategoryRepository(db *gorm.DB) contract.FaqCategoryRepository {
	return newCrudRepository[entity.FaqCategory, model.FaqCategory](db, mapper.NewFaqCategoryMapper())
}

func NewFaqRepository(db *gorm.DB) contract.FaqRepository {
	return newCrudRepository[entity.Faq, model.Faq](db, mapper.NewFaqMapper())
}

func NewFaqSectionRepository(db *gorm.DB) contract.FaqSectionRepository {
	return newCrudRepository[entity.FaqSection, model.FaqSection](db, mapper.NewFaqSectionMapper())
}

func NewHeaderNavItemRepository(db *gorm.DB) contract.HeaderNavItemRepository {
	return newCrudRepository[entity.HeaderNavItem, model.HeaderNavItem](db, mapper.NewHeaderNavItemMapper())
}

func NewHeaderCTARepository(db *gorm.DB) contract.HeaderCTARepository {
	return newCrudRepository[entity.HeaderCTA, model.HeaderCTA](db, mapper.NewHeaderCTAMapper())
}

func NewHeaderConfigMenuRepository(db *gorm.DB) contract.HeaderConfigMenuRepository {
	return newCrudRepository[entity.HeaderConfigMenu, model.HeaderConfigMenu](db, mapper.NewHeaderConfigMenuMapper())
}

func NewMenuRepository(db *gorm.DB) contract.MenuRepository {
	return newCrudRepository[entity.Menu, model.Menu](db, mapper.NewMenuMapper())
}

func NewMenuItemRepository(db *gorm.DB) contract.MenuItemRepository {
	return newCrudRepository[entity.MenuItem, model.MenuItem](db, mapper.NewMenuItemMapper())
}

func NewSiteSettingsRepository(db *gorm.DB) contract.SiteSettingsRepository {
	return newCrudRepository[entity.SiteSettings, model.SiteSettings](db, mapper.NewSiteSettingsMapper())
}

func NewFormSubmissionRepository(db *gorm.DB) contract.FormSubmissionRepository {
	return newCrudRepository[entity.FormSubmission, model.FormSubmission](db, mapper.NewFormSubmissionMapper())
}
